package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cntlib/cnt/encode"
	"github.com/cntlib/cnt/ir"

	"github.com/agnivade/levenshtein"
	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an object path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	path = absPath(path)
	for _, file := range inputs(args[1:]) {
		doc, err := loadDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		node, err := doc.GetPath(path)
		if err != nil {
			if s := suggest(doc, path); s != "" {
				return fmt.Errorf("%s: %w (did you mean %s?)", file, err, s)
			}
			return fmt.Errorf("%s: %w", file, err)
		}
		if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}

// absPath lets users leave out the leading "$" of a path.
func absPath(p string) string {
	switch {
	case strings.HasPrefix(p, "$"):
		return p
	case strings.HasPrefix(p, ".") || strings.HasPrefix(p, "["):
		return "$" + p
	}
	return "$." + p
}

// suggest finds the path that was probably meant when path names a
// field which doesn't exist. It walks path as far as it resolves and
// proposes the sibling key closest to the missing one.
func suggest(doc *ir.Node, path string) string {
	p, err := ir.ParsePath(path)
	if err != nil {
		return ""
	}
	prefix := "$"
	node := doc
	for q := p; q != nil; q = q.Next {
		if q.Field == nil {
			if q.Index == nil {
				return ""
			}
			child, err := node.AtIndex(*q.Index)
			if err != nil {
				return ""
			}
			prefix = ir.IndexPath(prefix, *q.Index)
			node = child
			continue
		}
		child, err := node.At(*q.Field)
		if err == nil {
			prefix = ir.FieldPath(prefix, *q.Field)
			node = child
			continue
		}
		if !errors.Is(err, ir.ErrNoSuchKey) {
			return ""
		}
		best := closest(*q.Field, node.Keys())
		if best == "" {
			return ""
		}
		return ir.FieldPath(prefix, best)
	}
	return ""
}

func closest(key string, candidates []string) string {
	best, bestDist := "", len(key)/2+1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(key, c)
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
