package main

import (
	"fmt"

	"github.com/cntlib/cnt"
	"github.com/cntlib/cnt/encode"
	"github.com/cntlib/cnt/ir"
	"github.com/cntlib/cnt/parse"

	"github.com/scott-cotton/cli"
)

// patchDoc applies the patch in d to doc. JSON Patches are read as
// JSON; merge patches may be in any input format.
func patchDoc(cfg *PatchConfig, patchPath string, d []byte, doc *ir.Node) (*ir.Node, error) {
	if !cfg.Merge {
		return cnt.Patch(doc, d)
	}
	p, err := parse.ParseValue(d, parse.ParseFormat(cfg.inFormat(patchPath)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", patchPath, err)
	}
	return cnt.MergePatch(doc, p)
}

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	patchPath := args[0]
	d, err := readFile(cc, patchPath)
	if err != nil {
		return err
	}
	files := inputs(args[1:])
	if patchPath == "-" && files[0] == "-" {
		return fmt.Errorf("%w: the patch and the document cannot both be stdin", cli.ErrUsage)
	}
	for _, file := range files {
		if cfg.Write && file != "-" {
			c, err := cfg.openConfig(file)
			if err != nil {
				return err
			}
			res, err := patchDoc(cfg, patchPath, d, c.Node())
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			if err := c.Replace(res); err != nil {
				return err
			}
			if err := c.Save(); err != nil {
				return err
			}
			continue
		}
		doc, err := loadDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		res, err := patchDoc(cfg, patchPath, d, doc)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		if err := encode.EncodeDocument(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}
