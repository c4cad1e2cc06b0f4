package main

import (
	"fmt"
	"strings"

	"github.com/cntlib/cnt/encode"
	"github.com/cntlib/cnt/ir"
	"github.com/cntlib/cnt/parse"

	"github.com/scott-cotton/cli"
)

type editOp int

const (
	setOp editOp = iota
	addOp
	rmOp
)

func (cfg *EditConfig) value(s string) (*ir.Node, error) {
	if cfg.String {
		return ir.FromString(s), nil
	}
	v, err := parse.ParseValue([]byte(s), parse.ParseStrict(true))
	if err != nil {
		return nil, fmt.Errorf("%w: value %q: %w", cli.ErrUsage, s, err)
	}
	return v, nil
}

func edit(cfg *EditConfig, op editOp, cc *cli.Context, args []string) error {
	args, err := cfg.Edit.Parse(cc, args)
	if err != nil {
		return err
	}
	want := 3
	if op == rmOp {
		want = 2
	}
	if len(args) != want {
		return fmt.Errorf("%w: expected %d arguments, got %d", cli.ErrUsage, want, len(args))
	}
	file, key := args[0], args[1]
	var v *ir.Node
	if op != rmOp {
		v, err = cfg.value(args[2])
		if err != nil {
			return err
		}
	}
	c, err := cfg.openConfig(file)
	if err != nil {
		return err
	}
	isPath := strings.HasPrefix(key, "$")
	switch op {
	case setOp:
		if isPath {
			err = c.SetPath(key, v)
		} else {
			c.Set(key, v)
		}
	case addOp:
		if isPath {
			return fmt.Errorf("%w: add takes a top level key, not a path", cli.ErrUsage)
		}
		c.Add(key, v)
	case rmOp:
		if isPath {
			err = c.DeletePath(key)
		} else {
			old := c.Pop(key)
			if !old.IsNone() {
				theLog.Info("removed", "key", key, "value", encode.MustString(old, encode.EncodeInline(true)))
			}
		}
	}
	if err != nil {
		return err
	}
	return c.Save()
}
