package main

import (
	"context"
	"fmt"

	"github.com/cntlib/cnt/encode"
	"github.com/cntlib/cnt/eval"

	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires a jq filter", cli.ErrUsage)
	}
	q := args[0]
	for _, file := range inputs(args[1:]) {
		doc, err := loadDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		res, err := eval.Query(context.Background(), q, doc)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		for _, node := range res {
			if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
				return err
			}
		}
	}
	return nil
}
