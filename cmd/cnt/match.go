package main

import (
	"fmt"

	"github.com/cntlib/cnt"
	"github.com/cntlib/cnt/encode"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires 1 argument, a match object", cli.ErrUsage)
	}
	pattern, err := argDoc(cfg.MainConfig, cc, args[0], cfg.File)
	if err != nil {
		return fmt.Errorf("error reading match object: %w", err)
	}
	matched := 0
	for _, file := range inputs(args[1:]) {
		doc, err := loadDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		if !cnt.Match(doc, pattern) {
			continue
		}
		matched++
		if cfg.Trim {
			doc = cnt.Trim(pattern, doc)
		}
		if matched > 1 && cfg.outFormat().IsCNT() {
			fmt.Fprintln(cc.Out)
		}
		if err := encode.EncodeDocument(doc, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding output: %w", err)
		}
	}
	if matched == 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
