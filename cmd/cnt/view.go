package main

import (
	"fmt"
	"io"

	"github.com/cntlib/cnt/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	files := inputs(args)
	for i, file := range files {
		if len(files) > 1 && cfg.outFormat().IsCNT() {
			if i > 0 {
				io.WriteString(cc.Out, "\n")
			}
			fmt.Fprintf(cc.Out, "// %s\n", file)
		}
		doc, err := loadDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		if err := encode.EncodeDocument(doc, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}
