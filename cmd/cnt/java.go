package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/cntlib/cnt/encode"
	"github.com/cntlib/cnt/java"

	"github.com/scott-cotton/cli"
)

func javaSearch(cfg *JavaConfig, cc *cli.Context, args []string) error {
	_, err := cfg.Java.Parse(cc, args)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	s := java.NewSearcher()
	var infos []java.Info
	if cfg.Deep {
		infos, err = s.Deep(ctx)
	} else {
		infos, err = s.Quick(ctx)
	}
	if err != nil {
		return err
	}
	theLog.Info("java search", "deep", cfg.Deep, "found", len(infos))
	return encode.Encode(java.ToNode(infos), cc.Out, cfg.encOpts(cc.Out)...)
}
