package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path"

	"github.com/cntlib/cnt/download"

	"github.com/scott-cotton/cli"
)

func downloadCmd(cfg *DownloadConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Download.Parse(cc, args)
	if err != nil {
		return err
	}
	var url, dst string
	switch len(args) {
	case 1:
		url, dst = args[0], path.Base(args[0])
	case 2:
		url, dst = args[0], args[1]
	default:
		return fmt.Errorf("%w: download takes a url and an optional destination", cli.ErrUsage)
	}
	if cfg.Retries < 0 {
		return fmt.Errorf("%w: -retries must not be negative", cli.ErrUsage)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	state, err := download.File(ctx, url, dst, download.WithRetries(cfg.Retries))
	if err != nil {
		return err
	}
	if !state.IsSuccess() {
		return fmt.Errorf("%w: %s: %s", download.ErrDownload, url, state)
	}
	theLog.Info("downloaded", "url", url, "file", dst, "state", state.String())
	return nil
}
