package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/cntlib/cnt/parse"

	"github.com/fsnotify/fsnotify"
	"github.com/scott-cotton/cli"
)

// checkFile parses path strictly and reports the first problem.
func checkFile(cfg *MainConfig, cc *cli.Context, path string) error {
	d, err := readFile(cc, path)
	if err != nil {
		return err
	}
	opts := append(cfg.parseOpts(path), parse.ParseStrict(true))
	if _, err := parse.Parse(d, opts...); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	files := inputs(args)
	failed := 0
	for _, file := range files {
		if err := checkFile(cfg.MainConfig, cc, file); err != nil {
			fmt.Fprintln(cc.Out, err)
			failed++
		}
	}
	if cfg.Watch {
		return watch(cfg, cc, files)
	}
	if failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// watch rechecks files as they are written until interrupted. The
// containing directories are watched so that editors which replace
// files on save are followed.
func watch(cfg *CheckConfig, cc *cli.Context, files []string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	watched := map[string]bool{}
	for _, file := range files {
		if file == "-" {
			return fmt.Errorf("%w: cannot watch stdin", cli.ErrUsage)
		}
		abs, err := filepath.Abs(file)
		if err != nil {
			return err
		}
		watched[abs] = true
		if err := w.Add(filepath.Dir(abs)); err != nil {
			return err
		}
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	theLog.Info("watching", "files", len(files))
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !watched[filepath.Clean(ev.Name)] {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := checkFile(cfg.MainConfig, cc, ev.Name); err != nil {
				fmt.Fprintln(cc.Out, err)
				continue
			}
			theLog.Info("ok", "file", ev.Name)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			theLog.Warn("watch error", "error", err)
		}
	}
}
