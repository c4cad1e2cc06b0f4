package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/scott-cotton/cli"
)

func cntMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer cfg.closeOut()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		logLevel.Set(slog.LevelInfo)
	}
	if n := count(cfg.C, cfg.J, cfg.Y); n > 1 {
		return fmt.Errorf("%w: -c, -j and -y are exclusive, got %d of them", cli.ErrUsage, n)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if !errors.Is(err, cli.ErrUsage) {
		return err
	}
	sub.Usage(cc, err)
	cfg.closeOut()
	os.Exit(sub.Exit(cc, err))
	return nil
}

func count(vs ...bool) int {
	n := 0
	for _, v := range vs {
		if v {
			n++
		}
	}
	return n
}

// outOpt redirects output to a file; "-" keeps stdout.
func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return a, nil
	}
	f, err := os.Create(a)
	if err != nil {
		return nil, fmt.Errorf("%w: -o: %w", cli.ErrUsage, err)
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return a, nil
}

func (cfg *MainConfig) closeOut() {
	if cfg.CloseOut == nil {
		return
	}
	if err := cfg.CloseOut(); err != nil {
		theLog.Error("closing output", "file", cfg.Out, "error", err)
	}
	cfg.CloseOut = nil
}
