package main

import (
	"fmt"

	"github.com/cntlib/cnt"

	"github.com/scott-cotton/cli"
)

func loadConfig(cfg *MainConfig, cc *cli.Context, path string) (*cnt.Config, error) {
	d, err := readFile(cc, path)
	if err != nil {
		return nil, err
	}
	c, err := cnt.Load(d, cnt.WithParseOptions(cfg.parseOpts(path)...))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff takes 2 arguments, got %d", cli.ErrUsage, len(args))
	}
	if args[0] == "-" && args[1] == "-" {
		return fmt.Errorf("%w: only one argument may be stdin", cli.ErrUsage)
	}
	from, err := loadConfig(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	to, err := loadConfig(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	if cfg.Reverse {
		from, to = to, from
	}
	changes := cnt.Diff(from, to)
	for _, c := range changes {
		fmt.Fprintln(cc.Out, c.String())
	}
	if len(changes) != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
