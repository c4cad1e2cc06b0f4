package main

import (
	"fmt"

	"github.com/cntlib/cnt/version"

	"github.com/scott-cotton/cli"
)

// versionCmd with one argument prints its normalized form; with two it
// prints -1, 0 or 1 as the first sorts before, equal to or after the
// second.
func versionCmd(cfg *VersionConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Version.Parse(cc, args)
	if err != nil {
		return err
	}
	switch len(args) {
	case 1:
		v, err := version.Parse(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cc.Out, v)
		return nil
	case 2:
		c, err := version.Compare(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cc.Out, c)
		return nil
	}
	return fmt.Errorf("%w: version takes 1 or 2 arguments", cli.ErrUsage)
}
