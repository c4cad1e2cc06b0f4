package main

import (
	"fmt"
	"io"

	"github.com/cntlib/cnt"
	"github.com/cntlib/cnt/ir"
	"github.com/cntlib/cnt/parse"

	"github.com/scott-cotton/cli"
	"github.com/spf13/afero"
)

// files is where commands read and write named files. Tests swap in a
// memory filesystem.
var files afero.Fs = afero.NewOsFs()

// readFile reads path, or cc.In for "-".
func readFile(cc *cli.Context, path string) ([]byte, error) {
	var (
		d   []byte
		err error
	)
	if path == "-" {
		d, err = io.ReadAll(cc.In)
	} else {
		d, err = afero.ReadFile(files, path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return d, nil
}

// loadDoc reads and parses one input document.
func loadDoc(cfg *MainConfig, cc *cli.Context, path string) (*ir.Node, error) {
	d, err := readFile(cc, path)
	if err != nil {
		return nil, err
	}
	doc, err := parse.Parse(d, cfg.parseOpts(path)...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// argDoc takes a document from the command line: a file when fromFile
// is set, else the argument's own text.
func argDoc(cfg *MainConfig, cc *cli.Context, arg string, fromFile bool) (*ir.Node, error) {
	if fromFile {
		return loadDoc(cfg, cc, arg)
	}
	return parse.ParseValue([]byte(arg), parse.ParseStrict(true))
}

// openConfig opens file for editing in place.
func (cfg *MainConfig) openConfig(file string) (*cnt.Config, error) {
	c := cnt.New(
		cnt.WithFs(files),
		cnt.WithParseOptions(cfg.parseOpts(file)...),
		cnt.WithEncodeOptions(cfg.fileEncOpts(file)...))
	if err := c.Open(file); err != nil {
		return nil, err
	}
	return c, nil
}

// inputs defaults to stdin when no files are given.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
