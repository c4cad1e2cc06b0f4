package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/cntlib/cnt/encode"
	"github.com/cntlib/cnt/parse"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/scott-cotton/cli"
	"github.com/spf13/afero"
)

const defaultFmtGlob = "**/*.cnt"

// expandGlobs resolves each pattern with doublestar. "-" and names
// that exist as given are passed through unchanged.
func expandGlobs(patterns []string) ([]string, error) {
	var res []string
	seen := map[string]bool{}
	add := func(p string) {
		if seen[p] {
			return
		}
		seen[p] = true
		res = append(res, p)
	}
	for _, pat := range patterns {
		if pat == "-" {
			add(pat)
			continue
		}
		if _, err := os.Stat(pat); err == nil {
			add(pat)
			continue
		}
		matches, err := doublestar.FilepathGlob(pat, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", cli.ErrUsage, pat, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", pat)
		}
		for _, m := range matches {
			add(m)
		}
	}
	return res, nil
}

// reformat returns the canonical rendering of the document d.
func reformat(cfg *MainConfig, path string, d []byte) ([]byte, error) {
	doc, err := parse.Parse(d, cfg.parseOpts(path)...)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.EncodeDocument(doc, buf, cfg.fileEncOpts(path)...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func fmtFiles(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{defaultFmtGlob}
	}
	paths, err := expandGlobs(args)
	if err != nil {
		return err
	}
	unformatted := 0
	for _, file := range paths {
		d, err := readFile(cc, file)
		if err != nil {
			return err
		}
		out, err := reformat(cfg.MainConfig, file, d)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		same := bytes.Equal(d, out)
		if !same {
			unformatted++
		}
		switch {
		case cfg.List || cfg.Check:
			if !same {
				fmt.Fprintln(cc.Out, file)
			}
		case cfg.Write && file != "-":
			if same {
				continue
			}
			if err := writeKeepMode(files, file, out); err != nil {
				return err
			}
			theLog.Info("formatted", "file", file)
		default:
			if _, err := cc.Out.Write(out); err != nil {
				return err
			}
		}
	}
	if cfg.Check && unformatted > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func writeKeepMode(fs afero.Fs, path string, d []byte) error {
	mode := os.FileMode(0644)
	if fi, err := fs.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}
	return afero.WriteFile(fs, path, d, mode)
}
