package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cntlib/cnt/encode"
	"github.com/cntlib/cnt/format"
	"github.com/cntlib/cnt/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Inline  bool `cli:"name=inline desc='encode containers on one line'"`
	Color   bool `cli:"name=color desc='encode with color'"`
	Strict  bool `cli:"name=strict desc='fail on malformed input instead of skipping it'"`
	Verbose bool `cli:"name=v desc='log progress to stderr'"`

	C bool `cli:"name=c aliases=cnt desc='do i/o in cnt'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) ioFormat() format.Format {
	switch {
	case cfg.Y:
		return format.YAMLFormat
	case cfg.J:
		return format.JSONFormat
	}
	return format.CNTFormat
}

// inFormat is the input format for path, which is guessed from its
// suffix unless a format was requested.
func (cfg *MainConfig) inFormat(path string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if count(cfg.C, cfg.J, cfg.Y) == 0 && path != "-" {
		return format.FromPath(path)
	}
	return cfg.ioFormat()
}

func (cfg *MainConfig) parseOpts(path string) []parse.ParseOption {
	return []parse.ParseOption{
		parse.ParseFormat(cfg.inFormat(path)),
		parse.ParseStrict(cfg.Strict),
	}
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return cfg.ioFormat()
}

func (cfg *MainConfig) optSet(name string) bool {
	for _, opt := range cfg.Main.Opts {
		if opt.Name != name {
			continue
		}
		return opt.Value != nil
	}
	return false
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.EncodeInline(cfg.Inline),
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	if cfg.optSet("color") {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// fileEncOpts are the options used when writing documents back to
// files: never colored.
func (cfg *MainConfig) fileEncOpts(path string) []encode.EncodeOption {
	return []encode.EncodeOption{
		encode.EncodeFormat(cfg.inFormat(path)),
		encode.EncodeInline(cfg.Inline),
	}
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type FmtConfig struct {
	*MainConfig
	List  bool `cli:"name=l desc='list files whose formatting differs'"`
	Write bool `cli:"name=w desc='write result to the source file instead of stdout'"`
	Check bool `cli:"name=check desc='exit 1 if any file is not formatted'"`

	Fmt *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type EditConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='treat the value as a string instead of parsing it'"`

	Edit *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=m aliases=merge desc='apply a merge patch instead of a json patch'"`
	Write bool `cli:"name=w desc='write result to the source file instead of stdout'"`

	Patch *cli.Command
}

type MatchConfig struct {
	*cli.Command
	*MainConfig

	Trim bool `cli:"name=trim desc='trim the results to the match'"`
	File bool `cli:"name=f desc='consider match a file path'"`
}

type EvalConfig struct {
	*MainConfig
	Env    map[string]any
	DotEnv []string

	Eval *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Query *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Watch bool `cli:"name=w aliases=watch desc='check again whenever a file changes'"`

	Check *cli.Command
}

type JavaConfig struct {
	*MainConfig
	Deep bool `cli:"name=deep desc='search more locations, recursively'"`

	Java *cli.Command
}

type VersionConfig struct {
	*MainConfig

	Version *cli.Command
}

type DownloadConfig struct {
	*MainConfig
	Retries int `cli:"name=retries desc='number of retries on server errors'"`

	Download *cli.Command
}
