package main

import (
	"github.com/scott-cotton/cli"
)

// structOpts panics on malformed cli tags, which are fixed at compile time.
func structOpts(cfg any) []*cli.Opt {
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return opts
}

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts := append(structOpts(cfg), []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: cnt/c, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: cnt/c, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "cnt").
		WithSynopsis("cnt [opts] command [opts]").
		WithDescription("cnt is a tool for working with cnt configuration files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return cntMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			FmtCommand(cfg),
			GetCommand(cfg),
			SetCommand(cfg),
			AddCommand(cfg),
			RmCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			MatchCommand(cfg),
			EvalCommand(cfg),
			ExpandCommand(cfg),
			QueryCommand(cfg),
			CheckCommand(cfg),
			JavaCommand(cfg),
			VersionCommand(cfg),
			DownloadCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v", "convert").
		WithSynopsis("view [files]").
		WithDescription("view documents, in color on terminals; with -O, convert them").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts := structOpts(cfg)
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithAliases("f").
		WithSynopsis("fmt [-l] [-w] [-check] [files or globs]").
		WithDescription("format documents canonically. Globs may use '**'; the default is '" + defaultFmtGlob + "'.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtFiles(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription("get values from documents by path, such as $.meta.author or flags[0]").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func editCommand(mainCfg *MainConfig, op editOp, name, synopsis, desc string) *cli.Command {
	cfg := &EditConfig{MainConfig: mainCfg}
	opts := structOpts(cfg)
	return cli.NewCommandAt(&cfg.Edit, name).
		WithSynopsis(synopsis).
		WithDescription(desc).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return edit(cfg, op, cc, args)
		})
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	return editCommand(mainCfg, setOp, "set",
		"set [-s] <file> <key or $path> <value>",
		"set a value in a file, creating containers along a path as needed")
}

func AddCommand(mainCfg *MainConfig) *cli.Command {
	return editCommand(mainCfg, addOp, "add",
		"add [-s] <file> <key> <value>",
		"append a value to the array at key in a file")
}

func RmCommand(mainCfg *MainConfig) *cli.Command {
	return editCommand(mainCfg, rmOp, "rm",
		"rm <file> <key or $path>",
		"remove a value from a file")
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts := structOpts(cfg)
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithOpts(opts...).
		WithSynopsis("diff [-r] a b").
		WithDescription("diff documents, exiting 1 when they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts := structOpts(cfg)
	cmd := cli.NewCommand("patch").
		WithAliases("p").
		WithSynopsis("patch [-m] [-w] <patchfile> [files]").
		WithDescription("apply a JSON patch, or with -m a merge patch, to documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func MatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MatchConfig{MainConfig: mainCfg}
	opts := structOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "match").
		WithAliases("m").
		WithSynopsis("match [opts] <matchobj> [files]").
		WithDescription("print the documents which contain the match object").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return match(cfg, cc, args)
		})
}

func evalConfig(mainCfg *MainConfig) (*EvalConfig, []*cli.Opt) {
	cfg := &EvalConfig{MainConfig: mainCfg, Env: map[string]any{}}
	return cfg, []*cli.Opt{
		&cli.Opt{
			Name:        "e",
			Description: "set a variable",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(envOptTypeFunc(cfg.Env)), "(path=val)"),
		},
		&cli.Opt{
			Name:        "dotenv",
			Description: "read getenv() variables from a .env file",
			Type:        cli.NamedFuncOpt(cfg.dotEnvOpt, "(filepath)"),
		},
	}
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg, opts := evalConfig(mainCfg)
	return cli.NewCommandAt(&cfg.Eval, "eval").
		WithAliases("e").
		WithSynopsis("eval [-e path=val]... [-dotenv file]... <expr> [files]").
		WithDescription("evaluate an expression with the entries of each document as variables").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return evalExpr(cfg, cc, args)
		})
}

func ExpandCommand(mainCfg *MainConfig) *cli.Command {
	cfg, opts := evalConfig(mainCfg)
	return cli.NewCommandAt(&cfg.Eval, "expand").
		WithAliases("x").
		WithSynopsis("expand [-e path=val]... [-dotenv file]... [files]").
		WithDescription("replace $[expr] in the strings of documents by the value of expr").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return expand(cfg, cc, args)
		})
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Query, "query").
		WithAliases("q", "jq").
		WithSynopsis("query <jq filter> [files]").
		WithDescription("run a jq filter over documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return query(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts := structOpts(cfg)
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [-w] [files]").
		WithDescription("report syntax errors in documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func JavaCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &JavaConfig{MainConfig: mainCfg}
	opts := structOpts(cfg)
	return cli.NewCommandAt(&cfg.Java, "java").
		WithSynopsis("java [-deep]").
		WithDescription("list the Java installations found on this machine").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return javaSearch(cfg, cc, args)
		})
}

func VersionCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &VersionConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Version, "version").
		WithSynopsis("version <a> [b]").
		WithDescription("normalize a game version, or compare two").
		WithRun(func(cc *cli.Context, args []string) error {
			return versionCmd(cfg, cc, args)
		})
}

func DownloadCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DownloadConfig{MainConfig: mainCfg}
	opts := structOpts(cfg)
	return cli.NewCommandAt(&cfg.Download, "download").
		WithSynopsis("download [-retries n] <url> [file]").
		WithDescription("download a url to a file").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return downloadCmd(cfg, cc, args)
		})
}
