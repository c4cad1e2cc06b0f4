package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/cntlib/cnt/encode"
	"github.com/cntlib/cnt/eval"
	"github.com/cntlib/cnt/ir"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"github.com/scott-cotton/cli"
)

func (cfg *EvalConfig) dotEnvOpt(_ *cli.Context, a string) (any, error) {
	cfg.DotEnv = append(cfg.DotEnv, a)
	return a, nil
}

// evalOptions builds options for doc. getenv() consults the -dotenv
// files before the process environment.
func (cfg *EvalConfig) evalOptions(doc *ir.Node) (*eval.EvalOptions, error) {
	opts := &eval.EvalOptions{Doc: doc}
	if len(cfg.DotEnv) == 0 {
		return opts, nil
	}
	vars, err := godotenv.Read(cfg.DotEnv...)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", strings.Join(cfg.DotEnv, ", "), err)
	}
	opts.Getenv = func(k string) string {
		if v, ok := vars[k]; ok {
			return v
		}
		return os.Getenv(k)
	}
	return opts, nil
}

// env combines the entries of doc, the variables in $CNT_ENV and the -e
// settings. Later sources take precedence.
func (cfg *EvalConfig) env(doc *ir.Node) (eval.Env, error) {
	res := eval.DocEnv(doc)
	envEnv, err := eval.LoadEnv(os.Getenv)
	if err != nil {
		return nil, err
	}
	for k, v := range envEnv {
		res[k] = v
	}
	for k, v := range cfg.Env {
		res[k] = v
	}
	return res, nil
}

func evalExpr(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	src := args[0]
	if len(args) == 1 {
		return evalOne(cfg, cc, src, nil)
	}
	for _, file := range args[1:] {
		doc, err := loadDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		if err := evalOne(cfg, cc, src, doc); err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
	}
	return nil
}

func evalOne(cfg *EvalConfig, cc *cli.Context, src string, doc *ir.Node) error {
	opts, err := cfg.evalOptions(doc)
	if err != nil {
		return err
	}
	env, err := cfg.env(doc)
	if err != nil {
		return err
	}
	res, err := eval.Eval(src, env, opts)
	if err != nil {
		return err
	}
	return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
}

func expand(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	for i, file := range inputs(args) {
		doc, err := loadDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		opts, err := cfg.evalOptions(doc)
		if err != nil {
			return err
		}
		env, err := cfg.env(doc)
		if err != nil {
			return err
		}
		res, err := eval.ExpandNode(doc, env, opts)
		if err != nil {
			return fmt.Errorf("error expanding %s: %w", file, err)
		}
		if i > 0 && cfg.outFormat().IsCNT() {
			fmt.Fprintln(cc.Out)
		}
		if err := encode.EncodeDocument(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}

func envOptTypeFunc(env map[string]any) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if err := envFunc(env, a); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

// envFunc sets one -e name=value. The value is read as YAML so that
// numbers and lists keep their type; a dotted name nests.
func envFunc(env map[string]any, a string) error {
	name, raw, ok := strings.Cut(a, "=")
	if !ok || name == "" {
		return fmt.Errorf("%w: -e %q: want name=value", cli.ErrUsage, a)
	}
	var v any
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
		return fmt.Errorf("-e %s: %w", name, err)
	}
	keys := strings.Split(name, ".")
	last := len(keys) - 1
	m := env
	for i, k := range keys[:last] {
		if m[k] == nil {
			m[k] = map[string]any{}
		}
		sub, isMap := m[k].(map[string]any)
		if !isMap {
			return fmt.Errorf("-e %s: %s is not an object", name, strings.Join(keys[:i+1], "."))
		}
		m = sub
	}
	m[keys[last]] = v
	return nil
}
