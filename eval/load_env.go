package eval

import (
	"fmt"

	"github.com/cntlib/cnt/debug"
	"github.com/cntlib/cnt/parse"
)

const (
	EnvEnv = "CNT_ENV"
)

// LoadEnv reads variables from the environment variable CNT_ENV, which
// holds a cnt document such as `debug: true, profile: "fast"`. An unset
// variable gives a nil Env.
func LoadEnv(getenv func(string) string) (Env, error) {
	envEnv := getenv(EnvEnv)
	if envEnv == "" {
		return nil, nil
	}
	doc, err := parse.Parse([]byte(envEnv), parse.ParseStrict(true))
	if err != nil {
		return nil, fmt.Errorf("error decoding env $%s: %w", EnvEnv, err)
	}
	res := DocEnv(doc)
	if debug.Eval() {
		debug.Logf("loaded env from $%s: %s\n", EnvEnv, doc)
	}
	return res, nil
}
