// Package debug holds switches for developer tracing, read once from
// CNT_DEBUG_* environment variables. CNT_DEBUG=1 turns them all on.
package debug

import (
	"os"
	"strconv"
)

var on = map[string]bool{}

func init() {
	all := boolEnv("CNT_DEBUG")
	for _, k := range []string{"PARSE", "CONFIG", "PATCH", "MATCH", "EVAL", "JAVA", "DOWNLOAD"} {
		on[k] = all || boolEnv("CNT_DEBUG_"+k)
	}
}

func boolEnv(v string) bool {
	b, _ := strconv.ParseBool(os.Getenv(v))
	return b
}

func Parse() bool    { return on["PARSE"] }
func Config() bool   { return on["CONFIG"] }
func Patch() bool    { return on["PATCH"] }
func Match() bool    { return on["MATCH"] }
func Eval() bool     { return on["EVAL"] }
func Java() bool     { return on["JAVA"] }
func Download() bool { return on["DOWNLOAD"] }
