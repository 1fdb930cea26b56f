package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Lex       bool
	Parse     bool
	Simplify  bool
	Diff      bool
	Integrate bool
	Subst     bool
	Eval      bool
}

var d *debug

func init() {
	d = &debug{}
	d.Lex = boolEnv("SYMX_DEBUG_LEX")
	d.Parse = boolEnv("SYMX_DEBUG_PARSE")
	d.Simplify = boolEnv("SYMX_DEBUG_SIMPLIFY")
	d.Diff = boolEnv("SYMX_DEBUG_DIFF")
	d.Integrate = boolEnv("SYMX_DEBUG_INTEGRATE")
	d.Subst = boolEnv("SYMX_DEBUG_SUBST")
	d.Eval = boolEnv("SYMX_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Lex() bool {
	return d.Lex
}
func Parse() bool {
	return d.Parse
}
func Simplify() bool {
	return d.Simplify
}
func Diff() bool {
	return d.Diff
}
func Integrate() bool {
	return d.Integrate
}
func Subst() bool {
	return d.Subst
}
func Eval() bool {
	return d.Eval
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
	os.Stderr.Write([]byte{'\n'})
}
