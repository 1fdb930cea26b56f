// Package eval computes the numbers bound to expression variables from
// user supplied text: command line name=value pairs and the SYMX_ENV
// environment variable.
//
// Values are expr-lang expressions, so "1/3", "2^0.5" and "sin(pi/2)" are
// all accepted, and may refer to names bound before them.
package eval

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/goccy/go-yaml"
	"github.com/signadot/symx/debug"
)

// Env binds variable names to values.
type Env map[string]float64

var ErrBinding = errors.New("bad binding")

// Value evaluates s with the names in env in scope.
func Value(s string, env Env) (float64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, fmt.Errorf("%w: empty value", ErrBinding)
	}
	program, err := expr.Compile(s, exprOpts()...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBinding, err)
	}
	out, err := vm.Run(program, scope(env))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBinding, err)
	}
	v, err := toFloat(out)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrBinding, s, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q = %v\n", s, v)
	}
	return v, nil
}

func scope(env Env) map[string]any {
	res := make(map[string]any, len(env)+1)
	res["pi"] = math.Pi
	for k, v := range env {
		res[k] = v
	}
	return res
}

// Set binds name=value in env. The value is read as YAML first, so plain
// numbers keep their exact decoding; strings are evaluated with Value.
func Set(env Env, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected name=value", ErrBinding, a)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("%w: argument %q has no name", ErrBinding, a)
	}
	var v any
	if err := yaml.Unmarshal([]byte(val), &v); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrBinding, key, err)
	}
	f, err := bind(v, env)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	env[key] = f
	return nil
}

func bind(v any, env Env) (float64, error) {
	if s, ok := v.(string); ok {
		return Value(s, env)
	}
	f, err := toFloat(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBinding, err)
	}
	return f, nil
}
