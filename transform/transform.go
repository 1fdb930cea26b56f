// Package transform runs the parse, rewrite and print cycle behind every
// string level operation.
//
// A Transformer holds a parser configuration, a Simplifier and a
// Factorizer. Differentiators, integrators and substitutors are built per
// call, so a Transformer may be shared between goroutines.
package transform

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/signadot/symx/ast"
	"github.com/signadot/symx/deriv"
	"github.com/signadot/symx/integrate"
	"github.com/signadot/symx/parse"
	"github.com/signadot/symx/poly"
	"github.com/signadot/symx/simplify"
	"github.com/signadot/symx/subst"
	"github.com/signadot/symx/token"
)

// DefaultVariable is used by chain steps that name no variable.
const DefaultVariable = "x"

var ErrEmptyVariable = errors.New("empty variable name")

// Factorizer classifies and factors polynomials.
type Factorizer interface {
	IsPolynomial(n ast.Node) bool
	Degree(n ast.Node, variable string) (int, error)
	Factor(n ast.Node, variable string) (ast.Node, error)
}

type Transformer struct {
	parseOpts []parse.ParseOption
	simp      *simplify.Simplifier
	intOpts   []integrate.Option
	fact      Factorizer
	log       *slog.Logger
}

type Option func(*Transformer)

func WithLogger(l *slog.Logger) Option {
	return func(t *Transformer) { t.log = l }
}

func WithFactorizer(f Factorizer) Option {
	return func(t *Transformer) { t.fact = f }
}

func WithSimplifier(s *simplify.Simplifier) Option {
	return func(t *Transformer) { t.simp = s }
}

// WithIntegratorOptions configures the integrators built for Integrate and
// Definite.
func WithIntegratorOptions(opts ...integrate.Option) Option {
	return func(t *Transformer) { t.intOpts = append(t.intOpts, opts...) }
}

func WithParseOptions(opts ...parse.ParseOption) Option {
	return func(t *Transformer) { t.parseOpts = append(t.parseOpts, opts...) }
}

func New(opts ...Option) *Transformer {
	t := &Transformer{}
	for _, f := range opts {
		f(t)
	}
	if t.simp == nil {
		t.simp = simplify.New()
	}
	if t.fact == nil {
		t.fact = poly.Factorizer{}
	}
	if t.log == nil {
		t.log = slog.Default()
	}
	return t
}

// Parse parses expr, failing with token.ErrEmptyInput on blank input.
func (t *Transformer) Parse(expr string) (ast.Node, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, token.ErrEmptyInput
	}
	return parse.ParseString(expr, t.parseOpts...)
}

func (t *Transformer) Simplify(expr string) (string, error) {
	n, err := t.Parse(expr)
	if err != nil {
		return "", err
	}
	res, err := t.simp.Simplify(n)
	if err != nil {
		return "", err
	}
	t.log.Debug("simplify", "expr", expr, "result", res)
	return res.String(), nil
}

// Differentiate returns the simplified derivative of expr with respect to
// variable.
func (t *Transformer) Differentiate(expr, variable string) (string, error) {
	n, err := t.Parse(expr)
	if err != nil {
		return "", err
	}
	if variable == "" {
		return "", ErrEmptyVariable
	}
	d, err := deriv.New(variable).Differentiate(n)
	if err != nil {
		return "", err
	}
	res, err := t.simp.Simplify(d)
	if err != nil {
		return "", err
	}
	t.log.Debug("differentiate", "expr", expr, "variable", variable, "result", res)
	return res.String(), nil
}

// Integrate returns a simplified antiderivative of expr with respect to
// variable.
func (t *Transformer) Integrate(expr, variable string) (string, error) {
	n, err := t.Parse(expr)
	if err != nil {
		return "", err
	}
	if variable == "" {
		return "", ErrEmptyVariable
	}
	f, err := t.integrator(variable).Integrate(n)
	if err != nil {
		return "", err
	}
	res, err := t.simp.Simplify(f)
	if err != nil {
		return "", err
	}
	t.log.Debug("integrate", "expr", expr, "variable", variable, "result", res)
	return res.String(), nil
}

// Definite integrates expr with respect to variable between lower and
// upper.
func (t *Transformer) Definite(expr, variable string, lower, upper float64) (float64, error) {
	n, err := t.Parse(expr)
	if err != nil {
		return 0, err
	}
	if variable == "" {
		return 0, ErrEmptyVariable
	}
	res, err := t.integrator(variable).Definite(n, lower, upper)
	if err != nil {
		return 0, err
	}
	t.log.Debug("definite", "expr", expr, "variable", variable, "lower", lower, "upper", upper, "result", res)
	return res, nil
}

func (t *Transformer) integrator(variable string) *integrate.Integrator {
	opts := append([]integrate.Option{integrate.WithSimplifier(t.simp)}, t.intOpts...)
	return integrate.New(variable, opts...)
}

// Substitute replaces variable in expr by value, a number or an
// expression. The result is not simplified.
func (t *Transformer) Substitute(expr, variable, value string) (string, error) {
	n, err := t.Parse(expr)
	if err != nil {
		return "", err
	}
	if variable == "" {
		return "", ErrEmptyVariable
	}
	repl, err := t.value(value)
	if err != nil {
		return "", err
	}
	res := subst.New(variable, repl).Substitute(n)
	t.log.Debug("substitute", "expr", expr, "variable", variable, "value", value, "result", res)
	return res.String(), nil
}

func (t *Transformer) value(v string) (ast.Node, error) {
	if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
		return ast.Num(f), nil
	}
	n, err := t.Parse(v)
	if err != nil {
		return nil, fmt.Errorf("substitution value %q: %w", v, err)
	}
	return n, nil
}

func (t *Transformer) SubstituteAndEvaluate(expr, variable string, value float64) (float64, error) {
	n, err := t.Parse(expr)
	if err != nil {
		return 0, err
	}
	if variable == "" {
		return 0, ErrEmptyVariable
	}
	res, err := subst.Value(variable, value).SubstituteAndEvaluate(n, nil)
	if err != nil {
		return 0, err
	}
	t.log.Debug("substitute and evaluate", "expr", expr, "variable", variable, "value", value, "result", res)
	return res, nil
}

func (t *Transformer) Evaluate(expr string, bindings map[string]float64) (float64, error) {
	n, err := t.Parse(expr)
	if err != nil {
		return 0, err
	}
	res, err := ast.Evaluate(n, bindings)
	if err != nil {
		return 0, err
	}
	t.log.Debug("evaluate", "expr", expr, "bindings", bindings, "result", res)
	return res, nil
}

// Factor factors expr as a polynomial in variable.
func (t *Transformer) Factor(expr, variable string) (string, error) {
	n, err := t.Parse(expr)
	if err != nil {
		return "", err
	}
	if variable == "" {
		return "", ErrEmptyVariable
	}
	res, err := t.fact.Factor(n, variable)
	if err != nil {
		return "", err
	}
	t.log.Debug("factor", "expr", expr, "variable", variable, "result", res)
	return res.String(), nil
}
