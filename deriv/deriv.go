// Package deriv differentiates expression trees structurally.
//
// Results are not simplified; run them through the simplify package.
package deriv

import (
	"fmt"

	"github.com/signadot/symx/ast"
	"github.com/signadot/symx/debug"
)

type Differentiator struct {
	Variable string
}

func New(variable string) *Differentiator {
	return &Differentiator{Variable: variable}
}

// Differentiate returns d/dv of n where v is the differentiator's variable.
func (d *Differentiator) Differentiate(n ast.Node) (ast.Node, error) {
	res, err := d.diff(n)
	if err != nil {
		return nil, err
	}
	if debug.Diff() {
		debug.Logf("d/d%s %s = %s\n", d.Variable, n, res)
	}
	return res, nil
}

func (d *Differentiator) diff(n ast.Node) (ast.Node, error) {
	switch x := n.(type) {
	case *ast.Constant:
		return ast.Num(0), nil
	case *ast.Variable:
		if x.Name == d.Variable {
			return ast.Num(1), nil
		}
		return ast.Num(0), nil
	case *ast.Operator:
		return d.diffOp(x)
	}
	return nil, fmt.Errorf("%w: cannot differentiate %T", ast.ErrUnsupported, n)
}

func (d *Differentiator) diffOp(o *ast.Operator) (ast.Node, error) {
	if o.IsFunction() {
		return nil, fmt.Errorf("%w: derivative of %s(...)", ast.ErrUnsupported, o.Symbol)
	}
	switch o.Symbol {
	case "+", "-":
		l, err := d.diff(o.Left)
		if err != nil {
			return nil, err
		}
		r, err := d.diff(o.Right)
		if err != nil {
			return nil, err
		}
		return ast.Binary(o.Symbol, l, r), nil
	case "*":
		return d.product(o)
	case "/":
		return d.quotient(o)
	case "^":
		return d.power(o)
	}
	return nil, fmt.Errorf("%w: unknown operator %q", ast.ErrUnsupported, o.Symbol)
}

func (d *Differentiator) product(o *ast.Operator) (ast.Node, error) {
	if c, ok := o.Left.(*ast.Constant); ok {
		r, err := d.diff(o.Right)
		if err != nil {
			return nil, err
		}
		return ast.Mul(ast.Num(c.Value), r), nil
	}
	if c, ok := o.Right.(*ast.Constant); ok {
		l, err := d.diff(o.Left)
		if err != nil {
			return nil, err
		}
		return ast.Mul(ast.Num(c.Value), l), nil
	}
	du, err := d.diff(o.Left)
	if err != nil {
		return nil, err
	}
	dv, err := d.diff(o.Right)
	if err != nil {
		return nil, err
	}
	return ast.Add(
		ast.Mul(du, ast.Clone(o.Right)),
		ast.Mul(ast.Clone(o.Left), dv),
	), nil
}

func (d *Differentiator) quotient(o *ast.Operator) (ast.Node, error) {
	du, err := d.diff(o.Left)
	if err != nil {
		return nil, err
	}
	if c, ok := o.Right.(*ast.Constant); ok {
		return ast.Div(du, ast.Num(c.Value)), nil
	}
	dv, err := d.diff(o.Right)
	if err != nil {
		return nil, err
	}
	// (u'v - uv') / v^2
	return ast.Div(
		ast.Sub(
			ast.Mul(du, ast.Clone(o.Right)),
			ast.Mul(ast.Clone(o.Left), dv),
		),
		ast.Pow(ast.Clone(o.Right), ast.Num(2)),
	), nil
}

func (d *Differentiator) power(o *ast.Operator) (ast.Node, error) {
	if err := checkFunctions(o); err != nil {
		return nil, err
	}
	if ast.IsVar(o.Left, d.Variable) {
		if c, ok := o.Right.(*ast.Constant); ok {
			return ast.Mul(ast.Num(c.Value), ast.Pow(ast.Var(d.Variable), ast.Num(c.Value-1))), nil
		}
		// e * x^(e - 1) for a general exponent e. This is not the full
		// chain rule when e depends on x.
		return ast.Mul(
			ast.Clone(o.Right),
			ast.Pow(ast.Var(d.Variable), ast.Sub(ast.Clone(o.Right), ast.Num(1))),
		), nil
	}
	if !ast.Contains(o, d.Variable) {
		return ast.Num(0), nil
	}
	c, ok := o.Right.(*ast.Constant)
	if !ok {
		return nil, fmt.Errorf("%w: derivative of %s with a non-constant exponent", ast.ErrUnsupported, o)
	}
	// chain rule: c * u^(c-1) * u'
	du, err := d.diff(o.Left)
	if err != nil {
		return nil, err
	}
	return ast.Mul(
		ast.Mul(ast.Num(c.Value), ast.Pow(ast.Clone(o.Left), ast.Num(c.Value-1))),
		du,
	), nil
}

func checkFunctions(n ast.Node) error {
	if name, ok := ast.ContainsFunction(n); ok {
		return fmt.Errorf("%w: derivative of %s(...)", ast.ErrUnsupported, name)
	}
	return nil
}
