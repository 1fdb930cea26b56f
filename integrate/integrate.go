// Package integrate computes antiderivatives of expression trees.
//
// Results carry no integration constant and are not simplified. Products
// that are neither a constant multiple of something integrable nor a
// polynomial in the variable are handled by integration by parts, which only recurses when the new integrand is
// strictly less complex than the product it came from.
package integrate

import (
	"fmt"
	"math"

	"github.com/signadot/symx/ast"
	"github.com/signadot/symx/debug"
	"github.com/signadot/symx/deriv"
	"github.com/signadot/symx/poly"
	"github.com/signadot/symx/simplify"
)

const DefaultMaxDepth = 32

type Integrator struct {
	Variable string

	maxDepth int
	diff     *deriv.Differentiator
	simp     *simplify.Simplifier
}

type Option func(*Integrator)

// MaxDepth caps the nesting of integration by parts and quotient
// rewriting.
func MaxDepth(n int) Option {
	return func(in *Integrator) { in.maxDepth = n }
}

// WithSimplifier sets the simplifier applied to by-parts integrands.
func WithSimplifier(s *simplify.Simplifier) Option {
	return func(in *Integrator) { in.simp = s }
}

func New(variable string, opts ...Option) *Integrator {
	in := &Integrator{
		Variable: variable,
		maxDepth: DefaultMaxDepth,
		diff:     deriv.New(variable),
	}
	for _, f := range opts {
		f(in)
	}
	if in.simp == nil {
		in.simp = simplify.New()
	}
	return in
}

// Integrate returns an antiderivative of n with respect to the
// integrator's variable.
func (in *Integrator) Integrate(n ast.Node) (ast.Node, error) {
	if name, ok := ast.ContainsFunction(n); ok {
		return nil, fmt.Errorf("%w: integral of %s(...)", ast.ErrUnsupported, name)
	}
	res, err := in.integrate(n, 0)
	if err != nil {
		return nil, err
	}
	if debug.Integrate() {
		debug.Logf("integral d%s %s = %s\n", in.Variable, n, res)
	}
	return res, nil
}

// Definite evaluates the integral of n between lower and upper.
func (in *Integrator) Definite(n ast.Node, lower, upper float64) (float64, error) {
	f, err := in.Integrate(n)
	if err != nil {
		return 0, err
	}
	hi, err := ast.Evaluate(f, map[string]float64{in.Variable: upper})
	if err != nil {
		return 0, err
	}
	lo, err := ast.Evaluate(f, map[string]float64{in.Variable: lower})
	if err != nil {
		return 0, err
	}
	return hi - lo, nil
}

func (in *Integrator) x() ast.Node {
	return ast.Var(in.Variable)
}

func (in *Integrator) integrate(n ast.Node, depth int) (ast.Node, error) {
	if in.maxDepth > 0 && depth > in.maxDepth {
		return nil, fmt.Errorf("%w: integration nested deeper than %d", ast.ErrUnsupported, in.maxDepth)
	}
	switch x := n.(type) {
	case *ast.Constant:
		return ast.Mul(ast.Num(x.Value), in.x()), nil
	case *ast.Variable:
		if x.Name == in.Variable {
			return ast.Div(ast.Pow(in.x(), ast.Num(2)), ast.Num(2)), nil
		}
		return ast.Mul(ast.Var(x.Name), in.x()), nil
	case *ast.Operator:
		return in.integrateOp(x, depth)
	}
	return nil, fmt.Errorf("%w: cannot integrate %T", ast.ErrUnsupported, n)
}

func (in *Integrator) integrateOp(o *ast.Operator, depth int) (ast.Node, error) {
	if o.IsFunction() {
		return nil, fmt.Errorf("%w: integral of %s(...)", ast.ErrUnsupported, o.Symbol)
	}
	if !ast.Contains(o, in.Variable) {
		return ast.Mul(ast.Clone(o), in.x()), nil
	}
	switch o.Symbol {
	case "+", "-":
		l, err := in.integrate(o.Left, depth)
		if err != nil {
			return nil, err
		}
		r, err := in.integrate(o.Right, depth)
		if err != nil {
			return nil, err
		}
		return ast.Binary(o.Symbol, l, r), nil
	case "*":
		return in.product(o, depth)
	case "/":
		return in.quotient(o, depth)
	case "^":
		if ast.IsVar(o.Left, in.Variable) {
			return in.power(o)
		}
		if cs, err := poly.Coefficients(o, in.Variable); err == nil {
			return in.polynomial(cs), nil
		}
		return nil, fmt.Errorf("%w: integral of %s", ast.ErrUnsupported, o)
	}
	return nil, fmt.Errorf("%w: unknown operator %q", ast.ErrUnsupported, o.Symbol)
}

func (in *Integrator) product(o *ast.Operator, depth int) (ast.Node, error) {
	// a factor free of the variable scales the other factor's integral
	if !ast.Contains(o.Left, in.Variable) {
		r, err := in.integrate(o.Right, depth)
		if err != nil {
			return nil, err
		}
		return ast.Mul(ast.Clone(o.Left), r), nil
	}
	if !ast.Contains(o.Right, in.Variable) {
		l, err := in.integrate(o.Left, depth)
		if err != nil {
			return nil, err
		}
		return ast.Mul(ast.Clone(o.Right), l), nil
	}
	// x^a * x^b
	if a, ok := in.monomial(o.Left); ok {
		if b, ok := in.monomial(o.Right); ok {
			return in.power(ast.Pow(in.x(), ast.Num(a+b)))
		}
	}
	if cs, err := poly.Coefficients(o, in.Variable); err == nil {
		return in.polynomial(cs), nil
	}
	return in.byParts(o, depth)
}

// byParts integrates u * v' as u*v - ∫(v * u'), where u is the larger
// operand.
func (in *Integrator) byParts(o *ast.Operator, depth int) (ast.Node, error) {
	u, dv := o.Left, o.Right
	if ast.Size(o.Right) > ast.Size(o.Left) {
		u, dv = o.Right, o.Left
	}
	du, err := in.diff.Differentiate(u)
	if err != nil {
		return nil, err
	}
	v, err := in.integrate(dv, depth+1)
	if err != nil {
		return nil, err
	}
	next, err := in.simp.Simplify(ast.Mul(v, du))
	if err != nil {
		return nil, err
	}
	if !complexity(next, in.Variable).less(complexity(o, in.Variable)) {
		return nil, fmt.Errorf("%w: cannot reduce integrand %s", ast.ErrUnsupported, o)
	}
	if debug.Integrate() {
		debug.Logf("by parts on %s: u = %s, v = %s, next = %s\n", o, u, v, next)
	}
	rest, err := in.integrate(next, depth+1)
	if err != nil {
		return nil, err
	}
	return ast.Sub(ast.Mul(ast.Clone(u), ast.Clone(v)), rest), nil
}

func (in *Integrator) quotient(o *ast.Operator, depth int) (ast.Node, error) {
	if c, ok := o.Right.(*ast.Constant); ok {
		l, err := in.integrate(o.Left, depth)
		if err != nil {
			return nil, err
		}
		return ast.Div(l, ast.Num(c.Value)), nil
	}
	// u / d -> u * d^(-1)
	return in.integrate(
		ast.Mul(ast.Clone(o.Left), ast.Pow(ast.Clone(o.Right), ast.Num(-1))),
		depth+1,
	)
}

func (in *Integrator) power(o *ast.Operator) (ast.Node, error) {
	e, ok := o.Right.(*ast.Constant)
	if !ok || !ast.IsVar(o.Left, in.Variable) {
		return nil, fmt.Errorf("%w: integral of %s", ast.ErrUnsupported, o)
	}
	if e.Value == -1 {
		return nil, fmt.Errorf("%w: integral of %s needs a logarithm", ast.ErrUnsupported, o)
	}
	n := e.Value + 1
	return ast.Div(ast.Pow(in.x(), ast.Num(n)), ast.Num(n)), nil
}

// polynomial integrates the polynomial with coefficients cs (lowest degree
// first) term by term, highest degree first.
func (in *Integrator) polynomial(cs []float64) ast.Node {
	var res ast.Node
	for k := len(cs) - 1; k >= 0; k-- {
		c := cs[k]
		if c == 0 {
			continue
		}
		n := float64(k + 1)
		neg := c < 0 && res != nil
		if neg {
			c = -c
		}
		term := in.x()
		if n != 1 {
			term = ast.Pow(term, ast.Num(n))
		}
		switch q := c / n; {
		case q == 1:
		case q == math.Trunc(q):
			term = ast.Mul(ast.Num(q), term)
		case c == 1:
			term = ast.Div(term, ast.Num(n))
		default:
			term = ast.Div(ast.Mul(ast.Num(c), term), ast.Num(n))
		}
		switch {
		case res == nil:
			res = term
		case neg:
			res = ast.Sub(res, term)
		default:
			res = ast.Add(res, term)
		}
	}
	if res == nil {
		return ast.Num(0)
	}
	return res
}

// monomial reports the exponent of n when it is the variable or the
// variable raised to a constant.
func (in *Integrator) monomial(n ast.Node) (float64, bool) {
	if ast.IsVar(n, in.Variable) {
		return 1, true
	}
	o, ok := n.(*ast.Operator)
	if !ok || o.Symbol != "^" || !ast.IsVar(o.Left, in.Variable) {
		return 0, false
	}
	c, ok := o.Right.(*ast.Constant)
	if !ok {
		return 0, false
	}
	return c.Value, true
}
