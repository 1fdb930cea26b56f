// Package simplify rewrites expression trees to a fixed point.
//
// Each pass rebuilds the tree bottom-up, applying the first matching rule at
// every operator node and passing over the rewritten subtree again until no
// rule matches there. Passes repeat until one leaves the tree unchanged.
// Rules only shrink the tree, fold constants, push products below sums or
// sort operands; none of them undoes another, so the loop terminates.
//
// Trees containing sin, cos, tan, log or exp are rejected as a whole with
// ast.ErrUnsupported.
package simplify

import (
	"fmt"

	"github.com/signadot/symx/ast"
	"github.com/signadot/symx/debug"
)

const DefaultMaxPasses = 64

type Simplifier struct {
	maxPasses int
	trace     func(pass int, n ast.Node)
}

type Option func(*Simplifier)

// MaxPasses caps the number of rewrite passes. A pass already rewrites
// every node until no rule matches it, so the cap only guards against a
// rule set that fails to terminate.
func MaxPasses(n int) Option {
	return func(s *Simplifier) { s.maxPasses = n }
}

// Trace registers fn to be called with the tree produced by each pass that
// changed it.
func Trace(fn func(pass int, n ast.Node)) Option {
	return func(s *Simplifier) { s.trace = fn }
}

func New(opts ...Option) *Simplifier {
	s := &Simplifier{maxPasses: DefaultMaxPasses}
	for _, f := range opts {
		f(s)
	}
	return s
}

// Simplify returns a reduced tree equivalent to n. n is not modified.
func (s *Simplifier) Simplify(n ast.Node) (ast.Node, error) {
	if name, ok := ast.ContainsFunction(n); ok {
		return nil, fmt.Errorf("%w: cannot simplify %s(...)", ast.ErrUnsupported, name)
	}
	passes := max(s.maxPasses, 1)
	for i := 1; i <= passes; i++ {
		next := s.pass(n, nil)
		if ast.Equal(next, n) {
			return next, nil
		}
		if s.trace != nil {
			s.trace(i, next)
		}
		n = next
	}
	if debug.Simplify() {
		debug.Logf("simplify: no fixed point after %d passes: %s\n", passes, n)
	}
	return n, nil
}

// Simplify simplifies n with default options.
func Simplify(n ast.Node) (ast.Node, error) {
	return New().Simplify(n)
}

func (s *Simplifier) pass(n ast.Node, path ast.Path) ast.Node {
	switch x := n.(type) {
	case *ast.Constant:
		return ast.Num(x.Value)
	case *ast.Variable:
		return ast.Var(x.Name)
	case *ast.Operator:
		if x.IsFunction() {
			return ast.Func(x.Symbol, s.pass(x.Left, path.Append(ast.LeftSide)))
		}
		o := ast.Binary(x.Symbol,
			s.pass(x.Left, path.Append(ast.LeftSide)),
			s.pass(x.Right, path.Append(ast.RightSide)))
		for _, r := range rules {
			res, ok := r.apply(o)
			if !ok {
				continue
			}
			if debug.Simplify() {
				debug.Logf("simplify %s at %s: %s -> %s\n", r.name, path, o, res)
			}
			// rewrites like distribute leave fresh products below res
			return s.pass(res, path)
		}
		return o
	}
	return n
}
