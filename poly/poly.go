// Package poly classifies expression trees as polynomials and factors
// univariate polynomials with integer coefficients.
package poly

import (
	"errors"
	"fmt"
	"math"

	"github.com/signadot/symx/ast"
)

var ErrNotPolynomial = errors.New("not a polynomial")

// maxPower bounds the exponents expanded by Coefficients.
const maxPower = 64

// IsPolynomial reports whether n is built from constants and variables
// with +, -, *, division by a non-zero constant and non-negative integer
// powers.
func IsPolynomial(n ast.Node) bool {
	switch x := n.(type) {
	case *ast.Constant, *ast.Variable:
		return true
	case *ast.Operator:
		if x.IsFunction() {
			return false
		}
		switch x.Symbol {
		case "+", "-", "*":
			return IsPolynomial(x.Left) && IsPolynomial(x.Right)
		case "/":
			c, ok := constValue(x.Right)
			return ok && c != 0 && IsPolynomial(x.Left)
		case "^":
			_, ok := exponent(x.Right)
			return ok && IsPolynomial(x.Left)
		}
	}
	return false
}

// Degree returns the degree of n in variable. Sums take the larger degree
// of their operands without looking for cancellation, products add,
// quotients subtract and integer powers multiply.
func Degree(n ast.Node, variable string) (int, error) {
	switch x := n.(type) {
	case *ast.Constant:
		return 0, nil
	case *ast.Variable:
		if x.Name == variable {
			return 1, nil
		}
		return 0, nil
	case *ast.Operator:
		if !ast.Contains(x, variable) {
			return 0, nil
		}
		if x.IsFunction() {
			return 0, fmt.Errorf("%w: %s(...) depends on %s", ErrNotPolynomial, x.Symbol, variable)
		}
		if x.Symbol == "^" {
			k, ok := intValue(x.Right)
			if !ok {
				return 0, fmt.Errorf("%w: exponent of %s", ErrNotPolynomial, x)
			}
			d, err := Degree(x.Left, variable)
			if err != nil {
				return 0, err
			}
			return boundDegree(int64(d)*int64(k), x)
		}
		l, err := Degree(x.Left, variable)
		if err != nil {
			return 0, err
		}
		r, err := Degree(x.Right, variable)
		if err != nil {
			return 0, err
		}
		switch x.Symbol {
		case "+", "-":
			return max(l, r), nil
		case "*":
			return boundDegree(int64(l)+int64(r), x)
		case "/":
			return boundDegree(int64(l)-int64(r), x)
		}
		return 0, fmt.Errorf("%w: unknown operator %q", ast.ErrUnsupported, x.Symbol)
	}
	return 0, fmt.Errorf("%w: %T", ErrNotPolynomial, n)
}

// boundDegree keeps degrees within the exponents intValue accepts.
func boundDegree(d int64, n ast.Node) (int, error) {
	if d > math.MaxInt32 || d < -math.MaxInt32 {
		return 0, fmt.Errorf("%w: degree of %s out of range", ErrNotPolynomial, n)
	}
	return int(d), nil
}

// Coefficients expands n, which may only mention variable, and returns its
// coefficients lowest degree first. Trailing zero coefficients are
// dropped, so the zero polynomial is [0].
func Coefficients(n ast.Node, variable string) ([]float64, error) {
	cs, err := coefficients(n, variable)
	if err != nil {
		return nil, err
	}
	return trim(cs), nil
}

func coefficients(n ast.Node, variable string) ([]float64, error) {
	switch x := n.(type) {
	case *ast.Constant:
		return []float64{x.Value}, nil
	case *ast.Variable:
		if x.Name != variable {
			return nil, fmt.Errorf("%w: %s is not univariate in %s", ErrNotPolynomial, x.Name, variable)
		}
		return []float64{0, 1}, nil
	case *ast.Operator:
		if x.IsFunction() {
			return nil, fmt.Errorf("%w: %s(...)", ErrNotPolynomial, x.Symbol)
		}
		switch x.Symbol {
		case "/":
			c, ok := constValue(x.Right)
			if !ok || c == 0 {
				return nil, fmt.Errorf("%w: division by %s", ErrNotPolynomial, x.Right)
			}
			l, err := coefficients(x.Left, variable)
			if err != nil {
				return nil, err
			}
			return scale(l, 1/c), nil
		case "^":
			k, ok := exponent(x.Right)
			if !ok || k > maxPower {
				return nil, fmt.Errorf("%w: exponent of %s", ErrNotPolynomial, x)
			}
			base, err := coefficients(x.Left, variable)
			if err != nil {
				return nil, err
			}
			res := []float64{1}
			for range k {
				res = mul(res, base)
			}
			return res, nil
		}
		l, err := coefficients(x.Left, variable)
		if err != nil {
			return nil, err
		}
		r, err := coefficients(x.Right, variable)
		if err != nil {
			return nil, err
		}
		switch x.Symbol {
		case "+":
			return add(l, r), nil
		case "-":
			return add(l, scale(r, -1)), nil
		case "*":
			return mul(l, r), nil
		}
		return nil, fmt.Errorf("%w: unknown operator %q", ast.ErrUnsupported, x.Symbol)
	}
	return nil, fmt.Errorf("%w: %T", ErrNotPolynomial, n)
}

func add(a, b []float64) []float64 {
	if len(a) < len(b) {
		a, b = b, a
	}
	res := append([]float64(nil), a...)
	for i, c := range b {
		res[i] += c
	}
	return res
}

func mul(a, b []float64) []float64 {
	res := make([]float64, len(a)+len(b)-1)
	for i, x := range a {
		for j, y := range b {
			res[i+j] += x * y
		}
	}
	return res
}

func scale(a []float64, k float64) []float64 {
	res := make([]float64, len(a))
	for i, c := range a {
		res[i] = c * k
	}
	return res
}

func trim(cs []float64) []float64 {
	i := len(cs)
	for i > 1 && cs[i-1] == 0 {
		i--
	}
	return cs[:i]
}

// constValue evaluates n when it mentions no variables.
func constValue(n ast.Node) (float64, bool) {
	if len(ast.Variables(n)) != 0 {
		return 0, false
	}
	if _, ok := ast.ContainsFunction(n); ok {
		return 0, false
	}
	v, err := ast.Evaluate(n, nil)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func intValue(n ast.Node) (int, bool) {
	v, ok := constValue(n)
	if !ok || v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		return 0, false
	}
	return int(v), true
}

// exponent accepts non-negative integer exponents.
func exponent(n ast.Node) (int, bool) {
	k, ok := intValue(n)
	return k, ok && k >= 0
}
