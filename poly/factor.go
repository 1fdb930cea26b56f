package poly

import (
	"math"
	"sort"

	"github.com/signadot/symx/ast"
)

// Factor factors the univariate polynomial n over the rationals as far as
// its rational roots allow:
//
//	content * variable^m * (q1*variable - p1)^k1 * ... * rest
//
// Linear factors are ordered by ascending root and rest is the part
// without rational roots. Polynomials whose coefficients are not all
// integers are returned unchanged.
func Factor(n ast.Node, variable string) (ast.Node, error) {
	cs, err := Coefficients(n, variable)
	if err != nil {
		return nil, err
	}
	a, ok := integers(cs)
	if !ok {
		return ast.Clone(n), nil
	}
	if len(a) == 1 {
		return ast.Num(float64(a[0])), nil
	}

	var factors []ast.Node
	content := gcdAll(a)
	if a[len(a)-1] < 0 {
		content = -content
	}
	for i := range a {
		a[i] /= content
	}
	if content != 1 {
		factors = append(factors, ast.Num(float64(content)))
	}

	m := 0
	for a[m] == 0 {
		m++
	}
	a = a[m:]
	if m > 0 {
		factors = append(factors, power(ast.Var(variable), m))
	}

	for _, r := range candidates(a[0], a[len(a)-1]) {
		k := 0
		for len(a) > 1 {
			q, ok := deflate(a, r)
			if !ok {
				break
			}
			a = q
			k++
		}
		if k > 0 {
			factors = append(factors, power(linear(r, variable), k))
		}
	}
	if len(a) > 1 {
		factors = append(factors, build(a, variable))
	}

	if len(factors) == 0 {
		return ast.Num(1), nil
	}
	res := factors[0]
	for _, f := range factors[1:] {
		res = ast.Mul(res, f)
	}
	return res, nil
}

// Factorizer exposes the package functions as a value.
type Factorizer struct{}

func (Factorizer) IsPolynomial(n ast.Node) bool { return IsPolynomial(n) }

func (Factorizer) Degree(n ast.Node, variable string) (int, error) {
	return Degree(n, variable)
}

func (Factorizer) Factor(n ast.Node, variable string) (ast.Node, error) {
	return Factor(n, variable)
}

// root is the rational p/q with q > 0 in lowest terms.
type root struct {
	p, q int64
}

func (r root) value() float64 { return float64(r.p) / float64(r.q) }

// candidates lists the rational roots p/q allowed by the rational root
// theorem, p dividing a0 and q dividing an, in ascending order.
func candidates(a0, an int64) []root {
	seen := map[root]bool{}
	var res []root
	for _, p := range divisors(a0) {
		for _, q := range divisors(an) {
			g := gcd(p, q)
			for _, s := range []int64{-1, 1} {
				r := root{p: s * p / g, q: q / g}
				if !seen[r] {
					seen[r] = true
					res = append(res, r)
				}
			}
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].value() < res[j].value() })
	return res
}

// deflate divides a (lowest degree first) by q*x - p, reporting whether
// the division is exact.
func deflate(a []int64, r root) ([]int64, bool) {
	n := len(a) - 1
	b := make([]int64, n)
	if a[n]%r.q != 0 {
		return nil, false
	}
	b[n-1] = a[n] / r.q
	for i := n - 1; i >= 1; i-- {
		num := a[i] + r.p*b[i]
		if num%r.q != 0 {
			return nil, false
		}
		b[i-1] = num / r.q
	}
	if a[0] != -r.p*b[0] {
		return nil, false
	}
	return b, true
}

func linear(r root, variable string) ast.Node {
	var lhs ast.Node = ast.Var(variable)
	if r.q != 1 {
		lhs = ast.Mul(ast.Num(float64(r.q)), lhs)
	}
	if r.p < 0 {
		return ast.Add(lhs, ast.Num(float64(-r.p)))
	}
	return ast.Sub(lhs, ast.Num(float64(r.p)))
}

func power(n ast.Node, k int) ast.Node {
	if k == 1 {
		return n
	}
	return ast.Pow(n, ast.Num(float64(k)))
}

// build renders the coefficients a, lowest degree first, highest degree
// term first.
func build(a []int64, variable string) ast.Node {
	var res ast.Node
	for k := len(a) - 1; k >= 0; k-- {
		c := a[k]
		if c == 0 {
			continue
		}
		neg := c < 0 && res != nil
		if neg {
			c = -c
		}
		var term ast.Node
		switch {
		case k == 0:
			term = ast.Num(float64(c))
		case c == 1:
			term = power(ast.Var(variable), k)
		default:
			term = ast.Mul(ast.Num(float64(c)), power(ast.Var(variable), k))
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

// 2^53, beyond which float64 no longer holds every integer.
const maxExact = 1 << 53

func integers(cs []float64) ([]int64, bool) {
	res := make([]int64, len(cs))
	for i, c := range cs {
		if c != math.Trunc(c) || math.Abs(c) > maxExact {
			return nil, false
		}
		res[i] = int64(c)
	}
	return res, true
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func gcdAll(a []int64) int64 {
	var g int64
	for _, c := range a {
		g = gcd(g, c)
	}
	return g
}

// divisors returns the positive divisors of |n| in ascending order.
func divisors(n int64) []int64 {
	if n < 0 {
		n = -n
	}
	var lo, hi []int64
	for d := int64(1); d*d <= n; d++ {
		if n%d != 0 {
			continue
		}
		lo = append(lo, d)
		if d != n/d {
			hi = append(hi, n/d)
		}
	}
	for i := len(hi) - 1; i >= 0; i-- {
		lo = append(lo, hi[i])
	}
	return lo
}
