// Package subst replaces variables in expression trees.
package subst

import (
	"sort"

	"github.com/signadot/symx/ast"
	"github.com/signadot/symx/debug"
)

type Substitutor struct {
	Variable    string
	Replacement ast.Node
}

func New(variable string, replacement ast.Node) *Substitutor {
	return &Substitutor{Variable: variable, Replacement: replacement}
}

// Value substitutes the constant v for variable.
func Value(variable string, v float64) *Substitutor {
	return New(variable, ast.Num(v))
}

// Substitute returns a copy of n with every occurrence of the variable
// replaced by its own copy of the replacement.
func (s *Substitutor) Substitute(n ast.Node) ast.Node {
	res := s.subst(n)
	if debug.Subst() {
		debug.Logf("subst %s := %s in %s -> %s\n", s.Variable, s.Replacement, n, res)
	}
	return res
}

func (s *Substitutor) subst(n ast.Node) ast.Node {
	switch x := n.(type) {
	case *ast.Constant:
		return ast.Num(x.Value)
	case *ast.Variable:
		if x.Name == s.Variable {
			return ast.Clone(s.Replacement)
		}
		return ast.Var(x.Name)
	case *ast.Operator:
		if x.IsFunction() {
			return ast.Func(x.Symbol, s.subst(x.Left))
		}
		return ast.Binary(x.Symbol, s.subst(x.Left), s.subst(x.Right))
	}
	return nil
}

// Requires reports whether n mentions the variable.
func (s *Substitutor) Requires(n ast.Node) bool {
	return ast.Contains(n, s.Variable)
}

// SubstituteAndEvaluate substitutes into n and evaluates the result with
// bindings for any remaining variables.
func (s *Substitutor) SubstituteAndEvaluate(n ast.Node, bindings map[string]float64) (float64, error) {
	return ast.Evaluate(s.Substitute(n), bindings)
}

// CheckValid reports whether substituting into n leaves an expression that
// evaluates, without division by zero, unbound variables or domain errors.
func (s *Substitutor) CheckValid(n ast.Node) bool {
	_, err := s.SubstituteAndEvaluate(n, nil)
	return err == nil
}

// Multiple applies one substitution per entry of mapping, in sorted key
// order, each to the result of the previous one. A replacement that
// mentions a later key is substituted again by that key's entry; mappings
// are only well defined when no replacement mentions a key.
func Multiple(n ast.Node, mapping map[string]ast.Node) ast.Node {
	keys := make([]string, 0, len(mapping))
	for k := range mapping {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	res := ast.Clone(n)
	for _, k := range keys {
		res = New(k, mapping[k]).Substitute(res)
	}
	return res
}
