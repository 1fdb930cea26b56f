package transform

import (
	"errors"

	"github.com/signadot/symx/ast"
	"github.com/signadot/symx/poly"
)

// Analysis summarises an expression.
type Analysis struct {
	Variables    []string `json:"variables" yaml:"variables"`
	IsPolynomial bool     `json:"isPolynomial" yaml:"isPolynomial"`
	// Degree in DefaultVariable; 0 without variables and -1 when the
	// expression has no polynomial degree.
	Degree     int    `json:"degree" yaml:"degree"`
	Simplified string `json:"simplified" yaml:"simplified"`
}

func (t *Transformer) Analyze(expr string) (*Analysis, error) {
	n, err := t.Parse(expr)
	if err != nil {
		return nil, err
	}
	simp, err := t.simp.Simplify(n)
	if err != nil {
		return nil, err
	}
	res := &Analysis{
		Variables:    ast.SortedVariables(n),
		IsPolynomial: t.fact.IsPolynomial(n),
		Simplified:   simp.String(),
	}
	if len(res.Variables) != 0 {
		res.Degree, err = t.fact.Degree(n, DefaultVariable)
		switch {
		case errors.Is(err, poly.ErrNotPolynomial):
			res.Degree = -1
		case err != nil:
			return nil, err
		}
	}
	t.log.Debug("analyze", "expr", expr, "analysis", res)
	return res, nil
}
