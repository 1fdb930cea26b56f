package integrate

import "github.com/signadot/symx/ast"

// cost orders integrands by how hard they are to integrate. coupled counts
// the operators whose operands both depend on the variable (the products,
// quotients and powers that need integration by parts); weight breaks ties.
type cost struct {
	coupled int
	weight  float64
}

func (c cost) less(o cost) bool {
	if c.coupled != o.coupled {
		return c.coupled < o.coupled
	}
	return c.weight < o.weight
}

func complexity(n ast.Node, variable string) cost {
	res := cost{}
	ast.Walk(n, func(x ast.Node) bool {
		o, ok := x.(*ast.Operator)
		if !ok {
			res.weight++
			return true
		}
		res.weight += opWeight(o.Symbol)
		if o.IsFunction() {
			res.coupled++
			return true
		}
		switch o.Symbol {
		case "*":
			if ast.Contains(o.Left, variable) && ast.Contains(o.Right, variable) {
				res.coupled++
			}
		case "/", "^":
			if ast.Contains(o.Right, variable) {
				res.coupled++
			}
		}
		return true
	})
	return res
}

func opWeight(sym string) float64 {
	switch sym {
	case "+", "-":
		return 1
	case "*":
		return 1.5
	case "/", "^":
		return 2
	}
	return 3
}
