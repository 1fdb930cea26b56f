package simplify

import (
	"math"

	"github.com/signadot/symx/ast"
)

type rule struct {
	name  string
	apply func(o *ast.Operator) (ast.Node, bool)
}

// rules in priority order; the first match wins at each node.
var rules = []rule{
	{"add-zero", addZero},
	{"mul-zero", mulZero},
	{"mul-one", mulOne},
	{"pow-zero", powZero},
	{"pow-one", powOne},
	{"pow-pow", powPow},
	{"distribute", distribute},
	{"sub-zero", subZero},
	{"div-one", divOne},
	{"zero-div", zeroDiv},
	{"fold", fold},
	{"order", order},
}

func addZero(o *ast.Operator) (ast.Node, bool) {
	if o.Symbol != "+" {
		return nil, false
	}
	if ast.IsConst(o.Right, 0) {
		return o.Left, true
	}
	if ast.IsConst(o.Left, 0) {
		return o.Right, true
	}
	return nil, false
}

func mulZero(o *ast.Operator) (ast.Node, bool) {
	if o.Symbol == "*" && (ast.IsConst(o.Left, 0) || ast.IsConst(o.Right, 0)) {
		return ast.Num(0), true
	}
	return nil, false
}

func mulOne(o *ast.Operator) (ast.Node, bool) {
	if o.Symbol != "*" {
		return nil, false
	}
	if ast.IsConst(o.Right, 1) {
		return o.Left, true
	}
	if ast.IsConst(o.Left, 1) {
		return o.Right, true
	}
	return nil, false
}

// powZero maps x^0 to 1 before 0^x to 0, so 0^0 is 1.
func powZero(o *ast.Operator) (ast.Node, bool) {
	if o.Symbol != "^" {
		return nil, false
	}
	if ast.IsConst(o.Right, 0) {
		return ast.Num(1), true
	}
	if ast.IsConst(o.Left, 0) {
		return ast.Num(0), true
	}
	return nil, false
}

func powOne(o *ast.Operator) (ast.Node, bool) {
	if o.Symbol == "^" && ast.IsConst(o.Right, 1) {
		return o.Left, true
	}
	return nil, false
}

// (x^n)^m -> x^(n*m)
func powPow(o *ast.Operator) (ast.Node, bool) {
	if o.Symbol != "^" {
		return nil, false
	}
	inner, ok := o.Left.(*ast.Operator)
	if !ok || inner.Symbol != "^" {
		return nil, false
	}
	return ast.Pow(inner.Left, ast.Mul(inner.Right, o.Right)), true
}

// a*(b+c) -> a*b + a*c
func distribute(o *ast.Operator) (ast.Node, bool) {
	if o.Symbol != "*" {
		return nil, false
	}
	sum, ok := o.Right.(*ast.Operator)
	if !ok || sum.Symbol != "+" {
		return nil, false
	}
	return ast.Add(
		ast.Mul(o.Left, sum.Left),
		ast.Mul(ast.Clone(o.Left), sum.Right),
	), true
}

func subZero(o *ast.Operator) (ast.Node, bool) {
	if o.Symbol == "-" && ast.IsConst(o.Right, 0) {
		return o.Left, true
	}
	return nil, false
}

func divOne(o *ast.Operator) (ast.Node, bool) {
	if o.Symbol == "/" && ast.IsConst(o.Right, 1) {
		return o.Left, true
	}
	return nil, false
}

// 0/x -> 0 unless x is the constant 0, which is left for evaluation to
// reject.
func zeroDiv(o *ast.Operator) (ast.Node, bool) {
	if o.Symbol == "/" && ast.IsConst(o.Left, 0) && !ast.IsConst(o.Right, 0) {
		return ast.Num(0), true
	}
	return nil, false
}

func fold(o *ast.Operator) (ast.Node, bool) {
	l, ok := o.Left.(*ast.Constant)
	if !ok {
		return nil, false
	}
	r, ok := o.Right.(*ast.Constant)
	if !ok {
		return nil, false
	}
	var v float64
	switch o.Symbol {
	case "+":
		v = l.Value + r.Value
	case "-":
		v = l.Value - r.Value
	case "*":
		v = l.Value * r.Value
	case "/":
		if r.Value == 0 {
			return nil, false
		}
		v = l.Value / r.Value
	case "^":
		v = math.Pow(l.Value, r.Value)
	default:
		return nil, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, false
	}
	return ast.Num(v), true
}

// order sorts two bare variables under + or * by name.
func order(o *ast.Operator) (ast.Node, bool) {
	if !ast.IsCommutative(o.Symbol) {
		return nil, false
	}
	l, ok := o.Left.(*ast.Variable)
	if !ok {
		return nil, false
	}
	r, ok := o.Right.(*ast.Variable)
	if !ok || l.Name <= r.Name {
		return nil, false
	}
	return ast.Binary(o.Symbol, r, l), true
}
