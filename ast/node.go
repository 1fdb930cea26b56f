// Package ast holds the expression tree produced by the parser and consumed
// by every transform.
//
// A tree is built from exactly three node types: *Constant, *Variable and
// *Operator. Node is sealed so that no other package can add a fourth;
// algorithms switch over the three and treat anything else as an internal
// error.
//
// Trees are values: transforms build new nodes and never modify the ones they
// are given.
package ast

import (
	"strconv"
)

type Node interface {
	Kind() Kind
	String() string
	// Eval evaluates the node under env.
	Eval(env Env) (float64, error)

	node()
}

// Env binds variable names to values for evaluation.
type Env map[string]float64

type Constant struct {
	Value float64
}

type Variable struct {
	Name string
}

// Operator is either a binary operator (Left and Right set) or a function
// application (only Left set).
type Operator struct {
	Symbol      string
	Left, Right Node
}

func (*Constant) node() {}
func (*Variable) node() {}
func (*Operator) node() {}

func (*Constant) Kind() Kind { return ConstantKind }
func (*Variable) Kind() Kind { return VariableKind }
func (*Operator) Kind() Kind { return OperatorKind }

func Num(v float64) *Constant {
	return &Constant{Value: v}
}

func Var(name string) *Variable {
	return &Variable{Name: name}
}

func Binary(sym string, left, right Node) *Operator {
	return &Operator{Symbol: sym, Left: left, Right: right}
}

func Func(name string, arg Node) *Operator {
	return &Operator{Symbol: name, Left: arg}
}

func Add(l, r Node) *Operator { return Binary("+", l, r) }
func Sub(l, r Node) *Operator { return Binary("-", l, r) }
func Mul(l, r Node) *Operator { return Binary("*", l, r) }
func Div(l, r Node) *Operator { return Binary("/", l, r) }
func Pow(l, r Node) *Operator { return Binary("^", l, r) }

// IsFunction reports whether o is a function application.
func (o *Operator) IsFunction() bool {
	return IsFunction(o.Symbol)
}

// IsConst reports whether n is a Constant with value v.
func IsConst(n Node, v float64) bool {
	c, ok := n.(*Constant)
	return ok && c.Value == v
}

// IsVar reports whether n is the Variable name.
func IsVar(n Node, name string) bool {
	v, ok := n.(*Variable)
	return ok && v.Name == name
}

// IsOp reports whether n is an Operator with symbol sym.
func IsOp(n Node, sym string) bool {
	o, ok := n.(*Operator)
	return ok && o.Symbol == sym
}

// FormatNumber renders v in the shortest decimal form that the lexer reads
// back to the same value.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
