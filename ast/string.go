package ast

import (
	"fmt"
	"strings"
)

func (c *Constant) String() string {
	return FormatNumber(c.Value)
}

func (v *Variable) String() string {
	return v.Name
}

func (o *Operator) String() string {
	if o.IsFunction() {
		return o.Symbol + "(" + o.Left.String() + ")"
	}
	left := operand(o.Left)
	if leftNeedsParens(o.Symbol, o.Left) {
		left = "(" + left + ")"
	}
	right := operand(o.Right)
	if rightNeedsParens(o.Symbol, o.Right) {
		right = "(" + right + ")"
	}
	if o.Symbol == "^" {
		return left + "^" + right
	}
	return left + " " + o.Symbol + " " + right
}

func operand(n Node) string {
	if n == nil {
		return "?"
	}
	if c, ok := n.(*Constant); ok && c.Value < 0 {
		return "(" + c.String() + ")"
	}
	return n.String()
}

// binaryChild returns the precedence of n if it is a binary operator node.
func binaryChild(n Node) (string, int, bool) {
	o, ok := n.(*Operator)
	if !ok || o.IsFunction() {
		return "", 0, false
	}
	return o.Symbol, Precedence(o.Symbol), true
}

func leftNeedsParens(parent string, child Node) bool {
	_, cp, ok := binaryChild(child)
	if !ok {
		return false
	}
	pp := Precedence(parent)
	if cp < pp {
		return true
	}
	// (a^b)^c must keep its grouping, a^b^c means a^(b^c)
	return cp == pp && Associativity(parent) == RightAssoc
}

func rightNeedsParens(parent string, child Node) bool {
	_, cp, ok := binaryChild(child)
	if !ok {
		return false
	}
	pp := Precedence(parent)
	if cp < pp {
		return true
	}
	return cp == pp && Associativity(parent) == LeftAssoc
}

// LaTeX renders n as a LaTeX math fragment.
func LaTeX(n Node) string {
	switch x := n.(type) {
	case *Constant:
		return FormatNumber(x.Value)
	case *Variable:
		return x.Name
	case *Operator:
		if x.IsFunction() {
			return fmt.Sprintf("\\%s\\left(%s\\right)", x.Symbol, LaTeX(x.Left))
		}
		left, right := LaTeX(x.Left), LaTeX(x.Right)
		switch x.Symbol {
		case "/":
			return fmt.Sprintf("\\frac{%s}{%s}", left, right)
		case "^":
			if _, _, ok := binaryChild(x.Left); ok {
				left = "\\left(" + left + "\\right)"
			}
			return fmt.Sprintf("{%s}^{%s}", left, right)
		}
		if leftNeedsParens(x.Symbol, x.Left) {
			left = "\\left(" + left + "\\right)"
		}
		if rightNeedsParens(x.Symbol, x.Right) && !IsOp(x.Right, "/") {
			right = "\\left(" + right + "\\right)"
		}
		sym := x.Symbol
		if sym == "*" {
			sym = "\\cdot"
		}
		return strings.Join([]string{left, sym, right}, " ")
	}
	return ""
}
