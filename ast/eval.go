package ast

import (
	"fmt"
	"math"
)

func (c *Constant) Eval(Env) (float64, error) {
	return c.Value, nil
}

func (v *Variable) Eval(env Env) (float64, error) {
	x, ok := env[v.Name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUndefinedVariable, v.Name)
	}
	return x, nil
}

func (o *Operator) Eval(env Env) (float64, error) {
	l, err := o.Left.Eval(env)
	if err != nil {
		return 0, err
	}
	if o.IsFunction() {
		return evalFunc(o.Symbol, l)
	}
	if o.Right == nil {
		return 0, fmt.Errorf("%w: operator %q without right operand", errInternal, o.Symbol)
	}
	r, err := o.Right.Eval(env)
	if err != nil {
		return 0, err
	}
	switch o.Symbol {
	case "+":
		return l + r, nil
	case "-":
		return l - r, nil
	case "*":
		return l * r, nil
	case "/":
		if r == 0 {
			return 0, fmt.Errorf("%w: %s", ErrDivisionByZero, o)
		}
		return l / r, nil
	case "^":
		v := math.Pow(l, r)
		if math.IsNaN(v) {
			return 0, fmt.Errorf("%w: %s^%s", ErrDomain, FormatNumber(l), FormatNumber(r))
		}
		return v, nil
	}
	return 0, fmt.Errorf("%w: unknown operator %q", ErrUnsupported, o.Symbol)
}

func evalFunc(name string, x float64) (float64, error) {
	switch name {
	case "sin":
		return math.Sin(x), nil
	case "cos":
		return math.Cos(x), nil
	case "tan":
		return math.Tan(x), nil
	case "exp":
		return math.Exp(x), nil
	case "log":
		if x <= 0 {
			return 0, fmt.Errorf("%w: log(%s)", ErrDomain, FormatNumber(x))
		}
		return math.Log(x), nil
	}
	return 0, fmt.Errorf("%w: unknown function %q", ErrUnsupported, name)
}

// Evaluate evaluates n with the given bindings.
func Evaluate(n Node, bindings map[string]float64) (float64, error) {
	return n.Eval(Env(bindings))
}
