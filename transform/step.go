package transform

import "fmt"

// Step names a registered Symbol and its arguments, as read from a chain
// file.
type Step struct {
	Op   string   `json:"op" yaml:"op"`
	Args []string `json:"args,omitempty" yaml:"args,omitempty"`
}

func (s Step) String() string {
	return fmt.Sprintf("%s%v", s.Op, s.Args)
}

// Symbol is a named chain step.
type Symbol interface {
	String() string
	Usage() string
	Instance(args []string) (Op, error)
}

// Op applies one step to the result of the previous one.
type Op func(t *Transformer, expr string) (string, error)

// StepFunc implements a step taking its arguments from a chain file.
type StepFunc func(t *Transformer, expr string, args []string) (string, error)

type name string

func (s name) String() string {
	return string(s)
}

type symbol struct {
	name
	usage            string
	minArgs, maxArgs int
	fn               StepFunc
}

// NewSymbol creates a Symbol accepting between minArgs and maxArgs
// arguments.
func NewSymbol(n, usage string, minArgs, maxArgs int, fn StepFunc) Symbol {
	return &symbol{name: name(n), usage: usage, minArgs: minArgs, maxArgs: maxArgs, fn: fn}
}

func (s *symbol) Usage() string { return s.usage }

func (s *symbol) Instance(args []string) (Op, error) {
	if len(args) < s.minArgs || len(args) > s.maxArgs {
		return nil, fmt.Errorf("%w: %s takes %d to %d, got %d", ErrStepArgs, s, s.minArgs, s.maxArgs, len(args))
	}
	args = append([]string(nil), args...)
	return func(t *Transformer, expr string) (string, error) {
		return s.fn(t, expr, args)
	}, nil
}

// stepVariable returns the first argument of a step, or DefaultVariable.
func stepVariable(args []string) string {
	if len(args) != 0 && args[0] != "" {
		return args[0]
	}
	return DefaultVariable
}

func SimplifyStep() Symbol {
	return NewSymbol("simplify", "simplify", 0, 0, func(t *Transformer, expr string, _ []string) (string, error) {
		return t.Simplify(expr)
	})
}

func DifferentiateStep() Symbol {
	return NewSymbol("differentiate", "differentiate [variable]", 0, 1, func(t *Transformer, expr string, args []string) (string, error) {
		return t.Differentiate(expr, stepVariable(args))
	})
}

func IntegrateStep() Symbol {
	return NewSymbol("integrate", "integrate [variable]", 0, 1, func(t *Transformer, expr string, args []string) (string, error) {
		return t.Integrate(expr, stepVariable(args))
	})
}

func SubstituteStep() Symbol {
	return NewSymbol("substitute", "substitute variable value", 2, 2, func(t *Transformer, expr string, args []string) (string, error) {
		return t.Substitute(expr, args[0], args[1])
	})
}

func FactorStep() Symbol {
	return NewSymbol("factor", "factor [variable]", 0, 1, func(t *Transformer, expr string, args []string) (string, error) {
		return t.Factor(expr, stepVariable(args))
	})
}

// Chain applies steps in order, each to the string result of the one
// before.
func (t *Transformer) Chain(expr string, steps []Step) (string, error) {
	if _, err := t.Parse(expr); err != nil {
		return "", err
	}
	res := expr
	for i, st := range steps {
		sym := Lookup(st.Op)
		if sym == nil {
			return "", fmt.Errorf("step %d: %w %q", i, ErrUnknownStep, st.Op)
		}
		op, err := sym.Instance(st.Args)
		if err != nil {
			return "", fmt.Errorf("step %d: %w", i, err)
		}
		next, err := op(t, res)
		if err != nil {
			return "", fmt.Errorf("step %d (%s): %w", i, st, err)
		}
		t.log.Debug("chain", "step", i, "op", st.Op, "args", st.Args, "result", next)
		res = next
	}
	return res, nil
}
