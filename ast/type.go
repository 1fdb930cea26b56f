package ast

import "fmt"

type Kind int

const (
	ConstantKind Kind = iota
	VariableKind
	OperatorKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		ConstantKind: "Constant",
		VariableKind: "Variable",
		OperatorKind: "Operator",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Constant": ConstantKind,
		"Variable": VariableKind,
		"Operator": OperatorKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		ConstantKind,
		VariableKind,
		OperatorKind,
	}
}

func (k Kind) IsLeaf() bool {
	return k != OperatorKind
}
