package ast

import (
	"encoding/json"
	"fmt"
)

type jsonNode struct {
	Type   Kind      `json:"type"`
	Value  *float64  `json:"value,omitempty"`
	Name   string    `json:"name,omitempty"`
	Symbol string    `json:"symbol,omitempty"`
	Left   *jsonNode `json:"left,omitempty"`
	Right  *jsonNode `json:"right,omitempty"`
}

func toJSON(n Node) *jsonNode {
	switch x := n.(type) {
	case *Constant:
		v := x.Value
		return &jsonNode{Type: ConstantKind, Value: &v}
	case *Variable:
		return &jsonNode{Type: VariableKind, Name: x.Name}
	case *Operator:
		res := &jsonNode{Type: OperatorKind, Symbol: x.Symbol, Left: toJSON(x.Left)}
		if x.Right != nil {
			res.Right = toJSON(x.Right)
		}
		return res
	}
	return nil
}

func (j *jsonNode) node() (Node, error) {
	if j == nil {
		return nil, fmt.Errorf("%w: missing node", errInternal)
	}
	switch j.Type {
	case ConstantKind:
		if j.Value == nil {
			return nil, fmt.Errorf("constant without value")
		}
		return Num(*j.Value), nil
	case VariableKind:
		if j.Name == "" {
			return nil, fmt.Errorf("variable without name")
		}
		return Var(j.Name), nil
	case OperatorKind:
		left, err := j.Left.node()
		if err != nil {
			return nil, err
		}
		if IsFunction(j.Symbol) {
			return Func(j.Symbol, left), nil
		}
		if !IsBinary(j.Symbol) {
			return nil, fmt.Errorf("unknown operator %q", j.Symbol)
		}
		right, err := j.Right.node()
		if err != nil {
			return nil, err
		}
		return Binary(j.Symbol, left, right), nil
	}
	return nil, fmt.Errorf("unknown node type %s", j.Type)
}

func (c *Constant) MarshalJSON() ([]byte, error) { return json.Marshal(toJSON(c)) }
func (v *Variable) MarshalJSON() ([]byte, error) { return json.Marshal(toJSON(v)) }
func (o *Operator) MarshalJSON() ([]byte, error) { return json.Marshal(toJSON(o)) }

// FromJSON decodes a tree written by MarshalJSON.
func FromJSON(d []byte) (Node, error) {
	j := &jsonNode{}
	if err := json.Unmarshal(d, j); err != nil {
		return nil, err
	}
	return j.node()
}
