package ast

import "strings"

// Side selects a child of an Operator.
type Side int

const (
	LeftSide Side = iota
	RightSide
)

func (s Side) String() string {
	if s == RightSide {
		return "right"
	}
	return "left"
}

// Path addresses a subtree from the root, one Side per level.
type Path []Side

func (p Path) String() string {
	var b strings.Builder
	b.WriteByte('$')
	for _, s := range p {
		b.WriteByte('.')
		b.WriteString(s.String())
	}
	return b.String()
}

// Append returns a new path extended by s. p is left untouched.
func (p Path) Append(s Side) Path {
	res := make(Path, len(p), len(p)+1)
	copy(res, p)
	return append(res, s)
}

// Get returns the subtree of n at p, or nil if p leaves the tree.
func Get(n Node, p Path) Node {
	for _, s := range p {
		o, ok := n.(*Operator)
		if !ok {
			return nil
		}
		if s == LeftSide {
			n = o.Left
		} else {
			n = o.Right
		}
		if n == nil {
			return nil
		}
	}
	return n
}
