package ast

import "sort"

// Walk calls fn for n and every node below it in pre-order, stopping the
// descent into a subtree when fn returns false.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	if o, ok := n.(*Operator); ok {
		Walk(o.Left, fn)
		Walk(o.Right, fn)
	}
}

// Variables returns the set of variable names occurring in n.
func Variables(n Node) map[string]struct{} {
	res := map[string]struct{}{}
	Walk(n, func(x Node) bool {
		if v, ok := x.(*Variable); ok {
			res[v.Name] = struct{}{}
		}
		return true
	})
	return res
}

func SortedVariables(n Node) []string {
	vs := Variables(n)
	res := make([]string, 0, len(vs))
	for v := range vs {
		res = append(res, v)
	}
	sort.Strings(res)
	return res
}

// Contains reports whether the variable name occurs in n.
func Contains(n Node, name string) bool {
	found := false
	Walk(n, func(x Node) bool {
		if found {
			return false
		}
		if IsVar(x, name) {
			found = true
		}
		return !found
	})
	return found
}

// ContainsFunction returns the name of the first function application found
// in n.
func ContainsFunction(n Node) (string, bool) {
	name := ""
	Walk(n, func(x Node) bool {
		if name != "" {
			return false
		}
		if o, ok := x.(*Operator); ok && o.IsFunction() {
			name = o.Symbol
			return false
		}
		return true
	})
	return name, name != ""
}

// Equal reports whether a and b are structurally identical.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case *Constant:
		y, ok := b.(*Constant)
		return ok && x.Value == y.Value
	case *Variable:
		y, ok := b.(*Variable)
		return ok && x.Name == y.Name
	case *Operator:
		y, ok := b.(*Operator)
		return ok && x.Symbol == y.Symbol && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	}
	return false
}

// Size is the number of nodes in n.
func Size(n Node) int {
	count := 0
	Walk(n, func(Node) bool {
		count++
		return true
	})
	return count
}

// Depth is the height of n, 1 for a leaf.
func Depth(n Node) int {
	o, ok := n.(*Operator)
	if !ok {
		if n == nil {
			return 0
		}
		return 1
	}
	ld, rd := Depth(o.Left), Depth(o.Right)
	if ld > rd {
		return 1 + ld
	}
	return 1 + rd
}

// Clone returns a deep copy of n.
func Clone(n Node) Node {
	switch x := n.(type) {
	case *Constant:
		return &Constant{Value: x.Value}
	case *Variable:
		return &Variable{Name: x.Name}
	case *Operator:
		res := &Operator{Symbol: x.Symbol, Left: Clone(x.Left)}
		if x.Right != nil {
			res.Right = Clone(x.Right)
		}
		return res
	}
	return nil
}

// DefaultMaxDepth bounds the height of trees accepted by the parser and so
// the recursion depth of every transform.
const DefaultMaxDepth = 256
