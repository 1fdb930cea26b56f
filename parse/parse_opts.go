package parse

import "github.com/signadot/symx/ast"

type parseOpts struct {
	maxDepth int
}

func defaultOpts() *parseOpts {
	return &parseOpts{maxDepth: ast.DefaultMaxDepth}
}

type ParseOption func(*parseOpts)

// MaxDepth sets the maximum tree height. A non-positive value removes the
// limit.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}
