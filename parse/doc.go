// Package parse turns token streams into expression trees.
//
// # Usage
//
//	node, err := parse.ParseString("x^2 + 2*x + 1")
//	if err != nil {
//	    return err
//	}
//
//	// with a tighter nesting limit
//	node, err = parse.ParseString(input, parse.MaxDepth(64))
//
// Precedence is + - (1, left), * / (2, left), ^ (3, right); sin, cos, tan,
// log and exp are unary prefixes binding tighter than any operator.
//
// # Related Packages
//
//   - github.com/signadot/symx/token - Tokenization and validation
//   - github.com/signadot/symx/ast - Tree representation
package parse
