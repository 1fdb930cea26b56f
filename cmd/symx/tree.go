package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/symx/ast"
	"github.com/signadot/symx/encode"

	"github.com/scott-cotton/cli"
)

// encodeTree writes n one node per line, children indented under their
// operator.
func encodeTree(cfg *MainConfig, cc *cli.Context, n ast.Node) error {
	colors := cfg.colors(cc.Out)
	if colors == nil {
		colors = &encode.Colors{Default: func(s string, _ ...any) string { return s }}
	}
	return writeTree(cc.Out, colors, n, 0)
}

func writeTree(w io.Writer, c *encode.Colors, n ast.Node, depth int) error {
	indent := strings.Repeat("  ", depth)
	var line string
	switch x := n.(type) {
	case *ast.Constant:
		line = c.Color(ast.ConstantKind, encode.ValueColor, ast.FormatNumber(x.Value))
	case *ast.Variable:
		line = c.Color(ast.VariableKind, encode.ValueColor, x.Name)
	case *ast.Operator:
		attr := encode.ValueColor
		if x.IsFunction() {
			attr = encode.FuncColor
		}
		line = c.Color(ast.OperatorKind, attr, x.Symbol)
	}
	if _, err := fmt.Fprintf(w, "%s%s\n", indent, line); err != nil {
		return err
	}
	o, ok := n.(*ast.Operator)
	if !ok {
		return nil
	}
	if err := writeTree(w, c, o.Left, depth+1); err != nil {
		return err
	}
	if o.Right == nil {
		return nil
	}
	return writeTree(w, c, o.Right, depth+1)
}
