package main

import (
	"fmt"
	"os"

	"github.com/signadot/symx/ast"
	"github.com/signadot/symx/encode"
	"github.com/signadot/symx/simplify"
	"github.com/signadot/symx/transform"

	"github.com/scott-cotton/cli"
)

func simplifyMain(cfg *SimplifyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Simplify.Parse(cc, args)
	if err != nil {
		return err
	}
	in, err := exprArg(cc, args)
	if err != nil {
		return err
	}
	var (
		prev string
		opts []simplify.Option
	)
	if cfg.Trace {
		colors := cfg.colors(os.Stderr)
		opts = append(opts, simplify.Trace(func(pass int, n ast.Node) {
			cur := n.String()
			fmt.Fprintf(os.Stderr, "%3d: %s\n", pass, encode.Diff(prev, cur, colors))
			prev = cur
		}))
	}
	tr := cfg.transformer(transform.WithSimplifier(cfg.simplifier(opts...)))
	n, err := tr.Parse(in)
	if err != nil {
		return err
	}
	prev = n.String()
	res, err := tr.Simplify(in)
	if err != nil {
		return err
	}
	return cfg.encode(cc.Out, res)
}
