package main

import (
	"github.com/scott-cotton/cli"
)

func analyzeMain(cfg *AnalyzeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Analyze.Parse(cc, args)
	if err != nil {
		return err
	}
	in, err := exprArg(cc, args)
	if err != nil {
		return err
	}
	res, err := cfg.transformer().Analyze(in)
	if err != nil {
		return err
	}
	return cfg.encode(cc.Out, res)
}

func factorMain(cfg *FactorConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Factor.Parse(cc, args)
	if err != nil {
		return err
	}
	in, err := exprArg(cc, args)
	if err != nil {
		return err
	}
	res, err := cfg.transformer().Factor(in, cfg.Var)
	if err != nil {
		return err
	}
	return cfg.encode(cc.Out, res)
}

func treeMain(cfg *TreeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tree.Parse(cc, args)
	if err != nil {
		return err
	}
	in, err := exprArg(cc, args)
	if err != nil {
		return err
	}
	n, err := cfg.transformer().Parse(in)
	if err != nil {
		return err
	}
	if !cfg.format().IsStructured() {
		// text renders a node as its expression, which hides the tree
		return encodeTree(cfg.MainConfig, cc, n)
	}
	return cfg.encode(cc.Out, n)
}
