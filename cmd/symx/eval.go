package main

import (
	"github.com/scott-cotton/cli"
)

func evalMain(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	in, err := exprArg(cc, args)
	if err != nil {
		return err
	}
	env, err := cfg.env()
	if err != nil {
		return err
	}
	res, err := cfg.transformer().Evaluate(in, env)
	if err != nil {
		return err
	}
	return cfg.encode(cc.Out, res)
}
