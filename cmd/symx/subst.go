package main

import (
	"fmt"
	"strconv"

	"github.com/scott-cotton/cli"
)

func substMain(cfg *SubstConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Subst.Parse(cc, args)
	if err != nil {
		return err
	}
	in, err := exprArg(cc, args)
	if err != nil {
		return err
	}
	if cfg.Var == "" || cfg.Value == "" {
		return fmt.Errorf("%w: subst needs -v and -e", cli.ErrUsage)
	}
	tr := cfg.transformer()
	if cfg.Numeric {
		v, err := strconv.ParseFloat(cfg.Value, 64)
		if err != nil {
			return fmt.Errorf("%w: -n needs a numeric value, got %q", cli.ErrUsage, cfg.Value)
		}
		res, err := tr.SubstituteAndEvaluate(in, cfg.Var, v)
		if err != nil {
			return err
		}
		return cfg.encode(cc.Out, res)
	}
	res, err := tr.Substitute(in, cfg.Var, cfg.Value)
	if err != nil {
		return err
	}
	return cfg.encode(cc.Out, res)
}
