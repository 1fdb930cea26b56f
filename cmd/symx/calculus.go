package main

import (
	"fmt"

	"github.com/signadot/symx/eval"

	"github.com/scott-cotton/cli"
)

func diffMain(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	in, err := exprArg(cc, args)
	if err != nil {
		return err
	}
	res, err := cfg.transformer().Differentiate(in, cfg.Var)
	if err != nil {
		return err
	}
	return cfg.encode(cc.Out, res)
}

func integrateMain(cfg *IntegrateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Integrate.Parse(cc, args)
	if err != nil {
		return err
	}
	in, err := exprArg(cc, args)
	if err != nil {
		return err
	}
	tr := cfg.transformer()
	if cfg.From == "" && cfg.To == "" {
		res, err := tr.Integrate(in, cfg.Var)
		if err != nil {
			return err
		}
		return cfg.encode(cc.Out, res)
	}
	if cfg.From == "" || cfg.To == "" {
		return fmt.Errorf("%w: -from and -to go together", cli.ErrUsage)
	}
	lower, err := bound(cfg.From)
	if err != nil {
		return err
	}
	upper, err := bound(cfg.To)
	if err != nil {
		return err
	}
	res, err := tr.Definite(in, cfg.Var, lower, upper)
	if err != nil {
		return err
	}
	return cfg.encode(cc.Out, res)
}

func bound(s string) (float64, error) {
	v, err := eval.Value(s, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: bound %q: %w", cli.ErrUsage, s, err)
	}
	return v, nil
}
