package main

import (
	"fmt"
	"os"

	"github.com/signadot/symx/ast"
	"github.com/signadot/symx/encode"
	"github.com/signadot/symx/transform"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func chainMain(cfg *ChainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Chain.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.File == "" {
		return fmt.Errorf("%w: chain needs -f steps-file", cli.ErrUsage)
	}
	in, err := exprArg(cc, args)
	if err != nil {
		return err
	}
	steps, err := readSteps(cfg.File)
	if err != nil {
		return err
	}
	res, err := cfg.transformer().Chain(in, steps)
	if err != nil {
		return err
	}
	return cfg.encode(cc.Out, res)
}

func readSteps(file string) ([]transform.Step, error) {
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", file, err)
	}
	var steps []transform.Step
	if err := yaml.UnmarshalWithOptions(d, &steps, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return steps, nil
}

type stepInfo struct {
	Name  string `json:"name" yaml:"name"`
	Usage string `json:"usage" yaml:"usage"`
}

func stepsMain(cfg *StepsConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Steps.Parse(cc, args); err != nil {
		return err
	}
	if cfg.format().IsStructured() {
		var res []stepInfo
		for _, s := range transform.Steps() {
			res = append(res, stepInfo{Name: s.String(), Usage: s.Usage()})
		}
		return cfg.encode(cc.Out, res)
	}
	colors := cfg.colors(cc.Out)
	fmt.Fprintf(cc.Out, "available steps:\n")
	for _, s := range transform.Steps() {
		name := s.String()
		if colors != nil {
			name = colors.Color(ast.OperatorKind, encode.FieldColor, name)
		}
		fmt.Fprintf(cc.Out, "\t- %s: %s\n", name, s.Usage())
	}
	return nil
}
