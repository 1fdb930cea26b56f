package main

import (
	"github.com/signadot/symx/integrate"
	"github.com/signadot/symx/simplify"
	"github.com/signadot/symx/transform"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := newMainConfig()
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: text/t, json/j, yaml/y, latex/l",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "symx").
		WithSynopsis("symx [opts] command [opts] <expr>").
		WithDescription(mainDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return symxMain(cfg, cc, args)
		}).
		WithSubs(
			SimplifyCommand(cfg),
			DiffCommand(cfg),
			IntegrateCommand(cfg),
			SubstCommand(cfg),
			EvalCommand(cfg),
			AnalyzeCommand(cfg),
			FactorCommand(cfg),
			ChainCommand(cfg),
			StepsCommand(cfg),
			TreeCommand(cfg))
}

const mainDescription = `symx manipulates algebraic expressions in one or more variables.

Expressions use + - * / ^ with the usual precedence, parentheses, decimal
numbers, variable names and the functions sin cos tan log exp. An expression
argument of '-' is read from standard input.`

func SimplifyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SimplifyConfig{MainConfig: mainCfg, Passes: simplify.DefaultMaxPasses}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Simplify, "simplify").
		WithAliases("s", "simp").
		WithSynopsis("simplify [-trace] <expr>").
		WithDescription("rewrite an expression to a fixed point of the simplification rules").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return simplifyMain(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg, Var: transform.DefaultVariable}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "derive").
		WithSynopsis("diff [-v var] <expr>").
		WithDescription("differentiate an expression, by x unless -v is given").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diffMain(cfg, cc, args)
		})
}

func IntegrateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &IntegrateConfig{MainConfig: mainCfg, Var: transform.DefaultVariable, Depth: integrate.DefaultMaxDepth}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Integrate, "integrate").
		WithAliases("i", "int").
		WithSynopsis("integrate [-v var] [-from a -to b] <expr>").
		WithDescription(integrateDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return integrateMain(cfg, cc, args)
		})
}

const integrateDescription = `integrate finds an antiderivative, by x unless -v is given.

With -from and -to it prints the definite integral between the bounds
instead. Bounds are numeric expressions such as 0, 1/2 or pi.`

func SubstCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SubstConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Subst, "subst").
		WithAliases("sub").
		WithSynopsis("subst -v var -e value [-n] <expr>").
		WithDescription("replace every occurrence of a variable by a number or expression").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return substMain(cfg, cc, args)
		})
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "e",
			Description: "bind a variable, the value may be a numeric expression",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(bindOptTypeFunc(&cfg.Bindings)), "(name=value)"),
		})
	return cli.NewCommandAt(&cfg.Eval, "eval").
		WithAliases("e", "ev").
		WithSynopsis("eval [-e name=value [ -e name2=value2 ]...] <expr>").
		WithDescription("evaluate an expression with variables bound from -e and $SYMX_ENV").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return evalMain(cfg, cc, args)
		})
}

func bindOptTypeFunc(bindings *[]string) func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		*bindings = append(*bindings, a)
		return 0, nil
	}
}

func AnalyzeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &AnalyzeConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Analyze, "analyze").
		WithAliases("a").
		WithSynopsis("analyze <expr>").
		WithDescription("report variables, polynomial degree and simplified form").
		WithRun(func(cc *cli.Context, args []string) error {
			return analyzeMain(cfg, cc, args)
		})
}

func FactorCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FactorConfig{MainConfig: mainCfg, Var: transform.DefaultVariable}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Factor, "factor").
		WithAliases("f").
		WithSynopsis("factor [-v var] <expr>").
		WithDescription("factor an integer coefficient polynomial over the rationals").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return factorMain(cfg, cc, args)
		})
}

func ChainCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ChainConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Chain, "chain").
		WithAliases("c").
		WithSynopsis("chain -f steps.yaml <expr>").
		WithDescription(chainDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return chainMain(cfg, cc, args)
		})
}

const chainDescription = `chain applies a list of steps to an expression, each to the result
of the one before. The steps file holds a list such as

  - op: substitute
    args: [x, y + 1]
  - op: simplify
  - op: differentiate
    args: [y]

Run 'symx steps' for the available steps.`

func StepsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StepsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Steps, "steps").
		WithSynopsis("steps").
		WithDescription("list the steps available to chain").
		WithRun(func(cc *cli.Context, args []string) error {
			return stepsMain(cfg, cc, args)
		})
}

func TreeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TreeConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Tree, "tree").
		WithAliases("t").
		WithSynopsis("tree <expr>").
		WithDescription("print the parsed expression tree").
		WithRun(func(cc *cli.Context, args []string) error {
			return treeMain(cfg, cc, args)
		})
}
