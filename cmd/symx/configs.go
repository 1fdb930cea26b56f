package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/symx/ast"
	"github.com/signadot/symx/encode"
	"github.com/signadot/symx/eval"
	"github.com/signadot/symx/format"
	"github.com/signadot/symx/integrate"
	"github.com/signadot/symx/parse"
	"github.com/signadot/symx/simplify"
	"github.com/signadot/symx/transform"

	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	T bool `cli:"name=t aliases=text desc='output expressions as text'"`
	J bool `cli:"name=j aliases=json desc='output json'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`
	L bool `cli:"name=latex desc='output expressions as latex'"`

	MaxDepth int `cli:"name=depth desc='maximum expression nesting depth'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) format() format.Format {
	var f format.Format
	switch {
	case cfg.T:
		f = format.TextFormat
	case cfg.Y:
		f = format.YAMLFormat
	case cfg.J:
		f = format.JSONFormat
	case cfg.L:
		f = format.LaTeXFormat
	}
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	return f
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{parse.MaxDepth(cfg.MaxDepth)}
}

func (cfg *MainConfig) transformer(opts ...transform.Option) *transform.Transformer {
	opts = append([]transform.Option{
		transform.WithLogger(theLog),
		transform.WithParseOptions(cfg.parseOpts()...),
	}, opts...)
	return transform.New(opts...)
}

// colors returns the palette for w, or nil when output is not coloured.
func (cfg *MainConfig) colors(w io.Writer) *encode.Colors {
	if cfg.Color {
		color.NoColor = false
		return encode.NewColors()
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return encode.NewColors()
	}
	return nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	return []encode.EncodeOption{
		encode.EncodeFormat(cfg.format()),
		encode.EncodeColors(cfg.colors(w)),
	}
}

func (cfg *MainConfig) encode(w io.Writer, v any) error {
	return encode.Encode(v, w, cfg.encOpts(w)...)
}

type SimplifyConfig struct {
	*MainConfig
	Trace  bool `cli:"name=trace desc='print each rewrite pass'"`
	Passes int  `cli:"name=passes desc='maximum rewrite passes'"`

	Simplify *cli.Command
}

func (cfg *SimplifyConfig) simplifier(opts ...simplify.Option) *simplify.Simplifier {
	return simplify.New(append([]simplify.Option{simplify.MaxPasses(cfg.Passes)}, opts...)...)
}

type DiffConfig struct {
	*MainConfig
	Var string `cli:"name=v aliases=var desc='variable to differentiate by'"`

	Diff *cli.Command
}

type IntegrateConfig struct {
	*MainConfig
	Var   string `cli:"name=v aliases=var desc='variable to integrate by'"`
	From  string `cli:"name=from desc='lower bound of a definite integral'"`
	To    string `cli:"name=to desc='upper bound of a definite integral'"`
	Depth int    `cli:"name=maxdepth desc='maximum integration by parts depth'"`

	Integrate *cli.Command
}

func (cfg *IntegrateConfig) transformer() *transform.Transformer {
	return cfg.MainConfig.transformer(
		transform.WithIntegratorOptions(integrate.MaxDepth(cfg.Depth)))
}

type SubstConfig struct {
	*MainConfig
	Var     string `cli:"name=v aliases=var desc='variable to replace'"`
	Value   string `cli:"name=e desc='replacement number or expression'"`
	Numeric bool   `cli:"name=n desc='evaluate the result, the value must be a number'"`

	Subst *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Bindings []string
	NoOSEnv  bool `cli:"name=noenv desc='ignore bindings in $SYMX_ENV'"`

	Eval *cli.Command
}

// env binds $SYMX_ENV then the -e arguments in order.
func (cfg *EvalConfig) env() (eval.Env, error) {
	env := eval.Env{}
	if !cfg.NoOSEnv {
		if err := eval.FromOS(env, eval.EnvVar); err != nil {
			return nil, fmt.Errorf("$%s: %w", eval.EnvVar, err)
		}
	}
	for _, b := range cfg.Bindings {
		if err := eval.Set(env, b); err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	return env, nil
}

type AnalyzeConfig struct {
	*MainConfig

	Analyze *cli.Command
}

type FactorConfig struct {
	*MainConfig
	Var string `cli:"name=v aliases=var desc='polynomial variable'"`

	Factor *cli.Command
}

type ChainConfig struct {
	*MainConfig
	File string `cli:"name=f desc='file of steps, yaml or json'"`

	Chain *cli.Command
}

type StepsConfig struct {
	*MainConfig

	Steps *cli.Command
}

type TreeConfig struct {
	*MainConfig

	Tree *cli.Command
}

func newMainConfig() *MainConfig {
	return &MainConfig{MaxDepth: ast.DefaultMaxDepth}
}
