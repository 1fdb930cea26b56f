// Package encode writes expressions and operation results as text, LaTeX,
// YAML or JSON, optionally coloured for a terminal.
package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/signadot/symx/ast"
	"github.com/signadot/symx/format"
	"github.com/signadot/symx/parse"
)

// Encode writes v to w followed by a newline.
//
// In text and LaTeX formats, nodes, expression strings and numbers are
// written as expressions; anything else falls back to YAML.
func Encode(v any, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	var (
		s   string
		err error
	)
	switch es.format {
	case format.TextFormat, format.LaTeXFormat:
		s, err = es.text(v)
	case format.YAMLFormat:
		s, err = es.yaml(v)
	case format.JSONFormat:
		s, err = es.json(v)
	default:
		return fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
	}
	if err != nil {
		return err
	}
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	_, err = io.WriteString(w, s)
	return err
}

func (es *EncState) text(v any) (string, error) {
	latex := es.format.IsLaTeX()
	switch x := v.(type) {
	case ast.Node:
		if latex {
			return ast.LaTeX(x), nil
		}
		return es.expr(x.String()), nil
	case string:
		if latex {
			if n, err := parse.ParseString(x); err == nil {
				return ast.LaTeX(n), nil
			}
			return x, nil
		}
		return es.expr(x), nil
	case float64:
		return es.color(ast.ConstantKind, ValueColor, ast.FormatNumber(x)), nil
	case int:
		return es.color(ast.ConstantKind, ValueColor, strconv.Itoa(x)), nil
	case bool:
		return es.color(ast.ConstantKind, ValueColor, strconv.FormatBool(x)), nil
	}
	return es.yaml(v)
}

func (es *EncState) yaml(v any) (string, error) {
	d, err := yaml.MarshalWithOptions(v, yaml.UseJSONMarshaler(), yaml.Indent(es.indent))
	if err != nil {
		return "", err
	}
	return es.document(string(d)), nil
}

func (es *EncState) json(v any) (string, error) {
	d, err := json.MarshalIndent(v, "", strings.Repeat(" ", es.indent))
	if err != nil {
		return "", err
	}
	return es.document(string(d)), nil
}

func (es *EncState) expr(s string) string {
	if es.colors == nil {
		return s
	}
	return es.colors.Expr(s)
}

func (es *EncState) document(s string) string {
	if es.colors == nil {
		return s
	}
	return es.colors.Document(s)
}

func (es *EncState) color(k ast.Kind, a ColorAttr, s string) string {
	if es.colors == nil {
		return s
	}
	return es.colors.Color(k, a, s)
}
