package encode

import (
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml/lexer"
	"github.com/goccy/go-yaml/printer"
	"github.com/signadot/symx/ast"
	"github.com/signadot/symx/token"
)

type Colorable struct {
	Kind ast.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	ValueColor ColorAttr = iota
	FuncColor
	SepColor
	FieldColor
	InsertColor
	DeleteColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range ast.Kinds() {
		able := Colorable{Kind: k, Attr: SepColor}
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = FieldColor
		colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
		able.Attr = InsertColor
		colors.Map[able] = color.GreenString
		able.Attr = DeleteColor
		colors.Map[able] = color.RedString
	}
	able := Colorable{Attr: ValueColor}

	able.Kind = ast.ConstantKind
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Kind = ast.VariableKind
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Kind = ast.OperatorKind
	colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()
	able.Attr = FuncColor
	colors.Map[able] = color.RGB(196, 168, 128).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k ast.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k ast.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}

// Expr colours the tokens of an expression, keeping the spacing of s.
// Text that does not tokenize is returned unchanged.
func (c *Colors) Expr(s string) string {
	toks, err := token.Tokenize(s)
	if err != nil {
		return s
	}
	var b strings.Builder
	last := 0
	for i := range toks {
		tok := &toks[i]
		if tok.Pos == nil || tok.Pos.I < last {
			return s
		}
		b.WriteString(s[last:tok.Pos.I])
		b.WriteString(c.token(tok))
		last = tok.Pos.I + len(tok.Text)
	}
	b.WriteString(s[last:])
	return b.String()
}

func (c *Colors) token(tok *token.Token) string {
	switch tok.Type {
	case token.TNumber:
		return c.Color(ast.ConstantKind, ValueColor, tok.Text)
	case token.TIdent:
		if ast.IsFunction(tok.Text) {
			return c.Color(ast.OperatorKind, FuncColor, tok.Text)
		}
		return c.Color(ast.VariableKind, ValueColor, tok.Text)
	default:
		if tok.IsLParen() || tok.IsRParen() {
			return c.Color(ast.OperatorKind, SepColor, tok.Text)
		}
		return c.Color(ast.OperatorKind, ValueColor, tok.Text)
	}
}

// Document colours a YAML or JSON document.
func (c *Colors) Document(s string) string {
	toks := lexer.Tokenize(s)
	if len(toks) == 0 {
		return s
	}
	p := &printer.Printer{
		MapKey: c.property(ast.ConstantKind, FieldColor),
		Number: c.property(ast.ConstantKind, ValueColor),
		Bool:   c.property(ast.ConstantKind, ValueColor),
		String: c.property(ast.VariableKind, ValueColor),
	}
	res := p.PrintTokens(toks)
	if strings.HasSuffix(s, "\n") && !strings.HasSuffix(res, "\n") {
		res += "\n"
	}
	return res
}

// property splits the escape sequences of a colour function around a
// marker so the YAML printer can wrap its tokens with them.
func (c *Colors) property(k ast.Kind, a ColorAttr) printer.PrintFunc {
	f := c.Get(k, a)
	return func() *printer.Property {
		s := f("\x00")
		i := strings.IndexByte(s, 0)
		if i < 0 {
			return &printer.Property{}
		}
		return &printer.Property{Prefix: s[:i], Suffix: s[i+1:]}
	}
}
