package token

import (
	"github.com/signadot/symx/ast"
)

// Validate checks operator placement and parenthesis balance before
// parsing. All failures wrap ErrSyntax.
func Validate(toks []Token) error {
	if len(toks) == 0 {
		return ErrEmptyInput
	}
	n := len(toks)
	depth := 0
	for i := range toks {
		tok := &toks[i]
		if tok.IsBinaryOp() {
			if i == 0 {
				return SyntaxErr("expression cannot start with operator "+tok.Text, tok.Pos)
			}
			if i == n-1 {
				return SyntaxErr("expression cannot end with operator "+tok.Text, tok.Pos)
			}
			prev := &toks[i-1]
			if prev.IsBinaryOp() {
				return SyntaxErr("consecutive operators "+prev.Text+" "+tok.Text, tok.Pos)
			}
			if prev.IsLParen() {
				return SyntaxErr("operator "+tok.Text+" after (", tok.Pos)
			}
			if toks[i+1].IsRParen() {
				return SyntaxErr("operator "+tok.Text+" before )", tok.Pos)
			}
		}
		if tok.Type == TIdent && ast.IsFunction(tok.Text) {
			if i == n-1 || !toks[i+1].IsLParen() {
				return SyntaxErr("function "+tok.Text+" must be followed by (", tok.Pos)
			}
		}
		switch {
		case tok.IsLParen():
			depth++
		case tok.IsRParen():
			depth--
			if depth < 0 {
				return SyntaxErr("unmatched )", tok.Pos)
			}
			if i > 0 && toks[i-1].IsLParen() {
				return SyntaxErr("empty parentheses", tok.Pos)
			}
		}
	}
	if depth > 0 {
		return SyntaxErr("unmatched (", toks[n-1].Pos)
	}
	return nil
}

// Lex tokenizes and validates expr.
func Lex(expr string) ([]Token, error) {
	toks, err := Tokenize(expr)
	if err != nil {
		return nil, err
	}
	if err := Validate(toks); err != nil {
		return nil, err
	}
	return toks, nil
}
