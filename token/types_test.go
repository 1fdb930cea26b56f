package token

import (
	"errors"
	"testing"
)

type tsTest struct {
	in, out string
}

func TestTypesString(t *testing.T) {
	var tss = []tsTest{
		{in: `x`, out: `x`},
		{in: ` 3.25 `, out: `3.25`},
		{in: `sin`, out: `sin`},
		{in: `^`, out: `^`},
	}
	for _, ts := range tss {
		toks, err := Tokenize(ts.in)
		if err != nil {
			t.Error(err)
			continue
		}
		if ts.out != toks[0].String() {
			t.Errorf("got %q want %q", toks[0].String(), ts.out)
		}
	}
}

func TestTokenPredicates(t *testing.T) {
	toks, err := Tokenize("(a ^ 2.5)")
	if err != nil {
		t.Fatal(err)
	}
	if !toks[0].IsLParen() || !toks[4].IsRParen() {
		t.Errorf("parens not recognized: %v", toks)
	}
	if !toks[2].IsBinaryOp() || toks[0].IsBinaryOp() || toks[1].IsBinaryOp() {
		t.Errorf("binary operator misclassified: %v", toks)
	}
	v, err := toks[3].Number()
	if err != nil || v != 2.5 {
		t.Errorf("Number() = %v, %v", v, err)
	}
	if _, err := toks[1].Number(); !errors.Is(err, ErrSyntax) {
		t.Errorf("Number() of identifier error = %v, want %v", err, ErrSyntax)
	}
	if TokenType(9).String() != "" {
		t.Errorf("unknown token type has name %q", TokenType(9).String())
	}
}
