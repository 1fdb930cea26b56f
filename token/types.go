package token

import (
	"fmt"
	"strconv"
)

type TokenType int

const (
	TNumber TokenType = iota
	TIdent
	TOp
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TNumber: "TNumber",
		TIdent:  "TIdent",
		TOp:     "TOp",
	}[t]
}

type Token struct {
	Type TokenType
	Pos  *Pos
	Text string
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %q %s", t.Type, t.Text, t.Pos.String())
}

func (t *Token) String() string {
	return t.Text
}

// Number returns the value of a TNumber token.
func (t *Token) Number() (float64, error) {
	if t.Type != TNumber {
		return 0, fmt.Errorf("%w: %s is not a number", ErrSyntax, t.Info())
	}
	return strconv.ParseFloat(t.Text, 64)
}

// IsBinaryOp reports whether t is one of + - * / ^.
func (t *Token) IsBinaryOp() bool {
	if t.Type != TOp {
		return false
	}
	switch t.Text {
	case "+", "-", "*", "/", "^":
		return true
	}
	return false
}

func (t *Token) IsLParen() bool {
	return t.Type == TOp && t.Text == "("
}

func (t *Token) IsRParen() bool {
	return t.Type == TOp && t.Text == ")"
}
