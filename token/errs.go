package token

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput = errors.New("empty expression")
	ErrLex        = errors.New("unexpected character")
	ErrSyntax     = errors.New("syntax error")
)

type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

// SyntaxErr reports a misplaced token.
func SyntaxErr(msg string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w: %s", ErrSyntax, msg), p)
}

func UnexpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w %s", ErrLex, what), p)
}
