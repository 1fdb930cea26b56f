package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/symx/token"
)

var (
	errInternal = errors.New("internal parse error")
	ErrSyntax   = token.ErrSyntax
	ErrTooDeep  = fmt.Errorf("%w: expression nested too deeply", ErrSyntax)
)

func syntaxErr(msg string, tok *token.Token) error {
	if tok == nil || tok.Pos == nil {
		return fmt.Errorf("%w: %s", ErrSyntax, msg)
	}
	return token.SyntaxErr(msg, tok.Pos)
}
