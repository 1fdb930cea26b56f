package token

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/signadot/symx/debug"
)

// Tokenize splits expr into number, identifier and operator tokens.
// Whitespace separates tokens and is otherwise ignored.
func Tokenize(expr string) ([]Token, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, ErrEmptyInput
	}
	var res []Token
	i, n := 0, len(expr)
	for i < n {
		c := expr[i]
		if end := negativeLiteral(expr, i, res); end > i {
			res = append(res, Token{Type: TNumber, Pos: pos(expr, i), Text: expr[i:end]})
			i = end
			continue
		}
		switch {
		case isSpace(c):
			i++
		case isDigit(c):
			start := i
			i = scanNumber(expr, i)
			res = append(res, Token{Type: TNumber, Pos: pos(expr, start), Text: expr[start:i]})
		case isLetter(c):
			start := i
			for i < n && isLetter(expr[i]) {
				i++
			}
			res = append(res, Token{Type: TIdent, Pos: pos(expr, start), Text: expr[start:i]})
		case strings.IndexByte("+-*/^()", c) != -1:
			res = append(res, Token{Type: TOp, Pos: pos(expr, i), Text: expr[i : i+1]})
			i++
		default:
			r, _ := utf8.DecodeRuneInString(expr[i:])
			return nil, UnexpectedErr(quoteRune(r), pos(expr, i))
		}
	}
	if debug.Lex() {
		PrintTokens(os.Stderr, res, "lex")
	}
	return res, nil
}

func scanNumber(expr string, i int) int {
	n := len(expr)
	for i < n && isDigit(expr[i]) {
		i++
	}
	if i < n && expr[i] == '.' {
		i++
		for i < n && isDigit(expr[i]) {
			i++
		}
	}
	return i
}

// negativeLiteral returns the end of a negative number written either as
// "(-2.5)" or as the whole input "-2.5", the forms in which negative
// constants are printed, or i when expr[i:] does not start one. Other uses
// of a leading minus are left to Validate to reject.
func negativeLiteral(expr string, i int, prev []Token) int {
	if expr[i] != '-' || i+1 >= len(expr) || !isDigit(expr[i+1]) {
		return i
	}
	end := scanNumber(expr, i+1)
	j := end
	for j < len(expr) && isSpace(expr[j]) {
		j++
	}
	switch {
	case len(prev) == 0 && j == len(expr):
		return end
	case len(prev) != 0 && prev[len(prev)-1].IsLParen() && j < len(expr) && expr[j] == ')':
		return end
	}
	return i
}

func pos(src string, i int) *Pos {
	return &Pos{I: i, Src: src}
}

func quoteRune(r rune) string {
	if r == utf8.RuneError {
		return "invalid utf8"
	}
	return "'" + string(r) + "'"
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
