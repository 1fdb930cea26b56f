package parse

import (
	"fmt"

	"github.com/signadot/symx/ast"
	"github.com/signadot/symx/debug"
	"github.com/signadot/symx/token"
)

// ParseString tokenizes, validates and parses expr.
func ParseString(expr string, opts ...ParseOption) (ast.Node, error) {
	toks, err := token.Lex(expr)
	if err != nil {
		return nil, err
	}
	return Parse(toks, opts...)
}

// Parse builds a tree from toks by precedence climbing over an explicit
// operator stack. Function names wait on the stack for the parenthesized
// group that follows them.
func Parse(toks []token.Token, opts ...ParseOption) (ast.Node, error) {
	pOpts := defaultOpts()
	for _, f := range opts {
		f(pOpts)
	}
	if len(toks) == 0 {
		return nil, token.ErrEmptyInput
	}
	p := &parser{opts: pOpts}
	for i := range toks {
		if err := p.step(&toks[i]); err != nil {
			return nil, err
		}
	}
	for len(p.ops) != 0 {
		top := p.pop()
		if top.IsLParen() {
			return nil, syntaxErr("unmatched (", top)
		}
		if err := p.reduce(top); err != nil {
			return nil, err
		}
	}
	switch len(p.out) {
	case 1:
	case 0:
		return nil, syntaxErr("too few operands", nil)
	default:
		return nil, syntaxErr(fmt.Sprintf("too many operands (%d)", len(p.out)), nil)
	}
	res := p.out[0].node
	if debug.Parse() {
		debug.Logf("parse %s (height %d)\n", res, p.out[0].height)
	}
	return res, nil
}

type operand struct {
	node   ast.Node
	height int
}

type parser struct {
	opts *parseOpts
	out  []operand
	ops  []*token.Token
}

func (p *parser) step(tok *token.Token) error {
	switch tok.Type {
	case token.TNumber:
		v, err := tok.Number()
		if err != nil {
			return syntaxErr(fmt.Sprintf("bad number %q", tok.Text), tok)
		}
		p.push(ast.Num(v), 1)
	case token.TIdent:
		if ast.IsFunction(tok.Text) {
			p.ops = append(p.ops, tok)
			return nil
		}
		p.push(ast.Var(tok.Text), 1)
	case token.TOp:
		switch {
		case tok.IsLParen():
			p.ops = append(p.ops, tok)
		case tok.IsRParen():
			return p.closeParen(tok)
		default:
			return p.binary(tok)
		}
	default:
		return fmt.Errorf("%w: token %s", errInternal, tok.Info())
	}
	return nil
}

func (p *parser) closeParen(tok *token.Token) error {
	for {
		if len(p.ops) == 0 {
			return syntaxErr("unmatched )", tok)
		}
		top := p.pop()
		if top.IsLParen() {
			break
		}
		if err := p.reduce(top); err != nil {
			return err
		}
	}
	if len(p.ops) != 0 && ast.IsFunction(p.top().Text) {
		return p.reduce(p.pop())
	}
	return nil
}

func (p *parser) binary(tok *token.Token) error {
	prec := ast.Precedence(tok.Text)
	assoc := ast.Associativity(tok.Text)
	for len(p.ops) != 0 {
		top := p.top()
		if top.IsLParen() {
			break
		}
		topPrec := ast.Precedence(top.Text)
		if topPrec > prec || (topPrec == prec && assoc == ast.LeftAssoc) {
			if err := p.reduce(p.pop()); err != nil {
				return err
			}
			continue
		}
		break
	}
	p.ops = append(p.ops, tok)
	return nil
}

// reduce applies op to the operands on top of the output stack.
func (p *parser) reduce(op *token.Token) error {
	if ast.IsFunction(op.Text) {
		if len(p.out) < 1 {
			return syntaxErr("function "+op.Text+" without argument", op)
		}
		arg := p.popOut()
		return p.pushChecked(ast.Func(op.Text, arg.node), arg.height+1, op)
	}
	if len(p.out) < 2 {
		return syntaxErr("operator "+op.Text+" needs two operands", op)
	}
	right := p.popOut()
	left := p.popOut()
	return p.pushChecked(ast.Binary(op.Text, left.node, right.node), max(left.height, right.height)+1, op)
}

func (p *parser) pushChecked(n ast.Node, height int, op *token.Token) error {
	if p.opts.maxDepth > 0 && height > p.opts.maxDepth {
		if op.Pos == nil {
			return ErrTooDeep
		}
		return token.NewTokenizeErr(ErrTooDeep, op.Pos)
	}
	p.push(n, height)
	return nil
}

func (p *parser) push(n ast.Node, height int) {
	p.out = append(p.out, operand{node: n, height: height})
}

func (p *parser) popOut() operand {
	o := p.out[len(p.out)-1]
	p.out = p.out[:len(p.out)-1]
	return o
}

func (p *parser) top() *token.Token {
	return p.ops[len(p.ops)-1]
}

func (p *parser) pop() *token.Token {
	t := p.top()
	p.ops = p.ops[:len(p.ops)-1]
	return t
}
