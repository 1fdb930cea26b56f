package eval

import (
	"github.com/expr-lang/expr"
	"github.com/signadot/symx/ast"
)

// exprOpts makes the engine's unary functions callable from values, with
// the same domain checks as expression evaluation.
func exprOpts() []expr.Option {
	res := []expr.Option{}
	for _, name := range ast.Functions() {
		res = append(res, expr.Function(name, func(params ...any) (any, error) {
			x, err := toFloat(params[0])
			if err != nil {
				return nil, err
			}
			return ast.Evaluate(ast.Func(name, ast.Num(x)), nil)
		}))
	}
	return res
}
