package ast

import "errors"

var (
	errInternal = errors.New("internal error")

	ErrUndefinedVariable = errors.New("undefined variable")
	ErrDivisionByZero    = errors.New("division by zero")
	ErrUnsupported       = errors.New("unsupported operation")
	ErrDomain            = errors.New("argument out of domain")
)
