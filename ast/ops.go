package ast

// Assoc is the associativity of an operator.
type Assoc int

const (
	LeftAssoc Assoc = iota
	RightAssoc
)

type opInfo struct {
	prec  int
	assoc Assoc
}

// FuncPrec is the binding strength of function application. It is above
// every binary operator.
const FuncPrec = 4

var binaryOps = map[string]opInfo{
	"+": {1, LeftAssoc},
	"-": {1, LeftAssoc},
	"*": {2, LeftAssoc},
	"/": {2, LeftAssoc},
	"^": {3, RightAssoc},
}

var functions = map[string]bool{
	"sin": true,
	"cos": true,
	"tan": true,
	"log": true,
	"exp": true,
}

// IsBinary reports whether sym is one of + - * / ^.
func IsBinary(sym string) bool {
	_, ok := binaryOps[sym]
	return ok
}

// IsFunction reports whether name is a recognized unary function.
func IsFunction(name string) bool {
	return functions[name]
}

// Functions returns the recognized function names.
func Functions() []string {
	return []string{"sin", "cos", "tan", "log", "exp"}
}

// Precedence returns the precedence of a binary operator or function name,
// and 0 for anything else.
func Precedence(sym string) int {
	if info, ok := binaryOps[sym]; ok {
		return info.prec
	}
	if functions[sym] {
		return FuncPrec
	}
	return 0
}

// Associativity returns the associativity of sym. Functions are right
// associative prefixes.
func Associativity(sym string) Assoc {
	if info, ok := binaryOps[sym]; ok {
		return info.assoc
	}
	return RightAssoc
}

// IsCommutative reports whether operand order of sym is irrelevant.
func IsCommutative(sym string) bool {
	return sym == "+" || sym == "*"
}
