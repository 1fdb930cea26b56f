// Package token provides tokenization for infix math expressions.
//
// [Tokenize] splits a string into numbers, identifiers and operators.
//
// [Validate] checks operator placement and parenthesis balance so the parser
// only sees sequences it can reduce.
package token
