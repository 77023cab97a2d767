// Package parser turns a raw sentence into an expression tree.
package parser

import (
	"normform/ast"
	"normform/internal/log"
)

// ParseToAST parses the given sentence and returns its expression tree.
// The returned error, if any, is an nferr.LexError or nferr.ParseError
// carrying the byte offset of the offending input.
func ParseToAST(sentence string) (ast.Expr, error) {
	logger := log.DefaultLogger.With("section", "parser")
	tokens, err := tokenize(sentence)
	if err != nil {
		return nil, err
	}
	logger.Debug("tokenized sentence", "tokens", len(tokens))
	expr, err := parse(tokens, len(sentence))
	if err != nil {
		return nil, err
	}
	logger.Debug("parsed sentence", "expr", ast.ExprString(expr))
	return expr, nil
}
