// Package nferr holds the error taxonomy of the converter.
// All errors are terminal: a malformed sentence has no meaningful
// partial normal form, so there is no recovery path.
package nferr

import "fmt"

type ErrCode int

const (
	None ErrCode = iota
	Lex
	Parse
)

// Error is implemented by every error produced by the lexer and parser.
// Pos is a byte offset into the raw input.
type Error interface {
	error
	Code() ErrCode
	Pos() int
}

type LexError struct {
	Position int
	Message  string
}

func (e LexError) Error() string {
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Message)
}
func (e LexError) Code() ErrCode { return Lex }
func (e LexError) Pos() int      { return e.Position }

type ParseError struct {
	Position int
	Message  string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("(E%03d) at offset %d: %s", e.Code(), e.Position, e.Message)
}
func (e ParseError) Code() ErrCode { return Parse }
func (e ParseError) Pos() int      { return e.Position }
