package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"normform/nferr"
)

type TokenKind int

const (
	KindTerm TokenKind = iota
	KindAnd
	KindOr
	KindNot
	KindImplies
	KindLParen
	KindRParen
)

// Token is produced once by the lexer and consumed once by the parser.
// Pos is the byte offset of the token in the raw input.
type Token struct {
	Kind TokenKind
	Text string
	Pos  int
}

// symbols, longest first, so that "=>" is matched greedily and never
// split. Any other non-whitespace run is a term, verbatim.
var symbols = []struct {
	text string
	kind TokenKind
}{
	{"&&", KindAnd},
	{"||", KindOr},
	{"=>", KindImplies},
	{"~", KindNot},
	{"(", KindLParen},
	{")", KindRParen},
}

// tokenize scans input into tokens. Whitespace separates tokens and is
// discarded. The only lexical failure is an empty (or all-whitespace)
// input: the permissive term rule classifies every other character.
func tokenize(input string) ([]Token, error) {
	var tokens []Token
	i := 0
	for i < len(input) {
		r, width := utf8.DecodeRuneInString(input[i:])
		if unicode.IsSpace(r) {
			i += width
			continue
		}
		if tok, ok := symbolAt(input, i); ok {
			tokens = append(tokens, tok)
			i += len(tok.Text)
			continue
		}
		start := i
		for i < len(input) {
			r, width = utf8.DecodeRuneInString(input[i:])
			if unicode.IsSpace(r) {
				break
			}
			if _, ok := symbolAt(input, i); ok {
				break
			}
			i += width
		}
		tokens = append(tokens, Token{Kind: KindTerm, Text: input[start:i], Pos: start})
	}
	if len(tokens) == 0 {
		return nil, nferr.LexError{Position: 0, Message: "empty sentence"}
	}
	return tokens, nil
}

func symbolAt(input string, at int) (Token, bool) {
	for _, sym := range symbols {
		if strings.HasPrefix(input[at:], sym.text) {
			return Token{Kind: sym.kind, Text: sym.text, Pos: at}, true
		}
	}
	return Token{}, false
}
