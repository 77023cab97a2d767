package parser

import (
	"fmt"

	"normform/ast"
	"normform/nferr"
)

// Grammar, loosest to tightest:
//
//	Implication -> Disjunction ('=>' Disjunction)*   (right-associative)
//	Disjunction -> Conjunction ('||' Conjunction)*   (left-associative)
//	Conjunction -> Negation ('&&' Negation)*         (left-associative)
//	Negation    -> '~' Negation | Primary
//	Primary     -> Term | '(' Implication ')'
//
// Implication is right-associative: "a => b => c" parses as
// "a => (b => c)".
type parser struct {
	tokens []Token
	pos    int
	end    int // byte offset just past the input, for EOF diagnostics
}

func parse(tokens []Token, end int) (ast.Expr, error) {
	p := &parser{tokens: tokens, end: end}
	expr, err := p.parseImplication()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		tok := p.peek()
		return nil, nferr.ParseError{
			Position: tok.Pos,
			Message:  fmt.Sprintf("unexpected %q after a complete sentence", tok.Text),
		}
	}
	return expr, nil
}

func (p *parser) parseImplication() (ast.Expr, error) {
	left, err := p.parseDisjunction()
	if err != nil {
		return nil, err
	}
	if p.atEnd() || p.peek().Kind != KindImplies {
		return left, nil
	}
	p.next()
	right, err := p.parseImplication()
	if err != nil {
		return nil, err
	}
	return &ast.Implies{Left: left, Right: right}, nil
}

func (p *parser) parseDisjunction() (ast.Expr, error) {
	expr, err := p.parseConjunction()
	if err != nil {
		return nil, err
	}
	for !p.atEnd() && p.peek().Kind == KindOr {
		p.next()
		right, err := p.parseConjunction()
		if err != nil {
			return nil, err
		}
		expr = &ast.Or{Left: expr, Right: right}
	}
	return expr, nil
}

func (p *parser) parseConjunction() (ast.Expr, error) {
	expr, err := p.parseNegation()
	if err != nil {
		return nil, err
	}
	for !p.atEnd() && p.peek().Kind == KindAnd {
		p.next()
		right, err := p.parseNegation()
		if err != nil {
			return nil, err
		}
		expr = &ast.And{Left: expr, Right: right}
	}
	return expr, nil
}

func (p *parser) parseNegation() (ast.Expr, error) {
	if !p.atEnd() && p.peek().Kind == KindNot {
		p.next()
		operand, err := p.parseNegation()
		if err != nil {
			return nil, err
		}
		return &ast.Not{Operand: operand}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (ast.Expr, error) {
	if p.atEnd() {
		return nil, nferr.ParseError{Position: p.end, Message: "missing operand at end of sentence"}
	}
	tok := p.next()
	switch tok.Kind {
	case KindTerm:
		if !p.atEnd() && p.peek().Kind == KindTerm {
			next := p.peek()
			return nil, nferr.ParseError{
				Position: next.Pos,
				Message:  fmt.Sprintf("term %q directly follows term %q with no connective between them", next.Text, tok.Text),
			}
		}
		return &ast.Term{Name: tok.Text}, nil
	case KindLParen:
		expr, err := p.parseImplication()
		if err != nil {
			return nil, err
		}
		if p.atEnd() {
			return nil, nferr.ParseError{Position: p.end, Message: "unbalanced parenthesis: expected ')' before end of sentence"}
		}
		if closing := p.next(); closing.Kind != KindRParen {
			return nil, nferr.ParseError{
				Position: closing.Pos,
				Message:  fmt.Sprintf("expected ')', found %q", closing.Text),
			}
		}
		return expr, nil
	default:
		return nil, nferr.ParseError{
			Position: tok.Pos,
			Message:  fmt.Sprintf("expected a term, '~' or '(', found %q", tok.Text),
		}
	}
}

func (p *parser) atEnd() bool { return p.pos >= len(p.tokens) }

func (p *parser) peek() Token { return p.tokens[p.pos] }

func (p *parser) next() Token {
	tok := p.tokens[p.pos]
	p.pos++
	return tok
}
