package ast

import (
	"strings"
)

// Binding strength of each connective, loosest first. An atom is
// tighter than anything.
const (
	precImplies = 1
	precOr      = 2
	precAnd     = 3
	precNot     = 4
	precAtom    = 5
)

// ExprString renders expr back into the surface grammar. A
// subexpression is parenthesised iff its connective binds strictly
// looser than the context it appears in, so re-parsing the result
// yields a structurally equal tree.
func ExprString(expr Expr) string {
	ctx := &showContext{Builder: &strings.Builder{}}
	ctx.showExprWalker(expr, 0)
	return ctx.String()
}

type showContext struct {
	*strings.Builder
}

func (ctx *showContext) showExprWalker(expr Expr, outerPrecedence int) {
	if expr == nil {
		ctx.WriteString("nil")
		return
	}
	switch expr := expr.(type) {
	case *Term:
		ctx.WriteString(expr.Name)
	case trueConst:
		ctx.WriteString("true")
	case falseConst:
		ctx.WriteString("false")
	case *Not:
		ctx.WriteString("~")
		ctx.showExprWalker(expr.Operand, precNot)
	case *And:
		ctx.binary(expr.Left, " && ", expr.Right, precAnd, outerPrecedence, false)
	case *Or:
		ctx.binary(expr.Left, " || ", expr.Right, precOr, outerPrecedence, false)
	case *Implies:
		ctx.binary(expr.Left, " => ", expr.Right, precImplies, outerPrecedence, true)
	}
}

// binary renders a two-operand connective of the given precedence.
// For left-associative connectives the right operand re-enters one
// level tighter; for the right-associative implication it is the left
// operand that does.
func (ctx *showContext) binary(left Expr, op string, right Expr, prec, outerPrecedence int, rightAssoc bool) {
	if prec < outerPrecedence {
		ctx.WriteString("(")
		defer ctx.WriteString(")")
	}
	leftPrec, rightPrec := prec, prec+1
	if rightAssoc {
		leftPrec, rightPrec = prec+1, prec
	}
	ctx.showExprWalker(left, leftPrec)
	ctx.WriteString(op)
	ctx.showExprWalker(right, rightPrec)
}
