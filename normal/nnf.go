package normal

import (
	"normform/ast"
)

// nnf pushes negation down to the leaves: implications are eliminated,
// double negations cancel and De Morgan's laws flip the connective
// under a negation. The result has Not applied only to terms.
func nnf(expr ast.Expr) ast.Expr {
	if expr == ast.True || expr == ast.False {
		return expr
	}
	switch expr := expr.(type) {
	case *ast.Term:
		return expr
	case *ast.And:
		return &ast.And{Left: nnf(expr.Left), Right: nnf(expr.Right)}
	case *ast.Or:
		return &ast.Or{Left: nnf(expr.Left), Right: nnf(expr.Right)}
	case *ast.Implies:
		return &ast.Or{Left: nnf(&ast.Not{Operand: expr.Left}), Right: nnf(expr.Right)}
	case *ast.Not:
		return nnfNot(expr.Operand)
	default:
		panic("invalid expression type")
	}
}

func nnfNot(operand ast.Expr) ast.Expr {
	if operand == ast.True {
		return ast.False
	}
	if operand == ast.False {
		return ast.True
	}
	switch operand := operand.(type) {
	case *ast.Term:
		return &ast.Not{Operand: operand}
	case *ast.Not:
		return nnf(operand.Operand)
	case *ast.And:
		return &ast.Or{Left: nnfNot(operand.Left), Right: nnfNot(operand.Right)}
	case *ast.Or:
		return &ast.And{Left: nnfNot(operand.Left), Right: nnfNot(operand.Right)}
	case *ast.Implies:
		// ~(a => b) == a && ~b
		return &ast.And{Left: nnf(operand.Left), Right: nnfNot(operand.Right)}
	default:
		panic("invalid expression type")
	}
}
