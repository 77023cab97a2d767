package normal

import (
	"github.com/hashicorp/go-set/v3"

	"normform/ast"
)

// clausesOf converts an NNF tree into the two-level clause structure of
// the target form: a set of clauses joined by the outer connective,
// each clause a set of literals joined by the inner one. Distribution
// of the inner connective over the outer one is the pairwise cross
// product of the child clause sets; the matching outer connective is a
// plain union. This can blow up exponentially on adversarial input,
// which is inherent to CNF/DNF conversion.
//
// The constants map to the edge cases of the structure: an empty
// clause set is the outer connective's neutral element, a set holding
// the empty clause its absorbing one.
func clausesOf(expr ast.Expr, form Form) *set.TreeSet[*set.TreeSet[literal]] {
	if expr == ast.True {
		if form == CNF {
			return newClauseSet()
		}
		return newClauseSet(newClause())
	}
	if expr == ast.False {
		if form == CNF {
			return newClauseSet(newClause())
		}
		return newClauseSet()
	}
	switch expr := expr.(type) {
	case *ast.Term:
		return newClauseSet(newClause(literal{name: expr.Name}))
	case *ast.Not:
		term, ok := expr.Operand.(*ast.Term)
		if !ok {
			panic("negation above a non-term in an NNF tree")
		}
		return newClauseSet(newClause(literal{name: term.Name, negated: true}))
	case *ast.And:
		left, right := clausesOf(expr.Left, form), clausesOf(expr.Right, form)
		if form == CNF {
			return merge(left, right)
		}
		return cross(left, right)
	case *ast.Or:
		left, right := clausesOf(expr.Left, form), clausesOf(expr.Right, form)
		if form == CNF {
			return cross(left, right)
		}
		return merge(left, right)
	default:
		panic("invalid NNF expression")
	}
}

func merge(left, right *set.TreeSet[*set.TreeSet[literal]]) *set.TreeSet[*set.TreeSet[literal]] {
	out := newClauseSet(left.Slice()...)
	out.InsertSlice(right.Slice())
	return out
}

func cross(left, right *set.TreeSet[*set.TreeSet[literal]]) *set.TreeSet[*set.TreeSet[literal]] {
	out := newClauseSet()
	for lc := range left.Items() {
		for rc := range right.Items() {
			joined := newClause(lc.Slice()...)
			joined.InsertSlice(rc.Slice())
			out.Insert(joined)
		}
	}
	return out
}
