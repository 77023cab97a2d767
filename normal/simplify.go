package normal

import (
	"iter"

	"github.com/hashicorp/go-set/v3"

	"normform/ast"
	"normform/util"
)

// simplify applies the clause-level rules to the two-level structure
// and rebuilds the smallest equivalent expression tree:
//
//   - duplicate literals and duplicate clauses are already gone, the
//     tree sets enforce that ordering invariant;
//   - a clause holding a term with both polarities is the clause-level
//     absorbing element and is dropped;
//   - two complementary unit clauses annihilate the whole formula
//     ("a && ~a" collapses to false, "a || ~a" dually to true);
//   - an empty outer set collapses to the outer connective's neutral
//     constant, an empty clause to its absorbing one;
//   - single-clause and single-literal wrappers are unwrapped.
func simplify(clauses *set.TreeSet[*set.TreeSet[literal]], form Form) ast.Expr {
	kept := newClauseSet()
	for cl := range clauses.Items() {
		if cl.Empty() {
			return annihilator(form)
		}
		if trivial(cl) {
			continue
		}
		kept.Insert(cl)
	}
	units := set.NewTreeSet(compareLiterals)
	for cl := range kept.Items() {
		if cl.Size() != 1 {
			break // clauses are ordered by size, units come first
		}
		lit := cl.Slice()[0]
		if units.Contains(lit.complement()) {
			return annihilator(form)
		}
		units.Insert(lit)
	}
	if kept.Empty() {
		return neutral(form)
	}
	return rebuild(kept, form)
}

// trivial reports whether the clause holds a term with both polarities,
// making it always true under the inner OR of CNF (and always false
// under the inner AND of DNF).
func trivial(clause *set.TreeSet[literal]) bool {
	for lit := range clause.Items() {
		if !lit.negated && clause.Contains(lit.complement()) {
			return true
		}
	}
	return false
}

func neutral(form Form) ast.Expr {
	if form == CNF {
		return ast.True
	}
	return ast.False
}

func annihilator(form Form) ast.Expr {
	if form == CNF {
		return ast.False
	}
	return ast.True
}

// rebuild folds the ordered clause set back into an expression,
// left-associated to match the parser's associativity.
func rebuild(clauses *set.TreeSet[*set.TreeSet[literal]], form Form) ast.Expr {
	return fold(util.MapIter(clauses.Items(), func(cl *set.TreeSet[literal]) ast.Expr {
		return clauseExpr(cl, form)
	}), func(left, right ast.Expr) ast.Expr {
		if form == CNF {
			return &ast.And{Left: left, Right: right}
		}
		return &ast.Or{Left: left, Right: right}
	})
}

func clauseExpr(clause *set.TreeSet[literal], form Form) ast.Expr {
	return fold(util.MapIter(clause.Items(), literal.toExpr), func(left, right ast.Expr) ast.Expr {
		if form == CNF {
			return &ast.Or{Left: left, Right: right}
		}
		return &ast.And{Left: left, Right: right}
	})
}

func fold(exprs iter.Seq[ast.Expr], join func(left, right ast.Expr) ast.Expr) ast.Expr {
	var out ast.Expr
	for expr := range exprs {
		if out == nil {
			out = expr
			continue
		}
		out = join(out, expr)
	}
	return out
}
