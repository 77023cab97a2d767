package normal

import (
	"cmp"

	"github.com/hashicorp/go-set/v3"

	"normform/ast"
)

// literal is a term or its direct negation. Two literals are
// complementary when they name the same term with opposite polarity.
type literal struct {
	name    string
	negated bool
}

func (l literal) complement() literal {
	return literal{name: l.name, negated: !l.negated}
}

func (l literal) toExpr() ast.Expr {
	if l.negated {
		return &ast.Not{Operand: &ast.Term{Name: l.name}}
	}
	return &ast.Term{Name: l.name}
}

// literals are ordered by term name, positive before negated, so that
// clauses held in tree sets render deterministically.
var compareLiterals set.CompareFunc[literal] = func(a, b literal) int {
	if c := cmp.Compare(a.name, b.name); c != 0 {
		return c
	}
	switch {
	case a.negated == b.negated:
		return 0
	case a.negated:
		return 1
	default:
		return -1
	}
}

// clauses are ordered by size first, then lexicographically over their
// ordered literals. Structural equality under this order deduplicates
// identical clauses at the outer level for free.
var compareClauses set.CompareFunc[*set.TreeSet[literal]] = func(a, b *set.TreeSet[literal]) int {
	if c := cmp.Compare(a.Size(), b.Size()); c != 0 {
		return c
	}
	bs := b.Slice()
	for i, lit := range a.Slice() {
		if c := compareLiterals(lit, bs[i]); c != 0 {
			return c
		}
	}
	return 0
}

func newClause(lits ...literal) *set.TreeSet[literal] {
	cl := set.NewTreeSet(compareLiterals)
	cl.InsertSlice(lits)
	return cl
}

func newClauseSet(clauses ...*set.TreeSet[literal]) *set.TreeSet[*set.TreeSet[literal]] {
	cs := set.NewTreeSet(compareClauses)
	cs.InsertSlice(clauses)
	return cs
}
