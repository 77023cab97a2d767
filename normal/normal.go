// Package normal rewrites parsed expression trees into simplified
// conjunctive or disjunctive normal form.
package normal

import (
	"normform/ast"
	"normform/internal/log"
)

var nfLogger = log.DefaultLogger.With("section", "normal")

// Form selects the target normal form.
type Form int

const (
	// CNF is an AND of ORs of literals.
	CNF Form = iota
	// DNF is an OR of ANDs of literals.
	DNF
)

func (f Form) String() string {
	if f == DNF {
		return "dnf"
	}
	return "cnf"
}

// Normalise rewrites expr into the target normal form, simplified. It
// is total on well-formed trees and preserves truth-table equivalence:
// under every assignment of the terms, the result evaluates exactly as
// expr does.
func Normalise(expr ast.Expr, form Form) ast.Expr {
	rewritten := nnf(expr)
	nfLogger.Debug("pushed negation to the leaves", "expr", ast.ExprString(rewritten))
	clauses := clausesOf(rewritten, form)
	nfLogger.Debug("distributed into clauses", "form", form, "clauses", clauses.Size())
	out := simplify(clauses, form)
	nfLogger.Debug("simplified", "form", form, "expr", ast.ExprString(out))
	return out
}
