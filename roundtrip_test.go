package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"normform/ast"
	"normform/normal"
	"normform/parser"
)

var sentences = []string{
	"a",
	"~a",
	"a && b",
	"a || b",
	"a => b",
	"a => b && c",
	"a => b && ~c",
	"a => b => c",
	"(a => b) => c",
	"~(a && b)",
	"~(a || ~b) && c",
	"(a || b) && (c || d)",
	"a && b || ~a && ~b",
	"~(a => (b => a))",
	"(a => b) && (b => c) => (a => c)",
}

// The whole pipeline must preserve truth-table equivalence: under
// every assignment of the terms, input and output evaluate alike.
func TestRootEquivalence(t *testing.T) {
	for _, sentence := range sentences {
		for _, form := range []normal.Form{normal.CNF, normal.DNF} {
			t.Run(fmt.Sprintf("%s to %s", sentence, form), func(t *testing.T) {
				expr, err := parser.ParseToAST(sentence)
				require.NoError(t, err)
				converted := normal.Normalise(expr, form)

				terms := ast.Terms(expr)
				require.LessOrEqual(t, len(terms), 10)
				for bits := 0; bits < 1<<len(terms); bits++ {
					model := make(map[string]bool, len(terms))
					for i, term := range terms {
						model[term] = bits&(1<<i) != 0
					}
					assert.Equal(t, ast.Eval(expr, model), ast.Eval(converted, model),
						"model %v distinguishes %q from %q", model, sentence, ast.ExprString(converted))
				}
			})
		}
	}
}

// Rendered output must re-parse to a structurally equal tree.
func TestRootRenderRoundTrip(t *testing.T) {
	for _, sentence := range sentences {
		for _, form := range []normal.Form{normal.CNF, normal.DNF} {
			t.Run(fmt.Sprintf("%s to %s", sentence, form), func(t *testing.T) {
				expr, err := parser.ParseToAST(sentence)
				require.NoError(t, err)
				converted := normal.Normalise(expr, form)
				if converted == ast.True || converted == ast.False {
					// constants re-parse as plain terms, nothing to round-trip
					return
				}

				rendered := ast.ExprString(converted)
				reparsed, err := parser.ParseToAST(rendered)
				require.NoError(t, err, "rendered output %q does not re-parse", rendered)
				assert.Equal(t, converted.Hash(), reparsed.Hash(),
					"%q re-parses differently", rendered)
			})
		}
	}
}

// No clause of the output may hold a literal and its complement; that
// shape must always have collapsed into a constant.
func TestRootNoComplementaryLiteralSurvives(t *testing.T) {
	for _, sentence := range sentences {
		for _, form := range []normal.Form{normal.CNF, normal.DNF} {
			t.Run(fmt.Sprintf("%s to %s", sentence, form), func(t *testing.T) {
				expr, err := parser.ParseToAST(sentence)
				require.NoError(t, err)
				converted := normal.Normalise(expr, form)
				if converted == ast.True || converted == ast.False {
					return
				}
				for _, clause := range clausesIn(t, converted, form) {
					polarity := map[string]bool{}
					for _, lit := range clause {
						name, negated := litOf(t, lit)
						seen, ok := polarity[name]
						if ok {
							assert.Equal(t, seen, negated,
								"clause %q holds both polarities of %q", ast.ExprString(converted), name)
						}
						polarity[name] = negated
					}
				}
			})
		}
	}
}

// clausesIn splits a normal-form tree along the outer connective, then
// each clause along the inner one.
func clausesIn(t *testing.T, expr ast.Expr, form normal.Form) [][]ast.Expr {
	t.Helper()
	var clauses [][]ast.Expr
	for _, clause := range split(expr, form == normal.CNF) {
		clauses = append(clauses, split(clause, form == normal.DNF))
	}
	return clauses
}

// split flattens the And (conjunctive true) or Or spine of expr.
func split(expr ast.Expr, conjunctive bool) []ast.Expr {
	if conjunctive {
		if and, ok := expr.(*ast.And); ok {
			return append(split(and.Left, conjunctive), split(and.Right, conjunctive)...)
		}
	} else {
		if or, ok := expr.(*ast.Or); ok {
			return append(split(or.Left, conjunctive), split(or.Right, conjunctive)...)
		}
	}
	return []ast.Expr{expr}
}

func litOf(t *testing.T, expr ast.Expr) (name string, negated bool) {
	t.Helper()
	if not, ok := expr.(*ast.Not); ok {
		expr = not.Operand
		negated = true
	}
	term, ok := expr.(*ast.Term)
	require.True(t, ok, "%s is not a literal", ast.ExprString(expr))
	return term.Name, negated
}
