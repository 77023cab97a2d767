package ast

import (
	"fmt"
	"sort"
)

// Eval returns the truth value of expr under the given model.
// It panics if the model lacks a binding for a term that occurs in expr.
func Eval(expr Expr, model map[string]bool) bool {
	switch expr := expr.(type) {
	case *Term:
		b, ok := model[expr.Name]
		if !ok {
			panic(fmt.Errorf("model lacks binding for term %s", expr.Name))
		}
		return b
	case trueConst:
		return true
	case falseConst:
		return false
	case *Not:
		return !Eval(expr.Operand, model)
	case *And:
		return Eval(expr.Left, model) && Eval(expr.Right, model)
	case *Or:
		return Eval(expr.Left, model) || Eval(expr.Right, model)
	case *Implies:
		return !Eval(expr.Left, model) || Eval(expr.Right, model)
	default:
		panic("invalid expression type")
	}
}

// Terms returns the distinct term names occurring in expr, sorted.
func Terms(expr Expr) []string {
	seen := make(map[string]struct{})
	collectTerms(expr, seen)
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func collectTerms(expr Expr, seen map[string]struct{}) {
	switch expr := expr.(type) {
	case *Term:
		seen[expr.Name] = struct{}{}
	case *Not:
		collectTerms(expr.Operand, seen)
	case *And:
		collectTerms(expr.Left, seen)
		collectTerms(expr.Right, seen)
	case *Or:
		collectTerms(expr.Left, seen)
		collectTerms(expr.Right, seen)
	case *Implies:
		collectTerms(expr.Left, seen)
		collectTerms(expr.Right, seen)
	}
}
