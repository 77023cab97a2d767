package ast

import (
	"encoding/binary"
	"hash/fnv"
)

// Expr is the interface for all propositional expression nodes.
// Trees are immutable: rewrite passes build new trees and never mutate
// in place. Each node exclusively owns its children, so no cycles arise.
type Expr interface {
	Hash() uint64
	exprNode() // Marker method to seal the hierarchy
}

// Term is an opaque atomic proposition identified by its exact text.
// Term identity is case-sensitive string equality.
type Term struct {
	Name string
}

func (e *Term) exprNode() {}

// Hash returns a hash value for the Term, based on its structural characteristics
func (e *Term) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("Term"))
	_, _ = h.Write([]byte(e.Name))
	return h.Sum64()
}

// Not is the negation of its operand.
type Not struct {
	Operand Expr
}

func (e *Not) exprNode() {}

// Hash returns a hash value for the Not, based on its structural characteristics
func (e *Not) Hash() uint64 {
	h := fnv.New64a()
	arr := []byte("Not")
	if e.Operand != nil {
		arr = binary.LittleEndian.AppendUint64(arr, e.Operand.Hash())
	}
	_, _ = h.Write(arr)
	return h.Sum64()
}

// And is the conjunction of two subexpressions.
type And struct {
	Left, Right Expr
}

func (e *And) exprNode() {}

// Hash returns a hash value for the And, based on its structural characteristics
func (e *And) Hash() uint64 { return hashBinary("And", e.Left, e.Right) }

// Or is the disjunction of two subexpressions.
type Or struct {
	Left, Right Expr
}

func (e *Or) exprNode() {}

// Hash returns a hash value for the Or, based on its structural characteristics
func (e *Or) Hash() uint64 { return hashBinary("Or", e.Left, e.Right) }

// Implies is material implication. It only exists in the raw parse tree:
// normalisation eliminates it via Implies(a, b) == Or(Not(a), b).
type Implies struct {
	Left, Right Expr
}

func (e *Implies) exprNode() {}

// Hash returns a hash value for the Implies, based on its structural characteristics
func (e *Implies) Hash() uint64 { return hashBinary("Implies", e.Left, e.Right) }

func hashBinary(tag string, left, right Expr) uint64 {
	h := fnv.New64a()
	arr := []byte(tag)
	if left != nil {
		arr = binary.LittleEndian.AppendUint64(arr, left.Hash())
	}
	if right != nil {
		arr = binary.LittleEndian.AppendUint64(arr, right.Hash())
	}
	_, _ = h.Write(arr)
	return h.Sum64()
}

type trueConst struct{}

// True is the constant denoting a tautology. It never appears in parse
// trees; simplification produces it when every clause is absorbed.
var True Expr = trueConst{}

func (trueConst) exprNode() {}

func (trueConst) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("True"))
	return h.Sum64()
}

type falseConst struct{}

// False is the constant denoting a contradiction.
var False Expr = falseConst{}

func (falseConst) exprNode() {}

func (falseConst) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("False"))
	return h.Sum64()
}
