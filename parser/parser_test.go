package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"normform/ast"
	"normform/nferr"
	"normform/parser"
)

func testParse(t *testing.T, input string) ast.Expr {
	expr, err := parser.ParseToAST(input)
	require.NoError(t, err)
	return expr
}

func TestParseTree(t *testing.T) {
	expr := testParse(t, "a => b && ~c")

	implies, ok := expr.(*ast.Implies)
	require.True(t, ok)
	assert.Equal(t, &ast.Term{Name: "a"}, implies.Left)
	and, ok := implies.Right.(*ast.And)
	require.True(t, ok)
	assert.Equal(t, &ast.Term{Name: "b"}, and.Left)
	assert.Equal(t, &ast.Not{Operand: &ast.Term{Name: "c"}}, and.Right)
}

func TestPrecedence(t *testing.T) {
	// && binds tighter than ||, which binds tighter than =>
	testCases := []struct {
		input, explicit string
	}{
		{"a => b && c", "a => (b && c)"},
		{"a || b && c", "a || (b && c)"},
		{"a || b => c", "(a || b) => c"},
		{"~a && b", "(~a) && b"},
		{"~a => b", "(~a) => b"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.input, func(t *testing.T) {
			implicit := testParse(t, testCase.input)
			explicit := testParse(t, testCase.explicit)
			assert.Equal(t, explicit.Hash(), implicit.Hash(),
				"%q should parse the same as %q", testCase.input, testCase.explicit)
		})
	}
}

func TestImpliesIsRightAssociative(t *testing.T) {
	chained := testParse(t, "a => b => c")
	explicit := testParse(t, "a => (b => c)")
	assert.Equal(t, explicit.Hash(), chained.Hash())

	left := testParse(t, "(a => b) => c")
	assert.NotEqual(t, left.Hash(), chained.Hash())
}

func TestLeftAssociativeConnectives(t *testing.T) {
	or := testParse(t, "a || b || c")
	assert.Equal(t, testParse(t, "(a || b) || c").Hash(), or.Hash())

	and := testParse(t, "a && b && c")
	assert.Equal(t, testParse(t, "(a && b) && c").Hash(), and.Hash())
}

func TestDoubleNegationParses(t *testing.T) {
	expr := testParse(t, "~~a")
	assert.Equal(t, &ast.Not{Operand: &ast.Not{Operand: &ast.Term{Name: "a"}}}, expr)
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"missing right operand", "a &&"},
		{"missing left operand", "&& a"},
		{"unclosed parenthesis", "(a || b"},
		{"stray closing parenthesis", ")"},
		{"consecutive terms", "a b"},
		{"trailing tokens", "(a) b"},
		{"operator only", "=>"},
		{"empty group", "()"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := parser.ParseToAST(testCase.input)
			var parseErr nferr.ParseError
			require.ErrorAs(t, err, &parseErr, "input %q", testCase.input)
			assert.Equal(t, nferr.Parse, parseErr.Code())
			assert.LessOrEqual(t, parseErr.Pos(), len(testCase.input))
		})
	}
}

func TestParseErrorPositions(t *testing.T) {
	_, err := parser.ParseToAST("a &&")
	var parseErr nferr.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 4, parseErr.Pos())

	_, err = parser.ParseToAST("a b")
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 2, parseErr.Pos())
}
