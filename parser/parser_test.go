package parser

import (
	"testing"

	"github.com/mint-lang/mint/ast"
	"github.com/mint-lang/mint/diag"
	"github.com/mint-lang/mint/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type discard struct{}

func (*discard) Write(p []byte) (int, error) { return len(p), nil }

func parse(t *testing.T, src string) ([]ast.Stmt, *diag.Context) {
	t.Helper()
	ctx := diag.New()
	ctx.SetWriter(&discard{})
	toks := lexer.New(src, ctx).Scan()
	stmts := New(toks, ctx).Parse()
	return stmts, ctx
}

func TestParseBinaryPrecedence(t *testing.T) {
	stmts, ctx := parse(t, `1 + 2 * 3;`)
	require.False(t, ctx.HadCompileError)
	require.Len(t, stmts, 1)

	exprStmt, ok := stmts[0].(*ast.ExpressionStmt)
	require.True(t, ok)
	bin, ok := exprStmt.Expression.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, lexer.Plus, bin.Operator.Type)

	right, ok := bin.Right.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, lexer.Star, right.Operator.Type)
}

func TestParseCallAndGetChain(t *testing.T) {
	stmts, ctx := parse(t, `a.b().c.d(x);`)
	require.False(t, ctx.HadCompileError)
	require.Len(t, stmts, 1)

	exprStmt := stmts[0].(*ast.ExpressionStmt)
	call, ok := exprStmt.Expression.(*ast.Call)
	require.True(t, ok)

	get, ok := call.Callee.(*ast.Get)
	require.True(t, ok)
	assert.Equal(t, "d", get.Name.Lexeme)
}

func TestParseAssignmentOnlyToVariableOrProperty(t *testing.T) {
	_, ctx := parse(t, `1 = 2;`)
	assert.True(t, ctx.HadCompileError)
}

func TestParsePropertyAssignmentProducesSet(t *testing.T) {
	stmts, ctx := parse(t, `self.x = x;`)
	require.False(t, ctx.HadCompileError)
	require.Len(t, stmts, 1)

	exprStmt := stmts[0].(*ast.ExpressionStmt)
	set, ok := exprStmt.Expression.(*ast.Set)
	require.True(t, ok)
	assert.Equal(t, "x", set.Name.Lexeme)
}

func TestForLoopDesugarsToWhile(t *testing.T) {
	stmts, ctx := parse(t, `for (let i = 0; i < 3; i = i + 1) { println(i); }`)
	require.False(t, ctx.HadCompileError)
	require.Len(t, stmts, 1)

	outer, ok := stmts[0].(*ast.Block)
	require.True(t, ok)
	require.Len(t, outer.Statements, 2)

	_, isLet := outer.Statements[0].(*ast.Let)
	assert.True(t, isLet)

	loop, ok := outer.Statements[1].(*ast.While)
	require.True(t, ok)

	body, ok := loop.Body.(*ast.Block)
	require.True(t, ok)
	require.Len(t, body.Statements, 2)
}

func TestForLoopMissingConditionBecomesTrue(t *testing.T) {
	stmts, ctx := parse(t, `for (;;) { break_placeholder; }`)
	require.False(t, ctx.HadCompileError)
	loop := stmts[0].(*ast.While)
	lit, ok := loop.Condition.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, true, lit.Value)
}

func TestStructDeclarationParsesMethods(t *testing.T) {
	stmts, ctx := parse(t, `struct Point { fun init(self, x, y) { self.x = x; } }`)
	require.False(t, ctx.HadCompileError)
	require.Len(t, stmts, 1)

	s, ok := stmts[0].(*ast.Struct)
	require.True(t, ok)
	require.Len(t, s.Methods, 1)
	assert.Equal(t, "init", s.Methods[0].Name.Lexeme)
	assert.Len(t, s.Methods[0].Params, 3)
}

func TestSynchronizeRecoversAfterBadToken(t *testing.T) {
	stmts, ctx := parse(t, `let = ; let y = 1;`)
	assert.True(t, ctx.HadCompileError)
	// Parser should still recover and parse the following declaration.
	found := false
	for _, s := range stmts {
		if let, ok := s.(*ast.Let); ok && let.Name.Lexeme == "y" {
			found = true
		}
	}
	assert.True(t, found)
}
