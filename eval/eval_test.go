package eval

import (
	"bytes"
	"testing"

	"github.com/mint-lang/mint/analyzer"
	"github.com/mint-lang/mint/diag"
	"github.com/mint-lang/mint/lexer"
	"github.com/mint-lang/mint/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run lexes, parses, analyzes, and interprets src, returning captured stdout
// and the diagnostics context so tests can assert on both output and error
// flags in one call.
func run(t *testing.T, src string) (string, *diag.Context) {
	t.Helper()
	ctx := diag.New()
	var errBuf bytes.Buffer
	ctx.SetWriter(&errBuf)

	toks := lexer.New(src, ctx).Scan()
	stmts := parser.New(toks, ctx).Parse()
	require.False(t, ctx.HadCompileError, "unexpected parse error: %s", errBuf.String())

	analyzer.New(ctx).Analyze(stmts)
	require.False(t, ctx.HadCompileError, "unexpected analyzer error: %s", errBuf.String())

	ev := New(ctx)
	var out bytes.Buffer
	ev.SetWriter(&out)
	ev.Interpret(stmts)

	if ctx.HadRuntimeError {
		return out.String(), ctx
	}
	return out.String(), ctx
}

func TestArithmeticPrecedence(t *testing.T) {
	out, ctx := run(t, `println(1 + 2 * 3);`)
	assert.False(t, ctx.HadRuntimeError)
	assert.Equal(t, "7\n", out)
}

func TestStringConcat(t *testing.T) {
	out, ctx := run(t, `println("ab" + "cd");`)
	assert.False(t, ctx.HadRuntimeError)
	assert.Equal(t, "abcd\n", out)
}

func TestKindMismatchIsRuntimeError(t *testing.T) {
	_, ctx := run(t, `println(1 + "x");`)
	assert.True(t, ctx.HadRuntimeError)
}

func TestStructWithInit(t *testing.T) {
	out, ctx := run(t, `
		struct Point { fun init(self, x, y) { self.x = x; self.y = y; } }
		let p = Point(3, 4);
		println(p.x);
		println(p.y);
	`)
	assert.False(t, ctx.HadRuntimeError)
	assert.Equal(t, "3\n4\n", out)
}

func TestMethodCall(t *testing.T) {
	out, ctx := run(t, `
		struct Point {
			fun init(self, x, y) { self.x = x; self.y = y; }
			fun dist(self) { return self.x * self.x + self.y * self.y; }
		}
		let p = Point(3, 4);
		println(p.dist());
	`)
	assert.False(t, ctx.HadRuntimeError)
	assert.Equal(t, "25\n", out)
}

func TestReturnWithNoValuePrintsNone(t *testing.T) {
	out, ctx := run(t, `
		fun f() { return; }
		println(f());
	`)
	assert.False(t, ctx.HadRuntimeError)
	assert.Equal(t, "none\n", out)
}

func TestWhileLoop(t *testing.T) {
	out, ctx := run(t, `
		let i = 0;
		while (i < 3) { println(i); i = i + 1; }
	`)
	assert.False(t, ctx.HadRuntimeError)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestForLoopDesugaring(t *testing.T) {
	out, ctx := run(t, `
		for (let i = 0; i < 3; i = i + 1) { println(i); }
	`)
	assert.False(t, ctx.HadRuntimeError)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestShortCircuitOr(t *testing.T) {
	out, ctx := run(t, `
		let touched = false;
		fun mark() { touched = true; return true; }
		let x = true or mark();
		println(touched);
	`)
	assert.False(t, ctx.HadRuntimeError)
	assert.Equal(t, "false\n", out)
}

func TestShortCircuitAnd(t *testing.T) {
	out, ctx := run(t, `
		let touched = false;
		fun mark() { touched = true; return true; }
		let x = false and mark();
		println(touched);
	`)
	assert.False(t, ctx.HadRuntimeError)
	assert.Equal(t, "false\n", out)
}

func TestBlockShadowingRestoresOuterBinding(t *testing.T) {
	out, ctx := run(t, `
		let x = 1;
		{ let x = 2; println(x); }
		println(x);
	`)
	assert.False(t, ctx.HadRuntimeError)
	assert.Equal(t, "2\n1\n", out)
}

func TestUndefinedVariableIsRuntimeError(t *testing.T) {
	_, ctx := run(t, `println(x);`)
	assert.True(t, ctx.HadRuntimeError)
}

func TestArityMismatchMessageSingular(t *testing.T) {
	_, ctx := run(t, `
		fun one(a) { return a; }
		one(1, 2);
	`)
	assert.True(t, ctx.HadRuntimeError)
	assert.Contains(t, ctx.Writer.(*bytes.Buffer).String(), "Expected 1 argument, but got 2")
}

func TestIntegerDivisionByZeroIsRuntimeError(t *testing.T) {
	_, ctx := run(t, `println(1 / 0);`)
	assert.True(t, ctx.HadRuntimeError)
}

func TestIntegerDivisionTruncates(t *testing.T) {
	out, ctx := run(t, `println(7 / 2);`)
	assert.False(t, ctx.HadRuntimeError)
	assert.Equal(t, "3\n", out)
}

// TestNoLexicalClosureOverLocals exercises the no-closures design decision:
// every function call scope is parented at the global scope, so a
// top-level function called from inside another function's body still
// cannot see that caller's locals.
func TestNoLexicalClosureOverLocals(t *testing.T) {
	out, ctx := run(t, `
		fun inner() { println(local_var); }
		fun outer() {
			let local_var = 1;
			inner();
		}
		outer();
	`)
	assert.True(t, ctx.HadRuntimeError)
	assert.Equal(t, "", out)
}

func TestComparisonAlwaysYieldsBoolean(t *testing.T) {
	out, ctx := run(t, `println(1 == 1);`)
	assert.False(t, ctx.HadRuntimeError)
	assert.Equal(t, "true\n", out)
}

func TestStringEqualityIsRuntimeError(t *testing.T) {
	_, ctx := run(t, `println("a" == "b");`)
	assert.True(t, ctx.HadRuntimeError)
}
