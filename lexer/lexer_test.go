package lexer

import (
	"testing"

	"github.com/mint-lang/mint/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, src string) ([]Token, *diag.Context) {
	t.Helper()
	ctx := diag.New()
	ctx.SetWriter(&discard{})
	toks := New(src, ctx).Scan()
	return toks, ctx
}

type discard struct{}

func (*discard) Write(p []byte) (int, error) { return len(p), nil }

func TestScanPunctuationAndOperators(t *testing.T) {
	toks, ctx := scanAll(t, `(){},.;+-*/ != == <= >= < > =`)
	require.False(t, ctx.HadCompileError)

	want := []TokenType{
		LeftParen, RightParen, LeftBrace, RightBrace, Comma, Dot, Semicolon,
		Plus, Minus, Star, Slash,
		BangEqual, EqualEqual, LessEqual, GreaterEqual, Less, Greater, Equal,
		EOF,
	}
	require.Len(t, toks, len(want))
	for i, w := range want {
		assert.Equal(t, w, toks[i].Type, "token %d", i)
	}
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	toks, ctx := scanAll(t, `let fun struct if else while for return or and not true false none foo_bar`)
	require.False(t, ctx.HadCompileError)

	want := []TokenType{Let, Fun, Struct, If, Else, While, For, Return, Or, And, Not, True, False, None, Identifier, EOF}
	require.Len(t, toks, len(want))
	for i, w := range want {
		assert.Equal(t, w, toks[i].Type, "token %d", i)
	}
	assert.Equal(t, "foo_bar", toks[14].Lexeme)
}

func TestScanStringLiteral(t *testing.T) {
	toks, ctx := scanAll(t, `"hello world"`)
	require.False(t, ctx.HadCompileError)
	require.Len(t, toks, 2)
	assert.Equal(t, String, toks[0].Type)
	assert.Equal(t, "hello world", toks[0].Literal)
}

func TestScanUnterminatedString(t *testing.T) {
	_, ctx := scanAll(t, `"unterminated`)
	assert.True(t, ctx.HadCompileError)
}

func TestScanNumbers(t *testing.T) {
	toks, ctx := scanAll(t, `42 3.14`)
	require.False(t, ctx.HadCompileError)
	require.Len(t, toks, 3)
	assert.Equal(t, Integer, toks[0].Type)
	assert.Equal(t, int64(42), toks[0].Literal)
	assert.Equal(t, Float, toks[1].Type)
	assert.Equal(t, 3.14, toks[1].Literal)
}

func TestScanLeadingDotIsNotANumber(t *testing.T) {
	toks, ctx := scanAll(t, `.5`)
	require.False(t, ctx.HadCompileError)
	require.Len(t, toks, 3)
	assert.Equal(t, Dot, toks[0].Type)
	assert.Equal(t, Integer, toks[1].Type)
}

func TestScanBareBangIsAnError(t *testing.T) {
	toks, ctx := scanAll(t, `!true`)
	assert.True(t, ctx.HadCompileError)
	require.Len(t, toks, 2)
	assert.Equal(t, True, toks[0].Type)
}

func TestScanLineComment(t *testing.T) {
	toks, ctx := scanAll(t, "let x = 1; // trailing comment\nlet y = 2;")
	require.False(t, ctx.HadCompileError)
	assert.Equal(t, 2, toks[len(toks)-1].Line)
}

func TestScanTracksLineAcrossMultilineString(t *testing.T) {
	toks, ctx := scanAll(t, "let x = \"a\nb\";\nlet y;")
	require.False(t, ctx.HadCompileError)
	var yTok Token
	for _, tok := range toks {
		if tok.Type == Identifier && tok.Lexeme == "y" {
			yTok = tok
		}
	}
	assert.Equal(t, 3, yTok.Line)
}
