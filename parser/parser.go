// Package parser implements the recursive-descent parser: a finite token
// sequence in, a best-effort statement list out, with panic-mode
// synchronization after syntax errors. Grounded on the original's
// parser.{hpp,cpp} grammar (program/declaration/statement/for-desugaring),
// structured as one receiver type split across focused files (one per
// grammar area), and using Go's local
// panic/recover — confined entirely within this package — as the idiomatic
// substitute for the original's throw/catch ParseError unwinding.
package parser

import (
	"github.com/mint-lang/mint/ast"
	"github.com/mint-lang/mint/diag"
	"github.com/mint-lang/mint/lexer"
)

const maxArgs = 255

// Parser builds an AST from a token sequence, reporting syntax errors to a
// diag.Context rather than panicking across its own boundary.
type Parser struct {
	tokens  []lexer.Token
	current int
	ctx     *diag.Context
}

// New returns a Parser over tokens, reporting syntax errors to ctx.
func New(tokens []lexer.Token, ctx *diag.Context) *Parser {
	return &Parser{tokens: tokens, ctx: ctx}
}

// parseError is the sentinel panicked by error() and recovered in
// declaration(), mirroring the original's ParseError exception used purely
// for unwinding back to the nearest synchronization point.
type parseError struct{}

// Parse runs `program = declaration* EOF` and returns the best-effort
// statement list; callers must check the diagnostics context before
// executing the result.
func (p *Parser) Parse() []ast.Stmt {
	var statements []ast.Stmt
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements
}

func (p *Parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); ok {
				p.synchronize()
				stmt = nil
				return
			}
			panic(r)
		}
	}()

	switch {
	case p.match(lexer.Let):
		return p.varDeclaration()
	case p.match(lexer.Fun):
		return p.function()
	case p.match(lexer.Struct):
		return p.structDeclaration()
	default:
		return p.statement()
	}
}

func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(lexer.Identifier, "Expected variable name")
	var initializer ast.Expr
	if p.match(lexer.Equal) {
		initializer = p.expression()
	}
	p.consume(lexer.Semicolon, "Expected `;` after variable declaration")
	return &ast.Let{Name: name, Initializer: initializer}
}

// function parses `identifier ( parameters? ) { declaration* }`, used both
// for top-level `fun` declarations and, verbatim, for each method inside a
// `struct` body — matching the original's single `function<R>()` helper
// shared by both call sites.
func (p *Parser) function() *ast.Function {
	name := p.consume(lexer.Identifier, "Expected function name")
	p.consume(lexer.LeftParen, "Expected `(` after function name")

	var params []lexer.Token
	if !p.check(lexer.RightParen) {
		for {
			if len(params) >= maxArgs {
				p.errorAt(p.peek(), "Too many parameters (255 maximum)")
			}
			params = append(params, p.consume(lexer.Identifier, "Expected parameter name"))
			if !p.match(lexer.Comma) {
				break
			}
		}
	}
	p.consume(lexer.RightParen, "Expected `)` after parameters")
	p.consume(lexer.LeftBrace, "Expected `{` before function body")
	body := p.block()

	return &ast.Function{Name: name, Params: params, Body: body}
}

func (p *Parser) structDeclaration() ast.Stmt {
	name := p.consume(lexer.Identifier, "Expected struct name")
	p.consume(lexer.LeftBrace, "Expected `{` before struct body")

	var methods []*ast.Function
	for !p.check(lexer.RightBrace) && !p.isAtEnd() {
		p.consume(lexer.Fun, "Expected method declaration inside struct")
		methods = append(methods, p.function())
	}
	p.consume(lexer.RightBrace, "Expected `}` after struct body")
	return &ast.Struct{Name: name, Methods: methods}
}

// synchronize discards tokens until past a `;` or until the next token
// begins a declaration, resuming panic-mode recovery at that point.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == lexer.Semicolon {
			return
		}
		switch p.peek().Type {
		case lexer.Let, lexer.Fun, lexer.Struct, lexer.If, lexer.While, lexer.For, lexer.Return:
			return
		}
		p.advance()
	}
}
