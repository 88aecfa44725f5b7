package parser

import "github.com/mint-lang/mint/ast"
import "github.com/mint-lang/mint/lexer"

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(lexer.LeftBrace):
		return &ast.Block{Statements: p.block()}
	case p.match(lexer.If):
		return p.ifStatement()
	case p.match(lexer.While):
		return p.whileStatement()
	case p.match(lexer.For):
		return p.forStatement()
	case p.match(lexer.Return):
		return p.returnStatement()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) block() []ast.Stmt {
	var statements []ast.Stmt
	for !p.check(lexer.RightBrace) && !p.isAtEnd() {
		statements = append(statements, p.declaration())
	}
	p.consume(lexer.RightBrace, "Expected `}` after block")
	return statements
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(lexer.Semicolon, "Expected `;` after expression")
	return &ast.ExpressionStmt{Expression: expr}
}

func (p *Parser) ifStatement() ast.Stmt {
	paren := p.consume(lexer.LeftParen, "Expected `(` after `if`")
	condition := p.expression()
	p.consume(lexer.RightParen, "Expected `)` after condition")

	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(lexer.Else) {
		elseBranch = p.statement()
	}
	return &ast.If{Paren: paren, Condition: condition, Then: thenBranch, Else: elseBranch}
}

func (p *Parser) whileStatement() ast.Stmt {
	paren := p.consume(lexer.LeftParen, "Expected `(` after `while`")
	condition := p.expression()
	p.consume(lexer.RightParen, "Expected `)` after condition")
	body := p.statement()
	return &ast.While{Paren: paren, Condition: condition, Body: body}
}

// forStatement desugars at parse time into a block wrapping a While loop:
//  1. body := statement
//  2. if post present: body := Block([body, ExpressionStmt(post)])
//  3. if condition absent: condition := Literal(true)
//  4. body := While(condition, body, paren)
//  5. if initializer present: body := Block([initializer, body])
func (p *Parser) forStatement() ast.Stmt {
	paren := p.consume(lexer.LeftParen, "Expected `(` after `for`")

	var initializer ast.Stmt
	switch {
	case p.match(lexer.Semicolon):
		// no initializer
	case p.match(lexer.Let):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(lexer.Semicolon) {
		condition = p.expression()
	}
	p.consume(lexer.Semicolon, "Expected `;` after loop condition")

	var post ast.Expr
	if !p.check(lexer.RightParen) {
		post = p.expression()
	}
	p.consume(lexer.RightParen, "Expected `)` after for clauses")

	body := p.statement()

	if post != nil {
		body = &ast.Block{Statements: []ast.Stmt{body, &ast.ExpressionStmt{Expression: post}}}
	}
	if condition == nil {
		condition = &ast.Literal{Value: true}
	}
	body = &ast.While{Paren: paren, Condition: condition, Body: body}

	if initializer != nil {
		body = &ast.Block{Statements: []ast.Stmt{initializer, body}}
	}
	return body
}

func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(lexer.Semicolon) {
		value = p.expression()
	}
	p.consume(lexer.Semicolon, "Expected `;` after return value")
	return &ast.Return{Keyword: keyword, Value: value}
}
