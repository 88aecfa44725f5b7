package parser

import (
	"github.com/mint-lang/mint/ast"
	"github.com/mint-lang/mint/lexer"
)

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment is right-associative. A Variable left-hand side builds an
// Assignment node; a Get left-hand side (`object.name = value`) builds a
// Set node so struct field writes such as `self.x = x` inside `init` parse
// as property writes. Any other left-hand side is a non-panic error at the
// `=` token — the RHS is still parsed and returned so the parser can keep
// going.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(lexer.Equal) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.Variable:
			return &ast.Assignment{Name: target.Name, Value: value}
		case *ast.Get:
			return &ast.Set{Object: target.Object, Name: target.Name, Value: value}
		}
		p.errorAt(equals, "Invalid assignment target")
		return value
	}
	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(lexer.Or) {
		op := p.previous()
		right := p.and()
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(lexer.And) {
		op := p.previous()
		right := p.equality()
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(lexer.BangEqual, lexer.EqualEqual) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(lexer.Greater, lexer.GreaterEqual, lexer.Less, lexer.LessEqual) {
		op := p.previous()
		right := p.term()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(lexer.Minus, lexer.Plus) {
		op := p.previous()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(lexer.Slash, lexer.Star) {
		op := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(lexer.Minus, lexer.Not) {
		op := p.previous()
		right := p.unary()
		return &ast.Unary{Operator: op, Right: right}
	}
	return p.call()
}

// call produces both invocation `callee(args)` and property access
// `callee.name` in a loop so `a.b().c.d(x)` parses left-associatively.
func (p *Parser) call() ast.Expr {
	expr := p.primary()

	for {
		switch {
		case p.match(lexer.LeftParen):
			expr = p.finishCall(expr)
		case p.match(lexer.Dot):
			name := p.consume(lexer.Identifier, "Expected property name after `.`")
			expr = &ast.Get{Object: expr, Name: name}
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(lexer.RightParen) {
		for {
			if len(args) >= maxArgs {
				p.errorAt(p.peek(), "Too many arguments (255 maximum)")
			}
			args = append(args, p.expression())
			if !p.match(lexer.Comma) {
				break
			}
		}
	}
	paren := p.consume(lexer.RightParen, "Expected `)` after call arguments")
	return &ast.Call{Callee: callee, Paren: paren, Arguments: args}
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(lexer.Integer):
		return &ast.Literal{Value: p.previous().Literal}
	case p.match(lexer.Float):
		return &ast.Literal{Value: p.previous().Literal}
	case p.match(lexer.String):
		return &ast.Literal{Value: p.previous().Literal}
	case p.match(lexer.True):
		return &ast.Literal{Value: true}
	case p.match(lexer.False):
		return &ast.Literal{Value: false}
	case p.match(lexer.None):
		return &ast.Literal{Value: nil}
	case p.match(lexer.Identifier):
		return &ast.Variable{Name: p.previous()}
	case p.match(lexer.LeftParen):
		expr := p.expression()
		p.consume(lexer.RightParen, "Expected `)` after expression")
		return &ast.Grouping{Inner: expr}
	}

	panic(p.errorAt(p.peek(), "Expected an expression"))
}
