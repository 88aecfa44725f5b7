package parser

import "github.com/mint-lang/mint/lexer"

func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(t lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.EOF
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) consume(t lexer.TokenType, message string) lexer.Token {
	if p.check(t) {
		return p.advance()
	}
	panic(p.errorAt(p.peek(), message))
}

// errorAt reports a non-panic diagnostic and returns the sentinel so call
// sites that DO want to unwind can `panic(p.errorAt(...))`, while call sites
// that want to keep parsing (too-many-arguments/parameters) can just ignore
// the return value — mirroring the original's `error()` returning a
// ParseError that the caller chooses whether to `throw`.
func (p *Parser) errorAt(tok lexer.Token, message string) parseError {
	p.ctx.ErrorAt(tok, message)
	return parseError{}
}
