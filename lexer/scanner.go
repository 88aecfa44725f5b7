package lexer

import (
	"strconv"

	"github.com/mint-lang/mint/diag"
)

// Scanner performs lexical analysis over a UTF-8 source string, one byte at
// a time, tracking a byte cursor (src/start/current) sized to the
// language's small token set, with scan errors reported through a
// diag.Context instead of being swallowed.
type Scanner struct {
	src  string
	ctx  *diag.Context
	line int

	start   int
	current int
}

// New returns a Scanner ready to tokenize src, reporting scan errors to ctx.
func New(src string, ctx *diag.Context) *Scanner {
	return &Scanner{src: src, ctx: ctx, line: 1}
}

// Scan tokenizes the entire source and returns the sequence of tokens,
// terminated by a single EOF token on the final line. Scan errors are
// reported to the context as they are found; scanning continues afterward.
func (s *Scanner) Scan() []Token {
	var tokens []Token
	for !s.atEnd() {
		s.start = s.current
		if tok, ok := s.scanToken(); ok {
			tokens = append(tokens, tok)
		}
	}
	tokens = append(tokens, Token{Type: EOF, Lexeme: "", Line: s.line})
	return tokens
}

func (s *Scanner) atEnd() bool {
	return s.current >= len(s.src)
}

func (s *Scanner) advance() byte {
	c := s.src[s.current]
	s.current++
	return c
}

func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.src) {
		return 0
	}
	return s.src[s.current+1]
}

func (s *Scanner) match(expected byte) bool {
	if s.atEnd() || s.src[s.current] != expected {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) token(t TokenType) Token {
	return Token{Type: t, Lexeme: s.src[s.start:s.current], Line: s.line}
}

func (s *Scanner) literalToken(t TokenType, literal any) Token {
	tok := s.token(t)
	tok.Literal = literal
	return tok
}

// scanToken recognizes and returns the next token. The boolean result is
// false for characters that produce no token (whitespace, comments, a
// reported scan error).
func (s *Scanner) scanToken() (Token, bool) {
	c := s.advance()
	switch c {
	case '(':
		return s.token(LeftParen), true
	case ')':
		return s.token(RightParen), true
	case '{':
		return s.token(LeftBrace), true
	case '}':
		return s.token(RightBrace), true
	case ',':
		return s.token(Comma), true
	case '.':
		return s.token(Dot), true
	case '-':
		return s.token(Minus), true
	case '+':
		return s.token(Plus), true
	case ';':
		return s.token(Semicolon), true
	case '*':
		return s.token(Star), true
	case '!':
		if s.match('=') {
			return s.token(BangEqual), true
		}
		s.ctx.Error(s.line, "Unexpected bare `!` character")
		return Token{}, false
	case '=':
		if s.match('=') {
			return s.token(EqualEqual), true
		}
		return s.token(Equal), true
	case '<':
		if s.match('=') {
			return s.token(LessEqual), true
		}
		return s.token(Less), true
	case '>':
		if s.match('=') {
			return s.token(GreaterEqual), true
		}
		return s.token(Greater), true
	case '/':
		if s.match('/') {
			for s.peek() != '\n' && !s.atEnd() {
				s.advance()
			}
			return Token{}, false
		}
		return s.token(Slash), true
	case ' ', '\t', '\r':
		return Token{}, false
	case '\n':
		s.line++
		return Token{}, false
	case '"':
		return s.scanString()
	default:
		switch {
		case isDigit(c):
			return s.scanNumber(), true
		case isAlpha(c):
			return s.scanIdentifier(), true
		default:
			s.ctx.Error(s.line, "Unexpected character: "+string(c))
			return Token{}, false
		}
	}
}

func (s *Scanner) scanString() (Token, bool) {
	startLine := s.line
	for s.peek() != '"' && !s.atEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}
	if s.atEnd() {
		s.ctx.Error(startLine, "Unterminated string")
		return Token{}, false
	}
	s.advance() // closing quote
	text := s.src[s.start+1 : s.current-1]
	tok := s.literalToken(String, text)
	tok.Line = startLine
	return tok, true
}

func (s *Scanner) scanNumber() Token {
	for isDigit(s.peek()) {
		s.advance()
	}
	isFloat := false
	if s.peek() == '.' && isDigit(s.peekNext()) {
		isFloat = true
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	text := s.src[s.start:s.current]
	if isFloat {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			s.ctx.Error(s.line, "Number out of range: "+text)
			return s.literalToken(Float, 0.0)
		}
		return s.literalToken(Float, v)
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		s.ctx.Error(s.line, "Number out of range: "+text)
		return s.literalToken(Integer, int64(0))
	}
	return s.literalToken(Integer, v)
}

func (s *Scanner) scanIdentifier() Token {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	text := s.src[s.start:s.current]
	return s.token(lookupIdent(text))
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
