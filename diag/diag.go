// Package diag implements the interpreter's diagnostics context: the single
// sink for compile-time and runtime error reporting, keyed by source line
// and token lexeme.
package diag

import (
	"fmt"
	"io"
	"os"

	"github.com/mint-lang/mint/lexer"
)

// Context accumulates compile-time and runtime error flags and formats
// diagnostics to an injected writer. There is no process-wide singleton;
// every pipeline stage receives a *Context explicitly.
type Context struct {
	Writer          io.Writer
	HadCompileError bool
	HadRuntimeError bool
}

// New returns a Context writing to os.Stderr.
func New() *Context {
	return &Context{Writer: os.Stderr}
}

// SetWriter redirects where diagnostics are written (tests inject a buffer).
func (c *Context) SetWriter(w io.Writer) {
	c.Writer = w
}

// Error reports a scan-time error tied to a bare line number.
func (c *Context) Error(line int, message string) {
	c.report(line, "", message)
}

// ErrorAt reports a parse-time error tied to a token, following the
// end-of-input vs. lexeme distinction.
func (c *Context) ErrorAt(tok lexer.Token, message string) {
	if tok.Type == lexer.EOF {
		c.report(tok.Line, " at end", message)
	} else {
		c.report(tok.Line, fmt.Sprintf(" at `%s`", tok.Lexeme), message)
	}
}

func (c *Context) report(line int, where, message string) {
	fmt.Fprintf(c.Writer, "[line %d] Error%s: %s\n", line, where, message)
	c.HadCompileError = true
}

// ReportRuntimeError writes the runtime diagnostic format and sets the
// runtime flag. Called once at the top of the interpret loop when a
// RuntimeError escapes evaluation.
func (c *Context) ReportRuntimeError(err *RuntimeError) {
	fmt.Fprintf(c.Writer, "%s\n[line %d]\n", err.Message, err.Token.Line)
	c.HadRuntimeError = true
}

// ResetCompileError clears the compile-error flag between REPL lines so a
// mistyped line doesn't poison the exit status of the whole session.
func (c *Context) ResetCompileError() {
	c.HadCompileError = false
}

// ExitCode reports the process exit status the driver should use.
func (c *Context) ExitCode() int {
	if c.HadCompileError || c.HadRuntimeError {
		return 1
	}
	return 0
}

// RuntimeError is the language's single runtime-error type: a Go error
// carrying the offending token so the top-level loop can format
// "MSG\n[line L]" without re-deriving position information.
type RuntimeError struct {
	Token   lexer.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}

// NewRuntimeError builds a *RuntimeError with a formatted message, the Go
// equivalent of throwing `RuntimeError(token, message)`.
func NewRuntimeError(tok lexer.Token, format string, args ...any) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}
