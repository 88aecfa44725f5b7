// Package eval implements the tree-walking evaluator: a type switch over
// ast.Expr/ast.Stmt dispatching into the runtime value.Value model through a
// chain of scope.Scope environments, grounded on the original's
// interpreter.{hpp,cpp}. Evaluator holds scope plus injected writer/reader
// state so both file execution and the REPL can share one pipeline.
package eval

import (
	"bufio"
	"io"
	"os"

	"github.com/mint-lang/mint/ast"
	"github.com/mint-lang/mint/builtins"
	"github.com/mint-lang/mint/diag"
	"github.com/mint-lang/mint/scope"
	"github.com/mint-lang/mint/value"
)

// Evaluator walks a parsed, analyzed program. It owns the global scope (into
// which built-ins are registered once, at construction) and a cursor to the
// innermost scope currently in effect.
type Evaluator struct {
	ctx     *diag.Context
	global  *scope.Scope
	current *scope.Scope
	Writer  io.Writer
	Reader  *bufio.Reader
}

// New builds an Evaluator reporting to ctx, writing to stdout and reading
// from stdin by default.
func New(ctx *diag.Context) *Evaluator {
	global := scope.New(nil)
	builtins.Register(global)
	return &Evaluator{
		ctx:     ctx,
		global:  global,
		current: global,
		Writer:  os.Stdout,
		Reader:  bufio.NewReader(os.Stdin),
	}
}

// SetWriter redirects built-in output (print/println/input's prompt).
func (e *Evaluator) SetWriter(w io.Writer) { e.Writer = w }

// SetReader redirects input's line source.
func (e *Evaluator) SetReader(r io.Reader) { e.Reader = bufio.NewReader(r) }

// Interpret executes a program's top-level statements in source order. A
// RuntimeError escaping any statement is reported to the diagnostics
// context and execution stops; normal completion reports nothing. A
// returnSignal reaching this level would mean `return` appeared outside a
// function, which the analyzer already rejects before Interpret ever runs.
func (e *Evaluator) Interpret(statements []ast.Stmt) {
	for _, stmt := range statements {
		if err := e.exec(stmt); err != nil {
			e.reportError(err)
			return
		}
	}
}

// InterpretLine runs statements the same way Interpret does, except that if
// the final statement is a bare expression, it is evaluated directly rather
// than executed and discarded — letting a REPL echo the value of the line
// it just ran. ok is false on a reported error or when the final statement
// produced nothing to echo.
func (e *Evaluator) InterpretLine(statements []ast.Stmt) (result value.Value, ok bool) {
	for i, stmt := range statements {
		if i == len(statements)-1 {
			if exprStmt, isExpr := stmt.(*ast.ExpressionStmt); isExpr {
				v, err := e.eval(exprStmt.Expression)
				if err != nil {
					e.reportError(err)
					return nil, false
				}
				return v, true
			}
		}
		if err := e.exec(stmt); err != nil {
			e.reportError(err)
			return nil, false
		}
	}
	return nil, false
}

func (e *Evaluator) reportError(err error) {
	if rt, ok := err.(*diag.RuntimeError); ok {
		e.ctx.ReportRuntimeError(rt)
	}
}
