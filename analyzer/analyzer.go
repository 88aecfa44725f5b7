// Package analyzer implements the single AST pass enforcing the two
// structural rules the grammar itself doesn't capture, grounded directly on
// the original's analyzer.{hpp,cpp}: Function/Struct declarations are
// top-level only, and Return is only valid inside a function body. The
// analyzer mutates no AST state — it exists purely for diagnostics.
package analyzer

import (
	"github.com/mint-lang/mint/ast"
	"github.com/mint-lang/mint/diag"
)

// Analyzer walks a parsed program once, reporting structural violations to
// a diag.Context.
type Analyzer struct {
	ctx            *diag.Context
	insideFunction bool
}

// New returns an Analyzer reporting to ctx.
func New(ctx *diag.Context) *Analyzer {
	return &Analyzer{ctx: ctx}
}

// Analyze walks every top-level statement.
func (a *Analyzer) Analyze(statements []ast.Stmt) {
	for _, stmt := range statements {
		a.stmt(stmt)
	}
}

func (a *Analyzer) stmt(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.ExpressionStmt:
		a.expr(s.Expression)
	case *ast.Let:
		if s.Initializer != nil {
			a.expr(s.Initializer)
		}
	case *ast.Function:
		if a.insideFunction {
			a.ctx.ErrorAt(s.Name, "Functions can only be declared at the top level")
		}
		a.insideFunction = true
		for _, inner := range s.Body {
			a.stmt(inner)
		}
		a.insideFunction = false
	case *ast.Struct:
		if a.insideFunction {
			a.ctx.ErrorAt(s.Name, "Structs can only be declared at the top level")
		}
		for _, method := range s.Methods {
			a.stmt(method)
		}
	case *ast.If:
		a.expr(s.Condition)
		a.stmt(s.Then)
		if s.Else != nil {
			a.stmt(s.Else)
		}
	case *ast.While:
		a.expr(s.Condition)
		a.stmt(s.Body)
	case *ast.Block:
		for _, inner := range s.Statements {
			a.stmt(inner)
		}
	case *ast.Return:
		if !a.insideFunction {
			a.ctx.ErrorAt(s.Keyword, "Can only return from inside a function")
		}
		if s.Value != nil {
			a.expr(s.Value)
		}
	}
}

func (a *Analyzer) expr(e ast.Expr) {
	switch e := e.(type) {
	case *ast.Grouping:
		a.expr(e.Inner)
	case *ast.Unary:
		a.expr(e.Right)
	case *ast.Binary:
		a.expr(e.Left)
		a.expr(e.Right)
	case *ast.Logical:
		a.expr(e.Left)
		a.expr(e.Right)
	case *ast.Assignment:
		a.expr(e.Value)
	case *ast.Call:
		a.expr(e.Callee)
		for _, arg := range e.Arguments {
			a.expr(arg)
		}
	case *ast.Get:
		a.expr(e.Object)
	case *ast.Set:
		a.expr(e.Object)
		a.expr(e.Value)
	}
}
