package eval

import (
	"github.com/mint-lang/mint/ast"
	"github.com/mint-lang/mint/diag"
	"github.com/mint-lang/mint/lexer"
	"github.com/mint-lang/mint/scope"
	"github.com/mint-lang/mint/value"
)

// exec evaluates one statement in the current scope. It returns nil on
// normal completion, *diag.RuntimeError on a runtime fault, or a
// *returnSignal unwinding toward the enclosing function call.
func (e *Evaluator) exec(s ast.Stmt) error {
	switch s := s.(type) {
	case *ast.ExpressionStmt:
		_, err := e.eval(s.Expression)
		return err

	case *ast.Let:
		v := value.Value(value.None{})
		if s.Initializer != nil {
			var err error
			v, err = e.eval(s.Initializer)
			if err != nil {
				return err
			}
		}
		e.current.Define(s.Name.Lexeme, v)
		return nil

	case *ast.Function:
		e.current.Define(s.Name.Lexeme, &value.Function{Name: s.Name, Params: s.Params, Body: s.Body})
		return nil

	case *ast.Struct:
		return e.execStruct(s)

	case *ast.If:
		cond, err := e.evalBooleanCondition(s.Condition, s.Paren)
		if err != nil {
			return err
		}
		if cond {
			return e.exec(s.Then)
		}
		if s.Else != nil {
			return e.exec(s.Else)
		}
		return nil

	case *ast.While:
		for {
			cond, err := e.evalBooleanCondition(s.Condition, s.Paren)
			if err != nil {
				return err
			}
			if !cond {
				return nil
			}
			if err := e.exec(s.Body); err != nil {
				return err
			}
		}

	case *ast.Block:
		return e.execBlock(s.Statements, scope.New(e.current))

	case *ast.Return:
		v := value.Value(value.None{})
		if s.Value != nil {
			var err error
			v, err = e.eval(s.Value)
			if err != nil {
				return err
			}
		}
		return &returnSignal{value: v}
	}

	panic("eval: unreachable statement type")
}

// execBlock runs statements inside enclosed, restoring the previous current
// scope on every exit path — normal, RuntimeError, or Return.
func (e *Evaluator) execBlock(statements []ast.Stmt, enclosed *scope.Scope) error {
	previous := e.current
	e.current = enclosed
	defer func() { e.current = previous }()

	for _, stmt := range statements {
		if err := e.exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (e *Evaluator) evalBooleanCondition(expr ast.Expr, tok lexer.Token) (bool, error) {
	v, err := e.eval(expr)
	if err != nil {
		return false, err
	}
	b, ok := v.(*value.Boolean)
	if !ok {
		return false, diag.NewRuntimeError(tok, "Condition must be a boolean")
	}
	return b.Value, nil
}

// execStruct builds a Struct value from its method declarations. The name
// is first bound to None as a forward-reference placeholder so method
// bodies may refer to the struct by name before the Struct value exists,
// then reassigned once the method table is built.
func (e *Evaluator) execStruct(s *ast.Struct) error {
	e.current.Define(s.Name.Lexeme, value.None{})

	methods := make(map[string]*value.Method, len(s.Methods))
	for _, m := range s.Methods {
		if len(m.Params) < 1 {
			return diag.NewRuntimeError(m.Name, "Struct methods must declare at least one parameter (the receiver)")
		}
		methods[m.Name.Lexeme] = &value.Method{
			Decl: &value.Function{Name: m.Name, Params: m.Params, Body: m.Body},
		}
	}

	return e.current.Assign(s.Name, &value.Struct{Name: s.Name, Methods: methods})
}
