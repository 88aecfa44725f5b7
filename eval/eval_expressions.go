package eval

import (
	"github.com/mint-lang/mint/ast"
	"github.com/mint-lang/mint/diag"
	"github.com/mint-lang/mint/lexer"
	"github.com/mint-lang/mint/value"
)

// eval evaluates one expression in the current scope.
func (e *Evaluator) eval(expr ast.Expr) (value.Value, error) {
	switch expr := expr.(type) {
	case *ast.Literal:
		return literalValue(expr.Value), nil

	case *ast.Grouping:
		return e.eval(expr.Inner)

	case *ast.Unary:
		return e.evalUnary(expr)

	case *ast.Binary:
		return e.evalBinary(expr)

	case *ast.Logical:
		return e.evalLogical(expr)

	case *ast.Variable:
		return e.current.Get(expr.Name)

	case *ast.Assignment:
		v, err := e.eval(expr.Value)
		if err != nil {
			return nil, err
		}
		if err := e.current.Assign(expr.Name, v); err != nil {
			return nil, err
		}
		return v, nil

	case *ast.Call:
		return e.evalCall(expr)

	case *ast.Get:
		return e.evalGet(expr)

	case *ast.Set:
		return e.evalSet(expr)
	}

	panic("eval: unreachable expression type")
}

// literalValue builds the runtime value.Value matching a Literal node's raw
// scanned payload (nil/bool/string/int64/float64).
func literalValue(payload any) value.Value {
	switch payload := payload.(type) {
	case nil:
		return value.None{}
	case bool:
		return &value.Boolean{Value: payload}
	case string:
		return &value.String{Value: payload}
	case int64:
		return &value.Integer{Value: payload}
	case float64:
		return &value.Float{Value: payload}
	default:
		return value.None{}
	}
}

func (e *Evaluator) evalUnary(expr *ast.Unary) (value.Value, error) {
	right, err := e.eval(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Type {
	case lexer.Minus:
		switch right := right.(type) {
		case *value.Integer:
			return &value.Integer{Value: -right.Value}, nil
		case *value.Float:
			return &value.Float{Value: -right.Value}, nil
		default:
			return nil, diag.NewRuntimeError(expr.Operator, "Operand must be an integer or a float")
		}
	case lexer.Not:
		b, ok := right.(*value.Boolean)
		if !ok {
			return nil, diag.NewRuntimeError(expr.Operator, "Operand must be a boolean")
		}
		return &value.Boolean{Value: !b.Value}, nil
	}

	panic("eval: unreachable unary operator")
}

func (e *Evaluator) evalLogical(expr *ast.Logical) (value.Value, error) {
	left, err := e.eval(expr.Left)
	if err != nil {
		return nil, err
	}
	lb, ok := left.(*value.Boolean)
	if !ok {
		return nil, diag.NewRuntimeError(expr.Operator, "Operand must be a boolean")
	}

	// Short-circuit: `or` returns early on true, `and` on false, without
	// evaluating the right operand at all.
	if expr.Operator.Type == lexer.Or {
		if lb.Value {
			return lb, nil
		}
	} else if !lb.Value {
		return lb, nil
	}

	right, err := e.eval(expr.Right)
	if err != nil {
		return nil, err
	}
	rb, ok := right.(*value.Boolean)
	if !ok {
		return nil, diag.NewRuntimeError(expr.Operator, "Operand must be a boolean")
	}
	return rb, nil
}

func (e *Evaluator) evalGet(expr *ast.Get) (value.Value, error) {
	obj, err := e.eval(expr.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*value.StructInstance)
	if !ok {
		return nil, diag.NewRuntimeError(expr.Name, "Only struct instances have properties")
	}
	if v, ok := inst.Fields[expr.Name.Lexeme]; ok {
		return v, nil
	}
	if m, ok := inst.Methods[expr.Name.Lexeme]; ok {
		return m, nil
	}
	return nil, diag.NewRuntimeError(expr.Name, "Undefined attribute `%s`", expr.Name.Lexeme)
}

func (e *Evaluator) evalSet(expr *ast.Set) (value.Value, error) {
	obj, err := e.eval(expr.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*value.StructInstance)
	if !ok {
		return nil, diag.NewRuntimeError(expr.Name, "Only struct instances have properties")
	}
	v, err := e.eval(expr.Value)
	if err != nil {
		return nil, err
	}
	inst.Fields[expr.Name.Lexeme] = v
	return v, nil
}
