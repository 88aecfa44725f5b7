package eval

import (
	"github.com/mint-lang/mint/ast"
	"github.com/mint-lang/mint/diag"
	"github.com/mint-lang/mint/lexer"
	"github.com/mint-lang/mint/value"
)

// evalBinary implements the operand-kind table from the evaluator design:
// both operands must share the same kind, and only specific operator/kind
// combinations are defined. Everything else is a RuntimeError at the
// operator token.
func (e *Evaluator) evalBinary(expr *ast.Binary) (value.Value, error) {
	left, err := e.eval(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.eval(expr.Right)
	if err != nil {
		return nil, err
	}
	op := expr.Operator

	li, lInt := left.(*value.Integer)
	ri, rInt := right.(*value.Integer)
	lf, lFloat := left.(*value.Float)
	rf, rFloat := right.(*value.Float)
	ls, lStr := left.(*value.String)
	rs, rStr := right.(*value.String)

	switch op.Type {
	case lexer.Plus:
		switch {
		case lInt && rInt:
			return &value.Integer{Value: li.Value + ri.Value}, nil
		case lFloat && rFloat:
			return &value.Float{Value: lf.Value + rf.Value}, nil
		case lStr && rStr:
			return &value.String{Value: ls.Value + rs.Value}, nil
		default:
			return nil, diag.NewRuntimeError(op, "Operands must be either integers, floats or strings")
		}

	case lexer.Minus, lexer.Star, lexer.Slash:
		switch {
		case lInt && rInt:
			return evalIntegerArith(op, li.Value, ri.Value)
		case lFloat && rFloat:
			return evalFloatArith(op, lf.Value, rf.Value), nil
		default:
			return nil, diag.NewRuntimeError(op, "Operands must be either integers or floats")
		}

	case lexer.Greater, lexer.GreaterEqual, lexer.Less, lexer.LessEqual:
		switch {
		case lInt && rInt:
			return &value.Boolean{Value: compare(op, float64(li.Value), float64(ri.Value))}, nil
		case lFloat && rFloat:
			return &value.Boolean{Value: compare(op, lf.Value, rf.Value)}, nil
		default:
			return nil, diag.NewRuntimeError(op, "Operands must be either integers or floats")
		}

	case lexer.EqualEqual, lexer.BangEqual:
		// Equality/inequality always yields Boolean, never Integer (fixing the
		// original's integer-typed comparison result for integer operands).
		// Only numbers are comparable, matching the other comparison operators.
		eq, comparable := equalValues(left, right)
		if !comparable {
			return nil, diag.NewRuntimeError(op, "Operands must be either integers or floats")
		}
		if op.Type == lexer.BangEqual {
			eq = !eq
		}
		return &value.Boolean{Value: eq}, nil
	}

	panic("eval: unreachable binary operator")
}

// evalIntegerArith truncates division toward zero (Go's native int64 "/"
// semantics) and rejects division by zero as a RuntimeError rather than
// inheriting host-defined behavior.
func evalIntegerArith(op lexer.Token, l, r int64) (value.Value, error) {
	switch op.Type {
	case lexer.Minus:
		return &value.Integer{Value: l - r}, nil
	case lexer.Star:
		return &value.Integer{Value: l * r}, nil
	case lexer.Slash:
		if r == 0 {
			return nil, diag.NewRuntimeError(op, "Division by zero")
		}
		return &value.Integer{Value: l / r}, nil
	}
	panic("eval: unreachable integer operator")
}

func evalFloatArith(op lexer.Token, l, r float64) value.Value {
	switch op.Type {
	case lexer.Minus:
		return &value.Float{Value: l - r}
	case lexer.Star:
		return &value.Float{Value: l * r}
	case lexer.Slash:
		return &value.Float{Value: l / r}
	}
	panic("eval: unreachable float operator")
}

func compare(op lexer.Token, l, r float64) bool {
	switch op.Type {
	case lexer.Greater:
		return l > r
	case lexer.GreaterEqual:
		return l >= r
	case lexer.Less:
		return l < r
	case lexer.LessEqual:
		return l <= r
	}
	panic("eval: unreachable comparison operator")
}

// equalValues reports whether left and right are directly comparable (same
// concrete kind, Integer or Float) and, if so, their equality. Strings (and
// every other kind) are not comparable, matching the rest of the comparison
// operator row.
func equalValues(left, right value.Value) (equal bool, comparable bool) {
	switch l := left.(type) {
	case *value.Integer:
		r, ok := right.(*value.Integer)
		return ok && l.Value == r.Value, ok
	case *value.Float:
		r, ok := right.(*value.Float)
		return ok && l.Value == r.Value, ok
	}
	return false, false
}
