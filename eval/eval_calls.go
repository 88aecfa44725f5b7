package eval

import (
	"github.com/mint-lang/mint/ast"
	"github.com/mint-lang/mint/diag"
	"github.com/mint-lang/mint/lexer"
	"github.com/mint-lang/mint/scope"
	"github.com/mint-lang/mint/value"
)

// evalCall dispatches a Call expression by the callee's concrete kind:
// Builtin, Function, Method (instance prepended to the argument list), or
// Struct (instantiation). A callee not implementing value.Callable is a
// RuntimeError; every case below shares the same arity check through that
// interface, each supplying the argument count its invocation form actually
// binds (Method prepends the receiver, Struct accounts for the implicit
// instance slot).
func (e *Evaluator) evalCall(expr *ast.Call) (value.Value, error) {
	calleeVal, err := e.eval(expr.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]value.Value, len(expr.Arguments))
	for i, a := range expr.Arguments {
		v, err := e.eval(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	callable, ok := calleeVal.(value.Callable)
	if !ok {
		return nil, diag.NewRuntimeError(expr.Paren, "Only functions and classes are callable")
	}

	switch callee := callable.(type) {
	case *value.Builtin:
		if err := checkArity(expr.Paren, len(args), callable.Arity()); err != nil {
			return nil, err
		}
		return callee.Func(args, expr.Paren, e.Writer, e.Reader)

	case *value.Function:
		if err := checkArity(expr.Paren, len(args), callable.Arity()); err != nil {
			return nil, err
		}
		return e.callFunction(callee, args)

	case *value.Method:
		bound := append([]value.Value{callee.Instance}, args...)
		if err := checkArity(expr.Paren, len(bound), callable.Arity()); err != nil {
			return nil, err
		}
		return e.callFunction(callee.Decl, bound)

	case *value.Struct:
		// The instance slot is implicit: the user supplies len(args), the
		// callable accounts for one more (itself, via init's receiver or the
		// struct's default arity of 1).
		if err := checkArity(expr.Paren, len(args)+1, callable.Arity()); err != nil {
			return nil, err
		}
		return e.instantiate(callee, args)
	}

	panic("eval: unreachable callable kind")
}

func checkArity(tok lexer.Token, got, want int) error {
	if got == want {
		return nil
	}
	plural := "s"
	if want == 1 {
		plural = ""
	}
	return diag.NewRuntimeError(tok, "Expected %d argument%s, but got %d", want, plural, got)
}

// callFunction binds args to fn's parameters in a fresh scope parented at
// the global scope — not the caller's scope, since the language provides no
// lexical closures (see the design decision on function-call scoping) — and
// executes the body. A Return unwinds into the function's result; normal
// completion yields none.
func (e *Evaluator) callFunction(fn *value.Function, args []value.Value) (value.Value, error) {
	callScope := scope.New(e.global)
	for i, param := range fn.Params {
		callScope.Define(param.Lexeme, args[i])
	}

	err := e.execBlock(fn.Body, callScope)
	if err == nil {
		return value.None{}, nil
	}
	if ret, ok := err.(*returnSignal); ok {
		return ret.value, nil
	}
	return nil, err
}

// instantiate builds a fresh StructInstance and, if the struct defines
// `init`, invokes it as a bound method with the caller's arguments. The
// instance is returned regardless of init's return value.
func (e *Evaluator) instantiate(s *value.Struct, args []value.Value) (value.Value, error) {
	inst := value.NewInstance(s)
	if init, ok := inst.Methods["init"]; ok {
		bound := append([]value.Value{init.Instance}, args...)
		if _, err := e.callFunction(init.Decl, bound); err != nil {
			return nil, err
		}
	}
	return inst, nil
}
