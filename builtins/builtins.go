// Package builtins registers the language's host-provided functions into the
// global scope, grounded on the original's builtins.{hpp,cpp}: each built-in
// is a value.Builtin closing over nothing but its own arity and
// implementation, reading/writing through the io.Writer/*bufio.Reader the
// evaluator injects per call rather than a package-level stdout/stdin.
package builtins

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/mint-lang/mint/diag"
	"github.com/mint-lang/mint/lexer"
	"github.com/mint-lang/mint/scope"
	"github.com/mint-lang/mint/value"
)

// Register defines every built-in function in the global scope.
func Register(global *scope.Scope) {
	global.Define("clock", &value.Builtin{Name: "clock", Ar: 0, Func: clock})
	global.Define("print", &value.Builtin{Name: "print", Ar: 1, Func: print_})
	global.Define("println", &value.Builtin{Name: "println", Ar: 1, Func: println_})
	global.Define("input", &value.Builtin{Name: "input", Ar: 1, Func: input})
	global.Define("str", &value.Builtin{Name: "str", Ar: 1, Func: str})
	global.Define("int", &value.Builtin{Name: "int", Ar: 1, Func: intFn})
	global.Define("float", &value.Builtin{Name: "float", Ar: 1, Func: floatFn})
	global.Define("bool", &value.Builtin{Name: "bool", Ar: 1, Func: boolFn})
}

func clock(_ []value.Value, _ lexer.Token, _ io.Writer, _ *bufio.Reader) (value.Value, error) {
	return &value.Float{Value: float64(time.Now().UnixNano()) / 1e9}, nil
}

func print_(args []value.Value, _ lexer.Token, out io.Writer, _ *bufio.Reader) (value.Value, error) {
	fmt.Fprint(out, value.ToString(args[0]))
	return value.None{}, nil
}

func println_(args []value.Value, _ lexer.Token, out io.Writer, _ *bufio.Reader) (value.Value, error) {
	fmt.Fprintln(out, value.ToString(args[0]))
	return value.None{}, nil
}

// input writes its prompt argument then reads one line. A read failure
// (EOF included) yields an empty string rather than propagating an error,
// matching the original's eof/bad-stream handling.
func input(args []value.Value, _ lexer.Token, out io.Writer, in *bufio.Reader) (value.Value, error) {
	fmt.Fprint(out, value.ToString(args[0]))
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return &value.String{Value: ""}, nil
	}
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return &value.String{Value: line}, nil
}

func str(args []value.Value, _ lexer.Token, _ io.Writer, _ *bufio.Reader) (value.Value, error) {
	return &value.String{Value: value.ToString(args[0])}, nil
}

func intFn(args []value.Value, call lexer.Token, _ io.Writer, _ *bufio.Reader) (value.Value, error) {
	switch arg := args[0].(type) {
	case *value.String:
		n, err := strconv.ParseInt(arg.Value, 10, 64)
		if err != nil {
			return nil, diag.NewRuntimeError(call, "Invalid integer value")
		}
		return &value.Integer{Value: n}, nil
	case *value.Integer:
		return &value.Integer{Value: arg.Value}, nil
	case *value.Float:
		return &value.Integer{Value: int64(arg.Value)}, nil
	case *value.Boolean:
		if arg.Value {
			return &value.Integer{Value: 1}, nil
		}
		return &value.Integer{Value: 0}, nil
	default:
		return nil, diag.NewRuntimeError(call, "int() argument must be either string, integer, float or boolean")
	}
}

func floatFn(args []value.Value, call lexer.Token, _ io.Writer, _ *bufio.Reader) (value.Value, error) {
	switch arg := args[0].(type) {
	case *value.String:
		f, err := strconv.ParseFloat(arg.Value, 64)
		if err != nil {
			return nil, diag.NewRuntimeError(call, "Invalid float value")
		}
		return &value.Float{Value: f}, nil
	case *value.Integer:
		return &value.Float{Value: float64(arg.Value)}, nil
	case *value.Float:
		return &value.Float{Value: arg.Value}, nil
	case *value.Boolean:
		if arg.Value {
			return &value.Float{Value: 1}, nil
		}
		return &value.Float{Value: 0}, nil
	default:
		return nil, diag.NewRuntimeError(call, "float() argument must be either string, integer, float or boolean")
	}
}

// boolFn's string case is deliberately the inverse of the original's: an
// empty string is false, anything else is true (the original tested
// `.empty()` directly, backwards from every other truthiness rule in the
// language — see the design notes' open-question decision).
func boolFn(args []value.Value, call lexer.Token, _ io.Writer, _ *bufio.Reader) (value.Value, error) {
	switch arg := args[0].(type) {
	case value.None:
		return &value.Boolean{Value: false}, nil
	case *value.String:
		return &value.Boolean{Value: arg.Value != ""}, nil
	case *value.Integer:
		return &value.Boolean{Value: arg.Value != 0}, nil
	case *value.Float:
		return &value.Boolean{Value: arg.Value != 0}, nil
	case *value.Boolean:
		return &value.Boolean{Value: arg.Value}, nil
	default:
		return nil, diag.NewRuntimeError(call, "bool() argument must be either none, string, integer, float or boolean")
	}
}
