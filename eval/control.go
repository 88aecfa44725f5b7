package eval

import "github.com/mint-lang/mint/value"

// returnSignal is Return's non-error unwinding signal, distinguished from
// *diag.RuntimeError by type. It satisfies error purely so it can travel
// through the same (value, error) return channels as a runtime error;
// callFunction is the only place that ever unwraps one — everywhere else it
// propagates like any other error until a function call boundary catches
// it.
type returnSignal struct {
	value value.Value
}

func (*returnSignal) Error() string { return "return outside of a function" }
