package interpreter

import (
	"fmt"

	"github.com/lisale0/Lox/internal/token"
)

// RuntimeError is a runtime fault tied to the offending token's source
// line, per the §6 stderr format ("message\n[line N]").
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Line)
}

// signal is the non-error control-flow unwind used to exit a function
// body early on a return statement. It implements the error interface so
// it can travel back through the same (error) return channel that
// RuntimeError uses, but the Interpreter never reports it as a runtime
// error: only the Call handler consumes it, converting it back into an
// ordinary value.
type signal struct {
	value interface{}
}

func (s *signal) Error() string { return "return outside of call (internal control signal)" }

// asSignal reports whether err is a return signal and, if so,
// returns its carried value.
func asSignal(err error) (interface{}, bool) {
	if s, ok := err.(*signal); ok {
		return s.value, true
	}
	return nil, false
}
