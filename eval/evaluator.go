// Package eval walks the AST produced by package parser, threading a
// single environment.Environment as the interpreter's mutable state.
// Grounded on eval/evaluator.go's Evaluator struct and the e.Scp
// swap-and-restore pattern used at call boundaries, generalized to the
// spec's value and environment model.
package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/tully/builtin"
	"github.com/akashmaji946/tully/environment"
	"github.com/akashmaji946/tully/lexer"
	"github.com/akashmaji946/tully/value"
)

// Evaluator holds the interpreter's live state: the current scope frame
// and the writer that `print` statements write to.
type Evaluator struct {
	Global *environment.Environment
	Env    *environment.Environment
	Writer io.Writer
}

// New builds an Evaluator with a fresh global scope populated with the
// native builtin registry (spec §4.4), writing to stdout by default.
func New() *Evaluator {
	global := environment.New(nil)
	e := &Evaluator{Global: global, Env: global, Writer: os.Stdout}
	for _, spec := range builtin.All() {
		fn := &NativeFunction{name: spec.Name, arity: spec.Arity, call: spec.Fn}
		global.Define(spec.Name, value.Function{Callable: fn})
	}
	return e
}

// SetWriter redirects output from `print` statements, primarily for test
// capture. Native functions receive only their arguments and never write
// to it.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// RuntimeError is a failure during evaluation, carrying the offending
// token so it can be reported the same way parse errors are (spec §7:
// runtime messages include `at "<lexeme>" (line <N>)`).
type RuntimeError struct {
	Token   lexer.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s at %q (line %d)", e.Message, e.Token.Lexeme, e.Token.Line)
}

func newRuntimeError(tok lexer.Token, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}

// returnSignal is the distinguished control-flow value raised by a
// `return` statement (spec §4.3.2, §7). It satisfies the error interface
// so it can travel through the same two-branch (value, error) result
// channel as real failures; execStmt passes it upward unchanged and
// callUserFunction unwraps it by type assertion rather than treating it
// as a reported error. If one escapes
// all the way out of Run without being caught by a call boundary, that is
// a `return` used outside any function — reported as a runtime error,
// not the internal "must not escape visit_call" defect spec §7 describes
// for a caught-and-mishandled signal.
type returnSignal struct {
	Value   value.Value
	Keyword lexer.Token
}

func (r *returnSignal) Error() string { return "return outside function" }
