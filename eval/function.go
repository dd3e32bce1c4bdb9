package eval

import (
	"fmt"

	"github.com/akashmaji946/tully/builtin"
	"github.com/akashmaji946/tully/environment"
	"github.com/akashmaji946/tully/lexer"
	"github.com/akashmaji946/tully/parser"
	"github.com/akashmaji946/tully/value"
)

// NativeFunction wraps a host-provided callable (spec §4.4) so it
// satisfies value.Callable alongside UserFunction; the two are
// indistinguishable to language code apart from their String() form.
type NativeFunction struct {
	name  string
	arity int
	call  builtin.Func
}

func (n *NativeFunction) Arity() int       { return n.arity }
func (n *NativeFunction) String() string   { return fmt.Sprintf("<native fn %s>", n.name) }
func (n *NativeFunction) Invoke(args []value.Value) (value.Value, error) {
	return n.call(args)
}

// UserFunction is the runtime value produced by a `fun` declaration. It
// keeps a shared reference to both its declaration body and the scope
// frame in effect when it was declared (its closure), per spec §3.6 —
// never a snapshot copy.
type UserFunction struct {
	Name    string
	Params  []lexer.Token
	Body    *parser.BlockStmt
	Closure *environment.Environment
}

func (f *UserFunction) Arity() int     { return len(f.Params) }
func (f *UserFunction) String() string { return fmt.Sprintf("<fn %s>", f.Name) }

// call implements the protocol of spec §4.3.3: push a fresh frame
// parented on the captured closure (not the caller's current scope),
// bind parameters, run the body, and always restore the caller's scope
// on the way out — recursion, mutual recursion, and an error or Return
// mid-body all tear down the same way.
func (e *Evaluator) call(callable value.Callable, args []value.Value, paren lexer.Token) (value.Value, error) {
	switch fn := callable.(type) {
	case *NativeFunction:
		return fn.Invoke(args)
	case *UserFunction:
		return e.callUserFunction(fn, args)
	default:
		panic(fmt.Sprintf("eval: unhandled Callable type %T at line %d", callable, paren.Line))
	}
}

func (e *Evaluator) callUserFunction(fn *UserFunction, args []value.Value) (value.Value, error) {
	frame := environment.New(fn.Closure)
	for i, param := range fn.Params {
		frame.Define(param.Lexeme, args[i])
	}

	caller := e.Env
	e.Env = frame
	defer func() { e.Env = caller }()

	for _, stmt := range fn.Body.Statements {
		err := e.execStmt(stmt)
		if err == nil {
			continue
		}
		if ret, ok := err.(*returnSignal); ok {
			return ret.Value, nil
		}
		return nil, err
	}
	return value.NilValue, nil
}
