package eval

import (
	"fmt"

	"github.com/akashmaji946/tully/parser"
	"github.com/akashmaji946/tully/value"
)

// evalExpr dispatches on the expression's concrete type, mirroring
// execStmt's type-switch style.
func (e *Evaluator) evalExpr(expr parser.Expr) (value.Value, error) {
	switch ex := expr.(type) {
	case *parser.LiteralExpr:
		return literalValue(ex.Value), nil

	case *parser.GroupExpr:
		return e.evalExpr(ex.Inner)

	case *parser.VariableExpr:
		v, ok := e.Env.Get(ex.Name.Lexeme)
		if !ok {
			return nil, newRuntimeError(ex.Name, "undefined variable '%s'", ex.Name.Lexeme)
		}
		return v, nil

	case *parser.AssignExpr:
		v, err := e.evalExpr(ex.Value)
		if err != nil {
			return nil, err
		}
		if !e.Env.Assign(ex.Name.Lexeme, v) {
			return nil, newRuntimeError(ex.Name, "undefined variable '%s'", ex.Name.Lexeme)
		}
		return v, nil

	case *parser.UnaryExpr:
		return e.evalUnary(ex)

	case *parser.BinaryExpr:
		return e.evalBinary(ex)

	case *parser.CallExpr:
		return e.evalCall(ex)

	default:
		panic(fmt.Sprintf("eval: unhandled expression type %T", expr))
	}
}

// literalValue converts a parser-time literal into the evaluator's
// runtime value model — the one place the two literal representations
// meet.
func literalValue(lit parser.LiteralValue) value.Value {
	switch lit.Kind {
	case parser.LiteralFloat:
		return value.Float{Value: lit.Float}
	case parser.LiteralString:
		return value.String{Value: lit.String}
	case parser.LiteralBool:
		return value.Boolean{Value: lit.Bool}
	default:
		return value.NilValue
	}
}

func (e *Evaluator) evalCall(ex *parser.CallExpr) (value.Value, error) {
	calleeVal, err := e.evalExpr(ex.Callee)
	if err != nil {
		return nil, err
	}
	fn, ok := calleeVal.(value.Function)
	if !ok {
		return nil, newRuntimeError(ex.Paren, "value is not callable")
	}

	args := make([]value.Value, len(ex.Args))
	for i, argExpr := range ex.Args {
		v, err := e.evalExpr(argExpr)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	if len(args) != fn.Callable.Arity() {
		return nil, newRuntimeError(ex.Paren, "expected %d argument(s) but got %d", fn.Callable.Arity(), len(args))
	}

	return e.call(fn.Callable, args, ex.Paren)
}
