package eval

import (
	"fmt"

	"github.com/akashmaji946/tully/lexer"
	"github.com/akashmaji946/tully/parser"
	"github.com/akashmaji946/tully/value"
)

func (e *Evaluator) evalUnary(ex *parser.UnaryExpr) (value.Value, error) {
	operand, err := e.evalExpr(ex.Operand)
	if err != nil {
		return nil, err
	}

	switch ex.Operator.Type {
	case lexer.BANG:
		return value.Boolean{Value: !value.IsTruthy(operand)}, nil
	case lexer.MINUS:
		f, ok := operand.(value.Float)
		if !ok {
			return nil, newRuntimeError(ex.Operator, "operand of '-' must be a number")
		}
		return value.Float{Value: -f.Value}, nil
	case lexer.PLUS:
		f, ok := operand.(value.Float)
		if !ok {
			return nil, newRuntimeError(ex.Operator, "operand of '+' must be a number")
		}
		return value.Float{Value: f.Value}, nil
	default:
		panic(fmt.Sprintf("eval: unhandled unary operator %q", ex.Operator.Lexeme))
	}
}

// evalBinary evaluates both operands unconditionally — the language has
// no logical operators, so there is nothing to short-circuit (spec
// §4.3.1) — then dispatches on the operator.
func (e *Evaluator) evalBinary(ex *parser.BinaryExpr) (value.Value, error) {
	left, err := e.evalExpr(ex.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpr(ex.Right)
	if err != nil {
		return nil, err
	}

	switch ex.Operator.Type {
	case lexer.PLUS:
		return evalAddition(left, right, ex.Operator)
	case lexer.MINUS:
		return arithmetic(left, right, ex.Operator, func(a, b float64) float64 { return a - b })
	case lexer.STAR:
		return arithmetic(left, right, ex.Operator, func(a, b float64) float64 { return a * b })
	case lexer.SLASH:
		return arithmetic(left, right, ex.Operator, func(a, b float64) float64 { return a / b })
	case lexer.GREATER:
		return compare(left, right, ex.Operator, func(a, b float64) bool { return a > b })
	case lexer.GREATER_EQUAL:
		return compare(left, right, ex.Operator, func(a, b float64) bool { return a >= b })
	case lexer.LESS:
		return compare(left, right, ex.Operator, func(a, b float64) bool { return a < b })
	case lexer.LESS_EQUAL:
		return compare(left, right, ex.Operator, func(a, b float64) bool { return a <= b })
	case lexer.EQUAL_EQUAL:
		return value.Boolean{Value: left.Equals(right)}, nil
	case lexer.BANG_EQUAL:
		return value.Boolean{Value: !left.Equals(right)}, nil
	default:
		panic(fmt.Sprintf("eval: unhandled binary operator %q", ex.Operator.Lexeme))
	}
}

// evalAddition implements `+`'s dual contract: numeric addition when
// both sides are Float, string concatenation (with the non-string side
// coerced via its own String() form) when either side is a String.
func evalAddition(left, right value.Value, op lexer.Token) (value.Value, error) {
	lf, lok := left.(value.Float)
	rf, rok := right.(value.Float)
	if lok && rok {
		return value.Float{Value: lf.Value + rf.Value}, nil
	}
	if _, lok := left.(value.String); lok {
		return value.Concat(left, right), nil
	}
	if _, rok := right.(value.String); rok {
		return value.Concat(left, right), nil
	}
	return nil, newRuntimeError(op, "operands of '+' must be two numbers or involve a string")
}

func arithmetic(left, right value.Value, op lexer.Token, f func(a, b float64) float64) (value.Value, error) {
	lf, rf, err := requireNumbers(left, right, op)
	if err != nil {
		return nil, err
	}
	return value.Float{Value: f(lf, rf)}, nil
}

func compare(left, right value.Value, op lexer.Token, f func(a, b float64) bool) (value.Value, error) {
	lf, rf, err := requireNumbers(left, right, op)
	if err != nil {
		return nil, err
	}
	return value.Boolean{Value: f(lf, rf)}, nil
}

func requireNumbers(left, right value.Value, op lexer.Token) (float64, float64, error) {
	lf, lok := left.(value.Float)
	rf, rok := right.(value.Float)
	if !lok || !rok {
		return 0, 0, newRuntimeError(op, "operands of '%s' must be numbers", op.Lexeme)
	}
	return lf.Value, rf.Value, nil
}
