package eval

import (
	"fmt"

	"github.com/akashmaji946/tully/environment"
	"github.com/akashmaji946/tully/parser"
	"github.com/akashmaji946/tully/value"
)

// Run executes a parsed program's statements in order against the
// evaluator's current environment (the global scope on a fresh
// Evaluator). A returnSignal that escapes every statement here came from
// a `return` outside any function body — reported as a runtime error.
func (e *Evaluator) Run(statements []parser.Stmt) error {
	for _, stmt := range statements {
		if err := e.execStmt(stmt); err != nil {
			if ret, ok := err.(*returnSignal); ok {
				return newRuntimeError(ret.Keyword, "'return' outside of a function")
			}
			return err
		}
	}
	return nil
}

// execStmt dispatches on the statement's concrete type — a direct type
// switch, per spec §9, rather than the teacher's NodeVisitor
// double-dispatch interface. A non-nil returnSignal return value is the
// mechanism by which `return` unwinds to the nearest call boundary; every
// other non-nil error is a genuine runtime failure.
func (e *Evaluator) execStmt(stmt parser.Stmt) error {
	switch s := stmt.(type) {
	case *parser.ExpressionStmt:
		_, err := e.evalExpr(s.Expr)
		return err

	case *parser.PrintStmt:
		v, err := e.evalExpr(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(e.Writer, v.String())
		return nil

	case *parser.VarStmt:
		v := value.Value(value.NilValue)
		if s.Init != nil {
			var err error
			v, err = e.evalExpr(s.Init)
			if err != nil {
				return err
			}
		}
		e.Env.Define(s.Name.Lexeme, v)
		return nil

	case *parser.BlockStmt:
		return e.execBlock(s, environment.New(e.Env))

	case *parser.IfStmt:
		return e.execIf(s)

	case *parser.WhileStmt:
		return e.execWhile(s)

	case *parser.FunctionStmt:
		fn := &UserFunction{Name: s.Name.Lexeme, Params: s.Params, Body: s.Body, Closure: e.Env}
		e.Env.Define(s.Name.Lexeme, value.Function{Callable: fn})
		return nil

	case *parser.ReturnStmt:
		v := value.Value(value.NilValue)
		if s.Value != nil {
			var err error
			v, err = e.evalExpr(s.Value)
			if err != nil {
				return err
			}
		}
		return &returnSignal{Value: v, Keyword: s.Keyword}

	default:
		panic(fmt.Sprintf("eval: unhandled statement type %T", stmt))
	}
}

// execBlock runs a block's statements in env, guaranteeing the caller's
// previous environment is restored on every exit path — normal
// completion, a returnSignal, or a runtime error (spec §4.3.2).
func (e *Evaluator) execBlock(block *parser.BlockStmt, env *environment.Environment) error {
	caller := e.Env
	e.Env = env
	defer func() { e.Env = caller }()

	for _, stmt := range block.Statements {
		if err := e.execStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (e *Evaluator) execIf(s *parser.IfStmt) error {
	cond, err := e.evalExpr(s.Condition)
	if err != nil {
		return err
	}
	if value.IsTruthy(cond) {
		return e.execStmt(s.Then)
	}
	if s.Else != nil {
		return e.execStmt(s.Else)
	}
	return nil
}

func (e *Evaluator) execWhile(s *parser.WhileStmt) error {
	for {
		cond, err := e.evalExpr(s.Condition)
		if err != nil {
			return err
		}
		if !value.IsTruthy(cond) {
			return nil
		}
		if err := e.execStmt(s.Body); err != nil {
			return err
		}
	}
}
