// Package diagnostic formats errors from any interpreter stage into the
// single diagnostic shape spec §6 requires on the standard error channel:
// `<Kind> Error : <message>`, where Kind identifies which stage failed.
package diagnostic

import (
	"fmt"

	"github.com/akashmaji946/tully/eval"
	"github.com/akashmaji946/tully/lexer"
	"github.com/akashmaji946/tully/parser"
)

// Format renders err as a one-line diagnostic. The error's own Error()
// string already carries the position detail (`(line <N>)` for lexical
// errors, `at "<lexeme>" (line <N>)` for parse and runtime errors, per
// spec §6); Format only prepends the stage name.
func Format(err error) string {
	return fmt.Sprintf("%s Error : %s", kindOf(err), err.Error())
}

func kindOf(err error) string {
	switch err.(type) {
	case *lexer.Error:
		return "Lexical"
	case *parser.Error:
		return "Parsing"
	case *eval.RuntimeError:
		return "Runtime"
	default:
		return "Runtime"
	}
}
