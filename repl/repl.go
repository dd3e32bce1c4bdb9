// Package repl implements tully's interactive prompt: read a line,
// evaluate it, report success or failure, and read the next one — it
// never exits on a reported error, only on EOF or an unreadable input
// stream (spec §6). Grounded on repl/repl.go's readline + fatih/color
// session shape, trimmed to the banner and exit semantics spec §6
// actually specifies; the teacher's `.exit`/`/scope` meta-commands and
// TCP server mode have no counterpart here (spec §5 rules out sharing an
// evaluator across connections).
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/tully/diagnostic"
	"github.com/akashmaji946/tully/eval"
	"github.com/akashmaji946/tully/lexer"
	"github.com/akashmaji946/tully/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

const banner = "Math expression evaluator"

var errorColor = color.New(color.FgRed)

// Repl holds the settings of an interactive session; the output writer
// is passed to Run.
type Repl struct {
	Prompt string
}

// New returns a Repl using tully's standard `> ` prompt.
func New() *Repl {
	return &Repl{Prompt: "> "}
}

// Run starts the read-eval-print loop. It returns a non-nil error if
// readline itself could not be started or once reading a line fails,
// whether at EOF or because the input stream became unreadable; the
// caller turns that into a non-zero exit code.
func (r *Repl) Run(writer io.Writer) error {
	color.New(color.FgGreen).Fprintln(writer, banner)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	evaluator := eval.New()
	evaluator.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rl.SaveHistory(line)

		r.evalLine(writer, evaluator, line)
	}
}

// evalLine parses and evaluates one line, reporting any failure through
// the same diagnostic formatting the file-mode CLI uses, then returning
// control to the loop regardless of outcome (spec §7: REPL mode continues
// after an error; only file mode exits).
func (r *Repl) evalLine(writer io.Writer, evaluator *eval.Evaluator, line string) {
	tokens, err := lexer.Tokenize(line)
	if err != nil {
		errorColor.Fprintln(writer, diagnostic.Format(err))
		return
	}

	statements, err := parser.New(tokens).Parse()
	if err != nil {
		errorColor.Fprintln(writer, diagnostic.Format(err))
		return
	}

	if err := evaluator.Run(statements); err != nil {
		errorColor.Fprintln(writer, diagnostic.Format(err))
	}
}
