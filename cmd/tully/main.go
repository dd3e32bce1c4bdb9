// Command tully is the interpreter's command-line entry point, matching
// spec §6's three invocation forms exactly. Grounded on main/main.go's
// file-vs-REPL dispatch and executeFileWithRecovery's error-reporting
// shape, trimmed to this closed set of forms — no --help/--version/server
// modes, which spec §6 doesn't name.
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/tully/diagnostic"
	"github.com/akashmaji946/tully/repl"
)

func main() {
	switch len(os.Args) {
	case 1:
		if err := repl.New().Run(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "tully: %v\n", err)
			os.Exit(1)
		}
	case 2:
		os.Exit(runFile(os.Args[1]))
	default:
		fmt.Fprintln(os.Stderr, "Usage : Tully [script]")
		os.Exit(1)
	}
}

// runFile reads path as UTF-8 source, evaluates it once against stdout,
// and returns the process exit code: 0 on success, non-zero on a file
// I/O error or any lexical/parse/runtime diagnostic.
func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tully: could not read %s: %v\n", path, err)
		return 1
	}

	if err := run(string(source), os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, diagnostic.Format(err))
		return 1
	}
	return 0
}
