package main

import (
	"io"

	"github.com/akashmaji946/tully/eval"
	"github.com/akashmaji946/tully/lexer"
	"github.com/akashmaji946/tully/parser"
)

// run drives the full lexer → parser → evaluator pipeline over source
// once, writing `print` output to w. Split out from runFile so it can be
// exercised directly in tests without touching os.Args or the real
// filesystem.
func run(source string, w io.Writer) error {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return err
	}

	statements, err := parser.New(tokens).Parse()
	if err != nil {
		return err
	}

	evaluator := eval.New()
	evaluator.SetWriter(w)
	return evaluator.Run(statements)
}
