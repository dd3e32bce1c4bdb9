package diagnostic

import (
	"testing"

	"github.com/akashmaji946/tully/eval"
	"github.com/akashmaji946/tully/lexer"
	"github.com/akashmaji946/tully/parser"
	"github.com/stretchr/testify/require"
)

func TestFormatLexical(t *testing.T) {
	_, err := lexer.Tokenize(`"unterminated`)
	require.Error(t, err)
	require.Equal(t, `Lexical Error : unterminated string literal (line 1)`, Format(err))
}

func TestFormatParsing(t *testing.T) {
	tokens, err := lexer.Tokenize(`var x = ;`)
	require.NoError(t, err)
	_, err = parser.New(tokens).Parse()
	require.Error(t, err)
	require.Contains(t, Format(err), "Parsing Error : expected expression at")
}

func TestFormatRuntime(t *testing.T) {
	tokens, err := lexer.Tokenize(`print missing;`)
	require.NoError(t, err)
	stmts, err := parser.New(tokens).Parse()
	require.NoError(t, err)
	err = eval.New().Run(stmts)
	require.Error(t, err)
	require.Contains(t, Format(err), "Runtime Error : undefined variable 'missing' at")
}
