package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type tokenCase struct {
	Input    string
	Expected []Token
}

func TestTokenize(t *testing.T) {
	tests := []tokenCase{
		{
			Input: `var x = 12 + 3.5;`,
			Expected: []Token{
				NewToken(VAR, "var", 1),
				NewToken(IDENTIFIER, "x", 1),
				NewToken(EQUAL, "=", 1),
				NewToken(NUMBER, "12", 1),
				NewToken(PLUS, "+", 1),
				NewToken(NUMBER, "3.5", 1),
				NewToken(SEMICOLON, ";", 1),
			},
		},
		{
			Input: `!= == <= >= < > = !`,
			Expected: []Token{
				NewToken(BANG_EQUAL, "!=", 1),
				NewToken(EQUAL_EQUAL, "==", 1),
				NewToken(LESS_EQUAL, "<=", 1),
				NewToken(GREATER_EQUAL, ">=", 1),
				NewToken(LESS, "<", 1),
				NewToken(GREATER, ">", 1),
				NewToken(EQUAL, "=", 1),
				NewToken(BANG, "!", 1),
			},
		},
		{
			Input: "fun add(a, b) { return a + b; }",
			Expected: []Token{
				NewToken(FUN, "fun", 1),
				NewToken(IDENTIFIER, "add", 1),
				NewToken(LEFT_PAREN, "(", 1),
				NewToken(IDENTIFIER, "a", 1),
				NewToken(COMMA, ",", 1),
				NewToken(IDENTIFIER, "b", 1),
				NewToken(RIGHT_PAREN, ")", 1),
				NewToken(LEFT_BRACE, "{", 1),
				NewToken(RETURN, "return", 1),
				NewToken(IDENTIFIER, "a", 1),
				NewToken(PLUS, "+", 1),
				NewToken(IDENTIFIER, "b", 1),
				NewToken(SEMICOLON, ";", 1),
				NewToken(RIGHT_BRACE, "}", 1),
			},
		},
		{
			Input: "\"hi\nthere\"",
			Expected: []Token{
				NewToken(STRING, "\"hi\nthere\"", 1),
			},
		},
	}

	for _, tc := range tests {
		got, err := Tokenize(tc.Input)
		require.NoError(t, err)
		require.Equal(t, tc.Expected, got)
	}
}

func TestTokenizeLineTracking(t *testing.T) {
	tokens, err := Tokenize("var a = 1;\nvar b = 2;")
	require.NoError(t, err)
	require.Equal(t, 1, tokens[0].Line)
	require.Equal(t, 2, tokens[len(tokens)-1].Line)
}

func TestTokenizeUnterminatedString(t *testing.T) {
	_, err := Tokenize(`"unterminated`)
	require.Error(t, err)
	var lexErr *Error
	require.ErrorAs(t, err, &lexErr)
	require.Equal(t, 1, lexErr.Line)
}

func TestTokenizeUnexpectedCharacter(t *testing.T) {
	_, err := Tokenize("var x = 1 @ 2;")
	require.Error(t, err)
}

func TestLexemeFidelity(t *testing.T) {
	src := `var snake_case1 = "a string" + 42.25;`
	tokens, err := Tokenize(src)
	require.NoError(t, err)
	pos := 0
	for _, tok := range tokens {
		idx := indexFrom(src, tok.Lexeme, pos)
		require.GreaterOrEqualf(t, idx, 0, "lexeme %q not found in source from %d", tok.Lexeme, pos)
		pos = idx + len(tok.Lexeme)
	}
}

func indexFrom(s, substr string, from int) int {
	if from > len(s) {
		return -1
	}
	i := indexOf(s[from:], substr)
	if i < 0 {
		return -1
	}
	return from + i
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
