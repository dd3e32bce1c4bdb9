package eval

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/tully/lexer"
	"github.com/akashmaji946/tully/parser"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) string {
	t.Helper()
	tokens, err := lexer.Tokenize(src)
	require.NoError(t, err)
	stmts, err := parser.New(tokens).Parse()
	require.NoError(t, err)

	var buf bytes.Buffer
	e := New()
	e.SetWriter(&buf)
	require.NoError(t, e.Run(stmts))
	return buf.String()
}

func TestArithmeticAndPrint(t *testing.T) {
	require.Equal(t, "7\n", run(t, `print 3 + 4;`))
}

func TestStringConcatenationWithNumberCoercion(t *testing.T) {
	require.Equal(t, "count: 3\n", run(t, `print "count: " + 3;`))
}

func TestIfElse(t *testing.T) {
	require.Equal(t, "yes\n", run(t, `if (1 < 2) print "yes"; else print "no";`))
}

func TestWhileLoop(t *testing.T) {
	src := `
	var i = 0;
	while (i < 3) {
		print i;
		i = i + 1;
	}`
	require.Equal(t, "0\n1\n2\n", run(t, src))
}

func TestForLoopDesugaring(t *testing.T) {
	src := `for (var i = 0; i < 3; i = i + 1) print i;`
	require.Equal(t, "0\n1\n2\n", run(t, src))
}

func TestRecursiveFibonacci(t *testing.T) {
	src := `fun fib(n) { if (n < 2) return n; return fib(n-1) + fib(n-2); } print fib(10);`
	require.Equal(t, "55\n", run(t, src))
}

func TestClosureObservesLatestValueNotSnapshot(t *testing.T) {
	src := `
	fun mk() {
		var c = 0;
		fun inc() { c = c + 1; return c; }
		return inc;
	}
	var f = mk();
	print f();
	print f();`
	require.Equal(t, "1\n2\n", run(t, src))
}

func TestBlockScopingShadowsAndRestores(t *testing.T) {
	src := `
	var x = 1;
	{
		var x = 2;
		print x;
	}
	print x;`
	require.Equal(t, "2\n1\n", run(t, src))
}

func TestVarRedeclarationInSameScopeReplaces(t *testing.T) {
	src := `var x = 1; var x = 2; print x;`
	require.Equal(t, "2\n", run(t, src))
}

func TestUndefinedVariableIsRuntimeError(t *testing.T) {
	tokens, err := lexer.Tokenize(`print missing;`)
	require.NoError(t, err)
	stmts, err := parser.New(tokens).Parse()
	require.NoError(t, err)

	e := New()
	var buf bytes.Buffer
	e.SetWriter(&buf)
	err = e.Run(stmts)
	require.Error(t, err)
	var rtErr *RuntimeError
	require.ErrorAs(t, err, &rtErr)
}

func TestAssignToUndeclaredGlobalIsRuntimeError(t *testing.T) {
	tokens, err := lexer.Tokenize(`x = 1;`)
	require.NoError(t, err)
	stmts, err := parser.New(tokens).Parse()
	require.NoError(t, err)

	err = New().Run(stmts)
	require.Error(t, err)
}

func TestDivisionByZeroYieldsInfNotError(t *testing.T) {
	require.Equal(t, "inf\n", run(t, `print 1 / 0;`))
}

func TestEqualityNeverErrorsAcrossTypes(t *testing.T) {
	require.Equal(t, "false\n", run(t, `print 1 == "1";`))
}

func TestWrongArityIsRuntimeError(t *testing.T) {
	tokens, err := lexer.Tokenize(`fun add(a, b) { return a + b; } add(1);`)
	require.NoError(t, err)
	stmts, err := parser.New(tokens).Parse()
	require.NoError(t, err)

	err = New().Run(stmts)
	require.Error(t, err)
}

func TestCallingNonFunctionIsRuntimeError(t *testing.T) {
	tokens, err := lexer.Tokenize(`var x = 1; x();`)
	require.NoError(t, err)
	stmts, err := parser.New(tokens).Parse()
	require.NoError(t, err)

	err = New().Run(stmts)
	require.Error(t, err)
}

func TestClockBuiltinIsCallableAndReturnsNumber(t *testing.T) {
	out := run(t, `var t = clock(); print t >= 0;`)
	require.Equal(t, "true\n", out)
}
