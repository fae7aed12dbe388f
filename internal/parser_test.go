package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkTree(t *testing.T, source string, tree string) {
	t.Helper()
	tp := &testPrinter{}
	out, ok := NewInterpreter(tp).Tree(source, true)
	require.True(t, ok, "source: %s\n%s", source, tp.printed)
	assert.Equal(t, tree+"\n", out, "source: %s", source)
}

func checkParseError(t *testing.T, source string, errors string) {
	t.Helper()
	printed, ok := runSource(source)
	assert.False(t, ok)
	assert.Equal(t, errors, printed, "source: %s", source)
}

func TestParseExpressions(t *testing.T) {
	checkTree(t, "print 1 + 2 * 3;", "(print (+ 1 (* 2 3)))")
	checkTree(t, "print (1 + 2) * 3;", "(print (* (group (+ 1 2)) 3))")
	checkTree(t, "print 1 - 2 - 3;", "(print (- (- 1 2) 3))")
	checkTree(t, "print -(1);", "(print (- (group 1)))")
	checkTree(t, "print !!true;", "(print (! (! true)))")
	checkTree(t, "print 1 < 2 == 3 >= 4;", "(print (== (< 1 2) (>= 3 4)))")
	checkTree(t, "print a or b and c;", "(print (or a (and b c)))")
	checkTree(t, "print a ? b : c ? d : e;", "(print (?: a b (?: c d e)))")
	checkTree(t, "print a ? b, c : d;", "(print (?: a (, b c) d))")
	checkTree(t, `print "s" + nil;`, `(print (+ "s" nil))`)
	checkTree(t, "var a = 1, 2;", "(var a (, 1 2))")
	checkTree(t, "a = b = 1;", "(set a (set b 1))")
	checkTree(t, "f(1)(2);", "(call (call f 1) 2)")
	checkTree(t, "f(a, b = 2);", "(call f a (set b 2))")
	checkTree(t, "f();", "(call f)")
	checkTree(t, "var f = fun (x) x * 2;", "(var f (lambda (x) (* x 2)))")
	checkTree(t, "fun (a) a;", "(lambda (a) a)")
	checkTree(t, "var k = fun () fun (x) x;", "(var k (lambda () (lambda (x) x)))")
}

func TestParseStatements(t *testing.T) {
	checkTree(t, "var x;", "(var x)")
	checkTree(t, "{ var x = 1; print x; }", "(scope (var x 1) (print x))")
	checkTree(t, "{}", "(scope)")
	checkTree(t, "if (a) print 1;", "(if a (print 1))")
	checkTree(t, "if (a) print 1; else print 2;", "(if a (print 1) (print 2))")
	checkTree(t, "if (a) if (b) print 1; else print 2;", "(if a (if b (print 1) (print 2)))")
	checkTree(t, "while (a) { a = false; }", "(while a (scope (set a false)))")
	checkTree(t, "for (var i = 0; i < 3; i = i + 1) print i;", "(for (var i 0) (< i 3) (set i (+ i 1)) (print i))")
	checkTree(t, "for (;;) {}", "(for _ _ _ (scope))")
	checkTree(t, "for (i = 0; ; ) print i;", "(for (set i 0) _ _ (print i))")
	checkTree(t, "fun add(a, b) { return a + b; }", "(fun add (a b) (return (+ a b)))")
	checkTree(t, "fun f() { return; }", "(fun f () (return))")
	checkTree(t, "fun f() {}", "(fun f ())")
	checkTree(t, "print 1; print 2;", "(print 1)\n(print 2)")
}

func TestParseTreeDesugared(t *testing.T) {
	tp := &testPrinter{}
	out, ok := NewInterpreter(tp).Tree("for (;;) print 1;", false)
	require.True(t, ok)
	assert.Equal(t, "(scope (while true (scope (print 1))))\n", out)
}

func TestParseErrors(t *testing.T) {
	checkParseError(t, "print 1", "Error on line 1\n\tExpect ';' here\n")
	checkParseError(t, "print (1;", "Error on line 1\n\tExpect ')' after expression\n")
	checkParseError(t, "var = 1;", "Error on line 1\n\tExpect variable name\n")
	checkParseError(t, "1 = 2;", "Error on line 1\n\tInvalid assignment target\n")
	checkParseError(t, "print a ? b;", "Error on line 1\n\tExpect ':' in conditional expression\n")
	checkParseError(t, "if a) print 1;", "Error on line 1\n\tExpect '(' here\n")
	checkParseError(t, "fun f(1) {}", "Error on line 1\n\tExpect parameter name\n")
	checkParseError(t, "fun f() print 1;", "Error on line 1\n\tExpect '{' before body\n")
	checkParseError(t, "fun f() {\nprint 1;\n", "Error on line 3\n\tExpect '}' after block\n")
	checkParseError(t, "\nreturn 1;", "Error on line 2\n\tCannot return from top-level code\n")
	checkParseError(t, "{ return; }", "Error on line 1\n\tCannot return from top-level code\n")

	// Returns are fine inside function and lambda bodies at any depth
	printed, ok := runSource(`
fun f() {
	{ while (true) { return 1; } }
}
var g = fun () f();
print g();`)
	require.True(t, ok, printed)
	assert.Equal(t, "1\n", printed)

	// The parser recovers at the next statement and keeps reporting
	checkParseError(t, "print 1\nprint 2;\nvar x = ;",
		"Error on line 2\n\tExpect ';' here\nError on line 3\n\tExpect expression\n")

	// Nothing runs when any error was found
	checkParseError(t, "print 1;\nprint ;", "Error on line 2\n\tExpect expression\n")
}

func TestScanErrorsStopParsing(t *testing.T) {
	checkParseError(t, "var a = @;", "Error on line 1\n\tIllegal character\n")
	checkParseError(t, "\nprint \"abc", "Error on line 2\n\tClosing \" was expected\n")
}

func TestParseMaxArguments(t *testing.T) {
	args := "0"
	for i := 1; i <= maxFunctionParams; i++ {
		args += ", 0"
	}
	checkParseError(t, "f("+args+");", "Error on line 1\n\tMax number of arguments is 255\n")
}
