package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenBrackets(t *testing.T) {
	cases := []struct {
		source string
		open   int
	}{
		{"print 1;", 0},
		{"fun f() {", 1},
		{"fun f() {\n\tif (a) {", 2},
		{"fun f() {\n}", 0},
		{"print (1 +", 1},
		{`print "{(";`, 0},
		{`print "unterminated`, 1},
		{"var a = 1; // {", 0},
		{"{ // }\n", 1},
		{"}", -1},
	}
	for _, c := range cases {
		assert.Equal(t, c.open, openBrackets(c.source), "source: %q", c.source)
	}
}

func TestHistoryPath(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "history")
	assert.Equal(t, abs, historyPath(abs))

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	assert.Equal(t, filepath.Join(home, ".simplf_history"), historyPath(".simplf_history"))
}

func TestStdPrinter(t *testing.T) {
	var out, errOut bytes.Buffer
	p := newStdPrinter(&out, false)

	p.Println("hello")
	p.Fprintf(&errOut, "Error on line %d\n\t%s\n", 3, "Expect expression")
	p.Fprintln(&errOut, "done")

	assert.Equal(t, "hello\n", out.String())
	assert.Equal(t, "Error on line 3\n\tExpect expression\ndone\n", errOut.String())
}
