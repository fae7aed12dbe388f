package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/labstack/gommon/color"
)

// errFailed reports a script failure that was already printed
var errFailed = errors.New("execution failed")

type stdPrinter struct {
	out   io.Writer
	color *color.Color
}

func newStdPrinter(out io.Writer, colored bool) stdPrinter {
	c := color.New()
	if !colored {
		c.Disable()
	}
	return stdPrinter{out: out, color: c}
}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Fprintln(s.out, a...)
}

func (s stdPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return fmt.Fprint(w, s.color.Red(fmt.Sprintf(format, a...)))
}

func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(w, s.color.Red(fmt.Sprint(a...)))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
