package internal

import (
	"io"
	"io/ioutil"

	"github.com/sirupsen/logrus"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// Interpreter is a session that keeps its global frame across runs
type Interpreter struct {
	printer IPrinter
	logger  *logrus.Logger
	exec    *exec
}

// Option configures an Interpreter
type Option func(*Interpreter)

// WithLogger sets the logger used for call and frame tracing
func WithLogger(logger *logrus.Logger) Option {
	return func(i *Interpreter) {
		i.logger = logger
	}
}

// NewInterpreter creates an interpreter printing to p
func NewInterpreter(p IPrinter, opts ...Option) *Interpreter {
	i := &Interpreter{printer: p}
	for _, opt := range opts {
		opt(i)
	}
	if i.logger == nil {
		i.logger = logrus.New()
		i.logger.SetOutput(ioutil.Discard)
	}
	i.exec = newExec(p, i.logger)
	return i
}

// Run scans, parses, desugars and executes source. It returns false when
// any error was reported.
func (i *Interpreter) Run(source string) bool {
	state, ok := i.load(source)
	if !ok {
		return false
	}

	if err := i.exec.interpret(desugar(state.stmts)); err != nil {
		state.printRuntimeError(err)
		return false
	}
	return true
}

// Tree renders the parsed program, desugared unless raw is set
func (i *Interpreter) Tree(source string, raw bool) (string, bool) {
	state, ok := i.load(source)
	if !ok {
		return "", false
	}
	if raw {
		return printTree(state.stmts), true
	}
	return printTree(desugar(state.stmts)), true
}

func (i *Interpreter) load(source string) (*interpreterState, bool) {
	state := newInterpreterState(source, i.printer)

	newLexer(state).scan()
	if state.PrintErrors() {
		return nil, false
	}

	newParser(state).parse()
	if state.PrintErrors() {
		return nil, false
	}

	i.logger.WithFields(logrus.Fields{
		"tokens": len(state.tokens),
		"stmts":  len(state.stmts),
	}).Debug("parsed source")

	return state, true
}

// RunSourceWithPrinter runs source code on a fresh interpreter instance
func RunSourceWithPrinter(source string, p IPrinter) bool {
	return NewInterpreter(p).Run(source)
}
