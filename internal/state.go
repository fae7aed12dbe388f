package internal

import (
	"errors"
	"fmt"
	"os"
)

type parseError struct {
	err  error
	line int
	pos  int
}

type runtimeError struct {
	err    error
	token  *token
	detail string
}

func (r *runtimeError) Error() string {
	if r.detail == "" {
		return r.err.Error()
	}
	return r.err.Error() + ": " + r.detail
}

func (r *runtimeError) Unwrap() error {
	return r.err
}

func (r *runtimeError) line() int {
	if r.token == nil {
		return 0
	}
	return r.token.line
}

// interpreterState stores the state of a single source run
type interpreterState struct {
	source string
	tokens []token
	stmts  []stmt
	errors []parseError
	logger IPrinter
}

func newInterpreterState(source string, p IPrinter) *interpreterState {
	return &interpreterState{
		source: source,
		errors: make([]parseError, 0),
		logger: p,
	}
}

func (s *interpreterState) setError(err error, line, pos int) {
	s.errors = append(s.errors, parseError{
		err:  err,
		line: line,
		pos:  pos,
	})
}

// Valid returns true if no scan or parse error was recorded
func (s *interpreterState) Valid() bool {
	return len(s.errors) == 0
}

// PrintErrors prints all errors, returns true if there was at least one
func (s *interpreterState) PrintErrors() bool {
	for _, e := range s.errors {
		s.logger.Fprintf(os.Stderr, "Error on line %d\n\t%s\n", e.line, e.err.Error())
	}
	return len(s.errors) > 0
}

func (s *interpreterState) printRuntimeError(err error) {
	var runErr *runtimeError
	if errors.As(err, &runErr) {
		s.logger.Fprintf(os.Stderr, "Runtime Error on line %d\n\t%s\n", runErr.line(), runErr.Error())
		return
	}
	s.logger.Fprintf(os.Stderr, "Runtime Error\n\t%s\n", err.Error())
}

func runtimeErr(err error, tk *token) *runtimeError {
	return &runtimeError{err: err, token: tk}
}

func runtimeErrf(err error, tk *token, format string, a ...interface{}) *runtimeError {
	return &runtimeError{err: err, token: tk, detail: fmt.Sprintf(format, a...)}
}

// Lexer errors
var errIllegalChar = errors.New("Illegal character")
var errUnclosedString = errors.New("Closing \" was expected")

// Parser errors
var errUnclosedParen = errors.New("Expect ')' after expression")
var errExpectedOpeningParen = errors.New("Expect '(' here")
var errExpectedClosingCurlyBrace = errors.New("Expect '}' after block")
var errExpectedOpeningCurlyBrace = errors.New("Expect '{' before body")
var errExpectedSemicolon = errors.New("Expect ';' here")
var errExpectedColon = errors.New("Expect ':' in conditional expression")
var errExpectedExpr = errors.New("Expect expression")
var errExpectedIdentifier = errors.New("Expect variable name")
var errExpectedFunctionName = errors.New("Expect function name")
var errExpectedFunctionParam = errors.New("Expect parameter name")
var errInvalidAssignTarget = errors.New("Invalid assignment target")
var errMaxArguments = errors.New("Max number of arguments is 255")
var errMaxParameters = errors.New("Max number of parameters is 255")
var errReturnTopLevel = errors.New("Cannot return from top-level code")

// Runtime errors
var errUndefinedVar = errors.New("Undefined variable")
var errTypeMismatch = errors.New("Type mismatch")
var errOnlyFunction = errors.New("Can only call functions")
var errInvalidNumberArguments = errors.New("Invalid number of arguments")
var errDivideByZero = errors.New("Cannot divide by zero")
var errUndefinedOp = errors.New("Undefined operator")
var errReturnOutsideFunction = errors.New("Return outside of a function")
