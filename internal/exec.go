package internal

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// returnValue is the completion of an executed return statement. It travels
// up through blocks, ifs and loops until a function call consumes it.
type returnValue struct {
	keyword *token
	value   interface{}
}

type exec struct {
	globals *env
	env     *env

	// calls is the number of function calls in progress
	calls int

	printer IPrinter
	log     *logrus.Entry
}

func newExec(p IPrinter, logger *logrus.Logger) *exec {
	globals := newEnv(nil)
	defineGlobals(globals)
	return &exec{
		globals: globals,
		env:     globals,
		printer: p,
		log:     logger.WithField("component", "exec"),
	}
}

// interpret runs stmts until they finish or one of them fails.
// The active frame is left as it was found in both cases.
func (e *exec) interpret(stmts []stmt) error {
	for _, s := range stmts {
		result, err := e.execute(s)
		if err != nil {
			e.log.WithError(err).Debug("runtime error")
			return err
		}
		if result != nil {
			return runtimeErr(errReturnOutsideFunction, result.keyword)
		}
	}
	return nil
}

func (e *exec) execute(st stmt) (*returnValue, error) {
	switch s := st.(type) {
	case *exprStmt:
		_, err := e.evaluate(s.expression)
		return nil, err

	case *printStmt:
		value, err := e.evaluate(s.expression)
		if err != nil {
			return nil, err
		}
		e.printer.Println(stringify(value))
		return nil, nil

	case *varStmt:
		var value interface{}
		if s.initializer != nil {
			var err error
			if value, err = e.evaluate(s.initializer); err != nil {
				return nil, err
			}
		}
		e.env.define(s.name.lexeme, value)
		return nil, nil

	case *blockStmt:
		return e.executeBlock(s.stmts, newEnv(e.env))

	case *ifStmt:
		condition, err := e.evaluate(s.condition)
		if err != nil {
			return nil, err
		}
		if truthy(condition) {
			return e.execute(s.thenBranch)
		}
		if s.elseBranch != nil {
			return e.execute(s.elseBranch)
		}
		return nil, nil

	case *whileStmt:
		for {
			condition, err := e.evaluate(s.condition)
			if err != nil {
				return nil, err
			}
			if !truthy(condition) {
				return nil, nil
			}
			result, err := e.execute(s.body)
			if err != nil || result != nil {
				return result, err
			}
		}

	case *forStmt:
		// Trees that skipped desugaring still run with the same meaning.
		return e.execute(desugarStmt(s))

	case *fnStmt:
		e.env.define(s.name.lexeme, newFunction(s, e.env))
		return nil, nil

	case *returnStmt:
		var value interface{}
		if s.value != nil {
			var err error
			if value, err = e.evaluate(s.value); err != nil {
				return nil, err
			}
		}
		return &returnValue{keyword: s.keyword, value: value}, nil
	}
	panic(fmt.Sprintf("unexpected statement %T", st))
}

// executeBlock runs stmts with env as the active frame and restores the
// previous frame on every exit path.
func (e *exec) executeBlock(stmts []stmt, env *env) (*returnValue, error) {
	previous := e.env
	defer func() {
		e.env = previous
	}()
	e.env = env
	if e.log.Logger.IsLevelEnabled(logrus.TraceLevel) {
		e.log.WithField("depth", env.depth()).Trace("enter frame")
		defer e.log.WithField("depth", env.depth()).Trace("leave frame")
	}
	for _, s := range stmts {
		result, err := e.execute(s)
		if err != nil || result != nil {
			return result, err
		}
	}
	return nil, nil
}

func (e *exec) evaluate(ex expr) (interface{}, error) {
	switch x := ex.(type) {
	case *literalExpr:
		return x.value, nil

	case *groupingExpr:
		return e.evaluate(x.expression)

	case *variableExpr:
		return e.env.get(x.name)

	case *assignExpr:
		value, err := e.evaluate(x.value)
		if err != nil {
			return nil, err
		}
		if err := e.env.assign(x.name, value); err != nil {
			return nil, err
		}
		return value, nil

	case *binaryExpr:
		return e.binary(x)

	case *unaryExpr:
		return e.unary(x)

	case *logicalExpr:
		left, err := e.evaluate(x.left)
		if err != nil {
			return nil, err
		}
		if x.operator.token == tkOr {
			if truthy(left) {
				return left, nil
			}
		} else if !truthy(left) {
			return left, nil
		}
		return e.evaluate(x.right)

	case *conditionalExpr:
		condition, err := e.evaluate(x.condition)
		if err != nil {
			return nil, err
		}
		if truthy(condition) {
			return e.evaluate(x.thenBranch)
		}
		return e.evaluate(x.elseBranch)

	case *callExpr:
		return e.call(x)

	case *lambdaExpr:
		return newLambda(x, e.env), nil
	}
	panic(fmt.Sprintf("unexpected expression %T", ex))
}

func (e *exec) binary(expr *binaryExpr) (interface{}, error) {
	left, err := e.evaluate(expr.left)
	if err != nil {
		return nil, err
	}
	right, err := e.evaluate(expr.right)
	if err != nil {
		return nil, err
	}

	switch expr.operator.token {
	case tkComma:
		return right, nil
	case tkEqualEqual:
		return equal(left, right), nil
	case tkBangEqual:
		return !equal(left, right), nil
	case tkPlus:
		_, leftStr := left.(string)
		_, rightStr := right.(string)
		if leftStr || rightStr {
			return stringify(left) + stringify(right), nil
		}
		leftNum, leftOk := left.(float64)
		rightNum, rightOk := right.(float64)
		if leftOk && rightOk {
			return leftNum + rightNum, nil
		}
		return nil, runtimeErrf(
			errTypeMismatch,
			expr.operator,
			"cannot add %s and %s",
			typeName(left),
			typeName(right),
		)
	}

	leftNum, rightNum, err := e.getNums(expr.operator, left, right)
	if err != nil {
		return nil, err
	}
	switch expr.operator.token {
	case tkMinus:
		return leftNum - rightNum, nil
	case tkStar:
		return leftNum * rightNum, nil
	case tkSlash:
		if rightNum == 0 {
			return nil, runtimeErr(errDivideByZero, expr.operator)
		}
		return leftNum / rightNum, nil
	case tkGreater:
		return leftNum > rightNum, nil
	case tkGreaterEqual:
		return leftNum >= rightNum, nil
	case tkLess:
		return leftNum < rightNum, nil
	case tkLessEqual:
		return leftNum <= rightNum, nil
	}
	return nil, runtimeErrf(errUndefinedOp, expr.operator, "'%s'", expr.operator.lexeme)
}

func (e *exec) getNums(operator *token, left, right interface{}) (float64, float64, error) {
	leftNum, leftOk := left.(float64)
	rightNum, rightOk := right.(float64)
	if !leftOk || !rightOk {
		return 0, 0, runtimeErrf(
			errTypeMismatch,
			operator,
			"operands of '%s' must be numbers, got %s and %s",
			operator.lexeme,
			typeName(left),
			typeName(right),
		)
	}
	return leftNum, rightNum, nil
}

func (e *exec) unary(expr *unaryExpr) (interface{}, error) {
	value, err := e.evaluate(expr.right)
	if err != nil {
		return nil, err
	}
	switch expr.operator.token {
	case tkBang:
		return !truthy(value), nil
	case tkMinus:
		valueNum, ok := value.(float64)
		if !ok {
			return nil, runtimeErrf(
				errTypeMismatch,
				expr.operator,
				"operand of '-' must be a number, got %s",
				typeName(value),
			)
		}
		return -valueNum, nil
	}
	return nil, runtimeErrf(errUndefinedOp, expr.operator, "'%s'", expr.operator.lexeme)
}

func (e *exec) call(expr *callExpr) (interface{}, error) {
	callee, err := e.evaluate(expr.callee)
	if err != nil {
		return nil, err
	}

	fn, isFn := callee.(callable)
	if !isFn {
		return nil, runtimeErrf(errOnlyFunction, expr.paren, "%s is not callable", typeName(callee))
	}

	arguments := make([]interface{}, len(expr.arguments))
	for i := range expr.arguments {
		if arguments[i], err = e.evaluate(expr.arguments[i]); err != nil {
			return nil, err
		}
	}

	if len(arguments) != fn.arity() {
		return nil, runtimeErrf(
			errInvalidNumberArguments,
			expr.paren,
			"expected %d but got %d",
			fn.arity(),
			len(arguments),
		)
	}

	e.calls++
	defer func() {
		e.calls--
	}()

	debug := e.log.Logger.IsLevelEnabled(logrus.DebugLevel)
	if debug {
		e.log.WithFields(logrus.Fields{
			"fn":    stringify(fn),
			"arity": fn.arity(),
			"depth": e.calls,
			"line":  expr.paren.line,
		}).Debug("call")
	}

	result, err := fn.call(e, arguments)
	if err != nil {
		var runErr *runtimeError
		if !errors.As(err, &runErr) {
			err = runtimeErr(err, expr.paren)
		}
		return nil, err
	}

	if debug {
		e.log.WithFields(logrus.Fields{
			"fn":     stringify(fn),
			"depth":  e.calls,
			"result": stringify(result),
		}).Debug("return")
	}
	return result, nil
}
