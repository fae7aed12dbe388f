package internal

type callable interface {
	arity() int
	call(exec *exec, arguments []interface{}) (interface{}, error)
}

// function is a closure over the frame that was active when it was declared.
type function struct {
	name    string
	params  []*token
	body    []stmt
	closure *env
}

func newFunction(stmt *fnStmt, closure *env) *function {
	return &function{
		name:    stmt.name.lexeme,
		params:  stmt.params,
		body:    stmt.body,
		closure: closure,
	}
}

// newLambda wraps the lambda body in a return so that its value is the result.
func newLambda(expr *lambdaExpr, closure *env) *function {
	return &function{
		params: expr.params,
		body: []stmt{&returnStmt{
			keyword: expr.keyword,
			value:   expr.body,
		}},
		closure: closure,
	}
}

func (f *function) arity() int {
	return len(f.params)
}

func (f *function) call(exec *exec, arguments []interface{}) (interface{}, error) {
	environment := newEnv(f.closure)
	for i, param := range f.params {
		environment.define(param.lexeme, arguments[i])
	}

	result, err := exec.executeBlock(f.body, environment)
	if err != nil {
		return nil, err
	}
	if result != nil {
		return result.value, nil
	}
	return nil, nil
}

func (f *function) String() string {
	if f.name == "" {
		return "<fn lambda>"
	}
	return "<fn " + f.name + ">"
}

type nativeFn struct {
	arityValue int
	callFn     func(exec *exec, arguments []interface{}) (interface{}, error)
}

func (n *nativeFn) arity() int {
	return n.arityValue
}

func (n *nativeFn) call(exec *exec, arguments []interface{}) (interface{}, error) {
	return n.callFn(exec, arguments)
}

func (n *nativeFn) String() string {
	return "<fn native>"
}
