package internal

type env struct {
	enclosing *env
	values    map[string]interface{}
}

func newEnv(enclosing *env) *env {
	return &env{
		enclosing: enclosing,
		values:    make(map[string]interface{}),
	}
}

func (e *env) get(name *token) (interface{}, error) {
	for frame := e; frame != nil; frame = frame.enclosing {
		if value, ok := frame.values[name.lexeme]; ok {
			return value, nil
		}
	}
	return nil, runtimeErrf(errUndefinedVar, name, "'%s'", name.lexeme)
}

func (e *env) define(name string, value interface{}) {
	e.values[name] = value
}

func (e *env) assign(name *token, value interface{}) error {
	for frame := e; frame != nil; frame = frame.enclosing {
		if _, ok := frame.values[name.lexeme]; ok {
			frame.values[name.lexeme] = value
			return nil
		}
	}
	return runtimeErrf(errUndefinedVar, name, "'%s'", name.lexeme)
}

// depth is the number of frames between e and the root frame
func (e *env) depth() int {
	d := 0
	for frame := e.enclosing; frame != nil; frame = frame.enclosing {
		d++
	}
	return d
}
