package internal

import (
	"time"
)

func defineGlobals(e *env) {
	defineClock(e)
	defineType(e)
}

func defineClock(e *env) {
	e.define("clock", &nativeFn{
		arityValue: 0,
		callFn: func(exec *exec, arguments []interface{}) (interface{}, error) {
			return float64(time.Now().UnixNano()) / float64(time.Second), nil
		},
	})
}

func defineType(e *env) {
	e.define("type", &nativeFn{
		arityValue: 1,
		callFn: func(exec *exec, arguments []interface{}) (interface{}, error) {
			return typeName(arguments[0]), nil
		},
	})
}
