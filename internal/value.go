package internal

import (
	"math"
	"strconv"
)

// Runtime values are plain Go values:
//   nil       -> nil
//   boolean   -> bool
//   number    -> float64
//   string    -> string
//   function  -> callable

func truthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if valueBool, isBool := value.(bool); isBool {
		return valueBool
	}
	return true
}

// equal compares without coercion: values of different types are never equal.
func equal(a, b interface{}) bool {
	if a == nil {
		return b == nil
	}
	return a == b
}

func stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return formatNumber(v)
	case string:
		return v
	case interface{ String() string }:
		return v.String()
	}
	return "<unknown>"
}

func formatNumber(n float64) string {
	switch {
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	case math.IsNaN(n):
		return "NaN"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func typeName(value interface{}) string {
	switch value.(type) {
	case nil:
		return "nil"
	case bool:
		return "bool"
	case float64:
		return "number"
	case string:
		return "string"
	case callable:
		return "function"
	}
	return "unknown"
}
