package main

import (
	"fmt"
	"go/format"
	"io/ioutil"
	"log"
	"os"
	"strings"
)

//go:generate go run . Expr ../../internal/expr.go
//go:generate go run . Stmt ../../internal/stmt.go

var nodes = map[string][]string{
	"Stmt": {
		"Expr: expression expr",
		"Print: keyword *token, expression expr",
		"Var: name *token, initializer expr",
		"Block: stmts []stmt",
		"If: keyword *token, condition expr, thenBranch stmt, elseBranch stmt",
		"While: keyword *token, condition expr, body stmt",
		"For: keyword *token, initializer stmt, condition expr, increment expr, body stmt",
		"Fn: name *token, params []*token, body []stmt",
		"Return: keyword *token, value expr",
	},
	"Expr": {
		"Literal: value interface{}",
		"Variable: name *token",
		"Assign: name *token, value expr",
		"Binary: left expr, operator *token, right expr",
		"Unary: operator *token, right expr",
		"Grouping: expression expr",
		"Logical: left expr, operator *token, right expr",
		"Conditional: condition expr, thenBranch expr, elseBranch expr",
		"Call: callee expr, paren *token, arguments []expr",
		"Lambda: keyword *token, params []*token, body expr",
	},
}

func main() {
	if len(os.Args) != 3 {
		fmt.Println("Usage: astgen Expr|Stmt /path/to/output.go")
		os.Exit(1)
	}

	types, ok := nodes[os.Args[1]]
	if !ok {
		log.Fatalf("unknown node kind %q", os.Args[1])
	}

	src, err := format.Source([]byte(generateAst(os.Args[1], types)))
	if err != nil {
		log.Fatal(err)
	}

	if err := ioutil.WriteFile(os.Args[2], src, 0644); err != nil {
		log.Fatal(err)
	}
}

func generateAst(baseName string, types []string) string {
	base := strings.ToLower(baseName)
	out := "package internal\n\n"

	// Start base interface
	out += "type " + base + " interface {\n"
	out += "\t" + base + "Node()\n"
	out += "}\n\n"
	// End base interface

	for _, t := range types {
		typeDef := strings.SplitN(t, ":", 2)
		structName := strings.TrimSpace(typeDef[0])
		structFields := strings.TrimSpace(typeDef[1])
		out += generateType(baseName, structName, structFields)
	}

	return out
}

func generateType(baseName, name, fields string) string {
	base := strings.ToLower(baseName)

	// Start Structure Definition
	structName := strings.ToLower(string(name[0])) + name[1:] + baseName
	out := "type " + structName + " struct {\n"
	for _, field := range strings.Split(fields, ",") {
		out += "\t" + strings.TrimSpace(field) + "\n"
	}
	out += "}\n\n"
	// End Structure Definition

	// Marker method closing the node set
	out += "func (*" + structName + ") " + base + "Node() {}\n\n"

	return out
}
