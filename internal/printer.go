package internal

import (
	"fmt"
	"strings"
)

// printTree renders statements as s-expressions, one per line
func printTree(stmts []stmt) string {
	var out strings.Builder
	for _, st := range stmts {
		out.WriteString(sexprStmt(st))
		out.WriteString("\n")
	}
	return out.String()
}

func sexprStmt(st stmt) string {
	switch s := st.(type) {
	case *exprStmt:
		return sexprExpr(s.expression)

	case *printStmt:
		return fmt.Sprintf("(print %s)", sexprExpr(s.expression))

	case *varStmt:
		if s.initializer == nil {
			return fmt.Sprintf("(var %s)", s.name.lexeme)
		}
		return fmt.Sprintf("(var %s %s)", s.name.lexeme, sexprExpr(s.initializer))

	case *blockStmt:
		return "(scope" + sexprStmts(s.stmts) + ")"

	case *ifStmt:
		out := fmt.Sprintf("(if %s %s", sexprExpr(s.condition), sexprStmt(s.thenBranch))
		if s.elseBranch != nil {
			out += " " + sexprStmt(s.elseBranch)
		}
		return out + ")"

	case *whileStmt:
		return fmt.Sprintf("(while %s %s)", sexprExpr(s.condition), sexprStmt(s.body))

	case *forStmt:
		return fmt.Sprintf(
			"(for %s %s %s %s)",
			sexprOptionalStmt(s.initializer),
			sexprOptionalExpr(s.condition),
			sexprOptionalExpr(s.increment),
			sexprStmt(s.body),
		)

	case *fnStmt:
		return fmt.Sprintf("(fun %s %s%s)", s.name.lexeme, sexprParams(s.params), sexprStmts(s.body))

	case *returnStmt:
		if s.value == nil {
			return "(return)"
		}
		return fmt.Sprintf("(return %s)", sexprExpr(s.value))
	}
	return fmt.Sprintf("(? %T)", st)
}

func sexprStmts(stmts []stmt) string {
	out := ""
	for _, s := range stmts {
		out += " " + sexprStmt(s)
	}
	return out
}

func sexprOptionalStmt(st stmt) string {
	if st == nil {
		return "_"
	}
	return sexprStmt(st)
}

func sexprOptionalExpr(ex expr) string {
	if ex == nil {
		return "_"
	}
	return sexprExpr(ex)
}

func sexprParams(params []*token) string {
	names := make([]string, len(params))
	for i, param := range params {
		names[i] = param.lexeme
	}
	return "(" + strings.Join(names, " ") + ")"
}

func sexprExpr(ex expr) string {
	switch x := ex.(type) {
	case *literalExpr:
		if str, isString := x.value.(string); isString {
			return "\"" + str + "\""
		}
		return stringify(x.value)

	case *variableExpr:
		return x.name.lexeme

	case *assignExpr:
		return fmt.Sprintf("(set %s %s)", x.name.lexeme, sexprExpr(x.value))

	case *binaryExpr:
		return fmt.Sprintf("(%s %s %s)", x.operator.lexeme, sexprExpr(x.left), sexprExpr(x.right))

	case *unaryExpr:
		return fmt.Sprintf("(%s %s)", x.operator.lexeme, sexprExpr(x.right))

	case *groupingExpr:
		return fmt.Sprintf("(group %s)", sexprExpr(x.expression))

	case *logicalExpr:
		return fmt.Sprintf("(%s %s %s)", x.operator.lexeme, sexprExpr(x.left), sexprExpr(x.right))

	case *conditionalExpr:
		return fmt.Sprintf(
			"(?: %s %s %s)",
			sexprExpr(x.condition),
			sexprExpr(x.thenBranch),
			sexprExpr(x.elseBranch),
		)

	case *callExpr:
		out := "(call " + sexprExpr(x.callee)
		for _, argument := range x.arguments {
			out += " " + sexprExpr(argument)
		}
		return out + ")"

	case *lambdaExpr:
		return fmt.Sprintf("(lambda %s %s)", sexprParams(x.params), sexprExpr(x.body))
	}
	return fmt.Sprintf("(? %T)", ex)
}
