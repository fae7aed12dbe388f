package internal

import "fmt"

// desugar rewrites every for loop into blocks and while loops. It never
// fails and leaves the input untouched.
//
//	for (init; cond; incr) body  =>  { init; while (cond) { body; incr; } }
func desugar(stmts []stmt) []stmt {
	if stmts == nil {
		return nil
	}
	out := make([]stmt, len(stmts))
	for i, s := range stmts {
		out[i] = desugarStmt(s)
	}
	return out
}

func desugarStmt(st stmt) stmt {
	switch s := st.(type) {
	case nil:
		return nil

	case *exprStmt:
		return &exprStmt{expression: desugarExpr(s.expression)}

	case *printStmt:
		return &printStmt{keyword: s.keyword, expression: desugarExpr(s.expression)}

	case *varStmt:
		return &varStmt{name: s.name, initializer: desugarExpr(s.initializer)}

	case *blockStmt:
		return &blockStmt{stmts: desugar(s.stmts)}

	case *ifStmt:
		return &ifStmt{
			keyword:    s.keyword,
			condition:  desugarExpr(s.condition),
			thenBranch: desugarStmt(s.thenBranch),
			elseBranch: desugarStmt(s.elseBranch),
		}

	case *whileStmt:
		return &whileStmt{
			keyword:   s.keyword,
			condition: desugarExpr(s.condition),
			body:      desugarStmt(s.body),
		}

	case *forStmt:
		return desugarFor(s)

	case *fnStmt:
		return &fnStmt{name: s.name, params: s.params, body: desugar(s.body)}

	case *returnStmt:
		return &returnStmt{keyword: s.keyword, value: desugarExpr(s.value)}
	}
	panic(fmt.Sprintf("unexpected statement %T", st))
}

func desugarFor(s *forStmt) stmt {
	body := []stmt{desugarStmt(s.body)}
	if s.increment != nil {
		body = append(body, &exprStmt{expression: desugarExpr(s.increment)})
	}

	var condition expr = &literalExpr{value: true}
	if s.condition != nil {
		condition = desugarExpr(s.condition)
	}

	loop := &whileStmt{
		keyword:   s.keyword,
		condition: condition,
		body:      &blockStmt{stmts: body},
	}

	outer := make([]stmt, 0, 2)
	if s.initializer != nil {
		outer = append(outer, desugarStmt(s.initializer))
	}
	outer = append(outer, loop)

	return &blockStmt{stmts: outer}
}

func desugarExpr(ex expr) expr {
	switch x := ex.(type) {
	case nil:
		return nil

	case *literalExpr, *variableExpr:
		return x

	case *assignExpr:
		return &assignExpr{name: x.name, value: desugarExpr(x.value)}

	case *binaryExpr:
		return &binaryExpr{
			left:     desugarExpr(x.left),
			operator: x.operator,
			right:    desugarExpr(x.right),
		}

	case *unaryExpr:
		return &unaryExpr{operator: x.operator, right: desugarExpr(x.right)}

	case *groupingExpr:
		return &groupingExpr{expression: desugarExpr(x.expression)}

	case *logicalExpr:
		return &logicalExpr{
			left:     desugarExpr(x.left),
			operator: x.operator,
			right:    desugarExpr(x.right),
		}

	case *conditionalExpr:
		return &conditionalExpr{
			condition:  desugarExpr(x.condition),
			thenBranch: desugarExpr(x.thenBranch),
			elseBranch: desugarExpr(x.elseBranch),
		}

	case *callExpr:
		arguments := make([]expr, len(x.arguments))
		for i, argument := range x.arguments {
			arguments[i] = desugarExpr(argument)
		}
		return &callExpr{
			callee:    desugarExpr(x.callee),
			paren:     x.paren,
			arguments: arguments,
		}

	case *lambdaExpr:
		return &lambdaExpr{keyword: x.keyword, params: x.params, body: desugarExpr(x.body)}
	}
	panic(fmt.Sprintf("unexpected expression %T", ex))
}
