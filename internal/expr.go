package internal

type expr interface {
	exprNode()
}

type literalExpr struct {
	value interface{}
}

func (*literalExpr) exprNode() {}

type variableExpr struct {
	name *token
}

func (*variableExpr) exprNode() {}

type assignExpr struct {
	name  *token
	value expr
}

func (*assignExpr) exprNode() {}

type binaryExpr struct {
	left     expr
	operator *token
	right    expr
}

func (*binaryExpr) exprNode() {}

type unaryExpr struct {
	operator *token
	right    expr
}

func (*unaryExpr) exprNode() {}

type groupingExpr struct {
	expression expr
}

func (*groupingExpr) exprNode() {}

type logicalExpr struct {
	left     expr
	operator *token
	right    expr
}

func (*logicalExpr) exprNode() {}

type conditionalExpr struct {
	condition  expr
	thenBranch expr
	elseBranch expr
}

func (*conditionalExpr) exprNode() {}

type callExpr struct {
	callee    expr
	paren     *token
	arguments []expr
}

func (*callExpr) exprNode() {}

type lambdaExpr struct {
	keyword *token
	params  []*token
	body    expr
}

func (*lambdaExpr) exprNode() {}
