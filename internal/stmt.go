package internal

type stmt interface {
	stmtNode()
}

type exprStmt struct {
	expression expr
}

func (*exprStmt) stmtNode() {}

type printStmt struct {
	keyword    *token
	expression expr
}

func (*printStmt) stmtNode() {}

type varStmt struct {
	name        *token
	initializer expr
}

func (*varStmt) stmtNode() {}

type blockStmt struct {
	stmts []stmt
}

func (*blockStmt) stmtNode() {}

type ifStmt struct {
	keyword    *token
	condition  expr
	thenBranch stmt
	elseBranch stmt
}

func (*ifStmt) stmtNode() {}

type whileStmt struct {
	keyword   *token
	condition expr
	body      stmt
}

func (*whileStmt) stmtNode() {}

type forStmt struct {
	keyword     *token
	initializer stmt
	condition   expr
	increment   expr
	body        stmt
}

func (*forStmt) stmtNode() {}

type fnStmt struct {
	name   *token
	params []*token
	body   []stmt
}

func (*fnStmt) stmtNode() {}

type returnStmt struct {
	keyword *token
	value   expr
}

func (*returnStmt) stmtNode() {}
