package internal

// bailout unwinds the parser to the enclosing declaration after an error
type bailout struct{}

// parser stores parser data
type parser struct {
	current int

	// functions counts the function and lambda bodies being parsed
	functions int

	state *interpreterState
}

const maxFunctionParams = 255

func newParser(state *interpreterState) *parser {
	return &parser{state: state}
}

func (p *parser) enterFunction() {
	p.functions++
}

func (p *parser) leaveFunction() {
	p.functions--
}

func (p *parser) parse() {
	for !p.isAtEnd() {
		if st := p.parseStmt(); st != nil {
			p.state.stmts = append(p.state.stmts, st)
		}
	}
}

func (p *parser) parseStmt() (st stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			p.synchronize()
			st = nil
		}
	}()
	return p.declaration()
}

func (p *parser) declaration() stmt {
	if p.check(tkFun) && p.checkNext(tkIdentifier) {
		p.advance()
		return p.fn()
	}
	if p.match(tkVar) {
		return p.varDecl()
	}
	return p.statement()
}

func (p *parser) fn() *fnStmt {
	name := p.consume(tkIdentifier, errExpectedFunctionName)

	p.enterFunction()
	defer p.leaveFunction()

	params := p.params()

	p.consume(tkLeftCurlyBrace, errExpectedOpeningCurlyBrace)
	body := p.block()

	return &fnStmt{
		name:   name,
		params: params,
		body:   body,
	}
}

func (p *parser) lambda() expr {
	keyword := p.previous()

	p.enterFunction()
	defer p.leaveFunction()

	params := p.params()
	body := p.assignment()

	return &lambdaExpr{
		keyword: keyword,
		params:  params,
		body:    body,
	}
}

func (p *parser) params() []*token {
	p.consume(tkLeftParen, errExpectedOpeningParen)
	var params []*token
	if !p.check(tkRightParen) {
		for {
			if len(params) >= maxFunctionParams {
				p.fail(errMaxParameters, p.peek().line)
			}
			params = append(params, p.consume(tkIdentifier, errExpectedFunctionParam))
			if !p.match(tkComma) {
				break
			}
		}
	}
	p.consume(tkRightParen, errUnclosedParen)
	return params
}

func (p *parser) varDecl() stmt {
	name := p.consume(tkIdentifier, errExpectedIdentifier)

	var init expr
	if p.match(tkEqual) {
		init = p.expression()
	}
	p.consume(tkSemicolon, errExpectedSemicolon)

	return &varStmt{
		name:        name,
		initializer: init,
	}
}

func (p *parser) statement() stmt {
	if p.match(tkFor) {
		return p.forLoop()
	}
	if p.match(tkIf) {
		return p.ifStmt()
	}
	if p.match(tkPrint) {
		return p.printStmt()
	}
	if p.match(tkReturn) {
		return p.ret()
	}
	if p.match(tkWhile) {
		return p.while()
	}
	if p.match(tkLeftCurlyBrace) {
		return &blockStmt{stmts: p.block()}
	}
	return p.expressionStmt()
}

func (p *parser) forLoop() stmt {
	keyword := p.previous()

	p.consume(tkLeftParen, errExpectedOpeningParen)

	var init stmt
	if p.match(tkSemicolon) {
		init = nil
	} else if p.match(tkVar) {
		init = p.varDecl()
	} else {
		init = p.expressionStmt()
	}

	var cond expr
	if !p.check(tkSemicolon) {
		cond = p.expression()
	}
	p.consume(tkSemicolon, errExpectedSemicolon)

	var inc expr
	if !p.check(tkRightParen) {
		inc = p.expression()
	}
	p.consume(tkRightParen, errUnclosedParen)

	body := p.statement()

	return &forStmt{
		keyword:     keyword,
		initializer: init,
		condition:   cond,
		increment:   inc,
		body:        body,
	}
}

func (p *parser) ifStmt() stmt {
	st := &ifStmt{
		keyword: p.previous(),
	}

	p.consume(tkLeftParen, errExpectedOpeningParen)
	st.condition = p.expression()
	p.consume(tkRightParen, errUnclosedParen)

	st.thenBranch = p.statement()
	if p.match(tkElse) {
		st.elseBranch = p.statement()
	}

	return st
}

func (p *parser) printStmt() stmt {
	keyword := p.previous()
	value := p.expression()
	p.consume(tkSemicolon, errExpectedSemicolon)
	return &printStmt{
		keyword:    keyword,
		expression: value,
	}
}

func (p *parser) ret() stmt {
	keyword := p.previous()
	if p.functions == 0 {
		p.state.setError(errReturnTopLevel, keyword.line, 0)
	}
	var value expr
	if !p.check(tkSemicolon) {
		value = p.expression()
	}
	p.consume(tkSemicolon, errExpectedSemicolon)
	return &returnStmt{
		keyword: keyword,
		value:   value,
	}
}

func (p *parser) while() stmt {
	keyword := p.previous()

	p.consume(tkLeftParen, errExpectedOpeningParen)
	cond := p.expression()
	p.consume(tkRightParen, errUnclosedParen)

	body := p.statement()
	return &whileStmt{
		keyword:   keyword,
		condition: cond,
		body:      body,
	}
}

func (p *parser) block() []stmt {
	stmts := make([]stmt, 0)
	for !p.check(tkRightCurlyBrace) && !p.isAtEnd() {
		stmts = append(stmts, p.declaration())
	}
	p.consume(tkRightCurlyBrace, errExpectedClosingCurlyBrace)
	return stmts
}

func (p *parser) expressionStmt() stmt {
	value := p.expression()
	p.consume(tkSemicolon, errExpectedSemicolon)
	return &exprStmt{expression: value}
}

func (p *parser) expression() expr {
	return p.comma()
}

func (p *parser) comma() expr {
	expr := p.assignment()
	for p.match(tkComma) {
		operator := p.previous()
		right := p.assignment()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) assignment() expr {
	expr := p.conditional()
	if p.match(tkEqual) {
		equal := p.previous()
		value := p.assignment()

		if variable, isVar := expr.(*variableExpr); isVar {
			return &assignExpr{
				name:  variable.name,
				value: value,
			}
		}

		p.state.setError(errInvalidAssignTarget, equal.line, 0)
	}
	return expr
}

func (p *parser) conditional() expr {
	expr := p.or()
	if p.match(tkQuestion) {
		thenBranch := p.expression()
		p.consume(tkColon, errExpectedColon)
		elseBranch := p.conditional()
		expr = &conditionalExpr{
			condition:  expr,
			thenBranch: thenBranch,
			elseBranch: elseBranch,
		}
	}
	return expr
}

func (p *parser) or() expr {
	expr := p.and()
	for p.match(tkOr) {
		operator := p.previous()
		right := p.and()
		expr = &logicalExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) and() expr {
	expr := p.equality()
	for p.match(tkAnd) {
		operator := p.previous()
		right := p.equality()
		expr = &logicalExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) equality() expr {
	expr := p.comparison()
	for p.match(tkEqualEqual, tkBangEqual) {
		operator := p.previous()
		right := p.comparison()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) comparison() expr {
	expr := p.addition()
	for p.match(tkGreater, tkGreaterEqual, tkLess, tkLessEqual) {
		operator := p.previous()
		right := p.addition()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) addition() expr {
	expr := p.multiplication()
	for p.match(tkPlus, tkMinus) {
		operator := p.previous()
		right := p.multiplication()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) multiplication() expr {
	expr := p.unary()
	for p.match(tkSlash, tkStar) {
		operator := p.previous()
		right := p.unary()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) unary() expr {
	if p.match(tkBang, tkMinus) {
		operator := p.previous()
		right := p.unary()
		return &unaryExpr{
			operator: operator,
			right:    right,
		}
	}
	return p.call()
}

func (p *parser) call() expr {
	expr := p.primary()
	for p.match(tkLeftParen) {
		expr = p.finishCall(expr)
	}
	return expr
}

func (p *parser) finishCall(callee expr) expr {
	arguments := make([]expr, 0)
	if !p.check(tkRightParen) {
		for {
			if len(arguments) >= maxFunctionParams {
				p.fail(errMaxArguments, p.peek().line)
			}
			arguments = append(arguments, p.assignment())
			if !p.match(tkComma) {
				break
			}
		}
	}
	paren := p.consume(tkRightParen, errUnclosedParen)
	return &callExpr{
		callee:    callee,
		paren:     paren,
		arguments: arguments,
	}
}

func (p *parser) primary() expr {
	if p.match(tkNumber, tkString) {
		return &literalExpr{value: p.previous().literal}
	}
	if p.match(tkFalse) {
		return &literalExpr{value: false}
	}
	if p.match(tkTrue) {
		return &literalExpr{value: true}
	}
	if p.match(tkNil) {
		return &literalExpr{value: nil}
	}
	if p.match(tkIdentifier) {
		return &variableExpr{name: p.previous()}
	}
	if p.match(tkLeftParen) {
		expr := p.expression()
		p.consume(tkRightParen, errUnclosedParen)
		return &groupingExpr{expression: expr}
	}
	if p.match(tkFun) {
		return p.lambda()
	}

	p.fail(errExpectedExpr, p.peek().line)
	return nil
}

func (p *parser) fail(err error, line int) {
	p.state.setError(err, line, p.current)
	panic(bailout{})
}

func (p *parser) consume(tk tokenType, err error) *token {
	if p.check(tk) {
		return p.advance()
	}
	p.fail(err, p.peek().line)
	return nil
}

func (p *parser) advance() *token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) match(tokens ...tokenType) bool {
	for _, token := range tokens {
		if p.check(token) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) check(tk tokenType) bool {
	return p.peek().token == tk
}

func (p *parser) checkNext(tk tokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.state.tokens[p.current+1].token == tk
}

func (p *parser) peek() *token {
	return &p.state.tokens[p.current]
}

func (p *parser) previous() *token {
	return &p.state.tokens[p.current-1]
}

func (p *parser) isAtEnd() bool {
	return p.peek().token == tkEOF
}

func (p *parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().token == tkSemicolon {
			return
		}
		switch p.peek().token {
		case tkFun, tkVar, tkFor, tkIf, tkWhile, tkPrint, tkReturn:
			return
		}
		p.advance()
	}
}
