package internal

type tokenType int

const (
	tkEOF tokenType = iota - 1

	// Single-character tokens.
	// (, ), {, }, ',', ., -, +, ;, /, *, ?, :
	tkLeftParen
	tkRightParen
	tkLeftCurlyBrace
	tkRightCurlyBrace
	tkComma
	tkDot
	tkMinus
	tkPlus
	tkSemicolon
	tkSlash
	tkStar
	tkQuestion
	tkColon

	// One or two character tokens.
	// !, !=, =, ==, >, >=, <, <=
	tkBang
	tkBangEqual
	tkEqual
	tkEqualEqual
	tkGreater
	tkGreaterEqual
	tkLess
	tkLessEqual

	// Literals.
	// *variable*, string, number
	tkIdentifier
	tkString
	tkNumber

	// Keywords.
	// and, else, false, fun, for, if, nil, or,
	// print, return, true, var, while
	tkAnd
	tkElse
	tkFalse
	tkFun
	tkFor
	tkIf
	tkNil
	tkOr
	tkPrint
	tkReturn
	tkTrue
	tkVar
	tkWhile
)

var keywords = map[string]tokenType{
	"and":    tkAnd,
	"else":   tkElse,
	"false":  tkFalse,
	"fun":    tkFun,
	"for":    tkFor,
	"if":     tkIf,
	"nil":    tkNil,
	"or":     tkOr,
	"print":  tkPrint,
	"return": tkReturn,
	"true":   tkTrue,
	"var":    tkVar,
	"while":  tkWhile,
}

type token struct {
	token   tokenType
	lexeme  string
	literal interface{}
	line    int
}
