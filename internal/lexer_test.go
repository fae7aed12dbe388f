package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanSource(source string) *interpreterState {
	state := newInterpreterState(source, &testPrinter{})
	newLexer(state).scan()
	return state
}

func tokenTypes(tokens []token) []tokenType {
	types := make([]tokenType, len(tokens))
	for i, tk := range tokens {
		types[i] = tk.token
	}
	return types
}

func TestLexerPunctuation(t *testing.T) {
	state := scanSource("(){},.-+;*/?:! != = == > >= < <=")
	require.True(t, state.Valid())
	assert.Equal(t, []tokenType{
		tkLeftParen, tkRightParen, tkLeftCurlyBrace, tkRightCurlyBrace,
		tkComma, tkDot, tkMinus, tkPlus, tkSemicolon, tkStar, tkSlash,
		tkQuestion, tkColon,
		tkBang, tkBangEqual, tkEqual, tkEqualEqual,
		tkGreater, tkGreaterEqual, tkLess, tkLessEqual,
		tkEOF,
	}, tokenTypes(state.tokens))
}

func TestLexerKeywordsAndIdentifiers(t *testing.T) {
	state := scanSource("and else false fun for if nil or print return true var while _name var2 While")
	require.True(t, state.Valid())
	assert.Equal(t, []tokenType{
		tkAnd, tkElse, tkFalse, tkFun, tkFor, tkIf, tkNil, tkOr,
		tkPrint, tkReturn, tkTrue, tkVar, tkWhile,
		tkIdentifier, tkIdentifier, tkIdentifier,
		tkEOF,
	}, tokenTypes(state.tokens))
	assert.Equal(t, "_name", state.tokens[13].lexeme)
	assert.Equal(t, "While", state.tokens[15].lexeme)
}

func TestLexerLiterals(t *testing.T) {
	state := scanSource(`12 3.25 "text" "" 7.`)
	require.True(t, state.Valid())
	require.Equal(t, []tokenType{tkNumber, tkNumber, tkString, tkString, tkNumber, tkDot, tkEOF}, tokenTypes(state.tokens))

	assert.Equal(t, 12.0, state.tokens[0].literal)
	assert.Equal(t, 3.25, state.tokens[1].literal)
	assert.Equal(t, "text", state.tokens[2].literal)
	assert.Equal(t, `"text"`, state.tokens[2].lexeme)
	assert.Equal(t, "", state.tokens[3].literal)
	assert.Equal(t, 7.0, state.tokens[4].literal)
}

func TestLexerLinesAndComments(t *testing.T) {
	state := scanSource("var a; // comment ( {\n\n\"multi\nline\" b\r\n\tc")
	require.True(t, state.Valid())
	require.Equal(t, []tokenType{tkVar, tkIdentifier, tkSemicolon, tkString, tkIdentifier, tkIdentifier, tkEOF}, tokenTypes(state.tokens))

	lines := make([]int, len(state.tokens))
	for i, tk := range state.tokens {
		lines[i] = tk.line
	}
	assert.Equal(t, []int{1, 1, 1, 4, 4, 5, 5}, lines)
	assert.Equal(t, "multi\nline", state.tokens[3].literal)
}

func TestLexerErrors(t *testing.T) {
	state := scanSource("var a = 1;\nvar b = @;\nvar c = #;")
	require.Len(t, state.errors, 2)
	assert.Equal(t, errIllegalChar, state.errors[0].err)
	assert.Equal(t, 2, state.errors[0].line)
	assert.Equal(t, 3, state.errors[1].line)

	// Scanning goes on after an error
	assert.Equal(t, tkEOF, state.tokens[len(state.tokens)-1].token)

	state = scanSource("print 1;\nprint \"open\n\n")
	require.Len(t, state.errors, 1)
	assert.Equal(t, errUnclosedString, state.errors[0].err)
	assert.Equal(t, 2, state.errors[0].line)
}
