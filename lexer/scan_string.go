package lexer

import (
	"moonwalk/diag"
	"moonwalk/token"
)

// scanShortString scans a single- or double-quoted string. Escapes are
// consumed as backslash plus one byte without validating them here, which
// also covers the escaped-newline form. A raw newline or the end of input
// before the closing quote makes the token Invalid.
func (lx *Lexer) scanShortString() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == quote {
			lx.cursor.Bump()
			return lx.emit(token.StringLiteral, token.SymNone, start)
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		}
		if b == '\n' {
			sp := lx.cursor.SpanFrom(start)
			lx.report(diag.LexUnterminatedString, sp, "newline in string literal")
			return lx.emit(token.Invalid, token.SymNone, start)
		}
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.LexUnterminatedString, sp, "unterminated string literal")
	return lx.emit(token.Invalid, token.SymNone, start)
}

// scanLongString scans a [[...]] form, with any level of = padding. The
// token text keeps the brackets and the raw body.
func (lx *Lexer) scanLongString() token.Token {
	start := lx.cursor.Mark()
	level, _ := lx.longBracketLevel()
	if !lx.scanLongBracketBody(level) {
		sp := lx.cursor.SpanFrom(start)
		lx.report(diag.LexUnterminatedString, sp, "unterminated long string")
		return lx.emit(token.Invalid, token.SymNone, start)
	}
	return lx.emit(token.StringLiteral, token.SymNone, start)
}

// scanLongBracketBody consumes a long-bracket form from its opening '[':
// the opener, the body, and the closer of the same level. Long brackets do
// not nest in Lua 5.1. Returns false if the input ends first.
func (lx *Lexer) scanLongBracketBody(level int) bool {
	lx.cursor.Bump()
	for i := 0; i < level; i++ {
		lx.cursor.Bump()
	}
	lx.cursor.Bump()

	for !lx.cursor.EOF() {
		if lx.cursor.Peek() != ']' {
			lx.cursor.Bump()
			continue
		}
		close := lx.cursor.Mark()
		lx.cursor.Bump()
		eq := 0
		for lx.cursor.Peek() == '=' {
			lx.cursor.Bump()
			eq++
		}
		if eq == level && lx.cursor.Eat(']') {
			return true
		}
		// Not our closer; step past the ']' and keep looking. The
		// equals run is rescanned in case it starts the real closer.
		lx.cursor.Reset(close)
		lx.cursor.Bump()
	}
	return false
}
