package lexer

import (
	"moonwalk/token"
)

// scanNumber munches the longest prefix that forms a Lua 5.1 number and
// never fails: bytes the number pattern does not claim are left for the
// next token. `1..2` therefore splits into a number, an operator, and a
// number, and `0x` with no hex digit scans as the number 0 followed by an
// identifier.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if b0, b1, b2, ok := lx.cursor.Peek3(); ok && b0 == '0' && (b1 == 'x' || b1 == 'X') && isHex(b2) {
		lx.cursor.Bump()
		lx.cursor.Bump()
		for isHex(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return lx.emit(token.Number, token.SymNone, start)
	}

	// integer part; empty for the .5 form
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// fraction: the dot only counts with a digit after it
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	lx.tryExponent()
	return lx.emit(token.Number, token.SymNone, start)
}

// tryExponent consumes e/E, an optional sign, and digits. Without at least
// one digit the whole exponent is rolled back so the e scans as an
// identifier start.
func (lx *Lexer) tryExponent() {
	mark := lx.cursor.Mark()
	b := lx.cursor.Peek()
	if b != 'e' && b != 'E' {
		return
	}
	lx.cursor.Bump()
	if b := lx.cursor.Peek(); b == '+' || b == '-' {
		lx.cursor.Bump()
	}
	if !isDec(lx.cursor.Peek()) {
		lx.cursor.Reset(mark)
		return
	}
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}
