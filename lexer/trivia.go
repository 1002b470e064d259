package lexer

import (
	"moonwalk/diag"
	"moonwalk/token"
)

// scanWhitespace claims a run of blanks: either a lone newline, or spaces,
// tabs, and carriage returns up to and including one newline. Chunking by
// line keeps whitespace tokens short without ever dropping a byte.
func (lx *Lexer) scanWhitespace() token.Token {
	start := lx.cursor.Mark()
	if lx.cursor.Peek() == '\n' {
		lx.cursor.Bump()
		return lx.emit(token.Whitespace, token.SymNone, start)
	}
	for {
		b := lx.cursor.Peek()
		if b != ' ' && b != '\t' && b != '\r' {
			break
		}
		lx.cursor.Bump()
	}
	lx.cursor.Eat('\n')
	return lx.emit(token.Whitespace, token.SymNone, start)
}

// scanComment is called at a `--`. A long-bracket opener after it makes a
// multi-line comment; anything else runs to the end of the line, leaving
// the newline for the whitespace scanner.
func (lx *Lexer) scanComment() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	lx.cursor.Bump()

	if level, ok := lx.longBracketLevel(); ok {
		if !lx.scanLongBracketBody(level) {
			sp := lx.cursor.SpanFrom(start)
			lx.report(diag.LexUnterminatedComment, sp, "unterminated multi-line comment")
			return lx.emit(token.Invalid, token.SymNone, start)
		}
		return lx.emit(token.MultiLineComment, token.SymNone, start)
	}

	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	return lx.emit(token.SingleLineComment, token.SymNone, start)
}
