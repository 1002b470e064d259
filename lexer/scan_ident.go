package lexer

import (
	"moonwalk/token"
)

// scanIdentOrKeyword scans a name and checks it against the keyword table.
// Keywords are case-sensitive. Token.Text is the exact source slice.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.src[sp.Start:sp.End])

	if sym, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: token.Symbol, Sym: sym, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Identifier, Span: sp, Text: text}
}
