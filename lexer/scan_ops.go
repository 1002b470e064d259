package lexer

import (
	"fmt"

	"moonwalk/diag"
	"moonwalk/token"
)

// scanSymbol scans operators and punctuation greedily: three-byte forms
// first, then two-byte, then single bytes. A byte no rule claims becomes
// an Invalid token so the input is still covered end to end.
func (lx *Lexer) scanSymbol() token.Token {
	start := lx.cursor.Mark()
	emit := func(sym token.Sym) token.Token {
		return lx.emit(token.Symbol, sym, start)
	}

	switch {
	case lx.try3('.', '.', '.'):
		return emit(token.DotDotDot)
	case lx.try2('.', '.'):
		return emit(token.DotDot)
	case lx.try2('=', '='):
		return emit(token.EqEq)
	case lx.try2('~', '='):
		return emit(token.TildeEq)
	case lx.try2('<', '='):
		return emit(token.LtEq)
	case lx.try2('>', '='):
		return emit(token.GtEq)
	}

	ch := lx.cursor.Bump()
	switch ch {
	case '+':
		return emit(token.Plus)
	case '-':
		return emit(token.Minus)
	case '*':
		return emit(token.Star)
	case '/':
		return emit(token.Slash)
	case '%':
		return emit(token.Percent)
	case '^':
		return emit(token.Caret)
	case '#':
		return emit(token.Hash)
	case '=':
		return emit(token.Assign)
	case '<':
		return emit(token.Lt)
	case '>':
		return emit(token.Gt)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '{':
		return emit(token.LBrace)
	case '}':
		return emit(token.RBrace)
	case '[':
		return emit(token.LBracket)
	case ']':
		return emit(token.RBracket)
	case ';':
		return emit(token.Semicolon)
	case ':':
		return emit(token.Colon)
	case ',':
		return emit(token.Comma)
	case '.':
		return emit(token.Dot)
	}

	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.LexUnexpectedCharacter, sp, fmt.Sprintf("unexpected character %q", ch))
	return lx.emit(token.Invalid, token.SymNone, start)
}
