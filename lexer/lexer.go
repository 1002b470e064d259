package lexer

import (
	"moonwalk/source"
	"moonwalk/token"
)

// Lexer scans Lua 5.1 source into tokens. Every byte of input lands in
// some token, whitespace and comments included, so concatenating the
// token texts reproduces the source exactly. After the input is exhausted
// Next returns Eof tokens forever.
type Lexer struct {
	src    []byte
	cursor Cursor
	opts   Options
}

func New(src []byte, opts Options) *Lexer {
	return &Lexer{
		src:    src,
		cursor: NewCursor(src),
		opts:   opts,
	}
}

// Next returns the next token, trivia included.
func (lx *Lexer) Next() token.Token {
	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.Eof,
			Span: source.Span{Start: lx.cursor.Off, End: lx.cursor.Off},
			Text: "",
		}
	}

	b := lx.cursor.Peek()
	switch {
	case b == ' ' || b == '\t' || b == '\r' || b == '\n':
		return lx.scanWhitespace()

	case b == '-':
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '-' && b1 == '-' {
			return lx.scanComment()
		}
		return lx.scanSymbol()

	case isIdentStartByte(b):
		return lx.scanIdentOrKeyword()

	case isDec(b):
		return lx.scanNumber()

	case b == '.' && lx.isNumberAfterDot():
		return lx.scanNumber()

	case b == '"' || b == '\'':
		return lx.scanShortString()

	case b == '[':
		if _, ok := lx.longBracketLevel(); ok {
			return lx.scanLongString()
		}
		return lx.scanSymbol()

	default:
		return lx.scanSymbol()
	}
}

// Tokenize scans src to the end and returns every token, ending with the
// Eof token.
func Tokenize(src []byte, opts Options) []token.Token {
	lx := New(src, opts)
	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.Eof {
			return toks
		}
	}
}

// emit builds a token for the range scanned since start.
func (lx *Lexer) emit(kind token.Kind, sym token.Sym, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: kind,
		Sym:  sym,
		Span: sp,
		Text: string(lx.src[sp.Start:sp.End]),
	}
}
