package token

import (
	"moonwalk/source"
)

// Token represents a single lexical unit: its category, its exact source
// text, and where it came from.
type Token struct {
	Kind Kind
	Sym  Sym // set only when Kind == Symbol
	Span source.Span
	Text string
}

// IsTrivia reports whether the token has no syntactic role and exists only
// for exact source reproduction.
func (t Token) IsTrivia() bool {
	switch t.Kind {
	case Whitespace, SingleLineComment, MultiLineComment:
		return true
	default:
		return false
	}
}

// IsSymbol reports whether the token is the given symbol.
func (t Token) IsSymbol(s Sym) bool {
	return t.Kind == Symbol && t.Sym == s
}

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool {
	return t.Kind == Symbol && t.Sym.IsKeyword()
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Identifier }

// Same reports content equality: category and text, ignoring position.
func (t Token) Same(other Token) bool {
	return t.Kind == other.Kind && t.Sym == other.Sym && t.Text == other.Text
}
