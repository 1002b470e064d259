package token

// Sym identifies which keyword, operator, or punctuation mark a Symbol
// token is.
type Sym uint8

const (
	// SymNone is the zero value; non-Symbol tokens carry it.
	SymNone Sym = iota

	// KwAnd represents the 'and' keyword.
	KwAnd // and
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwDo represents the 'do' keyword.
	KwDo // do
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwElseif represents the 'elseif' keyword.
	KwElseif // elseif
	// KwEnd represents the 'end' keyword.
	KwEnd // end
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwFunction represents the 'function' keyword.
	KwFunction // function
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwLocal represents the 'local' keyword.
	KwLocal // local
	// KwNil represents the 'nil' keyword.
	KwNil // nil
	// KwNot represents the 'not' keyword.
	KwNot // not
	// KwOr represents the 'or' keyword.
	KwOr // or
	// KwRepeat represents the 'repeat' keyword.
	KwRepeat // repeat
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwThen represents the 'then' keyword.
	KwThen // then
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwUntil represents the 'until' keyword.
	KwUntil // until
	// KwWhile represents the 'while' keyword.
	KwWhile // while

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Percent represents the percent operator token.
	Percent // %
	// Caret represents the caret operator token.
	Caret // ^
	// Hash represents the length operator token.
	Hash // #
	// EqEq represents the equality operator token.
	EqEq // ==
	// TildeEq represents the inequality operator token.
	TildeEq // ~=
	// LtEq represents the less-or-equal operator token.
	LtEq // <=
	// GtEq represents the greater-or-equal operator token.
	GtEq // >=
	// Lt represents the less-than operator token.
	Lt // <
	// Gt represents the greater-than operator token.
	Gt // >
	// Assign represents the assignment token.
	Assign // =
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Colon represents the colon token.
	Colon // :
	// Comma represents the comma token.
	Comma // ,
	// Dot represents the dot token.
	Dot // .
	// DotDot represents the concatenation operator token.
	DotDot // ..
	// DotDotDot represents the vararg token.
	DotDotDot // ...
)

var keywords = map[string]Sym{
	"and":      KwAnd,
	"break":    KwBreak,
	"do":       KwDo,
	"else":     KwElse,
	"elseif":   KwElseif,
	"end":      KwEnd,
	"false":    KwFalse,
	"for":      KwFor,
	"function": KwFunction,
	"if":       KwIf,
	"in":       KwIn,
	"local":    KwLocal,
	"nil":      KwNil,
	"not":      KwNot,
	"or":       KwOr,
	"repeat":   KwRepeat,
	"return":   KwReturn,
	"then":     KwThen,
	"true":     KwTrue,
	"until":    KwUntil,
	"while":    KwWhile,
}

var symTexts = map[Sym]string{
	KwAnd: "and", KwBreak: "break", KwDo: "do", KwElse: "else",
	KwElseif: "elseif", KwEnd: "end", KwFalse: "false", KwFor: "for",
	KwFunction: "function", KwIf: "if", KwIn: "in", KwLocal: "local",
	KwNil: "nil", KwNot: "not", KwOr: "or", KwRepeat: "repeat",
	KwReturn: "return", KwThen: "then", KwTrue: "true", KwUntil: "until",
	KwWhile: "while",
	Plus:    "+", Minus: "-", Star: "*", Slash: "/", Percent: "%",
	Caret: "^", Hash: "#", EqEq: "==", TildeEq: "~=", LtEq: "<=",
	GtEq: ">=", Lt: "<", Gt: ">", Assign: "=", LParen: "(", RParen: ")",
	LBrace: "{", RBrace: "}", LBracket: "[", RBracket: "]",
	Semicolon: ";", Colon: ":", Comma: ",", Dot: ".", DotDot: "..",
	DotDotDot: "...",
}

// LookupKeyword returns the keyword symbol for an identifier spelling.
// Keywords are case-sensitive; only lowercase spellings are recognized.
func LookupKeyword(ident string) (Sym, bool) {
	s, ok := keywords[ident]
	return s, ok
}

// Text returns the source spelling of the symbol, or "" for SymNone.
func (s Sym) Text() string {
	return symTexts[s]
}

func (s Sym) String() string {
	if t, ok := symTexts[s]; ok {
		return t
	}
	return "Sym(?)"
}

// IsKeyword reports whether the symbol is a reserved word.
func (s Sym) IsKeyword() bool {
	return s >= KwAnd && s <= KwWhile
}
