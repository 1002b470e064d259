package token

// Kind represents the lexical category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token produced during error recovery.
	Invalid Kind = iota
	// Eof marks the end of the source input.
	Eof
	// Identifier represents a name token.
	Identifier
	// MultiLineComment represents a long-bracket comment.
	MultiLineComment // --[[ ... ]]
	// Number represents a numeric literal token.
	Number
	// SingleLineComment represents a comment running to the end of the line.
	SingleLineComment // -- ...
	// StringLiteral represents a quoted or long-bracket string literal.
	StringLiteral
	// Symbol represents a keyword, operator, or punctuation token.
	Symbol
	// Whitespace represents a maximal run of blank characters.
	Whitespace
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case Eof:
		return "Eof"
	case Identifier:
		return "Identifier"
	case MultiLineComment:
		return "MultiLineComment"
	case Number:
		return "Number"
	case SingleLineComment:
		return "SingleLineComment"
	case StringLiteral:
		return "StringLiteral"
	case Symbol:
		return "Symbol"
	case Whitespace:
		return "Whitespace"
	default:
		return "Kind(?)"
	}
}
