package diag

import (
	"fmt"
)

// Code identifies a diagnostic kind. Codes are grouped in bands: 1000 for
// lexical findings, 2000 for syntactic ones. The numeric value is stable
// across releases; new codes append to their band.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexUnexpectedCharacter Code = 1001
	LexUnterminatedString  Code = 1002
	LexUnterminatedComment Code = 1003
	LexMalformedNumber     Code = 1004
	LexMalformedEscape     Code = 1005

	// Syntactic
	SynUnexpectedToken    Code = 2001
	SynUnexpectedEof      Code = 2002
	SynExpectedToken      Code = 2003
	SynExpectedExpression Code = 2004
	SynExpectedIdentifier Code = 2005
	SynTooManyErrors      Code = 2006
)

var codeDescription = map[Code]string{
	UnknownCode: "Unknown error",

	LexUnexpectedCharacter: "Unexpected character",
	LexUnterminatedString:  "Unterminated string literal",
	LexUnterminatedComment: "Unterminated comment",
	LexMalformedNumber:     "Malformed number literal",
	LexMalformedEscape:     "Malformed escape sequence",

	SynUnexpectedToken:    "Unexpected token",
	SynUnexpectedEof:      "Unexpected end of chunk",
	SynExpectedToken:      "Expected a different token",
	SynExpectedExpression: "Expected an expression",
	SynExpectedIdentifier: "Expected an identifier",
	SynTooManyErrors:      "Too many errors, giving up",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
