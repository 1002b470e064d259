package diag

import (
	"moonwalk/source"
)

// Note is a secondary span attached to a diagnostic, pointing at context
// like where an unclosed block was opened.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one finding from the lexer or parser.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}
