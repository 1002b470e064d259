package lexer

import (
	"moonwalk/diag"
	"moonwalk/source"
)

// Options configures a Lexer.
type Options struct {
	// Reporter receives lexical diagnostics. A nil Reporter drops them;
	// scanning continues either way and malformed input still becomes
	// Invalid tokens carrying the raw text.
	Reporter diag.Reporter
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
