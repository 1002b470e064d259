package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"moonwalk/source"
	"moonwalk/token"
)

// TokenOutput is one token record in JSON output.
type TokenOutput struct {
	Index     int    `json:"index"`
	Kind      string `json:"kind"`
	Sym       string `json:"sym,omitempty"`
	Text      string `json:"text,omitempty"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
}

// tokenTextColumn caps the rendered text column; longer token text is
// truncated with an ellipsis so spans and columns stay readable.
const tokenTextColumn = 24

// FormatTokensPretty writes one aligned row per token:
//
//	   0: Symbol            "local"          1:1-1:6
//
// The index is the arena slot. Trivia rows are skipped unless opts asks
// for them.
func FormatTokensPretty(w io.Writer, tokens []token.Token, lm *source.LineMap, opts TokenOpts) error {
	for i, tok := range tokens {
		if !opts.IncludeTrivia && tok.IsTrivia() {
			continue
		}
		start, end := lm.ResolveSpan(tok.Span)

		kind := tok.Kind.String()
		if opts.Color {
			// Styled text carries invisible escapes, so pad by display
			// width instead of %-*s.
			pad := max(18-runewidth.StringWidth(kind), 1)
			kind = kindColor(tok).Sprint(kind) + strings.Repeat(" ", pad)
		} else {
			kind = fmt.Sprintf("%-18s", kind)
		}

		if _, err := fmt.Fprintf(w, "%4d: %s", i, kind); err != nil {
			return err
		}
		if tok.Text != "" {
			quoted := fmt.Sprintf("%q", runewidth.Truncate(tok.Text, tokenTextColumn, "..."))
			if _, err := fmt.Fprintf(w, " %-*s", tokenTextColumn+2, quoted); err != nil {
				return err
			}
		} else {
			if _, err := fmt.Fprintf(w, " %-*s", tokenTextColumn+2, ""); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, " %s-%s\n", start, end); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON writes the token sequence as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token, opts TokenOpts) error {
	output := make([]TokenOutput, 0, len(tokens))
	for i, tok := range tokens {
		if !opts.IncludeTrivia && tok.IsTrivia() {
			continue
		}
		rec := TokenOutput{
			Index:     i,
			Kind:      tok.Kind.String(),
			Text:      tok.Text,
			StartByte: tok.Span.Start,
			EndByte:   tok.Span.End,
		}
		if tok.Kind == token.Symbol {
			rec.Sym = tok.Sym.String()
		}
		output = append(output, rec)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func kindColor(tok token.Token) *color.Color {
	switch tok.Kind {
	case token.Symbol:
		if tok.IsKeyword() {
			return color.New(color.FgBlue, color.Bold)
		}
		return color.New(color.FgMagenta)
	case token.Identifier:
		return color.New(color.FgGreen)
	case token.Number:
		return color.New(color.FgCyan)
	case token.StringLiteral:
		return color.New(color.FgYellow)
	case token.Invalid:
		return color.New(color.FgRed, color.Bold)
	default:
		return color.New(color.Faint)
	}
}

