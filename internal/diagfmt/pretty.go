package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"moonwalk/diag"
	"moonwalk/source"
)

// Pretty renders diagnostics in a human-readable form. Each diagnostic
// prints as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	    3 | local x = 1
//	      | ^~~~~
//
// followed by its notes in the header format. Diagnostics are expected in
// source order; sort the bag before calling.
func Pretty(w io.Writer, diags []diag.Diagnostic, lm *source.LineMap, path string, opts PrettyOpts) {
	for i := range diags {
		prettyOne(w, &diags[i], lm, path, opts)
	}
}

func prettyOne(w io.Writer, d *diag.Diagnostic, lm *source.LineMap, path string, opts PrettyOpts) {
	start, _ := lm.ResolveSpan(d.Primary)
	fmt.Fprintf(w, "%s:%s: %s %s: %s\n",
		path, start, severityLabel(d.Severity, opts.Color), d.Code.ID(), d.Message)

	writeExcerpt(w, lm, d.Primary, opts)

	if !opts.ShowNotes {
		return
	}
	noteLabel := "note"
	if opts.Color {
		noteLabel = color.New(color.FgCyan).Sprint(noteLabel)
	}
	for _, n := range d.Notes {
		pos := lm.Resolve(n.Span.Start)
		fmt.Fprintf(w, "%s:%s: %s: %s\n", path, pos, noteLabel, n.Msg)
	}
}

// writeExcerpt prints the primary line with a gutter and a caret line
// under the span, plus opts.Context lines of leading context. Underline
// width follows display width, so wide runes stay aligned.
func writeExcerpt(w io.Writer, lm *source.LineMap, sp source.Span, opts PrettyOpts) {
	start, end := lm.ResolveSpan(sp)

	first := start.Line
	if opts.Context > 0 {
		if ctx, err := safecast.Conv[uint32](opts.Context); err == nil && ctx < first {
			first -= ctx
		} else {
			first = 1
		}
	}
	for line := first; line < start.Line; line++ {
		fmt.Fprintf(w, "%5d | %s\n", line, lm.Line(line))
	}

	text := lm.Line(start.Line)
	fmt.Fprintf(w, "%5d | %s\n", start.Line, text)

	col := int(start.Col) - 1
	if col > len(text) {
		col = len(text)
	}
	pad := runewidth.StringWidth(text[:col])

	spanned := text[col:]
	if start.Line == end.Line {
		if rel := int(end.Col) - 1 - col; rel >= 0 && rel <= len(spanned) {
			spanned = spanned[:rel]
		}
	}
	width := runewidth.StringWidth(spanned)
	if width < 1 {
		width = 1
	}
	fmt.Fprintf(w, "      | %s^%s\n", strings.Repeat(" ", pad), strings.Repeat("~", width-1))
}

func severityLabel(sev diag.Severity, colored bool) string {
	label := sev.String()
	if !colored {
		return label
	}
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold).Sprint(label)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold).Sprint(label)
	default:
		return color.New(color.FgCyan).Sprint(label)
	}
}

