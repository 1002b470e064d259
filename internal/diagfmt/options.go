package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	Context   int // extra source lines shown above the primary line
	ShowNotes bool
}

// TokenOpts configures the token table renderers.
type TokenOpts struct {
	Color         bool
	IncludeTrivia bool
}
