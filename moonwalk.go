// Package moonwalk parses Lua 5.1 source into a lossless syntax tree.
//
// The tree keeps every byte of the input, trivia included, so an unchanged
// tree renders back to the exact source it was parsed from. Tokens live in
// an immutable arena shared by every clone of the tree; node fields hold
// references into it. Rewrites detach a reference from its slot without
// touching the arena, and Print folds those rewrites back into the output.
//
// # Quick Start
//
//	// Parse a chunk and walk it.
//	tree, err := moonwalk.Parse("local x = 1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ast.Visit(tree, myVisitor)
//
//	// Rewrite in place and render.
//	ast.VisitMut(tree, myRenamer)
//	fmt.Println(moonwalk.Print(tree))
//
// Parse returns the best tree it could build even when the source has
// errors, alongside an *Error carrying the diagnostics. Callers that only
// care about success can test with errors.Is(err, moonwalk.ErrParse).
//
// Traversal, tree surgery, and clone semantics are documented in the ast
// package; token and arena plumbing in the token package.
package moonwalk

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"moonwalk/ast"
	"moonwalk/diag"
	"moonwalk/lexer"
	"moonwalk/parser"
	"moonwalk/token"
)

// ErrParse is the sentinel wrapped by every error this package returns for
// malformed source.
var ErrParse = errors.New("source has syntax errors")

// Error carries the diagnostics collected while processing one chunk. It
// wraps ErrParse.
type Error struct {
	Diagnostics []diag.Diagnostic
}

func (e *Error) Error() string {
	if len(e.Diagnostics) == 0 {
		return "moonwalk: " + ErrParse.Error()
	}
	first := e.Diagnostics[0]
	msg := fmt.Sprintf("moonwalk: [%s] %s", first.Code.ID(), first.Message)
	if rest := len(e.Diagnostics) - 1; rest > 0 {
		msg += fmt.Sprintf(" (and %d more)", rest)
	}
	return msg
}

func (e *Error) Unwrap() error { return ErrParse }

// diagnosticLimit bounds how many diagnostics one chunk may accumulate
// before further reports are dropped.
const diagnosticLimit = 64

// Tokenize scans src into its complete token sequence, trivia included.
// Malformed input still produces tokens (carrying the raw text as Invalid)
// so the result always covers the whole source; the error reports what was
// wrong with it.
func Tokenize(src string) ([]token.Token, error) {
	bag := diag.NewBag(diagnosticLimit)
	toks := lexer.Tokenize([]byte(src), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return toks, bagError(bag)
}

// Parse scans and parses src into a syntax tree.
//
// The tree is never nil. On malformed input the parser drops the statements
// it could not understand and keeps the rest, and the returned *Error lists
// every diagnostic in source order. The tree is still safe to traverse,
// clone, and Print; it renders the tokens that were lexed, not a repaired
// program.
func Parse(src string) (*ast.Ast, error) {
	bag := diag.NewBag(diagnosticLimit)
	reporter := diag.BagReporter{Bag: bag}
	toks := lexer.Tokenize([]byte(src), lexer.Options{Reporter: reporter})
	arena := token.NewArena(toks)
	tree := parser.Parse(arena, parser.Options{Reporter: reporter})
	return tree, bagError(bag)
}

func bagError(bag *diag.Bag) error {
	if !bag.HasErrors() {
		return nil
	}
	bag.Sort()
	return &Error{Diagnostics: slices.Clone(bag.Items())}
}

// Print renders the tree back to source text.
//
// The arena fixes the token order; rewritten references override the text
// of the slot they came from. An unchanged tree therefore prints the exact
// bytes it was parsed from. References synthesized without an arena slot
// have no position in the stream and are skipped.
func Print(tree *ast.Ast) string {
	c := &printCollector{overlay: make(map[int]string)}
	ast.Visit(tree, c)

	arena := tree.Tokens()
	var sb strings.Builder
	if n := arena.Len(); n > 0 {
		sb.Grow(int(arena.At(n - 1).Span.End))
	}
	for i, tok := range arena.All() {
		if text, ok := c.overlay[i]; ok {
			sb.WriteString(text)
			continue
		}
		sb.WriteString(tok.Text)
	}
	return sb.String()
}

// printCollector gathers rewrites: references held in node fields that have
// detached from the arena but still know their slot. Borrowed references
// (everything the sweep hands out, and every untouched node field) resolve
// through the arena and need no overlay entry.
type printCollector struct {
	ast.NopVisitor
	overlay map[int]string
}

func (c *printCollector) VisitToken(ref *token.Reference) {
	if !ref.IsDetached() {
		return
	}
	if idx, ok := ref.ArenaIndex(); ok {
		c.overlay[idx] = ref.Token().Text
	}
}
