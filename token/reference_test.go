package token_test

import (
	"testing"

	"moonwalk/source"
	"moonwalk/token"
)

func TestReference_BorrowedResolvesThroughArena(t *testing.T) {
	arena := token.NewArena(testTokens())
	ref := token.NewReference(arena, 2)

	if ref.IsDetached() {
		t.Fatal("fresh arena reference must be borrowed")
	}
	if got := ref.Token().Text; got != "x" {
		t.Fatalf("Token().Text = %q, want %q", got, "x")
	}
	if got := ref.String(); got != "x" {
		t.Fatalf("String() = %q, want %q", got, "x")
	}
	idx, ok := ref.ArenaIndex()
	if !ok || idx != 2 {
		t.Fatalf("ArenaIndex() = (%d, %v), want (2, true)", idx, ok)
	}
}

func TestReference_OutOfBoundsPanics(t *testing.T) {
	arena := token.NewArena(testTokens())

	for _, idx := range []int{-1, arena.Len(), 100} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("NewReference(arena, %d) should panic", idx)
				}
			}()
			token.NewReference(arena, idx)
		}()
	}
}

func TestReference_DetachCapturesContentAndProvenance(t *testing.T) {
	arena := token.NewArena(testTokens())
	ref := token.NewReference(arena, 0)

	detached := ref.Detach()
	if !detached.IsDetached() {
		t.Fatal("Detach() must produce a detached reference")
	}
	if !detached.Equal(ref) {
		t.Fatal("detached content must equal the borrowed content")
	}
	idx, ok := detached.ArenaIndex()
	if !ok || idx != 0 {
		t.Fatalf("detached ArenaIndex() = (%d, %v), want (0, true)", idx, ok)
	}
}

func TestReference_SetTokenDetachesWithoutTouchingArena(t *testing.T) {
	arena := token.NewArena(testTokens())
	ref := token.NewReference(arena, 2)

	ref.SetToken(token.Token{Kind: token.Identifier, Text: "renamed"})

	if !ref.IsDetached() {
		t.Fatal("SetToken must detach the reference")
	}
	if got := ref.Token().Text; got != "renamed" {
		t.Fatalf("Token().Text = %q, want %q", got, "renamed")
	}
	if idx, ok := ref.ArenaIndex(); !ok || idx != 2 {
		t.Fatalf("provenance lost: ArenaIndex() = (%d, %v), want (2, true)", idx, ok)
	}
	if got := arena.At(2).Text; got != "x" {
		t.Fatalf("arena slot rewritten to %q, must stay %q", got, "x")
	}
	// A fresh reference to the same slot still sees the original.
	if got := token.NewReference(arena, 2).Token().Text; got != "x" {
		t.Fatalf("fresh reference sees %q, want %q", got, "x")
	}
}

func TestReference_SynthesizedHasNoProvenance(t *testing.T) {
	ref := token.NewDetachedReference(token.Token{Kind: token.Identifier, Text: "y"})

	if !ref.IsDetached() {
		t.Fatal("synthesized reference must be detached")
	}
	if _, ok := ref.ArenaIndex(); ok {
		t.Fatal("synthesized reference must not report an arena index")
	}
	if got := ref.Token().Text; got != "y" {
		t.Fatalf("Token().Text = %q, want %q", got, "y")
	}
}

func TestReference_EqualityIsContentOnly(t *testing.T) {
	arena := token.NewArena(testTokens())
	borrowed := token.NewReference(arena, 2)
	synthesized := token.NewDetachedReference(token.Token{
		Kind: token.Identifier,
		Span: source.Span{Start: 99, End: 100}, // position must not matter
		Text: "x",
	})

	if !borrowed.Equal(synthesized) {
		t.Fatal("borrowed and synthesized references with equal content must compare equal")
	}

	other := token.NewDetachedReference(token.Token{Kind: token.Identifier, Text: "z"})
	if borrowed.Equal(other) {
		t.Fatal("different texts must not compare equal")
	}
}

func TestReference_CloneIsIndependent(t *testing.T) {
	ref := token.NewDetachedReference(token.Token{Kind: token.Identifier, Text: "a"})
	clone := ref.Clone()

	ref.SetToken(token.Token{Kind: token.Identifier, Text: "b"})

	if got := clone.Token().Text; got != "a" {
		t.Fatalf("clone sees %q after original rewrite, want %q", got, "a")
	}
}
