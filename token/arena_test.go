package token_test

import (
	"testing"

	"moonwalk/source"
	"moonwalk/token"
)

func testTokens() []token.Token {
	return []token.Token{
		{Kind: token.Symbol, Sym: token.KwLocal, Span: source.Span{Start: 0, End: 5}, Text: "local"},
		{Kind: token.Whitespace, Span: source.Span{Start: 5, End: 6}, Text: " "},
		{Kind: token.Identifier, Span: source.Span{Start: 6, End: 7}, Text: "x"},
		{Kind: token.Eof, Span: source.Span{Start: 7, End: 7}, Text: ""},
	}
}

func TestArena_AllVisitsEveryIndexOnceInOrder(t *testing.T) {
	arena := token.NewArena(testTokens())

	var indices []int
	var texts []string
	for i, tok := range arena.All() {
		indices = append(indices, i)
		texts = append(texts, tok.Text)
	}

	if len(indices) != arena.Len() {
		t.Fatalf("All() yielded %d entries, want %d", len(indices), arena.Len())
	}
	for want, got := range indices {
		if got != want {
			t.Fatalf("All() index %d = %d, want strictly increasing from 0", want, got)
		}
	}
	wantTexts := []string{"local", " ", "x", ""}
	for i, want := range wantTexts {
		if texts[i] != want {
			t.Fatalf("All() text[%d] = %q, want %q", i, texts[i], want)
		}
	}
}

func TestArena_AllIsRestartable(t *testing.T) {
	arena := token.NewArena(testTokens())

	count := func() int {
		n := 0
		for range arena.All() {
			n++
		}
		return n
	}

	first := count()
	second := count()
	if first != second || first != arena.Len() {
		t.Fatalf("restarted iteration yielded %d then %d, want %d both times", first, second, arena.Len())
	}
}

func TestArena_AllStopsEarly(t *testing.T) {
	arena := token.NewArena(testTokens())

	n := 0
	for range arena.All() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Fatalf("early break saw %d entries, want 2", n)
	}
}

func TestArena_At(t *testing.T) {
	arena := token.NewArena(testTokens())

	if got := arena.At(2).Text; got != "x" {
		t.Fatalf("At(2).Text = %q, want %q", got, "x")
	}

	for _, idx := range []int{-1, arena.Len(), arena.Len() + 10} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("At(%d) should panic", idx)
				}
			}()
			arena.At(idx)
		}()
	}
}

func TestArena_EmptyLen(t *testing.T) {
	arena := token.NewArena(nil)
	if arena.Len() != 0 {
		t.Fatalf("empty arena Len() = %d, want 0", arena.Len())
	}
	for range arena.All() {
		t.Fatal("empty arena must not yield entries")
	}
}
