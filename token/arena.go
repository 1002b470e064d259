package token

import (
	"fmt"
	"iter"
)

// Arena is the shared store of every token lexed from one source text, in
// document order. It is built once at parse time and never modified:
// references into it stay valid for the lifetime of every tree clone that
// shares it.
type Arena struct {
	tokens []Token
}

// NewArena builds an arena from the complete document-ordered token
// sequence. The arena takes ownership of the slice.
func NewArena(tokens []Token) *Arena {
	return &Arena{tokens: tokens}
}

// Len returns the number of tokens in the arena.
func (a *Arena) Len() int { return len(a.tokens) }

// At returns the token stored at index i. It panics when i is outside
// [0, Len()).
func (a *Arena) At(i int) Token {
	if i < 0 || i >= len(a.tokens) {
		panic(fmt.Sprintf("token: arena index %d out of range [0, %d)", i, len(a.tokens)))
	}
	return a.tokens[i]
}

// All yields (index, token) pairs in document order. The sequence is lazy
// and restartable: every range starts over from index zero.
func (a *Arena) All() iter.Seq2[int, Token] {
	return func(yield func(int, Token) bool) {
		for i, t := range a.tokens {
			if !yield(i, t) {
				return
			}
		}
	}
}
