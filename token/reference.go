package token

import (
	"fmt"
)

// Reference designates one token as seen from a syntax tree. A borrowed
// reference is a view of an arena slot: cheap to copy, resolving through
// the arena on every access. A detached reference owns its token outright
// and is independent of any arena.
//
// Equality and textual rendering depend only on the referenced content,
// never on which variant holds it.
type Reference struct {
	arena *Arena
	index int
	owned *Token // nil for borrowed references
}

// NewReference builds a borrowed reference to arena slot index. Passing an
// index outside [0, arena.Len()) is a contract violation and panics.
func NewReference(arena *Arena, index int) Reference {
	if arena == nil {
		panic("token: NewReference with nil arena")
	}
	if index < 0 || index >= arena.Len() {
		panic(fmt.Sprintf("token: reference index %d out of range [0, %d)", index, arena.Len()))
	}
	return Reference{arena: arena, index: index}
}

// NewDetachedReference builds a reference around a synthesized token that
// never lived in an arena.
func NewDetachedReference(tok Token) Reference {
	return Reference{index: -1, owned: &tok}
}

// Token resolves the reference to its current content, whichever variant
// holds it.
func (r Reference) Token() Token {
	if r.owned != nil {
		return *r.owned
	}
	return r.arena.At(r.index)
}

// IsDetached reports whether the reference owns its token rather than
// viewing an arena slot.
func (r Reference) IsDetached() bool { return r.owned != nil }

// ArenaIndex returns the arena slot this reference originated from. The
// index survives detachment; synthesized references report false.
func (r Reference) ArenaIndex() (int, bool) {
	if r.arena == nil {
		return -1, false
	}
	return r.index, true
}

// Detach captures the current content independent of the arena, keeping
// the originating index when there is one. Used when a rewrite removes a
// token from tree context.
func (r Reference) Detach() Reference {
	tok := r.Token()
	return Reference{arena: r.arena, index: r.index, owned: &tok}
}

// SetToken rewrites the reference to resolve to tok from now on. The
// reference detaches; the arena is never written.
func (r *Reference) SetToken(tok Token) {
	r.owned = &tok
}

// Clone returns a copy that shares nothing mutable with the original.
func (r Reference) Clone() Reference {
	c := r
	if r.owned != nil {
		tok := *r.owned
		c.owned = &tok
	}
	return c
}

// Equal reports content equality with other: category and text, ignoring
// position and variant.
func (r Reference) Equal(other Reference) bool {
	return r.Token().Same(other.Token())
}

// String returns the exact source text of the referenced token.
func (r Reference) String() string {
	return r.Token().Text
}
