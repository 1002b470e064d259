package ast

import (
	"moonwalk/token"
)

// Helpers shared by the node Clone methods. Cloning duplicates node
// structure and token references outright; only copy-on-write cells are
// shared, and those privatize on first mutation.

func cloneRef(r *token.Reference) *token.Reference {
	if r == nil {
		return nil
	}
	c := r.Clone()
	return &c
}

func clonePtr[T any](p *T, clone func(T) T) *T {
	if p == nil {
		return nil
	}
	c := clone(*p)
	return &c
}

func cloneSlice[T any](xs []T, clone func(T) T) []T {
	if xs == nil {
		return nil
	}
	out := make([]T, len(xs))
	for i := range xs {
		out[i] = clone(xs[i])
	}
	return out
}

// clonePairs copies a punctuated list: each element is cloned with clone
// and each separator reference is cloned alongside it.
func clonePairs[T any](pairs []Pair[T, *token.Reference], clone func(T) T) []Pair[T, *token.Reference] {
	if pairs == nil {
		return nil
	}
	out := make([]Pair[T, *token.Reference], len(pairs))
	for i := range pairs {
		out[i] = Pair[T, *token.Reference]{
			First:  clone(pairs[i].First),
			Second: cloneRef(pairs[i].Second),
		}
	}
	return out
}

// cloneRefPairs copies a punctuated name list, where both halves of each
// pair are token references.
func cloneRefPairs(pairs []Pair[*token.Reference, *token.Reference]) []Pair[*token.Reference, *token.Reference] {
	if pairs == nil {
		return nil
	}
	out := make([]Pair[*token.Reference, *token.Reference], len(pairs))
	for i := range pairs {
		out[i] = Pair[*token.Reference, *token.Reference]{
			First:  cloneRef(pairs[i].First),
			Second: cloneRef(pairs[i].Second),
		}
	}
	return out
}
