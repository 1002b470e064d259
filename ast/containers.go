package ast

import (
	"sync/atomic"

	"moonwalk/token"
)

// Pair joins a value with the token that follows it in source, usually a
// separator. Second is nil when the value is the last in its list and no
// trailing separator was written.
type Pair[A, B any] struct {
	First  A
	Second B
}

type cowCell[T any] struct {
	refs  atomic.Int32
	value T
}

// Cow is a copy-on-write cell. Clone shares the underlying value and costs
// a reference-count bump. Get reads without copying. Mut returns a value
// this Cow owns exclusively, copying out of a shared cell first if clones
// are still alive.
//
// The zero Cow is empty: Get returns nil and Clone returns another empty
// Cow. Distinct Cows sharing a cell may be used from different goroutines;
// a single Cow value may not be mutated concurrently.
type Cow[T interface{ Clone() T }] struct {
	cell *cowCell[T]
}

// NewCow wraps value in a fresh cell owned by the returned Cow alone.
func NewCow[T interface{ Clone() T }](value T) Cow[T] {
	cell := &cowCell[T]{value: value}
	cell.refs.Store(1)
	return Cow[T]{cell: cell}
}

// Get returns a read-only view of the value, or nil if the Cow is empty.
// The pointer must not be written through; use Mut for that.
func (c Cow[T]) Get() *T {
	if c.cell == nil {
		return nil
	}
	return &c.cell.value
}

// Mut returns the value for writing. If the cell is shared with live
// clones, the value is cloned into a private cell first, so writes never
// reach the clones. Panics on an empty Cow.
func (c *Cow[T]) Mut() *T {
	if c.cell == nil {
		panic("ast: Mut called on empty Cow")
	}
	if c.cell.refs.Load() > 1 {
		fresh := &cowCell[T]{value: c.cell.value.Clone()}
		fresh.refs.Store(1)
		c.cell.refs.Add(-1)
		c.cell = fresh
	}
	return &c.cell.value
}

// Clone returns a Cow sharing this cell. The value is not copied until one
// of the sharers calls Mut.
func (c Cow[T]) Clone() Cow[T] {
	if c.cell == nil {
		return Cow[T]{}
	}
	c.cell.refs.Add(1)
	return Cow[T]{cell: c.cell}
}

// ContainedSpan is a pair of delimiter tokens wrapping some contents, like
// parentheses, brackets, or braces. The contents live outside the span, on
// the node that owns it.
type ContainedSpan struct {
	Tokens Pair[*token.Reference, *token.Reference]
}

// NewContainedSpan wraps a start and end delimiter.
func NewContainedSpan(start, end *token.Reference) ContainedSpan {
	return ContainedSpan{Tokens: Pair[*token.Reference, *token.Reference]{First: start, Second: end}}
}

// Start returns the opening delimiter.
func (c *ContainedSpan) Start() *token.Reference { return c.Tokens.First }

// End returns the closing delimiter.
func (c *ContainedSpan) End() *token.Reference { return c.Tokens.Second }

func (c *ContainedSpan) visit(v Visitor) {
	v.VisitContainedSpan(c)
	visitToken(v, c.Tokens.First)
	visitToken(v, c.Tokens.Second)
	v.VisitContainedSpanEnd(c)
}

func (c *ContainedSpan) visitMut(m VisitorMut) {
	m.VisitContainedSpanMut(c)
	visitTokenMut(m, c.Tokens.First)
	visitTokenMut(m, c.Tokens.Second)
	m.VisitContainedSpanEndMut(c)
}

func (c ContainedSpan) Clone() ContainedSpan {
	return NewContainedSpan(cloneRef(c.Tokens.First), cloneRef(c.Tokens.Second))
}
