package ast

import (
	"moonwalk/token"
)

// Ast is a parsed chunk: the token arena the source lexed into, plus the
// node structure hung off a root block. The arena is shared and never
// modified after parsing. The node structure is held behind a copy-on-write
// cell, so Clone is cheap and mutation through NodesMut or VisitMut copies
// only the blocks actually touched.
type Ast struct {
	arena *token.Arena
	nodes Cow[Block]
}

// New builds an Ast over arena with root as the top-level block.
// It panics if arena is nil.
func New(arena *token.Arena, root Block) *Ast {
	if arena == nil {
		panic("ast: New called with nil arena")
	}
	return &Ast{arena: arena, nodes: NewCow(root)}
}

// Tokens returns the token arena backing this tree.
func (a *Ast) Tokens() *token.Arena { return a.arena }

// Nodes returns a read-only view of the root block.
func (a *Ast) Nodes() *Block { return a.nodes.Get() }

// NodesMut returns a mutable root block, privatizing it first if the tree
// has live clones sharing it.
func (a *Ast) NodesMut() *Block { return a.nodes.Mut() }

// Clone returns a new tree sharing this tree's arena and node structure.
// The cost is constant regardless of tree size. Blocks are copied lazily
// when either tree mutates them.
func (a *Ast) Clone() *Ast {
	return &Ast{arena: a.arena, nodes: a.nodes.Clone()}
}
