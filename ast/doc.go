// Package ast defines the syntax tree for Lua 5.1 chunks and the visitor
// machinery for walking and rewriting it.
//
// Invariants:
//   - Node fields are declared in source order; traversal visits them in
//     declaration order and skips absent optionals.
//   - Union nodes set exactly one variant field.
//   - The token arena is shared by every clone of a tree and never written
//     after parsing; rewriting a token detaches its reference instead.
//   - Statement bodies sit behind copy-on-write cells, so cloning a tree
//     is constant cost and mutation copies only the blocks it touches.
package ast
