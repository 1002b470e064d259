// Package token defines the lexical vocabulary of Lua source text and the
// arena that stores it.
// Invariants:
//   - Token.Text is the exact source slice; concatenating the Text of every
//     arena entry in index order reproduces the source byte-for-byte.
//   - Arena order equals left-to-right document order, trivia included, and
//     the arena is never grown, shrunk, reordered, or written after
//     construction.
//   - Keywords are Symbol tokens, never Identifier tokens.
//   - Rewrites never touch the arena: setting a Reference's token detaches
//     the reference onto an owned copy.
package token
