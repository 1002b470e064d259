package ast

import (
	"moonwalk/token"
)

// Visit walks the tree with a read-only visitor in two passes.
//
// Pass one sweeps the token arena front to back and fires the token hooks
// once per token, trivia included, in document order. The references handed
// out here borrow from the arena. Pass two descends the node structure from
// the root block, firing each node's enter hook, then its fields in
// declaration order, then its End hook. Token references embedded in node
// fields fire their token hooks again during this pass, so a significant
// token is observed once per pass while trivia is observed only in the
// sweep.
//
// The traversal order is a pure function of the tree: visiting the same
// tree twice produces the same hook sequence.
func Visit(tree *Ast, v Visitor) {
	arena := tree.Tokens()
	for i := range arena.Len() {
		ref := token.NewReference(arena, i)
		visitToken(v, &ref)
	}
	if root := tree.nodes.Get(); root != nil {
		root.visit(v)
	}
}

// VisitMut walks the tree with a mutating visitor, in the same two passes
// as Visit, and returns the tree it was given.
//
// The arena itself is never rewritten. References handed out by the pass
// one sweep are temporaries. Rewriting one detaches the temporary, and the
// temporary is discarded when the hook returns, so sweep rewrites have no
// effect on the tree. Rewrites only stick when applied to references held
// in node fields during pass two. Pass two privatizes every shared block
// it descends through before mutating, so clones of the tree are never
// affected.
func VisitMut(tree *Ast, m VisitorMut) *Ast {
	arena := tree.Tokens()
	for i := range arena.Len() {
		ref := token.NewReference(arena, i)
		visitTokenMut(m, &ref)
	}
	if tree.nodes.Get() != nil {
		tree.nodes.Mut().visitMut(m)
	}
	return tree
}

// visitToken fires the generic token hook, then the hook for the token's
// kind. A nil reference is an absent optional field and fires nothing.
func visitToken(v Visitor, ref *token.Reference) {
	if ref == nil {
		return
	}
	v.VisitToken(ref)
	switch ref.Token().Kind {
	case token.Eof:
		v.VisitEof(ref)
	case token.Identifier:
		v.VisitIdentifier(ref)
	case token.MultiLineComment:
		v.VisitMultiLineComment(ref)
	case token.Number:
		v.VisitNumber(ref)
	case token.SingleLineComment:
		v.VisitSingleLineComment(ref)
	case token.StringLiteral:
		v.VisitStringLiteral(ref)
	case token.Symbol:
		v.VisitSymbol(ref)
	case token.Whitespace:
		v.VisitWhitespace(ref)
	}
}

// visitTokenMut mirrors visitToken. The kind is read after the generic
// hook, so a rewrite there changes which kind hook fires.
func visitTokenMut(m VisitorMut, ref *token.Reference) {
	if ref == nil {
		return
	}
	m.VisitTokenMut(ref)
	switch ref.Token().Kind {
	case token.Eof:
		m.VisitEofMut(ref)
	case token.Identifier:
		m.VisitIdentifierMut(ref)
	case token.MultiLineComment:
		m.VisitMultiLineCommentMut(ref)
	case token.Number:
		m.VisitNumberMut(ref)
	case token.SingleLineComment:
		m.VisitSingleLineCommentMut(ref)
	case token.StringLiteral:
		m.VisitStringLiteralMut(ref)
	case token.Symbol:
		m.VisitSymbolMut(ref)
	case token.Whitespace:
		m.VisitWhitespaceMut(ref)
	}
}
