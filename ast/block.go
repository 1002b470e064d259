package ast

import (
	"moonwalk/token"
)

// Block is a sequence of statements, each with its optional trailing
// semicolon, followed by an optional terminating statement.
type Block struct {
	Stmts    []Pair[Stmt, *token.Reference]
	LastStmt *Pair[LastStmt, *token.Reference]
}

func (b *Block) visit(v Visitor) {
	v.VisitBlock(b)
	for i := range b.Stmts {
		b.Stmts[i].First.visit(v)
		visitToken(v, b.Stmts[i].Second)
	}
	if b.LastStmt != nil {
		b.LastStmt.First.visit(v)
		visitToken(v, b.LastStmt.Second)
	}
	v.VisitBlockEnd(b)
}

func (b *Block) visitMut(m VisitorMut) {
	m.VisitBlockMut(b)
	for i := range b.Stmts {
		b.Stmts[i].First.visitMut(m)
		visitTokenMut(m, b.Stmts[i].Second)
	}
	if b.LastStmt != nil {
		b.LastStmt.First.visitMut(m)
		visitTokenMut(m, b.LastStmt.Second)
	}
	m.VisitBlockEndMut(b)
}

// Clone copies the block's statement structure. Nested blocks stay behind
// their copy-on-write cells, so the copy is shallow in the bodies and
// privatizes lazily.
func (b Block) Clone() Block {
	out := Block{Stmts: clonePairs(b.Stmts, Stmt.Clone)}
	if b.LastStmt != nil {
		last := Pair[LastStmt, *token.Reference]{
			First:  b.LastStmt.First.Clone(),
			Second: cloneRef(b.LastStmt.Second),
		}
		out.LastStmt = &last
	}
	return out
}

// Stmt is one statement. Exactly one field is non-nil; the parser
// guarantees this and the traversal relies on it.
type Stmt struct {
	Assignment          *Assignment
	Do                  *Do
	FunctionCall        *FunctionCall
	FunctionDeclaration *FunctionDeclaration
	GenericFor          *GenericFor
	If                  *If
	LocalAssignment     *LocalAssignment
	LocalFunction       *LocalFunction
	NumericFor          *NumericFor
	Repeat              *Repeat
	While               *While
}

func (s *Stmt) visit(v Visitor) {
	v.VisitStmt(s)
	switch {
	case s.Assignment != nil:
		s.Assignment.visit(v)
	case s.Do != nil:
		s.Do.visit(v)
	case s.FunctionCall != nil:
		s.FunctionCall.visit(v)
	case s.FunctionDeclaration != nil:
		s.FunctionDeclaration.visit(v)
	case s.GenericFor != nil:
		s.GenericFor.visit(v)
	case s.If != nil:
		s.If.visit(v)
	case s.LocalAssignment != nil:
		s.LocalAssignment.visit(v)
	case s.LocalFunction != nil:
		s.LocalFunction.visit(v)
	case s.NumericFor != nil:
		s.NumericFor.visit(v)
	case s.Repeat != nil:
		s.Repeat.visit(v)
	case s.While != nil:
		s.While.visit(v)
	}
	v.VisitStmtEnd(s)
}

func (s *Stmt) visitMut(m VisitorMut) {
	m.VisitStmtMut(s)
	switch {
	case s.Assignment != nil:
		s.Assignment.visitMut(m)
	case s.Do != nil:
		s.Do.visitMut(m)
	case s.FunctionCall != nil:
		s.FunctionCall.visitMut(m)
	case s.FunctionDeclaration != nil:
		s.FunctionDeclaration.visitMut(m)
	case s.GenericFor != nil:
		s.GenericFor.visitMut(m)
	case s.If != nil:
		s.If.visitMut(m)
	case s.LocalAssignment != nil:
		s.LocalAssignment.visitMut(m)
	case s.LocalFunction != nil:
		s.LocalFunction.visitMut(m)
	case s.NumericFor != nil:
		s.NumericFor.visitMut(m)
	case s.Repeat != nil:
		s.Repeat.visitMut(m)
	case s.While != nil:
		s.While.visitMut(m)
	}
	m.VisitStmtEndMut(s)
}

func (s Stmt) Clone() Stmt {
	return Stmt{
		Assignment:          clonePtr(s.Assignment, Assignment.Clone),
		Do:                  clonePtr(s.Do, Do.Clone),
		FunctionCall:        clonePtr(s.FunctionCall, FunctionCall.Clone),
		FunctionDeclaration: clonePtr(s.FunctionDeclaration, FunctionDeclaration.Clone),
		GenericFor:          clonePtr(s.GenericFor, GenericFor.Clone),
		If:                  clonePtr(s.If, If.Clone),
		LocalAssignment:     clonePtr(s.LocalAssignment, LocalAssignment.Clone),
		LocalFunction:       clonePtr(s.LocalFunction, LocalFunction.Clone),
		NumericFor:          clonePtr(s.NumericFor, NumericFor.Clone),
		Repeat:              clonePtr(s.Repeat, Repeat.Clone),
		While:               clonePtr(s.While, While.Clone),
	}
}

// LastStmt terminates a block: either a break token or a return.
type LastStmt struct {
	Break  *token.Reference
	Return *Return
}

func (l *LastStmt) visit(v Visitor) {
	v.VisitLastStmt(l)
	visitToken(v, l.Break)
	if l.Return != nil {
		l.Return.visit(v)
	}
	v.VisitLastStmtEnd(l)
}

func (l *LastStmt) visitMut(m VisitorMut) {
	m.VisitLastStmtMut(l)
	visitTokenMut(m, l.Break)
	if l.Return != nil {
		l.Return.visitMut(m)
	}
	m.VisitLastStmtEndMut(l)
}

func (l LastStmt) Clone() LastStmt {
	return LastStmt{
		Break:  cloneRef(l.Break),
		Return: clonePtr(l.Return, Return.Clone),
	}
}

// Return is a return statement with its expression list, which may be
// empty.
type Return struct {
	Token   *token.Reference
	Returns []Pair[Expression, *token.Reference]
}

func (r *Return) visit(v Visitor) {
	v.VisitReturn(r)
	visitToken(v, r.Token)
	for i := range r.Returns {
		r.Returns[i].First.visit(v)
		visitToken(v, r.Returns[i].Second)
	}
	v.VisitReturnEnd(r)
}

func (r *Return) visitMut(m VisitorMut) {
	m.VisitReturnMut(r)
	visitTokenMut(m, r.Token)
	for i := range r.Returns {
		r.Returns[i].First.visitMut(m)
		visitTokenMut(m, r.Returns[i].Second)
	}
	m.VisitReturnEndMut(r)
}

func (r Return) Clone() Return {
	return Return{
		Token:   cloneRef(r.Token),
		Returns: clonePairs(r.Returns, Expression.Clone),
	}
}
