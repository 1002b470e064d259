package ast

import (
	"moonwalk/token"
)

// TableConstructor is `{ fields }`.
type TableConstructor struct {
	Braces ContainedSpan
	Fields []Pair[Field, *token.Reference]
}

func (t *TableConstructor) visit(v Visitor) {
	v.VisitTableConstructor(t)
	t.Braces.visit(v)
	for i := range t.Fields {
		t.Fields[i].First.visit(v)
		visitToken(v, t.Fields[i].Second)
	}
	v.VisitTableConstructorEnd(t)
}

func (t *TableConstructor) visitMut(m VisitorMut) {
	m.VisitTableConstructorMut(t)
	t.Braces.visitMut(m)
	for i := range t.Fields {
		t.Fields[i].First.visitMut(m)
		visitTokenMut(m, t.Fields[i].Second)
	}
	m.VisitTableConstructorEndMut(t)
}

func (t TableConstructor) Clone() TableConstructor {
	return TableConstructor{
		Braces: t.Braces.Clone(),
		Fields: clonePairs(t.Fields, Field.Clone),
	}
}

// Field is one table entry. Three shapes share the struct: `[key] = value`
// sets Brackets, Key, Equal, and Value; `name = value` sets Name, Equal,
// and Value; a positional entry sets only Value.
type Field struct {
	Brackets *ContainedSpan
	Key      *Expression
	Name     *token.Reference
	Equal    *token.Reference
	Value    Expression
}

func (f *Field) visit(v Visitor) {
	v.VisitField(f)
	if f.Brackets != nil {
		f.Brackets.visit(v)
	}
	if f.Key != nil {
		f.Key.visit(v)
	}
	visitToken(v, f.Name)
	visitToken(v, f.Equal)
	f.Value.visit(v)
	v.VisitFieldEnd(f)
}

func (f *Field) visitMut(m VisitorMut) {
	m.VisitFieldMut(f)
	if f.Brackets != nil {
		f.Brackets.visitMut(m)
	}
	if f.Key != nil {
		f.Key.visitMut(m)
	}
	visitTokenMut(m, f.Name)
	visitTokenMut(m, f.Equal)
	f.Value.visitMut(m)
	m.VisitFieldEndMut(f)
}

func (f Field) Clone() Field {
	return Field{
		Brackets: clonePtr(f.Brackets, ContainedSpan.Clone),
		Key:      clonePtr(f.Key, Expression.Clone),
		Name:     cloneRef(f.Name),
		Equal:    cloneRef(f.Equal),
		Value:    f.Value.Clone(),
	}
}
