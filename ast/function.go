package ast

import (
	"moonwalk/token"
)

// FunctionBody is the parameter list and block shared by every function
// form: declarations, local functions, literals, and methods.
type FunctionBody struct {
	Parentheses ContainedSpan
	Parameters  []Pair[Parameter, *token.Reference]
	Block       Cow[Block]
	EndToken    *token.Reference
}

func (f *FunctionBody) visit(v Visitor) {
	v.VisitFunctionBody(f)
	f.Parentheses.visit(v)
	for i := range f.Parameters {
		f.Parameters[i].First.visit(v)
		visitToken(v, f.Parameters[i].Second)
	}
	if blk := f.Block.Get(); blk != nil {
		blk.visit(v)
	}
	visitToken(v, f.EndToken)
	v.VisitFunctionBodyEnd(f)
}

func (f *FunctionBody) visitMut(m VisitorMut) {
	m.VisitFunctionBodyMut(f)
	f.Parentheses.visitMut(m)
	for i := range f.Parameters {
		f.Parameters[i].First.visitMut(m)
		visitTokenMut(m, f.Parameters[i].Second)
	}
	if f.Block.Get() != nil {
		f.Block.Mut().visitMut(m)
	}
	visitTokenMut(m, f.EndToken)
	m.VisitFunctionBodyEndMut(f)
}

func (f FunctionBody) Clone() FunctionBody {
	return FunctionBody{
		Parentheses: f.Parentheses.Clone(),
		Parameters:  clonePairs(f.Parameters, Parameter.Clone),
		Block:       f.Block.Clone(),
		EndToken:    cloneRef(f.EndToken),
	}
}

// Parameter is one formal parameter: a name or the vararg ellipsis.
// Exactly one field is set.
type Parameter struct {
	Ellipse *token.Reference
	Name    *token.Reference
}

func (p *Parameter) visit(v Visitor) {
	v.VisitParameter(p)
	visitToken(v, p.Ellipse)
	visitToken(v, p.Name)
	v.VisitParameterEnd(p)
}

func (p *Parameter) visitMut(m VisitorMut) {
	m.VisitParameterMut(p)
	visitTokenMut(m, p.Ellipse)
	visitTokenMut(m, p.Name)
	m.VisitParameterEndMut(p)
}

func (p Parameter) Clone() Parameter {
	return Parameter{
		Ellipse: cloneRef(p.Ellipse),
		Name:    cloneRef(p.Name),
	}
}

// FunctionName is the dotted name of a function declaration, with an
// optional trailing `:method`. Method holds the colon and the method name.
type FunctionName struct {
	Names  []Pair[*token.Reference, *token.Reference]
	Method *Pair[*token.Reference, *token.Reference]
}

func (f *FunctionName) visit(v Visitor) {
	v.VisitFunctionName(f)
	for i := range f.Names {
		visitToken(v, f.Names[i].First)
		visitToken(v, f.Names[i].Second)
	}
	if f.Method != nil {
		visitToken(v, f.Method.First)
		visitToken(v, f.Method.Second)
	}
	v.VisitFunctionNameEnd(f)
}

func (f *FunctionName) visitMut(m VisitorMut) {
	m.VisitFunctionNameMut(f)
	for i := range f.Names {
		visitTokenMut(m, f.Names[i].First)
		visitTokenMut(m, f.Names[i].Second)
	}
	if f.Method != nil {
		visitTokenMut(m, f.Method.First)
		visitTokenMut(m, f.Method.Second)
	}
	m.VisitFunctionNameEndMut(f)
}

func (f FunctionName) Clone() FunctionName {
	out := FunctionName{Names: cloneRefPairs(f.Names)}
	if f.Method != nil {
		method := Pair[*token.Reference, *token.Reference]{
			First:  cloneRef(f.Method.First),
			Second: cloneRef(f.Method.Second),
		}
		out.Method = &method
	}
	return out
}
