package ast

import (
	"moonwalk/token"
)

// FunctionCall is a prefix followed by suffixes, used where the chain as a
// whole is a call statement or call expression.
type FunctionCall struct {
	Prefix   Prefix
	Suffixes []Suffix
}

func (f *FunctionCall) visit(v Visitor) {
	v.VisitFunctionCall(f)
	f.Prefix.visit(v)
	for i := range f.Suffixes {
		f.Suffixes[i].visit(v)
	}
	v.VisitFunctionCallEnd(f)
}

func (f *FunctionCall) visitMut(m VisitorMut) {
	m.VisitFunctionCallMut(f)
	f.Prefix.visitMut(m)
	for i := range f.Suffixes {
		f.Suffixes[i].visitMut(m)
	}
	m.VisitFunctionCallEndMut(f)
}

func (f FunctionCall) Clone() FunctionCall {
	return FunctionCall{
		Prefix:   f.Prefix.Clone(),
		Suffixes: cloneSlice(f.Suffixes, Suffix.Clone),
	}
}

// Suffix is one link in a chain after the prefix: a call or an index.
// Exactly one field is set.
type Suffix struct {
	Call  *Call
	Index *Index
}

func (s *Suffix) visit(v Visitor) {
	v.VisitSuffix(s)
	if s.Call != nil {
		s.Call.visit(v)
	}
	if s.Index != nil {
		s.Index.visit(v)
	}
	v.VisitSuffixEnd(s)
}

func (s *Suffix) visitMut(m VisitorMut) {
	m.VisitSuffixMut(s)
	if s.Call != nil {
		s.Call.visitMut(m)
	}
	if s.Index != nil {
		s.Index.visitMut(m)
	}
	m.VisitSuffixEndMut(s)
}

func (s Suffix) Clone() Suffix {
	return Suffix{
		Call:  clonePtr(s.Call, Call.Clone),
		Index: clonePtr(s.Index, Index.Clone),
	}
}

// Call is a call suffix: arguments applied directly or a method call.
// Exactly one field is set. A direct application fires the anonymous-call
// hooks around the same FunctionArgs node that then fires its own hooks.
type Call struct {
	AnonymousCall *FunctionArgs
	MethodCall    *MethodCall
}

func (c *Call) visit(v Visitor) {
	v.VisitCall(c)
	if c.AnonymousCall != nil {
		v.VisitAnonymousCall(c.AnonymousCall)
		c.AnonymousCall.visit(v)
		v.VisitAnonymousCallEnd(c.AnonymousCall)
	}
	if c.MethodCall != nil {
		c.MethodCall.visit(v)
	}
	v.VisitCallEnd(c)
}

func (c *Call) visitMut(m VisitorMut) {
	m.VisitCallMut(c)
	if c.AnonymousCall != nil {
		m.VisitAnonymousCallMut(c.AnonymousCall)
		c.AnonymousCall.visitMut(m)
		m.VisitAnonymousCallEndMut(c.AnonymousCall)
	}
	if c.MethodCall != nil {
		c.MethodCall.visitMut(m)
	}
	m.VisitCallEndMut(c)
}

func (c Call) Clone() Call {
	return Call{
		AnonymousCall: clonePtr(c.AnonymousCall, FunctionArgs.Clone),
		MethodCall:    clonePtr(c.MethodCall, MethodCall.Clone),
	}
}

// MethodCall is `:name(args)`.
type MethodCall struct {
	ColonToken *token.Reference
	Name       *token.Reference
	Args       FunctionArgs
}

func (c *MethodCall) visit(v Visitor) {
	v.VisitMethodCall(c)
	visitToken(v, c.ColonToken)
	visitToken(v, c.Name)
	c.Args.visit(v)
	v.VisitMethodCallEnd(c)
}

func (c *MethodCall) visitMut(m VisitorMut) {
	m.VisitMethodCallMut(c)
	visitTokenMut(m, c.ColonToken)
	visitTokenMut(m, c.Name)
	c.Args.visitMut(m)
	m.VisitMethodCallEndMut(c)
}

func (c MethodCall) Clone() MethodCall {
	return MethodCall{
		ColonToken: cloneRef(c.ColonToken),
		Name:       cloneRef(c.Name),
		Args:       c.Args.Clone(),
	}
}

// Index is an index suffix, either `[expression]` or `.name`. Brackets and
// Expression are set together; otherwise Dot and Name are.
type Index struct {
	Brackets   *ContainedSpan
	Expression *Expression
	Dot        *token.Reference
	Name       *token.Reference
}

func (i *Index) visit(v Visitor) {
	v.VisitIndex(i)
	if i.Brackets != nil {
		i.Brackets.visit(v)
	}
	if i.Expression != nil {
		i.Expression.visit(v)
	}
	visitToken(v, i.Dot)
	visitToken(v, i.Name)
	v.VisitIndexEnd(i)
}

func (i *Index) visitMut(m VisitorMut) {
	m.VisitIndexMut(i)
	if i.Brackets != nil {
		i.Brackets.visitMut(m)
	}
	if i.Expression != nil {
		i.Expression.visitMut(m)
	}
	visitTokenMut(m, i.Dot)
	visitTokenMut(m, i.Name)
	m.VisitIndexEndMut(i)
}

func (i Index) Clone() Index {
	return Index{
		Brackets:   clonePtr(i.Brackets, ContainedSpan.Clone),
		Expression: clonePtr(i.Expression, Expression.Clone),
		Dot:        cloneRef(i.Dot),
		Name:       cloneRef(i.Name),
	}
}

// FunctionArgs is what a call applies: a parenthesized argument list, a
// bare string, or a bare table constructor. Parentheses and Arguments are
// set together; otherwise String or TableConstructor is set alone.
type FunctionArgs struct {
	Parentheses      *ContainedSpan
	Arguments        []Pair[Expression, *token.Reference]
	String           *token.Reference
	TableConstructor *TableConstructor
}

func (f *FunctionArgs) visit(v Visitor) {
	v.VisitFunctionArgs(f)
	if f.Parentheses != nil {
		f.Parentheses.visit(v)
	}
	for i := range f.Arguments {
		f.Arguments[i].First.visit(v)
		visitToken(v, f.Arguments[i].Second)
	}
	visitToken(v, f.String)
	if f.TableConstructor != nil {
		f.TableConstructor.visit(v)
	}
	v.VisitFunctionArgsEnd(f)
}

func (f *FunctionArgs) visitMut(m VisitorMut) {
	m.VisitFunctionArgsMut(f)
	if f.Parentheses != nil {
		f.Parentheses.visitMut(m)
	}
	for i := range f.Arguments {
		f.Arguments[i].First.visitMut(m)
		visitTokenMut(m, f.Arguments[i].Second)
	}
	visitTokenMut(m, f.String)
	if f.TableConstructor != nil {
		f.TableConstructor.visitMut(m)
	}
	m.VisitFunctionArgsEndMut(f)
}

func (f FunctionArgs) Clone() FunctionArgs {
	return FunctionArgs{
		Parentheses:      clonePtr(f.Parentheses, ContainedSpan.Clone),
		Arguments:        clonePairs(f.Arguments, Expression.Clone),
		String:           cloneRef(f.String),
		TableConstructor: clonePtr(f.TableConstructor, TableConstructor.Clone),
	}
}
