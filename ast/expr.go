package ast

import (
	"moonwalk/token"
)

// Expression is either a unary operation applied to a sub-expression or a
// value with an optional binary tail. UnOp and Expression are set together;
// otherwise Value is set and BinOp may follow it. Fields are visited in
// declaration order with nil fields skipped.
type Expression struct {
	UnOp       *UnOp
	Expression *Expression
	Value      *Value
	BinOp      *BinOpRhs
}

func (e *Expression) visit(v Visitor) {
	v.VisitExpression(e)
	if e.UnOp != nil {
		e.UnOp.visit(v)
	}
	if e.Expression != nil {
		e.Expression.visit(v)
	}
	if e.Value != nil {
		e.Value.visit(v)
	}
	if e.BinOp != nil {
		e.BinOp.visit(v)
	}
	v.VisitExpressionEnd(e)
}

func (e *Expression) visitMut(m VisitorMut) {
	m.VisitExpressionMut(e)
	if e.UnOp != nil {
		e.UnOp.visitMut(m)
	}
	if e.Expression != nil {
		e.Expression.visitMut(m)
	}
	if e.Value != nil {
		e.Value.visitMut(m)
	}
	if e.BinOp != nil {
		e.BinOp.visitMut(m)
	}
	m.VisitExpressionEndMut(e)
}

func (e Expression) Clone() Expression {
	return Expression{
		UnOp:       clonePtr(e.UnOp, UnOp.Clone),
		Expression: clonePtr(e.Expression, Expression.Clone),
		Value:      clonePtr(e.Value, Value.Clone),
		BinOp:      clonePtr(e.BinOp, BinOpRhs.Clone),
	}
}

// UnOp is a unary operator: not, #, or -.
type UnOp struct {
	Token *token.Reference
}

func (u *UnOp) visit(v Visitor) {
	v.VisitUnOp(u)
	visitToken(v, u.Token)
	v.VisitUnOpEnd(u)
}

func (u *UnOp) visitMut(m VisitorMut) {
	m.VisitUnOpMut(u)
	visitTokenMut(m, u.Token)
	m.VisitUnOpEndMut(u)
}

func (u UnOp) Clone() UnOp {
	return UnOp{Token: cloneRef(u.Token)}
}

// BinOp is a binary operator. It has no hook of its own; the enclosing
// BinOpRhs carries the hook and the operator token fires the token hooks.
type BinOp struct {
	Token *token.Reference
}

// Precedence returns the operator's binding power on the Lua 5.1 scale,
// where or binds loosest at 1 and ^ binds tightest at 10. Unary operators
// bind at 8, between the multiplicative level and ^. Returns 0 when the
// token is not a binary operator.
func (b BinOp) Precedence() uint8 {
	if b.Token == nil {
		return 0
	}
	switch b.Token.Token().Sym {
	case token.Caret:
		return 10
	case token.Star, token.Slash, token.Percent:
		return 7
	case token.Plus, token.Minus:
		return 6
	case token.DotDot:
		return 5
	case token.Lt, token.Gt, token.LtEq, token.GtEq, token.TildeEq, token.EqEq:
		return 3
	case token.KwAnd:
		return 2
	case token.KwOr:
		return 1
	}
	return 0
}

// IsRightAssociative reports whether the operator groups right to left,
// which only ^ and .. do.
func (b BinOp) IsRightAssociative() bool {
	if b.Token == nil {
		return false
	}
	switch b.Token.Token().Sym {
	case token.Caret, token.DotDot:
		return true
	}
	return false
}

func (b BinOp) Clone() BinOp {
	return BinOp{Token: cloneRef(b.Token)}
}

// BinOpRhs is the operator and right operand of a binary expression. The
// left operand is the Value of the Expression this node hangs off.
type BinOpRhs struct {
	BinOp BinOp
	Rhs   *Expression
}

func (r *BinOpRhs) visit(v Visitor) {
	v.VisitBinOp(r)
	visitToken(v, r.BinOp.Token)
	if r.Rhs != nil {
		r.Rhs.visit(v)
	}
	v.VisitBinOpEnd(r)
}

func (r *BinOpRhs) visitMut(m VisitorMut) {
	m.VisitBinOpMut(r)
	visitTokenMut(m, r.BinOp.Token)
	if r.Rhs != nil {
		r.Rhs.visitMut(m)
	}
	m.VisitBinOpEndMut(r)
}

func (r BinOpRhs) Clone() BinOpRhs {
	return BinOpRhs{
		BinOp: r.BinOp.Clone(),
		Rhs:   clonePtr(r.Rhs, Expression.Clone),
	}
}

// Value is an atomic expression. Exactly one field is set. Symbol holds
// true, false, nil, or the vararg ellipsis.
type Value struct {
	Function         *FunctionLiteral
	FunctionCall     *FunctionCall
	TableConstructor *TableConstructor
	Number           *token.Reference
	Paren            *ParenExpression
	String           *token.Reference
	Symbol           *token.Reference
	Var              *Var
}

func (val *Value) visit(v Visitor) {
	v.VisitValue(val)
	switch {
	case val.Function != nil:
		val.Function.visit(v)
	case val.FunctionCall != nil:
		val.FunctionCall.visit(v)
	case val.TableConstructor != nil:
		val.TableConstructor.visit(v)
	case val.Number != nil:
		visitToken(v, val.Number)
	case val.Paren != nil:
		val.Paren.visit(v)
	case val.String != nil:
		visitToken(v, val.String)
	case val.Symbol != nil:
		visitToken(v, val.Symbol)
	case val.Var != nil:
		val.Var.visit(v)
	}
	v.VisitValueEnd(val)
}

func (val *Value) visitMut(m VisitorMut) {
	m.VisitValueMut(val)
	switch {
	case val.Function != nil:
		val.Function.visitMut(m)
	case val.FunctionCall != nil:
		val.FunctionCall.visitMut(m)
	case val.TableConstructor != nil:
		val.TableConstructor.visitMut(m)
	case val.Number != nil:
		visitTokenMut(m, val.Number)
	case val.Paren != nil:
		val.Paren.visitMut(m)
	case val.String != nil:
		visitTokenMut(m, val.String)
	case val.Symbol != nil:
		visitTokenMut(m, val.Symbol)
	case val.Var != nil:
		val.Var.visitMut(m)
	}
	m.VisitValueEndMut(val)
}

func (val Value) Clone() Value {
	return Value{
		Function:         clonePtr(val.Function, FunctionLiteral.Clone),
		FunctionCall:     clonePtr(val.FunctionCall, FunctionCall.Clone),
		TableConstructor: clonePtr(val.TableConstructor, TableConstructor.Clone),
		Number:           cloneRef(val.Number),
		Paren:            clonePtr(val.Paren, ParenExpression.Clone),
		String:           cloneRef(val.String),
		Symbol:           cloneRef(val.Symbol),
		Var:              clonePtr(val.Var, Var.Clone),
	}
}

// FunctionLiteral is an anonymous `function(...) ... end` expression. It
// has no hook of its own; its token and body fire theirs.
type FunctionLiteral struct {
	FunctionToken *token.Reference
	Body          FunctionBody
}

func (f *FunctionLiteral) visit(v Visitor) {
	visitToken(v, f.FunctionToken)
	f.Body.visit(v)
}

func (f *FunctionLiteral) visitMut(m VisitorMut) {
	visitTokenMut(m, f.FunctionToken)
	f.Body.visitMut(m)
}

func (f FunctionLiteral) Clone() FunctionLiteral {
	return FunctionLiteral{
		FunctionToken: cloneRef(f.FunctionToken),
		Body:          f.Body.Clone(),
	}
}

// ParenExpression is a parenthesized expression. It has no hook of its
// own; the parentheses fire as a contained span.
type ParenExpression struct {
	Contained  ContainedSpan
	Expression *Expression
}

func (p *ParenExpression) visit(v Visitor) {
	p.Contained.visit(v)
	if p.Expression != nil {
		p.Expression.visit(v)
	}
}

func (p *ParenExpression) visitMut(m VisitorMut) {
	p.Contained.visitMut(m)
	if p.Expression != nil {
		p.Expression.visitMut(m)
	}
}

func (p ParenExpression) Clone() ParenExpression {
	return ParenExpression{
		Contained:  p.Contained.Clone(),
		Expression: clonePtr(p.Expression, Expression.Clone),
	}
}

// Var is an assignable place: a bare name, or a suffixed chain ending in
// an index. Exactly one field is set.
type Var struct {
	Name       *token.Reference
	Expression *VarExpression
}

func (va *Var) visit(v Visitor) {
	v.VisitVar(va)
	visitToken(v, va.Name)
	if va.Expression != nil {
		va.Expression.visit(v)
	}
	v.VisitVarEnd(va)
}

func (va *Var) visitMut(m VisitorMut) {
	m.VisitVarMut(va)
	visitTokenMut(m, va.Name)
	if va.Expression != nil {
		va.Expression.visitMut(m)
	}
	m.VisitVarEndMut(va)
}

func (va Var) Clone() Var {
	return Var{
		Name:       cloneRef(va.Name),
		Expression: clonePtr(va.Expression, VarExpression.Clone),
	}
}

// VarExpression is a prefix followed by suffixes, used where the chain as
// a whole names an assignable place.
type VarExpression struct {
	Prefix   Prefix
	Suffixes []Suffix
}

func (va *VarExpression) visit(v Visitor) {
	v.VisitVarExpression(va)
	va.Prefix.visit(v)
	for i := range va.Suffixes {
		va.Suffixes[i].visit(v)
	}
	v.VisitVarExpressionEnd(va)
}

func (va *VarExpression) visitMut(m VisitorMut) {
	m.VisitVarExpressionMut(va)
	va.Prefix.visitMut(m)
	for i := range va.Suffixes {
		va.Suffixes[i].visitMut(m)
	}
	m.VisitVarExpressionEndMut(va)
}

func (va VarExpression) Clone() VarExpression {
	return VarExpression{
		Prefix:   va.Prefix.Clone(),
		Suffixes: cloneSlice(va.Suffixes, Suffix.Clone),
	}
}

// Prefix begins a suffixed chain: a parenthesized expression or a bare
// name. Exactly one field is set.
type Prefix struct {
	Expression *Expression
	Name       *token.Reference
}

func (p *Prefix) visit(v Visitor) {
	v.VisitPrefix(p)
	if p.Expression != nil {
		p.Expression.visit(v)
	}
	visitToken(v, p.Name)
	v.VisitPrefixEnd(p)
}

func (p *Prefix) visitMut(m VisitorMut) {
	m.VisitPrefixMut(p)
	if p.Expression != nil {
		p.Expression.visitMut(m)
	}
	visitTokenMut(m, p.Name)
	m.VisitPrefixEndMut(p)
}

func (p Prefix) Clone() Prefix {
	return Prefix{
		Expression: clonePtr(p.Expression, Expression.Clone),
		Name:       cloneRef(p.Name),
	}
}
