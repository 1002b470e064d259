package ast

import (
	"moonwalk/token"
)

// Assignment is `varlist = exprlist`.
type Assignment struct {
	VarList  []Pair[Var, *token.Reference]
	Equal    *token.Reference
	ExprList []Pair[Expression, *token.Reference]
}

func (a *Assignment) visit(v Visitor) {
	v.VisitAssignment(a)
	for i := range a.VarList {
		a.VarList[i].First.visit(v)
		visitToken(v, a.VarList[i].Second)
	}
	visitToken(v, a.Equal)
	for i := range a.ExprList {
		a.ExprList[i].First.visit(v)
		visitToken(v, a.ExprList[i].Second)
	}
	v.VisitAssignmentEnd(a)
}

func (a *Assignment) visitMut(m VisitorMut) {
	m.VisitAssignmentMut(a)
	for i := range a.VarList {
		a.VarList[i].First.visitMut(m)
		visitTokenMut(m, a.VarList[i].Second)
	}
	visitTokenMut(m, a.Equal)
	for i := range a.ExprList {
		a.ExprList[i].First.visitMut(m)
		visitTokenMut(m, a.ExprList[i].Second)
	}
	m.VisitAssignmentEndMut(a)
}

func (a Assignment) Clone() Assignment {
	return Assignment{
		VarList:  clonePairs(a.VarList, Var.Clone),
		Equal:    cloneRef(a.Equal),
		ExprList: clonePairs(a.ExprList, Expression.Clone),
	}
}

// Do is a `do ... end` scope block.
type Do struct {
	DoToken  *token.Reference
	Block    Cow[Block]
	EndToken *token.Reference
}

func (d *Do) visit(v Visitor) {
	v.VisitDo(d)
	visitToken(v, d.DoToken)
	if blk := d.Block.Get(); blk != nil {
		blk.visit(v)
	}
	visitToken(v, d.EndToken)
	v.VisitDoEnd(d)
}

func (d *Do) visitMut(m VisitorMut) {
	m.VisitDoMut(d)
	visitTokenMut(m, d.DoToken)
	if d.Block.Get() != nil {
		d.Block.Mut().visitMut(m)
	}
	visitTokenMut(m, d.EndToken)
	m.VisitDoEndMut(d)
}

func (d Do) Clone() Do {
	return Do{
		DoToken:  cloneRef(d.DoToken),
		Block:    d.Block.Clone(),
		EndToken: cloneRef(d.EndToken),
	}
}

// While is `while condition do ... end`.
type While struct {
	WhileToken *token.Reference
	Condition  Expression
	DoToken    *token.Reference
	Block      Cow[Block]
	EndToken   *token.Reference
}

func (w *While) visit(v Visitor) {
	v.VisitWhile(w)
	visitToken(v, w.WhileToken)
	w.Condition.visit(v)
	visitToken(v, w.DoToken)
	if blk := w.Block.Get(); blk != nil {
		blk.visit(v)
	}
	visitToken(v, w.EndToken)
	v.VisitWhileEnd(w)
}

func (w *While) visitMut(m VisitorMut) {
	m.VisitWhileMut(w)
	visitTokenMut(m, w.WhileToken)
	w.Condition.visitMut(m)
	visitTokenMut(m, w.DoToken)
	if w.Block.Get() != nil {
		w.Block.Mut().visitMut(m)
	}
	visitTokenMut(m, w.EndToken)
	m.VisitWhileEndMut(w)
}

func (w While) Clone() While {
	return While{
		WhileToken: cloneRef(w.WhileToken),
		Condition:  w.Condition.Clone(),
		DoToken:    cloneRef(w.DoToken),
		Block:      w.Block.Clone(),
		EndToken:   cloneRef(w.EndToken),
	}
}

// Repeat is `repeat ... until condition`. The condition follows the body
// both in source and in traversal order.
type Repeat struct {
	RepeatToken *token.Reference
	Block       Cow[Block]
	UntilToken  *token.Reference
	Until       Expression
}

func (r *Repeat) visit(v Visitor) {
	v.VisitRepeat(r)
	visitToken(v, r.RepeatToken)
	if blk := r.Block.Get(); blk != nil {
		blk.visit(v)
	}
	visitToken(v, r.UntilToken)
	r.Until.visit(v)
	v.VisitRepeatEnd(r)
}

func (r *Repeat) visitMut(m VisitorMut) {
	m.VisitRepeatMut(r)
	visitTokenMut(m, r.RepeatToken)
	if r.Block.Get() != nil {
		r.Block.Mut().visitMut(m)
	}
	visitTokenMut(m, r.UntilToken)
	r.Until.visitMut(m)
	m.VisitRepeatEndMut(r)
}

func (r Repeat) Clone() Repeat {
	return Repeat{
		RepeatToken: cloneRef(r.RepeatToken),
		Block:       r.Block.Clone(),
		UntilToken:  cloneRef(r.UntilToken),
		Until:       r.Until.Clone(),
	}
}

// If is an if statement with any number of elseif arms and an optional
// else block. ElseToken and ElseBlock are set together or not at all.
type If struct {
	IfToken   *token.Reference
	Condition Expression
	ThenToken *token.Reference
	Block     Cow[Block]
	ElseIfs   []ElseIf
	ElseToken *token.Reference
	ElseBlock Cow[Block]
	EndToken  *token.Reference
}

func (f *If) visit(v Visitor) {
	v.VisitIf(f)
	visitToken(v, f.IfToken)
	f.Condition.visit(v)
	visitToken(v, f.ThenToken)
	if blk := f.Block.Get(); blk != nil {
		blk.visit(v)
	}
	for i := range f.ElseIfs {
		f.ElseIfs[i].visit(v)
	}
	visitToken(v, f.ElseToken)
	if blk := f.ElseBlock.Get(); blk != nil {
		blk.visit(v)
	}
	visitToken(v, f.EndToken)
	v.VisitIfEnd(f)
}

func (f *If) visitMut(m VisitorMut) {
	m.VisitIfMut(f)
	visitTokenMut(m, f.IfToken)
	f.Condition.visitMut(m)
	visitTokenMut(m, f.ThenToken)
	if f.Block.Get() != nil {
		f.Block.Mut().visitMut(m)
	}
	for i := range f.ElseIfs {
		f.ElseIfs[i].visitMut(m)
	}
	visitTokenMut(m, f.ElseToken)
	if f.ElseBlock.Get() != nil {
		f.ElseBlock.Mut().visitMut(m)
	}
	visitTokenMut(m, f.EndToken)
	m.VisitIfEndMut(f)
}

func (f If) Clone() If {
	return If{
		IfToken:   cloneRef(f.IfToken),
		Condition: f.Condition.Clone(),
		ThenToken: cloneRef(f.ThenToken),
		Block:     f.Block.Clone(),
		ElseIfs:   cloneSlice(f.ElseIfs, ElseIf.Clone),
		ElseToken: cloneRef(f.ElseToken),
		ElseBlock: f.ElseBlock.Clone(),
		EndToken:  cloneRef(f.EndToken),
	}
}

// ElseIf is one `elseif condition then ...` arm of an If.
type ElseIf struct {
	ElseIfToken *token.Reference
	Condition   Expression
	ThenToken   *token.Reference
	Block       Cow[Block]
}

func (e *ElseIf) visit(v Visitor) {
	v.VisitElseIf(e)
	visitToken(v, e.ElseIfToken)
	e.Condition.visit(v)
	visitToken(v, e.ThenToken)
	if blk := e.Block.Get(); blk != nil {
		blk.visit(v)
	}
	v.VisitElseIfEnd(e)
}

func (e *ElseIf) visitMut(m VisitorMut) {
	m.VisitElseIfMut(e)
	visitTokenMut(m, e.ElseIfToken)
	e.Condition.visitMut(m)
	visitTokenMut(m, e.ThenToken)
	if e.Block.Get() != nil {
		e.Block.Mut().visitMut(m)
	}
	m.VisitElseIfEndMut(e)
}

func (e ElseIf) Clone() ElseIf {
	return ElseIf{
		ElseIfToken: cloneRef(e.ElseIfToken),
		Condition:   e.Condition.Clone(),
		ThenToken:   cloneRef(e.ThenToken),
		Block:       e.Block.Clone(),
	}
}

// NumericFor is `for name = start, end [, step] do ... end`. EndStepComma
// and Step are set together or not at all.
type NumericFor struct {
	ForToken      *token.Reference
	IndexVariable *token.Reference
	Equal         *token.Reference
	Start         Expression
	StartEndComma *token.Reference
	End           Expression
	EndStepComma  *token.Reference
	Step          *Expression
	DoToken       *token.Reference
	Block         Cow[Block]
	EndToken      *token.Reference
}

func (n *NumericFor) visit(v Visitor) {
	v.VisitNumericFor(n)
	visitToken(v, n.ForToken)
	visitToken(v, n.IndexVariable)
	visitToken(v, n.Equal)
	n.Start.visit(v)
	visitToken(v, n.StartEndComma)
	n.End.visit(v)
	visitToken(v, n.EndStepComma)
	if n.Step != nil {
		n.Step.visit(v)
	}
	visitToken(v, n.DoToken)
	if blk := n.Block.Get(); blk != nil {
		blk.visit(v)
	}
	visitToken(v, n.EndToken)
	v.VisitNumericForEnd(n)
}

func (n *NumericFor) visitMut(m VisitorMut) {
	m.VisitNumericForMut(n)
	visitTokenMut(m, n.ForToken)
	visitTokenMut(m, n.IndexVariable)
	visitTokenMut(m, n.Equal)
	n.Start.visitMut(m)
	visitTokenMut(m, n.StartEndComma)
	n.End.visitMut(m)
	visitTokenMut(m, n.EndStepComma)
	if n.Step != nil {
		n.Step.visitMut(m)
	}
	visitTokenMut(m, n.DoToken)
	if n.Block.Get() != nil {
		n.Block.Mut().visitMut(m)
	}
	visitTokenMut(m, n.EndToken)
	m.VisitNumericForEndMut(n)
}

func (n NumericFor) Clone() NumericFor {
	return NumericFor{
		ForToken:      cloneRef(n.ForToken),
		IndexVariable: cloneRef(n.IndexVariable),
		Equal:         cloneRef(n.Equal),
		Start:         n.Start.Clone(),
		StartEndComma: cloneRef(n.StartEndComma),
		End:           n.End.Clone(),
		EndStepComma:  cloneRef(n.EndStepComma),
		Step:          clonePtr(n.Step, Expression.Clone),
		DoToken:       cloneRef(n.DoToken),
		Block:         n.Block.Clone(),
		EndToken:      cloneRef(n.EndToken),
	}
}

// GenericFor is `for namelist in exprlist do ... end`.
type GenericFor struct {
	ForToken *token.Reference
	Names    []Pair[*token.Reference, *token.Reference]
	InToken  *token.Reference
	ExprList []Pair[Expression, *token.Reference]
	DoToken  *token.Reference
	Block    Cow[Block]
	EndToken *token.Reference
}

func (g *GenericFor) visit(v Visitor) {
	v.VisitGenericFor(g)
	visitToken(v, g.ForToken)
	for i := range g.Names {
		visitToken(v, g.Names[i].First)
		visitToken(v, g.Names[i].Second)
	}
	visitToken(v, g.InToken)
	for i := range g.ExprList {
		g.ExprList[i].First.visit(v)
		visitToken(v, g.ExprList[i].Second)
	}
	visitToken(v, g.DoToken)
	if blk := g.Block.Get(); blk != nil {
		blk.visit(v)
	}
	visitToken(v, g.EndToken)
	v.VisitGenericForEnd(g)
}

func (g *GenericFor) visitMut(m VisitorMut) {
	m.VisitGenericForMut(g)
	visitTokenMut(m, g.ForToken)
	for i := range g.Names {
		visitTokenMut(m, g.Names[i].First)
		visitTokenMut(m, g.Names[i].Second)
	}
	visitTokenMut(m, g.InToken)
	for i := range g.ExprList {
		g.ExprList[i].First.visitMut(m)
		visitTokenMut(m, g.ExprList[i].Second)
	}
	visitTokenMut(m, g.DoToken)
	if g.Block.Get() != nil {
		g.Block.Mut().visitMut(m)
	}
	visitTokenMut(m, g.EndToken)
	m.VisitGenericForEndMut(g)
}

func (g GenericFor) Clone() GenericFor {
	return GenericFor{
		ForToken: cloneRef(g.ForToken),
		Names:    cloneRefPairs(g.Names),
		InToken:  cloneRef(g.InToken),
		ExprList: clonePairs(g.ExprList, Expression.Clone),
		DoToken:  cloneRef(g.DoToken),
		Block:    g.Block.Clone(),
		EndToken: cloneRef(g.EndToken),
	}
}

// LocalAssignment is `local namelist [= exprlist]`. Equal is nil when
// there is no initializer, and ExprList is empty alongside it.
type LocalAssignment struct {
	LocalToken *token.Reference
	Names      []Pair[*token.Reference, *token.Reference]
	Equal      *token.Reference
	ExprList   []Pair[Expression, *token.Reference]
}

// NameList returns the declared names without their separators.
func (l *LocalAssignment) NameList() []*token.Reference {
	names := make([]*token.Reference, len(l.Names))
	for i := range l.Names {
		names[i] = l.Names[i].First
	}
	return names
}

func (l *LocalAssignment) visit(v Visitor) {
	v.VisitLocalAssignment(l)
	visitToken(v, l.LocalToken)
	for i := range l.Names {
		visitToken(v, l.Names[i].First)
		visitToken(v, l.Names[i].Second)
	}
	visitToken(v, l.Equal)
	for i := range l.ExprList {
		l.ExprList[i].First.visit(v)
		visitToken(v, l.ExprList[i].Second)
	}
	v.VisitLocalAssignmentEnd(l)
}

func (l *LocalAssignment) visitMut(m VisitorMut) {
	m.VisitLocalAssignmentMut(l)
	visitTokenMut(m, l.LocalToken)
	for i := range l.Names {
		visitTokenMut(m, l.Names[i].First)
		visitTokenMut(m, l.Names[i].Second)
	}
	visitTokenMut(m, l.Equal)
	for i := range l.ExprList {
		l.ExprList[i].First.visitMut(m)
		visitTokenMut(m, l.ExprList[i].Second)
	}
	m.VisitLocalAssignmentEndMut(l)
}

func (l LocalAssignment) Clone() LocalAssignment {
	return LocalAssignment{
		LocalToken: cloneRef(l.LocalToken),
		Names:      cloneRefPairs(l.Names),
		Equal:      cloneRef(l.Equal),
		ExprList:   clonePairs(l.ExprList, Expression.Clone),
	}
}

// LocalFunction is `local function name(...) ... end`.
type LocalFunction struct {
	LocalToken    *token.Reference
	FunctionToken *token.Reference
	Name          *token.Reference
	Body          FunctionBody
}

func (l *LocalFunction) visit(v Visitor) {
	v.VisitLocalFunction(l)
	visitToken(v, l.LocalToken)
	visitToken(v, l.FunctionToken)
	visitToken(v, l.Name)
	l.Body.visit(v)
	v.VisitLocalFunctionEnd(l)
}

func (l *LocalFunction) visitMut(m VisitorMut) {
	m.VisitLocalFunctionMut(l)
	visitTokenMut(m, l.LocalToken)
	visitTokenMut(m, l.FunctionToken)
	visitTokenMut(m, l.Name)
	l.Body.visitMut(m)
	m.VisitLocalFunctionEndMut(l)
}

func (l LocalFunction) Clone() LocalFunction {
	return LocalFunction{
		LocalToken:    cloneRef(l.LocalToken),
		FunctionToken: cloneRef(l.FunctionToken),
		Name:          cloneRef(l.Name),
		Body:          l.Body.Clone(),
	}
}

// FunctionDeclaration is `function name.path[:method](...) ... end`.
type FunctionDeclaration struct {
	FunctionToken *token.Reference
	Name          FunctionName
	Body          FunctionBody
}

func (f *FunctionDeclaration) visit(v Visitor) {
	v.VisitFunctionDeclaration(f)
	visitToken(v, f.FunctionToken)
	f.Name.visit(v)
	f.Body.visit(v)
	v.VisitFunctionDeclarationEnd(f)
}

func (f *FunctionDeclaration) visitMut(m VisitorMut) {
	m.VisitFunctionDeclarationMut(f)
	visitTokenMut(m, f.FunctionToken)
	f.Name.visitMut(m)
	f.Body.visitMut(m)
	m.VisitFunctionDeclarationEndMut(f)
}

func (f FunctionDeclaration) Clone() FunctionDeclaration {
	return FunctionDeclaration{
		FunctionToken: cloneRef(f.FunctionToken),
		Name:          f.Name.Clone(),
		Body:          f.Body.Clone(),
	}
}
