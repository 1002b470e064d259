// Package explore renders a parsed chunk as an interactive statement
// outline. Outline flattens the tree into indented rows; Run wraps the
// rows in a scrollable terminal viewer.
package explore

import (
	"strings"

	"moonwalk/ast"
	"moonwalk/source"
	"moonwalk/token"
)

// Line is one outline row: a statement header with its nesting depth
// and the span of its leading token.
type Line struct {
	Depth int
	Label string
	Span  source.Span
}

// Outline flattens the statement structure of a tree into rows, one
// per statement, in source order.
func Outline(tree *ast.Ast) []Line {
	b := outlineBuilder{depth: -1}
	ast.Visit(tree, &b)
	return b.lines
}

// outlineBuilder tracks block nesting while the traversal descends.
// The root block raises depth to zero, so top-level statements sit at
// the left margin.
type outlineBuilder struct {
	ast.NopVisitor
	depth int
	lines []Line
}

func (b *outlineBuilder) VisitBlock(*ast.Block)    { b.depth++ }
func (b *outlineBuilder) VisitBlockEnd(*ast.Block) { b.depth-- }

func (b *outlineBuilder) VisitStmt(s *ast.Stmt) {
	switch {
	case s.Assignment != nil:
		vars := make([]string, 0, len(s.Assignment.VarList))
		for i := range s.Assignment.VarList {
			vars = append(vars, varLabel(&s.Assignment.VarList[i].First))
		}
		b.add("assign "+strings.Join(vars, ", "), leadingVarSpan(s.Assignment))
	case s.Do != nil:
		b.add("do", refSpan(s.Do.DoToken))
	case s.FunctionCall != nil:
		b.add("call "+chainLabel(&s.FunctionCall.Prefix, s.FunctionCall.Suffixes), prefixSpan(&s.FunctionCall.Prefix))
	case s.FunctionDeclaration != nil:
		b.add("function "+functionName(&s.FunctionDeclaration.Name), refSpan(s.FunctionDeclaration.FunctionToken))
	case s.GenericFor != nil:
		names := make([]string, 0, len(s.GenericFor.Names))
		for i := range s.GenericFor.Names {
			names = append(names, refText(s.GenericFor.Names[i].First))
		}
		b.add("for "+strings.Join(names, ", ")+" in", refSpan(s.GenericFor.ForToken))
	case s.If != nil:
		b.add("if", refSpan(s.If.IfToken))
	case s.LocalAssignment != nil:
		names := make([]string, 0, len(s.LocalAssignment.Names))
		for _, ref := range s.LocalAssignment.NameList() {
			names = append(names, refText(ref))
		}
		b.add("local "+strings.Join(names, ", "), refSpan(s.LocalAssignment.LocalToken))
	case s.LocalFunction != nil:
		b.add("local function "+refText(s.LocalFunction.Name), refSpan(s.LocalFunction.LocalToken))
	case s.NumericFor != nil:
		b.add("for "+refText(s.NumericFor.IndexVariable), refSpan(s.NumericFor.ForToken))
	case s.Repeat != nil:
		b.add("repeat", refSpan(s.Repeat.RepeatToken))
	case s.While != nil:
		b.add("while", refSpan(s.While.WhileToken))
	}
}

func (b *outlineBuilder) VisitLastStmt(l *ast.LastStmt) {
	switch {
	case l.Break != nil:
		b.add("break", refSpan(l.Break))
	case l.Return != nil:
		b.add("return", refSpan(l.Return.Token))
	}
}

// VisitElseIf fires after the preceding branch block has closed, so
// the row lands at the same depth as the owning if.
func (b *outlineBuilder) VisitElseIf(e *ast.ElseIf) {
	b.add("elseif", refSpan(e.ElseIfToken))
}

func (b *outlineBuilder) add(label string, span source.Span) {
	b.lines = append(b.lines, Line{Depth: b.depth, Label: label, Span: span})
}

func refText(ref *token.Reference) string {
	if ref == nil {
		return "?"
	}
	return ref.Token().Text
}

func refSpan(ref *token.Reference) source.Span {
	if ref == nil {
		return source.Span{}
	}
	return ref.Token().Span
}

// chainLabel prints a prefix-and-suffix chain the way it reads in
// source, with call arguments elided: a.b:c, t[...].f, (...).g.
func chainLabel(p *ast.Prefix, suffixes []ast.Suffix) string {
	var sb strings.Builder
	if p.Name != nil {
		sb.WriteString(refText(p.Name))
	} else {
		sb.WriteString("(...)")
	}
	for i := range suffixes {
		switch {
		case suffixes[i].Index != nil:
			idx := suffixes[i].Index
			if idx.Name != nil {
				sb.WriteString(".")
				sb.WriteString(refText(idx.Name))
			} else {
				sb.WriteString("[...]")
			}
		case suffixes[i].Call != nil:
			if mc := suffixes[i].Call.MethodCall; mc != nil {
				sb.WriteString(":")
				sb.WriteString(refText(mc.Name))
			}
		}
	}
	return sb.String()
}

func varLabel(v *ast.Var) string {
	if v.Name != nil {
		return refText(v.Name)
	}
	if v.Expression != nil {
		return chainLabel(&v.Expression.Prefix, v.Expression.Suffixes)
	}
	return "?"
}

func functionName(n *ast.FunctionName) string {
	parts := make([]string, 0, len(n.Names))
	for i := range n.Names {
		parts = append(parts, refText(n.Names[i].First))
	}
	label := strings.Join(parts, ".")
	if n.Method != nil {
		label += ":" + refText(n.Method.Second)
	}
	return label
}

func leadingVarSpan(a *ast.Assignment) source.Span {
	if len(a.VarList) == 0 {
		return source.Span{}
	}
	v := &a.VarList[0].First
	if v.Name != nil {
		return refSpan(v.Name)
	}
	if v.Expression != nil {
		return prefixSpan(&v.Expression.Prefix)
	}
	return source.Span{}
}

func prefixSpan(p *ast.Prefix) source.Span {
	if p.Name != nil {
		return refSpan(p.Name)
	}
	if p.Expression != nil && p.Expression.Value != nil && p.Expression.Value.Paren != nil {
		return refSpan(p.Expression.Value.Paren.Contained.Start())
	}
	return source.Span{}
}
