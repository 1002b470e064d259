package ast

import (
	"moonwalk/token"
)

// Visitor listens for nodes and tokens during a read-only traversal. Every
// node kind has an enter hook and a matching End hook bracketing the
// descent into its fields, so a visitor can push and pop its own state
// around a subtree without keeping a parallel stack. Token hooks have no
// enter/exit split. Values passed to a Visitor must be treated as
// read-only; rewriting goes through VisitorMut.
//
// Embed NopVisitor to implement only the hooks you care about:
//
//	type localNames struct {
//		ast.NopVisitor
//		names []string
//	}
//
//	func (l *localNames) VisitLocalAssignment(node *ast.LocalAssignment) {
//		for _, ref := range node.NameList() {
//			l.names = append(l.names, ref.Token().Text)
//		}
//	}
type Visitor interface {
	// VisitAnonymousCall fires for function arguments applied directly to
	// a prefix, around the same node that VisitFunctionArgs receives.
	VisitAnonymousCall(node *FunctionArgs)
	VisitAnonymousCallEnd(node *FunctionArgs)
	VisitAssignment(node *Assignment)
	VisitAssignmentEnd(node *Assignment)
	VisitBinOp(node *BinOpRhs)
	VisitBinOpEnd(node *BinOpRhs)
	VisitBlock(node *Block)
	VisitBlockEnd(node *Block)
	VisitCall(node *Call)
	VisitCallEnd(node *Call)
	VisitContainedSpan(node *ContainedSpan)
	VisitContainedSpanEnd(node *ContainedSpan)
	VisitDo(node *Do)
	VisitDoEnd(node *Do)
	VisitElseIf(node *ElseIf)
	VisitElseIfEnd(node *ElseIf)
	VisitExpression(node *Expression)
	VisitExpressionEnd(node *Expression)
	VisitField(node *Field)
	VisitFieldEnd(node *Field)
	VisitFunctionArgs(node *FunctionArgs)
	VisitFunctionArgsEnd(node *FunctionArgs)
	VisitFunctionBody(node *FunctionBody)
	VisitFunctionBodyEnd(node *FunctionBody)
	VisitFunctionCall(node *FunctionCall)
	VisitFunctionCallEnd(node *FunctionCall)
	VisitFunctionDeclaration(node *FunctionDeclaration)
	VisitFunctionDeclarationEnd(node *FunctionDeclaration)
	VisitFunctionName(node *FunctionName)
	VisitFunctionNameEnd(node *FunctionName)
	VisitGenericFor(node *GenericFor)
	VisitGenericForEnd(node *GenericFor)
	VisitIf(node *If)
	VisitIfEnd(node *If)
	VisitIndex(node *Index)
	VisitIndexEnd(node *Index)
	VisitLocalAssignment(node *LocalAssignment)
	VisitLocalAssignmentEnd(node *LocalAssignment)
	VisitLocalFunction(node *LocalFunction)
	VisitLocalFunctionEnd(node *LocalFunction)
	VisitLastStmt(node *LastStmt)
	VisitLastStmtEnd(node *LastStmt)
	VisitMethodCall(node *MethodCall)
	VisitMethodCallEnd(node *MethodCall)
	VisitNumericFor(node *NumericFor)
	VisitNumericForEnd(node *NumericFor)
	VisitParameter(node *Parameter)
	VisitParameterEnd(node *Parameter)
	VisitPrefix(node *Prefix)
	VisitPrefixEnd(node *Prefix)
	VisitReturn(node *Return)
	VisitReturnEnd(node *Return)
	VisitRepeat(node *Repeat)
	VisitRepeatEnd(node *Repeat)
	VisitStmt(node *Stmt)
	VisitStmtEnd(node *Stmt)
	VisitSuffix(node *Suffix)
	VisitSuffixEnd(node *Suffix)
	VisitTableConstructor(node *TableConstructor)
	VisitTableConstructorEnd(node *TableConstructor)
	VisitUnOp(node *UnOp)
	VisitUnOpEnd(node *UnOp)
	VisitValue(node *Value)
	VisitValueEnd(node *Value)
	VisitVar(node *Var)
	VisitVarEnd(node *Var)
	VisitVarExpression(node *VarExpression)
	VisitVarExpressionEnd(node *VarExpression)
	VisitWhile(node *While)
	VisitWhileEnd(node *While)

	VisitEof(ref *token.Reference)
	VisitIdentifier(ref *token.Reference)
	VisitMultiLineComment(ref *token.Reference)
	VisitNumber(ref *token.Reference)
	VisitSingleLineComment(ref *token.Reference)
	VisitStringLiteral(ref *token.Reference)
	VisitSymbol(ref *token.Reference)
	// VisitToken fires for every token, before its kind-specific hook.
	VisitToken(ref *token.Reference)
	VisitWhitespace(ref *token.Reference)
}

// VisitorMut is the mutating counterpart of Visitor: hooks receive mutable
// views and may rewrite nodes and token references in place. A rewrite made
// in an enter hook is visible to the descent into that node's fields and to
// the matching End hook. Embed NopVisitorMut for defaults.
type VisitorMut interface {
	VisitAnonymousCallMut(node *FunctionArgs)
	VisitAnonymousCallEndMut(node *FunctionArgs)
	VisitAssignmentMut(node *Assignment)
	VisitAssignmentEndMut(node *Assignment)
	VisitBinOpMut(node *BinOpRhs)
	VisitBinOpEndMut(node *BinOpRhs)
	VisitBlockMut(node *Block)
	VisitBlockEndMut(node *Block)
	VisitCallMut(node *Call)
	VisitCallEndMut(node *Call)
	VisitContainedSpanMut(node *ContainedSpan)
	VisitContainedSpanEndMut(node *ContainedSpan)
	VisitDoMut(node *Do)
	VisitDoEndMut(node *Do)
	VisitElseIfMut(node *ElseIf)
	VisitElseIfEndMut(node *ElseIf)
	VisitExpressionMut(node *Expression)
	VisitExpressionEndMut(node *Expression)
	VisitFieldMut(node *Field)
	VisitFieldEndMut(node *Field)
	VisitFunctionArgsMut(node *FunctionArgs)
	VisitFunctionArgsEndMut(node *FunctionArgs)
	VisitFunctionBodyMut(node *FunctionBody)
	VisitFunctionBodyEndMut(node *FunctionBody)
	VisitFunctionCallMut(node *FunctionCall)
	VisitFunctionCallEndMut(node *FunctionCall)
	VisitFunctionDeclarationMut(node *FunctionDeclaration)
	VisitFunctionDeclarationEndMut(node *FunctionDeclaration)
	VisitFunctionNameMut(node *FunctionName)
	VisitFunctionNameEndMut(node *FunctionName)
	VisitGenericForMut(node *GenericFor)
	VisitGenericForEndMut(node *GenericFor)
	VisitIfMut(node *If)
	VisitIfEndMut(node *If)
	VisitIndexMut(node *Index)
	VisitIndexEndMut(node *Index)
	VisitLocalAssignmentMut(node *LocalAssignment)
	VisitLocalAssignmentEndMut(node *LocalAssignment)
	VisitLocalFunctionMut(node *LocalFunction)
	VisitLocalFunctionEndMut(node *LocalFunction)
	VisitLastStmtMut(node *LastStmt)
	VisitLastStmtEndMut(node *LastStmt)
	VisitMethodCallMut(node *MethodCall)
	VisitMethodCallEndMut(node *MethodCall)
	VisitNumericForMut(node *NumericFor)
	VisitNumericForEndMut(node *NumericFor)
	VisitParameterMut(node *Parameter)
	VisitParameterEndMut(node *Parameter)
	VisitPrefixMut(node *Prefix)
	VisitPrefixEndMut(node *Prefix)
	VisitReturnMut(node *Return)
	VisitReturnEndMut(node *Return)
	VisitRepeatMut(node *Repeat)
	VisitRepeatEndMut(node *Repeat)
	VisitStmtMut(node *Stmt)
	VisitStmtEndMut(node *Stmt)
	VisitSuffixMut(node *Suffix)
	VisitSuffixEndMut(node *Suffix)
	VisitTableConstructorMut(node *TableConstructor)
	VisitTableConstructorEndMut(node *TableConstructor)
	VisitUnOpMut(node *UnOp)
	VisitUnOpEndMut(node *UnOp)
	VisitValueMut(node *Value)
	VisitValueEndMut(node *Value)
	VisitVarMut(node *Var)
	VisitVarEndMut(node *Var)
	VisitVarExpressionMut(node *VarExpression)
	VisitVarExpressionEndMut(node *VarExpression)
	VisitWhileMut(node *While)
	VisitWhileEndMut(node *While)

	VisitEofMut(ref *token.Reference)
	VisitIdentifierMut(ref *token.Reference)
	VisitMultiLineCommentMut(ref *token.Reference)
	VisitNumberMut(ref *token.Reference)
	VisitSingleLineCommentMut(ref *token.Reference)
	VisitStringLiteralMut(ref *token.Reference)
	VisitSymbolMut(ref *token.Reference)
	VisitTokenMut(ref *token.Reference)
	VisitWhitespaceMut(ref *token.Reference)
}

// NopVisitor implements Visitor with every hook a no-op. Embed it and
// override the hooks you need.
type NopVisitor struct{}

var _ Visitor = NopVisitor{}

func (NopVisitor) VisitAnonymousCall(*FunctionArgs)               {}
func (NopVisitor) VisitAnonymousCallEnd(*FunctionArgs)            {}
func (NopVisitor) VisitAssignment(*Assignment)                    {}
func (NopVisitor) VisitAssignmentEnd(*Assignment)                 {}
func (NopVisitor) VisitBinOp(*BinOpRhs)                           {}
func (NopVisitor) VisitBinOpEnd(*BinOpRhs)                        {}
func (NopVisitor) VisitBlock(*Block)                              {}
func (NopVisitor) VisitBlockEnd(*Block)                           {}
func (NopVisitor) VisitCall(*Call)                                {}
func (NopVisitor) VisitCallEnd(*Call)                             {}
func (NopVisitor) VisitContainedSpan(*ContainedSpan)              {}
func (NopVisitor) VisitContainedSpanEnd(*ContainedSpan)           {}
func (NopVisitor) VisitDo(*Do)                                    {}
func (NopVisitor) VisitDoEnd(*Do)                                 {}
func (NopVisitor) VisitElseIf(*ElseIf)                            {}
func (NopVisitor) VisitElseIfEnd(*ElseIf)                         {}
func (NopVisitor) VisitExpression(*Expression)                    {}
func (NopVisitor) VisitExpressionEnd(*Expression)                 {}
func (NopVisitor) VisitField(*Field)                              {}
func (NopVisitor) VisitFieldEnd(*Field)                           {}
func (NopVisitor) VisitFunctionArgs(*FunctionArgs)                {}
func (NopVisitor) VisitFunctionArgsEnd(*FunctionArgs)             {}
func (NopVisitor) VisitFunctionBody(*FunctionBody)                {}
func (NopVisitor) VisitFunctionBodyEnd(*FunctionBody)             {}
func (NopVisitor) VisitFunctionCall(*FunctionCall)                {}
func (NopVisitor) VisitFunctionCallEnd(*FunctionCall)             {}
func (NopVisitor) VisitFunctionDeclaration(*FunctionDeclaration)  {}
func (NopVisitor) VisitFunctionDeclarationEnd(*FunctionDeclaration) {}
func (NopVisitor) VisitFunctionName(*FunctionName)                {}
func (NopVisitor) VisitFunctionNameEnd(*FunctionName)             {}
func (NopVisitor) VisitGenericFor(*GenericFor)                    {}
func (NopVisitor) VisitGenericForEnd(*GenericFor)                 {}
func (NopVisitor) VisitIf(*If)                                    {}
func (NopVisitor) VisitIfEnd(*If)                                 {}
func (NopVisitor) VisitIndex(*Index)                              {}
func (NopVisitor) VisitIndexEnd(*Index)                           {}
func (NopVisitor) VisitLocalAssignment(*LocalAssignment)          {}
func (NopVisitor) VisitLocalAssignmentEnd(*LocalAssignment)       {}
func (NopVisitor) VisitLocalFunction(*LocalFunction)              {}
func (NopVisitor) VisitLocalFunctionEnd(*LocalFunction)           {}
func (NopVisitor) VisitLastStmt(*LastStmt)                        {}
func (NopVisitor) VisitLastStmtEnd(*LastStmt)                     {}
func (NopVisitor) VisitMethodCall(*MethodCall)                    {}
func (NopVisitor) VisitMethodCallEnd(*MethodCall)                 {}
func (NopVisitor) VisitNumericFor(*NumericFor)                    {}
func (NopVisitor) VisitNumericForEnd(*NumericFor)                 {}
func (NopVisitor) VisitParameter(*Parameter)                      {}
func (NopVisitor) VisitParameterEnd(*Parameter)                   {}
func (NopVisitor) VisitPrefix(*Prefix)                            {}
func (NopVisitor) VisitPrefixEnd(*Prefix)                         {}
func (NopVisitor) VisitReturn(*Return)                            {}
func (NopVisitor) VisitReturnEnd(*Return)                         {}
func (NopVisitor) VisitRepeat(*Repeat)                            {}
func (NopVisitor) VisitRepeatEnd(*Repeat)                         {}
func (NopVisitor) VisitStmt(*Stmt)                                {}
func (NopVisitor) VisitStmtEnd(*Stmt)                             {}
func (NopVisitor) VisitSuffix(*Suffix)                            {}
func (NopVisitor) VisitSuffixEnd(*Suffix)                         {}
func (NopVisitor) VisitTableConstructor(*TableConstructor)        {}
func (NopVisitor) VisitTableConstructorEnd(*TableConstructor)     {}
func (NopVisitor) VisitUnOp(*UnOp)                                {}
func (NopVisitor) VisitUnOpEnd(*UnOp)                             {}
func (NopVisitor) VisitValue(*Value)                              {}
func (NopVisitor) VisitValueEnd(*Value)                           {}
func (NopVisitor) VisitVar(*Var)                                  {}
func (NopVisitor) VisitVarEnd(*Var)                               {}
func (NopVisitor) VisitVarExpression(*VarExpression)              {}
func (NopVisitor) VisitVarExpressionEnd(*VarExpression)           {}
func (NopVisitor) VisitWhile(*While)                              {}
func (NopVisitor) VisitWhileEnd(*While)                           {}
func (NopVisitor) VisitEof(*token.Reference)                      {}
func (NopVisitor) VisitIdentifier(*token.Reference)               {}
func (NopVisitor) VisitMultiLineComment(*token.Reference)         {}
func (NopVisitor) VisitNumber(*token.Reference)                   {}
func (NopVisitor) VisitSingleLineComment(*token.Reference)        {}
func (NopVisitor) VisitStringLiteral(*token.Reference)            {}
func (NopVisitor) VisitSymbol(*token.Reference)                   {}
func (NopVisitor) VisitToken(*token.Reference)                    {}
func (NopVisitor) VisitWhitespace(*token.Reference)               {}

// NopVisitorMut implements VisitorMut with every hook a no-op.
type NopVisitorMut struct{}

var _ VisitorMut = NopVisitorMut{}

func (NopVisitorMut) VisitAnonymousCallMut(*FunctionArgs)               {}
func (NopVisitorMut) VisitAnonymousCallEndMut(*FunctionArgs)            {}
func (NopVisitorMut) VisitAssignmentMut(*Assignment)                    {}
func (NopVisitorMut) VisitAssignmentEndMut(*Assignment)                 {}
func (NopVisitorMut) VisitBinOpMut(*BinOpRhs)                           {}
func (NopVisitorMut) VisitBinOpEndMut(*BinOpRhs)                        {}
func (NopVisitorMut) VisitBlockMut(*Block)                              {}
func (NopVisitorMut) VisitBlockEndMut(*Block)                           {}
func (NopVisitorMut) VisitCallMut(*Call)                                {}
func (NopVisitorMut) VisitCallEndMut(*Call)                             {}
func (NopVisitorMut) VisitContainedSpanMut(*ContainedSpan)              {}
func (NopVisitorMut) VisitContainedSpanEndMut(*ContainedSpan)           {}
func (NopVisitorMut) VisitDoMut(*Do)                                    {}
func (NopVisitorMut) VisitDoEndMut(*Do)                                 {}
func (NopVisitorMut) VisitElseIfMut(*ElseIf)                            {}
func (NopVisitorMut) VisitElseIfEndMut(*ElseIf)                         {}
func (NopVisitorMut) VisitExpressionMut(*Expression)                    {}
func (NopVisitorMut) VisitExpressionEndMut(*Expression)                 {}
func (NopVisitorMut) VisitFieldMut(*Field)                              {}
func (NopVisitorMut) VisitFieldEndMut(*Field)                           {}
func (NopVisitorMut) VisitFunctionArgsMut(*FunctionArgs)                {}
func (NopVisitorMut) VisitFunctionArgsEndMut(*FunctionArgs)             {}
func (NopVisitorMut) VisitFunctionBodyMut(*FunctionBody)                {}
func (NopVisitorMut) VisitFunctionBodyEndMut(*FunctionBody)             {}
func (NopVisitorMut) VisitFunctionCallMut(*FunctionCall)                {}
func (NopVisitorMut) VisitFunctionCallEndMut(*FunctionCall)             {}
func (NopVisitorMut) VisitFunctionDeclarationMut(*FunctionDeclaration)  {}
func (NopVisitorMut) VisitFunctionDeclarationEndMut(*FunctionDeclaration) {}
func (NopVisitorMut) VisitFunctionNameMut(*FunctionName)                {}
func (NopVisitorMut) VisitFunctionNameEndMut(*FunctionName)             {}
func (NopVisitorMut) VisitGenericForMut(*GenericFor)                    {}
func (NopVisitorMut) VisitGenericForEndMut(*GenericFor)                 {}
func (NopVisitorMut) VisitIfMut(*If)                                    {}
func (NopVisitorMut) VisitIfEndMut(*If)                                 {}
func (NopVisitorMut) VisitIndexMut(*Index)                              {}
func (NopVisitorMut) VisitIndexEndMut(*Index)                           {}
func (NopVisitorMut) VisitLocalAssignmentMut(*LocalAssignment)          {}
func (NopVisitorMut) VisitLocalAssignmentEndMut(*LocalAssignment)       {}
func (NopVisitorMut) VisitLocalFunctionMut(*LocalFunction)              {}
func (NopVisitorMut) VisitLocalFunctionEndMut(*LocalFunction)           {}
func (NopVisitorMut) VisitLastStmtMut(*LastStmt)                        {}
func (NopVisitorMut) VisitLastStmtEndMut(*LastStmt)                     {}
func (NopVisitorMut) VisitMethodCallMut(*MethodCall)                    {}
func (NopVisitorMut) VisitMethodCallEndMut(*MethodCall)                 {}
func (NopVisitorMut) VisitNumericForMut(*NumericFor)                    {}
func (NopVisitorMut) VisitNumericForEndMut(*NumericFor)                 {}
func (NopVisitorMut) VisitParameterMut(*Parameter)                      {}
func (NopVisitorMut) VisitParameterEndMut(*Parameter)                   {}
func (NopVisitorMut) VisitPrefixMut(*Prefix)                            {}
func (NopVisitorMut) VisitPrefixEndMut(*Prefix)                         {}
func (NopVisitorMut) VisitReturnMut(*Return)                            {}
func (NopVisitorMut) VisitReturnEndMut(*Return)                         {}
func (NopVisitorMut) VisitRepeatMut(*Repeat)                            {}
func (NopVisitorMut) VisitRepeatEndMut(*Repeat)                         {}
func (NopVisitorMut) VisitStmtMut(*Stmt)                                {}
func (NopVisitorMut) VisitStmtEndMut(*Stmt)                             {}
func (NopVisitorMut) VisitSuffixMut(*Suffix)                            {}
func (NopVisitorMut) VisitSuffixEndMut(*Suffix)                         {}
func (NopVisitorMut) VisitTableConstructorMut(*TableConstructor)        {}
func (NopVisitorMut) VisitTableConstructorEndMut(*TableConstructor)     {}
func (NopVisitorMut) VisitUnOpMut(*UnOp)                                {}
func (NopVisitorMut) VisitUnOpEndMut(*UnOp)                             {}
func (NopVisitorMut) VisitValueMut(*Value)                              {}
func (NopVisitorMut) VisitValueEndMut(*Value)                           {}
func (NopVisitorMut) VisitVarMut(*Var)                                  {}
func (NopVisitorMut) VisitVarEndMut(*Var)                               {}
func (NopVisitorMut) VisitVarExpressionMut(*VarExpression)              {}
func (NopVisitorMut) VisitVarExpressionEndMut(*VarExpression)           {}
func (NopVisitorMut) VisitWhileMut(*While)                              {}
func (NopVisitorMut) VisitWhileEndMut(*While)                           {}
func (NopVisitorMut) VisitEofMut(*token.Reference)                      {}
func (NopVisitorMut) VisitIdentifierMut(*token.Reference)               {}
func (NopVisitorMut) VisitMultiLineCommentMut(*token.Reference)         {}
func (NopVisitorMut) VisitNumberMut(*token.Reference)                   {}
func (NopVisitorMut) VisitSingleLineCommentMut(*token.Reference)        {}
func (NopVisitorMut) VisitStringLiteralMut(*token.Reference)            {}
func (NopVisitorMut) VisitSymbolMut(*token.Reference)                   {}
func (NopVisitorMut) VisitTokenMut(*token.Reference)                    {}
func (NopVisitorMut) VisitWhitespaceMut(*token.Reference)               {}
