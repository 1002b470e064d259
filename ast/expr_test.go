package ast_test

import (
	"testing"

	"moonwalk/ast"
	"moonwalk/token"
)

func binOp(sym token.Sym, text string) ast.BinOp {
	ref := token.NewDetachedReference(tok(token.Symbol, sym, text, 0))
	return ast.BinOp{Token: &ref}
}

func TestBinOpPrecedence(t *testing.T) {
	cases := []struct {
		sym   token.Sym
		text  string
		prec  uint8
		right bool
	}{
		{token.KwOr, "or", 1, false},
		{token.KwAnd, "and", 2, false},
		{token.Lt, "<", 3, false},
		{token.Gt, ">", 3, false},
		{token.LtEq, "<=", 3, false},
		{token.GtEq, ">=", 3, false},
		{token.TildeEq, "~=", 3, false},
		{token.EqEq, "==", 3, false},
		{token.DotDot, "..", 5, true},
		{token.Plus, "+", 6, false},
		{token.Minus, "-", 6, false},
		{token.Star, "*", 7, false},
		{token.Slash, "/", 7, false},
		{token.Percent, "%", 7, false},
		{token.Caret, "^", 10, true},
	}
	for _, tc := range cases {
		op := binOp(tc.sym, tc.text)
		if got := op.Precedence(); got != tc.prec {
			t.Errorf("%s: precedence %d, want %d", tc.text, got, tc.prec)
		}
		if got := op.IsRightAssociative(); got != tc.right {
			t.Errorf("%s: right-associative %v, want %v", tc.text, got, tc.right)
		}
	}
}

func TestBinOpPrecedenceOfNonOperator(t *testing.T) {
	op := binOp(token.Comma, ",")
	if got := op.Precedence(); got != 0 {
		t.Fatalf("comma precedence %d, want 0", got)
	}
	if (ast.BinOp{}).Precedence() != 0 {
		t.Fatal("zero BinOp should have precedence 0")
	}
}
