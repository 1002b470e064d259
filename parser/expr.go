package parser

import (
	"fmt"

	"moonwalk/ast"
	"moonwalk/diag"
	"moonwalk/token"
)

type exprPair = ast.Pair[ast.Expression, *token.Reference]

// parseExpression parses one expression. Binary chains lean right: `a + b + c`
// parses as a value with a tail holding `b + c`, and precedence is left to
// consumers via BinOp.Precedence. A unary operator applies to the whole
// expression after it.
func (p *Parser) parseExpression() (ast.Expression, bool) {
	if p.atUnOp() {
		op := ast.UnOp{Token: p.advance()}
		sub, ok := p.parseExpression()
		if !ok {
			return ast.Expression{}, false
		}
		return ast.Expression{UnOp: &op, Expression: &sub}, true
	}
	val, ok := p.parseValue()
	if !ok {
		return ast.Expression{}, false
	}
	expr := ast.Expression{Value: &val}
	if p.atBinOp() {
		op := ast.BinOp{Token: p.advance()}
		rhs, ok := p.parseExpression()
		if !ok {
			return ast.Expression{}, false
		}
		expr.BinOp = &ast.BinOpRhs{BinOp: op, Rhs: &rhs}
	}
	return expr, true
}

func (p *Parser) atUnOp() bool {
	tok := p.peek()
	if tok.Kind != token.Symbol {
		return false
	}
	switch tok.Sym {
	case token.KwNot, token.Hash, token.Minus:
		return true
	}
	return false
}

func (p *Parser) atBinOp() bool {
	tok := p.peek()
	if tok.Kind != token.Symbol {
		return false
	}
	switch tok.Sym {
	case token.Plus, token.Minus, token.Star, token.Slash, token.Percent,
		token.Caret, token.DotDot, token.Lt, token.Gt, token.LtEq,
		token.GtEq, token.TildeEq, token.EqEq, token.KwAnd, token.KwOr:
		return true
	}
	return false
}

// parseExprList parses a comma-separated expression list. Separators attach
// to the expression before them.
func (p *Parser) parseExprList() ([]exprPair, bool) {
	expr, ok := p.parseExpression()
	if !ok {
		return nil, false
	}
	list := []exprPair{{First: expr}}
	for p.atSym(token.Comma) {
		list[len(list)-1].Second = p.advance()
		next, ok := p.parseExpression()
		if !ok {
			return list, false
		}
		list = append(list, exprPair{First: next})
	}
	return list, true
}

func (p *Parser) parseValue() (ast.Value, bool) {
	tok := p.peek()
	switch tok.Kind {
	case token.Number:
		return ast.Value{Number: p.advance()}, true
	case token.StringLiteral:
		return ast.Value{String: p.advance()}, true
	case token.Identifier:
		return p.parseChainValue()
	case token.Symbol:
		switch tok.Sym {
		case token.KwTrue, token.KwFalse, token.KwNil, token.DotDotDot:
			return ast.Value{Symbol: p.advance()}, true
		case token.KwFunction:
			fn := p.advance()
			body, ok := p.parseFunctionBody(fn.Token().Span)
			if !ok {
				return ast.Value{}, false
			}
			lit := ast.FunctionLiteral{FunctionToken: fn, Body: body}
			return ast.Value{Function: &lit}, true
		case token.LBrace:
			tc, ok := p.parseTableConstructor()
			if !ok {
				return ast.Value{}, false
			}
			return ast.Value{TableConstructor: &tc}, true
		case token.LParen:
			return p.parseChainValue()
		}
	}
	p.err(diag.SynExpectedExpression, fmt.Sprintf("expected an expression, got %s", describe(tok)))
	return ast.Value{}, false
}

// parseChainValue parses a chain in value position and classifies it: a
// bare name or an index-ended chain is a variable, a call-ended chain is a
// function call, and bare parentheses stay a parenthesized expression.
func (p *Parser) parseChainValue() (ast.Value, bool) {
	prefix, suffixes, ok := p.parseChain()
	if !ok {
		return ast.Value{}, false
	}
	if len(suffixes) == 0 {
		if prefix.Name != nil {
			return ast.Value{Var: &ast.Var{Name: prefix.Name}}, true
		}
		// bare parentheses; unwrap the paren value parseChain built
		return *prefix.Expression.Value, true
	}
	if endsInCall(suffixes) {
		call := ast.FunctionCall{Prefix: prefix, Suffixes: suffixes}
		return ast.Value{FunctionCall: &call}, true
	}
	varExpr := ast.VarExpression{Prefix: prefix, Suffixes: suffixes}
	return ast.Value{Var: &ast.Var{Expression: &varExpr}}, true
}

// parseChain parses a prefix and every suffix after it. What the chain means
// depends on where it ends; callers classify.
func (p *Parser) parseChain() (ast.Prefix, []ast.Suffix, bool) {
	var prefix ast.Prefix
	switch {
	case p.at(token.Identifier):
		prefix.Name = p.advance()
	case p.atSym(token.LParen):
		paren, ok := p.parseParenExpression()
		if !ok {
			return prefix, nil, false
		}
		val := ast.Value{Paren: &paren}
		prefix.Expression = &ast.Expression{Value: &val}
	default:
		p.err(diag.SynExpectedExpression, fmt.Sprintf("expected an expression, got %s", describe(p.peek())))
		return prefix, nil, false
	}
	var suffixes []ast.Suffix
	for p.atSuffix() {
		suffix, ok := p.parseSuffix()
		if !ok {
			return prefix, suffixes, false
		}
		suffixes = append(suffixes, suffix)
	}
	return prefix, suffixes, true
}

func (p *Parser) atSuffix() bool {
	tok := p.peek()
	if tok.Kind == token.StringLiteral {
		return true
	}
	if tok.Kind != token.Symbol {
		return false
	}
	switch tok.Sym {
	case token.Dot, token.LBracket, token.Colon, token.LParen, token.LBrace:
		return true
	}
	return false
}

func (p *Parser) parseSuffix() (ast.Suffix, bool) {
	switch {
	case p.atSym(token.Dot):
		dot := p.advance()
		name, ok := p.expectIdent("expected a name after '.'")
		if !ok {
			return ast.Suffix{}, false
		}
		return ast.Suffix{Index: &ast.Index{Dot: dot, Name: name}}, true
	case p.atSym(token.LBracket):
		lb := p.advance()
		expr, ok := p.parseExpression()
		if !ok {
			return ast.Suffix{}, false
		}
		rb, ok := p.expectSym(token.RBracket, diag.SynExpectedToken,
			"expected ']' to close the index",
			note(lb.Token().Span, "'[' opened here"))
		if !ok {
			return ast.Suffix{}, false
		}
		brackets := ast.NewContainedSpan(lb, rb)
		return ast.Suffix{Index: &ast.Index{Brackets: &brackets, Expression: &expr}}, true
	case p.atSym(token.Colon):
		colon := p.advance()
		name, ok := p.expectIdent("expected a method name after ':'")
		if !ok {
			return ast.Suffix{}, false
		}
		args, ok := p.parseFunctionArgs()
		if !ok {
			return ast.Suffix{}, false
		}
		method := ast.MethodCall{ColonToken: colon, Name: name, Args: args}
		return ast.Suffix{Call: &ast.Call{MethodCall: &method}}, true
	default:
		args, ok := p.parseFunctionArgs()
		if !ok {
			return ast.Suffix{}, false
		}
		return ast.Suffix{Call: &ast.Call{AnonymousCall: &args}}, true
	}
}

func (p *Parser) parseFunctionArgs() (ast.FunctionArgs, bool) {
	switch {
	case p.atSym(token.LParen):
		lp := p.advance()
		var args ast.FunctionArgs
		if !p.atSym(token.RParen) {
			list, ok := p.parseExprList()
			if !ok {
				return ast.FunctionArgs{}, false
			}
			args.Arguments = list
		}
		rp, ok := p.expectSym(token.RParen, diag.SynExpectedToken,
			"expected ')' to close the call",
			note(lp.Token().Span, "'(' opened here"))
		if !ok {
			return ast.FunctionArgs{}, false
		}
		parens := ast.NewContainedSpan(lp, rp)
		args.Parentheses = &parens
		return args, true
	case p.at(token.StringLiteral):
		return ast.FunctionArgs{String: p.advance()}, true
	case p.atSym(token.LBrace):
		tc, ok := p.parseTableConstructor()
		if !ok {
			return ast.FunctionArgs{}, false
		}
		return ast.FunctionArgs{TableConstructor: &tc}, true
	}
	p.err(diag.SynExpectedToken, "expected call arguments")
	return ast.FunctionArgs{}, false
}

func (p *Parser) parseParenExpression() (ast.ParenExpression, bool) {
	lp := p.advance()
	expr, ok := p.parseExpression()
	if !ok {
		return ast.ParenExpression{}, false
	}
	rp, ok := p.expectSym(token.RParen, diag.SynExpectedToken,
		"expected ')' to close the expression",
		note(lp.Token().Span, "'(' opened here"))
	if !ok {
		return ast.ParenExpression{}, false
	}
	return ast.ParenExpression{
		Contained:  ast.NewContainedSpan(lp, rp),
		Expression: &expr,
	}, true
}

// parseExprStmt parses a statement that begins with a chain: a call
// statement or the first target of an assignment.
func (p *Parser) parseExprStmt() (ast.Stmt, bool) {
	prefix, suffixes, ok := p.parseChain()
	if !ok {
		return ast.Stmt{}, false
	}
	if endsInCall(suffixes) {
		call := ast.FunctionCall{Prefix: prefix, Suffixes: suffixes}
		return ast.Stmt{FunctionCall: &call}, true
	}
	first, ok := p.chainVar(prefix, suffixes)
	if !ok {
		return ast.Stmt{}, false
	}
	var assign ast.Assignment
	assign.VarList = append(assign.VarList, ast.Pair[ast.Var, *token.Reference]{First: first})
	for p.atSym(token.Comma) {
		assign.VarList[len(assign.VarList)-1].Second = p.advance()
		prefix, suffixes, ok := p.parseChain()
		if !ok {
			return ast.Stmt{}, false
		}
		next, ok := p.chainVar(prefix, suffixes)
		if !ok {
			return ast.Stmt{}, false
		}
		assign.VarList = append(assign.VarList, ast.Pair[ast.Var, *token.Reference]{First: next})
	}
	assign.Equal, ok = p.expectSym(token.Assign, diag.SynExpectedToken,
		"expected '=' after the assignment targets")
	if !ok {
		return ast.Stmt{}, false
	}
	assign.ExprList, ok = p.parseExprList()
	if !ok {
		return ast.Stmt{}, false
	}
	return ast.Stmt{Assignment: &assign}, true
}

// chainVar converts a parsed chain into an assignment target. A bare name
// or a chain ending in an index is assignable; anything else is not.
func (p *Parser) chainVar(prefix ast.Prefix, suffixes []ast.Suffix) (ast.Var, bool) {
	if len(suffixes) == 0 {
		if prefix.Name != nil {
			return ast.Var{Name: prefix.Name}, true
		}
		p.report(diag.SynUnexpectedToken, diag.SevError, p.lastSpan,
			"cannot assign to a parenthesized expression", nil)
		return ast.Var{}, false
	}
	if suffixes[len(suffixes)-1].Index != nil {
		varExpr := ast.VarExpression{Prefix: prefix, Suffixes: suffixes}
		return ast.Var{Expression: &varExpr}, true
	}
	p.report(diag.SynUnexpectedToken, diag.SevError, p.lastSpan,
		"cannot assign to a function call", nil)
	return ast.Var{}, false
}

func endsInCall(suffixes []ast.Suffix) bool {
	return len(suffixes) > 0 && suffixes[len(suffixes)-1].Call != nil
}

func describe(tok token.Token) string {
	if tok.Kind == token.Eof {
		return "the end of the chunk"
	}
	return fmt.Sprintf("%q", tok.Text)
}
