package parser

import (
	"moonwalk/ast"
	"moonwalk/diag"
	"moonwalk/source"
	"moonwalk/token"
)

type refPair = ast.Pair[*token.Reference, *token.Reference]

// parseBlock parses statements until a block terminator. Failed statements
// are dropped after resync; the block keeps everything that parsed.
func (p *Parser) parseBlock() ast.Block {
	var blk ast.Block
	for {
		if p.tooMany || p.atBlockEnd() {
			return blk
		}
		if p.atSym(token.KwReturn) || p.atSym(token.KwBreak) {
			last, ok := p.parseLastStmt()
			if !ok {
				p.resyncStmt()
				return blk
			}
			pair := ast.Pair[ast.LastStmt, *token.Reference]{First: last}
			if p.atSym(token.Semicolon) {
				pair.Second = p.advance()
			}
			blk.LastStmt = &pair
			// nothing may follow; the enclosing terminator check reports
			// anything that does
			return blk
		}
		st, ok := p.parseStmt()
		if !ok {
			if !p.resyncStmt() {
				return blk
			}
			continue
		}
		pair := ast.Pair[ast.Stmt, *token.Reference]{First: st}
		if p.atSym(token.Semicolon) {
			pair.Second = p.advance()
		}
		blk.Stmts = append(blk.Stmts, pair)
	}
}

func (p *Parser) parseStmt() (ast.Stmt, bool) {
	tok := p.peek()
	if tok.Kind == token.Symbol {
		switch tok.Sym {
		case token.KwDo:
			d, ok := p.parseDo()
			if !ok {
				return ast.Stmt{}, false
			}
			return ast.Stmt{Do: &d}, true
		case token.KwWhile:
			w, ok := p.parseWhile()
			if !ok {
				return ast.Stmt{}, false
			}
			return ast.Stmt{While: &w}, true
		case token.KwRepeat:
			r, ok := p.parseRepeat()
			if !ok {
				return ast.Stmt{}, false
			}
			return ast.Stmt{Repeat: &r}, true
		case token.KwIf:
			f, ok := p.parseIf()
			if !ok {
				return ast.Stmt{}, false
			}
			return ast.Stmt{If: &f}, true
		case token.KwFor:
			return p.parseFor()
		case token.KwFunction:
			f, ok := p.parseFunctionDeclaration()
			if !ok {
				return ast.Stmt{}, false
			}
			return ast.Stmt{FunctionDeclaration: &f}, true
		case token.KwLocal:
			return p.parseLocal()
		case token.Semicolon:
			p.err(diag.SynUnexpectedToken, "unexpected ';'; a semicolon may only follow a statement")
			return ast.Stmt{}, false
		}
	}
	return p.parseExprStmt()
}

func (p *Parser) parseLastStmt() (ast.LastStmt, bool) {
	if p.atSym(token.KwBreak) {
		return ast.LastStmt{Break: p.advance()}, true
	}
	ret := ast.Return{Token: p.advance()}
	if !p.atBlockEnd() && !p.atSym(token.Semicolon) {
		exprs, ok := p.parseExprList()
		if !ok {
			return ast.LastStmt{}, false
		}
		ret.Returns = exprs
	}
	return ast.LastStmt{Return: &ret}, true
}

func (p *Parser) parseDo() (ast.Do, bool) {
	doTok := p.advance()
	blk := p.parseBlock()
	end, ok := p.expectSym(token.KwEnd, diag.SynExpectedToken,
		"expected 'end' to close the block",
		note(doTok.Token().Span, "'do' opened here"))
	if !ok {
		return ast.Do{}, false
	}
	return ast.Do{DoToken: doTok, Block: ast.NewCow(blk), EndToken: end}, true
}

func (p *Parser) parseWhile() (ast.While, bool) {
	while := p.advance()
	cond, ok := p.parseExpression()
	if !ok {
		return ast.While{}, false
	}
	doTok, ok := p.expectSym(token.KwDo, diag.SynExpectedToken,
		"expected 'do' after the loop condition")
	if !ok {
		return ast.While{}, false
	}
	blk := p.parseBlock()
	end, ok := p.expectSym(token.KwEnd, diag.SynExpectedToken,
		"expected 'end' to close the loop",
		note(while.Token().Span, "'while' opened here"))
	if !ok {
		return ast.While{}, false
	}
	return ast.While{
		WhileToken: while,
		Condition:  cond,
		DoToken:    doTok,
		Block:      ast.NewCow(blk),
		EndToken:   end,
	}, true
}

func (p *Parser) parseRepeat() (ast.Repeat, bool) {
	repeat := p.advance()
	blk := p.parseBlock()
	until, ok := p.expectSym(token.KwUntil, diag.SynExpectedToken,
		"expected 'until' to close the loop",
		note(repeat.Token().Span, "'repeat' opened here"))
	if !ok {
		return ast.Repeat{}, false
	}
	cond, ok := p.parseExpression()
	if !ok {
		return ast.Repeat{}, false
	}
	return ast.Repeat{
		RepeatToken: repeat,
		Block:       ast.NewCow(blk),
		UntilToken:  until,
		Until:       cond,
	}, true
}

func (p *Parser) parseIf() (ast.If, bool) {
	ifTok := p.advance()
	cond, ok := p.parseExpression()
	if !ok {
		return ast.If{}, false
	}
	then, ok := p.expectSym(token.KwThen, diag.SynExpectedToken,
		"expected 'then' after the condition")
	if !ok {
		return ast.If{}, false
	}
	node := ast.If{
		IfToken:   ifTok,
		Condition: cond,
		ThenToken: then,
		Block:     ast.NewCow(p.parseBlock()),
	}
	for p.atSym(token.KwElseif) {
		arm := ast.ElseIf{ElseIfToken: p.advance()}
		arm.Condition, ok = p.parseExpression()
		if !ok {
			return ast.If{}, false
		}
		arm.ThenToken, ok = p.expectSym(token.KwThen, diag.SynExpectedToken,
			"expected 'then' after the condition")
		if !ok {
			return ast.If{}, false
		}
		arm.Block = ast.NewCow(p.parseBlock())
		node.ElseIfs = append(node.ElseIfs, arm)
	}
	if p.atSym(token.KwElse) {
		node.ElseToken = p.advance()
		node.ElseBlock = ast.NewCow(p.parseBlock())
	}
	node.EndToken, ok = p.expectSym(token.KwEnd, diag.SynExpectedToken,
		"expected 'end' to close the if statement",
		note(ifTok.Token().Span, "'if' opened here"))
	if !ok {
		return ast.If{}, false
	}
	return node, true
}

func (p *Parser) parseFor() (ast.Stmt, bool) {
	forTok := p.advance()
	first, ok := p.expectIdent("expected a name after 'for'")
	if !ok {
		return ast.Stmt{}, false
	}
	if p.atSym(token.Assign) {
		nf, ok := p.parseNumericFor(forTok, first)
		if !ok {
			return ast.Stmt{}, false
		}
		return ast.Stmt{NumericFor: &nf}, true
	}
	gf, ok := p.parseGenericFor(forTok, first)
	if !ok {
		return ast.Stmt{}, false
	}
	return ast.Stmt{GenericFor: &gf}, true
}

func (p *Parser) parseNumericFor(forTok, name *token.Reference) (ast.NumericFor, bool) {
	node := ast.NumericFor{
		ForToken:      forTok,
		IndexVariable: name,
		Equal:         p.advance(),
	}
	var ok bool
	node.Start, ok = p.parseExpression()
	if !ok {
		return ast.NumericFor{}, false
	}
	node.StartEndComma, ok = p.expectSym(token.Comma, diag.SynExpectedToken,
		"expected ',' after the loop start value")
	if !ok {
		return ast.NumericFor{}, false
	}
	node.End, ok = p.parseExpression()
	if !ok {
		return ast.NumericFor{}, false
	}
	if p.atSym(token.Comma) {
		node.EndStepComma = p.advance()
		step, ok := p.parseExpression()
		if !ok {
			return ast.NumericFor{}, false
		}
		node.Step = &step
	}
	node.DoToken, ok = p.expectSym(token.KwDo, diag.SynExpectedToken,
		"expected 'do' after the loop bounds")
	if !ok {
		return ast.NumericFor{}, false
	}
	node.Block = ast.NewCow(p.parseBlock())
	node.EndToken, ok = p.expectSym(token.KwEnd, diag.SynExpectedToken,
		"expected 'end' to close the loop",
		note(forTok.Token().Span, "'for' opened here"))
	if !ok {
		return ast.NumericFor{}, false
	}
	return node, true
}

func (p *Parser) parseGenericFor(forTok, first *token.Reference) (ast.GenericFor, bool) {
	node := ast.GenericFor{ForToken: forTok}
	var ok bool
	node.Names, ok = p.parseNameList(first)
	if !ok {
		return ast.GenericFor{}, false
	}
	node.InToken, ok = p.expectSym(token.KwIn, diag.SynExpectedToken,
		"expected '=' or 'in' after the loop names")
	if !ok {
		return ast.GenericFor{}, false
	}
	node.ExprList, ok = p.parseExprList()
	if !ok {
		return ast.GenericFor{}, false
	}
	node.DoToken, ok = p.expectSym(token.KwDo, diag.SynExpectedToken,
		"expected 'do' after the loop iterators")
	if !ok {
		return ast.GenericFor{}, false
	}
	node.Block = ast.NewCow(p.parseBlock())
	node.EndToken, ok = p.expectSym(token.KwEnd, diag.SynExpectedToken,
		"expected 'end' to close the loop",
		note(forTok.Token().Span, "'for' opened here"))
	if !ok {
		return ast.GenericFor{}, false
	}
	return node, true
}

func (p *Parser) parseFunctionDeclaration() (ast.FunctionDeclaration, bool) {
	fn := p.advance()
	name, ok := p.parseFunctionName()
	if !ok {
		return ast.FunctionDeclaration{}, false
	}
	body, ok := p.parseFunctionBody(fn.Token().Span)
	if !ok {
		return ast.FunctionDeclaration{}, false
	}
	return ast.FunctionDeclaration{FunctionToken: fn, Name: name, Body: body}, true
}

func (p *Parser) parseFunctionName() (ast.FunctionName, bool) {
	var fn ast.FunctionName
	name, ok := p.expectIdent("expected a function name after 'function'")
	if !ok {
		return fn, false
	}
	fn.Names = append(fn.Names, refPair{First: name})
	for p.atSym(token.Dot) {
		fn.Names[len(fn.Names)-1].Second = p.advance()
		next, ok := p.expectIdent("expected a name after '.'")
		if !ok {
			return fn, false
		}
		fn.Names = append(fn.Names, refPair{First: next})
	}
	if p.atSym(token.Colon) {
		colon := p.advance()
		method, ok := p.expectIdent("expected a method name after ':'")
		if !ok {
			return fn, false
		}
		fn.Method = &refPair{First: colon, Second: method}
	}
	return fn, true
}

// parseFunctionBody parses `(params) block end`. opener is the span of the
// function keyword, used to point at the unclosed function on error.
func (p *Parser) parseFunctionBody(opener source.Span) (ast.FunctionBody, bool) {
	var body ast.FunctionBody
	lp, ok := p.expectSym(token.LParen, diag.SynExpectedToken,
		"expected '(' to begin the parameter list")
	if !ok {
		return body, false
	}
	if !p.atSym(token.RParen) {
		for {
			var param ast.Parameter
			switch {
			case p.at(token.Identifier):
				param.Name = p.advance()
			case p.atSym(token.DotDotDot):
				param.Ellipse = p.advance()
			default:
				p.err(diag.SynExpectedIdentifier, "expected a parameter name or '...'")
				return body, false
			}
			pair := ast.Pair[ast.Parameter, *token.Reference]{First: param}
			if !p.atSym(token.Comma) {
				body.Parameters = append(body.Parameters, pair)
				break
			}
			if param.Ellipse != nil {
				p.err(diag.SynUnexpectedToken, "'...' must be the last parameter")
				return body, false
			}
			pair.Second = p.advance()
			body.Parameters = append(body.Parameters, pair)
		}
	}
	rp, ok := p.expectSym(token.RParen, diag.SynExpectedToken,
		"expected ')' to close the parameter list",
		note(lp.Token().Span, "parameter list opened here"))
	if !ok {
		return body, false
	}
	body.Parentheses = ast.NewContainedSpan(lp, rp)
	body.Block = ast.NewCow(p.parseBlock())
	body.EndToken, ok = p.expectSym(token.KwEnd, diag.SynExpectedToken,
		"expected 'end' to close the function",
		note(opener, "function started here"))
	if !ok {
		return body, false
	}
	return body, true
}

func (p *Parser) parseLocal() (ast.Stmt, bool) {
	local := p.advance()
	if p.atSym(token.KwFunction) {
		fn := p.advance()
		name, ok := p.expectIdent("expected a name after 'local function'")
		if !ok {
			return ast.Stmt{}, false
		}
		body, ok := p.parseFunctionBody(fn.Token().Span)
		if !ok {
			return ast.Stmt{}, false
		}
		lf := ast.LocalFunction{
			LocalToken:    local,
			FunctionToken: fn,
			Name:          name,
			Body:          body,
		}
		return ast.Stmt{LocalFunction: &lf}, true
	}
	first, ok := p.expectIdent("expected a name after 'local'")
	if !ok {
		return ast.Stmt{}, false
	}
	la := ast.LocalAssignment{LocalToken: local}
	la.Names, ok = p.parseNameList(first)
	if !ok {
		return ast.Stmt{}, false
	}
	if p.atSym(token.Assign) {
		la.Equal = p.advance()
		la.ExprList, ok = p.parseExprList()
		if !ok {
			return ast.Stmt{}, false
		}
	}
	return ast.Stmt{LocalAssignment: &la}, true
}

// parseNameList parses the rest of a comma-separated name list whose first
// name was already consumed. Separators attach to the name before them.
func (p *Parser) parseNameList(first *token.Reference) ([]refPair, bool) {
	names := []refPair{{First: first}}
	for p.atSym(token.Comma) {
		names[len(names)-1].Second = p.advance()
		next, ok := p.expectIdent("expected a name after ','")
		if !ok {
			return names, false
		}
		names = append(names, refPair{First: next})
	}
	return names, true
}
