package parser

import (
	"moonwalk/ast"
	"moonwalk/diag"
	"moonwalk/token"
)

// parseTableConstructor parses `{ field {sep field} [sep] }` where sep is
// ',' or ';'.
func (p *Parser) parseTableConstructor() (ast.TableConstructor, bool) {
	lb := p.advance()
	var fields []ast.Pair[ast.Field, *token.Reference]
	for !p.atSym(token.RBrace) && !p.at(token.Eof) {
		field, ok := p.parseField()
		if !ok {
			return ast.TableConstructor{}, false
		}
		pair := ast.Pair[ast.Field, *token.Reference]{First: field}
		if p.atSym(token.Comma) || p.atSym(token.Semicolon) {
			pair.Second = p.advance()
			fields = append(fields, pair)
			continue
		}
		fields = append(fields, pair)
		break
	}
	rb, ok := p.expectSym(token.RBrace, diag.SynExpectedToken,
		"expected '}' to close the table",
		note(lb.Token().Span, "'{' opened here"))
	if !ok {
		return ast.TableConstructor{}, false
	}
	return ast.TableConstructor{
		Braces: ast.NewContainedSpan(lb, rb),
		Fields: fields,
	}, true
}

func (p *Parser) parseField() (ast.Field, bool) {
	if p.atSym(token.LBracket) {
		lb := p.advance()
		key, ok := p.parseExpression()
		if !ok {
			return ast.Field{}, false
		}
		rb, ok := p.expectSym(token.RBracket, diag.SynExpectedToken,
			"expected ']' to close the key",
			note(lb.Token().Span, "'[' opened here"))
		if !ok {
			return ast.Field{}, false
		}
		eq, ok := p.expectSym(token.Assign, diag.SynExpectedToken,
			"expected '=' after the key")
		if !ok {
			return ast.Field{}, false
		}
		value, ok := p.parseExpression()
		if !ok {
			return ast.Field{}, false
		}
		brackets := ast.NewContainedSpan(lb, rb)
		return ast.Field{Brackets: &brackets, Key: &key, Equal: eq, Value: value}, true
	}
	if p.at(token.Identifier) {
		if next := p.peekAfter(); next.Kind == token.Symbol && next.Sym == token.Assign {
			name := p.advance()
			eq := p.advance()
			value, ok := p.parseExpression()
			if !ok {
				return ast.Field{}, false
			}
			return ast.Field{Name: name, Equal: eq, Value: value}, true
		}
	}
	value, ok := p.parseExpression()
	if !ok {
		return ast.Field{}, false
	}
	return ast.Field{Value: value}, true
}
