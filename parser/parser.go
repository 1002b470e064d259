package parser

import (
	"fmt"

	"moonwalk/ast"
	"moonwalk/diag"
	"moonwalk/source"
	"moonwalk/token"
)

// Options configures a parse.
type Options struct {
	// MaxErrors stops error reporting after this many syntax errors;
	// 0 means no limit. Crossing the limit emits SynTooManyErrors once
	// and abandons the parse.
	MaxErrors uint
	Reporter  diag.Reporter
}

// Parser walks the arena's significant tokens and builds the node
// structure. Token references handed to nodes borrow from the arena;
// the arena itself is never modified.
type Parser struct {
	arena    *token.Arena
	pos      int
	opts     Options
	errs     uint
	tooMany  bool
	lastSpan source.Span
}

// Parse builds a tree over arena. The arena must come from the lexer: all
// bytes covered, ending with an Eof token. Parse always returns a tree;
// syntax errors go to the reporter and the tree holds what parsed before
// and after them.
func Parse(arena *token.Arena, opts Options) *ast.Ast {
	p := &Parser{arena: arena, opts: opts}
	p.skipTrivia()
	blk := p.parseBlock()
	if !p.at(token.Eof) && !p.tooMany {
		p.err(diag.SynUnexpectedToken, fmt.Sprintf("expected the end of the chunk, got %s", describe(p.peek())))
	}
	return ast.New(arena, blk)
}

// peek returns the current significant token.
func (p *Parser) peek() token.Token {
	return p.arena.At(p.pos)
}

// peekAfter returns the significant token after the current one.
func (p *Parser) peekAfter() token.Token {
	i := p.pos + 1
	for i < p.arena.Len() && p.arena.At(i).IsTrivia() {
		i++
	}
	if i >= p.arena.Len() {
		i = p.arena.Len() - 1
	}
	return p.arena.At(i)
}

func (p *Parser) skipTrivia() {
	for p.pos < p.arena.Len() && p.arena.At(p.pos).IsTrivia() {
		p.pos++
	}
}

// advance returns a borrowed reference to the current token and moves to
// the next significant one. At Eof it stays put, so callers can never run
// off the arena.
func (p *Parser) advance() *token.Reference {
	ref := token.NewReference(p.arena, p.pos)
	tok := p.arena.At(p.pos)
	if tok.Kind != token.Eof {
		p.lastSpan = tok.Span
		p.pos++
		p.skipTrivia()
	}
	return &ref
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) atSym(s token.Sym) bool {
	tok := p.peek()
	return tok.Kind == token.Symbol && tok.Sym == s
}

// expectSym consumes the symbol or reports code with msg. Extra notes may
// point at related spans, like where an unclosed block was opened.
func (p *Parser) expectSym(s token.Sym, code diag.Code, msg string, notes ...diag.Note) (*token.Reference, bool) {
	if p.atSym(s) {
		return p.advance(), true
	}
	p.report(code, diag.SevError, p.peek().Span, msg, notes)
	return nil, false
}

// expectIdent consumes an identifier or reports msg.
func (p *Parser) expectIdent(msg string) (*token.Reference, bool) {
	if p.at(token.Identifier) {
		return p.advance(), true
	}
	p.report(diag.SynExpectedIdentifier, diag.SevError, p.peek().Span, msg, nil)
	return nil, false
}

func (p *Parser) err(code diag.Code, msg string) {
	p.report(code, diag.SevError, p.peek().Span, msg, nil)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string, notes []diag.Note) {
	if sev == diag.SevError {
		p.errs++
		if p.opts.MaxErrors != 0 && p.errs > p.opts.MaxErrors && !p.tooMany {
			p.tooMany = true
			if p.opts.Reporter != nil {
				p.opts.Reporter.Report(diag.SynTooManyErrors, diag.SevError, sp, "too many syntax errors", nil)
			}
			return
		}
	}
	if p.tooMany || p.opts.Reporter == nil {
		return
	}
	p.opts.Reporter.Report(code, sev, sp, msg, notes)
}

// note builds a secondary span annotation for a report.
func note(sp source.Span, msg string) diag.Note {
	return diag.Note{Span: sp, Msg: msg}
}

// atBlockEnd reports whether the current token terminates a block: end,
// else, elseif, until, or the end of the chunk.
func (p *Parser) atBlockEnd() bool {
	if p.at(token.Eof) {
		return true
	}
	tok := p.peek()
	if tok.Kind != token.Symbol {
		return false
	}
	switch tok.Sym {
	case token.KwEnd, token.KwElse, token.KwElseif, token.KwUntil:
		return true
	}
	return false
}

// atStmtStarter reports whether the current token can begin a statement.
func (p *Parser) atStmtStarter() bool {
	tok := p.peek()
	if tok.Kind == token.Identifier {
		return true
	}
	if tok.Kind != token.Symbol {
		return false
	}
	switch tok.Sym {
	case token.KwDo, token.KwWhile, token.KwRepeat, token.KwIf, token.KwFor,
		token.KwFunction, token.KwLocal, token.KwReturn, token.KwBreak, token.LParen:
		return true
	}
	return false
}

// resyncStmt recovers after a failed statement: it skips the offending
// token, then scans for a semicolon (consumed), a statement starter, or a
// block end. It returns false when the block cannot continue.
func (p *Parser) resyncStmt() bool {
	if p.tooMany {
		return false
	}
	p.advance()
	for {
		if p.tooMany || p.atBlockEnd() {
			return false
		}
		if p.atSym(token.Semicolon) {
			p.advance()
			return true
		}
		if p.atStmtStarter() {
			return true
		}
		p.advance()
	}
}
