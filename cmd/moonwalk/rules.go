package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"moonwalk"
	"moonwalk/ast"
	"moonwalk/lexer"
	"moonwalk/token"
)

type renameRule struct {
	From string `toml:"from"`
	To   string `toml:"to"`
}

type renameRuleFile struct {
	Rename []renameRule `toml:"rename"`
}

// loadRenameRules reads [[rename]] entries from a TOML file. Every
// entry must carry a from and a to, and both must lex as a single Lua
// identifier.
func loadRenameRules(path string) ([]renameRule, error) {
	var cfg renameRuleFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("rename") || len(cfg.Rename) == 0 {
		return nil, fmt.Errorf("%s: missing [[rename]] entries", path)
	}
	for i, rule := range cfg.Rename {
		if err := validateRule(rule); err != nil {
			return nil, fmt.Errorf("%s: rename entry %d: %w", path, i+1, err)
		}
	}
	return cfg.Rename, nil
}

func validateRule(r renameRule) error {
	if strings.TrimSpace(r.From) == "" {
		return fmt.Errorf("missing from")
	}
	if strings.TrimSpace(r.To) == "" {
		return fmt.Errorf("missing to")
	}
	if !isLuaIdentifier(r.From) {
		return fmt.Errorf("from %q is not a Lua identifier", r.From)
	}
	if !isLuaIdentifier(r.To) {
		return fmt.Errorf("to %q is not a Lua identifier", r.To)
	}
	return nil
}

// isLuaIdentifier asks the lexer rather than guessing with a pattern,
// so keywords and malformed names fail the same way they would in
// source.
func isLuaIdentifier(name string) bool {
	toks := lexer.Tokenize([]byte(name), lexer.Options{})
	return len(toks) == 2 && toks[0].Kind == token.Identifier && toks[0].Text == name
}

// identRenamer rewrites identifier tokens whose text matches a rule.
// Rewrites land only on references held by tree nodes.
type identRenamer struct {
	ast.NopVisitorMut
	table map[string]string
}

func (r *identRenamer) VisitIdentifierMut(ref *token.Reference) {
	tok := ref.Token()
	if to, ok := r.table[tok.Text]; ok {
		tok.Text = to
		ref.SetToken(tok)
	}
}

// renameTally counts rewritten tokens after the fact: a rewrite leaves
// a detached reference that still remembers its arena slot.
type renameTally struct {
	ast.NopVisitor
	count int
}

func (t *renameTally) VisitToken(ref *token.Reference) {
	if !ref.IsDetached() {
		return
	}
	if _, ok := ref.ArenaIndex(); ok {
		t.count++
	}
}

// renameSource parses src, applies the rules, and renders the result.
// It refuses sources with syntax errors so a rewrite never silently
// skips occurrences inside unparsed statements.
func renameSource(src string, rules []renameRule) (string, int, error) {
	tree, err := moonwalk.Parse(src)
	if err != nil {
		return "", 0, err
	}

	table := make(map[string]string, len(rules))
	for _, rule := range rules {
		table[rule.From] = rule.To
	}

	ast.VisitMut(tree, &identRenamer{table: table})

	var tally renameTally
	ast.Visit(tree, &tally)
	if tally.count == 0 {
		return src, 0, nil
	}
	return moonwalk.Print(tree), tally.count, nil
}
