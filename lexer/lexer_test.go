package lexer_test

import (
	"testing"

	"moonwalk/diag"
	"moonwalk/lexer"
	"moonwalk/token"
)

func lexAll(input string) ([]token.Token, *diag.Bag) {
	bag := diag.NewBag(16)
	toks := lexer.Tokenize([]byte(input), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return toks, bag
}

type expect struct {
	kind token.Kind
	text string
}

// expectTokens checks the full token sequence, Eof excluded.
func expectTokens(t *testing.T, input string, expected []expect) {
	t.Helper()
	toks, bag := lexAll(input)

	if toks[len(toks)-1].Kind != token.Eof {
		t.Fatalf("token stream for %q did not end with Eof", input)
	}
	toks = toks[:len(toks)-1]

	if len(toks) != len(expected) {
		t.Fatalf("input %q: got %d tokens, want %d\ntokens: %v\ndiags: %v",
			input, len(toks), len(expected), toks, bag.Items())
	}
	for i, tok := range toks {
		if tok.Kind != expected[i].kind || tok.Text != expected[i].text {
			t.Errorf("input %q token %d: got (%v, %q), want (%v, %q)",
				input, i, tok.Kind, tok.Text, expected[i].kind, expected[i].text)
		}
	}
}

// expectCode checks that scanning produced a diagnostic with the code.
func expectCode(t *testing.T, bag *diag.Bag, code diag.Code) {
	t.Helper()
	for _, d := range bag.Items() {
		if d.Code == code {
			return
		}
	}
	t.Fatalf("no diagnostic with code %v; got %v", code, bag.Items())
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	expectTokens(t, "local localx and _and", []expect{
		{token.Symbol, "local"},
		{token.Whitespace, " "},
		{token.Identifier, "localx"},
		{token.Whitespace, " "},
		{token.Symbol, "and"},
		{token.Whitespace, " "},
		{token.Identifier, "_and"},
	})
}

func TestNumbers(t *testing.T) {
	cases := map[string][]expect{
		"1":    {{token.Number, "1"}},
		"1.5":  {{token.Number, "1.5"}},
		".5":   {{token.Number, ".5"}},
		"0xFF": {{token.Number, "0xFF"}},
		"1e10": {{token.Number, "1e10"}},
		"1E-5": {{token.Number, "1E-5"}},
		"1..2": {
			{token.Number, "1"},
			{token.Symbol, ".."},
			{token.Number, "2"},
		},
		// no hex digit after 0x: the 0 is a number, the x an identifier
		"0x": {
			{token.Number, "0"},
			{token.Identifier, "x"},
		},
		// no digit after e: not an exponent
		"1e": {
			{token.Number, "1"},
			{token.Identifier, "e"},
		},
		"5.": {
			{token.Number, "5"},
			{token.Symbol, "."},
		},
	}
	for input, want := range cases {
		expectTokens(t, input, want)
	}
}

func TestStrings(t *testing.T) {
	cases := map[string][]expect{
		`"hi"`:        {{token.StringLiteral, `"hi"`}},
		`'hi'`:        {{token.StringLiteral, `'hi'`}},
		`"a\"b"`:      {{token.StringLiteral, `"a\"b"`}},
		"[[x]]":       {{token.StringLiteral, "[[x]]"}},
		"[==[x]==]":   {{token.StringLiteral, "[==[x]==]"}},
		"[=[a]]b]=]":  {{token.StringLiteral, "[=[a]]b]=]"}},
		`'it\'s'`:     {{token.StringLiteral, `'it\'s'`}},
		"[[a\nb\nc]]": {{token.StringLiteral, "[[a\nb\nc]]"}},
	}
	for input, want := range cases {
		expectTokens(t, input, want)
	}
}

func TestUnterminatedShortString(t *testing.T) {
	toks, bag := lexAll(`"abc`)
	if toks[0].Kind != token.Invalid {
		t.Fatalf("first token kind = %v, want Invalid", toks[0].Kind)
	}
	expectCode(t, bag, diag.LexUnterminatedString)
}

func TestNewlineInShortString(t *testing.T) {
	toks, bag := lexAll("\"a\nb\"")
	if toks[0].Kind != token.Invalid || toks[0].Text != `"a` {
		t.Fatalf("first token = (%v, %q), want Invalid %q", toks[0].Kind, toks[0].Text, `"a`)
	}
	expectCode(t, bag, diag.LexUnterminatedString)
}

func TestUnterminatedLongString(t *testing.T) {
	toks, bag := lexAll("[=[abc]]")
	if toks[0].Kind != token.Invalid {
		t.Fatalf("first token kind = %v, want Invalid", toks[0].Kind)
	}
	expectCode(t, bag, diag.LexUnterminatedString)
}

func TestComments(t *testing.T) {
	cases := map[string][]expect{
		"-- hi":           {{token.SingleLineComment, "-- hi"}},
		"--[[ multi ]]":   {{token.MultiLineComment, "--[[ multi ]]"}},
		"--[==[x]==]":     {{token.MultiLineComment, "--[==[x]==]"}},
		"--[[a\nb]]":      {{token.MultiLineComment, "--[[a\nb]]"}},
		"---- still line": {{token.SingleLineComment, "---- still line"}},
		// malformed long opener falls back to a line comment
		"--[=x": {{token.SingleLineComment, "--[=x"}},
	}
	for input, want := range cases {
		expectTokens(t, input, want)
	}
}

func TestCommentKeepsNewlineOut(t *testing.T) {
	expectTokens(t, "-- hi\nx", []expect{
		{token.SingleLineComment, "-- hi"},
		{token.Whitespace, "\n"},
		{token.Identifier, "x"},
	})
}

func TestUnterminatedMultiLineComment(t *testing.T) {
	toks, bag := lexAll("--[[never")
	if toks[0].Kind != token.Invalid {
		t.Fatalf("first token kind = %v, want Invalid", toks[0].Kind)
	}
	expectCode(t, bag, diag.LexUnterminatedComment)
}

func TestSymbols(t *testing.T) {
	expectTokens(t, "... .. == ~= <= >= # ^ %", []expect{
		{token.Symbol, "..."},
		{token.Whitespace, " "},
		{token.Symbol, ".."},
		{token.Whitespace, " "},
		{token.Symbol, "=="},
		{token.Whitespace, " "},
		{token.Symbol, "~="},
		{token.Whitespace, " "},
		{token.Symbol, "<="},
		{token.Whitespace, " "},
		{token.Symbol, ">="},
		{token.Whitespace, " "},
		{token.Symbol, "#"},
		{token.Whitespace, " "},
		{token.Symbol, "^"},
		{token.Whitespace, " "},
		{token.Symbol, "%"},
	})
}

func TestLoneTildeIsInvalid(t *testing.T) {
	toks, bag := lexAll("a ~ b")
	if toks[2].Kind != token.Invalid || toks[2].Text != "~" {
		t.Fatalf("middle token = (%v, %q), want Invalid ~", toks[2].Kind, toks[2].Text)
	}
	expectCode(t, bag, diag.LexUnexpectedCharacter)
}

func TestWhitespaceChunksByLine(t *testing.T) {
	expectTokens(t, "a \n\nb", []expect{
		{token.Identifier, "a"},
		{token.Whitespace, " \n"},
		{token.Whitespace, "\n"},
		{token.Identifier, "b"},
	})
}

func TestConcatenationReproducesSource(t *testing.T) {
	src := "local x = 1 -- init\n" +
		"while x < 10 do\n" +
		"\tx = x + 1\n" +
		"end\n" +
		"print([[done]], 'ok', 0x1F, .5)\n"

	toks, _ := lexAll(src)
	var rebuilt []byte
	var prevEnd uint32
	for i, tok := range toks {
		if tok.Span.Start != prevEnd {
			t.Fatalf("token %d starts at %d, want %d (spans must be contiguous)", i, tok.Span.Start, prevEnd)
		}
		prevEnd = tok.Span.End
		rebuilt = append(rebuilt, tok.Text...)
	}
	if string(rebuilt) != src {
		t.Fatalf("concatenated texts differ from source\n got: %q\nwant: %q", rebuilt, src)
	}
}

func TestEofRepeats(t *testing.T) {
	lx := lexer.New([]byte("x"), lexer.Options{})
	if tok := lx.Next(); tok.Kind != token.Identifier {
		t.Fatalf("first token = %v, want Identifier", tok.Kind)
	}
	for range 3 {
		tok := lx.Next()
		if tok.Kind != token.Eof {
			t.Fatalf("token after end = %v, want Eof", tok.Kind)
		}
		if tok.Span.Start != 1 || tok.Span.End != 1 {
			t.Fatalf("Eof span = %v, want 1-1", tok.Span)
		}
	}
}
