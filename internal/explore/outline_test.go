package explore_test

import (
	"fmt"
	"slices"
	"testing"

	"moonwalk"
	"moonwalk/ast"
	"moonwalk/internal/explore"
	"moonwalk/source"
)

func mustParse(t *testing.T, src string) *ast.Ast {
	t.Helper()
	tree, err := moonwalk.Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return tree
}

func rowLabels(lines []explore.Line) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, fmt.Sprintf("%d %s", line.Depth, line.Label))
	}
	return out
}

func TestOutlineRows(t *testing.T) {
	src := "local x = 1\n" +
		"while x < 3 do\n" +
		"  x = x + 1\n" +
		"end\n" +
		"if x then\n" +
		"  print(x)\n" +
		"elseif x then\n" +
		"  t.f:go()\n" +
		"end\n" +
		"function mod.util:run()\n" +
		"  return x\n" +
		"end\n" +
		"return x\n"

	lines := explore.Outline(mustParse(t, src))
	want := []string{
		"0 local x",
		"0 while",
		"1 assign x",
		"0 if",
		"1 call print",
		"0 elseif",
		"1 call t.f:go",
		"0 function mod.util:run",
		"1 return",
		"0 return",
	}
	if got := rowLabels(lines); !slices.Equal(got, want) {
		t.Fatalf("outline rows = %q, want %q", got, want)
	}

	lm := source.NewLineMap(src)
	if got := lm.Resolve(lines[0].Span.Start).String(); got != "1:1" {
		t.Errorf("first row position = %s, want 1:1", got)
	}
	if got := lm.Resolve(lines[1].Span.Start).String(); got != "2:1" {
		t.Errorf("while row position = %s, want 2:1", got)
	}
}

func TestOutlineLoopsAndIndexVars(t *testing.T) {
	src := "for i = 1, 10 do\n" +
		"  for k, v in pairs(t) do\n" +
		"    break\n" +
		"  end\n" +
		"end\n" +
		"local function helper()\n" +
		"  do\n" +
		"    t[1] = 2\n" +
		"  end\n" +
		"end\n" +
		"repeat\n" +
		"  helper()\n" +
		"until x\n"

	want := []string{
		"0 for i",
		"1 for k, v in",
		"2 break",
		"0 local function helper",
		"1 do",
		"2 assign t[...]",
		"0 repeat",
		"1 call helper",
	}
	if got := rowLabels(explore.Outline(mustParse(t, src))); !slices.Equal(got, want) {
		t.Fatalf("outline rows = %q, want %q", got, want)
	}
}

func TestOutlineAnonymousFunctionNests(t *testing.T) {
	src := "local f = function()\n  return 1\nend\n"
	want := []string{
		"0 local f",
		"1 return",
	}
	if got := rowLabels(explore.Outline(mustParse(t, src))); !slices.Equal(got, want) {
		t.Fatalf("outline rows = %q, want %q", got, want)
	}
}

func TestOutlineEmptyChunk(t *testing.T) {
	if lines := explore.Outline(mustParse(t, "")); len(lines) != 0 {
		t.Fatalf("outline of empty chunk has %d rows, want 0", len(lines))
	}
}
