package parser_test

import (
	"fmt"
	"strings"
	"testing"

	"moonwalk/ast"
	"moonwalk/diag"
	"moonwalk/lexer"
	"moonwalk/parser"
	"moonwalk/token"
)

func parseSource(t *testing.T, src string) (*ast.Ast, *diag.Bag) {
	t.Helper()
	bag := diag.NewBag(64)
	reporter := diag.BagReporter{Bag: bag}
	toks := lexer.Tokenize([]byte(src), lexer.Options{Reporter: reporter})
	arena := token.NewArena(toks)
	tree := parser.Parse(arena, parser.Options{Reporter: reporter})
	return tree, bag
}

func parseOK(t *testing.T, src string) *ast.Ast {
	t.Helper()
	tree, bag := parseSource(t, src)
	if bag.HasErrors() {
		t.Fatalf("parse %q: unexpected diagnostics: %s", src, diagnosticsSummary(bag))
	}
	return tree
}

func diagnosticsSummary(bag *diag.Bag) string {
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

func onlyStmt(t *testing.T, tree *ast.Ast) ast.Stmt {
	t.Helper()
	blk := tree.Nodes()
	if len(blk.Stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(blk.Stmts))
	}
	return blk.Stmts[0].First
}

func refText(t *testing.T, ref *token.Reference) string {
	t.Helper()
	if ref == nil {
		t.Fatal("expected a token reference, got nil")
	}
	return ref.Token().Text
}

func TestLocalAssignment(t *testing.T) {
	tree := parseOK(t, "local x, y = 1, 2")
	la := onlyStmt(t, tree).LocalAssignment
	if la == nil {
		t.Fatal("expected a local assignment")
	}
	if len(la.Names) != 2 {
		t.Fatalf("names: got %d, want 2", len(la.Names))
	}
	if got := refText(t, la.Names[0].First); got != "x" {
		t.Errorf("first name: got %q, want %q", got, "x")
	}
	if got := refText(t, la.Names[0].Second); got != "," {
		t.Errorf("separator: got %q, want %q", got, ",")
	}
	if got := refText(t, la.Names[1].First); got != "y" {
		t.Errorf("second name: got %q, want %q", got, "y")
	}
	if la.Names[1].Second != nil {
		t.Error("last name should have no separator")
	}
	if la.Equal == nil {
		t.Fatal("expected '='")
	}
	if len(la.ExprList) != 2 {
		t.Fatalf("expressions: got %d, want 2", len(la.ExprList))
	}
	if got := refText(t, la.ExprList[0].First.Value.Number); got != "1" {
		t.Errorf("first value: got %q, want %q", got, "1")
	}
}

func TestLocalWithoutInitializer(t *testing.T) {
	la := onlyStmt(t, parseOK(t, "local x")).LocalAssignment
	if la == nil {
		t.Fatal("expected a local assignment")
	}
	if la.Equal != nil || len(la.ExprList) != 0 {
		t.Error("a bare local should have no '=' and no expressions")
	}
}

func TestAssignmentTargets(t *testing.T) {
	a := onlyStmt(t, parseOK(t, "a, b.c, d[1] = f()")).Assignment
	if a == nil {
		t.Fatal("expected an assignment")
	}
	if len(a.VarList) != 3 {
		t.Fatalf("targets: got %d, want 3", len(a.VarList))
	}

	if got := refText(t, a.VarList[0].First.Name); got != "a" {
		t.Errorf("first target: got %q, want %q", got, "a")
	}

	second := a.VarList[1].First.Expression
	if second == nil {
		t.Fatal("second target should be a suffixed chain")
	}
	if got := refText(t, second.Prefix.Name); got != "b" {
		t.Errorf("second prefix: got %q, want %q", got, "b")
	}
	if len(second.Suffixes) != 1 || second.Suffixes[0].Index == nil {
		t.Fatal("second target should end in an index")
	}
	if got := refText(t, second.Suffixes[0].Index.Name); got != "c" {
		t.Errorf("dot index: got %q, want %q", got, "c")
	}

	third := a.VarList[2].First.Expression
	if third == nil {
		t.Fatal("third target should be a suffixed chain")
	}
	idx := third.Suffixes[len(third.Suffixes)-1].Index
	if idx == nil || idx.Brackets == nil || idx.Expression == nil {
		t.Fatal("third target should end in a bracket index")
	}

	if len(a.ExprList) != 1 {
		t.Fatalf("values: got %d, want 1", len(a.ExprList))
	}
	if a.ExprList[0].First.Value.FunctionCall == nil {
		t.Error("value should be a function call")
	}
}

func TestCallStatementForms(t *testing.T) {
	tree := parseOK(t, `print("hi") print "hi" print{1} obj:go(2)`)
	blk := tree.Nodes()
	if len(blk.Stmts) != 4 {
		t.Fatalf("statements: got %d, want 4", len(blk.Stmts))
	}
	for i := range blk.Stmts {
		if blk.Stmts[i].First.FunctionCall == nil {
			t.Fatalf("statement %d should be a function call", i)
		}
	}

	args0 := blk.Stmts[0].First.FunctionCall.Suffixes[0].Call.AnonymousCall
	if args0.Parentheses == nil || len(args0.Arguments) != 1 {
		t.Error("first call should have one parenthesized argument")
	}
	args1 := blk.Stmts[1].First.FunctionCall.Suffixes[0].Call.AnonymousCall
	if args1.String == nil {
		t.Error("second call should take a bare string")
	}
	args2 := blk.Stmts[2].First.FunctionCall.Suffixes[0].Call.AnonymousCall
	if args2.TableConstructor == nil {
		t.Error("third call should take a bare table")
	}
	method := blk.Stmts[3].First.FunctionCall.Suffixes[0].Call.MethodCall
	if method == nil {
		t.Fatal("fourth call should be a method call")
	}
	if got := refText(t, method.Name); got != "go" {
		t.Errorf("method name: got %q, want %q", got, "go")
	}
}

func TestBinaryChainsLeanRight(t *testing.T) {
	a := onlyStmt(t, parseOK(t, "x = 1 + 2 * 3")).Assignment
	e := a.ExprList[0].First
	if got := refText(t, e.Value.Number); got != "1" {
		t.Fatalf("head value: got %q, want %q", got, "1")
	}
	if e.BinOp == nil {
		t.Fatal("expected a binary tail")
	}
	if got := refText(t, e.BinOp.BinOp.Token); got != "+" {
		t.Errorf("first operator: got %q, want %q", got, "+")
	}
	rhs := e.BinOp.Rhs
	if got := refText(t, rhs.Value.Number); got != "2" {
		t.Errorf("tail value: got %q, want %q", got, "2")
	}
	if rhs.BinOp == nil {
		t.Fatal("the tail should hold the rest of the chain")
	}
	if got := refText(t, rhs.BinOp.BinOp.Token); got != "*" {
		t.Errorf("second operator: got %q, want %q", got, "*")
	}
	if rhs.BinOp.Rhs.BinOp != nil {
		t.Error("the chain should stop after the last operand")
	}

	// grouping is the consumer's job; the metadata must survive the parse
	if got := e.BinOp.BinOp.Precedence(); got != 6 {
		t.Errorf("'+' precedence: got %d, want 6", got)
	}
	if got := rhs.BinOp.BinOp.Precedence(); got != 7 {
		t.Errorf("'*' precedence: got %d, want 7", got)
	}
}

func TestUnaryOperatorTakesTheTail(t *testing.T) {
	a := onlyStmt(t, parseOK(t, "y = -a + b")).Assignment
	e := a.ExprList[0].First
	if e.UnOp == nil {
		t.Fatal("expected a unary expression")
	}
	if got := refText(t, e.UnOp.Token); got != "-" {
		t.Errorf("operator: got %q, want %q", got, "-")
	}
	if e.Value != nil {
		t.Error("a unary expression holds no value of its own")
	}
	inner := e.Expression
	if inner == nil {
		t.Fatal("expected the operand under the unary operator")
	}
	if inner.BinOp == nil {
		t.Error("the operand should carry the whole binary tail")
	}
}

func TestIfElseifElse(t *testing.T) {
	src := "if a then return 1 elseif b then return 2 else return 3 end"
	f := onlyStmt(t, parseOK(t, src)).If
	if f == nil {
		t.Fatal("expected an if statement")
	}
	if got := refText(t, f.Condition.Value.Var.Name); got != "a" {
		t.Errorf("condition: got %q, want %q", got, "a")
	}
	if f.Block.Get() == nil || f.Block.Get().LastStmt == nil {
		t.Error("the then block should end in a return")
	}
	if len(f.ElseIfs) != 1 {
		t.Fatalf("elseif arms: got %d, want 1", len(f.ElseIfs))
	}
	if got := refText(t, f.ElseIfs[0].Condition.Value.Var.Name); got != "b" {
		t.Errorf("elseif condition: got %q, want %q", got, "b")
	}
	if f.ElseToken == nil || f.ElseBlock.Get() == nil {
		t.Error("expected an else arm")
	}
	if f.EndToken == nil {
		t.Error("expected 'end'")
	}
}

func TestIfWithoutElseLeavesElseEmpty(t *testing.T) {
	f := onlyStmt(t, parseOK(t, "if a then end")).If
	if f.ElseToken != nil {
		t.Error("no else token expected")
	}
	if f.ElseBlock.Get() != nil {
		t.Error("the else block should stay empty")
	}
}

func TestNumericFor(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantStep bool
	}{
		{"with step", "for i = 1, 10, 2 do end", true},
		{"without step", "for i = 1, 10 do end", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nf := onlyStmt(t, parseOK(t, tt.src)).NumericFor
			if nf == nil {
				t.Fatal("expected a numeric for")
			}
			if got := refText(t, nf.IndexVariable); got != "i" {
				t.Errorf("index variable: got %q, want %q", got, "i")
			}
			if nf.StartEndComma == nil {
				t.Error("expected the comma between start and end")
			}
			hasStep := nf.Step != nil
			if hasStep != tt.wantStep {
				t.Errorf("has step: got %v, want %v", hasStep, tt.wantStep)
			}
			if (nf.EndStepComma != nil) != tt.wantStep {
				t.Errorf("step comma should be present exactly with the step")
			}
		})
	}
}

func TestGenericFor(t *testing.T) {
	gf := onlyStmt(t, parseOK(t, "for k, v in pairs(t) do end")).GenericFor
	if gf == nil {
		t.Fatal("expected a generic for")
	}
	if len(gf.Names) != 2 {
		t.Fatalf("names: got %d, want 2", len(gf.Names))
	}
	if gf.InToken == nil {
		t.Error("expected 'in'")
	}
	if len(gf.ExprList) != 1 || gf.ExprList[0].First.Value.FunctionCall == nil {
		t.Error("the iterator should be a single call")
	}
}

func TestFunctionDeclaration(t *testing.T) {
	src := "function a.b:c(x, ...) return x end"
	fd := onlyStmt(t, parseOK(t, src)).FunctionDeclaration
	if fd == nil {
		t.Fatal("expected a function declaration")
	}
	if len(fd.Name.Names) != 2 {
		t.Fatalf("name parts: got %d, want 2", len(fd.Name.Names))
	}
	if got := refText(t, fd.Name.Names[0].Second); got != "." {
		t.Errorf("name separator: got %q, want %q", got, ".")
	}
	if fd.Name.Method == nil {
		t.Fatal("expected a method name")
	}
	if got := refText(t, fd.Name.Method.Second); got != "c" {
		t.Errorf("method name: got %q, want %q", got, "c")
	}
	if len(fd.Body.Parameters) != 2 {
		t.Fatalf("parameters: got %d, want 2", len(fd.Body.Parameters))
	}
	if fd.Body.Parameters[0].First.Name == nil {
		t.Error("first parameter should be a name")
	}
	if fd.Body.Parameters[1].First.Ellipse == nil {
		t.Error("second parameter should be the vararg")
	}
	if fd.Body.Block.Get() == nil || fd.Body.Block.Get().LastStmt == nil {
		t.Error("the body should end in a return")
	}
}

func TestLocalFunction(t *testing.T) {
	lf := onlyStmt(t, parseOK(t, "local function f() end")).LocalFunction
	if lf == nil {
		t.Fatal("expected a local function")
	}
	if got := refText(t, lf.Name); got != "f" {
		t.Errorf("name: got %q, want %q", got, "f")
	}
	if lf.Body.EndToken == nil {
		t.Error("expected 'end'")
	}
}

func TestWhile(t *testing.T) {
	w := onlyStmt(t, parseOK(t, "while true do break end")).While
	if w == nil {
		t.Fatal("expected a while loop")
	}
	if got := refText(t, w.Condition.Value.Symbol); got != "true" {
		t.Errorf("condition: got %q, want %q", got, "true")
	}
	blk := w.Block.Get()
	if blk == nil || blk.LastStmt == nil || blk.LastStmt.First.Break == nil {
		t.Error("the body should end in a break")
	}
}

func TestRepeat(t *testing.T) {
	r := onlyStmt(t, parseOK(t, "repeat until done")).Repeat
	if r == nil {
		t.Fatal("expected a repeat loop")
	}
	if got := refText(t, r.Until.Value.Var.Name); got != "done" {
		t.Errorf("condition: got %q, want %q", got, "done")
	}
}

func TestDoBlocksNest(t *testing.T) {
	d := onlyStmt(t, parseOK(t, "do do end end")).Do
	if d == nil {
		t.Fatal("expected a do block")
	}
	inner := d.Block.Get()
	if inner == nil || len(inner.Stmts) != 1 || inner.Stmts[0].First.Do == nil {
		t.Error("the outer block should hold the inner do block")
	}
}

func TestTableFieldShapes(t *testing.T) {
	a := onlyStmt(t, parseOK(t, `t = { 1, name = 2, ["k"] = 3; }`)).Assignment
	tc := a.ExprList[0].First.Value.TableConstructor
	if tc == nil {
		t.Fatal("expected a table constructor")
	}
	if len(tc.Fields) != 3 {
		t.Fatalf("fields: got %d, want 3", len(tc.Fields))
	}

	positional := tc.Fields[0].First
	if positional.Brackets != nil || positional.Name != nil || positional.Equal != nil {
		t.Error("first field should be positional")
	}
	if got := refText(t, tc.Fields[0].Second); got != "," {
		t.Errorf("first separator: got %q, want %q", got, ",")
	}

	named := tc.Fields[1].First
	if named.Name == nil || named.Equal == nil {
		t.Error("second field should be a named entry")
	}

	keyed := tc.Fields[2].First
	if keyed.Brackets == nil || keyed.Key == nil || keyed.Equal == nil {
		t.Error("third field should be a bracketed entry")
	}
	if got := refText(t, tc.Fields[2].Second); got != ";" {
		t.Errorf("third separator: got %q, want %q", got, ";")
	}

	if got := refText(t, tc.Braces.Start()); got != "{" {
		t.Errorf("open delimiter: got %q, want %q", got, "{")
	}
	if got := refText(t, tc.Braces.End()); got != "}" {
		t.Errorf("close delimiter: got %q, want %q", got, "}")
	}
}

func TestParenValue(t *testing.T) {
	a := onlyStmt(t, parseOK(t, "x = (y)")).Assignment
	paren := a.ExprList[0].First.Value.Paren
	if paren == nil {
		t.Fatal("expected a parenthesized value")
	}
	if got := refText(t, paren.Expression.Value.Var.Name); got != "y" {
		t.Errorf("inner expression: got %q, want %q", got, "y")
	}
}

func TestParenPrefixCall(t *testing.T) {
	a := onlyStmt(t, parseOK(t, "x = (f)(1)")).Assignment
	call := a.ExprList[0].First.Value.FunctionCall
	if call == nil {
		t.Fatal("expected a function call value")
	}
	if call.Prefix.Expression == nil || call.Prefix.Expression.Value.Paren == nil {
		t.Error("the call prefix should be the parenthesized expression")
	}
	if len(call.Suffixes) != 1 || call.Suffixes[0].Call == nil {
		t.Error("expected one call suffix")
	}
}

func TestVarargValue(t *testing.T) {
	a := onlyStmt(t, parseOK(t, "x = ...")).Assignment
	if got := refText(t, a.ExprList[0].First.Value.Symbol); got != "..." {
		t.Errorf("value: got %q, want %q", got, "...")
	}
}

func TestSemicolonsAttachToStatements(t *testing.T) {
	tree := parseOK(t, "local x = 1; return;")
	blk := tree.Nodes()
	if len(blk.Stmts) != 1 || blk.LastStmt == nil {
		t.Fatal("expected one statement and a terminator")
	}
	if got := refText(t, blk.Stmts[0].Second); got != ";" {
		t.Errorf("statement separator: got %q, want %q", got, ";")
	}
	if got := refText(t, blk.LastStmt.Second); got != ";" {
		t.Errorf("return separator: got %q, want %q", got, ";")
	}
}

func TestEmptyChunk(t *testing.T) {
	for _, src := range []string{"", "  ", "-- only a comment\n"} {
		tree := parseOK(t, src)
		blk := tree.Nodes()
		if len(blk.Stmts) != 0 || blk.LastStmt != nil {
			t.Errorf("parse %q: expected an empty chunk", src)
		}
	}
}

func TestMissingEndPointsAtOpener(t *testing.T) {
	tree, bag := parseSource(t, "do local x = 1")
	if !bag.HasErrors() {
		t.Fatal("expected a diagnostic")
	}
	first := bag.Items()[0]
	if first.Code != diag.SynExpectedToken {
		t.Errorf("code: got %s, want %s", first.Code.ID(), diag.SynExpectedToken.ID())
	}
	if len(first.Notes) != 1 || first.Notes[0].Msg != "'do' opened here" {
		t.Errorf("expected a note pointing at the opener, got %+v", first.Notes)
	}
	if len(tree.Nodes().Stmts) != 0 {
		t.Error("the broken statement should be dropped")
	}
}

func TestRecoverySkipsToNextStatement(t *testing.T) {
	tree, bag := parseSource(t, "local = 1\nprint(2)")
	if bag.Len() != 1 {
		t.Fatalf("diagnostics: got %d, want 1: %s", bag.Len(), diagnosticsSummary(bag))
	}
	if bag.Items()[0].Code != diag.SynExpectedIdentifier {
		t.Errorf("code: got %s, want %s", bag.Items()[0].Code.ID(), diag.SynExpectedIdentifier.ID())
	}
	blk := tree.Nodes()
	if len(blk.Stmts) != 1 || blk.Stmts[0].First.FunctionCall == nil {
		t.Error("the statement after the broken one should survive")
	}
}

func TestAssignmentTargetErrors(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"a, f() = 1", "cannot assign to a function call"},
		{"(a) = 1", "cannot assign to a parenthesized expression"},
	}
	for _, tt := range tests {
		_, bag := parseSource(t, tt.src)
		if !bag.HasErrors() {
			t.Errorf("parse %q: expected a diagnostic", tt.src)
			continue
		}
		if got := bag.Items()[0].Message; got != tt.want {
			t.Errorf("parse %q: message: got %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestErrorLimitStopsTheParse(t *testing.T) {
	bag := diag.NewBag(64)
	reporter := diag.BagReporter{Bag: bag}
	toks := lexer.Tokenize([]byte("local = 1 local = 2 local = 3"), lexer.Options{Reporter: reporter})
	arena := token.NewArena(toks)
	parser.Parse(arena, parser.Options{MaxErrors: 2, Reporter: reporter})

	if bag.Len() != 3 {
		t.Fatalf("diagnostics: got %d, want 3: %s", bag.Len(), diagnosticsSummary(bag))
	}
	last := bag.Items()[bag.Len()-1]
	if last.Code != diag.SynTooManyErrors {
		t.Errorf("last code: got %s, want %s", last.Code.ID(), diag.SynTooManyErrors.ID())
	}
}

func TestReturnEndsTheBlock(t *testing.T) {
	tree, bag := parseSource(t, "return 1 print(2)")
	if !bag.HasErrors() {
		t.Fatal("expected a diagnostic for the trailing statement")
	}
	blk := tree.Nodes()
	if blk.LastStmt == nil || blk.LastStmt.First.Return == nil {
		t.Error("the return should be kept")
	}
	if len(blk.Stmts) != 0 {
		t.Error("nothing after the return should be kept")
	}
}

func TestStraySemicolonReported(t *testing.T) {
	_, bag := parseSource(t, ";")
	if bag.Len() != 1 || bag.Items()[0].Code != diag.SynUnexpectedToken {
		t.Fatalf("expected one unexpected-token diagnostic, got: %s", diagnosticsSummary(bag))
	}
}

func TestMethodCallRequiresArguments(t *testing.T) {
	_, bag := parseSource(t, "x = a:b")
	if !bag.HasErrors() {
		t.Fatal("expected a diagnostic")
	}
	if got := bag.Items()[0].Message; got != "expected call arguments" {
		t.Errorf("message: got %q, want %q", got, "expected call arguments")
	}
}
