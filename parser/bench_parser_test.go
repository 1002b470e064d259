package parser_test

import (
	"bytes"
	"testing"

	"moonwalk/diag"
	"moonwalk/lexer"
	"moonwalk/parser"
	"moonwalk/token"
)

func benchParse(b *testing.B, program []byte) {
	b.ReportAllocs()
	b.ResetTimer()

	for b.Loop() {
		bag := diag.NewBag(0)
		reporter := diag.BagReporter{Bag: bag}
		toks := lexer.Tokenize(program, lexer.Options{Reporter: reporter})
		arena := token.NewArena(toks)
		parser.Parse(arena, parser.Options{Reporter: reporter})
	}
}

func BenchmarkParseShort(b *testing.B) {
	benchParse(b, []byte(`local x = f(1 + 2) if x then print(x) end`))
}

func BenchmarkParseLarge(b *testing.B) {
	var buf bytes.Buffer
	for i := range 500 {
		buf.WriteString("local v")
		buf.WriteByte(byte('a' + (i % 26)))
		buf.WriteString(" = compute(")
		buf.WriteByte(byte('0' + (i % 10)))
		buf.WriteString(") + 1\nif v")
		buf.WriteByte(byte('a' + (i % 26)))
		buf.WriteString(" then report { value = true } end\n")
	}
	benchParse(b, buf.Bytes())
}
