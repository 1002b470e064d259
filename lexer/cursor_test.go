package lexer

import (
	"testing"
)

func TestCursorBasics(t *testing.T) {
	c := NewCursor([]byte("ab"))
	if c.EOF() {
		t.Fatal("fresh cursor should not be at EOF")
	}
	if b := c.Peek(); b != 'a' {
		t.Fatalf("Peek = %q, want a", b)
	}
	if b0, b1, ok := c.Peek2(); !ok || b0 != 'a' || b1 != 'b' {
		t.Fatalf("Peek2 = %q %q %v", b0, b1, ok)
	}
	if _, _, _, ok := c.Peek3(); ok {
		t.Fatal("Peek3 on two bytes should fail")
	}
	if b := c.Bump(); b != 'a' {
		t.Fatalf("Bump = %q, want a", b)
	}
	if !c.Eat('b') {
		t.Fatal("Eat(b) should consume")
	}
	if !c.EOF() {
		t.Fatal("cursor should be at EOF")
	}
	if b := c.Bump(); b != 0 {
		t.Fatalf("Bump past EOF = %q, want 0", b)
	}
}

func TestCursorMarkSpanReset(t *testing.T) {
	c := NewCursor([]byte("hello"))
	m := c.Mark()
	c.Bump()
	c.Bump()
	sp := c.SpanFrom(m)
	if sp.Start != 0 || sp.End != 2 {
		t.Fatalf("SpanFrom = %v, want 0-2", sp)
	}
	c.Reset(m)
	if c.Off != 0 {
		t.Fatalf("Off after Reset = %d, want 0", c.Off)
	}
}
