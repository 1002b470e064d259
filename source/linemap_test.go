package source

import (
	"testing"
)

func TestLineMap_Resolve(t *testing.T) {
	const text = "local x = 1\nprint(x)\n\nreturn x"
	m := NewLineMap(text)

	tests := []struct {
		name     string
		off      uint32
		expected LineCol
	}{
		{name: "start of file", off: 0, expected: LineCol{Line: 1, Col: 1}},
		{name: "middle of first line", off: 6, expected: LineCol{Line: 1, Col: 7}},
		{name: "first newline", off: 11, expected: LineCol{Line: 1, Col: 12}},
		{name: "start of second line", off: 12, expected: LineCol{Line: 2, Col: 1}},
		{name: "empty third line", off: 21, expected: LineCol{Line: 3, Col: 1}},
		{name: "start of last line", off: 22, expected: LineCol{Line: 4, Col: 1}},
		{name: "end of text", off: 30, expected: LineCol{Line: 4, Col: 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Resolve(tt.off)
			if got != tt.expected {
				t.Errorf("Resolve(%d) = %v, want %v", tt.off, got, tt.expected)
			}
		})
	}
}

func TestLineMap_ResolveSingleLine(t *testing.T) {
	m := NewLineMap("return 1")
	got := m.Resolve(7)
	if got != (LineCol{Line: 1, Col: 8}) {
		t.Errorf("Resolve(7) = %v, want 1:8", got)
	}
}

func TestLineMap_Line(t *testing.T) {
	const text = "local x = 1\nprint(x)\n\nreturn x"
	m := NewLineMap(text)

	tests := []struct {
		num      uint32
		expected string
	}{
		{num: 0, expected: ""},
		{num: 1, expected: "local x = 1"},
		{num: 2, expected: "print(x)"},
		{num: 3, expected: ""},
		{num: 4, expected: "return x"},
		{num: 5, expected: ""},
	}

	for _, tt := range tests {
		if got := m.Line(tt.num); got != tt.expected {
			t.Errorf("Line(%d) = %q, want %q", tt.num, got, tt.expected)
		}
	}
}

func TestLineMap_LineCol_String(t *testing.T) {
	if got := (LineCol{Line: 3, Col: 14}).String(); got != "3:14" {
		t.Errorf("String() = %q, want %q", got, "3:14")
	}
}
