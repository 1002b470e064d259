package source

import (
	"fmt"

	"fortio.org/safecast"
)

// LineCol is a human-readable position, both components 1-based.
type LineCol struct {
	Line uint32
	Col  uint32
}

func (lc LineCol) String() string {
	return fmt.Sprintf("%d:%d", lc.Line, lc.Col)
}

// LineMap resolves byte offsets of one source text into line/column
// positions. Built once, read many times.
type LineMap struct {
	text    string
	newline []uint32 // offsets of every '\n'
}

func NewLineMap(text string) *LineMap {
	idx := make([]uint32, 0, 64)
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			off, err := safecast.Conv[uint32](i)
			if err != nil {
				panic(fmt.Errorf("source offset overflow: %w", err))
			}
			idx = append(idx, off)
		}
	}
	return &LineMap{text: text, newline: idx}
}

// Resolve converts a byte offset into a line/column position.
func (m *LineMap) Resolve(off uint32) LineCol {
	if len(m.newline) == 0 {
		return LineCol{Line: 1, Col: off + 1}
	}
	// Binary search for the last newline strictly before off.
	lo, hi := 0, len(m.newline)
	for lo < hi {
		mid := (lo + hi) / 2
		if m.newline[mid] < off {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	line, err := safecast.Conv[uint32](lo + 1)
	if err != nil {
		panic(fmt.Errorf("line number overflow: %w", err))
	}
	if lo == 0 {
		return LineCol{Line: 1, Col: off + 1}
	}
	return LineCol{Line: line, Col: off - m.newline[lo-1]}
}

// ResolveSpan resolves both ends of a span.
func (m *LineMap) ResolveSpan(sp Span) (LineCol, LineCol) {
	return m.Resolve(sp.Start), m.Resolve(sp.End)
}

// Line returns the text of a 1-based line without its trailing newline.
// Out-of-range line numbers yield "".
func (m *LineMap) Line(num uint32) string {
	if num == 0 {
		return ""
	}
	n, err := safecast.Conv[uint32](len(m.newline))
	if err != nil {
		panic(fmt.Errorf("line index overflow: %w", err))
	}
	var start uint32
	if num >= 2 {
		if num-2 >= n {
			return ""
		}
		start = m.newline[num-2] + 1
	}
	if num-1 < n {
		return m.text[start:m.newline[num-1]]
	}
	return m.text[start:]
}
