package source

import (
	"testing"
)

func TestSpan_Cover(t *testing.T) {
	tests := []struct {
		name     string
		span     Span
		other    Span
		expected Span
	}{
		{
			name:     "disjoint spans widen to both ends",
			span:     Span{Start: 10, End: 20},
			other:    Span{Start: 30, End: 40},
			expected: Span{Start: 10, End: 40},
		},
		{
			name:     "contained span changes nothing",
			span:     Span{Start: 10, End: 40},
			other:    Span{Start: 15, End: 20},
			expected: Span{Start: 10, End: 40},
		},
		{
			name:     "other starts earlier",
			span:     Span{Start: 10, End: 20},
			other:    Span{Start: 5, End: 12},
			expected: Span{Start: 5, End: 20},
		},
		{
			name:     "identical spans",
			span:     Span{Start: 7, End: 9},
			other:    Span{Start: 7, End: 9},
			expected: Span{Start: 7, End: 9},
		},
		{
			name:     "zero-length other at end",
			span:     Span{Start: 0, End: 5},
			other:    Span{Start: 8, End: 8},
			expected: Span{Start: 0, End: 8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.span.Cover(tt.other)
			if result != tt.expected {
				t.Errorf("Cover() = %+v, want %+v", result, tt.expected)
			}
		})
	}
}

func TestSpan_EmptyAndLen(t *testing.T) {
	if !(Span{Start: 3, End: 3}).Empty() {
		t.Error("zero-length span should be empty")
	}
	if (Span{Start: 3, End: 4}).Empty() {
		t.Error("one-byte span should not be empty")
	}
	if got := (Span{Start: 3, End: 10}).Len(); got != 7 {
		t.Errorf("Len() = %d, want 7", got)
	}
	if got := (Span{Start: 3, End: 10}).String(); got != "3-10" {
		t.Errorf("String() = %q, want %q", got, "3-10")
	}
}
