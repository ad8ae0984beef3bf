package source

import (
	"testing"

	"minipas/internal/span"
)

const threeLines = "first line.\nsecond line.\nthird line.\n"

func TestLineStarts(t *testing.T) {
	f := New("test.mp", threeLines)
	if f.LineCount() != 4 {
		t.Fatalf("expected 4 lines, got %d", f.LineCount())
	}
	want := []int{0, 12, 25, 37}
	for i, w := range want {
		if f.lineStarts[i] != w {
			t.Errorf("lineStarts[%d]: expected %d, got %d", i, w, f.lineStarts[i])
		}
	}
}

func TestPosition(t *testing.T) {
	f := New("test.mp", threeLines)
	tests := []struct {
		offset     int
		line, col int
	}{
		{0, 1, 1},
		{5, 1, 6},
		{11, 1, 12}, // the newline itself
		{12, 2, 1},
		{18, 2, 7},
		{37, 4, 1},
		{100, 4, 1},
		{-3, 1, 1},
	}
	for _, tt := range tests {
		pos := f.Position(tt.offset)
		if pos.Line != tt.line || pos.Column != tt.col {
			t.Errorf("offset %d: expected %d:%d, got %d:%d", tt.offset, tt.line, tt.col, pos.Line, pos.Column)
		}
	}
}

func TestPositionCountsRunes(t *testing.T) {
	f := New("test.mp", "x = \"héllo\"; y")
	// 'y' is at byte 14; é takes two bytes but one column.
	pos := f.Position(14)
	if pos.Column != 14 {
		t.Errorf("expected column 14, got %d", pos.Column)
	}
}

func TestLine(t *testing.T) {
	f := New("test.mp", "a\r\nb\nc")
	tests := []struct {
		n    int
		text string
		ok   bool
	}{
		{1, "a", true},
		{2, "b", true},
		{3, "c", true},
		{0, "", false},
		{4, "", false},
	}
	for _, tt := range tests {
		text, ok := f.Line(tt.n)
		if text != tt.text || ok != tt.ok {
			t.Errorf("Line(%d): expected (%q, %v), got (%q, %v)", tt.n, tt.text, tt.ok, text, ok)
		}
	}
}

func TestSnippet(t *testing.T) {
	f := New("test.mp", threeLines)
	s := span.Span{Start: span.Position{Offset: 0}, End: span.Position{Offset: 5}}
	if got := f.Snippet(s); got != "first" {
		t.Errorf("expected 'first', got %q", got)
	}
	s = span.Span{Start: span.Position{Offset: 12}, End: span.Position{Offset: 18}}
	if got := f.Snippet(s); got != "second" {
		t.Errorf("expected 'second', got %q", got)
	}
	s = span.Span{Start: span.Position{Offset: 30}, End: span.Position{Offset: 500}}
	if got := f.Snippet(s); got != "line.\n" {
		t.Errorf("expected clamped snippet, got %q", got)
	}
}
