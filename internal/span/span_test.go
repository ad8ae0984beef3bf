package span

import "testing"

func pos(offset, line, col int) Position {
	return Position{Offset: offset, Line: line, Column: col}
}

func TestJoin(t *testing.T) {
	a := Span{Start: pos(4, 1, 5), End: pos(5, 1, 6)}
	b := Span{Start: pos(8, 1, 9), End: pos(12, 2, 3)}

	want := Span{Start: a.Start, End: b.End}
	if got := Join(a, b); got != want {
		t.Errorf("Join(a, b) = %s, want %s", got, want)
	}
	if got := Join(b, a); got != want {
		t.Errorf("Join(b, a) = %s, want %s", got, want)
	}
	if got := Join(a, a); got != a {
		t.Errorf("Join(a, a) = %s, want %s", got, a)
	}
}

func TestPositionString(t *testing.T) {
	if got := pos(20, 1, 21).String(); got != "1:21" {
		t.Errorf("got %q", got)
	}
	if got := (Span{Start: pos(0, 1, 1), End: pos(3, 1, 4)}).String(); got != "1:1..1:4" {
		t.Errorf("got %q", got)
	}
}

func TestIsValid(t *testing.T) {
	if (Position{}).IsValid() {
		t.Errorf("zero position must not be valid")
	}
	if !pos(0, 1, 1).IsValid() {
		t.Errorf("start of input must be valid")
	}
}
