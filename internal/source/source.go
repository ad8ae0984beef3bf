// Package source maps byte offsets of a source text to lines and columns.
package source

import (
	"sort"
	"strings"
	"unicode/utf8"

	"minipas/internal/span"
)

// File holds a named source text and the byte offset of every line start.
type File struct {
	name       string
	text       string
	lineStarts []int
}

// New indexes text for line lookups.
func New(name, text string) *File {
	f := &File{name: name, text: text, lineStarts: []int{0}}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			f.lineStarts = append(f.lineStarts, i+1)
		}
	}
	return f
}

func (f *File) Name() string { return f.name }

func (f *File) Text() string { return f.text }

// LineCount returns the number of lines; a trailing newline opens an empty last line.
func (f *File) LineCount() int {
	return len(f.lineStarts)
}

// Position converts a byte offset into a full position. Offsets outside the
// text are clamped.
func (f *File) Position(offset int) span.Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(f.text) {
		offset = len(f.text)
	}
	idx := sort.Search(len(f.lineStarts), func(i int) bool {
		return f.lineStarts[i] > offset
	}) - 1
	start := f.lineStarts[idx]
	return span.Position{
		Offset: offset,
		Line:   idx + 1,
		Column: utf8.RuneCountInString(f.text[start:offset]) + 1,
	}
}

// Line returns the text of the 1-based line n without its line terminator.
func (f *File) Line(n int) (string, bool) {
	if n < 1 || n > len(f.lineStarts) {
		return "", false
	}
	start := f.lineStarts[n-1]
	end := len(f.text)
	if n < len(f.lineStarts) {
		end = f.lineStarts[n] - 1
	}
	return strings.TrimSuffix(f.text[start:end], "\r"), true
}

// Snippet returns the source text covered by s.
func (f *File) Snippet(s span.Span) string {
	start, end := s.Start.Offset, s.End.Offset
	if start < 0 {
		start = 0
	}
	if end > len(f.text) {
		end = len(f.text)
	}
	if start >= end {
		return ""
	}
	return f.text[start:end]
}
