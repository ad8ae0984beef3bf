package diag

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"minipas/internal/source"
)

// Part names a piece of rendered diagnostic output, so callers can style it.
type Part int

const (
	PartLocation Part = iota // demo.mp:2:7:
	PartLabel                // error[E2001]
	PartMessage
	PartGutter // line numbers and bars
	PartSource
	PartCaret
	PartHint
)

// Style decorates a rendered part. A nil Style renders plain text.
type Style func(p Part, text string) string

func (s Style) apply(p Part, text string) string {
	if s == nil || text == "" {
		return text
	}
	return s(p, text)
}

// Render writes d in compiler style: a location header, the offending source
// line and a caret line underlining the span. file may be nil, in which case
// only the header is written. A diagnostic without a position gets no line
// and column.
func Render(w io.Writer, file *source.File, d Diagnostic, style Style) error {
	name := "<input>"
	if file != nil && file.Name() != "" {
		name = file.Name()
	}
	loc := name + ":"
	if d.Span.Start.IsValid() {
		loc = fmt.Sprintf("%s:%d:%d:", name, d.Span.Start.Line, d.Span.Start.Column)
	}
	label := fmt.Sprintf("%s[%s]", d.Severity, d.Code())

	var b strings.Builder
	b.WriteString(style.apply(PartLocation, loc))
	b.WriteString(" ")
	b.WriteString(style.apply(PartLabel, label))
	b.WriteString(": ")
	b.WriteString(style.apply(PartMessage, d.Message))
	b.WriteString("\n")

	if file != nil && d.Span.Start.IsValid() {
		if line, ok := file.Line(d.Span.Start.Line); ok {
			b.WriteString(style.apply(PartGutter, fmt.Sprintf("%4d | ", d.Span.Start.Line)))
			b.WriteString(style.apply(PartSource, line))
			b.WriteString("\n")
			b.WriteString(style.apply(PartGutter, "     | "))
			pad, carets := caretLine(line, d)
			b.WriteString(pad)
			b.WriteString(style.apply(PartCaret, carets))
			b.WriteString("\n")
		}
	}
	if d.Hint != "" {
		b.WriteString(style.apply(PartGutter, "     = "))
		b.WriteString(style.apply(PartHint, "hint: "+d.Hint))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderAll renders every diagnostic in l, in order.
func RenderAll(w io.Writer, file *source.File, l List, style Style) error {
	for _, d := range l {
		if err := Render(w, file, d, style); err != nil {
			return err
		}
	}
	return nil
}

// caretLine returns the padding and carets under line for d's span. Tabs in
// the padding are kept so the carets line up in a terminal.
func caretLine(line string, d Diagnostic) (string, string) {
	col := d.Span.Start.Column
	if col < 1 {
		col = 1
	}
	var pad strings.Builder
	i := 1
	for _, r := range line {
		if i >= col {
			break
		}
		if r == '\t' {
			pad.WriteByte('\t')
		} else {
			pad.WriteByte(' ')
		}
		i++
	}
	for ; i < col; i++ {
		pad.WriteByte(' ')
	}

	width := 1
	if d.Span.End.Line == d.Span.Start.Line && d.Span.End.Column > col {
		width = d.Span.End.Column - col
	} else if d.Span.End.Line > d.Span.Start.Line {
		if rest := utf8.RuneCountInString(line) - (col - 1); rest > 1 {
			width = rest
		}
	}
	return pad.String(), strings.Repeat("^", width)
}
