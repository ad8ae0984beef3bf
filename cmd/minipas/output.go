package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"minipas/internal/config"
	"minipas/internal/diag"
	"minipas/internal/source"
	"minipas/internal/token"
)

// Color palette
var (
	colorError  = lipgloss.Color("#EF4444") // Red
	colorAccent = lipgloss.Color("#F59E0B") // Amber
	colorHint   = lipgloss.Color("#06B6D4") // Cyan
	colorMuted  = lipgloss.Color("#6B7280") // Gray
	colorOK     = lipgloss.Color("#10B981") // Emerald
)

// useColor decides whether output to w is styled.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// styles holds the lipgloss styles for one output stream.
type styles struct {
	enabled  bool
	location lipgloss.Style
	label    lipgloss.Style
	message  lipgloss.Style
	gutter   lipgloss.Style
	caret    lipgloss.Style
	hint     lipgloss.Style
	ok       lipgloss.Style
	faint    lipgloss.Style
}

func newStyles(w io.Writer, enabled bool) *styles {
	r := lipgloss.NewRenderer(w)
	if enabled {
		r.SetColorProfile(termenv.ANSI256)
	}
	return &styles{
		enabled:  enabled,
		location: r.NewStyle().Bold(true),
		label:    r.NewStyle().Foreground(colorError).Bold(true),
		message:  r.NewStyle().Bold(true),
		gutter:   r.NewStyle().Foreground(colorMuted),
		caret:    r.NewStyle().Foreground(colorAccent).Bold(true),
		hint:     r.NewStyle().Foreground(colorHint).Italic(true),
		ok:       r.NewStyle().Foreground(colorOK).Bold(true),
		faint:    r.NewStyle().Foreground(colorMuted),
	}
}

// diagStyle adapts the styles to the diagnostic renderer; nil means plain.
func (s *styles) diagStyle() diag.Style {
	if !s.enabled {
		return nil
	}
	return func(p diag.Part, text string) string {
		switch p {
		case diag.PartLocation:
			return s.location.Render(text)
		case diag.PartLabel:
			return s.label.Render(text)
		case diag.PartMessage:
			return s.message.Render(text)
		case diag.PartGutter:
			return s.gutter.Render(text)
		case diag.PartCaret:
			return s.caret.Render(text)
		case diag.PartHint:
			return s.hint.Render(text)
		}
		return text
	}
}

func (s *styles) success(text string) string {
	if !s.enabled {
		return text
	}
	return s.ok.Render(text)
}

func (s *styles) muted(text string) string {
	if !s.enabled {
		return text
	}
	return s.faint.Render(text)
}

// ---- output helpers ----

// printDiags renders diagnostics to a.stderr with source snippets.
func (a *app) printDiags(file *source.File, diags diag.List) error {
	st := newStyles(a.stderr, useColor(a.cfg.Output.Color, a.stderr))
	return diag.RenderAll(a.stderr, file, diags, st.diagStyle())
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("JSON encoding failed: %w", err)
	}
	return nil
}

func printYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("YAML encoding failed: %w", err)
	}
	return enc.Close()
}

func diagsToSlice(diags diag.List) []map[string]interface{} {
	result := make([]map[string]interface{}, len(diags))
	for i, d := range diags {
		result[i] = map[string]interface{}{
			"kind":     d.Kind.String(),
			"code":     d.Code(),
			"severity": d.Severity.String(),
			"message":  d.Message,
			"line":     d.Span.Start.Line,
			"column":   d.Span.Start.Column,
			"offset":   d.Span.Start.Offset,
		}
		if d.Hint != "" {
			result[i]["hint"] = d.Hint
		}
		if len(d.Expected) > 0 {
			expected := make([]string, len(d.Expected))
			for j, k := range d.Expected {
				expected[j] = k.String()
			}
			result[i]["expected"] = expected
		}
	}
	return result
}

// ---- token output helpers ----

func printTokensText(w io.Writer, tokens []token.Token) {
	for _, tok := range tokens {
		fmt.Fprintf(w, "%-12s %-20q %d:%d\n", tok.Kind, tok.Lexeme, tok.Span.Start.Line, tok.Span.Start.Column)
	}
}

func printTokensJSON(w io.Writer, tokens []token.Token, diags diag.List) error {
	type tokenJSON struct {
		Kind   string `json:"kind"`
		Lexeme string `json:"lexeme"`
		Line   int    `json:"line"`
		Column int    `json:"column"`
		Offset int    `json:"offset"`
	}

	toks := make([]tokenJSON, 0, len(tokens))
	for _, tok := range tokens {
		toks = append(toks, tokenJSON{
			Kind:   tok.Kind.String(),
			Lexeme: tok.Lexeme,
			Line:   tok.Span.Start.Line,
			Column: tok.Span.Start.Column,
			Offset: tok.Span.Start.Offset,
		})
	}

	output := map[string]interface{}{
		"tokens":      toks,
		"diagnostics": diagsToSlice(diags),
	}
	return printJSON(w, output)
}
