package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"minipas/internal/ast"
)

// renderProgram lists the program header, each declaration and each
// top-level statement on its own line.
func renderProgram(prog *ast.Program) string {
	lines := []string{"Program(" + prog.Name.Name + ")"}
	for _, d := range prog.Decls {
		lines = append(lines, ast.String(d))
	}
	for _, s := range prog.Body {
		lines = append(lines, ast.String(s))
	}
	return strings.Join(lines, "\n")
}

// goldenTest parses a .mp file and compares the result to the file with the
// given extension: .ast for accepted programs, .err for rejected ones, which
// are parsed in recovery mode.
func goldenTest(t *testing.T, name, ext string) {
	t.Helper()

	srcPath := filepath.Join("..", "..", "testdata", name+".mp")
	expectedPath := filepath.Join("..", "..", "testdata", name+ext)

	source, err := os.ReadFile(srcPath)
	if err != nil {
		t.Fatalf("failed to read %s: %v", srcPath, err)
	}
	expected, err := os.ReadFile(expectedPath)
	if err != nil {
		t.Fatalf("failed to read %s: %v", expectedPath, err)
	}

	var got string
	switch ext {
	case ".ast":
		prog, diags := Parse(string(source), Options{})
		if len(diags) > 0 {
			t.Fatalf("parse errors: %v", diags)
		}
		got = renderProgram(prog)
	case ".err":
		prog, diags := Parse(string(source), Options{Recover: true})
		if prog != nil {
			t.Fatalf("expected %s to be rejected", name)
		}
		got = diags.Error()
	}

	expectedStr := strings.TrimRight(string(expected), "\n")
	gotStr := strings.TrimRight(got, "\n")

	if gotStr != expectedStr {
		expectedLines := strings.Split(expectedStr, "\n")
		gotLines := strings.Split(gotStr, "\n")

		t.Errorf("output mismatch for %s", name)
		maxLines := len(expectedLines)
		if len(gotLines) > maxLines {
			maxLines = len(gotLines)
		}
		for i := 0; i < maxLines; i++ {
			exp, g := "<missing>", "<missing>"
			if i < len(expectedLines) {
				exp = expectedLines[i]
			}
			if i < len(gotLines) {
				g = gotLines[i]
			}
			prefix := "  "
			if exp != g {
				prefix = "! "
			}
			t.Logf("%sline %d: expected=%q got=%q", prefix, i+1, exp, g)
		}
	}
}

func TestGoldenDemo(t *testing.T) {
	goldenTest(t, "golden_demo", ".ast")
}

func TestGoldenLoops(t *testing.T) {
	goldenTest(t, "golden_loops", ".ast")
}

func TestGoldenExprs(t *testing.T) {
	goldenTest(t, "golden_exprs", ".ast")
}

func TestGoldenErrors(t *testing.T) {
	goldenTest(t, "golden_errors", ".err")
}
