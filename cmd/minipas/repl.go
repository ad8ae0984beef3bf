package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"minipas/internal/ast"
	"minipas/internal/diag"
	"minipas/internal/lexer"
	"minipas/internal/parser"
	"minipas/internal/source"
)

const replName = "<repl>"

func (a *app) newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session that parses each input",
		Long: `Start an interactive session. Each input is parsed as an expression,
a statement list or, when it starts with 'program', a whole program, and
its syntax tree is printed.

Input continues over several lines until it is complete. Commands:
  :tokens   toggle printing the tokens of each input
  :quit     leave the session (also 'exit' or Ctrl+D)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRepl()
		},
	}
}

func (a *app) runRepl() error {
	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".minipas_history")
	}

	st := newStyles(a.stdout, useColor(a.cfg.Output.Color, a.stdout))
	prompt := st.success("minipas> ")
	contPrompt := st.muted("...      ")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            prompt,
		HistoryFile:       historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return fmt.Errorf("readline init failed: %w", err)
	}
	defer rl.Close()

	fmt.Fprintf(rl.Stdout(), "minipas %s %s\n\n", version, st.muted("(type :quit or Ctrl+D to quit)"))

	var (
		pending    strings.Builder
		echoTokens bool
	)
	errStyle := newStyles(rl.Stderr(), useColor(a.cfg.Output.Color, a.stderr)).diagStyle()

	for {
		if pending.Len() > 0 {
			rl.SetPrompt(contPrompt)
		} else {
			rl.SetPrompt(prompt)
		}

		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if pending.Len() > 0 {
					pending.Reset()
					continue
				}
				fmt.Fprintln(rl.Stdout(), st.muted("(use :quit or Ctrl+D to quit)"))
				continue
			}
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(rl.Stdout())
				return nil
			}
			return err
		}

		if pending.Len() == 0 {
			switch strings.TrimSpace(line) {
			case "":
				continue
			case ":quit", "exit":
				return nil
			case ":tokens":
				echoTokens = !echoTokens
				state := "off"
				if echoTokens {
					state = "on"
				}
				fmt.Fprintf(rl.Stdout(), "token echo %s\n", state)
				continue
			}
		}

		pending.WriteString(line)
		pending.WriteString("\n")
		src := pending.String()

		res := evalInput(src)
		if res.incomplete {
			continue
		}
		pending.Reset()

		if echoTokens {
			tokens, _ := lexer.New(src).Tokenize()
			printTokensText(rl.Stdout(), tokens)
		}
		if len(res.diags) > 0 {
			a.showDiags(rl.Stderr(), src, res.diags, errStyle)
			continue
		}
		for _, out := range res.lines {
			fmt.Fprintln(rl.Stdout(), out)
		}
		a.log.Debug("parsed input", "bytes", len(src), "lines", len(res.lines))
	}
}

// showDiags renders the diagnostics of one input. A failed write is logged
// and the session goes on.
func (a *app) showDiags(w io.Writer, src string, diags diag.List, style diag.Style) {
	if err := diag.RenderAll(w, source.New(replName, src), diags, style); err != nil {
		a.log.Warn("cannot render diagnostics", "err", err)
	}
}

// replResult is the outcome of parsing one REPL input.
type replResult struct {
	lines      []string  // compact AST, one line per top-level node
	diags      diag.List // set when the input is rejected
	incomplete bool      // the input ended early; read another line
}

// evalInput parses src as a whole program when it starts with 'program',
// otherwise as an expression and then as a statement list. When both of
// the latter fail, the attempt that got further decides the diagnostics.
func evalInput(src string) replResult {
	if strings.HasPrefix(strings.TrimSpace(src), "program") {
		prog, diags := parser.Parse(src, parser.Options{})
		if len(diags) > 0 {
			return rejected(diags)
		}
		var buf strings.Builder
		printProgramText(&buf, prog)
		return replResult{lines: strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")}
	}

	expr, exprDiags := parser.ParseExpr(src)
	if len(exprDiags) == 0 {
		return replResult{lines: []string{ast.String(expr)}}
	}
	stmts, stmtDiags := parser.ParseStmts(src)
	if len(stmtDiags) == 0 {
		lines := make([]string, len(stmts))
		for i, s := range stmts {
			lines[i] = ast.String(s)
		}
		return replResult{lines: lines}
	}

	if stmtDiags[0].Span.Start.Offset >= exprDiags[0].Span.Start.Offset {
		return rejected(stmtDiags)
	}
	return rejected(exprDiags)
}

func rejected(diags diag.List) replResult {
	if diags[0].Kind == diag.UnexpectedEndOfInput {
		return replResult{incomplete: true}
	}
	return replResult{diags: diags}
}
