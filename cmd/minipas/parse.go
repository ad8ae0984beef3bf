package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"minipas/internal/ast"
	"minipas/internal/config"
	"minipas/internal/diag"
	"minipas/internal/parser"
	"minipas/internal/source"
)

func (a *app) newParseCmd() *cobra.Command {
	var (
		format      string
		recoverMode bool
		maxErrors   int
	)
	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a source file and print its syntax tree",
		Long: `Parse a source file and print its syntax tree.

The text format prints the program header, each declaration and each
top-level statement on its own line. The json and yaml formats print the
full tree with spans, together with any diagnostics.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("format") {
				a.cfg.Output.Format = format
			}
			if cmd.Flags().Changed("recover") {
				a.cfg.Parse.Recover = recoverMode
			}
			if cmd.Flags().Changed("max-errors") {
				a.cfg.Parse.MaxErrors = maxErrors
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			return a.runParse(args[0])
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", config.FormatText, "output format: text, json or yaml")
	cmd.Flags().BoolVar(&recoverMode, "recover", false, "keep parsing after errors to report more of them")
	cmd.Flags().IntVar(&maxErrors, "max-errors", config.DefaultMaxErrors, "diagnostic limit in recovery mode")
	return cmd
}

func (a *app) runParse(filename string) error {
	file, err := a.readSource(filename)
	if err != nil {
		return err
	}

	prog, diags := a.checkSource(file)

	switch a.cfg.Output.Format {
	case config.FormatJSON, config.FormatYAML:
		output := map[string]interface{}{
			"ast":         ast.NodeToMap(nodeOrNil(prog)),
			"diagnostics": diagsToSlice(diags),
		}
		if a.cfg.Output.Format == config.FormatJSON {
			err = printJSON(a.stdout, output)
		} else {
			err = printYAML(a.stdout, output)
		}
		if err != nil {
			return err
		}
	default:
		if prog != nil {
			printProgramText(a.stdout, prog)
		}
		if err := a.printDiags(file, diags); err != nil {
			return err
		}
	}

	if len(diags) > 0 {
		return errDiagnostics
	}
	return nil
}

// nodeOrNil keeps a nil program from becoming a non-nil ast.Node.
func nodeOrNil(prog *ast.Program) ast.Node {
	if prog == nil {
		return nil
	}
	return prog
}

// printProgramText prints the program header, each declaration and each
// top-level statement on its own line.
func printProgramText(w io.Writer, prog *ast.Program) {
	fmt.Fprintf(w, "Program(%s)\n", prog.Name.Name)
	for _, d := range prog.Decls {
		fmt.Fprintln(w, ast.String(d))
	}
	for _, s := range prog.Body {
		fmt.Fprintln(w, ast.String(s))
	}
}

// checkSource parses file with the configured options, for run and repl.
func (a *app) checkSource(file *source.File) (*ast.Program, diag.List) {
	var (
		prog  *ast.Program
		diags diag.List
	)
	a.timed("parsed", func() {
		prog, diags = parser.Parse(file.Text(), a.parseOptions())
	})
	return prog, diags
}
