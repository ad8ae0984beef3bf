package main

import (
	"github.com/spf13/cobra"

	"minipas/internal/lexer"
)

func (a *app) newTokensCmd() *cobra.Command {
	var jsonMode bool
	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Tokenize a source file and print the tokens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTokens(args[0], jsonMode)
		},
	}
	cmd.Flags().BoolVar(&jsonMode, "json", false, "print tokens as JSON")
	return cmd
}

func (a *app) runTokens(filename string, jsonMode bool) error {
	file, err := a.readSource(filename)
	if err != nil {
		return err
	}

	tokens, diags := lexer.New(file.Text()).Tokenize()
	a.log.Debug("tokenized", "tokens", len(tokens), "diagnostics", len(diags))

	if jsonMode {
		if err := printTokensJSON(a.stdout, tokens, diags); err != nil {
			return err
		}
	} else {
		printTokensText(a.stdout, tokens)
		if err := a.printDiags(file, diags); err != nil {
			return err
		}
	}

	if len(diags) > 0 {
		return errDiagnostics
	}
	return nil
}
