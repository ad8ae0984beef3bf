package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <file>",
		Short: "Check a source file and report whether it is a valid program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(args[0])
		},
	}
}

func (a *app) runCheck(filename string) error {
	file, err := a.readSource(filename)
	if err != nil {
		return err
	}

	prog, diags := a.checkSource(file)
	if len(diags) > 0 {
		if err := a.printDiags(file, diags); err != nil {
			return err
		}
		return errDiagnostics
	}

	st := newStyles(a.stdout, useColor(a.cfg.Output.Color, a.stdout))
	fmt.Fprintf(a.stdout, "%s program %s\n", st.success("ok:"), prog.Name.Name)
	return nil
}
