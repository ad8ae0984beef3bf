// Command minipas is the CLI entry point for the minipas front end.
//
// Usage:
//
//	minipas tokens <file> [--json]                  Print tokens
//	minipas parse  <file> [--format f] [--recover]  Print the AST
//	minipas run    <file>                           Check a source file
//	minipas repl                                    Start interactive REPL
//	minipas version                                 Print the version
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		if !errors.Is(err, errDiagnostics) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}
