package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"minipas/internal/config"
	"minipas/internal/diag"
	"minipas/internal/parser"
	"minipas/internal/source"
)

// errDiagnostics signals that diagnostics were already printed; main exits
// non-zero without printing anything else.
var errDiagnostics = errors.New("source has diagnostics")

// app carries the state shared by all commands.
type app struct {
	cfgFile string
	verbose bool

	cfg    *config.Config
	log    *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, cfg: config.Default()}
	a.log = newLogger(stderr, false)

	root := &cobra.Command{
		Use:   "minipas",
		Short: "minipas - lexer and parser for a small Pascal-like language",
		Long: `minipas checks programs written in a small, statically typed,
Pascal-inspired teaching language and prints their tokens or syntax tree.

Configuration is read from --config, or from minipas.toml, minipas.yaml or
minipas.yml in the working directory.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./minipas.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		a.newTokensCmd(),
		a.newParseCmd(),
		a.newRunCmd(),
		a.newReplCmd(),
		newVersionCmd(),
	)
	return root
}

// setup configures logging and loads the configuration before any command runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	a.log = newLogger(a.stderr, a.verbose)

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}
	cfg, path, err := config.Resolve(a.cfgFile, wd, os.Getenv)
	if err != nil {
		return err
	}
	if path != "" {
		a.log.Debug("loaded config", "path", path)
	} else {
		a.log.Debug("no config file found, using defaults", "dir", wd)
	}
	a.cfg = cfg
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// readSource reads a source file into a line-indexed source.File.
func (a *app) readSource(filename string) (*source.File, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot read file %s: %w", filename, err)
	}
	a.log.Debug("read source", "file", filename, "bytes", len(data))
	return source.New(filename, string(data)), nil
}

// parseOptions builds parser options from the configuration. In verbose
// mode every diagnostic is also logged as it is found.
func (a *app) parseOptions() parser.Options {
	opts := parser.Options{
		Recover:   a.cfg.Parse.Recover,
		MaxErrors: a.cfg.Parse.MaxErrors,
	}
	if a.verbose {
		opts.Emit = func(d diag.Diagnostic) {
			a.log.Debug("diagnostic", "code", d.Code(), "at", d.Span.Start.String(), "message", d.Message)
		}
	}
	return opts
}

// timed logs how long fn took at debug level.
func (a *app) timed(what string, fn func()) {
	start := time.Now()
	fn()
	a.log.Debug(what, "elapsed", time.Since(start))
}
