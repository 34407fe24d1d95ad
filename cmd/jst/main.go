package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/vango-dev/jst/internal/config"
	"github.com/vango-dev/jst/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
     _     _
    (_)___| |_
    | (_-<  _|
   _/ /__/\__|
  |__/
`

// app holds state shared by all commands after the root's pre-run.
type app struct {
	configPath string
	verbose    bool
	noColor    bool

	cfg    *config.Config
	logger *slog.Logger
}

func main() {
	a := &app{}
	if err := a.rootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		a.printError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	return (&app{}).rootCmd(stdout, stderr)
}

func (a *app) rootCmd(stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jst",
		Short: "Client-side templating with minimal DOM updates",
		Long: `jst renders component trees and keeps them in sync with a render
target using the smallest set of operations it can find.

The CLI drives the bundled demos:

  • render a demo to HTML
  • serve a demo and stream its DOM operations over WebSocket
  • benchmark the reconciler on random list edits
  • publish rendered pages to a directory or an S3 bucket`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(stderr)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to jst.json or jst.yaml (default: search upwards from the working directory)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", os.Getenv("NO_COLOR") != "", "Disable colored output")

	rootCmd.AddCommand(
		renderCmd(a),
		serveCmd(a),
		benchCmd(a),
		publishCmd(a),
		explainCmd(a),
		versionCmd(),
	)
	return rootCmd
}

// setup loads the configuration and builds the logger.
func (a *app) setup(stderr io.Writer) error {
	var err error
	if a.configPath != "" {
		a.cfg, err = config.LoadFile(a.configPath)
	} else {
		a.cfg, err = config.LoadFromWorkingDir()
	}
	if err != nil {
		return err
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	level := a.cfg.LogLevel()
	if a.verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if a.cfg.Log.Format == "json" {
		handler = slog.NewJSONHandler(stderr, opts)
	} else {
		handler = slog.NewTextHandler(stderr, opts)
	}
	a.logger = slog.New(handler)
	a.logger.Debug("configuration loaded", "path", a.cfg.Path())
	return nil
}

// printer returns the error printer for the current flags and
// configuration. Errors raised before the configuration loads print as text.
func (a *app) printer() errors.Printer {
	return errors.Printer{
		Color: !a.noColor,
		JSON:  a.cfg != nil && a.cfg.Log.Format == "json",
	}
}

func (a *app) printError(w io.Writer, err error) {
	if perr := a.printer().Fprint(w, err); perr != nil {
		fmt.Fprintln(w, err)
	}
}

// success prints a success message.
func (a *app) success(w io.Writer, format string, args ...any) {
	mark := "✓"
	if !a.noColor {
		mark = "\033[32m✓\033[0m"
	}
	fmt.Fprintf(w, "%s %s\n", mark, fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}
