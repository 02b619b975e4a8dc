// Package cli implements the calc command tree.
//
// Commands follow one pattern: a New<X>Command constructor receiving the
// shared RootOptions, flag parsing via cobra, and an OutputFormatter that
// renders either text or JSON. Errors carry exit codes via ExitError.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/buildlab/calc/internal/calc"
	"github.com/buildlab/calc/internal/config"
)

// RootOptions holds global flags and loaded config for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string

	// Config is the loaded config file, populated in PersistentPreRunE.
	Config *config.Config
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the calc CLI.
//
// Invoked without a subcommand it prints the demo output: a greeting
// followed by two computed lines. This is the surface a plain
// `bazel run //cmd/calc` exercises.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "calc - a pedagogical Bazel-built calculator",
		Long: `A small integer calculator used to demonstrate building, testing, and
running Go programs with Bazel. Run it bare for the demo output, or use
the subcommands for real evaluation with an optional history log.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to load config", err)
			}
			opts.Config = cfg

			// Flag wins over config file
			if !cmd.Flags().Changed("format") && cfg.Format != "" {
				opts.Format = cfg.Format
			}
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}

			logLevel := slog.LevelWarn
			if opts.Verbose {
				logLevel = slog.LevelDebug
			}
			handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: logLevel,
			})
			slog.SetDefault(slog.New(handler))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(opts, cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to config file (YAML)")

	// Add subcommands
	cmd.AddCommand(NewEvalCommand(opts))
	for _, op := range binaryOps {
		cmd.AddCommand(newBinaryOpCommand(opts, op))
	}
	cmd.AddCommand(NewHistoryCommand(opts))
	cmd.AddCommand(NewVersionCommand(opts))

	return cmd
}

// demoResult is the JSON payload for the demo output.
type demoResult struct {
	Greeting string   `json:"greeting"`
	Add      [3]int64 `json:"add"`      // a, b, result
	Multiply [3]int64 `json:"multiply"` // a, b, result
}

// runDemo prints the fixed greeting plus two computed lines.
func runDemo(opts *RootOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	sum := calc.Add(2, 3)
	product := calc.Multiply(4, 5)

	text := fmt.Sprintf("Hello from Go with Bazel!\nadd(2, 3) = %d\nmultiply(4, 5) = %d", sum, product)
	return formatter.SuccessText(text, demoResult{
		Greeting: "Hello from Go with Bazel!",
		Add:      [3]int64{2, 3, sum},
		Multiply: [3]int64{4, 5, product},
	})
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// Execute runs the root command and returns a process exit code.
func Execute() int {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return GetExitCode(err)
	}
	return ExitSuccess
}
