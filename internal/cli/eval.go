package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/buildlab/calc/internal/engine"
	"github.com/buildlab/calc/internal/expr"
	"github.com/buildlab/calc/internal/store"
)

// EvalOptions holds flags for the eval command.
type EvalOptions struct {
	*RootOptions
	Database string
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate an integer expression",
		Long: `Evaluate an integer infix expression with +, -, *, /, parentheses,
and unary minus. Division truncates toward zero.

When a history database is configured (--db flag or config file), the
evaluation is recorded there, including failures.

Example:
  calc eval "2 + 3 * 4"
  calc eval --db ./history.db "(1 + 2) * 3"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite history database (optional)")

	return cmd
}

func runEval(opts *EvalOptions, expression string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	var st *store.Store
	if path := resolveDatabase(opts.RootOptions, opts.Database); path != "" {
		var err error
		if st, err = openHistoryStore(path); err != nil {
			return err
		}
		defer func() {
			if closeErr := st.Close(); closeErr != nil {
				slog.Error("error closing history database", "error", closeErr)
			}
		}()
		formatter.VerboseLog("Recording to %s", path)
	}

	eng := engine.New(st, engine.UUIDv7Generator{})

	res, err := eng.Evaluate(cmd.Context(), expression)
	if err != nil {
		var exprErr *expr.Error
		if errors.As(err, &exprErr) {
			if outErr := formatter.Error(string(exprErr.Code), exprErr.Message,
				map[string]any{"expression": expression, "position": exprErr.Pos}); outErr != nil {
				return WrapExitError(ExitCommandError, "failed to write output", outErr)
			}
			return WrapExitError(ExitFailure, "evaluation failed", err)
		}
		return WrapExitError(ExitCommandError, "evaluation error", err)
	}

	text := fmt.Sprintf("%s = %s", res.Expression, formatInt(res.Value))
	if err := formatter.SuccessText(text, res); err != nil {
		return WrapExitError(ExitCommandError, "failed to write output", err)
	}
	return nil
}
