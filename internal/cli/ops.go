package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/buildlab/calc/internal/calc"
)

// binaryOp describes one direct arithmetic subcommand.
type binaryOp struct {
	name  string
	short string
	// apply performs the operation. The error is non-nil only for divide.
	apply func(a, b int64) (int64, error)
}

// binaryOps lists the direct operation subcommands in registration order.
var binaryOps = []binaryOp{
	{
		name:  "add",
		short: "Add two integers",
		apply: func(a, b int64) (int64, error) { return calc.Add(a, b), nil },
	},
	{
		name:  "subtract",
		short: "Subtract the second integer from the first",
		apply: func(a, b int64) (int64, error) { return calc.Subtract(a, b), nil },
	},
	{
		name:  "multiply",
		short: "Multiply two integers",
		apply: func(a, b int64) (int64, error) { return calc.Multiply(a, b), nil },
	},
	{
		name:  "divide",
		short: "Divide the first integer by the second",
		apply: calc.Divide,
	},
}

// opResult is the JSON payload for a direct operation.
type opResult struct {
	Operation string `json:"operation"`
	A         int64  `json:"a"`
	B         int64  `json:"b"`
	Value     int64  `json:"value"`
}

// newBinaryOpCommand creates a direct operation command like `calc add 2 3`.
func newBinaryOpCommand(rootOpts *RootOptions, op binaryOp) *cobra.Command {
	return &cobra.Command{
		Use:           fmt.Sprintf("%s <a> <b>", op.name),
		Short:         op.short,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBinaryOp(rootOpts, op, args, cmd)
		},
	}
}

func runBinaryOp(opts *RootOptions, op binaryOp, args []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	a, err := parseOperand(args[0])
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("invalid operand %q", args[0]), err)
	}
	b, err := parseOperand(args[1])
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("invalid operand %q", args[1]), err)
	}

	value, err := op.apply(a, b)
	if err != nil {
		if errors.Is(err, calc.ErrDivideByZero) {
			if outErr := formatter.Error("DIVIDE_BY_ZERO", "division by zero",
				map[string]any{"a": a, "b": b}); outErr != nil {
				return WrapExitError(ExitCommandError, "failed to write output", outErr)
			}
			return WrapExitError(ExitFailure, "evaluation failed", err)
		}
		return WrapExitError(ExitCommandError, "operation failed", err)
	}

	text := fmt.Sprintf("%s(%d, %d) = %s", op.name, a, b, formatInt(value))
	if err := formatter.SuccessText(text, opResult{Operation: op.name, A: a, B: b, Value: value}); err != nil {
		return WrapExitError(ExitCommandError, "failed to write output", err)
	}
	return nil
}

func parseOperand(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}
