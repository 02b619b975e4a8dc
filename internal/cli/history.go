package cli

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/buildlab/calc/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
	Limit    int
	Status   string
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded evaluations, newest first",
		Long: `List evaluations recorded in the history database, newest first.

Example:
  calc history --db ./history.db
  calc history --db ./history.db --limit 5 --status error`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite history database")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "maximum entries to list (default from config)")
	cmd.Flags().StringVar(&opts.Status, "status", "", "filter by outcome (ok|error)")

	return cmd
}

// historyEntry is the JSON payload for one listed entry.
type historyEntry struct {
	ID         string `json:"id"`
	Expression string `json:"expression"`
	Result     int64  `json:"result"`
	Status     string `json:"status"`
	Error      string `json:"error,omitempty"`
	CreatedAt  string `json:"created_at"`
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	path := resolveDatabase(opts.RootOptions, opts.Database)
	if path == "" {
		return NewExitError(ExitCommandError,
			"no history database configured: pass --db or set database in the config file")
	}

	status, err := parseStatusFilter(opts.Status)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --status", err)
	}

	limit := opts.Limit
	if !cmd.Flags().Changed("limit") && opts.Config != nil {
		limit = opts.Config.HistoryLimit
	}

	st, err := openHistoryStore(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing history database", "error", closeErr)
		}
	}()

	entries, err := st.ListEntries(cmd.Context(), store.ListOptions{Limit: limit, Status: status})
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read history", err)
	}

	payload := make([]historyEntry, 0, len(entries))
	for _, e := range entries {
		payload = append(payload, historyEntry{
			ID:         e.ID,
			Expression: e.Expression,
			Result:     e.Result,
			Status:     string(e.Status),
			Error:      e.Error,
			CreatedAt:  e.CreatedAt.Format(time.RFC3339),
		})
	}

	if err := formatter.SuccessText(renderHistoryText(entries), payload); err != nil {
		return WrapExitError(ExitCommandError, "failed to write output", err)
	}
	return nil
}

// renderHistoryText renders entries as aligned text lines.
func renderHistoryText(entries []store.Entry) string {
	if len(entries) == 0 {
		return "No history entries."
	}

	var sb strings.Builder
	for i, e := range entries {
		if i > 0 {
			sb.WriteString("\n")
		}
		ts := e.CreatedAt.Format("2006-01-02 15:04:05")
		if e.Status == store.StatusOK {
			fmt.Fprintf(&sb, "%s  ok     %s = %s", ts, e.Expression, formatInt(e.Result))
		} else {
			fmt.Fprintf(&sb, "%s  error  %s  (%s)", ts, e.Expression, e.Error)
		}
	}
	return sb.String()
}

func parseStatusFilter(s string) (store.Status, error) {
	switch s {
	case "":
		return "", nil
	case "ok":
		return store.StatusOK, nil
	case "error":
		return store.StatusError, nil
	}
	return "", fmt.Errorf("must be %q or %q, got %q", "ok", "error", s)
}
