package cli

import (
	"github.com/buildlab/calc/internal/store"
)

// resolveDatabase picks the history database path: the --db flag when
// set, otherwise the config file's database setting. Empty means no
// history recording.
func resolveDatabase(opts *RootOptions, flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if opts.Config != nil {
		return opts.Config.Database
	}
	return ""
}

// openHistoryStore opens the history database at path.
// Callers are responsible for closing the returned store.
func openHistoryStore(path string) (*store.Store, error) {
	st, err := store.Open(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open history database", err)
	}
	return st, nil
}
