// Package engine coordinates a single calc evaluation: parse and evaluate
// the expression, stamp an entry ID, and record the outcome in the history
// store. Both successes and failures are recorded, so the history is a
// complete log of what the user asked for.
package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/buildlab/calc/internal/expr"
	"github.com/buildlab/calc/internal/store"
)

// IDGenerator generates unique entry IDs.
// Implemented by UUIDv7Generator (production) and FixedGenerator (tests).
type IDGenerator interface {
	Generate() string
}

// Result is the outcome of a successful evaluation.
type Result struct {
	// EntryID is the history entry ID, empty when recording is disabled.
	EntryID string `json:"entry_id,omitempty"`

	// Expression is the input as the user entered it.
	Expression string `json:"expression"`

	// Value is the evaluated int64 value.
	Value int64 `json:"value"`
}

// Engine evaluates expressions and records outcomes.
type Engine struct {
	store *store.Store // nil disables history recording
	idGen IDGenerator
}

// New creates an Engine. A nil store disables recording; evaluations then
// leave no trace beyond the returned Result.
func New(st *store.Store, idGen IDGenerator) *Engine {
	return &Engine{store: st, idGen: idGen}
}

// Evaluate evaluates an expression and, when a store is configured,
// appends a history entry for the outcome.
//
// On evaluation failure the returned error is the *expr.Error from the
// evaluator; the failure is still recorded (status "error") before
// returning. A store write failure takes precedence over reporting the
// evaluation outcome, since a silently lost entry would make the history
// unreliable.
func (e *Engine) Evaluate(ctx context.Context, expression string) (Result, error) {
	value, evalErr := expr.Eval(expression)

	res := Result{Expression: expression, Value: value}
	if e.store != nil {
		entry := store.Entry{
			ID:         e.idGen.Generate(),
			Expression: expression,
			Result:     value,
			Status:     store.StatusOK,
		}
		if evalErr != nil {
			entry.Result = 0
			entry.Status = store.StatusError
			entry.Error = evalErr.Error()
		}

		if err := e.store.WriteEntry(ctx, entry); err != nil {
			return Result{}, fmt.Errorf("record evaluation: %w", err)
		}
		res.EntryID = entry.ID
		slog.Debug("recorded evaluation", "entry_id", entry.ID, "status", entry.Status)
	}

	if evalErr != nil {
		return Result{}, evalErr
	}
	return res, nil
}
