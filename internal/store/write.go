package store

import (
	"context"
	"fmt"
	"time"
)

// WriteEntry inserts a history entry.
// Uses ON CONFLICT(id) DO NOTHING for idempotency - duplicate IDs are
// silently ignored. Other constraint violations (e.g., an invalid status)
// still return errors.
//
// If the entry's CreatedAt is zero it is stamped from the store's clock.
// Timestamps are stored as RFC 3339 UTC strings so lexicographic and
// chronological order agree.
func (s *Store) WriteEntry(ctx context.Context, e Entry) error {
	if e.ID == "" {
		return fmt.Errorf("write entry: id must not be empty")
	}

	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO history
		(id, expression, result, status, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		e.ID,
		e.Expression,
		e.Result,
		string(e.Status),
		e.Error,
		createdAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("write entry: %w", err)
	}

	return nil
}
