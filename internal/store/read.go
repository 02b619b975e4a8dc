package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNotFound is returned by GetEntry when no entry has the given ID.
var ErrNotFound = errors.New("entry not found")

// ListOptions narrows a ListEntries query.
type ListOptions struct {
	// Limit caps the number of returned entries. Zero means no limit.
	Limit int

	// Status filters by outcome. Empty means both outcomes.
	Status Status
}

// ListEntries returns history entries, newest first.
// Ordering is deterministic: ORDER BY created_at DESC, id COLLATE BINARY DESC,
// so entries recorded in the same instant still list in a stable order.
//
// Returns an empty slice (not nil) when no entries match.
func (s *Store) ListEntries(ctx context.Context, opts ListOptions) ([]Entry, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT id, expression, result, status, error, created_at
		FROM history
	`)

	var args []any
	if opts.Status != "" {
		sb.WriteString(" WHERE status = ?")
		args = append(args, string(opts.Status))
	}

	sb.WriteString(" ORDER BY created_at DESC, id COLLATE BINARY DESC")

	if opts.Limit > 0 {
		sb.WriteString(" LIMIT ?")
		args = append(args, opts.Limit)
	}

	rows, err := s.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}

	return entries, nil
}

// GetEntry returns the entry with the given ID.
// Returns ErrNotFound if no such entry exists.
func (s *Store) GetEntry(ctx context.Context, id string) (Entry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, expression, result, status, error, created_at
		FROM history
		WHERE id = ?
	`, id)

	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("get entry %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return Entry{}, err
	}
	return e, nil
}

// CountEntries returns the number of recorded entries with the given
// status, or all entries if status is empty.
func (s *Store) CountEntries(ctx context.Context, status Status) (int64, error) {
	query := "SELECT COUNT(*) FROM history"
	var args []any
	if status != "" {
		query += " WHERE status = ?"
		args = append(args, string(status))
	}

	var count int64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count history: %w", err)
	}
	return count, nil
}

// scanner abstracts *sql.Row and *sql.Rows for scanEntry.
type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (Entry, error) {
	var e Entry
	var status, createdAt string

	if err := row.Scan(&e.ID, &e.Expression, &e.Result, &status, &e.Error, &createdAt); err != nil {
		return Entry{}, err
	}

	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return Entry{}, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}

	e.Status = Status(status)
	e.CreatedAt = ts
	return e, nil
}
