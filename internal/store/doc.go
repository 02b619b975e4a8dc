// Package store provides durable storage for the calc evaluation history.
//
// The history is an append-only SQLite log: one row per evaluation,
// successful or not. Writes are idempotent on entry ID so replaying a
// recording never duplicates rows, and reads use a fixed ordering so
// listings are deterministic.
package store
