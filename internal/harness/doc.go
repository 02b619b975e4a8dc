// Package harness runs declarative conformance scenarios against the
// calc engine.
//
// A scenario is a YAML file listing expressions with expected values or
// expected error codes. The harness evaluates every step through the real
// engine backed by an in-memory history store, checks expectations, and
// can snapshot the full outcome against a golden file.
//
// Scenarios serve two purposes: they are executable documentation of the
// evaluator's behavior, and they pin that behavior via golden files so
// accidental changes fail loudly.
package harness
