// Package store provides SQLite-backed durable storage for benchmark results.
//
// The store keeps an append-only log with:
//   - Runs: one row per benchmark session, keyed by a UUIDv7 run ID and
//     carrying the input and settings fingerprints, element type, input
//     length and trials
//   - Results: one row per algorithm reported within a run
//
// # Idempotency
//
//   - runs.id is the primary key; rewriting a run is a no-op
//   - UNIQUE(run_id, algorithm) on results; an algorithm reports once per run
//
// # Ordering
//
// Queries order by run creation time, then run ID, then the result's seq
// within its run. seq is the report order of the session, so a listing reads
// in the same order the benchmark printed.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// # Schema Version
//
// A new database gets schema.sql and user_version 1 in one transaction.
// Reopening checks the version and the column layout of both tables and
// fails with ErrSchemaMismatch for anything else, including a foreign
// SQLite file that already has a runs or results table.
//
// Fingerprints are computed by internal/fingerprint: canonical JSON and
// SHA-256 with domain separation.
package store
