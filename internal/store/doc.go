// Package store persists mapping records, the per-session source to
// replacement tables that make a themed document reversible.
//
// Three adapters implement Store:
//   - FileStore: one indented JSON document per mapping, <dir>/<id>.json
//   - SQLiteStore: a single SQLite database with one row per mapping
//   - MemoryStore: process-local go-cache instance, for tests and dry runs
//
// Saving an existing id silently replaces the prior record. There is no
// locking: concurrent saves of the same id are the caller's problem.
//
// # SQLite Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//
// The forward map column holds compact JSON produced by ir.MarshalForwardMap.
package store
