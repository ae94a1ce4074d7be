// Package sqlite provides a SQLite-based implementation of the history store.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
// Applied versions are recorded in schema_migrations.
//
// Sessions store the article text rather than its words; words are
// re-tokenized on load. Timestamps are Unix milliseconds so that ordering
// by recency is a plain integer sort.
//
// # Data Location
//
// By default, the database is stored at ~/.quickread/data/history.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode.
package sqlite
