// Package videos provides the persistence layer for video history entries.
//
// # Overview
//
// The package defines a Repository interface for CRUD and query operations on
// Video models (see internal/models). A SQLite-backed implementation
// (SQLiteRepository) persists data using a dbx.DBTX (either *sql.DB or
// *sql.Tx).
//
// # Data Model
//
// Each entry stores the file path, a display name, an optional rating, a
// soft-delete flag, and creation/last-opened timestamps (unix seconds). A
// partial unique index enforces that at most one active entry holds a given
// path; soft-deleted rows do not participate.
//
// # Errors
//
// Driver-level constraint violations are mapped onto sentinel errors from
// internal/common: ErrDuplicatePath on insert, ErrConflict on undo-delete,
// ErrNotFound when a targeted active row does not exist. Match with errors.Is.
//
// # Concurrency
//
// Implementations are safe for concurrent use when backed by a properly
// configured *sql.DB. When using *sql.Tx (DBTX), follow normal transaction
// scoping rules.
package videos
