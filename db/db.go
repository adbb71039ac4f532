package db

import (
	"context"
	"errors"
)

// ErrDb wraps every engine-level statement failure. Callers can test for it
// with errors.Is without depending on driver error types.
var ErrDb = errors.New("database error")

// Result is the normalized outcome of a mutating statement.
//
// InsertedID is the engine-assigned primary key after a single-row insert.
// The sqlite engine reads it from the connection, the postgres engine from a
// RETURNING clause; both surface it here.
type Result struct {
	InsertedID   int64
	AffectedRows int64
}

// Row is one result row keyed by column name. Engines normalize values to
// int64, float64, string, bool, []byte, time.Time or nil; stores own any
// further conversion.
type Row map[string]any

// Adapter is the single call surface over the supported SQL engines.
//
// Statements are authored with `?` positional placeholders. Engines that
// require numbered parameters rewrite them ordinally before dispatch; the
// N arguments are always bound in authoring order on both engines.
type Adapter interface {
	// Execute runs a mutating statement.
	Execute(ctx context.Context, query string, args ...any) (Result, error)

	// FetchOne runs a query and returns the first row, or nil when no row
	// matched. A nil row with nil error is not a failure.
	FetchOne(ctx context.Context, query string, args ...any) (Row, error)

	// FetchAll runs a query and returns every row.
	FetchAll(ctx context.Context, query string, args ...any) ([]Row, error)

	// BootstrapSchema applies the idempotent CREATE IF NOT EXISTS sequence
	// for all portal tables. Table names, columns and foreign keys are
	// identical across engines; only key and time column syntax differs.
	BootstrapSchema(ctx context.Context) error

	Close() error
}
