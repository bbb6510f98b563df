// Package store is the data access layer: a pgx connection pool handle plus
// thin statement helpers the vehicle repository is built on.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrNoResult is returned by single-row queries that matched nothing.
	ErrNoResult = errors.New("store: no result")

	// ErrMultipleResults means a query expected to match at most one row
	// matched several. That is a broken invariant upstream, not a user error.
	ErrMultipleResults = errors.New("store: multiple results")
)

// DB wraps the shared connection pool. It is constructed once at startup and
// injected into every consumer; nothing in this package holds global state.
type DB struct {
	pool *pgxpool.Pool
}

// Open connects a pool to the given postgres URL and verifies it with a ping.
func Open(ctx context.Context, url string) (*DB, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &DB{pool: pool}, nil
}

// Close releases the pool. Safe to call once during shutdown.
func (d *DB) Close() {
	d.pool.Close()
}

// Exec runs a statement for its side effect only.
func (d *DB) Exec(ctx context.Context, sql string, args ...any) error {
	_, err := d.pool.Exec(ctx, sql, args...)
	return err
}

// deleteQuery runs a statement and reports how many rows it affected.
func (d *DB) deleteQuery(ctx context.Context, sql string, args ...any) (int64, error) {
	tag, err := d.pool.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// queryMany materializes every matching row into T, decoded by column name.
// Row order is whatever the database returns; callers must not rely on it.
func queryMany[T any](ctx context.Context, d *DB, sql string, args ...any) ([]T, error) {
	rows, err := d.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[T])
}

// queryOne is queryMany constrained to exactly one row.
func queryOne[T any](ctx context.Context, d *DB, sql string, args ...any) (*T, error) {
	results, err := queryMany[T](ctx, d, sql, args...)
	if err != nil {
		return nil, err
	}
	return exactlyOne(results)
}

func exactlyOne[T any](results []T) (*T, error) {
	switch len(results) {
	case 0:
		return nil, ErrNoResult
	case 1:
		return &results[0], nil
	default:
		return nil, fmt.Errorf("%w: expected 1, got %d", ErrMultipleResults, len(results))
	}
}

// IsUniqueViolation reports whether err is a postgres unique-constraint
// violation (SQLSTATE 23505).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
