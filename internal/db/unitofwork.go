package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// DBTX is what the repositories need: *sql.DB outside a unit of work and
// *sql.Tx inside one.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)

// ErrSnapshotWrite is returned when a statement runs against a snapshot.
var ErrSnapshotWrite = errors.New("write attempted inside a read snapshot")

// UnitOfWork scopes repository calls to one transaction.
//
// WithinTx commits the writes made by fn, or none of them. WithinSnapshot
// gives fn a read view that stays consistent across several queries, so a
// help table and its request tables never mix two states of the grid; it
// always rolls back and rejects ExecContext.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error
	WithinSnapshot(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error
}

type SQLiteUnitOfWork struct {
	db *sql.DB
}

func NewSQLiteUnitOfWork(db *sql.DB) *SQLiteUnitOfWork {
	return &SQLiteUnitOfWork{db: db}
}

func (u *SQLiteUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error {
	return u.run(ctx, "write", fn, func(tx *sql.Tx) DBTX { return tx }, (*sql.Tx).Commit)
}

func (u *SQLiteUnitOfWork) WithinSnapshot(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error {
	return u.run(ctx, "snapshot", fn, func(tx *sql.Tx) DBTX { return snapshotTx{tx} }, (*sql.Tx).Rollback)
}

func (u *SQLiteUnitOfWork) run(
	ctx context.Context,
	kind string,
	fn func(ctx context.Context, tx DBTX) error,
	wrap func(*sql.Tx) DBTX,
	finish func(*sql.Tx) error,
) error {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning %s transaction: %w", kind, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(ctx, wrap(tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := finish(tx); err != nil {
		return fmt.Errorf("finishing %s transaction: %w", kind, err)
	}
	return nil
}

// snapshotTx forwards reads and refuses writes.
type snapshotTx struct {
	tx *sql.Tx
}

func (s snapshotTx) ExecContext(context.Context, string, ...any) (sql.Result, error) {
	return nil, ErrSnapshotWrite
}

func (s snapshotTx) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return s.tx.QueryContext(ctx, query, args...)
}

func (s snapshotTx) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return s.tx.QueryRowContext(ctx, query, args...)
}
