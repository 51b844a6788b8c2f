package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/helpshift/internal/db"
)

// FaultyUoW is a UnitOfWork over a real database that fails on demand.
//
// FailOnExec > 0 makes that statement of a write transaction (counted from 1)
// return Err. CommitErr rolls back a write transaction whose callback
// succeeded and reports the error as a failed commit. SnapshotErr fails every
// snapshot before it starts.
type FaultyUoW struct {
	DB          *sql.DB
	FailOnExec  int32
	Err         error
	CommitErr   error
	SnapshotErr error
}

var _ db.UnitOfWork = (*FaultyUoW)(nil)

func (u *FaultyUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning write transaction: %w", err)
	}

	wrapped := &failOnNthExec{DBTX: tx, failOn: u.FailOnExec, err: u.Err}
	if fnErr := fn(ctx, wrapped); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	if u.CommitErr != nil {
		_ = tx.Rollback()
		return fmt.Errorf("finishing write transaction: %w", u.CommitErr)
	}
	return tx.Commit()
}

func (u *FaultyUoW) WithinSnapshot(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	if u.SnapshotErr != nil {
		return fmt.Errorf("beginning snapshot transaction: %w", u.SnapshotErr)
	}
	return db.NewSQLiteUnitOfWork(u.DB).WithinSnapshot(ctx, fn)
}

type failOnNthExec struct {
	db.DBTX
	count  atomic.Int32
	failOn int32
	err    error
}

func (f *failOnNthExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if n := f.count.Add(1); f.failOn > 0 && n == f.failOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
