package db

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	assert.Equal(t, ":memory:", dsn(":memory:"))
	assert.Equal(t, "/tmp/h.db?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", dsn("/tmp/h.db"))
}

func TestOpenDB_EveryConnectionWaitsForLocks(t *testing.T) {
	database, err := OpenDB(filepath.Join(t.TempDir(), "helpshift.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	ctx := context.Background()

	// Hold several connections at once so the pool has to open new ones.
	conns := make([]*sql.Conn, 3)
	for i := range conns {
		c, err := database.Conn(ctx)
		require.NoError(t, err)
		conns[i] = c
	}
	t.Cleanup(func() {
		for _, c := range conns {
			c.Close()
		}
	})

	for i, c := range conns {
		var timeout int
		require.NoError(t, c.QueryRowContext(ctx, "PRAGMA busy_timeout").Scan(&timeout))
		assert.Equal(t, busyTimeoutMS, timeout, "connection %d", i)

		var mode string
		require.NoError(t, c.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&mode))
		assert.Equal(t, "wal", mode, "connection %d", i)
	}
}
