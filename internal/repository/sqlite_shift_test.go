package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/helpshift/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShiftRepo_UpsertAndGet(t *testing.T) {
	repo := NewSQLiteShiftRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	d := testutil.Date(2026, 10, 20)

	s := testutil.NewTestShift(d, "AM可,9-12@本店")
	require.NoError(t, repo.Upsert(ctx, s))
	assert.NotNil(t, s.UpdatedAt)

	got, err := repo.Get(ctx, d, "佐渡")
	require.NoError(t, err)
	assert.Equal(t, d, got.Date)
	assert.Equal(t, "佐渡", got.Employee)
	assert.True(t, got.Raw.Present)
	assert.Equal(t, "AM可,9-12@本店", got.Raw.Value)
	assert.NotNil(t, got.UpdatedAt)
}

func TestShiftRepo_UpsertReplacesCell(t *testing.T) {
	repo := NewSQLiteShiftRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	d := testutil.Date(2026, 10, 20)

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestShift(d, "AM可")))
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestShift(d, "休み")))

	got, err := repo.Get(ctx, d, "佐渡")
	require.NoError(t, err)
	assert.Equal(t, "休み", got.Raw.Value)

	all, err := repo.ListRange(ctx, d, d)
	require.NoError(t, err)
	assert.Len(t, all, 1, "upsert must not add a second row")
}

func TestShiftRepo_StoresRawVerbatim(t *testing.T) {
	repo := NewSQLiteShiftRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	d := testutil.Date(2026, 10, 20)

	// Malformed codes are kept as typed; interpretation happens on read.
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestShift(d, " PM可 , 13-17@本店@武店 ")))

	got, err := repo.Get(ctx, d, "佐渡")
	require.NoError(t, err)
	assert.Equal(t, " PM可 , 13-17@本店@武店 ", got.Raw.Value)
}

func TestShiftRepo_AbsentCodeStoredAsNull(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteShiftRepo(database)
	ctx := context.Background()
	d := testutil.Date(2026, 10, 20)

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestShift(d, "", testutil.WithAbsentCode())))

	var isNull bool
	require.NoError(t, database.QueryRow(`SELECT shift IS NULL FROM shifts WHERE employee = '佐渡'`).Scan(&isNull))
	assert.True(t, isNull)

	got, err := repo.Get(ctx, d, "佐渡")
	require.NoError(t, err)
	assert.False(t, got.Raw.Present)
}

func TestShiftRepo_Get_NotFound(t *testing.T) {
	repo := NewSQLiteShiftRepo(testutil.NewTestDB(t))

	_, err := repo.Get(context.Background(), testutil.Date(2026, 10, 20), "佐渡")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestShiftRepo_ListRangeIsInclusiveAndOrdered(t *testing.T) {
	repo := NewSQLiteShiftRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	for _, s := range []struct {
		day      int
		employee string
	}{{15, "佐渡"}, {16, "大塚"}, {16, "佐渡"}, {30, "和田"}, {31, "和田"}} {
		require.NoError(t, repo.Upsert(ctx, testutil.NewTestShift(
			testutil.Date(2026, 10, s.day), "1日可", testutil.WithEmployee(s.employee))))
	}

	got, err := repo.ListRange(ctx, testutil.Date(2026, 10, 16), testutil.Date(2026, 10, 30))
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, 16, got[0].Date.Day())
	assert.Equal(t, "佐渡", got[0].Employee)
	assert.Equal(t, "大塚", got[1].Employee)
	assert.Equal(t, 30, got[2].Date.Day())
}

func TestShiftRepo_ListByEmployee(t *testing.T) {
	repo := NewSQLiteShiftRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	d := testutil.Date(2026, 10, 20)

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestShift(d, "AM可")))
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestShift(d, "PM可", testutil.WithEmployee("大塚"))))

	got, err := repo.ListByEmployee(ctx, "大塚", d, d)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "PM可", got[0].Raw.Value)
}
