package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/helpshift/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpRequestRepo_UpsertAndGet(t *testing.T) {
	repo := NewSQLiteHelpRequestRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	d := testutil.Date(2026, 10, 20)

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestHelpRequest(d, "10-15")))
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestHelpRequest(d, "13-18")))

	got, err := repo.Get(ctx, d, "本店")
	require.NoError(t, err)
	assert.Equal(t, "13-18", got.HelpTime)
	assert.Equal(t, "本店", got.Store)
}

func TestHelpRequestRepo_EmptyTimeStoredAsNull(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteHelpRequestRepo(database)
	ctx := context.Background()
	d := testutil.Date(2026, 10, 20)

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestHelpRequest(d, "")))

	var isNull bool
	require.NoError(t, database.QueryRow(
		`SELECT help_time IS NULL FROM store_help_requests WHERE store = '本店'`).Scan(&isNull))
	assert.True(t, isNull)

	got, err := repo.Get(ctx, d, "本店")
	require.NoError(t, err)
	assert.Empty(t, got.HelpTime)
}

func TestHelpRequestRepo_Get_NotFound(t *testing.T) {
	repo := NewSQLiteHelpRequestRepo(testutil.NewTestDB(t))

	_, err := repo.Get(context.Background(), testutil.Date(2026, 10, 20), "本店")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHelpRequestRepo_ListRange(t *testing.T) {
	repo := NewSQLiteHelpRequestRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestHelpRequest(testutil.Date(2026, 10, 16), "9-12", testutil.WithStore("武店"))))
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestHelpRequest(testutil.Date(2026, 10, 16), "10-15")))
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestHelpRequest(testutil.Date(2026, 11, 16), "10-15")))

	got, err := repo.ListRange(ctx, testutil.Date(2026, 10, 16), testutil.Date(2026, 11, 15))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "本店", got[0].Store)
	assert.Equal(t, "武店", got[1].Store)
}
