package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/helpshift/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpRequestService_SaveTrimsTime(t *testing.T) {
	env := setupEnv(t)
	svc := env.requestService()
	ctx := context.Background()
	d := testutil.Date(2026, 10, 20)

	require.NoError(t, svc.Save(ctx, testutil.NewTestHelpRequest(d, "  10-15 ")))

	got, err := svc.Get(ctx, d, "本店")
	require.NoError(t, err)
	assert.Equal(t, "10-15", got.HelpTime)
}

func TestHelpRequestService_UnknownStore(t *testing.T) {
	env := setupEnv(t)
	svc := env.requestService()

	err := svc.Save(context.Background(), testutil.NewTestHelpRequest(testutil.Date(2026, 10, 20), "10-15",
		testutil.WithStore("どこか")))
	assert.ErrorIs(t, err, ErrUnknownStore)
}

func TestHelpRequestService_ListPeriod(t *testing.T) {
	env := setupEnv(t)
	svc := env.requestService()
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, testutil.NewTestHelpRequest(testutil.Date(2026, 11, 15), "10-15")))
	require.NoError(t, svc.Save(ctx, testutil.NewTestHelpRequest(testutil.Date(2026, 11, 16), "10-15")))

	list, err := svc.ListPeriod(ctx, october)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
