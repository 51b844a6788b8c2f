package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/alexanderramin/helpshift/internal/contract"
	"github.com/alexanderramin/helpshift/internal/shiftcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.events = append(r.events, e)
}

func TestTableService_ReportsUseCase(t *testing.T) {
	env := setupEnv(t)
	obs := &recordingObserver{}

	_, err := env.tableService(obs).HelpTable(context.Background(), contract.HelpTableRequest{Period: october})
	require.NoError(t, err)

	require.Len(t, obs.events, 1)
	ev := obs.events[0]
	assert.Equal(t, "help-table", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, "2026-10", ev.Fields["period"])
	assert.Equal(t, 31, ev.Fields["rows"])
}

func TestTableService_ReportsFailure(t *testing.T) {
	env := setupEnv(t)
	obs := &recordingObserver{}

	_, err := env.tableService(obs).RequestTable(context.Background(), contract.RequestTableRequest{Period: october, Area: "月面"})
	require.Error(t, err)

	require.Len(t, obs.events, 1)
	assert.False(t, obs.events[0].Success)
	assert.ErrorIs(t, obs.events[0].Err, ErrUnknownArea)
}

func TestLogUseCaseObserver_IncludesRequestID(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf, slog.LevelInfo)

	ctx := WithRequestID(context.Background())
	id, ok := RequestID(ctx)
	require.True(t, ok)
	assert.Equal(t, ctx, WithRequestID(ctx), "existing ID is kept")

	obs.ObserveUseCase(ctx, UseCaseEvent{Name: "save-shift", Success: true})

	out := buf.String()
	assert.Contains(t, out, "msg=service_use_case")
	assert.Contains(t, out, "use_case=save-shift")
	assert.Contains(t, out, "request_id="+id)
}

func TestNewLogUseCaseObserver_NilWriterIsNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil, slog.LevelInfo))
}

func TestLogUseCaseObserver_RejectedInputIsWarning(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf, slog.LevelInfo)

	err := fmt.Errorf("%w: 山田", ErrUnknownEmployee)
	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "save-shift", Err: err})
	assert.Contains(t, buf.String(), "level=WARN")

	buf.Reset()
	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "save-shift", Err: errors.New("disk I/O error")})
	assert.Contains(t, buf.String(), "level=ERROR")
}

func TestLogUseCaseObserver_NamesMalformedCell(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf, slog.LevelInfo)

	err := &shiftcode.TimeFormatError{Token: "朝", Date: "2026-10-20", Employee: "佐渡", Store: "本店"}
	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:   "store-schedule",
		Err:    fmt.Errorf("building schedule: %w", err),
		Fields: map[string]any{"period": "2026-10", "stores": 0},
	})

	out := buf.String()
	assert.Contains(t, out, "cell.date=2026-10-20")
	assert.Contains(t, out, "cell.employee=佐渡")
	assert.Contains(t, out, "cell.token=朝")
	assert.Less(t, strings.Index(out, "period="), strings.Index(out, "stores="), "fields are logged in key order")
}
