package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/helpshift/internal/contract"
	"github.com/alexanderramin/helpshift/internal/shiftcode"
	"github.com/alexanderramin/helpshift/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedShift(t *testing.T, env testEnv, day int, month int, employee, code string) {
	t.Helper()
	d := testutil.Date(2026, 10, day)
	if month == 11 {
		d = testutil.Date(2026, 11, day)
	}
	testutil.SeedShifts(t, env.shifts, testutil.NewTestShift(d, code, testutil.WithEmployee(employee)))
}

func TestHelpTable_CoversPeriodAndRoster(t *testing.T) {
	env := setupEnv(t)
	seedShift(t, env, 20, 10, "佐渡", "AM可,9-12@本店")

	resp, err := env.tableService().HelpTable(context.Background(),
		contract.HelpTableRequest{Period: october, Medium: shiftcode.MediumScreen})
	require.NoError(t, err)

	require.Len(t, resp.Rows, 31)
	assert.Equal(t, env.dir.Employees(), resp.Employees)
	assert.Equal(t, "10/16", resp.Rows[0].Day.DateLabel)
	assert.Equal(t, "金", resp.Rows[0].Day.Weekday)

	row := resp.Rows[4]
	require.Len(t, row.Cells, len(env.dir.Employees()))
	cell := row.Cells[0]
	assert.Equal(t, "佐渡", cell.Employee)
	assert.Equal(t, shiftcode.KindAM, cell.Parsed.Kind)
	assert.Equal(t, "AM可\n9-12@本店", cell.Presented.Text())
	assert.Equal(t, shiftcode.Color("#0070C2"), cell.Presented.Spans[1].Color)

	// Cells without data are Dash.
	assert.Equal(t, "-", row.Cells[1].Presented.Text())
}

func TestHelpTable_RowBackgrounds(t *testing.T) {
	env := setupEnv(t)
	pal := shiftcode.DefaultPalette()

	resp, err := env.tableService().HelpTable(context.Background(),
		contract.HelpTableRequest{Period: october, Medium: shiftcode.MediumPrint})
	require.NoError(t, err)

	assert.Empty(t, resp.Rows[0].Day.Background, "friday")
	assert.Equal(t, pal.Saturday, resp.Rows[1].Day.Background)
	assert.Equal(t, pal.Holiday, resp.Rows[2].Day.Background)

	culture := resp.Rows[18]
	assert.Equal(t, "11/03", culture.Day.DateLabel)
	assert.Equal(t, "文化の日", culture.Day.HolidayName)
	assert.Equal(t, pal.Holiday, culture.Day.Background)
	assert.Equal(t, pal.Holiday, culture.Cells[0].Presented.RowBackground)
}

func TestHelpTable_PlainMediumHasNoStyling(t *testing.T) {
	env := setupEnv(t)
	seedShift(t, env, 18, 10, "佐渡", "AM可,9-12@本店")

	resp, err := env.tableService().HelpTable(context.Background(),
		contract.HelpTableRequest{Period: october, Medium: shiftcode.MediumPlain})
	require.NoError(t, err)

	cell := resp.Rows[2].Cells[0]
	assert.Equal(t, "AM可,9-12@本店", cell.Presented.Text())
	assert.Empty(t, resp.Rows[2].Day.Background)
}

func TestHelpTable_EmployeeSubset(t *testing.T) {
	env := setupEnv(t)
	svc := env.tableService()

	resp, err := svc.HelpTable(context.Background(),
		contract.HelpTableRequest{Period: october, Employees: []string{"大塚"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"大塚"}, resp.Employees)
	assert.Len(t, resp.Rows[0].Cells, 1)

	_, err = svc.HelpTable(context.Background(),
		contract.HelpTableRequest{Period: october, Employees: []string{"誰か"}})
	assert.ErrorIs(t, err, ErrUnknownEmployee)
}

func TestHelpTable_Paging(t *testing.T) {
	env := setupEnv(t)

	resp, err := env.tableService().HelpTable(context.Background(), contract.HelpTableRequest{Period: october})
	require.NoError(t, err)

	assert.Len(t, resp.Page(0, 15), 15)
	assert.Len(t, resp.Page(2, 15), 1)
	assert.Equal(t, "11/15", resp.Page(2, 15)[0].Day.DateLabel)
}

func TestRequestTable_FilledHighlight(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	d := testutil.Date(2026, 10, 20)
	testutil.SeedHelpRequests(t, env.requests,
		testutil.NewTestHelpRequest(d, "10-15"),
		testutil.NewTestHelpRequest(d, "9-12", testutil.WithStore("武店")))
	seedShift(t, env, 20, 10, "大塚", "1日可,10-15@本店")
	// A store named without a time is not filled.
	seedShift(t, env, 20, 10, "和田", "AM可,@武店")

	resp, err := env.tableService().RequestTable(ctx, contract.RequestTableRequest{Period: october, Area: "中央エリア"})
	require.NoError(t, err)
	assert.Equal(t, "本店", resp.Stores[0])

	row := resp.Rows[4]
	hon, bu := row.Cells[0], row.Cells[1]
	assert.Equal(t, "10-15", hon.HelpTime)
	assert.True(t, hon.Filled)
	assert.Equal(t, shiftcode.DefaultPalette().Filled, hon.Background)
	assert.Equal(t, "9-12", bu.HelpTime)
	assert.False(t, bu.Filled)
	assert.Empty(t, bu.Background)
}

func TestRequestTable_UnknownArea(t *testing.T) {
	env := setupEnv(t)

	_, err := env.tableService().RequestTable(context.Background(), contract.RequestTableRequest{Period: october, Area: "月面"})
	assert.ErrorIs(t, err, ErrUnknownArea)
}

func TestIndividual(t *testing.T) {
	env := setupEnv(t)
	seedShift(t, env, 20, 10, "佐渡", "AM可,9-10@本店,10-12@武店")
	seedShift(t, env, 21, 10, "佐渡", "休み")
	seedShift(t, env, 20, 10, "大塚", "PM可")

	resp, err := env.tableService().Individual(context.Background(),
		contract.IndividualRequest{Period: october, Employee: "佐渡", Medium: shiftcode.MediumPrint})
	require.NoError(t, err)

	require.Len(t, resp.Rows, 31)
	assert.Equal(t, 3, resp.MaxSpans)
	assert.Equal(t, shiftcode.VariantAvailability, resp.Rows[4].Parsed.Variant())
	assert.Equal(t, shiftcode.VariantSpecial, resp.Rows[5].Parsed.Variant())
	assert.True(t, resp.Rows[5].Presented.Spans[0].Bold)
	assert.Equal(t, shiftcode.VariantDash, resp.Rows[6].Parsed.Variant())
}

func TestIndividual_UnknownEmployee(t *testing.T) {
	env := setupEnv(t)

	_, err := env.tableService().Individual(context.Background(),
		contract.IndividualRequest{Period: october, Employee: "誰か"})
	assert.ErrorIs(t, err, ErrUnknownEmployee)
}

func TestStoreSchedule_SortsHelpersByStart(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	seedShift(t, env, 20, 10, "佐渡", "PM可,13-17@本店")
	seedShift(t, env, 20, 10, "大塚", "AM可,9半-12@本店,13-15@武店")
	seedShift(t, env, 20, 10, "和田", "1日可,１０時～@本店")
	require.NoError(t, env.requests.Upsert(ctx, testutil.NewTestHelpRequest(testutil.Date(2026, 10, 20), "9-17")))

	resp, err := env.tableService().StoreSchedule(ctx,
		contract.StoreScheduleRequest{Period: october, Stores: []string{"本店", "武店"}})
	require.NoError(t, err)
	require.Len(t, resp.Schedules, 2)

	hon := resp.Schedules[0]
	assert.Equal(t, "本店", hon.Store)
	assert.Equal(t, "中央エリア", hon.Area)
	day := hon.Days[4]
	assert.Equal(t, "9-17", day.HelpTime)
	require.Len(t, day.Helpers, 3)
	assert.Equal(t, "大塚", day.Helpers[0].Employee)
	assert.Equal(t, 570, day.Helpers[0].StartMinute)
	assert.Equal(t, "和田", day.Helpers[1].Employee)
	assert.Equal(t, "佐渡", day.Helpers[2].Employee)

	bu := resp.Schedules[1]
	require.Len(t, bu.Days[4].Helpers, 1)
	assert.Equal(t, "13-15", bu.Days[4].Helpers[0].Time)
}

func TestStoreSchedule_MalformedTimeNamesCell(t *testing.T) {
	env := setupEnv(t)
	seedShift(t, env, 20, 10, "佐渡", "PM可,午後@本店")

	_, err := env.tableService().StoreSchedule(context.Background(),
		contract.StoreScheduleRequest{Period: october})
	require.Error(t, err)
	assert.ErrorIs(t, err, shiftcode.ErrMalformedTime)

	var tfe *shiftcode.TimeFormatError
	require.True(t, errors.As(err, &tfe))
	assert.Equal(t, "2026-10-20", tfe.Date)
	assert.Equal(t, "佐渡", tfe.Employee)
	assert.Equal(t, "本店", tfe.Store)
	assert.Equal(t, "午後", tfe.Token)
}

func TestStoreSchedule_AllStoresByDefault(t *testing.T) {
	env := setupEnv(t)

	resp, err := env.tableService().StoreSchedule(context.Background(),
		contract.StoreScheduleRequest{Period: october})
	require.NoError(t, err)
	assert.Len(t, resp.Schedules, len(env.dir.Stores()))
	assert.Equal(t, "本店", resp.Schedules[0].Store)
}

func TestStoreSchedule_UnknownStore(t *testing.T) {
	env := setupEnv(t)

	_, err := env.tableService().StoreSchedule(context.Background(),
		contract.StoreScheduleRequest{Period: october, Stores: []string{"どこか"}})
	assert.ErrorIs(t, err, ErrUnknownStore)
}

func TestTableService_SnapshotFailure(t *testing.T) {
	env := setupEnv(t)
	locked := errors.New("database is locked")
	svc := NewTableService(&testutil.FaultyUoW{DB: env.db, SnapshotErr: locked}, env.dir,
		env.dir.Presenter(shiftcode.DefaultPalette()), env.holidays)
	ctx := context.Background()

	_, err := svc.HelpTable(ctx, contract.HelpTableRequest{Period: october})
	assert.ErrorIs(t, err, locked)
	_, err = svc.Individual(ctx, contract.IndividualRequest{Period: october, Employee: "佐渡"})
	assert.ErrorIs(t, err, locked)
	_, err = svc.StoreSchedule(ctx, contract.StoreScheduleRequest{Period: october})
	assert.ErrorIs(t, err, locked)
}

func TestTables_OffRosterCellCountsNowhere(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	d := testutil.Date(2026, 10, 20)
	testutil.SeedShifts(t, env.shifts, testutil.NewTestShift(d, "1日可,10-15@本店", testutil.WithEmployee("山田")))
	testutil.SeedHelpRequests(t, env.requests, testutil.NewTestHelpRequest(d, "10-15"))

	reqs, err := env.tableService().RequestTable(ctx, contract.RequestTableRequest{Period: october, Area: "中央エリア"})
	require.NoError(t, err)
	assert.Equal(t, "10-15", reqs.Rows[4].Cells[0].HelpTime)
	assert.False(t, reqs.Rows[4].Cells[0].Filled)

	sched, err := env.tableService().StoreSchedule(ctx,
		contract.StoreScheduleRequest{Period: october, Stores: []string{"本店"}})
	require.NoError(t, err)
	assert.Empty(t, sched.Schedules[0].Days[4].Helpers)
}
