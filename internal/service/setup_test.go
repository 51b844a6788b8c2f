package service

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/helpshift/internal/calendar"
	"github.com/alexanderramin/helpshift/internal/registry"
	"github.com/alexanderramin/helpshift/internal/repository"
	"github.com/alexanderramin/helpshift/internal/shiftcode"
	"github.com/alexanderramin/helpshift/internal/testutil"
)

type testEnv struct {
	db       *sql.DB
	dir      *registry.Registry
	shifts   *repository.SQLiteShiftRepo
	requests *repository.SQLiteHelpRequestRepo
	holidays *calendar.Holidays
}

func setupEnv(t *testing.T) testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	return testEnv{
		db:       database,
		dir:      registry.Default(),
		shifts:   repository.NewSQLiteShiftRepo(database),
		requests: repository.NewSQLiteHelpRequestRepo(database),
		holidays: calendar.NewHolidays(map[string]string{"2026-11-03": "文化の日"}),
	}
}

func (e testEnv) shiftService() ShiftService {
	return NewShiftService(e.shifts, e.dir)
}

func (e testEnv) requestService() HelpRequestService {
	return NewHelpRequestService(e.requests, e.dir)
}

func (e testEnv) tableService(observers ...UseCaseObserver) TableService {
	return NewTableService(testutil.NewTestUoW(e.db), e.dir,
		e.dir.Presenter(shiftcode.DefaultPalette()), e.holidays, observers...)
}

// october is the period 2026-10-16 .. 2026-11-15.
var october = calendar.PeriodFor(2026, 10)
