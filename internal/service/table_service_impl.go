package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alexanderramin/helpshift/internal/calendar"
	"github.com/alexanderramin/helpshift/internal/contract"
	"github.com/alexanderramin/helpshift/internal/db"
	"github.com/alexanderramin/helpshift/internal/domain"
	"github.com/alexanderramin/helpshift/internal/registry"
	"github.com/alexanderramin/helpshift/internal/repository"
	"github.com/alexanderramin/helpshift/internal/shiftcode"
)

// maxScheduleWorkers bounds the concurrent per-store schedule builds.
const maxScheduleWorkers = 4

type tableService struct {
	uow       db.UnitOfWork
	dir       *registry.Registry
	presenter *shiftcode.Presenter
	holidays  HolidayCalendar
	observer  UseCaseObserver
}

// NewTableService builds the read side. Each call reads its period inside
// one snapshot of uow. holidays may be nil.
func NewTableService(
	uow db.UnitOfWork,
	dir *registry.Registry,
	presenter *shiftcode.Presenter,
	holidays HolidayCalendar,
	observers ...UseCaseObserver,
) TableService {
	return &tableService{
		uow:       uow,
		dir:       dir,
		presenter: presenter,
		holidays:  holidays,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *tableService) HelpTable(ctx context.Context, req contract.HelpTableRequest) (resp *contract.HelpTableResponse, err error) {
	fields := map[string]any{"period": req.Period.String(), "medium": req.Medium.String()}
	defer observe(ctx, s.observer, "help-table", time.Now(), fields, &err)

	employees, err := s.resolveEmployees(req.Employees)
	if err != nil {
		return nil, err
	}
	grid, _, err := s.loadPeriod(ctx, req.Period, false)
	if err != nil {
		return nil, err
	}

	resp = &contract.HelpTableResponse{Period: req.Period, Medium: req.Medium, Employees: employees}
	for _, day := range req.Period.Days() {
		pctx := s.cellContext(req.Medium, day)
		row := contract.HelpTableRow{Day: s.header(day, pctx)}
		for _, emp := range employees {
			raw := grid.Get(day, emp)
			parsed := s.presenter.Parser().Parse(raw)
			row.Cells = append(row.Cells, contract.ShiftCell{
				Employee:  emp,
				Raw:       raw,
				Parsed:    parsed,
				Presented: s.presenter.Present(parsed, pctx),
			})
		}
		resp.Rows = append(resp.Rows, row)
	}
	fields["rows"] = len(resp.Rows)
	return resp, nil
}

func (s *tableService) RequestTable(ctx context.Context, req contract.RequestTableRequest) (resp *contract.RequestTableResponse, err error) {
	fields := map[string]any{"period": req.Period.String(), "area": req.Area}
	defer observe(ctx, s.observer, "request-table", time.Now(), fields, &err)

	area, ok := s.dir.Area(req.Area)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownArea, req.Area)
	}
	grid, requests, err := s.loadPeriod(ctx, req.Period, true)
	if err != nil {
		return nil, err
	}

	resp = &contract.RequestTableResponse{Period: req.Period, Area: area.Name}
	for _, st := range area.Stores {
		resp.Stores = append(resp.Stores, st.Name)
	}

	filledColor := s.presenter.Palette().Filled
	days := req.Period.Days()
	parsed := s.parseGrid(grid, days)
	for _, day := range days {
		covered := parsed[domain.DateKey(day)].coveredStores()
		row := contract.RequestTableRow{Day: s.header(day, s.cellContext(shiftcode.MediumScreen, day))}
		for _, st := range area.Stores {
			cell := contract.RequestCell{Store: st.Name}
			if h, ok := requests[requestKey(day, st.Name)]; ok {
				cell.HelpTime = h.HelpTime
			}
			if _, ok := covered[st.Name]; ok {
				cell.Filled = true
				cell.Background = filledColor
			}
			row.Cells = append(row.Cells, cell)
		}
		resp.Rows = append(resp.Rows, row)
	}
	return resp, nil
}

func (s *tableService) Individual(ctx context.Context, req contract.IndividualRequest) (resp *contract.IndividualResponse, err error) {
	fields := map[string]any{"period": req.Period.String(), "employee": req.Employee}
	defer observe(ctx, s.observer, "individual", time.Now(), fields, &err)

	if !s.dir.HasEmployee(req.Employee) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEmployee, req.Employee)
	}
	var grid *domain.ShiftGrid
	err = s.uow.WithinSnapshot(ctx, func(ctx context.Context, tx db.DBTX) error {
		records, err := repository.NewSQLiteShiftRepo(tx).ListByEmployee(ctx, req.Employee, req.Period.Start, req.Period.End)
		if err != nil {
			return err
		}
		grid = domain.NewShiftGrid(records)
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp = &contract.IndividualResponse{Period: req.Period, Employee: req.Employee}
	for _, day := range req.Period.Days() {
		pctx := s.cellContext(req.Medium, day)
		parsed := s.presenter.Parser().Parse(grid.Get(day, req.Employee))
		presented := s.presenter.Present(parsed, pctx)
		if n := len(presented.Spans); n > resp.MaxSpans {
			resp.MaxSpans = n
		}
		resp.Rows = append(resp.Rows, contract.IndividualRow{
			Day:       s.header(day, pctx),
			Parsed:    parsed,
			Presented: presented,
		})
	}
	return resp, nil
}

// StoreSchedule lists, per store and day, the employees assigned there,
// ordered by start time. A time that cannot be read as a start time aborts
// the build with a *shiftcode.TimeFormatError naming the cell.
func (s *tableService) StoreSchedule(ctx context.Context, req contract.StoreScheduleRequest) (resp *contract.StoreScheduleResponse, err error) {
	fields := map[string]any{"period": req.Period.String()}
	defer observe(ctx, s.observer, "store-schedule", time.Now(), fields, &err)

	stores, err := s.resolveStores(req.Stores)
	if err != nil {
		return nil, err
	}
	grid, requests, err := s.loadPeriod(ctx, req.Period, true)
	if err != nil {
		return nil, err
	}

	days := req.Period.Days()
	parsed := s.parseGrid(grid, days)

	schedules := make([]contract.StoreSchedule, len(stores))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxScheduleWorkers)
	for i, st := range stores {
		g.Go(func() error {
			sched, err := s.buildStoreSchedule(gctx, st, days, parsed, requests)
			if err != nil {
				return err
			}
			schedules[i] = sched
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	fields["stores"] = len(schedules)
	return &contract.StoreScheduleResponse{Period: req.Period, Schedules: schedules}, nil
}

// dayShifts is one day's parsed shifts in roster order. The request table
// and the store schedule both read it, so a cell off the roster counts for
// neither.
type dayShifts struct {
	employees []string
	shifts    []shiftcode.ParsedShift
}

func (s *tableService) parseGrid(grid *domain.ShiftGrid, days []time.Time) map[string]dayShifts {
	roster := s.dir.Employees()
	out := make(map[string]dayShifts, len(days))
	for _, day := range days {
		ds := dayShifts{}
		for _, emp := range roster {
			raw := grid.Get(day, emp)
			if !raw.Present {
				continue
			}
			ds.employees = append(ds.employees, emp)
			ds.shifts = append(ds.shifts, s.presenter.Parser().Parse(raw))
		}
		out[domain.DateKey(day)] = ds
	}
	return out
}

func (s *tableService) buildStoreSchedule(
	ctx context.Context,
	st registry.Store,
	days []time.Time,
	parsed map[string]dayShifts,
	requests map[string]*domain.HelpRequest,
) (contract.StoreSchedule, error) {
	sched := contract.StoreSchedule{Store: st.Name, Area: st.Area, Color: st.Color}
	for _, day := range days {
		if err := ctx.Err(); err != nil {
			return sched, err
		}
		sd := contract.StoreDay{Day: s.header(day, s.cellContext(shiftcode.MediumPrint, day))}
		if h, ok := requests[requestKey(day, st.Name)]; ok {
			sd.HelpTime = h.HelpTime
		}

		ds := parsed[domain.DateKey(day)]
		for i, p := range ds.shifts {
			for _, e := range p.Entries {
				if e.Store != st.Name || e.Time == "" {
					continue
				}
				start, err := shiftcode.StartMinute(e.Time)
				if err != nil {
					var tfe *shiftcode.TimeFormatError
					if errors.As(err, &tfe) {
						tfe.Date = domain.DateKey(day)
						tfe.Employee = ds.employees[i]
						tfe.Store = st.Name
					}
					return sched, err
				}
				sd.Helpers = append(sd.Helpers, contract.Helper{
					Employee:    ds.employees[i],
					Time:        e.Time,
					StartMinute: start,
				})
			}
		}
		sort.SliceStable(sd.Helpers, func(a, b int) bool {
			return sd.Helpers[a].StartMinute < sd.Helpers[b].StartMinute
		})
		sched.Days = append(sched.Days, sd)
	}
	return sched, nil
}

// coveredStores is the set of stores some rostered employee fills that day.
func (ds dayShifts) coveredStores() map[string]struct{} {
	covered := make(map[string]struct{})
	for _, p := range ds.shifts {
		_, stores := p.Filled()
		for st := range stores {
			covered[st] = struct{}{}
		}
	}
	return covered
}

// loadPeriod reads the period's cells, and its help requests when asked,
// from a single snapshot.
func (s *tableService) loadPeriod(ctx context.Context, period calendar.Period, withRequests bool) (*domain.ShiftGrid, map[string]*domain.HelpRequest, error) {
	var grid *domain.ShiftGrid
	requests := map[string]*domain.HelpRequest{}

	err := s.uow.WithinSnapshot(ctx, func(ctx context.Context, tx db.DBTX) error {
		records, err := repository.NewSQLiteShiftRepo(tx).ListRange(ctx, period.Start, period.End)
		if err != nil {
			return err
		}
		grid = domain.NewShiftGrid(records)

		if !withRequests {
			return nil
		}
		list, err := repository.NewSQLiteHelpRequestRepo(tx).ListRange(ctx, period.Start, period.End)
		if err != nil {
			return err
		}
		for _, h := range list {
			requests[requestKey(h.Date, h.Store)] = h
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return grid, requests, nil
}

func (s *tableService) resolveEmployees(names []string) ([]string, error) {
	if len(names) == 0 {
		return s.dir.Employees(), nil
	}
	for _, n := range names {
		if !s.dir.HasEmployee(n) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownEmployee, n)
		}
	}
	return names, nil
}

func (s *tableService) resolveStores(names []string) ([]registry.Store, error) {
	if len(names) == 0 {
		return s.dir.Stores(), nil
	}
	out := make([]registry.Store, 0, len(names))
	for _, n := range names {
		st, ok := s.dir.Store(n)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownStore, n)
		}
		out = append(out, st)
	}
	return out, nil
}

func (s *tableService) cellContext(medium shiftcode.Medium, day time.Time) shiftcode.Context {
	var oracle shiftcode.HolidayOracle
	if s.holidays != nil {
		oracle = s.holidays
	}
	return shiftcode.NewContext(medium, day, oracle)
}

func (s *tableService) header(day time.Time, pctx shiftcode.Context) contract.DayHeader {
	h := contract.DayHeader{
		Date:       day,
		DateLabel:  day.Format("01/02"),
		Weekday:    calendar.WeekdayJA(day),
		Background: s.presenter.RowBackground(pctx),
	}
	if s.holidays != nil {
		h.HolidayName, _ = s.holidays.Name(day)
	}
	return h
}

func requestKey(date time.Time, store string) string {
	return domain.DateKey(date) + "\x00" + store
}
