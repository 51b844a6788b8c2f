package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/helpshift/internal/calendar"
	"github.com/alexanderramin/helpshift/internal/domain"
	"github.com/alexanderramin/helpshift/internal/registry"
	"github.com/alexanderramin/helpshift/internal/repository"
)

type shiftService struct {
	shifts   repository.ShiftRepo
	dir      *registry.Registry
	observer UseCaseObserver
}

func NewShiftService(shifts repository.ShiftRepo, dir *registry.Registry, observers ...UseCaseObserver) ShiftService {
	return &shiftService{shifts: shifts, dir: dir, observer: useCaseObserverOrNoop(observers)}
}

// Save stores the code as given. The code itself is never validated; any
// string is accepted and interpreted on read.
func (s *shiftService) Save(ctx context.Context, rec *domain.ShiftRecord) (err error) {
	fields := map[string]any{"employee": rec.Employee, "date": domain.DateKey(rec.Date)}
	defer observe(ctx, s.observer, "save-shift", time.Now(), fields, &err)

	if err = rec.Validate(); err != nil {
		return err
	}
	if !s.dir.HasEmployee(rec.Employee) {
		return fmt.Errorf("%w: %s", ErrUnknownEmployee, rec.Employee)
	}
	rec.Date = calendar.Day(rec.Date)
	return s.shifts.Upsert(ctx, rec)
}

func (s *shiftService) Get(ctx context.Context, date time.Time, employee string) (*domain.ShiftRecord, error) {
	return s.shifts.Get(ctx, calendar.Day(date), employee)
}

func (s *shiftService) Grid(ctx context.Context, period calendar.Period) (*domain.ShiftGrid, error) {
	records, err := s.shifts.ListRange(ctx, period.Start, period.End)
	if err != nil {
		return nil, err
	}
	return domain.NewShiftGrid(records), nil
}
