package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/helpshift/internal/app"
	"github.com/alexanderramin/helpshift/internal/calendar"
	"github.com/alexanderramin/helpshift/internal/contract"
	"github.com/alexanderramin/helpshift/internal/domain"
)

var (
	ErrUnknownEmployee = errors.New("unknown employee")
	ErrUnknownStore    = errors.New("unknown store")
	ErrUnknownArea     = errors.New("unknown area")
	ErrOutsidePeriod   = errors.New("date outside period")
)

type ShiftService interface {
	app.SaveShiftUseCase
	Get(ctx context.Context, date time.Time, employee string) (*domain.ShiftRecord, error)
	Grid(ctx context.Context, period calendar.Period) (*domain.ShiftGrid, error)
}

type HelpRequestService interface {
	app.SaveHelpRequestUseCase
	Get(ctx context.Context, date time.Time, store string) (*domain.HelpRequest, error)
	ListPeriod(ctx context.Context, period calendar.Period) ([]*domain.HelpRequest, error)
}

type TableService interface {
	app.HelpTableUseCase
	app.RequestTableUseCase
	app.IndividualUseCase
	app.StoreScheduleUseCase
}

// ImportRequest carries decoded shift grid rows. When Period is set every
// record must fall inside it.
type ImportRequest struct {
	Records []*domain.ShiftRecord
	Period  *calendar.Period
}

type ImportService interface {
	ImportShifts(ctx context.Context, req ImportRequest) (*contract.ImportResult, error)
}

// HolidayCalendar names public holidays. *calendar.Holidays satisfies it.
type HolidayCalendar interface {
	IsHoliday(date time.Time) bool
	Name(date time.Time) (string, bool)
}
