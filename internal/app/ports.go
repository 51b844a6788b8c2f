package app

import (
	"context"

	"github.com/alexanderramin/helpshift/internal/domain"
)

type SaveShiftUseCase interface {
	Save(ctx context.Context, s *domain.ShiftRecord) error
}

type SaveHelpRequestUseCase interface {
	Save(ctx context.Context, h *domain.HelpRequest) error
}

type HelpTableUseCase interface {
	HelpTable(ctx context.Context, req HelpTableRequest) (*HelpTableResponse, error)
}

type RequestTableUseCase interface {
	RequestTable(ctx context.Context, req RequestTableRequest) (*RequestTableResponse, error)
}

type IndividualUseCase interface {
	Individual(ctx context.Context, req IndividualRequest) (*IndividualResponse, error)
}

type StoreScheduleUseCase interface {
	StoreSchedule(ctx context.Context, req StoreScheduleRequest) (*StoreScheduleResponse, error)
}

// ImportResult summarises a shift grid import.
type ImportResult struct {
	Rows    int
	Cells   int
	Skipped int
}
