package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/helpshift/internal/domain"
)

// ShiftRepo stores one availability code per (date, employee). Writes are
// upserts; the latest save wins.
type ShiftRepo interface {
	Upsert(ctx context.Context, s *domain.ShiftRecord) error
	Get(ctx context.Context, date time.Time, employee string) (*domain.ShiftRecord, error)
	ListRange(ctx context.Context, from, to time.Time) ([]*domain.ShiftRecord, error)
	ListByEmployee(ctx context.Context, employee string, from, to time.Time) ([]*domain.ShiftRecord, error)
}

// HelpRequestRepo stores one requested help time per (date, store).
type HelpRequestRepo interface {
	Upsert(ctx context.Context, h *domain.HelpRequest) error
	Get(ctx context.Context, date time.Time, store string) (*domain.HelpRequest, error)
	ListRange(ctx context.Context, from, to time.Time) ([]*domain.HelpRequest, error)
}
