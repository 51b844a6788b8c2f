package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/helpshift/internal/calendar"
	"github.com/alexanderramin/helpshift/internal/domain"
	"github.com/alexanderramin/helpshift/internal/registry"
	"github.com/alexanderramin/helpshift/internal/repository"
)

type helpRequestService struct {
	requests repository.HelpRequestRepo
	dir      *registry.Registry
	observer UseCaseObserver
}

func NewHelpRequestService(requests repository.HelpRequestRepo, dir *registry.Registry, observers ...UseCaseObserver) HelpRequestService {
	return &helpRequestService{requests: requests, dir: dir, observer: useCaseObserverOrNoop(observers)}
}

func (s *helpRequestService) Save(ctx context.Context, h *domain.HelpRequest) (err error) {
	fields := map[string]any{"store": h.Store, "date": domain.DateKey(h.Date)}
	defer observe(ctx, s.observer, "save-help-request", time.Now(), fields, &err)

	if err = h.Validate(); err != nil {
		return err
	}
	if _, ok := s.dir.Store(h.Store); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownStore, h.Store)
	}
	h.Date = calendar.Day(h.Date)
	h.HelpTime = strings.TrimSpace(h.HelpTime)
	return s.requests.Upsert(ctx, h)
}

func (s *helpRequestService) Get(ctx context.Context, date time.Time, store string) (*domain.HelpRequest, error) {
	return s.requests.Get(ctx, calendar.Day(date), store)
}

func (s *helpRequestService) ListPeriod(ctx context.Context, period calendar.Period) ([]*domain.HelpRequest, error) {
	return s.requests.ListRange(ctx, period.Start, period.End)
}
