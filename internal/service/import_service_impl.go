package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/helpshift/internal/calendar"
	"github.com/alexanderramin/helpshift/internal/contract"
	"github.com/alexanderramin/helpshift/internal/db"
	"github.com/alexanderramin/helpshift/internal/domain"
	"github.com/alexanderramin/helpshift/internal/registry"
	"github.com/alexanderramin/helpshift/internal/repository"
)

type importService struct {
	dir      *registry.Registry
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(dir *registry.Registry, uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{dir: dir, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

// ImportShifts writes every present code in one transaction. Absent codes
// are skipped so an import never erases cells it has no value for. Any
// unknown employee or out-of-period date rejects the whole import.
func (s *importService) ImportShifts(ctx context.Context, req ImportRequest) (result *contract.ImportResult, err error) {
	fields := map[string]any{"records": len(req.Records)}
	defer observe(ctx, s.observer, "import-shifts", time.Now(), fields, &err)

	result = &contract.ImportResult{}
	days := make(map[string]struct{})
	for _, rec := range req.Records {
		if err = rec.Validate(); err != nil {
			return nil, err
		}
		if !s.dir.HasEmployee(rec.Employee) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownEmployee, rec.Employee)
		}
		rec.Date = calendar.Day(rec.Date)
		if req.Period != nil && !req.Period.Contains(rec.Date) {
			return nil, fmt.Errorf("%w: %s not in %s", ErrOutsidePeriod, domain.DateKey(rec.Date), req.Period)
		}
		days[domain.DateKey(rec.Date)] = struct{}{}
	}
	result.Rows = len(days)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txShifts := repository.NewSQLiteShiftRepo(tx)
		for _, rec := range req.Records {
			if !rec.Raw.Present {
				result.Skipped++
				continue
			}
			if err := txShifts.Upsert(ctx, rec); err != nil {
				return err
			}
			result.Cells++
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("importing shifts: %w", err)
	}
	fields["cells"] = result.Cells
	return result, nil
}
