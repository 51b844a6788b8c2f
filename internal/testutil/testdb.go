package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/helpshift/internal/db"
	"github.com/alexanderramin/helpshift/internal/domain"
)

// NewTestDB opens a migrated in-memory database that is closed with the test.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	return openTestDB(t, ":memory:")
}

// NewFileTestDB opens a migrated database file under t.TempDir(). Unlike
// :memory: every pooled connection sees the same data, which concurrency
// tests rely on.
func NewFileTestDB(t *testing.T) *sql.DB {
	t.Helper()
	return openTestDB(t, filepath.Join(t.TempDir(), "helpshift.db"))
}

func openTestDB(t *testing.T, path string) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(path)
	if err != nil {
		t.Fatalf("opening test database %s: %v", path, err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestUoW creates a UnitOfWork backed by the given test database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

// ShiftWriter is the slice of the shift repository seeding needs.
type ShiftWriter interface {
	Upsert(ctx context.Context, s *domain.ShiftRecord) error
}

// HelpRequestWriter is the slice of the help request repository seeding needs.
type HelpRequestWriter interface {
	Upsert(ctx context.Context, h *domain.HelpRequest) error
}

// SeedShifts upserts records straight through repo, skipping the
// service-level registry checks.
func SeedShifts(t *testing.T, repo ShiftWriter, records ...*domain.ShiftRecord) {
	t.Helper()
	for _, r := range records {
		if err := repo.Upsert(context.Background(), r); err != nil {
			t.Fatalf("seeding shift %s/%s: %v", r.Date.Format("2006-01-02"), r.Employee, err)
		}
	}
}

// SeedHelpRequests is SeedShifts for help requests.
func SeedHelpRequests(t *testing.T, repo HelpRequestWriter, requests ...*domain.HelpRequest) {
	t.Helper()
	for _, h := range requests {
		if err := repo.Upsert(context.Background(), h); err != nil {
			t.Fatalf("seeding help request %s/%s: %v", h.Date.Format("2006-01-02"), h.Store, err)
		}
	}
}
