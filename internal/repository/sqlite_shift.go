package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/helpshift/internal/db"
	"github.com/alexanderramin/helpshift/internal/domain"
	"github.com/alexanderramin/helpshift/internal/shiftcode"
)

const shiftColumns = `date, employee, shift, updated_at`

// SQLiteShiftRepo implements ShiftRepo using a SQLite database.
type SQLiteShiftRepo struct {
	db db.DBTX
}

// NewSQLiteShiftRepo creates a new SQLiteShiftRepo. db may be a *sql.DB or a
// transaction handed out by a UnitOfWork.
func NewSQLiteShiftRepo(db db.DBTX) *SQLiteShiftRepo {
	return &SQLiteShiftRepo{db: db}
}

func (r *SQLiteShiftRepo) Upsert(ctx context.Context, s *domain.ShiftRecord) error {
	now := nowUTC()
	query := `INSERT INTO shifts (date, employee, shift, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(date, employee) DO UPDATE SET
			shift = excluded.shift,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		formatDate(s.Date),
		s.Employee,
		rawToValue(s.Raw),
		now,
	)
	if err != nil {
		return fmt.Errorf("upserting shift: %w", err)
	}
	if t, err := time.Parse(time.RFC3339, now); err == nil {
		s.UpdatedAt = &t
	}
	return nil
}

func (r *SQLiteShiftRepo) Get(ctx context.Context, date time.Time, employee string) (*domain.ShiftRecord, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE date = ? AND employee = ?`
	row := r.db.QueryRowContext(ctx, query, formatDate(date), employee)
	s, err := scanShift(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("shift %s/%s: %w", formatDate(date), employee, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning shift: %w", err)
	}
	return s, nil
}

func (r *SQLiteShiftRepo) ListRange(ctx context.Context, from, to time.Time) ([]*domain.ShiftRecord, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts
		WHERE date >= ? AND date <= ?
		ORDER BY date, employee`
	rows, err := r.db.QueryContext(ctx, query, formatDate(from), formatDate(to))
	if err != nil {
		return nil, fmt.Errorf("listing shifts: %w", err)
	}
	defer rows.Close()
	return scanShifts(rows)
}

func (r *SQLiteShiftRepo) ListByEmployee(ctx context.Context, employee string, from, to time.Time) ([]*domain.ShiftRecord, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts
		WHERE employee = ? AND date >= ? AND date <= ?
		ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, employee, formatDate(from), formatDate(to))
	if err != nil {
		return nil, fmt.Errorf("listing shifts by employee: %w", err)
	}
	defer rows.Close()
	return scanShifts(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanShift reads one row. The shift column is scanned loosely so that NULLs
// and stray numeric values left by older tools become absent codes.
func scanShift(row rowScanner) (*domain.ShiftRecord, error) {
	var (
		s       domain.ShiftRecord
		dateStr string
		code    any
		updated sql.NullString
	)
	if err := row.Scan(&dateStr, &s.Employee, &code, &updated); err != nil {
		return nil, err
	}
	d, err := parseDate(dateStr)
	if err != nil {
		return nil, fmt.Errorf("parsing shift date %q: %w", dateStr, err)
	}
	s.Date = d
	s.Raw = shiftcode.RawFromValue(code)
	s.UpdatedAt = parseNullableTime(updated, time.RFC3339)
	return &s, nil
}

func scanShifts(rows *sql.Rows) ([]*domain.ShiftRecord, error) {
	var shifts []*domain.ShiftRecord
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning shift row: %w", err)
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating shifts: %w", err)
	}
	return shifts, nil
}
