package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/helpshift/internal/db"
	"github.com/alexanderramin/helpshift/internal/domain"
)

const helpRequestColumns = `date, store, help_time, updated_at`

// SQLiteHelpRequestRepo implements HelpRequestRepo using a SQLite database.
type SQLiteHelpRequestRepo struct {
	db db.DBTX
}

// NewSQLiteHelpRequestRepo creates a new SQLiteHelpRequestRepo.
func NewSQLiteHelpRequestRepo(db db.DBTX) *SQLiteHelpRequestRepo {
	return &SQLiteHelpRequestRepo{db: db}
}

func (r *SQLiteHelpRequestRepo) Upsert(ctx context.Context, h *domain.HelpRequest) error {
	now := nowUTC()
	query := `INSERT INTO store_help_requests (date, store, help_time, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(date, store) DO UPDATE SET
			help_time = excluded.help_time,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		formatDate(h.Date),
		h.Store,
		nullableString(h.HelpTime),
		now,
	)
	if err != nil {
		return fmt.Errorf("upserting help request: %w", err)
	}
	if t, err := time.Parse(time.RFC3339, now); err == nil {
		h.UpdatedAt = &t
	}
	return nil
}

func (r *SQLiteHelpRequestRepo) Get(ctx context.Context, date time.Time, store string) (*domain.HelpRequest, error) {
	query := `SELECT ` + helpRequestColumns + ` FROM store_help_requests WHERE date = ? AND store = ?`
	row := r.db.QueryRowContext(ctx, query, formatDate(date), store)
	h, err := scanHelpRequest(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("help request %s/%s: %w", formatDate(date), store, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning help request: %w", err)
	}
	return h, nil
}

func (r *SQLiteHelpRequestRepo) ListRange(ctx context.Context, from, to time.Time) ([]*domain.HelpRequest, error) {
	query := `SELECT ` + helpRequestColumns + ` FROM store_help_requests
		WHERE date >= ? AND date <= ?
		ORDER BY date, store`
	rows, err := r.db.QueryContext(ctx, query, formatDate(from), formatDate(to))
	if err != nil {
		return nil, fmt.Errorf("listing help requests: %w", err)
	}
	defer rows.Close()

	var out []*domain.HelpRequest
	for rows.Next() {
		h, err := scanHelpRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning help request row: %w", err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating help requests: %w", err)
	}
	return out, nil
}

func scanHelpRequest(row rowScanner) (*domain.HelpRequest, error) {
	var (
		h        domain.HelpRequest
		dateStr  string
		helpTime sql.NullString
		updated  sql.NullString
	)
	if err := row.Scan(&dateStr, &h.Store, &helpTime, &updated); err != nil {
		return nil, err
	}
	d, err := parseDate(dateStr)
	if err != nil {
		return nil, fmt.Errorf("parsing request date %q: %w", dateStr, err)
	}
	h.Date = d
	h.HelpTime = helpTime.String
	h.UpdatedAt = parseNullableTime(updated, time.RFC3339)
	return &h, nil
}
