package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/helpshift/internal/shiftcode"
)

// ShiftRecord is one employee's availability code for one date. Raw is
// stored verbatim; it is only interpreted through shiftcode.Parse.
type ShiftRecord struct {
	Date      time.Time
	Employee  string
	Raw       shiftcode.Raw
	UpdatedAt *time.Time
}

// Validate checks that the record identifies a cell.
func (s *ShiftRecord) Validate() error {
	if s.Date.IsZero() {
		return fmt.Errorf("shift date is required")
	}
	if strings.TrimSpace(s.Employee) == "" {
		return fmt.Errorf("employee is required")
	}
	return nil
}

// ShiftGrid holds the codes of a date range keyed by date then employee.
// Missing cells read as absent.
type ShiftGrid struct {
	cells map[string]map[string]shiftcode.Raw
}

// NewShiftGrid indexes records.
func NewShiftGrid(records []*ShiftRecord) *ShiftGrid {
	g := &ShiftGrid{cells: make(map[string]map[string]shiftcode.Raw)}
	for _, r := range records {
		g.Set(r.Date, r.Employee, r.Raw)
	}
	return g
}

// Set stores raw for date and employee.
func (g *ShiftGrid) Set(date time.Time, employee string, raw shiftcode.Raw) {
	key := DateKey(date)
	row, ok := g.cells[key]
	if !ok {
		row = make(map[string]shiftcode.Raw)
		g.cells[key] = row
	}
	row[employee] = raw
}

// Get returns the code for date and employee.
func (g *ShiftGrid) Get(date time.Time, employee string) shiftcode.Raw {
	if g == nil {
		return shiftcode.Absent()
	}
	raw, ok := g.cells[DateKey(date)][employee]
	if !ok {
		return shiftcode.Absent()
	}
	return raw
}

// Row returns every employee's code for date.
func (g *ShiftGrid) Row(date time.Time) map[string]shiftcode.Raw {
	if g == nil {
		return nil
	}
	return g.cells[DateKey(date)]
}

// Len counts stored cells.
func (g *ShiftGrid) Len() int {
	if g == nil {
		return 0
	}
	n := 0
	for _, row := range g.cells {
		n += len(row)
	}
	return n
}

// DateKey formats date the way it is stored.
func DateKey(date time.Time) string {
	return date.Format("2006-01-02")
}
