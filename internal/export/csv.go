// Package export renders tables and schedules to CSV, XLSX and PDF. Every
// layout reads presented cells, so colors and weekend rules match the screen.
package export

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/helpshift/internal/calendar"
	"github.com/alexanderramin/helpshift/internal/contract"
	"github.com/alexanderramin/helpshift/internal/domain"
	"github.com/alexanderramin/helpshift/internal/shiftcode"
)

// utf8BOM lets spreadsheet applications detect the encoding.
const utf8BOM = "\ufeff"

const (
	colDate    = "日付"
	colWeekday = "曜日"
)

// WriteShiftGridCSV writes the raw codes of period, one row per day and one
// column per employee. Absent cells are left empty. The output can be read
// back with ReadShiftGridCSV.
func WriteShiftGridCSV(w io.Writer, period calendar.Period, employees []string, grid *domain.ShiftGrid) error {
	cw := csv.NewWriter(w)
	header := append([]string{colDate, colWeekday}, employees...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, day := range period.Days() {
		rec := make([]string, 0, len(header))
		rec = append(rec, domain.DateKey(day), calendar.WeekdayJA(day))
		for _, emp := range employees {
			raw := grid.Get(day, emp)
			if raw.Present {
				rec = append(rec, raw.Value)
			} else {
				rec = append(rec, "")
			}
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing %s: %w", domain.DateKey(day), err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadShiftGridCSV decodes a grid written by WriteShiftGridCSV. A leading BOM
// is ignored and the weekday column is optional. Empty cells come back as
// absent records so callers can skip them.
func ReadShiftGridCSV(r io.Reader) ([]*domain.ShiftRecord, error) {
	br := bufio.NewReader(r)
	if b, err := br.Peek(len(utf8BOM)); err == nil && string(b) == utf8BOM {
		_, _ = br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(header) == 0 || strings.TrimSpace(header[0]) != colDate {
		return nil, fmt.Errorf("first column must be %q", colDate)
	}
	first := 1
	if len(header) > 1 && strings.TrimSpace(header[1]) == colWeekday {
		first = 2
	}
	employees := header[first:]

	var records []*domain.ShiftRecord
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		date, err := calendar.ParseDate(strings.TrimSpace(rec[0]))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		for i, emp := range employees {
			raw := shiftcode.Absent()
			if col := first + i; col < len(rec) && rec[col] != "" {
				raw = shiftcode.RawOf(rec[col])
			}
			records = append(records, &domain.ShiftRecord{
				Date:     date,
				Employee: strings.TrimSpace(emp),
				Raw:      raw,
			})
		}
	}
	return records, nil
}

// WriteHelpRequestsCSV writes requests as date, store, help time with a
// UTF-8 BOM.
func WriteHelpRequestsCSV(w io.Writer, requests []*domain.HelpRequest) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{colDate, "店舗", "ヘルプ時間"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, h := range requests {
		if err := cw.Write([]string{domain.DateKey(h.Date), h.Store, h.HelpTime}); err != nil {
			return fmt.Errorf("writing request: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteHelpTableCSV writes the presented help table. The table should be
// built for the plain medium so cells carry their canonical codes.
func WriteHelpTableCSV(w io.Writer, resp *contract.HelpTableResponse) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	header := append([]string{colDate, colWeekday}, resp.Employees...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range resp.Rows {
		rec := make([]string, 0, len(header))
		rec = append(rec, domain.DateKey(row.Day.Date), row.Day.Weekday)
		for _, c := range row.Cells {
			rec = append(rec, plainCell(c))
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing %s: %w", row.Day.DateLabel, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// plainCell flattens a cell with commas whatever medium it was built for.
func plainCell(c contract.ShiftCell) string {
	return shiftcode.PlainText(c.Parsed)
}
