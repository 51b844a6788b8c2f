package app

import (
	"time"

	"github.com/alexanderramin/helpshift/internal/shiftcode"
)

// DayHeader labels one table row.
type DayHeader struct {
	Date        time.Time
	DateLabel   string // "10/16"
	Weekday     string // "金"
	HolidayName string
	Background  shiftcode.Color
}

// Weekend reports whether the row carries a weekend or holiday background.
func (h DayHeader) Weekend() bool {
	return h.Background != ""
}

// Pages returns how many pages of size rows n rows fill. Zero rows still
// make one (empty) page.
func Pages(n, size int) int {
	if size <= 0 || n == 0 {
		return 1
	}
	return (n + size - 1) / size
}

// PageBounds returns the half-open row range of page (0-based), clamping
// page into range.
func PageBounds(n, size, page int) (from, to int) {
	if size <= 0 {
		return 0, n
	}
	last := Pages(n, size) - 1
	if page < 0 {
		page = 0
	}
	if page > last {
		page = last
	}
	from = page * size
	to = from + size
	if to > n {
		to = n
	}
	return from, to
}
