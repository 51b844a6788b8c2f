// Package calendar provides the pay period the tables cover, Japanese weekday
// names and the public holiday oracle.
package calendar

import (
	"fmt"
	"time"
)

// DateLayout is the storage and CLI date format.
const DateLayout = "2006-01-02"

// PeriodStartDay is the day of month a period begins on.
const PeriodStartDay = 16

// Period is an inclusive range of dates, from the 16th of one month through
// the 15th of the next.
type Period struct {
	Year  int
	Month time.Month
	Start time.Time
	End   time.Time
}

// PeriodFor returns the period starting on the 16th of year/month.
func PeriodFor(year int, month time.Month) Period {
	start := time.Date(year, month, PeriodStartDay, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return Period{Year: start.Year(), Month: start.Month(), Start: start, End: end}
}

// PeriodContaining returns the period a date falls into.
func PeriodContaining(date time.Time) Period {
	y, m, d := date.Date()
	if d < PeriodStartDay {
		prev := time.Date(y, m-1, 1, 0, 0, 0, 0, time.UTC)
		return PeriodFor(prev.Year(), prev.Month())
	}
	return PeriodFor(y, m)
}

// ParsePeriod accepts "YYYY-MM".
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Period{}, fmt.Errorf("invalid period %q (want YYYY-MM): %w", s, err)
	}
	return PeriodFor(t.Year(), t.Month()), nil
}

// String formats the period as "YYYY-MM".
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// Label is the human title, e.g. "2026年10月16日～2026年11月15日".
func (p Period) Label() string {
	return FormatJA(p.Start) + "～" + FormatJA(p.End)
}

// Days lists every date in the period.
func (p Period) Days() []time.Time {
	var out []time.Time
	for d := p.Start; !d.After(p.End); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}

// Contains reports whether date lies within the period.
func (p Period) Contains(date time.Time) bool {
	d := Day(date)
	return !d.Before(p.Start) && !d.After(p.End)
}

// Next returns the following period.
func (p Period) Next() Period {
	n := p.Start.AddDate(0, 1, 0)
	return PeriodFor(n.Year(), n.Month())
}

// Prev returns the preceding period.
func (p Period) Prev() Period {
	n := p.Start.AddDate(0, -1, 0)
	return PeriodFor(n.Year(), n.Month())
}

// Clamp returns date moved into the period if it lies outside it.
func (p Period) Clamp(date time.Time) time.Time {
	d := Day(date)
	if d.Before(p.Start) {
		return p.Start
	}
	if d.After(p.End) {
		return p.End
	}
	return d
}

// Day truncates t to a UTC calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// FormatJA formats a date as "2006年01月02日".
func FormatJA(t time.Time) string {
	return t.Format("2006年01月02日")
}
