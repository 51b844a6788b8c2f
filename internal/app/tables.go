package app

import (
	"github.com/alexanderramin/helpshift/internal/calendar"
	"github.com/alexanderramin/helpshift/internal/shiftcode"
)

type HelpTableRequest struct {
	Period calendar.Period
	Medium shiftcode.Medium
	// Employees restricts the columns; empty means the whole roster.
	Employees []string
}

// ShiftCell is one employee's code for a day, parsed and presented.
type ShiftCell struct {
	Employee  string
	Raw       shiftcode.Raw
	Parsed    shiftcode.ParsedShift
	Presented shiftcode.Presented
}

type HelpTableRow struct {
	Day   DayHeader
	Cells []ShiftCell
}

type HelpTableResponse struct {
	Period    calendar.Period
	Medium    shiftcode.Medium
	Employees []string
	Rows      []HelpTableRow
}

// Page returns the rows of page (0-based) at size rows per page.
func (r *HelpTableResponse) Page(page, size int) []HelpTableRow {
	from, to := PageBounds(len(r.Rows), size, page)
	return r.Rows[from:to]
}

type RequestTableRequest struct {
	Period calendar.Period
	Area   string
}

// RequestCell is a store's requested help time. Filled is set when some
// employee's shift that day assigns them to the store.
type RequestCell struct {
	Store      string
	HelpTime   string
	Filled     bool
	Background shiftcode.Color
}

type RequestTableRow struct {
	Day   DayHeader
	Cells []RequestCell
}

type RequestTableResponse struct {
	Period calendar.Period
	Area   string
	Stores []string
	Rows   []RequestTableRow
}

func (r *RequestTableResponse) Page(page, size int) []RequestTableRow {
	from, to := PageBounds(len(r.Rows), size, page)
	return r.Rows[from:to]
}

type IndividualRequest struct {
	Period   calendar.Period
	Employee string
	Medium   shiftcode.Medium
}

type IndividualRow struct {
	Day       DayHeader
	Parsed    shiftcode.ParsedShift
	Presented shiftcode.Presented
}

type IndividualResponse struct {
	Period   calendar.Period
	Employee string
	Rows     []IndividualRow
	// MaxSpans is the widest presented cell, used to size per-entry columns.
	MaxSpans int
}

type StoreScheduleRequest struct {
	Period calendar.Period
	// Stores restricts the schedules; empty means every registered store.
	Stores []string
}

// Helper is an employee assigned to a store on a day.
type Helper struct {
	Employee    string
	Time        string
	StartMinute int
}

type StoreDay struct {
	Day      DayHeader
	HelpTime string
	Helpers  []Helper
}

type StoreSchedule struct {
	Store string
	Area  string
	Color shiftcode.Color
	Days  []StoreDay
}

type StoreScheduleResponse struct {
	Period    calendar.Period
	Schedules []StoreSchedule
}
