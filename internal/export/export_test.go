package export

import (
	"time"

	"github.com/alexanderramin/helpshift/internal/calendar"
	"github.com/alexanderramin/helpshift/internal/contract"
	"github.com/alexanderramin/helpshift/internal/shiftcode"
)

var testPeriod = calendar.PeriodFor(2026, 10)

func day(m time.Month, d int) time.Time {
	return time.Date(2026, m, d, 0, 0, 0, 0, time.UTC)
}

type noHolidays struct{}

func (noHolidays) IsHoliday(time.Time) bool { return false }

// sampleHelpTable builds a two-day, two-employee table the way the table
// service does.
func sampleHelpTable(medium shiftcode.Medium) *contract.HelpTableResponse {
	pr := shiftcode.NewPresenter(nil, nil, shiftcode.DefaultPalette())
	codes := map[string][]string{
		"10/16": {"AM可,9-12@本店", "休み"},
		"10/17": {"", "PM可,13-17"},
	}
	resp := &contract.HelpTableResponse{Period: testPeriod, Medium: medium, Employees: []string{"佐渡", "大塚"}}
	for _, d := range []time.Time{day(10, 16), day(10, 17)} {
		ctx := shiftcode.NewContext(medium, d, noHolidays{})
		row := contract.HelpTableRow{Day: contract.DayHeader{
			Date:       d,
			DateLabel:  d.Format("01/02"),
			Weekday:    calendar.WeekdayJA(d),
			Background: pr.RowBackground(ctx),
		}}
		for i, emp := range resp.Employees {
			code := codes[d.Format("01/02")][i]
			raw := shiftcode.RawOf(code)
			if code == "" {
				raw = shiftcode.Absent()
			}
			parsed := shiftcode.Parse(raw)
			row.Cells = append(row.Cells, contract.ShiftCell{
				Employee:  emp,
				Raw:       raw,
				Parsed:    parsed,
				Presented: pr.Present(parsed, ctx),
			})
		}
		resp.Rows = append(resp.Rows, row)
	}
	return resp
}
