package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/helpshift/internal/app"
	"github.com/alexanderramin/helpshift/internal/contract"
	"github.com/alexanderramin/helpshift/internal/registry"
	"github.com/alexanderramin/helpshift/internal/shiftcode"
)

func dayColumns(d contract.DayHeader) []string {
	weekday := d.Weekday
	if d.HolidayName != "" {
		weekday += " " + d.HolidayName
	}
	return []string{
		RenderOnBackground(d.DateLabel, d.Background),
		RenderOnBackground(weekday, d.Background),
	}
}

func pageTitle(title string, page, pages int) string {
	if pages <= 1 {
		return Header(title)
	}
	return PageIndicator(page, pages) + "\n" + Header(fmt.Sprintf("%s  %d/%d", title, page+1, pages))
}

// FormatHelpTable renders one page of the help table.
func FormatHelpTable(resp *contract.HelpTableResponse, page, size int) string {
	pages := app.Pages(len(resp.Rows), size)
	from, _ := app.PageBounds(len(resp.Rows), size, page)
	if size > 0 {
		page = from / size
	}

	headers := append([]string{"日付", "曜日"}, resp.Employees...)
	var rows [][]string
	for _, r := range resp.Page(page, size) {
		row := dayColumns(r.Day)
		for _, c := range r.Cells {
			row = append(row, RenderPresented(c.Presented))
		}
		rows = append(rows, row)
	}

	var b strings.Builder
	b.WriteString(pageTitle(resp.Period.Label()+" ヘルプ表", page, pages))
	b.WriteString("\n\n")
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}

// FormatRequestTable renders one page of an area's request table. Cells a
// helper is already assigned to are shaded.
func FormatRequestTable(resp *contract.RequestTableResponse, page, size int) string {
	pages := app.Pages(len(resp.Rows), size)
	from, _ := app.PageBounds(len(resp.Rows), size, page)
	if size > 0 {
		page = from / size
	}

	headers := append([]string{"日付", "曜日"}, resp.Stores...)
	var rows [][]string
	for _, r := range resp.Page(page, size) {
		row := dayColumns(r.Day)
		for _, c := range r.Cells {
			text := c.HelpTime
			if text == "" {
				text = "-"
			}
			bg := r.Day.Background
			if c.Filled {
				bg = c.Background
			}
			row = append(row, RenderOnBackground(text, bg))
		}
		rows = append(rows, row)
	}

	var b strings.Builder
	b.WriteString(pageTitle(resp.Period.Label()+" "+resp.Area, page, pages))
	b.WriteString("\n\n")
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}

// FormatIndividual renders one employee's period on a single line per day.
func FormatIndividual(resp *contract.IndividualResponse) string {
	var rows [][]string
	for _, r := range resp.Rows {
		parts := make([]string, len(r.Presented.Spans))
		for i, s := range r.Presented.Spans {
			parts[i] = SpanStyle(s, r.Presented.RowBackground).Render(s.Text)
		}
		rows = append(rows, append(dayColumns(r.Day), strings.Join(parts, " ")))
	}

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("%s %s", resp.Period.Label(), resp.Employee)))
	b.WriteString("\n\n")
	b.WriteString(RenderTable([]string{"日付", "曜日", "シフト"}, rows))
	return b.String()
}

// FormatStoreSchedule lists the days a store has a request or a helper.
func FormatStoreSchedule(s contract.StoreSchedule) string {
	var rows [][]string
	for _, d := range s.Days {
		if d.HelpTime == "" && len(d.Helpers) == 0 {
			continue
		}
		helpers := make([]string, len(d.Helpers))
		for i, h := range d.Helpers {
			helpers[i] = SpanStyle(shiftcode.Span{Color: s.Color}, "").Render(h.Time) + " " + h.Employee
		}
		req := d.HelpTime
		if req == "" {
			req = Dim("-")
		}
		rows = append(rows, append(dayColumns(d.Day), req, strings.Join(helpers, "\n")))
	}

	title := Header(fmt.Sprintf("%s (%s)", s.Store, s.Area))
	if len(rows) == 0 {
		return title + "\n\n" + Dim("No requests or helpers.") + "\n"
	}
	return title + "\n\n" + RenderTable([]string{"日付", "曜日", "依頼", "ヘルプ"}, rows)
}

// FormatStores lists every area with its stores and colors.
func FormatStores(areas []registry.Area) string {
	var b strings.Builder
	for i, a := range areas {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Header(a.Name))
		b.WriteString("\n")
		for _, s := range a.Stores {
			b.WriteString(Swatch(string(s.Color), fmt.Sprintf("%s  %s", s.Name, Dim(string(s.Color)))))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// FormatKeywords lists the special keywords and their backgrounds.
func FormatKeywords(keywords []registry.Keyword) string {
	var b strings.Builder
	b.WriteString(Header("キーワード"))
	b.WriteString("\n")
	for _, k := range keywords {
		b.WriteString(Swatch(string(k.Background), string(k.Name)))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatImportResult summarises a shift grid import.
func FormatImportResult(res *contract.ImportResult) string {
	body := fmt.Sprintf("imported %d cells over %d dates (%d empty skipped)", res.Cells, res.Rows, res.Skipped)
	return RenderBox("CSV import", body)
}
