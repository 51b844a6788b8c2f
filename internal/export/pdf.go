package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/alexanderramin/helpshift/internal/app"
	"github.com/alexanderramin/helpshift/internal/contract"
	"github.com/alexanderramin/helpshift/internal/shiftcode"
)

// ErrNoFont is returned when no TrueType font is configured. The built-in
// PDF fonts cannot render Japanese.
var ErrNoFont = errors.New("no PDF font configured (set HELPSHIFT_FONT to a Japanese TTF)")

const (
	fontFamily = "jp"
	lineHeight = 5.0
	cellPad    = 1.0
	dateColW   = 14.0
	dayColW    = 8.0
)

// PDFOptions configures PDF output.
type PDFOptions struct {
	FontPath     string
	BoldFontPath string
	// RowsPerPage splits tables over pages; zero keeps the default of 15.
	RowsPerPage int
}

func (o PDFOptions) rowsPerPage() int {
	if o.RowsPerPage <= 0 {
		return 15
	}
	return o.RowsPerPage
}

// pdfCell is one table cell: lines drawn top to bottom over a fill.
type pdfCell struct {
	Spans []shiftcode.Span
	Fill  shiftcode.Color
}

func textCell(text string, fill shiftcode.Color) pdfCell {
	return pdfCell{Spans: []shiftcode.Span{{Text: text}}, Fill: fill}
}

type pdfTable struct {
	pdf    *fpdf.Fpdf
	widths []float64
	header []string
}

func newDocument(orientation string, opts PDFOptions) (*fpdf.Fpdf, error) {
	if opts.FontPath == "" {
		return nil, ErrNoFont
	}
	pdf := fpdf.New(orientation, "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(false, 10)
	pdf.AddUTF8Font(fontFamily, "", opts.FontPath)
	bold := opts.BoldFontPath
	if bold == "" {
		bold = opts.FontPath
	}
	pdf.AddUTF8Font(fontFamily, "B", bold)
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("loading font: %w", err)
	}
	return pdf, nil
}

// columnWidths gives the fixed columns their widths and splits what is left
// of total evenly over n flexible columns.
func columnWidths(total float64, fixed []float64, n int) []float64 {
	widths := append([]float64(nil), fixed...)
	rest := total
	for _, w := range fixed {
		rest -= w
	}
	if n <= 0 {
		return widths
	}
	each := rest / float64(n)
	for i := 0; i < n; i++ {
		widths = append(widths, each)
	}
	return widths
}

func contentWidth(pdf *fpdf.Fpdf) float64 {
	w, _ := pdf.GetPageSize()
	l, _, r, _ := pdf.GetMargins()
	return w - l - r
}

func (t *pdfTable) title(text string) {
	t.pdf.SetFont(fontFamily, "B", 12)
	t.pdf.SetTextColor(0, 0, 0)
	t.pdf.CellFormat(0, 8, text, "", 1, "L", false, 0, "")
	t.pdf.Ln(1)
}

func (t *pdfTable) drawHeader() {
	cells := make([]pdfCell, len(t.header))
	for i, h := range t.header {
		cells[i] = textCell(h, "#D9D9D9")
	}
	t.drawRow(cells, true)
}

// drawRow draws cells side by side. Row height follows the tallest cell.
func (t *pdfTable) drawRow(cells []pdfCell, bold bool) {
	lines := 1
	for _, c := range cells {
		if len(c.Spans) > lines {
			lines = len(c.Spans)
		}
	}
	h := float64(lines)*lineHeight + 2*cellPad

	x0, y := t.pdf.GetXY()
	x := x0
	for i, c := range cells {
		w := t.widths[i]
		style := "D"
		if r, g, b, ok := c.Fill.RGB(); ok {
			t.pdf.SetFillColor(r, g, b)
			style = "FD"
		}
		t.pdf.SetDrawColor(166, 166, 166)
		t.pdf.Rect(x, y, w, h, style)

		for j, s := range c.Spans {
			fontStyle := ""
			if s.Bold || bold {
				fontStyle = "B"
			}
			t.pdf.SetFont(fontFamily, fontStyle, 8)
			if r, g, b, ok := s.Color.RGB(); ok {
				t.pdf.SetTextColor(r, g, b)
			} else {
				t.pdf.SetTextColor(0, 0, 0)
			}
			fill := false
			if r, g, b, ok := s.Background.RGB(); ok {
				t.pdf.SetFillColor(r, g, b)
				fill = true
			}
			t.pdf.SetXY(x+cellPad, y+cellPad+float64(j)*lineHeight)
			t.pdf.CellFormat(w-2*cellPad, lineHeight, s.Text, "", 0, "L", fill, 0, "")
		}
		x += w
	}
	t.pdf.SetXY(x0, y+h)
}

// paginate draws rows, starting a new page with a repeated header every
// perPage rows.
func (t *pdfTable) paginate(title string, orientation string, rows [][]pdfCell, perPage int) {
	pages := app.Pages(len(rows), perPage)
	for p := 0; p < pages; p++ {
		from, to := app.PageBounds(len(rows), perPage, p)
		t.pdf.AddPageFormat(orientation, t.pdf.GetPageSizeStr("A4"))
		t.title(fmt.Sprintf("%s (%d/%d)", title, p+1, pages))
		t.drawHeader()
		for _, r := range rows[from:to] {
			t.drawRow(r, false)
		}
	}
}

func dayCells(d contract.DayHeader) []pdfCell {
	return []pdfCell{textCell(d.DateLabel, d.Background), textCell(d.Weekday, d.Background)}
}

// presentedCell fills with a special keyword's background when it has one,
// the row background otherwise.
func presentedCell(p shiftcode.Presented) pdfCell {
	c := pdfCell{Fill: p.RowBackground}
	for _, s := range p.Spans {
		if s.Background != "" {
			c.Fill = s.Background
		}
		s.Background = ""
		c.Spans = append(c.Spans, s)
	}
	return c
}

// WriteHelpTablePDF renders the aggregate help table in landscape.
func WriteHelpTablePDF(w io.Writer, resp *contract.HelpTableResponse, opts PDFOptions) error {
	pdf, err := newDocument("L", opts)
	if err != nil {
		return err
	}
	t := &pdfTable{
		pdf:    pdf,
		widths: columnWidths(contentWidth(pdf), []float64{dateColW, dayColW}, len(resp.Employees)),
		header: append([]string{colDate, colWeekday}, resp.Employees...),
	}

	rows := make([][]pdfCell, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		cells := dayCells(row.Day)
		for _, c := range row.Cells {
			cells = append(cells, presentedCell(c.Presented))
		}
		rows = append(rows, cells)
	}
	t.paginate(resp.Period.Label()+" ヘルプ表", "L", rows, opts.rowsPerPage())
	return output(pdf, w)
}

// WriteIndividualPDF renders one employee's period with one column per
// presented span. Dash and special keyword cells span every entry column.
func WriteIndividualPDF(w io.Writer, resp *contract.IndividualResponse, opts PDFOptions) error {
	pdf, err := newDocument("P", opts)
	if err != nil {
		return err
	}
	n := resp.MaxSpans
	if n < 1 {
		n = 1
	}
	widths := columnWidths(contentWidth(pdf), []float64{dateColW, dayColW}, n)
	header := []string{colDate, colWeekday}
	for i := 0; i < n; i++ {
		header = append(header, fmt.Sprintf("%d", i+1))
	}

	merged := 0.0
	for _, wd := range widths[2:] {
		merged += wd
	}

	pdf.AddPage()
	t := &pdfTable{pdf: pdf, widths: widths, header: header}
	t.title(fmt.Sprintf("%s %s", resp.Period.Label(), resp.Employee))
	t.drawHeader()
	for i, row := range resp.Rows {
		if i > 0 && i%opts.rowsPerPage() == 0 {
			pdf.AddPage()
			t.drawHeader()
		}
		cells := dayCells(row.Day)
		switch row.Parsed.Variant() {
		case shiftcode.VariantDash, shiftcode.VariantSpecial:
			t.widths = append(widths[:2:2], merged)
			cells = append(cells, presentedCell(row.Presented))
		default:
			t.widths = widths
			for _, s := range row.Presented.Spans {
				cells = append(cells, pdfCell{Spans: []shiftcode.Span{s}, Fill: row.Presented.RowBackground})
			}
			for len(cells) < len(widths) {
				cells = append(cells, pdfCell{Fill: row.Presented.RowBackground})
			}
		}
		t.drawRow(cells, false)
	}
	t.widths = widths
	return output(pdf, w)
}

// WriteStoreSchedulePDF renders one page per store listing who helps when.
func WriteStoreSchedulePDF(w io.Writer, resp *contract.StoreScheduleResponse, opts PDFOptions) error {
	pdf, err := newDocument("P", opts)
	if err != nil {
		return err
	}
	widths := columnWidths(contentWidth(pdf), []float64{dateColW, dayColW, 30}, 1)
	header := []string{colDate, colWeekday, "依頼", "ヘルプ"}

	for _, sched := range resp.Schedules {
		t := &pdfTable{pdf: pdf, widths: widths, header: header}
		rows := make([][]pdfCell, 0, len(sched.Days))
		for _, d := range sched.Days {
			cells := dayCells(d.Day)
			cells = append(cells, textCell(d.HelpTime, d.Day.Background))
			helpers := pdfCell{Fill: d.Day.Background}
			for _, h := range d.Helpers {
				helpers.Spans = append(helpers.Spans, shiftcode.Span{
					Text:  h.Time + " " + h.Employee,
					Color: sched.Color,
				})
			}
			rows = append(rows, append(cells, helpers))
		}
		t.paginate(fmt.Sprintf("%s %s (%s)", resp.Period.Label(), sched.Store, sched.Area), "P", rows, opts.rowsPerPage())
	}
	return output(pdf, w)
}

func output(pdf *fpdf.Fpdf, w io.Writer) error {
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("rendering pdf: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}
