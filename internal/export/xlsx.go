package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/alexanderramin/helpshift/internal/contract"
	"github.com/alexanderramin/helpshift/internal/shiftcode"
)

const helpSheet = "ヘルプ表"

// Workbook is the content of an XLSX export: the help table plus one sheet
// per area request table.
type Workbook struct {
	Help     *contract.HelpTableResponse
	Requests []*contract.RequestTableResponse
}

// WriteXLSX renders wb. Cells use rich text so each entry keeps its store
// color; rows carry the weekend and holiday fills.
func WriteXLSX(w io.Writer, wb Workbook) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	styles := newStyleCache(f)
	first := true
	sheet := func(name string) error {
		if first {
			first = false
			return f.SetSheetName("Sheet1", name)
		}
		_, err := f.NewSheet(name)
		return err
	}

	if wb.Help != nil {
		if err := sheet(helpSheet); err != nil {
			return fmt.Errorf("creating sheet: %w", err)
		}
		if err := writeHelpSheet(f, styles, wb.Help); err != nil {
			return err
		}
	}
	for _, rt := range wb.Requests {
		if err := sheet(rt.Area); err != nil {
			return fmt.Errorf("creating sheet %s: %w", rt.Area, err)
		}
		if err := writeRequestSheet(f, styles, rt); err != nil {
			return err
		}
	}
	if first {
		return fmt.Errorf("workbook is empty")
	}

	f.SetActiveSheet(0)
	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeHelpSheet(f *excelize.File, styles *styleCache, resp *contract.HelpTableResponse) error {
	sh := helpSheet
	if err := writeTitle(f, styles, sh, resp.Period.Label()+" ヘルプ表", len(resp.Employees)+2); err != nil {
		return err
	}

	header := append([]string{colDate, colWeekday}, resp.Employees...)
	if err := writeHeader(f, styles, sh, header); err != nil {
		return err
	}
	if err := f.SetColWidth(sh, "A", "B", 8); err != nil {
		return err
	}
	if last, err := excelize.ColumnNumberToName(len(header)); err == nil && len(header) > 2 {
		if err := f.SetColWidth(sh, "C", last, 16); err != nil {
			return err
		}
	}

	for i, row := range resp.Rows {
		r := i + 3
		bg := row.Day.Background
		if err := setPlain(f, styles, sh, 1, r, row.Day.DateLabel, bg); err != nil {
			return err
		}
		if err := setPlain(f, styles, sh, 2, r, row.Day.Weekday, bg); err != nil {
			return err
		}
		for j, cell := range row.Cells {
			if err := setPresented(f, styles, sh, j+3, r, cell.Presented); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeRequestSheet(f *excelize.File, styles *styleCache, resp *contract.RequestTableResponse) error {
	sh := resp.Area
	if err := writeTitle(f, styles, sh, resp.Period.Label()+" "+resp.Area, len(resp.Stores)+2); err != nil {
		return err
	}
	header := append([]string{colDate, colWeekday}, resp.Stores...)
	if err := writeHeader(f, styles, sh, header); err != nil {
		return err
	}
	for i, row := range resp.Rows {
		r := i + 3
		bg := row.Day.Background
		if err := setPlain(f, styles, sh, 1, r, row.Day.DateLabel, bg); err != nil {
			return err
		}
		if err := setPlain(f, styles, sh, 2, r, row.Day.Weekday, bg); err != nil {
			return err
		}
		for j, c := range row.Cells {
			cbg := bg
			if c.Filled {
				cbg = c.Background
			}
			if err := setPlain(f, styles, sh, j+3, r, c.HelpTime, cbg); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeTitle(f *excelize.File, styles *styleCache, sheet, title string, width int) error {
	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return err
	}
	id, err := styles.title()
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "A1", id); err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(width, 1)
	if err != nil {
		return err
	}
	return f.MergeCell(sheet, "A1", end)
}

func writeHeader(f *excelize.File, styles *styleCache, sheet string, header []string) error {
	id, err := styles.header()
	if err != nil {
		return err
	}
	for i, h := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, id); err != nil {
			return err
		}
	}
	return nil
}

func setPlain(f *excelize.File, styles *styleCache, sheet string, col, row int, text string, bg shiftcode.Color) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, cell, text); err != nil {
		return err
	}
	id, err := styles.cell(bg)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, cell, cell, id)
}

// setPresented writes one rich-text run per span. A special keyword's own
// background takes precedence over the row background.
func setPresented(f *excelize.File, styles *styleCache, sheet string, col, row int, p shiftcode.Presented) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}

	bg := p.RowBackground
	runs := make([]excelize.RichTextRun, 0, len(p.Spans))
	for i, s := range p.Spans {
		text := s.Text
		if i < len(p.Spans)-1 {
			text += "\n"
		}
		font := &excelize.Font{Bold: s.Bold}
		if s.Color != "" {
			font.Color = string(s.Color)
		}
		runs = append(runs, excelize.RichTextRun{Text: text, Font: font})
		if s.Background != "" {
			bg = s.Background
		}
	}
	if err := f.SetCellRichText(sheet, cell, runs); err != nil {
		return err
	}
	id, err := styles.cell(bg)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, cell, cell, id)
}

// styleCache registers each distinct style once per workbook.
type styleCache struct {
	f     *excelize.File
	cells map[shiftcode.Color]int
	hdr   int
	ttl   int
}

func newStyleCache(f *excelize.File) *styleCache {
	return &styleCache{f: f, cells: make(map[shiftcode.Color]int), hdr: -1, ttl: -1}
}

func thinBorder() []excelize.Border {
	var b []excelize.Border
	for _, side := range []string{"left", "right", "top", "bottom"} {
		b = append(b, excelize.Border{Type: side, Color: "#A6A6A6", Style: 1})
	}
	return b
}

func (c *styleCache) cell(bg shiftcode.Color) (int, error) {
	if id, ok := c.cells[bg]; ok {
		return id, nil
	}
	st := &excelize.Style{
		Border:    thinBorder(),
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	}
	if bg != "" {
		st.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{string(bg)}}
	}
	id, err := c.f.NewStyle(st)
	if err != nil {
		return 0, fmt.Errorf("creating cell style: %w", err)
	}
	c.cells[bg] = id
	return id, nil
}

func (c *styleCache) header() (int, error) {
	if c.hdr >= 0 {
		return c.hdr, nil
	}
	id, err := c.f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Border:    thinBorder(),
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9D9D9"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return 0, fmt.Errorf("creating header style: %w", err)
	}
	c.hdr = id
	return id, nil
}

func (c *styleCache) title() (int, error) {
	if c.ttl >= 0 {
		return c.ttl, nil
	}
	id, err := c.f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return 0, fmt.Errorf("creating title style: %w", err)
	}
	c.ttl = id
	return id, nil
}
