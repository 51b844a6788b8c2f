package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderTable renders an aligned table with a header separator line.
// Headers are rendered with the Header style. Cells may span several lines;
// a row is as tall as its tallest cell. Widths are measured on visible text
// so styled cells and wide characters line up.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	cols := len(headers)

	widths := make([]int, cols)
	for i, h := range headers {
		if w := lipgloss.Width(h); w > widths[i] {
			widths[i] = w
		}
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			for _, line := range strings.Split(row[i], "\n") {
				if w := lipgloss.Width(line); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}

	// Add padding between columns.
	const colGap = 2

	var b strings.Builder

	for i, h := range headers {
		b.WriteString(StyleHeader.Render(h))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", max(widths[i]-lipgloss.Width(h), 0)+colGap))
		}
	}
	b.WriteString("\n")

	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")

	for _, row := range rows {
		cells := make([][]string, cols)
		height := 1
		for i := 0; i < cols; i++ {
			if i < len(row) {
				cells[i] = strings.Split(row[i], "\n")
			}
			if len(cells[i]) > height {
				height = len(cells[i])
			}
		}
		for ln := 0; ln < height; ln++ {
			for i := 0; i < cols; i++ {
				cell := ""
				if ln < len(cells[i]) {
					cell = cells[i][ln]
				}
				b.WriteString(cell)
				if i < cols-1 {
					b.WriteString(strings.Repeat(" ", max(widths[i]-lipgloss.Width(cell), 0)+colGap))
				}
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}
