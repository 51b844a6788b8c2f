package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(title)
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// Swatch renders a small block in color c followed by label.
func Swatch(c string, label string) string {
	if c == "" {
		return "   " + label
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(c)).Render("  ") + " " + label
}

// PageIndicator renders one dot per page with the current page highlighted.
func PageIndicator(page, pages int) string {
	var b strings.Builder
	for i := 0; i < pages; i++ {
		if i == page {
			b.WriteString(StyleHeader.Render("●"))
		} else {
			b.WriteString(StyleDim.Render("○"))
		}
	}
	return b.String()
}
