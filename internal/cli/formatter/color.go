package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/helpshift/internal/shiftcode"
)

// Gruvbox-inspired color palette for chrome. Cell colors come from the
// shift palette and the store registry.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	line := strings.Repeat("─", lipgloss.Width(text))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(text), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// SpanStyle maps a presented span to a terminal style. bg is the row
// background used when the span has none of its own.
func SpanStyle(s shiftcode.Span, bg shiftcode.Color) lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.Color != "" {
		st = st.Foreground(lipgloss.Color(s.Color))
	}
	if s.Background != "" {
		st = st.Background(lipgloss.Color(s.Background))
	} else if bg != "" {
		st = st.Background(lipgloss.Color(bg))
	}
	if s.Bold {
		st = st.Bold(true)
	}
	return st
}

// RenderPresented renders each span on its own line.
func RenderPresented(p shiftcode.Presented) string {
	lines := make([]string, len(p.Spans))
	for i, s := range p.Spans {
		lines[i] = SpanStyle(s, p.RowBackground).Render(s.Text)
	}
	return strings.Join(lines, "\n")
}

// RenderOnBackground renders plain text over a row background.
func RenderOnBackground(text string, bg shiftcode.Color) string {
	if bg == "" {
		return text
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(bg)).Render(text)
}
