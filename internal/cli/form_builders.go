package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/helpshift/internal/calendar"
	"github.com/alexanderramin/helpshift/internal/cli/formatter"
	"github.com/alexanderramin/helpshift/internal/registry"
	"github.com/alexanderramin/helpshift/internal/shiftcode"
)

// helpshiftHuhTheme returns a huh theme matching the formatter palette.
func helpshiftHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateDate(s string) error {
	if _, err := calendar.ParseDate(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

func validateSlotTime(s string) error {
	if strings.ContainsAny(s, ",@") {
		return fmt.Errorf("time may not contain , or @")
	}
	return nil
}

// dateInput returns a huh.Input for a required YYYY-MM-DD date.
func dateInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("2026-10-16").
		Value(value).
		Validate(validateDate)
}

func employeeSelect(dir *registry.Registry, value *string) *huh.Select[string] {
	options := make([]huh.Option[string], 0, len(dir.Employees()))
	for _, e := range dir.Employees() {
		options = append(options, huh.NewOption(e, e))
	}
	return huh.NewSelect[string]().
		Title("従業員").
		Options(options...).
		Value(value)
}

// storeOptions lists stores grouped by area, with a leading "no store"
// choice for slots that only give a time.
func storeOptions(dir *registry.Registry, allowNone bool) []huh.Option[string] {
	var options []huh.Option[string]
	if allowNone {
		options = append(options, huh.NewOption("(店舗なし)", ""))
	}
	for _, a := range dir.Areas() {
		for _, s := range a.Stores {
			options = append(options, huh.NewOption(a.Name+" / "+s.Name, s.Name))
		}
	}
	return options
}

// shiftFormValues backs the shift edit form.
type shiftFormValues struct {
	Employee string
	Date     string
	Kind     string
	Slots    [maxSlots]slotInput
}

func (v *shiftFormValues) slots() []slotInput {
	return v.Slots[:]
}

// shiftForm builds the registration form: who, when, which kind, then up to
// five time/store slots that are hidden unless the kind takes segments.
func shiftForm(dir *registry.Registry, v *shiftFormValues) *huh.Form {
	kinds := kindChoices(dir)
	kindOptions := make([]huh.Option[string], 0, len(kinds))
	for _, k := range kinds {
		kindOptions = append(kindOptions, huh.NewOption(string(k), string(k)))
	}

	groups := []*huh.Group{
		huh.NewGroup(
			employeeSelect(dir, &v.Employee),
			dateInput("日付 (YYYY-MM-DD)", &v.Date),
			huh.NewSelect[string]().
				Title("区分").
				Options(kindOptions...).
				Value(&v.Kind),
		),
	}

	hideSlots := func() bool {
		return !shiftcode.Kind(v.Kind).IsAvailability()
	}
	for i := range v.Slots {
		slot := &v.Slots[i]
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("時間 %d", i+1)).
				Placeholder("10-15").
				Value(&slot.Time).
				Validate(validateSlotTime),
			huh.NewSelect[string]().
				Title(fmt.Sprintf("店舗 %d", i+1)).
				Options(storeOptions(dir, true)...).
				Value(&slot.Store),
		).WithHideFunc(hideSlots))
	}

	return huh.NewForm(groups...).WithTheme(helpshiftHuhTheme()).WithShowHelp(false)
}

// requestFormValues backs the help-request form.
type requestFormValues struct {
	Date     string
	Store    string
	HelpTime string
}

func requestForm(dir *registry.Registry, v *requestFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			dateInput("日付 (YYYY-MM-DD)", &v.Date),
			huh.NewSelect[string]().
				Title("店舗").
				Options(storeOptions(dir, false)...).
				Value(&v.Store),
			huh.NewInput().
				Title("ヘルプ時間 (空欄で取消)").
				Placeholder("10-15").
				Value(&v.HelpTime),
		),
	).WithTheme(helpshiftHuhTheme()).WithShowHelp(false)
}
