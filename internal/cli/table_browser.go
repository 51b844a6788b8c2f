package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/helpshift/internal/app"
	"github.com/alexanderramin/helpshift/internal/calendar"
	"github.com/alexanderramin/helpshift/internal/cli/formatter"
	"github.com/alexanderramin/helpshift/internal/contract"
	"github.com/alexanderramin/helpshift/internal/registry"
	"github.com/alexanderramin/helpshift/internal/shiftcode"
)

// browserKeyMap holds the table browser bindings.
type browserKeyMap struct {
	First      key.Binding
	Prev       key.Binding
	Next       key.Binding
	Last       key.Binding
	PrevPeriod key.Binding
	NextPeriod key.Binding
	Tab        key.Binding
	Quit       key.Binding
}

func defaultBrowserKeyMap() browserKeyMap {
	return browserKeyMap{
		First:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home", "first")),
		Prev:       key.NewBinding(key.WithKeys("left", "h", "pgup"), key.WithHelp("←", "prev")),
		Next:       key.NewBinding(key.WithKeys("right", "l", "pgdown"), key.WithHelp("→", "next")),
		Last:       key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end", "last")),
		PrevPeriod: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev period")),
		NextPeriod: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next period")),
		Tab:        key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch table")),
		Quit:       key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k browserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.First, k.Prev, k.Next, k.Last, k.PrevPeriod, k.NextPeriod, k.Tab, k.Quit}
}

func (k browserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.First, k.Prev, k.Next, k.Last},
		{k.PrevPeriod, k.NextPeriod, k.Tab, k.Quit},
	}
}

// tableLoadedMsg carries a period's tables. requests holds one table per
// area in registry order.
type tableLoadedMsg struct {
	period   calendar.Period
	help     *contract.HelpTableResponse
	requests []*contract.RequestTableResponse
	err      error
}

// tableBrowser pages through the help table and the per-area request
// tables. Tab cycles help table, then each area.
type tableBrowser struct {
	ctx    context.Context
	tables tableSource
	areas  []registry.Area
	size   int

	period calendar.Period
	// tab 0 is the help table; tab i>0 is areas[i-1].
	tab      int
	help     *contract.HelpTableResponse
	requests []*contract.RequestTableResponse
	err      error

	pager paginator.Model
	keys  browserKeyMap
	hint  help.Model
}

// tableSource is the slice of TableService the browser needs.
type tableSource interface {
	app.HelpTableUseCase
	app.RequestTableUseCase
}

func newTableBrowser(ctx context.Context, tables tableSource, areas []registry.Area, period calendar.Period, size, tab int) tableBrowser {
	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = size
	p.ActiveDot = formatter.StyleHeader.Render("•")
	p.InactiveDot = formatter.StyleDim.Render("•")

	if tab < 0 || tab > len(areas) {
		tab = 0
	}
	return tableBrowser{
		ctx:    ctx,
		tables: tables,
		areas:  areas,
		size:   size,
		period: period,
		tab:    tab,
		pager:  p,
		keys:   defaultBrowserKeyMap(),
		hint:   help.New(),
	}
}

func (m tableBrowser) Init() tea.Cmd {
	return m.load(m.period)
}

func (m tableBrowser) load(period calendar.Period) tea.Cmd {
	ctx, tables, areas := m.ctx, m.tables, m.areas
	return func() tea.Msg {
		msg := tableLoadedMsg{period: period}
		msg.help, msg.err = tables.HelpTable(ctx, contract.HelpTableRequest{
			Period: period,
			Medium: shiftcode.MediumScreen,
		})
		if msg.err != nil {
			return msg
		}
		for _, a := range areas {
			resp, err := tables.RequestTable(ctx, contract.RequestTableRequest{Period: period, Area: a.Name})
			if err != nil {
				msg.err = err
				return msg
			}
			msg.requests = append(msg.requests, resp)
		}
		return msg
	}
}

func (m tableBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.hint.Width = msg.Width
		return m, nil

	case tableLoadedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.period = msg.period
			m.help = msg.help
			m.requests = msg.requests
			m.pager.Page = 0
			m.pager.SetTotalPages(len(m.help.Rows))
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.First):
			m.pager.Page = 0
		case key.Matches(msg, m.keys.Prev):
			m.pager.PrevPage()
		case key.Matches(msg, m.keys.Next):
			m.pager.NextPage()
		case key.Matches(msg, m.keys.Last):
			if m.pager.TotalPages > 0 {
				m.pager.Page = m.pager.TotalPages - 1
			}
		case key.Matches(msg, m.keys.PrevPeriod):
			return m, m.load(m.period.Prev())
		case key.Matches(msg, m.keys.NextPeriod):
			return m, m.load(m.period.Next())
		case key.Matches(msg, m.keys.Tab):
			m.tab = (m.tab + 1) % (len(m.areas) + 1)
		}
	}
	return m, nil
}

func (m tableBrowser) View() string {
	var b strings.Builder
	b.WriteString(m.tabBar())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render("Error: " + m.err.Error()))
	case m.help == nil:
		b.WriteString(formatter.Dim("読み込み中..."))
	case m.tab == 0:
		b.WriteString(formatter.FormatHelpTable(m.help, m.pager.Page, m.size))
	default:
		b.WriteString(formatter.FormatRequestTable(m.requests[m.tab-1], m.pager.Page, m.size))
	}

	b.WriteString("\n\n")
	if m.pager.TotalPages > 1 {
		b.WriteString(m.pager.View())
		b.WriteString("  ")
	}
	b.WriteString(m.hint.View(m.keys))
	return b.String()
}

func (m tableBrowser) tabBar() string {
	names := make([]string, 0, len(m.areas)+1)
	names = append(names, "ヘルプ表")
	for _, a := range m.areas {
		names = append(names, a.Name)
	}
	for i, n := range names {
		if i == m.tab {
			names[i] = formatter.StyleHeader.Render("[" + n + "]")
		} else {
			names[i] = formatter.Dim(" " + n + " ")
		}
	}
	return strings.Join(names, " ")
}
