package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/helpshift/internal/calendar"
	"github.com/alexanderramin/helpshift/internal/contract"
	"github.com/alexanderramin/helpshift/internal/teatest"
)

func newBrowserDriver(t *testing.T, app *App) *teatest.Driver {
	t.Helper()
	m := newTableBrowser(context.Background(), app.Tables, app.Registry.Areas(),
		calendar.PeriodFor(2026, 10), app.pageSize(), 0)
	d := teatest.New(t, m, teatest.WithSize(200, 60))
	d.DrainInit()
	return d
}

func browserState(t *testing.T, d *teatest.Driver) tableBrowser {
	t.Helper()
	m, ok := d.Model.(tableBrowser)
	require.True(t, ok, "model is %T", d.Model)
	return m
}

func TestTableBrowser_LoadsFirstPage(t *testing.T) {
	d := newBrowserDriver(t, testApp(t))

	d.ViewContains("[ヘルプ表]", "10/16", "10/30", "home first")
	assert.NotContains(t, d.View(), "10/31")
	assert.Equal(t, 3, browserState(t, d).pager.TotalPages)
}

func TestTableBrowser_Paging(t *testing.T) {
	d := newBrowserDriver(t, testApp(t))

	d.Press("right")
	d.ViewContains("10/31", "11/14")
	assert.Equal(t, 1, browserState(t, d).pager.Page)

	d.Press("end")
	d.ViewContains("11/15")
	assert.Equal(t, 2, browserState(t, d).pager.Page)

	d.Press("right")
	assert.Equal(t, 2, browserState(t, d).pager.Page, "next on the last page stays put")

	d.Press("home")
	d.ViewContains("10/16")
	assert.Equal(t, 0, browserState(t, d).pager.Page)

	d.Press("left")
	assert.Equal(t, 0, browserState(t, d).pager.Page, "prev on the first page stays put")
}

func TestTableBrowser_PeriodNavigation(t *testing.T) {
	d := newBrowserDriver(t, testApp(t))
	d.Press("right")

	d.Press("]")
	m := browserState(t, d)
	assert.Equal(t, "2026-11", m.period.String())
	assert.Equal(t, 0, m.pager.Page, "a new period starts on its first page")
	d.ViewContains("11/16")

	d.Press("[", "[")
	assert.Equal(t, "2026-09", browserState(t, d).period.String())
}

func TestTableBrowser_TabCyclesAreas(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "request", "set", "--date", "2026-10-16", "--store", "本店", "--time", "10-15")
	require.NoError(t, err)

	d := newBrowserDriver(t, app)
	areas := app.Registry.Areas()

	d.Press("tab")
	d.ViewContains("["+areas[0].Name+"]", "本店", "10-15")

	for range areas {
		d.Press("tab")
	}
	d.ViewContains("[ヘルプ表]")
	assert.Equal(t, 0, browserState(t, d).tab)
}

func TestTableBrowser_Quit(t *testing.T) {
	d := newBrowserDriver(t, testApp(t))

	d.Press("q")
	assert.True(t, d.Quitting)

	seen := len(d.Seen)
	d.Press("right")
	assert.Len(t, d.Seen, seen, "no messages are delivered after quitting")
}

func TestTableBrowser_PgKeysPage(t *testing.T) {
	d := newBrowserDriver(t, testApp(t))

	d.Press("pgdown", "pgdown")
	assert.Equal(t, 2, browserState(t, d).pager.Page)
	d.Press("pgup")
	assert.Equal(t, 1, browserState(t, d).pager.Page)
}

func TestTableBrowser_LoadDeliversTables(t *testing.T) {
	d := newBrowserDriver(t, testApp(t))

	assert.Contains(t, d.Seen, "cli.tableLoadedMsg")
}

type failingTables struct{}

func (failingTables) HelpTable(context.Context, contract.HelpTableRequest) (*contract.HelpTableResponse, error) {
	return nil, errors.New("database locked")
}

func (failingTables) RequestTable(context.Context, contract.RequestTableRequest) (*contract.RequestTableResponse, error) {
	return nil, errors.New("database locked")
}

func TestTableBrowser_ShowsLoadError(t *testing.T) {
	m := newTableBrowser(context.Background(), failingTables{}, nil, calendar.PeriodFor(2026, 10), 15, 0)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	d.ViewContains("Error: database locked")

	d.Press("right")
	d.ViewContains("Error: database locked")
}
