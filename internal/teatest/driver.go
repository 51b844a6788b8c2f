// Package teatest drives a bubbletea model synchronously in tests.
//
// Instead of running a tea.Program, the driver calls Update directly and
// executes each returned Cmd in turn, feeding its message back in until the
// model goes quiet. Keys are named the way bubbles/key bindings print them
// ("right", "end", "tab", "]"), so a test reads like the help line it checks.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDrainDepth bounds how many chained Cmds one Send may run.
const maxDrainDepth = 100

// cmdTimeout is how long a Cmd may block before its message is dropped.
// Period loads against an in-memory database finish well inside it.
const cmdTimeout = 400 * time.Millisecond

// Driver is a synchronous harness for one tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once tea.Quit has been returned. The runtime normally
	// swallows tea.QuitMsg, so the driver records it instead.
	Quitting bool

	// Seen lists the type of every message delivered to Update, in order.
	Seen []string
}

// Option configures a Driver before its first message.
type Option func(*Driver)

// WithSize delivers a WindowSizeMsg first, as the runtime would on start.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.deliver(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// New wraps model. Call DrainInit to run its Init command.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DrainInit runs the model's Init command and everything it leads to.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drain(d.Model.Init(), 0)
}

// Send delivers msg and drains the resulting commands. It is a no-op once
// the model has quit.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	d.drain(d.deliver(msg), 0)
}

var namedKeys = map[string]tea.KeyType{
	"left":   tea.KeyLeft,
	"right":  tea.KeyRight,
	"up":     tea.KeyUp,
	"down":   tea.KeyDown,
	"home":   tea.KeyHome,
	"end":    tea.KeyEnd,
	"pgup":   tea.KeyPgUp,
	"pgdown": tea.KeyPgDown,
	"tab":    tea.KeyTab,
	"enter":  tea.KeyEnter,
	"esc":    tea.KeyEsc,
	"ctrl+c": tea.KeyCtrlC,
}

// KeyMsg builds the message for a key name. Anything that is not a named key
// is sent as runes.
func KeyMsg(name string) tea.KeyMsg {
	if t, ok := namedKeys[name]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

// Press sends each named key in order.
func (d *Driver) Press(names ...string) {
	d.T.Helper()
	for _, n := range names {
		d.Send(KeyMsg(n))
	}
}

// View renders the model.
func (d *Driver) View() string {
	return d.Model.View()
}

// ViewContains fails the test unless the view contains every want.
func (d *Driver) ViewContains(want ...string) {
	d.T.Helper()
	view := d.View()
	for _, w := range want {
		if !strings.Contains(view, w) {
			d.T.Errorf("view does not contain %q:\n%s", w, view)
		}
	}
}

func (d *Driver) deliver(msg tea.Msg) tea.Cmd {
	d.Seen = append(d.Seen, fmt.Sprintf("%T", msg))
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	return cmd
}

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= maxDrainDepth {
		d.T.Logf("teatest: stopped after %d chained commands", maxDrainDepth)
		return
	}

	msg, ok := run(cmd)
	if !ok {
		d.T.Logf("teatest: command still running after %s, message dropped", cmdTimeout)
		return
	}

	switch msg := msg.(type) {
	case nil:
	case tea.BatchMsg:
		for _, sub := range msg {
			d.drain(sub, depth+1)
		}
	case tea.QuitMsg:
		d.Quitting = true
		d.deliver(msg)
	default:
		d.drain(d.deliver(msg), depth+1)
	}
}

// run executes cmd, giving up after cmdTimeout.
func run(cmd tea.Cmd) (tea.Msg, bool) {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg, true
	case <-time.After(cmdTimeout):
		return nil, false
	}
}
