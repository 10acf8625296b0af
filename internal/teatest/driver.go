// Package teatest drives bubbletea models synchronously in tests.
//
// The Driver calls Update directly and runs every returned Cmd in turn
// instead of starting a tea.Program. Lines the model prints with
// tea.Println are collected so tests can assert on scrollback as well as
// on View.
//
// Cursor blink Cmds block on a timer; they are given a short timeout and
// skipped.
package teatest

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth bounds how many chained Cmds one event may produce.
const MaxDrainDepth = 100

// cmdTimeout separates message factories, which return at once, from
// blink timers, which sleep for about half a second.
const cmdTimeout = 10 * time.Millisecond

// Driver is a synchronous test harness for any tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once tea.Quit has been drained.
	Quitting bool

	printed []string
}

// Option configures the Driver during construction.
type Option func(*Driver)

// New creates a Driver for model. Call DrainInit to run its Init command.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WithSize sends an initial WindowSizeMsg before any other processing.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.T.Helper()
		d.Model, _ = d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// DrainInit runs the model's Init command and everything it leads to.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drain(d.Model.Init(), 0)
}

// Send dispatches msg through Update and drains the resulting Cmds.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.drain(cmd, 0)
}

// ── keys ─────────────────────────────────────────────────────────────────────

func (d *Driver) key(t tea.KeyType) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: t})
}

// PressKey sends a single rune.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func (d *Driver) PressEnter() { d.T.Helper(); d.key(tea.KeyEnter) }
func (d *Driver) PressEsc()   { d.T.Helper(); d.key(tea.KeyEsc) }
func (d *Driver) PressCtrlC() { d.T.Helper(); d.key(tea.KeyCtrlC) }
func (d *Driver) PressUp()    { d.T.Helper(); d.key(tea.KeyUp) }
func (d *Driver) PressDown()  { d.T.Helper(); d.key(tea.KeyDown) }
func (d *Driver) PressTab()   { d.T.Helper(); d.key(tea.KeyTab) }

// Type sends s one rune at a time. Spaces go out as KeySpace the way a
// real terminal reports them.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		if r == ' ' {
			d.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		d.PressKey(r)
	}
}

// Submit types line and presses Enter.
func (d *Driver) Submit(line string) {
	d.T.Helper()
	d.Type(line)
	d.PressEnter()
}

// ── output ───────────────────────────────────────────────────────────────────

// View returns the model's current frame.
func (d *Driver) View() string {
	return d.Model.View()
}

// Printed returns every tea.Println line seen so far, oldest first.
func (d *Driver) Printed() []string {
	return append([]string(nil), d.printed...)
}

// Output joins Printed with newlines.
func (d *Driver) Output() string {
	return strings.Join(d.printed, "\n")
}

// LastPrinted returns the newest printed line, or "".
func (d *Driver) LastPrinted() string {
	if len(d.printed) == 0 {
		return ""
	}
	return d.printed[len(d.printed)-1]
}

// ResetOutput forgets previously printed lines.
func (d *Driver) ResetOutput() {
	d.printed = nil
}

// ── draining ─────────────────────────────────────────────────────────────────

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest.Driver: drain depth limit (%d) reached", MaxDrainDepth)
		return
	}

	msg := runWithTimeout(cmd)
	switch m := msg.(type) {
	case nil:
		return
	case tea.BatchMsg:
		for _, sub := range m {
			d.drain(sub, depth+1)
		}
		return
	case tea.QuitMsg:
		d.Quitting = true
		d.Model, _ = d.Model.Update(m)
		return
	}

	if isCursorBlink(msg) {
		return
	}
	if body, ok := printedBody(msg); ok {
		d.printed = append(d.printed, body)
		return
	}
	if isSequence(msg) {
		for _, sub := range sequenceCmds(msg) {
			d.drain(sub, depth+1)
		}
		return
	}

	var next tea.Cmd
	d.Model, next = d.Model.Update(msg)
	d.drain(next, depth+1)
}

// runWithTimeout returns nil when cmd does not finish within cmdTimeout.
func runWithTimeout(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() {
		ch <- cmd()
	}()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

// isCursorBlink matches the unexported blink messages from bubbles/cursor.
func isCursorBlink(msg tea.Msg) bool {
	t := fmt.Sprintf("%T", msg)
	return strings.Contains(t, "Blink") || strings.Contains(t, "blink")
}

// printedBody extracts the text of tea.Println's unexported message.
func printedBody(msg tea.Msg) (string, bool) {
	v := reflect.ValueOf(msg)
	if v.Kind() != reflect.Struct || !strings.HasSuffix(v.Type().Name(), "printLineMessage") {
		return "", false
	}
	f := v.FieldByName("messageBody")
	if !f.IsValid() || f.Kind() != reflect.String {
		return "", false
	}
	return f.String(), true
}

// isSequence matches tea.Sequence's unexported message.
func isSequence(msg tea.Msg) bool {
	return reflect.TypeOf(msg).Name() == "sequenceMsg"
}

func sequenceCmds(msg tea.Msg) []tea.Cmd {
	v := reflect.ValueOf(msg)
	if v.Kind() != reflect.Slice {
		return nil
	}
	cmds := make([]tea.Cmd, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		if c, ok := v.Index(i).Interface().(tea.Cmd); ok {
			cmds = append(cmds, c)
		}
	}
	return cmds
}
