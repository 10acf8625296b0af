package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/roadmap/internal/cli/formatter"
	"github.com/alexanderramin/roadmap/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// shellMode tracks which interaction mode the shell is in.
type shellMode int

const (
	modePrompt  shellMode = iota // Normal command input.
	modeWizard                   // huh form is active.
	modeConfirm                  // Awaiting y/n for a removal.
)

// pendingConfirmation is a removal waiting for the user's y/n.
type pendingConfirmation struct {
	description string
	args        []string
}

// destructiveCommands lists the subcommands that ask before running.
var destructiveCommands = map[string]map[string]bool{
	"phase": {"remove": true, "rm": true, "delete": true},
	"task":  {"remove": true, "rm": true, "delete": true},
}

// shellModel is the bubbletea Model for the interactive shell REPL.
type shellModel struct {
	input textinput.Model
	form  *huh.Form // active wizard form (nil when not in wizard mode)
	width int

	app *App

	mode       shellMode
	wizardDone func(m *shellModel) tea.Cmd

	pendingConfirm *pendingConfirmation

	history *shellHistory

	quitting bool
}

func newShellModel(app *App) shellModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.ShowSuggestions = true
	ti.CharLimit = 500
	// Tab accepts a suggestion; Up/Down stay on history.
	ti.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	ti.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))

	return shellModel{
		input:   ti,
		app:     app,
		history: newShellHistory(maxHistoryLines),
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m shellModel) Init() tea.Cmd {
	title := m.app.Roadmap.Current(context.Background()).Title()
	return tea.Batch(
		textinput.Blink,
		tea.Println(formatter.FormatShellWelcome(title)),
	)
}

func (m shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(m.promptPrefix()) - 1
		if m.form != nil {
			m.form = m.form.WithWidth(msg.Width)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}

		switch m.mode {
		case modeWizard:
			return m.updateWizard(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		default:
			return m.updatePrompt(msg)
		}
	}

	// huh needs its own non-key messages (init, focus, blink).
	if m.mode == modeWizard && m.form != nil {
		return m.updateWizard(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m shellModel) View() string {
	if m.quitting {
		return formatter.Dim("Goodbye.") + "\n"
	}
	if m.mode == modeWizard && m.form != nil {
		return m.form.View()
	}
	return m.promptPrefix() + m.input.View()
}

func (m *shellModel) promptPrefix() string {
	if m.mode == modeConfirm {
		return formatter.StyleYellow.Render("confirm (y/n)") + " " + formatter.Dim("❯") + " "
	}
	return formatter.StylePurple.Render("roadmap") + " " + formatter.Dim("❯") + " "
}

// ── prompt mode ──────────────────────────────────────────────────────────────

func (m shellModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		input := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		m.input.SetSuggestions(nil)
		if input == "" {
			return m, nil
		}
		m.history.Add(input)
		output, cmd := m.executeCommand(input)
		var cmds []tea.Cmd
		if output != "" {
			cmds = append(cmds, tea.Println(output))
		}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case tea.KeyUp:
		if line, ok := m.history.Prev(); ok {
			m.input.SetValue(line)
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyDown:
		line, _ := m.history.Next()
		m.input.SetValue(line)
		m.input.CursorEnd()
		return m, nil

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.updateSuggestions()
		return m, cmd
	}
}

// ── wizard mode ──────────────────────────────────────────────────────────────

// startWizard switches to wizard mode with the given form and completion callback.
func (m *shellModel) startWizard(form *huh.Form, done func(m *shellModel) tea.Cmd) tea.Cmd {
	m.mode = modeWizard
	m.form = form
	if m.width > 0 {
		m.form = m.form.WithWidth(m.width)
	}
	m.wizardDone = done
	return m.form.Init()
}

func (m shellModel) updateWizard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.mode = modePrompt
		m.form = nil
		m.wizardDone = nil
		return m, tea.Println(formatter.Dim("Cancelled."))
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.mode = modePrompt
		done := m.wizardDone
		m.form = nil
		m.wizardDone = nil
		if done != nil {
			return m, tea.Batch(cmd, done(&m))
		}
		return m, cmd
	case huh.StateAborted:
		m.mode = modePrompt
		m.form = nil
		m.wizardDone = nil
		return m, tea.Println(formatter.Dim("Cancelled."))
	}

	return m, cmd
}

// ── confirm mode ─────────────────────────────────────────────────────────────

func (m shellModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		input := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		pending := m.pendingConfirm
		m.pendingConfirm = nil
		m.mode = modePrompt

		switch strings.ToLower(input) {
		case "y", "yes":
			return m, tea.Println(m.execCobraCapture(append(pending.args, "--yes")))
		default:
			return m, tea.Println(formatter.Dim("Cancelled."))
		}
	case tea.KeyEsc:
		m.input.Reset()
		m.pendingConfirm = nil
		m.mode = modePrompt
		return m, tea.Println(formatter.Dim("Cancelled."))
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

// ── command dispatch ─────────────────────────────────────────────────────────

func (m *shellModel) executeCommand(input string) (string, tea.Cmd) {
	parts, err := splitShellArgs(input)
	if err != nil {
		return shellError(err), nil
	}
	if len(parts) == 0 {
		return "", nil
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "clear":
		return "\033[H\033[2J", nil
	case "help", "?":
		return formatter.FormatShellHelp(), nil
	case "exit", "quit":
		m.quitting = true
		return "", tea.Quit
	case "shell":
		return formatter.StyleYellow.Render("Already in shell mode."), nil
	case "cycle", "toggle":
		return m.execCobraCapture(append([]string{"task", "cycle"}, args...)), nil
	case "phases":
		return m.execCobraCapture([]string{"phase", "list"}), nil
	case "phase", "task":
		if m.shouldStartWizard(parts) {
			return m.execWizardForCommand(parts)
		}
		return m.execMaybeDestructive(parts), nil
	default:
		return m.execCobraCapture(parts), nil
	}
}

// shouldStartWizard reports whether parts is a bare add/update command,
// which the shell answers with a form instead of flag errors.
func (m *shellModel) shouldStartWizard(parts []string) bool {
	if len(parts) < 2 {
		return false
	}
	for _, p := range parts[2:] {
		if strings.HasPrefix(p, "-") {
			return false
		}
	}
	group, sub := strings.ToLower(parts[0]), strings.ToLower(parts[1])
	switch group + " " + sub {
	case "phase add":
		return len(parts) == 2
	case "phase update", "phase edit", "task add":
		return len(parts) == 3
	case "task update", "task edit":
		return len(parts) == 4
	}
	return false
}

func (m *shellModel) execWizardForCommand(parts []string) (string, tea.Cmd) {
	ctx := context.Background()
	group, sub := strings.ToLower(parts[0]), strings.ToLower(parts[1])

	switch group + " " + sub {
	case "phase add":
		vals := &phaseFormValues{Duration: "2"}
		return "", m.startWizard(wizardPhase("New phase", vals), func(m *shellModel) tea.Cmd {
			return tea.Println(m.execCobraCapture(append([]string{"phase", "add"}, vals.args(false)...)))
		})

	case "phase update", "phase edit":
		phaseID, err := resolvePhaseID(ctx, m.app, parts[2])
		if err != nil {
			return shellError(err), nil
		}
		p, err := m.app.Phases.Get(ctx, phaseID)
		if err != nil {
			return shellError(err), nil
		}
		vals := phaseValuesFrom(p)
		return "", m.startWizard(wizardPhase("Edit phase #"+phaseID, &vals), func(m *shellModel) tea.Cmd {
			return tea.Println(m.execCobraCapture(append([]string{"phase", "update", phaseID}, vals.args(true)...)))
		})

	case "task add":
		phaseID, err := resolvePhaseID(ctx, m.app, parts[2])
		if err != nil {
			return shellError(err), nil
		}
		vals := newTaskValues()
		return "", m.startWizard(wizardTask("New task in phase #"+phaseID, &vals, false), func(m *shellModel) tea.Cmd {
			return tea.Println(m.execCobraCapture(append([]string{"task", "add", phaseID}, vals.args(false)...)))
		})

	case "task update", "task edit":
		phaseID, taskID, err := resolvePhaseAndTask(ctx, m.app, parts[2], parts[3])
		if err != nil {
			return shellError(err), nil
		}
		t, err := m.app.Tasks.Get(ctx, phaseID, taskID)
		if err != nil {
			return shellError(err), nil
		}
		vals := taskValuesFrom(t)
		return "", m.startWizard(wizardTask("Edit task #"+taskID, &vals, true), func(m *shellModel) tea.Cmd {
			return tea.Println(m.execCobraCapture(append([]string{"task", "update", phaseID, taskID}, vals.args(true)...)))
		})
	}

	return m.execCobraCapture(parts), nil
}

// ── cobra pass-through ───────────────────────────────────────────────────────

// execCobraCapture runs a command through the Cobra tree and captures output.
func (m *shellModel) execCobraCapture(args []string) string {
	var buf strings.Builder
	root := NewRootCmd(m.app)
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	root.SilenceUsage = true
	root.SilenceErrors = true

	if err := root.Execute(); err != nil {
		if isDestructive(args) && errors.Is(err, domain.ErrNotFound) {
			buf.WriteString(formatter.Dim("Nothing to remove: " + err.Error()))
			return strings.TrimRight(buf.String(), "\n")
		}
		buf.WriteString(shellError(err))
		if strings.Contains(err.Error(), "unknown command") {
			buf.WriteString("\n" + formatter.Dim("Type 'help' to see available commands."))
		}
	}
	return strings.TrimRight(buf.String(), "\n")
}

// shellError renders err for the shell. Enum validation failures point at
// the options command.
func shellError(err error) string {
	out := formatter.StyleRed.Render("Error:") + " " + err.Error()
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		switch ve.Field {
		case "status", "priority", "assignee":
			out += "\n" + formatter.Dim("Run 'options' to list accepted values.")
		}
	}
	return out
}

// ── removals ─────────────────────────────────────────────────────────────────

func isDestructive(parts []string) bool {
	if len(parts) < 2 {
		return false
	}
	subs, ok := destructiveCommands[strings.ToLower(parts[0])]
	return ok && subs[strings.ToLower(parts[1])]
}

func (m *shellModel) execMaybeDestructive(parts []string) string {
	if !isDestructive(parts) {
		return m.execCobraCapture(parts)
	}
	for _, a := range parts[2:] {
		if a == "--yes" || a == "-y" {
			return m.execCobraCapture(parts)
		}
	}

	desc := strings.Join(parts, " ")
	m.mode = modeConfirm
	m.pendingConfirm = &pendingConfirmation{
		description: desc,
		args:        parts,
	}

	return fmt.Sprintf("%s %s\n%s",
		formatter.StyleYellow.Render("Confirm:"),
		desc+"?",
		formatter.Dim("Enter y to confirm, anything else to cancel."))
}

// ── suggestions ──────────────────────────────────────────────────────────────

func (m *shellModel) updateSuggestions() {
	text := m.input.Value()
	if text == "" {
		m.input.SetSuggestions(nil)
		return
	}

	parts := strings.Fields(text)
	trailingSpace := strings.HasSuffix(text, " ")
	word := len(parts)
	if trailingSpace {
		word++
	}
	prefix := ""
	if !trailingSpace && len(parts) > 0 {
		prefix = parts[len(parts)-1]
	}
	lead := strings.Join(parts[:word-1], " ")
	if lead != "" {
		lead += " "
	}

	var pool []string
	switch {
	case word == 1:
		pool = allCommandNames()
	case word == 2:
		cmd := strings.ToLower(parts[0])
		if subs, ok := subcommandNames()[cmd]; ok {
			pool = subs
		} else if cmd == "cycle" || cmd == "toggle" {
			pool = m.phaseIDs()
		}
	case word == 3 && takesPhaseArg(parts):
		pool = m.phaseIDs()
	}

	// textinput matches suggestions against the whole line.
	matches := filterSuggestions(pool, prefix)
	full := make([]string, len(matches))
	for i, s := range matches {
		full[i] = lead + s
	}
	m.input.SetSuggestions(full)
}

func takesPhaseArg(parts []string) bool {
	switch strings.ToLower(parts[0]) {
	case "phase":
		switch strings.ToLower(parts[1]) {
		case "show", "update", "edit", "remove", "rm":
			return true
		}
	case "task":
		return true
	}
	return false
}

func (m *shellModel) phaseIDs() []string {
	phases, err := m.app.Phases.List(context.Background())
	if err != nil {
		return nil
	}
	ids := make([]string, len(phases))
	for i, p := range phases {
		ids[i] = p.ID
	}
	return ids
}

// allCommandNames returns all top-level shell command names.
func allCommandNames() []string {
	return []string{
		"show", "phase", "phases", "task", "cycle",
		"title", "options",
		"clear", "help", "exit", "quit",
	}
}

// subcommandNames returns subcommand lists by parent command.
func subcommandNames() map[string][]string {
	return map[string][]string{
		"phase": {"add", "list", "show", "update", "remove"},
		"task":  {"add", "edit", "update", "remove", "cycle"},
	}
}

// filterSuggestions returns items from pool that start with prefix (case-insensitive).
func filterSuggestions(pool []string, prefix string) []string {
	if prefix == "" {
		return pool
	}
	lp := strings.ToLower(prefix)
	var result []string
	for _, s := range pool {
		if strings.HasPrefix(strings.ToLower(s), lp) {
			result = append(result, s)
		}
	}
	return result
}
