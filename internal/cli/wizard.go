package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/roadmap/internal/cli/formatter"
	"github.com/alexanderramin/roadmap/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// roadmapHuhTheme returns a huh theme using the formatter's Gruvbox palette.
func roadmapHuhTheme() *huh.Theme {
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
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func themedForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithTheme(roadmapHuhTheme()).WithShowHelp(false)
}

// validateRequired rejects blank input for the named field.
func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// validatePositiveInt accepts empty or a positive integer.
func validatePositiveInt(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// validateRequiredPositiveInt is validatePositiveInt without the empty case.
func validateRequiredPositiveInt(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("enter a positive number")
	}
	return validatePositiveInt(s)
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date string.
func validateOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := domain.ParseDate(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// dateInput returns a huh.Input for an optional date field.
func dateInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("2025-06-30").
		Value(value).
		Validate(validateOptionalDate)
}

// phaseFormValues backs the phase add/update wizard.
type phaseFormValues struct {
	Title    string
	Duration string
	Due      string
}

func phaseValuesFrom(p domain.Phase) phaseFormValues {
	return phaseFormValues{
		Title:    p.Title,
		Duration: strconv.Itoa(p.Duration),
		Due:      domain.FormatDate(p.DueDate),
	}
}

// args turns the wizard values into phase command flags. A blank due date
// is passed through as "none" only when clearing is allowed.
func (v phaseFormValues) args(clearBlankDue bool) []string {
	args := []string{
		"--title", strings.TrimSpace(v.Title),
		"--duration", strconv.Itoa(parsePositiveInt(v.Duration, 1)),
	}
	due := strings.TrimSpace(v.Due)
	switch {
	case due != "":
		args = append(args, "--due", due)
	case clearBlankDue:
		args = append(args, "--due", "none")
	}
	return args
}

// wizardPhase creates the title/duration/due form used by phase add and
// phase update. Values are pre-filled from vals.
func wizardPhase(heading string, vals *phaseFormValues) *huh.Form {
	return themedForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Phase title").
				Value(&vals.Title).
				Validate(validateRequired("title")),
			huh.NewInput().
				Title("Duration (weeks)").
				Placeholder("2").
				Value(&vals.Duration).
				Validate(validateRequiredPositiveInt),
			dateInput("Due Date (YYYY-MM-DD, blank for none)", &vals.Due),
		).Title(heading),
	)
}

// taskFormValues backs the task add/edit wizard. Assignee holds the
// flag spelling, "none" for unassigned.
type taskFormValues struct {
	Text     string
	Status   domain.Status
	Priority domain.Priority
	Assignee string
	Due      string
}

func newTaskValues() taskFormValues {
	return taskFormValues{
		Status:   domain.StatusPending,
		Priority: domain.PriorityMedium,
		Assignee: "none",
	}
}

func taskValuesFrom(t domain.Task) taskFormValues {
	v := taskFormValues{
		Text:     t.Text,
		Status:   t.Status,
		Priority: t.Priority,
		Assignee: string(t.Assignee),
		Due:      domain.FormatDate(t.DueDate),
	}
	if t.Assignee == domain.AssigneeNone {
		v.Assignee = "none"
	}
	return v
}

// args turns the wizard values into task command flags.
func (v taskFormValues) args(clearBlankDue bool) []string {
	args := []string{
		"--status", string(v.Status),
		"--priority", string(v.Priority),
		"--assignee", v.Assignee,
	}
	if text := strings.TrimSpace(v.Text); text != "" {
		args = append([]string{"--text", text}, args...)
	}
	due := strings.TrimSpace(v.Due)
	switch {
	case due != "":
		args = append(args, "--due", due)
	case clearBlankDue:
		args = append(args, "--due", "none")
	}
	return args
}

func statusOptions() []huh.Option[domain.Status] {
	opts := make([]huh.Option[domain.Status], 0, len(domain.Statuses))
	for _, s := range domain.Statuses {
		opts = append(opts, huh.NewOption(s.Label(), s))
	}
	return opts
}

func priorityOptions() []huh.Option[domain.Priority] {
	opts := make([]huh.Option[domain.Priority], 0, len(domain.Priorities))
	for _, p := range domain.Priorities {
		opts = append(opts, huh.NewOption(p.Label(), p))
	}
	return opts
}

func assigneeOptions() []huh.Option[string] {
	opts := []huh.Option[string]{huh.NewOption(domain.AssigneeNone.Label(), "none")}
	for _, a := range domain.TeamMembers {
		opts = append(opts, huh.NewOption(a.Label(), string(a)))
	}
	return opts
}

// wizardTask creates the task form. requireText is set when editing, where
// blank text is rejected instead of defaulted.
func wizardTask(heading string, vals *taskFormValues, requireText bool) *huh.Form {
	text := huh.NewInput().
		Title("Task").
		Placeholder(domain.DefaultTaskText).
		Value(&vals.Text)
	if requireText {
		text = text.Validate(validateRequired("task text"))
	}

	return themedForm(
		huh.NewGroup(
			text,
			huh.NewSelect[domain.Status]().
				Title("Status").
				Options(statusOptions()...).
				Value(&vals.Status),
			huh.NewSelect[domain.Priority]().
				Title("Priority").
				Options(priorityOptions()...).
				Value(&vals.Priority),
			huh.NewSelect[string]().
				Title("Assignee").
				Options(assigneeOptions()...).
				Value(&vals.Assignee),
			dateInput("Due Date (YYYY-MM-DD, blank for none)", &vals.Due),
		).Title(heading),
	)
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title string, result *bool) *huh.Form {
	return themedForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	)
}
