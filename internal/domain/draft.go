package domain

import (
	"strings"
	"time"
)

// DefaultTaskText is used when a task is added without text.
const DefaultTaskText = "New Task"

// PhaseDraft carries the fields needed to add a phase.
type PhaseDraft struct {
	Title    string
	Duration int // weeks
	DueDate  *time.Time
}

func (d PhaseDraft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return &ValidationError{Field: "title", Reason: "is required"}
	}
	if d.Duration <= 0 {
		return &ValidationError{Field: "duration", Reason: "must be a positive number of weeks"}
	}
	return nil
}

// Build creates the phase for id with an empty task list.
func (d PhaseDraft) Build(id string) Phase {
	return Phase{
		ID:       id,
		Title:    strings.TrimSpace(d.Title),
		Duration: d.Duration,
		DueDate:  copyTime(d.DueDate),
		Tasks:    []Task{},
	}
}

// PhasePatch is a partial phase update. Nil fields are left unchanged and
// ClearDueDate removes the due date.
type PhasePatch struct {
	Title        *string
	Duration     *int
	DueDate      *time.Time
	ClearDueDate bool
}

func (p PhasePatch) IsEmpty() bool {
	return p.Title == nil && p.Duration == nil && p.DueDate == nil && !p.ClearDueDate
}

func (p PhasePatch) Validate() error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return &ValidationError{Field: "title", Reason: "is required"}
	}
	if p.Duration != nil && *p.Duration <= 0 {
		return &ValidationError{Field: "duration", Reason: "must be a positive number of weeks"}
	}
	if p.DueDate != nil && p.ClearDueDate {
		return &ValidationError{Field: "due date", Reason: "cannot set and clear in the same update"}
	}
	return nil
}

// Apply returns a copy of ph with the patch applied. Tasks are untouched.
func (p PhasePatch) Apply(ph Phase) Phase {
	out := ph
	if p.Title != nil {
		out.Title = strings.TrimSpace(*p.Title)
	}
	out.Duration = ValueOr(p.Duration, ph.Duration)
	switch {
	case p.ClearDueDate:
		out.DueDate = nil
	case p.DueDate != nil:
		out.DueDate = copyTime(p.DueDate)
	}
	return out
}

// TaskDraft carries the fields needed to add a task. Zero values take the
// defaults: DefaultTaskText, StatusPending, PriorityMedium, unassigned.
type TaskDraft struct {
	Text     string
	Status   Status
	Priority Priority
	Assignee Assignee
	DueDate  *time.Time
}

func (d TaskDraft) Validate() error {
	if d.Status != "" && !d.Status.IsValid() {
		return &ValidationError{Field: "status", Reason: "unknown value " + string(d.Status)}
	}
	if d.Priority != "" && !d.Priority.IsValid() {
		return &ValidationError{Field: "priority", Reason: "unknown value " + string(d.Priority)}
	}
	if !d.Assignee.IsValid() {
		return &ValidationError{Field: "assignee", Reason: "unknown team member " + string(d.Assignee)}
	}
	return nil
}

// Build creates the task for id with defaults filled in.
func (d TaskDraft) Build(id string) Task {
	t := Task{
		ID:       id,
		Text:     CoalesceStr(d.Text, DefaultTaskText),
		Status:   d.Status,
		Priority: d.Priority,
		Assignee: d.Assignee,
		DueDate:  copyTime(d.DueDate),
	}
	if t.Status == "" {
		t.Status = StatusPending
	}
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	return t
}

// TaskPatch is a partial task update. Nil fields are left unchanged; a
// non-nil Assignee pointing at AssigneeNone unassigns the task and
// ClearDueDate removes the due date.
type TaskPatch struct {
	Text         *string
	Status       *Status
	Priority     *Priority
	Assignee     *Assignee
	DueDate      *time.Time
	ClearDueDate bool
}

func (p TaskPatch) IsEmpty() bool {
	return p.Text == nil && p.Status == nil && p.Priority == nil &&
		p.Assignee == nil && p.DueDate == nil && !p.ClearDueDate
}

func (p TaskPatch) Validate() error {
	if p.Text != nil && strings.TrimSpace(*p.Text) == "" {
		return &ValidationError{Field: "text", Reason: "is required"}
	}
	if p.Status != nil && !p.Status.IsValid() {
		return &ValidationError{Field: "status", Reason: "unknown value " + string(*p.Status)}
	}
	if p.Priority != nil && !p.Priority.IsValid() {
		return &ValidationError{Field: "priority", Reason: "unknown value " + string(*p.Priority)}
	}
	if p.Assignee != nil && !p.Assignee.IsValid() {
		return &ValidationError{Field: "assignee", Reason: "unknown team member " + string(*p.Assignee)}
	}
	if p.DueDate != nil && p.ClearDueDate {
		return &ValidationError{Field: "due date", Reason: "cannot set and clear in the same update"}
	}
	return nil
}

// Apply returns a copy of t with only the named fields changed.
func (p TaskPatch) Apply(t Task) Task {
	out := t.Clone()
	if p.Text != nil {
		out.Text = strings.TrimSpace(*p.Text)
	}
	out.Status = ValueOr(p.Status, t.Status)
	out.Priority = ValueOr(p.Priority, t.Priority)
	out.Assignee = ValueOr(p.Assignee, t.Assignee)
	switch {
	case p.ClearDueDate:
		out.DueDate = nil
	case p.DueDate != nil:
		out.DueDate = copyTime(p.DueDate)
	}
	return out
}
