package domain

import (
	"fmt"
	"strings"
)

// Status is the progress state of a task. Values outside the declared
// constants are rejected by ParseStatus and never stored.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Statuses lists every status in the order forms offer them.
var Statuses = []Status{StatusPending, StatusInProgress, StatusCompleted}

// ParseStatus converts user input into a Status. Matching is
// case-insensitive and accepts "_" or a space in place of "-".
func ParseStatus(s string) (Status, error) {
	norm := normalizeEnum(s)
	switch Status(norm) {
	case StatusPending, StatusInProgress, StatusCompleted:
		return Status(norm), nil
	}
	if norm == "inprogress" {
		return StatusInProgress, nil
	}
	return "", &ValidationError{
		Field:  "status",
		Reason: fmt.Sprintf("%q is not one of %s", s, joinEnum(Statuses)),
	}
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Next advances along the quick-toggle cycle:
// completed -> pending -> in-progress -> completed.
func (s Status) Next() Status {
	switch s {
	case StatusCompleted:
		return StatusPending
	case StatusPending:
		return StatusInProgress
	case StatusInProgress:
		return StatusCompleted
	default:
		return StatusPending
	}
}

// Label returns the human-facing name used in forms.
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists every priority from lowest to highest.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// ParsePriority converts user input into a Priority (case-insensitive).
func ParsePriority(s string) (Priority, error) {
	norm := Priority(normalizeEnum(s))
	switch norm {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return norm, nil
	}
	return "", &ValidationError{
		Field:  "priority",
		Reason: fmt.Sprintf("%q is not one of %s", s, joinEnum(Priorities)),
	}
}

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

func (p Priority) Label() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	default:
		return string(p)
	}
}

// Assignee is a member of the fixed team roster. The zero value means
// the task is unassigned.
type Assignee string

const (
	AssigneeNone  Assignee = ""
	AssigneeAmin  Assignee = "Amin"
	AssigneeSalim Assignee = "Salim"
	AssigneeVinc  Assignee = "Vinc"
)

// TeamMembers is the roster offered by assignee pickers, without the
// unassigned option.
var TeamMembers = []Assignee{AssigneeAmin, AssigneeSalim, AssigneeVinc}

// ParseAssignee converts user input into an Assignee. Blank input, "none"
// and "unassigned" all map to AssigneeNone.
func ParseAssignee(s string) (Assignee, error) {
	trimmed := strings.TrimSpace(s)
	switch strings.ToLower(trimmed) {
	case "", "none", "unassigned":
		return AssigneeNone, nil
	}
	for _, m := range TeamMembers {
		if strings.EqualFold(string(m), trimmed) {
			return m, nil
		}
	}
	return "", &ValidationError{
		Field:  "assignee",
		Reason: fmt.Sprintf("%q is not one of %s or unassigned", s, joinEnum(TeamMembers)),
	}
}

func (a Assignee) IsValid() bool {
	switch a {
	case AssigneeNone, AssigneeAmin, AssigneeSalim, AssigneeVinc:
		return true
	}
	return false
}

func (a Assignee) Label() string {
	if a == AssigneeNone {
		return "Unassigned"
	}
	return string(a)
}

func normalizeEnum(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", "-")
	return strings.ReplaceAll(s, " ", "-")
}

func joinEnum[T ~string](vals []T) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
