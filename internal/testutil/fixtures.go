package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/roadmap/internal/domain"
)

var testIDCounter atomic.Int64

func nextID(prefix string) string {
	return fmt.Sprintf("%s%d", prefix, testIDCounter.Add(1))
}

// Date parses a YYYY-MM-DD literal and panics on bad input.
func Date(s string) *time.Time {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Phase options
type PhaseOption func(*domain.Phase)

func WithPhaseID(id string) PhaseOption {
	return func(p *domain.Phase) {
		p.ID = id
	}
}

func WithDuration(weeks int) PhaseOption {
	return func(p *domain.Phase) {
		p.Duration = weeks
	}
}

func WithPhaseDueDate(s string) PhaseOption {
	return func(p *domain.Phase) {
		p.DueDate = Date(s)
	}
}

func WithTasks(tasks ...domain.Task) PhaseOption {
	return func(p *domain.Phase) {
		p.Tasks = append(p.Tasks, tasks...)
	}
}

func NewTestPhase(title string, opts ...PhaseOption) domain.Phase {
	p := domain.Phase{
		ID:       nextID("p"),
		Title:    title,
		Duration: 2,
		Tasks:    []domain.Task{},
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Task options
type TaskOption func(*domain.Task)

func WithTaskID(id string) TaskOption {
	return func(t *domain.Task) {
		t.ID = id
	}
}

func WithStatus(s domain.Status) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithPriority(p domain.Priority) TaskOption {
	return func(t *domain.Task) {
		t.Priority = p
	}
}

func WithAssignee(a domain.Assignee) TaskOption {
	return func(t *domain.Task) {
		t.Assignee = a
	}
}

func WithTaskDueDate(s string) TaskOption {
	return func(t *domain.Task) {
		t.DueDate = Date(s)
	}
}

func NewTestTask(text string, opts ...TaskOption) domain.Task {
	t := domain.Task{
		ID:       nextID("t"),
		Text:     text,
		Status:   domain.StatusPending,
		Priority: domain.PriorityMedium,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}
