// Package roadmap holds the phase/task state: an immutable Snapshot value
// with pure transition functions, and a Store that owns the current
// snapshot for the lifetime of a session.
package roadmap

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/roadmap/internal/domain"
)

// DefaultTitle is the roadmap title used when none is given.
const DefaultTitle = "Project Roadmap"

// Snapshot is the complete state of a roadmap at one point in time.
// Snapshots are never modified: every transition returns a new value and
// accessors hand out deep copies, so older snapshots stay inspectable.
type Snapshot struct {
	title  string
	phases []domain.Phase
}

// Empty returns a snapshot with the default title and no phases.
func Empty() Snapshot {
	return Snapshot{title: DefaultTitle}
}

// NewSnapshot builds a snapshot from existing phases, checking every
// structural invariant. The input slice is copied.
func NewSnapshot(title string, phases []domain.Phase) (Snapshot, error) {
	title = domain.CoalesceStr(title, DefaultTitle)

	seenPhases := make(map[string]bool, len(phases))
	out := make([]domain.Phase, 0, len(phases))
	for i, p := range phases {
		if p.ID == "" {
			return Snapshot{}, &domain.ValidationError{Field: fmt.Sprintf("phases[%d].id", i), Reason: "is required"}
		}
		if seenPhases[p.ID] {
			return Snapshot{}, &domain.ValidationError{Field: fmt.Sprintf("phases[%d].id", i), Reason: fmt.Sprintf("duplicate phase id %q", p.ID)}
		}
		seenPhases[p.ID] = true

		if err := (domain.PhaseDraft{Title: p.Title, Duration: p.Duration}).Validate(); err != nil {
			return Snapshot{}, fmt.Errorf("phase %q: %w", p.ID, err)
		}

		seenTasks := make(map[string]bool, len(p.Tasks))
		for j, t := range p.Tasks {
			if t.ID == "" {
				return Snapshot{}, &domain.ValidationError{Field: fmt.Sprintf("phases[%d].tasks[%d].id", i, j), Reason: "is required"}
			}
			if seenTasks[t.ID] {
				return Snapshot{}, &domain.ValidationError{Field: fmt.Sprintf("phases[%d].tasks[%d].id", i, j), Reason: fmt.Sprintf("duplicate task id %q", t.ID)}
			}
			seenTasks[t.ID] = true
			if !t.Status.IsValid() || !t.Priority.IsValid() || !t.Assignee.IsValid() {
				return Snapshot{}, &domain.ValidationError{Field: fmt.Sprintf("phases[%d].tasks[%d]", i, j), Reason: "status, priority or assignee out of range"}
			}
		}
		c := p.Clone()
		c.Title = strings.TrimSpace(c.Title)
		if c.Tasks == nil {
			c.Tasks = []domain.Task{}
		}
		out = append(out, c)
	}
	return Snapshot{title: title, phases: out}, nil
}

func (s Snapshot) Title() string {
	if s.title == "" {
		return DefaultTitle
	}
	return s.title
}

// Phases returns a deep copy of the ordered phase list.
func (s Snapshot) Phases() []domain.Phase {
	out := make([]domain.Phase, len(s.phases))
	for i, p := range s.phases {
		out[i] = p.Clone()
	}
	return out
}

func (s Snapshot) Len() int { return len(s.phases) }

// Phase returns a copy of the phase with the given id.
func (s Snapshot) Phase(id string) (domain.Phase, bool) {
	i := s.phaseIndex(id)
	if i < 0 {
		return domain.Phase{}, false
	}
	return s.phases[i].Clone(), true
}

// Task returns a copy of the task resolved by (phaseID, taskID).
func (s Snapshot) Task(phaseID, taskID string) (domain.Task, bool) {
	i := s.phaseIndex(phaseID)
	if i < 0 {
		return domain.Task{}, false
	}
	j := s.phases[i].TaskIndex(taskID)
	if j < 0 {
		return domain.Task{}, false
	}
	return s.phases[i].Tasks[j].Clone(), true
}

// PhaseIDs returns phase ids in display order.
func (s Snapshot) PhaseIDs() []string {
	ids := make([]string, len(s.phases))
	for i, p := range s.phases {
		ids[i] = p.ID
	}
	return ids
}

func (s Snapshot) phaseIndex(id string) int {
	for i, p := range s.phases {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// ── transitions ──────────────────────────────────────────────────────────────

// WithTitle renames the roadmap.
func (s Snapshot) WithTitle(title string) (Snapshot, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return s, &domain.ValidationError{Field: "roadmap title", Reason: "is required"}
	}
	return Snapshot{title: title, phases: s.phases}, nil
}

// WithPhase appends a new phase built from d under id.
func (s Snapshot) WithPhase(id string, d domain.PhaseDraft) (Snapshot, error) {
	if id == "" {
		return s, &domain.ValidationError{Field: "phase id", Reason: "is required"}
	}
	if s.phaseIndex(id) >= 0 {
		return s, &domain.ValidationError{Field: "phase id", Reason: fmt.Sprintf("%q already exists", id)}
	}
	if err := d.Validate(); err != nil {
		return s, err
	}
	phases := make([]domain.Phase, len(s.phases), len(s.phases)+1)
	copy(phases, s.phases)
	phases = append(phases, d.Build(id))
	return Snapshot{title: s.title, phases: phases}, nil
}

// WithPhaseUpdated applies a partial update to one phase.
func (s Snapshot) WithPhaseUpdated(id string, p domain.PhasePatch) (Snapshot, error) {
	if err := p.Validate(); err != nil {
		return s, err
	}
	return s.replacePhase(id, func(ph domain.Phase) (domain.Phase, error) {
		return p.Apply(ph), nil
	})
}

// WithoutPhase removes a phase together with all of its tasks.
func (s Snapshot) WithoutPhase(id string) (Snapshot, error) {
	i := s.phaseIndex(id)
	if i < 0 {
		return s, domain.PhaseNotFound(id)
	}
	phases := make([]domain.Phase, 0, len(s.phases)-1)
	phases = append(phases, s.phases[:i]...)
	phases = append(phases, s.phases[i+1:]...)
	return Snapshot{title: s.title, phases: phases}, nil
}

// WithTask appends a task built from d to the end of a phase's task list.
func (s Snapshot) WithTask(phaseID, taskID string, d domain.TaskDraft) (Snapshot, domain.Task, error) {
	if err := d.Validate(); err != nil {
		return s, domain.Task{}, err
	}
	var created domain.Task
	next, err := s.replacePhase(phaseID, func(ph domain.Phase) (domain.Phase, error) {
		if taskID == "" {
			return ph, &domain.ValidationError{Field: "task id", Reason: "is required"}
		}
		if ph.TaskIndex(taskID) >= 0 {
			return ph, &domain.ValidationError{Field: "task id", Reason: fmt.Sprintf("%q already exists in phase %q", taskID, phaseID)}
		}
		created = d.Build(taskID)
		tasks := make([]domain.Task, len(ph.Tasks), len(ph.Tasks)+1)
		copy(tasks, ph.Tasks)
		ph.Tasks = append(tasks, created)
		return ph, nil
	})
	if err != nil {
		return s, domain.Task{}, err
	}
	return next, created.Clone(), nil
}

// WithTaskUpdated applies a partial update to one task.
func (s Snapshot) WithTaskUpdated(phaseID, taskID string, p domain.TaskPatch) (Snapshot, error) {
	if err := p.Validate(); err != nil {
		return s, err
	}
	return s.replaceTask(phaseID, taskID, func(t domain.Task) domain.Task {
		return p.Apply(t)
	})
}

// WithoutTask removes one task from its phase.
func (s Snapshot) WithoutTask(phaseID, taskID string) (Snapshot, error) {
	return s.replacePhase(phaseID, func(ph domain.Phase) (domain.Phase, error) {
		j := ph.TaskIndex(taskID)
		if j < 0 {
			return ph, domain.TaskNotFound(phaseID, taskID)
		}
		tasks := make([]domain.Task, 0, len(ph.Tasks)-1)
		tasks = append(tasks, ph.Tasks[:j]...)
		ph.Tasks = append(tasks, ph.Tasks[j+1:]...)
		return ph, nil
	})
}

// WithTaskStatusCycled advances a task one step along the status cycle
// and returns the resulting status.
func (s Snapshot) WithTaskStatusCycled(phaseID, taskID string) (Snapshot, domain.Status, error) {
	var status domain.Status
	next, err := s.replaceTask(phaseID, taskID, func(t domain.Task) domain.Task {
		t.Status = t.Status.Next()
		status = t.Status
		return t
	})
	return next, status, err
}

func (s Snapshot) replacePhase(id string, fn func(domain.Phase) (domain.Phase, error)) (Snapshot, error) {
	i := s.phaseIndex(id)
	if i < 0 {
		return s, domain.PhaseNotFound(id)
	}
	updated, err := fn(s.phases[i])
	if err != nil {
		return s, err
	}
	phases := make([]domain.Phase, len(s.phases))
	copy(phases, s.phases)
	phases[i] = updated
	return Snapshot{title: s.title, phases: phases}, nil
}

func (s Snapshot) replaceTask(phaseID, taskID string, fn func(domain.Task) domain.Task) (Snapshot, error) {
	return s.replacePhase(phaseID, func(ph domain.Phase) (domain.Phase, error) {
		j := ph.TaskIndex(taskID)
		if j < 0 {
			return ph, domain.TaskNotFound(phaseID, taskID)
		}
		tasks := make([]domain.Task, len(ph.Tasks))
		copy(tasks, ph.Tasks)
		tasks[j] = fn(tasks[j])
		ph.Tasks = tasks
		return ph, nil
	})
}
