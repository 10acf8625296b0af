package roadmap

import (
	"sync"

	"github.com/alexanderramin/roadmap/internal/domain"
)

// Store owns the current snapshot of one roadmap session. Every operation
// derives the next snapshot from the current one and installs it as a
// whole; a failed operation leaves the installed snapshot untouched.
type Store struct {
	mu   sync.Mutex
	snap Snapshot
	ids  IDGenerator
}

// Option configures a Store at construction.
type Option func(*Store)

// WithIDGenerator replaces the default SequenceIDs strategy.
func WithIDGenerator(g IDGenerator) Option {
	return func(s *Store) {
		if g != nil {
			s.ids = g
		}
	}
}

// NewStore creates a store whose first snapshot is initial.
func NewStore(initial Snapshot, opts ...Option) *Store {
	s := &Store{snap: initial}
	for _, opt := range opts {
		opt(s)
	}
	if s.ids == nil {
		s.ids = NewSequenceIDs(initial)
	}
	return s
}

// Snapshot returns the currently installed snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

func (s *Store) apply(fn func(cur Snapshot) (Snapshot, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := fn(s.snap)
	if err != nil {
		return err
	}
	s.snap = next
	return nil
}

// AddPhase appends a phase with a freshly minted id and no tasks.
func (s *Store) AddPhase(d domain.PhaseDraft) (domain.Phase, error) {
	// A rejected draft must not consume an id.
	if err := d.Validate(); err != nil {
		return domain.Phase{}, err
	}
	var created domain.Phase
	err := s.apply(func(cur Snapshot) (Snapshot, error) {
		id := s.ids.NextPhaseID(cur)
		next, err := cur.WithPhase(id, d)
		if err != nil {
			return cur, err
		}
		created, _ = next.Phase(id)
		return next, nil
	})
	return created, err
}

// UpdatePhase changes the title, duration or due date of a phase.
func (s *Store) UpdatePhase(phaseID string, p domain.PhasePatch) (domain.Phase, error) {
	var updated domain.Phase
	err := s.apply(func(cur Snapshot) (Snapshot, error) {
		next, err := cur.WithPhaseUpdated(phaseID, p)
		if err != nil {
			return cur, err
		}
		updated, _ = next.Phase(phaseID)
		return next, nil
	})
	return updated, err
}

// DeletePhase removes a phase and every task it owns.
func (s *Store) DeletePhase(phaseID string) error {
	return s.apply(func(cur Snapshot) (Snapshot, error) {
		return cur.WithoutPhase(phaseID)
	})
}

// AddTask appends a task to a phase, applying pending/medium defaults.
func (s *Store) AddTask(phaseID string, d domain.TaskDraft) (domain.Task, error) {
	if err := d.Validate(); err != nil {
		return domain.Task{}, err
	}
	var created domain.Task
	err := s.apply(func(cur Snapshot) (Snapshot, error) {
		if cur.phaseIndex(phaseID) < 0 {
			return cur, domain.PhaseNotFound(phaseID)
		}
		next, t, err := cur.WithTask(phaseID, s.ids.NextTaskID(cur, phaseID), d)
		created = t
		return next, err
	})
	return created, err
}

// UpdateTask applies a partial update to a task.
func (s *Store) UpdateTask(phaseID, taskID string, p domain.TaskPatch) (domain.Task, error) {
	var updated domain.Task
	err := s.apply(func(cur Snapshot) (Snapshot, error) {
		next, err := cur.WithTaskUpdated(phaseID, taskID, p)
		if err != nil {
			return cur, err
		}
		updated, _ = next.Task(phaseID, taskID)
		return next, nil
	})
	return updated, err
}

// DeleteTask removes a task from its phase.
func (s *Store) DeleteTask(phaseID, taskID string) error {
	return s.apply(func(cur Snapshot) (Snapshot, error) {
		return cur.WithoutTask(phaseID, taskID)
	})
}

// CycleTaskStatus advances a task along completed -> pending ->
// in-progress -> completed.
func (s *Store) CycleTaskStatus(phaseID, taskID string) (domain.Task, error) {
	var updated domain.Task
	err := s.apply(func(cur Snapshot) (Snapshot, error) {
		next, _, err := cur.WithTaskStatusCycled(phaseID, taskID)
		if err != nil {
			return cur, err
		}
		updated, _ = next.Task(phaseID, taskID)
		return next, nil
	})
	return updated, err
}

// RenameRoadmap sets the roadmap title.
func (s *Store) RenameRoadmap(title string) error {
	return s.apply(func(cur Snapshot) (Snapshot, error) {
		return cur.WithTitle(title)
	})
}
