package roadmap

import (
	"strconv"

	"github.com/google/uuid"
)

// IDGenerator mints ids for new phases and tasks. Implementations see the
// snapshot the id will be inserted into and must return an id that is not
// already taken in the required scope.
type IDGenerator interface {
	NextPhaseID(s Snapshot) string
	NextTaskID(s Snapshot, phaseID string) string
}

// SequenceIDs mints decimal ids from two monotonic counters, one for
// phases and one for tasks. Counters only move forward, so an id freed by
// a deletion is never handed out again.
type SequenceIDs struct {
	phaseSeq int
	taskSeq  int
}

// NewSequenceIDs starts both counters past the largest numeric id found
// in seed. Non-numeric seed ids are skipped at mint time.
func NewSequenceIDs(seed Snapshot) *SequenceIDs {
	g := &SequenceIDs{}
	for _, p := range seed.phases {
		if n, err := strconv.Atoi(p.ID); err == nil && n > g.phaseSeq {
			g.phaseSeq = n
		}
		for _, t := range p.Tasks {
			if n, err := strconv.Atoi(t.ID); err == nil && n > g.taskSeq {
				g.taskSeq = n
			}
		}
	}
	return g
}

func (g *SequenceIDs) NextPhaseID(s Snapshot) string {
	for {
		g.phaseSeq++
		id := strconv.Itoa(g.phaseSeq)
		if s.phaseIndex(id) < 0 {
			return id
		}
	}
}

func (g *SequenceIDs) NextTaskID(s Snapshot, phaseID string) string {
	var taken func(string) bool
	if i := s.phaseIndex(phaseID); i >= 0 {
		ph := s.phases[i]
		taken = func(id string) bool { return ph.TaskIndex(id) >= 0 }
	} else {
		taken = func(string) bool { return false }
	}
	for {
		g.taskSeq++
		id := strconv.Itoa(g.taskSeq)
		if !taken(id) {
			return id
		}
	}
}

// UUIDIDs mints random UUIDv4 strings for both phases and tasks.
type UUIDIDs struct{}

func (UUIDIDs) NextPhaseID(Snapshot) string         { return uuid.NewString() }
func (UUIDIDs) NextTaskID(Snapshot, string) string { return uuid.NewString() }
