package testutil

import "github.com/alexanderramin/roadmap/internal/roadmap"

// CollidingIDs is an IDGenerator that always returns the same id. Once
// that id is taken every add fails, which exercises the store's
// rollback path.
type CollidingIDs struct {
	ID string
}

var _ roadmap.IDGenerator = CollidingIDs{}

func (c CollidingIDs) NextPhaseID(roadmap.Snapshot) string         { return c.ID }
func (c CollidingIDs) NextTaskID(roadmap.Snapshot, string) string { return c.ID }
