package testutil

import (
	"testing"

	"github.com/alexanderramin/roadmap/internal/domain"
	"github.com/alexanderramin/roadmap/internal/roadmap"
)

// NewTestStore creates a store seeded with phases. It fails the test if
// the phases break a snapshot invariant.
func NewTestStore(t *testing.T, phases ...domain.Phase) *roadmap.Store {
	t.Helper()
	snap, err := roadmap.NewSnapshot("", phases)
	if err != nil {
		t.Fatalf("building test snapshot: %v", err)
	}
	return roadmap.NewStore(snap)
}

// NewDemoStore creates a store holding the built-in demo roadmap.
func NewDemoStore(t *testing.T) *roadmap.Store {
	t.Helper()
	return roadmap.NewStore(roadmap.DemoSnapshot())
}
