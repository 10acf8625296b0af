package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/roadmap/internal/config"
	"github.com/alexanderramin/roadmap/internal/domain"
	"github.com/alexanderramin/roadmap/internal/roadmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialSnapshot_Default(t *testing.T) {
	snap, err := initialSnapshot(config.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, roadmap.DemoSnapshot(), snap)
}

func TestInitialSnapshot_Empty(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.StartEmpty = true

	snap, err := initialSnapshot(cfg)
	require.NoError(t, err)
	assert.Equal(t, 0, snap.Len())
}

func TestInitialSnapshot_Seed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`title: Launch
phases:
  - id: "5"
    title: Alpha
    duration: 3
    tasks:
      - id: "9"
        text: Kickoff
`), 0o644))

	cfg := config.DefaultConfig()
	cfg.SeedPath = path
	cfg.StartEmpty = true // seed wins

	snap, err := initialSnapshot(cfg)
	require.NoError(t, err)
	assert.Equal(t, "Launch", snap.Title())

	store := roadmap.NewStore(snap, roadmap.WithIDGenerator(idGenerator(cfg, snap)))
	p, err := store.AddPhase(domain.PhaseDraft{Title: "Beta", Duration: 1})
	require.NoError(t, err)
	assert.Equal(t, "6", p.ID)
}

func TestInitialSnapshot_BadSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"phases":[{"id":"1","title":"","duration":0}]}`), 0o644))

	cfg := config.DefaultConfig()
	cfg.SeedPath = path

	_, err := initialSnapshot(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title is required")
	assert.Contains(t, err.Error(), "duration must be positive")
}

func TestIDGenerator_UUID(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.IDStrategy = config.IDUUID
	_, ok := idGenerator(cfg, roadmap.Empty()).(roadmap.UUIDIDs)
	assert.True(t, ok)
}
