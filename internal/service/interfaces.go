package service

import (
	"context"
	"time"

	"github.com/alexanderramin/roadmap/internal/domain"
	"github.com/alexanderramin/roadmap/internal/roadmap"
)

type PhaseService interface {
	Add(ctx context.Context, d domain.PhaseDraft) (domain.Phase, error)
	Get(ctx context.Context, id string) (domain.Phase, error)
	List(ctx context.Context) ([]domain.Phase, error)
	Update(ctx context.Context, id string, p domain.PhasePatch) (domain.Phase, error)
	Delete(ctx context.Context, id string) error
}

type TaskService interface {
	Add(ctx context.Context, phaseID string, d domain.TaskDraft) (domain.Task, error)
	Get(ctx context.Context, phaseID, taskID string) (domain.Task, error)
	Update(ctx context.Context, phaseID, taskID string, p domain.TaskPatch) (domain.Task, error)
	Delete(ctx context.Context, phaseID, taskID string) error
	CycleStatus(ctx context.Context, phaseID, taskID string) (domain.Task, error)
}

type RoadmapService interface {
	Current(ctx context.Context) roadmap.Snapshot
	Rename(ctx context.Context, title string) error
	Summary(ctx context.Context, now time.Time) Summary
}

// PhaseProgress aggregates task counts for one phase.
type PhaseProgress struct {
	PhaseID    string
	Title      string
	Total      int
	Completed  int
	InProgress int
	Pending    int
	Overdue    int
}

// Pct returns the completed share in [0,1]; phases without tasks report 0.
func (p PhaseProgress) Pct() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Completed) / float64(p.Total)
}

// Summary is the roll-up shown above the roadmap tree.
type Summary struct {
	Title          string
	Phases         []PhaseProgress
	TotalTasks     int
	CompletedTasks int
	OverdueTasks   int
	TotalWeeks     int
}
