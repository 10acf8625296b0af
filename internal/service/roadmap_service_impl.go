package service

import (
	"context"
	"time"

	"github.com/alexanderramin/roadmap/internal/domain"
	"github.com/alexanderramin/roadmap/internal/roadmap"
)

type roadmapService struct {
	store    *roadmap.Store
	observer UseCaseObserver
}

func NewRoadmapService(store *roadmap.Store, observers ...UseCaseObserver) RoadmapService {
	return &roadmapService{store: store, observer: useCaseObserverOrNoop(observers)}
}

func (s *roadmapService) Current(ctx context.Context) roadmap.Snapshot {
	return s.store.Snapshot()
}

func (s *roadmapService) Rename(ctx context.Context, title string) (err error) {
	tr := track(s.observer, "rename-roadmap", map[string]any{"title": title})
	defer func() { tr.done(ctx, err) }()
	return s.store.RenameRoadmap(title)
}

func (s *roadmapService) Summary(ctx context.Context, now time.Time) Summary {
	return summarize(s.store.Snapshot(), now)
}

// summarize computes per-phase progress for a snapshot.
func summarize(snap roadmap.Snapshot, now time.Time) Summary {
	sum := Summary{Title: snap.Title()}
	for _, p := range snap.Phases() {
		prog := PhaseProgress{PhaseID: p.ID, Title: p.Title, Total: len(p.Tasks)}
		for _, t := range p.Tasks {
			switch t.Status {
			case domain.StatusCompleted:
				prog.Completed++
			case domain.StatusInProgress:
				prog.InProgress++
			case domain.StatusPending:
				prog.Pending++
			}
			if t.IsOverdue(now) {
				prog.Overdue++
			}
		}
		sum.Phases = append(sum.Phases, prog)
		sum.TotalTasks += prog.Total
		sum.CompletedTasks += prog.Completed
		sum.OverdueTasks += prog.Overdue
		sum.TotalWeeks += p.Duration
	}
	return sum
}
