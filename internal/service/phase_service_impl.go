package service

import (
	"context"

	"github.com/alexanderramin/roadmap/internal/domain"
	"github.com/alexanderramin/roadmap/internal/roadmap"
)

type phaseService struct {
	store    *roadmap.Store
	observer UseCaseObserver
}

func NewPhaseService(store *roadmap.Store, observers ...UseCaseObserver) PhaseService {
	return &phaseService{store: store, observer: useCaseObserverOrNoop(observers)}
}

func (s *phaseService) Add(ctx context.Context, d domain.PhaseDraft) (phase domain.Phase, err error) {
	tr := track(s.observer, "add-phase", map[string]any{"title": d.Title, "duration": d.Duration})
	defer func() {
		tr.fields["phase_id"] = phase.ID
		tr.done(ctx, err)
	}()
	return s.store.AddPhase(d)
}

func (s *phaseService) Get(ctx context.Context, id string) (domain.Phase, error) {
	p, ok := s.store.Snapshot().Phase(id)
	if !ok {
		return domain.Phase{}, domain.PhaseNotFound(id)
	}
	return p, nil
}

func (s *phaseService) List(ctx context.Context) ([]domain.Phase, error) {
	return s.store.Snapshot().Phases(), nil
}

func (s *phaseService) Update(ctx context.Context, id string, p domain.PhasePatch) (phase domain.Phase, err error) {
	tr := track(s.observer, "update-phase", map[string]any{"phase_id": id})
	defer func() { tr.done(ctx, err) }()
	if p.IsEmpty() {
		return s.Get(ctx, id)
	}
	return s.store.UpdatePhase(id, p)
}

func (s *phaseService) Delete(ctx context.Context, id string) (err error) {
	tr := track(s.observer, "delete-phase", map[string]any{"phase_id": id})
	defer func() { tr.done(ctx, err) }()
	return s.store.DeletePhase(id)
}
