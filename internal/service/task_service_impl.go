package service

import (
	"context"

	"github.com/alexanderramin/roadmap/internal/domain"
	"github.com/alexanderramin/roadmap/internal/roadmap"
)

type taskService struct {
	store    *roadmap.Store
	observer UseCaseObserver
}

func NewTaskService(store *roadmap.Store, observers ...UseCaseObserver) TaskService {
	return &taskService{store: store, observer: useCaseObserverOrNoop(observers)}
}

func (s *taskService) Add(ctx context.Context, phaseID string, d domain.TaskDraft) (task domain.Task, err error) {
	tr := track(s.observer, "add-task", map[string]any{"phase_id": phaseID})
	defer func() {
		tr.fields["task_id"] = task.ID
		tr.done(ctx, err)
	}()
	return s.store.AddTask(phaseID, d)
}

func (s *taskService) Get(ctx context.Context, phaseID, taskID string) (domain.Task, error) {
	snap := s.store.Snapshot()
	if _, ok := snap.Phase(phaseID); !ok {
		return domain.Task{}, domain.PhaseNotFound(phaseID)
	}
	t, ok := snap.Task(phaseID, taskID)
	if !ok {
		return domain.Task{}, domain.TaskNotFound(phaseID, taskID)
	}
	return t, nil
}

func (s *taskService) Update(ctx context.Context, phaseID, taskID string, p domain.TaskPatch) (task domain.Task, err error) {
	tr := track(s.observer, "update-task", map[string]any{"phase_id": phaseID, "task_id": taskID})
	defer func() { tr.done(ctx, err) }()
	if p.IsEmpty() {
		return s.Get(ctx, phaseID, taskID)
	}
	return s.store.UpdateTask(phaseID, taskID, p)
}

func (s *taskService) Delete(ctx context.Context, phaseID, taskID string) (err error) {
	tr := track(s.observer, "delete-task", map[string]any{"phase_id": phaseID, "task_id": taskID})
	defer func() { tr.done(ctx, err) }()
	return s.store.DeleteTask(phaseID, taskID)
}

func (s *taskService) CycleStatus(ctx context.Context, phaseID, taskID string) (task domain.Task, err error) {
	tr := track(s.observer, "cycle-task-status", map[string]any{"phase_id": phaseID, "task_id": taskID})
	defer func() {
		tr.fields["status"] = string(task.Status)
		tr.done(ctx, err)
	}()
	return s.store.CycleTaskStatus(phaseID, taskID)
}
