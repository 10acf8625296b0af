package roadmap

import (
	"time"

	"github.com/alexanderramin/roadmap/internal/domain"
)

// DemoSnapshot returns the starter roadmap shown when no seed document is
// configured: one "Foundation" phase holding a completed setup task.
func DemoSnapshot() Snapshot {
	phaseDue := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	taskDue := time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC)

	return Snapshot{
		title: DefaultTitle,
		phases: []domain.Phase{
			{
				ID:       "1",
				Title:    "Foundation",
				Duration: 4,
				DueDate:  &phaseDue,
				Tasks: []domain.Task{
					{
						ID:       "1",
						Text:     "Project setup",
						Status:   domain.StatusCompleted,
						DueDate:  &taskDue,
						Assignee: domain.AssigneeAmin,
						Priority: domain.PriorityHigh,
					},
				},
			},
		},
	}
}
