package importer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/roadmap/internal/domain"
	"github.com/alexanderramin/roadmap/internal/roadmap"
)

// ToSnapshot converts a document into the store's first snapshot. It
// validates first and joins every problem into one error.
func ToSnapshot(doc *Document) (roadmap.Snapshot, error) {
	if errs := Validate(doc); len(errs) > 0 {
		return roadmap.Snapshot{}, fmt.Errorf("invalid roadmap document: %w", errors.Join(errs...))
	}

	phases := make([]domain.Phase, 0, len(doc.Phases))
	for _, pd := range doc.Phases {
		due, err := parseOptionalDate(pd.DueDate)
		if err != nil {
			return roadmap.Snapshot{}, err
		}
		phase := domain.Phase{
			ID:       strings.TrimSpace(string(pd.ID)),
			Title:    strings.TrimSpace(pd.Title),
			Duration: pd.Duration,
			DueDate:  due,
			Tasks:    make([]domain.Task, 0, len(pd.Tasks)),
		}
		for _, td := range pd.Tasks {
			task, err := convertTask(td)
			if err != nil {
				return roadmap.Snapshot{}, err
			}
			phase.Tasks = append(phase.Tasks, task)
		}
		phases = append(phases, phase)
	}
	return roadmap.NewSnapshot(doc.Title, phases)
}

func convertTask(td TaskDoc) (domain.Task, error) {
	status := domain.StatusPending
	if td.Status != "" {
		s, err := domain.ParseStatus(td.Status)
		if err != nil {
			return domain.Task{}, err
		}
		status = s
	}
	priority := domain.PriorityMedium
	if td.Priority != "" {
		p, err := domain.ParsePriority(td.Priority)
		if err != nil {
			return domain.Task{}, err
		}
		priority = p
	}
	assignee, err := domain.ParseAssignee(td.Assignee)
	if err != nil {
		return domain.Task{}, err
	}
	due, err := parseOptionalDate(td.DueDate)
	if err != nil {
		return domain.Task{}, err
	}
	return domain.Task{
		ID:       strings.TrimSpace(string(td.ID)),
		Text:     domain.CoalesceStr(td.Text, domain.DefaultTaskText),
		Status:   status,
		Priority: priority,
		Assignee: assignee,
		DueDate:  due,
	}, nil
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	return domain.ParseDate(*s)
}

// FromSnapshot builds a document from a snapshot for output.
func FromSnapshot(snap roadmap.Snapshot) *Document {
	doc := &Document{Title: snap.Title(), Phases: []PhaseDoc{}}
	for _, p := range snap.Phases() {
		pd := PhaseDoc{
			ID:       ID(p.ID),
			Title:    p.Title,
			Duration: p.Duration,
			DueDate:  formatOptionalDate(p.DueDate),
			Tasks:    make([]TaskDoc, 0, len(p.Tasks)),
		}
		for _, t := range p.Tasks {
			td := TaskDoc{
				ID:       ID(t.ID),
				Text:     t.Text,
				Status:   string(t.Status),
				Priority: string(t.Priority),
				Assignee: string(t.Assignee),
				DueDate:  formatOptionalDate(t.DueDate),
			}
			pd.Tasks = append(pd.Tasks, td)
		}
		doc.Phases = append(doc.Phases, pd)
	}
	return doc
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := domain.FormatDate(t)
	return &s
}
