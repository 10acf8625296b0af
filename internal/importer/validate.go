package importer

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/roadmap/internal/domain"
)

// Validate checks a document before conversion and returns every problem
// found, not just the first.
func Validate(doc *Document) []error {
	var errs []error

	phaseIDs := make(map[string]bool, len(doc.Phases))
	for i, p := range doc.Phases {
		prefix := fmt.Sprintf("phases[%d]", i)

		id := strings.TrimSpace(string(p.ID))
		if id == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if phaseIDs[id] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate phase id %q", prefix, id))
		}
		phaseIDs[id] = true

		if strings.TrimSpace(p.Title) == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if p.Duration <= 0 {
			errs = append(errs, fmt.Errorf("%s.duration must be positive, got %d", prefix, p.Duration))
		}
		errs = append(errs, validateDate(prefix+".due_date", p.DueDate)...)
		errs = append(errs, validateTasks(prefix, p.Tasks)...)
	}

	return errs
}

func validateTasks(prefix string, tasks []TaskDoc) []error {
	var errs []error
	taskIDs := make(map[string]bool, len(tasks))
	for j, t := range tasks {
		tp := fmt.Sprintf("%s.tasks[%d]", prefix, j)

		id := strings.TrimSpace(string(t.ID))
		if id == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", tp))
		} else if taskIDs[id] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate task id %q", tp, id))
		}
		taskIDs[id] = true

		if t.Status != "" {
			if _, err := domain.ParseStatus(t.Status); err != nil {
				errs = append(errs, fmt.Errorf("%s.status: invalid value %q", tp, t.Status))
			}
		}
		if t.Priority != "" {
			if _, err := domain.ParsePriority(t.Priority); err != nil {
				errs = append(errs, fmt.Errorf("%s.priority: invalid value %q", tp, t.Priority))
			}
		}
		if _, err := domain.ParseAssignee(t.Assignee); err != nil {
			errs = append(errs, fmt.Errorf("%s.assignee: invalid value %q", tp, t.Assignee))
		}
		errs = append(errs, validateDate(tp+".due_date", t.DueDate)...)
	}
	return errs
}

func validateDate(field string, s *string) []error {
	if s == nil {
		return nil
	}
	if _, err := domain.ParseDate(*s); err != nil {
		return []error{fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, *s)}
	}
	return nil
}
