package domain

import "time"

// Phase is a named project stage that exclusively owns an ordered list of
// tasks. Task order is display order.
type Phase struct {
	ID       string
	Title    string
	Duration int // weeks
	DueDate  *time.Time
	Tasks    []Task
}

// Clone returns a deep copy that shares no memory with p.
func (p Phase) Clone() Phase {
	c := p
	c.DueDate = copyTime(p.DueDate)
	if p.Tasks != nil {
		c.Tasks = make([]Task, len(p.Tasks))
		for i, t := range p.Tasks {
			c.Tasks[i] = t.Clone()
		}
	}
	return c
}

// TaskIndex returns the position of the task with the given id, or -1.
func (p Phase) TaskIndex(taskID string) int {
	for i, t := range p.Tasks {
		if t.ID == taskID {
			return i
		}
	}
	return -1
}

// CountByStatus returns how many tasks are in each status.
func (p Phase) CountByStatus() map[Status]int {
	counts := make(map[Status]int, len(Statuses))
	for _, t := range p.Tasks {
		counts[t.Status]++
	}
	return counts
}

// Task is a unit of work inside a phase.
type Task struct {
	ID       string
	Text     string
	Status   Status
	DueDate  *time.Time
	Assignee Assignee
	Priority Priority
}

func (t Task) Clone() Task {
	c := t
	c.DueDate = copyTime(t.DueDate)
	return c
}

// IsOverdue reports whether an unfinished task is past its due date.
func (t Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil || t.Status == StatusCompleted {
		return false
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return t.DueDate.Before(today)
}
