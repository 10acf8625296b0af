package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches every *ValidationError via errors.Is.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound matches every *NotFoundError via errors.Is.
	ErrNotFound = errors.New("not found")
)

// ValidationError reports a required field that is missing or malformed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError reports a phase or task id that does not resolve.
type NotFoundError struct {
	Kind    string // "phase" or "task"
	ID      string
	PhaseID string // owning phase, set for tasks
}

func (e *NotFoundError) Error() string {
	if e.Kind == "task" {
		return fmt.Sprintf("task %q not found in phase %q", e.ID, e.PhaseID)
	}
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func PhaseNotFound(id string) *NotFoundError {
	return &NotFoundError{Kind: "phase", ID: id}
}

func TaskNotFound(phaseID, taskID string) *NotFoundError {
	return &NotFoundError{Kind: "task", ID: taskID, PhaseID: phaseID}
}
