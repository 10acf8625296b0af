package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/roadmap/internal/domain"
)

// resolvePhaseID accepts an exact phase id or an unambiguous prefix of
// one, which keeps generated UUIDs typeable.
func resolvePhaseID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("phase ID is required")
	}
	phases, err := app.Phases.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(phases))
	for i, p := range phases {
		ids[i] = p.ID
	}
	id, matches := matchID(ids, input)
	switch matches {
	case 0:
		return "", domain.PhaseNotFound(input)
	case 1:
		return id, nil
	default:
		return "", fmt.Errorf("phase ID prefix %q is ambiguous (%d matches)", input, matches)
	}
}

// resolveTaskID resolves a task id within a phase the same way.
func resolveTaskID(ctx context.Context, app *App, phaseID, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("task ID is required")
	}
	phase, err := app.Phases.Get(ctx, phaseID)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(phase.Tasks))
	for i, t := range phase.Tasks {
		ids[i] = t.ID
	}
	id, matches := matchID(ids, input)
	switch matches {
	case 0:
		return "", domain.TaskNotFound(phaseID, input)
	case 1:
		return id, nil
	default:
		return "", fmt.Errorf("task ID prefix %q is ambiguous (%d matches)", input, matches)
	}
}

// resolvePhaseAndTask resolves both positional ids of a task command.
func resolvePhaseAndTask(ctx context.Context, app *App, phaseInput, taskInput string) (string, string, error) {
	phaseID, err := resolvePhaseID(ctx, app, phaseInput)
	if err != nil {
		return "", "", err
	}
	taskID, err := resolveTaskID(ctx, app, phaseID, taskInput)
	if err != nil {
		return "", "", err
	}
	return phaseID, taskID, nil
}

// minPrefixLen keeps "2" from resolving to "20" once phase 2 is gone.
const minPrefixLen = 4

// matchID returns the id equal to input, or the single id input is a
// prefix of. The count reports how many ids matched.
func matchID(ids []string, input string) (string, int) {
	for _, id := range ids {
		if id == input {
			return id, 1
		}
	}
	if len(input) < minPrefixLen {
		return "", 0
	}
	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}
	if len(matches) == 1 {
		return matches[0], 1
	}
	return "", len(matches)
}
