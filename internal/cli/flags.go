package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/roadmap/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// isClearValue reports whether a flag value asks to clear an optional field.
func isClearValue(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "-":
		return true
	}
	return false
}

// parseDueFlag reads a --due value. Blank and "none" return clearDue=true.
func parseDueFlag(s string) (due *time.Time, clearDue bool, err error) {
	if isClearValue(s) {
		return nil, true, nil
	}
	due, err = domain.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return nil, false, fmt.Errorf("invalid due date %q: %w", s, err)
	}
	return due, false, nil
}

// buildTaskPatch collects only the flags the user set, so an update never
// resets a field that was not mentioned.
func buildTaskPatch(cmd *cobra.Command) (domain.TaskPatch, error) {
	var patch domain.TaskPatch
	var firstErr error
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if firstErr != nil {
			return
		}
		val := f.Value.String()
		switch f.Name {
		case "text":
			patch.Text = &val
		case "status":
			s, err := domain.ParseStatus(val)
			if err != nil {
				firstErr = err
				return
			}
			patch.Status = &s
		case "priority":
			p, err := domain.ParsePriority(val)
			if err != nil {
				firstErr = err
				return
			}
			patch.Priority = &p
		case "assignee":
			a, err := domain.ParseAssignee(val)
			if err != nil {
				firstErr = err
				return
			}
			patch.Assignee = &a
		case "due":
			due, clearDue, err := parseDueFlag(val)
			if err != nil {
				firstErr = err
				return
			}
			patch.DueDate, patch.ClearDueDate = due, clearDue
		}
	})
	return patch, firstErr
}

// buildPhasePatch mirrors buildTaskPatch for phase flags.
func buildPhasePatch(cmd *cobra.Command) (domain.PhasePatch, error) {
	var patch domain.PhasePatch
	if cmd.Flags().Changed("title") {
		v, _ := cmd.Flags().GetString("title")
		patch.Title = &v
	}
	if cmd.Flags().Changed("duration") {
		v, _ := cmd.Flags().GetInt("duration")
		patch.Duration = &v
	}
	if cmd.Flags().Changed("due") {
		v, _ := cmd.Flags().GetString("due")
		due, clearDue, err := parseDueFlag(v)
		if err != nil {
			return patch, err
		}
		patch.DueDate, patch.ClearDueDate = due, clearDue
	}
	return patch, nil
}

// confirmRemoval asks before a destructive command runs. Outside a
// terminal the caller must pass --yes.
func confirmRemoval(app *App, yes bool, what string) (bool, error) {
	if yes {
		return true, nil
	}
	if !app.Interactive {
		return false, fmt.Errorf("refusing to remove %s without --yes", what)
	}
	var ok bool
	if err := wizardConfirm(fmt.Sprintf("Remove %s?", what), &ok).Run(); err != nil {
		if err == huh.ErrUserAborted {
			return false, nil
		}
		return false, err
	}
	return ok, nil
}

// parsePositiveInt parses s as a positive integer, returning fallback if s
// is empty or not positive.
func parsePositiveInt(s string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
