package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/roadmap/internal/cli/formatter"
	"github.com/alexanderramin/roadmap/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage the tasks inside a phase",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskUpdateCmd(app),
		newTaskRemoveCmd(app),
		newTaskCycleCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var text, status, priority, assignee, due string

	cmd := &cobra.Command{
		Use:   "add PHASE",
		Short: "Append a task to a phase",
		Long: `Append a task to a phase. Status defaults to pending, priority to medium
and the task starts unassigned.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			phaseID, err := resolvePhaseID(ctx, app, args[0])
			if err != nil {
				return err
			}

			draft := domain.TaskDraft{Text: text}
			if status != "" {
				if draft.Status, err = domain.ParseStatus(status); err != nil {
					return err
				}
			}
			if priority != "" {
				if draft.Priority, err = domain.ParsePriority(priority); err != nil {
					return err
				}
			}
			if draft.Assignee, err = domain.ParseAssignee(assignee); err != nil {
				return err
			}
			if due != "" {
				if draft.DueDate, _, err = parseDueFlag(due); err != nil {
					return err
				}
			}

			t, err := app.Tasks.Add(ctx, phaseID, draft)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTaskLine("Added", phaseID, t))
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Task text (default \""+domain.DefaultTaskText+"\")")
	cmd.Flags().StringVar(&status, "status", "", "pending, in-progress or completed")
	cmd.Flags().StringVar(&priority, "priority", "", "low, medium or high")
	cmd.Flags().StringVar(&assignee, "assignee", "", "Amin, Salim, Vinc or none")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")

	return cmd
}

func newTaskUpdateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "update PHASE TASK",
		Aliases: []string{"edit"},
		Short:   "Change selected fields of a task",
		Long: `Change selected fields of a task. Only the flags given are applied.
Use --assignee none to unassign and --due none to clear the due date.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			phaseID, taskID, err := resolvePhaseAndTask(ctx, app, args[0], args[1])
			if err != nil {
				return err
			}

			patch, err := buildTaskPatch(cmd)
			if err != nil {
				return err
			}
			if patch.IsEmpty() {
				return fmt.Errorf("nothing to update: pass --text, --status, --priority, --assignee or --due")
			}

			t, err := app.Tasks.Update(ctx, phaseID, taskID, patch)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTaskLine("Updated", phaseID, t))
			return nil
		},
	}

	cmd.Flags().String("text", "", "New task text")
	cmd.Flags().String("status", "", "pending, in-progress or completed")
	cmd.Flags().String("priority", "", "low, medium or high")
	cmd.Flags().String("assignee", "", "Amin, Salim, Vinc or none")
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD, or none to clear)")

	return cmd
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "remove PHASE TASK",
		Aliases: []string{"rm", "delete"},
		Short:   "Remove a task from its phase",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			phaseID, taskID, err := resolvePhaseAndTask(ctx, app, args[0], args[1])
			if err != nil {
				return err
			}

			ok, err := confirmRemoval(app, yes, fmt.Sprintf("task %s from phase %s", taskID, phaseID))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
				return nil
			}

			if err := app.Tasks.Delete(ctx, phaseID, taskID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed task %s from phase %s\n",
				formatter.Dim("#"+taskID), formatter.Dim("#"+phaseID))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func newTaskCycleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "cycle PHASE TASK",
		Aliases: []string{"toggle"},
		Short:   "Advance a task's status: completed → pending → in-progress → completed",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			phaseID, taskID, err := resolvePhaseAndTask(ctx, app, args[0], args[1])
			if err != nil {
				return err
			}

			t, err := app.Tasks.CycleStatus(ctx, phaseID, taskID)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTaskLine("Cycled", phaseID, t))
			return nil
		},
	}
}
