package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/roadmap/internal/cli/formatter"
	"github.com/alexanderramin/roadmap/internal/domain"
	"github.com/spf13/cobra"
)

func newPhaseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phase",
		Short: "Manage roadmap phases",
	}

	cmd.AddCommand(
		newPhaseAddCmd(app),
		newPhaseListCmd(app),
		newPhaseShowCmd(app),
		newPhaseUpdateCmd(app),
		newPhaseRemoveCmd(app),
	)

	return cmd
}

func newPhaseAddCmd(app *App) *cobra.Command {
	var title, due string
	var duration int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a new phase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			draft := domain.PhaseDraft{Title: title, Duration: duration}
			if due != "" {
				d, _, err := parseDueFlag(due)
				if err != nil {
					return err
				}
				draft.DueDate = d
			}

			p, err := app.Phases.Add(context.Background(), draft)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPhaseLine("Added", p))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Phase title")
	cmd.Flags().IntVar(&duration, "duration", 0, "Duration in weeks")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")

	return cmd
}

func newPhaseListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List phases with task progress",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			phases, err := app.Phases.List(context.Background())
			if err != nil {
				return err
			}
			if len(phases) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No phases yet.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPhaseList(phases, app.now()))
			return nil
		},
	}
}

func newPhaseShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "show ID",
		Aliases: []string{"inspect"},
		Short:   "Show a phase and its tasks",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			phaseID, err := resolvePhaseID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Phases.Get(ctx, phaseID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPhase(p, app.now()))
			return nil
		},
	}
}

func newPhaseUpdateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change a phase's title, duration or due date",
		Long: `Change a phase's title, duration or due date. Only the flags given are
applied; the phase's tasks are never touched. Use --due none to clear the
due date.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			phaseID, err := resolvePhaseID(ctx, app, args[0])
			if err != nil {
				return err
			}

			patch, err := buildPhasePatch(cmd)
			if err != nil {
				return err
			}
			if patch.IsEmpty() {
				return fmt.Errorf("nothing to update: pass --title, --duration or --due")
			}

			p, err := app.Phases.Update(ctx, phaseID, patch)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPhaseLine("Updated", p))
			return nil
		},
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().Int("duration", 0, "New duration in weeks")
	cmd.Flags().String("due", "", "New due date (YYYY-MM-DD, or none to clear)")

	return cmd
}

func newPhaseRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm", "delete"},
		Short:   "Remove a phase and all of its tasks",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			phaseID, err := resolvePhaseID(ctx, app, args[0])
			if err != nil {
				return err
			}

			ok, err := confirmRemoval(app, yes, "phase "+phaseID+" and its tasks")
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
				return nil
			}

			if err := app.Phases.Delete(ctx, phaseID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed phase %s\n", formatter.Dim("#"+phaseID))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
