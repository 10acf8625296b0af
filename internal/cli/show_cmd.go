package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/roadmap/internal/cli/formatter"
	"github.com/alexanderramin/roadmap/internal/importer"
	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the roadmap with per-phase progress",
		Long: `Show the roadmap. --format json or yaml prints the roadmap as a document
that can be used as a seed file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			switch strings.ToLower(format) {
			case "", "text":
				phases, err := app.Phases.List(ctx)
				if err != nil {
					return err
				}
				sum := app.Roadmap.Summary(ctx, app.now())
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRoadmap(sum, phases, app.now()))
				return nil
			default:
				f, err := importer.ParseFormat(format)
				if err != nil {
					return err
				}
				doc := importer.FromSnapshot(app.Roadmap.Current(ctx))
				return importer.Encode(cmd.OutOrStdout(), doc, f)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json or yaml")

	return cmd
}

func newTitleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "title NEW-TITLE",
		Short: "Rename the roadmap",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := app.Roadmap.Rename(ctx, strings.Join(args, " ")); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed roadmap to %s\n",
				formatter.Bold(app.Roadmap.Current(ctx).Title()))
			return nil
		},
	}
}

func newOptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List the accepted status, priority and assignee values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatOptions())
			return nil
		},
	}
}
