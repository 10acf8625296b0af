package cli

import (
	"time"

	"github.com/alexanderramin/roadmap/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Phases  service.PhaseService
	Tasks   service.TaskService
	Roadmap service.RoadmapService

	// Now is the clock used for overdue and relative-date hints.
	Now func() time.Time

	// Interactive makes the bare root command open the shell.
	Interactive bool
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// NewRootCmd creates the top-level "roadmap" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "roadmap",
		Short: "Plan project phases and track their tasks",
		Long: `Edit a project roadmap made of phases, each owning an ordered list of
tasks. Run without arguments on a terminal to open the interactive shell.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Interactive {
				return runShell(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newPhaseCmd(app),
		newTaskCmd(app),
		newShowCmd(app),
		newTitleCmd(app),
		newOptionsCmd(),
		newShellCmd(app),
	)

	return root
}
