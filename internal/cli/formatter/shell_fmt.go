package formatter

import (
	"fmt"
	"strings"
)

// FormatShellWelcome renders the banner shown on shell startup.
func FormatShellWelcome(title string) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(StylePurple.Render("  roadmap") + StyleDim.Render(" · "+title) + "\n")
	b.WriteString(StyleDim.Render("  ─────────────────────────────") + "\n")
	b.WriteString("\n")
	b.WriteString("  " + StyleGreen.Render("show") + StyleDim.Render("             Show the whole roadmap") + "\n")
	b.WriteString("  " + StyleGreen.Render("phase add") + StyleDim.Render("        Add a phase (wizard)") + "\n")
	b.WriteString("  " + StyleGreen.Render("task add <phase>") + StyleDim.Render(" Add a task to a phase") + "\n")
	b.WriteString("  " + StyleGreen.Render("cycle <p> <t>") + StyleDim.Render("    Toggle a task's status") + "\n")
	b.WriteString("  " + StyleGreen.Render("help") + StyleDim.Render("             Show all commands") + "\n")
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("  Tab for autocomplete, ↑/↓ for history. Changes last for this session only.") + "\n")

	return b.String()
}

// helpCategory groups commands under a section header for the help display.
type helpCategory struct {
	title    string
	commands [][]string
}

func renderHelpCategory(cat helpCategory) string {
	var b strings.Builder
	b.WriteString("\n " + StyleHeader.Render(strings.ToUpper(cat.title)) + "\n")
	for _, c := range cat.commands {
		b.WriteString(fmt.Sprintf("  %-34s %s\n",
			StyleGreen.Render(c[0]),
			StyleDim.Render(c[1])))
	}
	return b.String()
}

// FormatShellHelp renders the categorized command reference.
func FormatShellHelp() string {
	categories := []helpCategory{
		{
			title: "Viewing",
			commands: [][]string{
				{"show", "Roadmap tree with progress"},
				{"phase list", "Phases as a table"},
				{"phase show <id>", "One phase with its tasks"},
				{"options", "Accepted status, priority and assignee values"},
			},
		},
		{
			title: "Phases",
			commands: [][]string{
				{"phase add", "Add a phase (wizard if flags omitted)"},
				{"phase update <id>", "Edit title, duration or due date"},
				{"phase remove <id>", "Remove a phase and all its tasks"},
			},
		},
		{
			title: "Tasks",
			commands: [][]string{
				{"task add <phase>", "Add a task (wizard if flags omitted)"},
				{"task edit <phase> <task>", "Edit a task in a form"},
				{"task update <phase> <task>", "Edit a task with flags"},
				{"task remove <phase> <task>", "Remove a task"},
				{"cycle <phase> <task>", "completed → pending → in-progress"},
			},
		},
		{
			title: "Utilities",
			commands: [][]string{
				{"title <text>", "Rename the roadmap"},
				{"help", "Show this command reference"},
				{"clear", "Clear the screen"},
				{"exit / quit", "Leave the shell"},
			},
		},
	}

	var b strings.Builder
	for _, cat := range categories {
		b.WriteString(renderHelpCategory(cat))
	}
	b.WriteString("\n" + StyleDim.Render("Removals ask for confirmation unless --yes is given."))

	return RenderBox("Commands", b.String())
}
