package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/roadmap/internal/domain"
	"github.com/alexanderramin/roadmap/internal/service"
)

// FormatRoadmap renders the whole roadmap: a summary header followed by
// each phase and its task tree.
func FormatRoadmap(sum service.Summary, phases []domain.Phase, now time.Time) string {
	var b strings.Builder
	b.WriteString(FormatSummary(sum))

	if len(phases) == 0 {
		b.WriteString("\n\n" + Dim("No phases yet. Add one with 'phase add'."))
		return RenderTitledBox(sum.Title, b.String())
	}

	progress := make(map[string]service.PhaseProgress, len(sum.Phases))
	for _, pp := range sum.Phases {
		progress[pp.PhaseID] = pp
	}
	for _, p := range phases {
		prog, ok := progress[p.ID]
		if !ok {
			prog = service.PhaseProgress{PhaseID: p.ID, Title: p.Title, Total: len(p.Tasks)}
		}
		b.WriteString("\n\n")
		b.WriteString(formatPhaseBlock(p, prog, now))
	}
	return RenderTitledBox(sum.Title, strings.TrimRight(b.String(), "\n"))
}

// FormatSummary renders the one-line roll-up with an overall progress bar.
func FormatSummary(sum service.Summary) string {
	pct := 0.0
	if sum.TotalTasks > 0 {
		pct = float64(sum.CompletedTasks) / float64(sum.TotalTasks)
	}
	parts := []string{
		plural(len(sum.Phases), "phase"),
		Weeks(sum.TotalWeeks),
		fmt.Sprintf("%d/%d tasks done", sum.CompletedTasks, sum.TotalTasks),
	}
	overdue := Dim("0 overdue")
	if sum.OverdueTasks > 0 {
		overdue = StyleRed.Render(fmt.Sprintf("%d overdue", sum.OverdueTasks))
	}
	return Dim(strings.Join(parts, " · ")+" · ") + overdue + "\n" + RenderProgress(pct, 24)
}

func formatPhaseBlock(p domain.Phase, prog service.PhaseProgress, now time.Time) string {
	var b strings.Builder

	head := StyleDim.Render("#"+TruncID(p.ID)) + " " + StyleHeader.Render(p.Title)
	meta := []string{Weeks(p.Duration)}
	if p.DueDate != nil {
		meta = append(meta, "due "+DueLabel(p.DueDate, prog.Total > 0 && prog.Completed == prog.Total, now))
	}
	b.WriteString(head + "  " + Dim(strings.Join(meta, " · ")))
	b.WriteString("  " + RenderCompactBar(prog.Pct(), 10, prog.Total == 0))
	b.WriteString(Dim(fmt.Sprintf(" %d/%d", prog.Completed, prog.Total)))
	b.WriteString("\n")

	if len(p.Tasks) == 0 {
		b.WriteString(StyleDim.Render(treeCorner) + Dim("no tasks"))
		return b.String()
	}

	items := make([]TreeItem, 0, len(p.Tasks))
	for i, t := range p.Tasks {
		items = append(items, TreeItem{
			Title:  t.Text,
			ID:     t.ID,
			Level:  1,
			IsLast: i == len(p.Tasks)-1,
			Status: t.Status,
			Detail: taskDetail(t, now),
		})
	}
	b.WriteString(strings.TrimRight(RenderTree(items), "\n"))
	return b.String()
}

func taskDetail(t domain.Task, now time.Time) string {
	parts := []string{strings.ToUpper(string(t.Priority))}
	if t.Assignee != domain.AssigneeNone {
		parts = append(parts, t.Assignee.Label())
	}
	if t.DueDate != nil {
		d := domain.FormatDate(t.DueDate)
		if t.IsOverdue(now) {
			d += " overdue"
		}
		parts = append(parts, d)
	}
	return strings.Join(parts, " · ")
}

// FormatPhaseList renders phases as a table with per-phase progress.
func FormatPhaseList(phases []domain.Phase, now time.Time) string {
	headers := []string{"ID", "PHASE", "DURATION", "DUE", "TASKS", "PROGRESS"}
	rows := make([][]string, 0, len(phases))
	for _, p := range phases {
		counts := p.CountByStatus()
		done := counts[domain.StatusCompleted]
		total := len(p.Tasks)
		pct := 0.0
		if total > 0 {
			pct = float64(done) / float64(total)
		}
		rows = append(rows, []string{
			TruncID(p.ID),
			Bold(p.Title),
			Weeks(p.Duration),
			DueLabel(p.DueDate, total > 0 && done == total, now),
			fmt.Sprintf("%d/%d", done, total),
			RenderCompactBar(pct, 10, total == 0),
		})
	}
	return RenderBox("Phases", RenderTable(headers, rows))
}

// FormatPhase renders one phase with a task table.
func FormatPhase(p domain.Phase, now time.Time) string {
	var b strings.Builder
	b.WriteString(Bold(p.Title) + "  " + Dim("#"+p.ID) + "\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("DURATION"), Weeks(p.Duration)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("DUE     "), DueLabel(p.DueDate, false, now)))

	if len(p.Tasks) == 0 {
		b.WriteString("\n" + Dim("No tasks."))
		return RenderBox("Phase", b.String())
	}

	rows := make([][]string, 0, len(p.Tasks))
	for _, t := range p.Tasks {
		rows = append(rows, []string{
			TruncID(t.ID),
			t.Text,
			StatusPill(t.Status),
			PriorityBadge(t.Priority),
			AssigneeLabel(t.Assignee),
			DueLabel(t.DueDate, t.Status == domain.StatusCompleted, now),
		})
	}
	b.WriteString("\n" + RenderTable([]string{"ID", "TASK", "STATUS", "PRIORITY", "ASSIGNEE", "DUE"}, rows))
	return RenderBox("Phase", strings.TrimRight(b.String(), "\n"))
}

// FormatTaskLine renders a one-line confirmation for a task change.
func FormatTaskLine(verb, phaseID string, t domain.Task) string {
	return fmt.Sprintf("%s task %s %s in phase %s  %s  %s",
		verb,
		Dim("#"+t.ID),
		Bold(t.Text),
		Dim("#"+phaseID),
		StatusPill(t.Status),
		PriorityBadge(t.Priority),
	)
}

// FormatPhaseLine renders a one-line confirmation for a phase change.
func FormatPhaseLine(verb string, p domain.Phase) string {
	line := fmt.Sprintf("%s phase %s %s  %s", verb, Dim("#"+p.ID), Bold(p.Title), Dim(Weeks(p.Duration)))
	if p.DueDate != nil {
		line += Dim(" · due " + domain.FormatDate(p.DueDate))
	}
	return line
}

// FormatOptions lists the value sets accepted for task fields.
func FormatOptions() string {
	var b strings.Builder

	b.WriteString(Header("Status") + "\n")
	for _, s := range domain.Statuses {
		b.WriteString(fmt.Sprintf("  %-14s %s\n", string(s), StatusPill(s)))
	}
	b.WriteString("\n" + Header("Priority") + "\n")
	for _, p := range domain.Priorities {
		b.WriteString(fmt.Sprintf("  %-14s %s\n", string(p), PriorityBadge(p)))
	}
	b.WriteString("\n" + Header("Assignee") + "\n")
	for _, a := range domain.TeamMembers {
		b.WriteString(fmt.Sprintf("  %-14s %s\n", string(a), AssigneeLabel(a)))
	}
	b.WriteString(fmt.Sprintf("  %-14s %s\n", "none", AssigneeLabel(domain.AssigneeNone)))
	b.WriteString("\n" + Dim("Status cycle: completed → pending → in-progress → completed"))

	return RenderBox("Options", b.String())
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
