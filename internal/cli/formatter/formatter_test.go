package formatter

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/roadmap/internal/domain"
	"github.com/alexanderramin/roadmap/internal/service"
	"github.com/stretchr/testify/assert"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func day(s string) *time.Time {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestRelativeDateFrom(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"today", now, "Today"},
		{"today at midnight", time.Date(2026, 2, 7, 0, 0, 0, 0, time.UTC), "Today"},
		{"tomorrow", now.Add(24 * time.Hour), "Tomorrow"},
		{"yesterday", now.Add(-24 * time.Hour), "Yesterday"},
		{"3 days future", now.Add(3 * 24 * time.Hour), "In 3d"},
		{"3 days past", now.Add(-3 * 24 * time.Hour), "3d ago"},
		{"3 weeks future", now.Add(21 * 24 * time.Hour), "In 3w"},
		{"3 months future", now.Add(90 * 24 * time.Hour), "In 3mo"},
		{"2 weeks past", now.Add(-14 * 24 * time.Hour), "2w ago"},
		{"3 months past", now.Add(-90 * 24 * time.Hour), "3mo ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeDateFrom(tt.input, now))
		})
	}
}

func TestDueLabel(t *testing.T) {
	now := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, "--", stripANSI(DueLabel(nil, false, now)))
	assert.Equal(t, "2025-01-13 (In 3d)", stripANSI(DueLabel(day("2025-01-13"), false, now)))
	assert.Equal(t, "2025-01-01", stripANSI(DueLabel(day("2025-01-01"), true, now)), "finished work drops the relative hint")
}

func TestStatusPill(t *testing.T) {
	assert.Equal(t, "✔ Completed", stripANSI(StatusPill(domain.StatusCompleted)))
	assert.Equal(t, "● In Progress", stripANSI(StatusPill(domain.StatusInProgress)))
	assert.Equal(t, "○ Pending", stripANSI(StatusPill(domain.StatusPending)))
}

func TestPriorityAndAssigneeLabels(t *testing.T) {
	assert.Equal(t, "HIGH", stripANSI(PriorityBadge(domain.PriorityHigh)))
	assert.Equal(t, StyleRed, PriorityColor(domain.PriorityHigh))
	assert.Equal(t, StyleYellow, PriorityColor(domain.PriorityMedium))
	assert.Equal(t, StyleGreen, PriorityColor(domain.PriorityLow))
	assert.Equal(t, "unassigned", stripANSI(AssigneeLabel(domain.AssigneeNone)))
	assert.Equal(t, "Salim", stripANSI(AssigneeLabel(domain.AssigneeSalim)))
}

func TestTruncID(t *testing.T) {
	assert.Equal(t, "12", TruncID("12"))
	assert.Equal(t, "3f2a9c1e", TruncID("3f2a9c1e-0000-4000-8000-000000000000"))
}

func TestRenderProgress(t *testing.T) {
	assert.Equal(t, "[████░░░░]  50%", stripANSI(RenderProgress(0.5, 8)))
	assert.Equal(t, "[████████] 100%", stripANSI(RenderProgress(1.5, 8)))
	assert.Equal(t, "[░░]   0%", stripANSI(RenderProgress(-1, 1)))
}

func TestRenderCompactBar(t *testing.T) {
	for _, dim := range []bool{false, true} {
		got := stripANSI(RenderCompactBar(0.5, 4, dim))
		assert.Equal(t, "██░░", got)
		assert.NotContains(t, got, "%")
	}
}

func TestRenderTable_AlignsStyledCells(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"ID", "NAME"},
		[][]string{{"1", Bold("Foundation")}, {"22", "Beta"}},
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, []string{
		"ID  NAME",
		"──  ──────────",
		"1   Foundation",
		"22  Beta",
	}, lines)
	assert.Empty(t, RenderTable(nil, nil))
}

func TestRenderTree(t *testing.T) {
	out := stripANSI(RenderTree([]TreeItem{
		{Title: "Setup", ID: "1", Level: 1, Status: domain.StatusCompleted, Detail: "HIGH"},
		{Title: "Build", ID: "2", Level: 1, IsLast: true, Status: domain.StatusPending},
	}))
	assert.Contains(t, out, "├─ ✔ #1 Setup  [ HIGH ]")
	assert.Contains(t, out, "└─ ○ #2 Build")
}

func demoPhases() []domain.Phase {
	return []domain.Phase{
		{ID: "1", Title: "Foundation", Duration: 4, DueDate: day("2024-12-31"), Tasks: []domain.Task{
			{ID: "1", Text: "Project setup", Status: domain.StatusCompleted, Priority: domain.PriorityHigh, Assignee: domain.AssigneeAmin, DueDate: day("2024-12-15")},
			{ID: "2", Text: "Write docs", Status: domain.StatusPending, Priority: domain.PriorityLow, DueDate: day("2024-12-20")},
		}},
		{ID: "2", Title: "Beta", Duration: 6, Tasks: []domain.Task{}},
	}
}

func TestFormatRoadmap(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	sum := service.Summary{
		Title:          "Project Roadmap",
		TotalTasks:     2,
		CompletedTasks: 1,
		OverdueTasks:   1,
		TotalWeeks:     10,
		Phases: []service.PhaseProgress{
			{PhaseID: "1", Title: "Foundation", Total: 2, Completed: 1, Pending: 1, Overdue: 1},
			{PhaseID: "2", Title: "Beta"},
		},
	}

	out := stripANSI(FormatRoadmap(sum, demoPhases(), now))

	assert.Contains(t, out, "Project Roadmap")
	assert.NotContains(t, out, "PROJECT ROADMAP")
	assert.Contains(t, out, "2 phases · 10 weeks · 1/2 tasks done · 1 overdue")
	assert.Contains(t, out, "#1 Foundation")
	assert.Contains(t, out, "✔ #1 Project setup")
	assert.Contains(t, out, "HIGH · Amin · 2024-12-15")
	assert.Contains(t, out, "LOW · 2024-12-20 overdue")
	assert.Contains(t, out, "#2 Beta")
	assert.Contains(t, out, "no tasks")
}

func TestFormatRoadmap_Empty(t *testing.T) {
	out := stripANSI(FormatRoadmap(service.Summary{Title: "Empty"}, nil, time.Now()))
	assert.Contains(t, out, "0 phases")
	assert.Contains(t, out, "No phases yet")
}

func TestFormatPhaseList(t *testing.T) {
	out := stripANSI(FormatPhaseList(demoPhases(), time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)))
	assert.Contains(t, out, "PHASES")
	assert.Contains(t, out, "Foundation")
	assert.Contains(t, out, "4 weeks")
	assert.Contains(t, out, "1/2")
	assert.Contains(t, out, "0/0")
}

func TestFormatPhase(t *testing.T) {
	out := stripANSI(FormatPhase(demoPhases()[0], time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)))
	assert.Contains(t, out, "Project setup")
	assert.Contains(t, out, "✔ Completed")
	assert.Contains(t, out, "unassigned")

	empty := stripANSI(FormatPhase(demoPhases()[1], time.Now()))
	assert.Contains(t, empty, "No tasks.")
}

func TestFormatOptions_ListsExactSets(t *testing.T) {
	out := stripANSI(FormatOptions())
	for _, want := range []string{"pending", "in-progress", "completed", "low", "medium", "high", "Amin", "Salim", "Vinc", "none"} {
		assert.Contains(t, out, want)
	}
}

func TestFormatShellHelpAndWelcome(t *testing.T) {
	help := stripANSI(FormatShellHelp())
	for _, cmd := range []string{"phase add", "task edit <phase> <task>", "cycle <phase> <task>", "exit / quit"} {
		assert.Contains(t, help, cmd)
	}
	assert.Contains(t, stripANSI(FormatShellWelcome("Launch")), "roadmap · Launch")
}

func TestFormatLines(t *testing.T) {
	p := demoPhases()[0]
	assert.Contains(t, stripANSI(FormatPhaseLine("Added", p)), "Added phase #1 Foundation  4 weeks · due 2024-12-31")
	assert.Contains(t, stripANSI(FormatTaskLine("Updated", "1", p.Tasks[1])), "Updated task #2 Write docs in phase #1")
}
