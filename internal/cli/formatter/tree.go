package formatter

import (
	"strings"

	"github.com/alexanderramin/roadmap/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// TreeItem represents a single line in a tree display.
type TreeItem struct {
	Title  string
	ID     string // shown dimmed before the title when set
	Level  int
	IsLast bool
	Status domain.Status // empty for non-task rows
	Detail string
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
)

// RenderTree renders TreeItems as an indented tree using box-drawing
// connectors. Completed tasks are dimmed behind a green ✔, in-progress
// tasks are bold amber, and detail badges are right-aligned.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	type lineInfo struct {
		content string
		badge   string
	}

	lines := make([]lineInfo, len(items))
	maxContentWidth := 0

	for idx, item := range items {
		var prefix string
		if item.Level > 0 {
			prefix = strings.Repeat(treePipe, item.Level-1)
			if item.IsLast {
				prefix += treeCorner
			} else {
				prefix += treeBranch
			}
		}
		prefix = StyleDim.Render(prefix)

		title := item.Title
		switch item.Status {
		case domain.StatusCompleted:
			title = Dim(title)
		case domain.StatusInProgress:
			title = StyleYellowBold.Render(title)
		}
		if item.ID != "" {
			title = StyleDim.Render("#"+TruncID(item.ID)+" ") + title
		}
		if item.Status != "" {
			title = StatusIcon(item.Status) + " " + title
		}

		content := prefix + title
		lines[idx].content = content
		if item.Detail != "" {
			lines[idx].badge = StyleBlue.Render("[ " + item.Detail + " ]")
		}
		if w := lipgloss.Width(content); w > maxContentWidth {
			maxContentWidth = w
		}
	}

	var b strings.Builder
	for _, li := range lines {
		b.WriteString(li.content)
		if li.badge != "" {
			pad := maxContentWidth - lipgloss.Width(li.content)
			if pad < 0 {
				pad = 0
			}
			b.WriteString(strings.Repeat(" ", pad) + "  " + li.badge)
		}
		b.WriteString("\n")
	}
	return b.String()
}
