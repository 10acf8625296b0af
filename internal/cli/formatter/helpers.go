package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/roadmap/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional
// section title, shown upper-cased.
func RenderBox(title string, content string) string {
	return renderBox(strings.ToUpper(title), content)
}

// RenderTitledBox is RenderBox for user-supplied titles, which keep their case.
func RenderTitledBox(title string, content string) string {
	return renderBox(title, content)
}

func renderBox(heading string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if heading != "" {
		return boxStyle.Render(StyleHeader.Render(heading) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// RelativeDateFrom returns a human-friendly distance between two calendar
// days, e.g. "Today", "In 3d", "2w ago".
func RelativeDateFrom(t time.Time, now time.Time) string {
	days := int(math.Round(truncateDay(t).Sub(truncateDay(now)).Hours() / 24))

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0 && days < 60:
		return fmt.Sprintf("In %dw", days/7)
	case days > 0:
		return fmt.Sprintf("In %dmo", days/30)
	case days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days > -60:
		return fmt.Sprintf("%dw ago", -days/7)
	default:
		return fmt.Sprintf("%dmo ago", -days/30)
	}
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DueLabel renders a due date as "2024-12-31 (In 3d)". Overdue dates on
// unfinished work are red; dates within a week are yellow.
func DueLabel(due *time.Time, done bool, now time.Time) string {
	if due == nil {
		return Dim("--")
	}
	abs := domain.FormatDate(due)
	if done {
		return Dim(abs)
	}
	rel := RelativeDateFrom(*due, now)
	days := truncateDay(*due).Sub(truncateDay(now)).Hours() / 24
	style := StyleFg
	switch {
	case days < 0:
		style = StyleRed
	case days <= 7:
		style = StyleYellow
	}
	return style.Render(abs) + " " + Dim("("+rel+")")
}

// StatusPill returns a colored status indicator for a task.
func StatusPill(s domain.Status) string {
	switch s {
	case domain.StatusCompleted:
		return StyleGreen.Render("✔ " + s.Label())
	case domain.StatusInProgress:
		return StyleYellowBold.Render("● " + s.Label())
	case domain.StatusPending:
		return StyleBlue.Render("○ " + s.Label())
	default:
		return StyleDim.Render(string(s))
	}
}

// StatusIcon returns only the glyph of StatusPill.
func StatusIcon(s domain.Status) string {
	switch s {
	case domain.StatusCompleted:
		return StyleGreen.Render("✔")
	case domain.StatusInProgress:
		return StyleYellowBold.Render("●")
	default:
		return StyleBlue.Render("○")
	}
}

// PriorityBadge renders a priority label in its color.
func PriorityBadge(p domain.Priority) string {
	return PriorityColor(p).Render(strings.ToUpper(string(p)))
}

// AssigneeLabel renders the assignee or a dim placeholder.
func AssigneeLabel(a domain.Assignee) string {
	if a == domain.AssigneeNone {
		return Dim("unassigned")
	}
	return StylePurple.Render(a.Label())
}

// TruncID shortens long generated ids to 8 characters.
func TruncID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Weeks renders a phase duration.
func Weeks(n int) string {
	if n == 1 {
		return "1 week"
	}
	return fmt.Sprintf("%d weeks", n)
}
