package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

func progressCells(pct float64, width int) (float64, int, int) {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}
	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	return pct, filled, width - filled
}

// RenderProgress renders a progress bar like [████░░░░]  45%.
// The bar is colored based on percentage: green >66%, yellow 33-66%, red <33%.
func RenderProgress(pct float64, width int) string {
	pct, filled, empty := progressCells(pct, width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, empty)

	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}

// RenderCompactBar renders the bar alone, without brackets or percentage.
// Dimmed bars are used for phases with no tasks.
func RenderCompactBar(pct float64, width int, dim bool) string {
	_, filled, empty := progressCells(pct, width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, empty)
	if dim {
		return StyleDim.Render(bar)
	}
	return StyleGreen.Render(strings.Repeat(filledBlock, filled)) + StyleDim.Render(strings.Repeat(emptyBlock, empty))
}
