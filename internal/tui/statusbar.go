package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// renderStatusBar shows the result count and filters on the left and key
// hints on the right. The view-mode and export hints are hidden whenever
// there is nothing cached to view or export.
func renderStatusBar(count int, filterLabel string, width int, searching bool, hasResults bool) string {
	left := fmt.Sprintf(" %d briefings", count)
	if filterLabel != "" {
		left += " · " + filterLabel
	}
	if searching {
		left += " (searching...)"
	}

	right := " s search  f competitor  / product line  q quit "
	if hasResults {
		right = " s search  f competitor  / product line  v view  e export  o open  q quit "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(width).Render(bar)
}
