package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lokeshkumar99/ai-competition-scout/internal/api"
)

// competitorBar is the closed-set competitor selector. "All" is always the
// first entry and means no competitor filter.
type competitorBar struct {
	entries    []string
	cursor     int
	selectMode bool
}

func newCompetitorBar(competitors []string) competitorBar {
	entries := make([]string, 0, len(competitors)+1)
	entries = append(entries, api.AllCompetitors)
	entries = append(entries, competitors...)
	return competitorBar{entries: entries}
}

func (c *competitorBar) value() string {
	if c.cursor < 0 || c.cursor >= len(c.entries) {
		return api.AllCompetitors
	}
	return c.entries[c.cursor]
}

func (c *competitorBar) prev() {
	if c.cursor > 0 {
		c.cursor--
	}
}

func (c *competitorBar) next() {
	if c.cursor < len(c.entries)-1 {
		c.cursor++
	}
}

func (c *competitorBar) render(width int) string {
	sep := tabSeparatorStyle.Render(" · ")
	var row string
	for i, entry := range c.entries {
		style := tabInactiveStyle
		if i == c.cursor {
			style = tabActiveStyle
		}
		label := entry
		if c.selectMode && i == c.cursor {
			label = "[" + entry + "]"
		}
		candidate := row
		if i > 0 {
			candidate += sep
		}
		candidate += style.Render(label)
		if lipgloss.Width(candidate) > width && row != "" {
			break
		}
		row = candidate
	}

	barStyle := lipgloss.NewStyle().Width(width).PaddingLeft(1)
	return barStyle.Render(row)
}
