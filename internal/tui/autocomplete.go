package tui

import (
	"strings"

	"github.com/lokeshkumar99/ai-competition-scout/internal/briefing"
)

// renderSuggestions draws the product-line suggestion list under the filter
// input. The clear entry from briefing.Suggest is always present, so the
// list is never empty while the input is focused.
func renderSuggestions(items []string, cursor int, width int) string {
	var b strings.Builder
	for i, item := range items {
		line := truncateStr(item, width-4)
		if i == cursor {
			b.WriteString(suggestionSelectedStyle.Render("> " + line))
		} else {
			b.WriteString(suggestionStyle.Render(line))
		}
		if i < len(items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// applySuggestion resolves a picked suggestion into the filter value. The
// clear entry empties the filter.
func applySuggestion(item string) string {
	if item == briefing.ClearFilter {
		return ""
	}
	return item
}
