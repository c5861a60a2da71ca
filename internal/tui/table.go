package tui

import (
	"strings"

	"github.com/lokeshkumar99/ai-competition-scout/internal/briefing"
)

// Table column weights; the remaining width goes to the summary column.
const (
	colCompetitorW  = 12
	colProductW     = 16
	colFeatureW     = 32
	colProcessedW   = 17
	tableMinSummary = 20
)

// renderTable draws the header plus one row per briefing, in input order.
// Like the card view it is a full rebuild every call.
func renderTable(briefings []briefing.Briefing, cursor int, width int) string {
	summaryW := width - colCompetitorW - colProductW - colFeatureW - colProcessedW - 10
	if summaryW < tableMinSummary {
		summaryW = tableMinSummary
	}

	var b strings.Builder
	b.WriteString(tableHeaderStyle.Render(tableLine("Competitor", "Product Line", "Feature/Update", "Summary", "Processed At", summaryW)))
	for i, row := range briefings {
		d := row.Display()
		line := tableLine(d.Competitor, d.ProductLine, d.FeatureUpdate, d.Summary, d.ProcessedAt, summaryW)
		b.WriteString("\n")
		if i == cursor {
			b.WriteString(tableRowSelectedStyle.Render(line))
		} else {
			b.WriteString(tableRowStyle.Render(line))
		}
	}
	return b.String()
}

func tableLine(competitor, product, feature, summary, processed string, summaryW int) string {
	return " " + pad(competitor, colCompetitorW) +
		"  " + pad(product, colProductW) +
		"  " + pad(feature, colFeatureW) +
		"  " + pad(summary, summaryW) +
		"  " + pad(processed, colProcessedW)
}

func pad(s string, n int) string {
	s = truncateStr(s, n)
	if w := len([]rune(s)); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}
