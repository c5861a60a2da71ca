package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lokeshkumar99/ai-competition-scout/internal/briefing"
)

// renderCards draws one card per briefing, in input order, rebuilt from
// scratch on every call. Empty fields show the placeholder.
func renderCards(briefings []briefing.Briefing, cursor int, width int) string {
	if width < 40 {
		width = 40
	}
	cardWidth := width - 4
	innerWidth := cardWidth - 4

	cards := make([]string, 0, len(briefings))
	for i, b := range briefings {
		cards = append(cards, renderCard(b.Display(), i == cursor, cardWidth, innerWidth))
	}
	return strings.Join(cards, "\n")
}

func renderCard(d briefing.Briefing, selected bool, cardWidth, innerWidth int) string {
	var body []string

	meta := cardMetaStyle.Render(d.Competitor) +
		tabSeparatorStyle.Render(" · ") +
		cardMetaStyle.Render(d.ProductLine) +
		tabSeparatorStyle.Render(" · ") +
		cardLinkStyle.Render(d.ProcessedAt)
	body = append(body, meta)

	body = append(body, cardTitleStyle.Width(innerWidth).Render(d.FeatureUpdate))
	body = append(body, "")

	for _, line := range strings.Split(wrapText(d.Summary, innerWidth), "\n") {
		body = append(body, cardBodyStyle.Render(line))
	}

	body = append(body, "")
	body = append(body, cardAnalysisStyle.Render("PM analysis:"))
	for _, line := range strings.Split(wrapText(d.PMAnalysis, innerWidth), "\n") {
		body = append(body, cardAnalysisStyle.Render(line))
	}

	body = append(body, "")
	body = append(body, cardLinkStyle.Render(truncateStr(d.SourceURL, innerWidth)))

	style := cardStyle
	if selected {
		style = cardSelectedStyle
	}
	return style.Width(cardWidth).Render(strings.Join(body, "\n"))
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if lipgloss.Width(line)+1+lipgloss.Width(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
