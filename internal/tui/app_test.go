package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lokeshkumar99/ai-competition-scout/internal/api"
	"github.com/lokeshkumar99/ai-competition-scout/internal/briefing"
	"github.com/lokeshkumar99/ai-competition-scout/internal/config"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := &config.Config{
		APIBaseURL:  "http://localhost:1",
		Competitors: []string{"Braze", "Iterable"},
	}
	a := NewApp(RunOpts{Cfg: cfg, Client: api.New(cfg.BaseURL())})
	a.width = 120
	a.height = 40
	return a
}

func sampleBriefings() []briefing.Briefing {
	return []briefing.Briefing{
		{Competitor: "Braze", ProductLine: "Push", FeatureUpdate: "New push SDK", Summary: "Faster delivery", ProcessedAt: "2025-08-30T10:00:00Z", SourceURL: "https://example.com/a"},
		{Competitor: "Braze", ProductLine: "Email", FeatureUpdate: "Template manager", Summary: "Reusable templates", ProcessedAt: "2025-08-29T10:00:00Z", SourceURL: "https://example.com/b"},
	}
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestSetViewIdempotent(t *testing.T) {
	a := newTestApp(t)

	if a.currentView != viewCards {
		t.Fatalf("initial view should be cards")
	}
	if !a.setView(viewTable) {
		t.Error("switching to a new mode should report a change")
	}
	if a.setView(viewTable) {
		t.Error("setting the current mode again must be a no-op")
	}
	if a.currentView != viewTable {
		t.Errorf("view mode lost after idempotent set")
	}
}

func TestSearchResultReplacesCache(t *testing.T) {
	a := newTestApp(t)
	a.startSearch()

	if !a.searching {
		t.Fatal("expected busy state during search")
	}

	a.Update(searchResultMsg{seq: a.searchSeq, briefings: sampleBriefings()})

	if a.searching {
		t.Error("busy state not cleared after response")
	}
	if len(a.briefings) != 2 {
		t.Fatalf("cache not replaced: %d briefings", len(a.briefings))
	}
}

func TestStaleResponseDropped(t *testing.T) {
	a := newTestApp(t)
	a.startSearch()
	a.startSearch() // second search supersedes the first

	a.Update(searchResultMsg{seq: 1, briefings: sampleBriefings()})
	if len(a.briefings) != 0 {
		t.Error("stale response must not touch the cache")
	}
	if !a.searching {
		t.Error("stale response must not clear the busy state")
	}

	a.Update(searchResultMsg{seq: 2, briefings: sampleBriefings()[:1]})
	if len(a.briefings) != 1 {
		t.Errorf("latest response not applied: %d briefings", len(a.briefings))
	}
	if a.searching {
		t.Error("busy state not cleared after latest response")
	}
}

func TestFailedSearchResetsCache(t *testing.T) {
	a := newTestApp(t)
	a.briefings = sampleBriefings()
	a.hasSearched = true

	a.startSearch()
	a.Update(searchErrMsg{seq: a.searchSeq, err: errors.New("boom")})

	if a.searching {
		t.Error("busy state not restored after failure")
	}
	if len(a.briefings) != 0 {
		t.Error("cache not reset on failure")
	}
	if !strings.Contains(a.View(), fetchFailedMessage) {
		t.Error("generic failure message not displayed")
	}
}

func TestViewEmptyHidesControls(t *testing.T) {
	a := newTestApp(t)
	a.hasSearched = true

	out := a.View()
	if !strings.Contains(out, emptyResultsMessage) {
		t.Error("empty cache should show the no-results message")
	}
	if strings.Contains(out, "e export") || strings.Contains(out, "v view") {
		t.Error("view/export controls should be hidden with an empty cache")
	}
}

func TestViewShowsControlsAndFreshness(t *testing.T) {
	a := newTestApp(t)
	a.hasSearched = true
	a.briefings = sampleBriefings()

	out := a.View()
	if !strings.Contains(out, "e export") || !strings.Contains(out, "v view") {
		t.Error("view/export controls should be shown with results cached")
	}
	if !strings.Contains(out, "Most recent:") {
		t.Error("freshness label missing")
	}
}

func TestRenderCardsOnePerBriefing(t *testing.T) {
	briefings := sampleBriefings()
	out := renderCards(briefings, 0, 120)

	first := strings.Index(out, "New push SDK")
	second := strings.Index(out, "Template manager")
	if first == -1 || second == -1 {
		t.Fatal("expected one card per briefing")
	}
	if first > second {
		t.Error("cards rendered out of input order")
	}
}

func TestRenderCardsPlaceholder(t *testing.T) {
	out := renderCards([]briefing.Briefing{{Competitor: "Braze"}}, 0, 120)
	if !strings.Contains(out, briefing.Placeholder) {
		t.Error("missing fields should render as the placeholder")
	}
}

func TestRenderTableRows(t *testing.T) {
	briefings := sampleBriefings()
	out := renderTable(briefings, 0, 160)

	lines := strings.Split(out, "\n")
	if len(lines) != len(briefings)+1 {
		t.Fatalf("expected header + %d rows, got %d lines", len(briefings), len(lines))
	}
	if !strings.Contains(lines[1], "New push SDK") || !strings.Contains(lines[2], "Template manager") {
		t.Error("rows out of input order")
	}
}

func TestViewModeSwitchRendersBothModes(t *testing.T) {
	a := newTestApp(t)
	a.hasSearched = true
	a.briefings = sampleBriefings()

	for _, v := range []viewMode{viewCards, viewTable, viewTable} {
		a.setView(v)
		out := a.View()
		if !strings.Contains(out, "New push SDK") || !strings.Contains(out, "Template manager") {
			t.Errorf("view mode %d: expected both briefings rendered", v)
		}
	}
	if a.currentView != viewTable {
		t.Error("repeated setView lost the current mode")
	}
}

func TestExportEmptyWarns(t *testing.T) {
	a := newTestApp(t)

	_, cmd := a.Update(keyMsg("e"))
	if cmd != nil {
		t.Error("empty export must not produce a file write command")
	}
	if a.notice != emptyExportWarning {
		t.Errorf("expected empty-export warning, got %q", a.notice)
	}
}

func TestSearchKeyIgnoredWhileBusy(t *testing.T) {
	a := newTestApp(t)
	a.searching = true
	a.searchSeq = 1

	a.Update(keyMsg("s"))
	if a.searchSeq != 1 {
		t.Error("trigger should be disabled while a search is in flight")
	}
}

func TestCompetitorSelection(t *testing.T) {
	a := newTestApp(t)

	if got := a.competitors.value(); got != api.AllCompetitors {
		t.Fatalf("initial competitor should be All, got %q", got)
	}

	a.Update(keyMsg("f"))
	if a.mode != modeCompetitor {
		t.Fatal("f should enter competitor selection")
	}
	a.Update(tea.KeyMsg(tea.Key{Type: tea.KeyRight}))
	a.Update(tea.KeyMsg(tea.Key{Type: tea.KeyEnter}))

	if a.mode != modeBrowse {
		t.Error("enter should leave competitor selection")
	}
	if a.competitors.value() != "Braze" {
		t.Errorf("expected Braze selected, got %q", a.competitors.value())
	}
}

func TestProductLineSuggestionApply(t *testing.T) {
	a := newTestApp(t)

	a.Update(keyMsg("/"))
	if a.mode != modeProductLine {
		t.Fatal("/ should enter product-line editing")
	}
	if len(a.suggestions) == 0 || a.suggestions[0] != briefing.ClearFilter {
		t.Fatal("suggestion list should open with the clear entry first")
	}

	// Highlight the first real suggestion and accept it
	a.Update(tea.KeyMsg(tea.Key{Type: tea.KeyDown}))
	a.Update(tea.KeyMsg(tea.Key{Type: tea.KeyDown}))
	a.Update(tea.KeyMsg(tea.Key{Type: tea.KeyEnter}))

	if a.mode != modeBrowse {
		t.Error("enter should close the suggestion list")
	}
	if a.plInput.Value() != briefing.ProductLines[0] {
		t.Errorf("suggestion not applied: %q", a.plInput.Value())
	}

	// The clear entry empties the filter
	a.Update(keyMsg("/"))
	a.Update(tea.KeyMsg(tea.Key{Type: tea.KeyDown}))
	a.Update(tea.KeyMsg(tea.Key{Type: tea.KeyEnter}))
	if a.plInput.Value() != "" {
		t.Errorf("clear entry should empty the filter, got %q", a.plInput.Value())
	}
}
