package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lokeshkumar99/ai-competition-scout/internal/api"
	"github.com/lokeshkumar99/ai-competition-scout/internal/briefing"
	"github.com/lokeshkumar99/ai-competition-scout/internal/browser"
	"github.com/lokeshkumar99/ai-competition-scout/internal/config"
	"github.com/lokeshkumar99/ai-competition-scout/internal/store"
)

type viewMode int

const (
	viewCards viewMode = iota
	viewTable
)

type mode int

const (
	modeBrowse mode = iota
	modeCompetitor
	modeProductLine
	modeHelp
)

// User-facing static messages. Fetch failures are deliberately generic: the
// status line never distinguishes error kinds.
const (
	fetchFailedMessage  = "Could not load briefings. Check the API and try again."
	emptyResultsMessage = "No briefings found."
	emptyExportWarning  = "Nothing to export — run a search first."
	welcomeMessage      = "Press s to fetch briefings."
)

type App struct {
	cfg      *config.Config
	client   *api.Client
	snapshot *store.Store

	// Cached result set, replaced wholesale on every fetch and reset to
	// empty on fetch failure.
	briefings   []briefing.Briefing
	hasSearched bool

	currentView viewMode
	mode        mode
	cursor      int
	scrollLine  int

	competitors competitorBar
	plInput     textinput.Model
	suggestions []string
	suggestIdx  int

	spinner   spinner.Model
	searching bool
	searchSeq int

	err    error
	notice string

	searchOnStart bool

	width  int
	height int
}

// RunOpts holds all parameters for launching the dashboard.
type RunOpts struct {
	Cfg      *config.Config
	Client   *api.Client
	Snapshot *store.Store

	// Preset filters from CLI flags; SearchOnStart fires one search
	// immediately with them.
	Competitor    string
	ProductLine   string
	SearchOnStart bool
}

func NewApp(opts RunOpts) *App {
	ti := textinput.New()
	ti.Placeholder = "Filter by product line..."
	ti.Prompt = filterPromptStyle.Render("/ ")
	ti.CharLimit = 100
	if opts.ProductLine != "" {
		ti.SetValue(opts.ProductLine)
	}

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	bar := newCompetitorBar(opts.Cfg.Competitors)
	for i, entry := range bar.entries {
		if entry == opts.Competitor {
			bar.cursor = i
			break
		}
	}

	view := viewCards
	if opts.Cfg.View() == config.ViewTable {
		view = viewTable
	}

	return &App{
		cfg:           opts.Cfg,
		client:        opts.Client,
		snapshot:      opts.Snapshot,
		currentView:   view,
		competitors:   bar,
		plInput:       ti,
		spinner:       sp,
		searchOnStart: opts.SearchOnStart,
	}
}

func (a *App) Init() tea.Cmd {
	if a.searchOnStart {
		a.searchOnStart = false
		return a.startSearch()
	}
	return nil
}

// setView switches the display strategy. Setting the already-current mode is
// a no-op: state, cursor, and scroll are left untouched.
func (a *App) setView(v viewMode) bool {
	if v == a.currentView {
		return false
	}
	a.currentView = v
	a.scrollLine = 0
	return true
}

// startSearch issues exactly one request with the current filters. The
// trigger is disabled while a search is in flight; overlapping requests can
// still exist (a new search does not cancel a prior one), and the sequence
// number makes the most recent request win regardless of arrival order.
func (a *App) startSearch() tea.Cmd {
	a.searching = true
	a.searchSeq++

	seq := a.searchSeq
	client := a.client
	competitor := a.competitors.value()
	productLine := strings.TrimSpace(a.plInput.Value())

	search := func() tea.Msg {
		briefings, err := client.Search(context.Background(), competitor, productLine)
		if err != nil {
			return searchErrMsg{seq: seq, err: err}
		}
		return searchResultMsg{seq: seq, briefings: briefings}
	}
	return tea.Batch(search, a.spinner.Tick)
}

// persistSnapshot stores the result set locally, best-effort.
func (a *App) persistSnapshot(briefings []briefing.Briefing) tea.Cmd {
	if a.snapshot == nil {
		return nil
	}
	snap := a.snapshot
	last := store.LastSearch{
		Competitor:  a.competitors.value(),
		ProductLine: strings.TrimSpace(a.plInput.Value()),
		FetchedAt:   time.Now(),
	}
	return func() tea.Msg {
		snap.Replace(briefings, last)
		return nil
	}
}

func (a *App) exportCmd() tea.Cmd {
	briefings := a.briefings
	path := a.cfg.ExportFilename()
	return func() tea.Msg {
		f, err := os.Create(path)
		if err != nil {
			return exportErrMsg{err: err}
		}
		defer f.Close()
		if err := briefing.WriteCSV(f, briefings); err != nil {
			return exportErrMsg{err: err}
		}
		return exportDoneMsg{path: path, count: len(briefings)}
	}
}

func openBrowserCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if err := browser.Open(url); err != nil {
			return openErrMsg{err: err}
		}
		return nil
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		// Transient notices clear on any keypress
		a.notice = ""
		return a.handleKey(msg)

	case searchResultMsg:
		if msg.seq != a.searchSeq {
			// Superseded by a newer search; drop the stale response.
			return a, nil
		}
		a.searching = false
		a.err = nil
		a.briefings = msg.briefings
		a.hasSearched = true
		a.cursor = 0
		a.scrollLine = 0
		return a, a.persistSnapshot(msg.briefings)

	case searchErrMsg:
		if msg.seq != a.searchSeq {
			return a, nil
		}
		a.searching = false
		a.err = msg.err
		a.briefings = nil
		a.hasSearched = true
		a.cursor = 0
		a.scrollLine = 0
		return a, nil

	case exportDoneMsg:
		a.notice = fmt.Sprintf("Exported %d briefing(s) to %s", msg.count, msg.path)
		return a, nil

	case exportErrMsg:
		a.notice = "Export failed: " + msg.err.Error()
		return a, nil

	case openErrMsg:
		a.notice = msg.err.Error()
		return a, nil

	case spinner.TickMsg:
		if a.searching {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.mode {
	case modeCompetitor:
		return a.handleCompetitorKey(msg)
	case modeProductLine:
		return a.handleProductLineKey(msg)
	case modeHelp:
		if msg.String() == "?" || msg.String() == "esc" || msg.String() == "q" {
			a.mode = modeBrowse
		}
		return a, nil
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "s", "r":
		if !a.searching {
			return a, a.startSearch()
		}
		return a, nil
	case "f":
		a.mode = modeCompetitor
		a.competitors.selectMode = true
		return a, nil
	case "/":
		a.mode = modeProductLine
		a.plInput.Focus()
		a.suggestions = briefing.Suggest(a.plInput.Value())
		a.suggestIdx = -1
		return a, textinput.Blink
	case "v":
		if a.currentView == viewCards {
			a.setView(viewTable)
		} else {
			a.setView(viewCards)
		}
		return a, nil
	case "1":
		a.setView(viewCards)
		return a, nil
	case "2":
		a.setView(viewTable)
		return a, nil
	case "j", "down":
		if a.cursor < len(a.briefings)-1 {
			a.cursor++
		}
		return a, nil
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "e":
		if len(a.briefings) == 0 {
			a.notice = emptyExportWarning
			return a, nil
		}
		return a, a.exportCmd()
	case "o", "enter":
		if len(a.briefings) > 0 && a.cursor < len(a.briefings) {
			url := a.briefings[a.cursor].SourceURL
			if url == "" {
				a.notice = "Selected briefing has no source URL"
				return a, nil
			}
			return a, openBrowserCmd(url)
		}
		return a, nil
	case "?":
		a.mode = modeHelp
		return a, nil
	}

	return a, nil
}

func (a *App) handleCompetitorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "f":
		a.mode = modeBrowse
		a.competitors.selectMode = false
		return a, nil
	case "left", "h":
		a.competitors.prev()
		return a, nil
	case "right", "l":
		a.competitors.next()
		return a, nil
	}
	return a, nil
}

func (a *App) handleProductLineKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Leave the input as typed, just hide the suggestion list
		a.mode = modeBrowse
		a.plInput.Blur()
		return a, nil
	case "enter":
		if a.suggestIdx >= 0 && a.suggestIdx < len(a.suggestions) {
			a.plInput.SetValue(applySuggestion(a.suggestions[a.suggestIdx]))
		}
		a.mode = modeBrowse
		a.plInput.Blur()
		return a, nil
	case "down":
		if a.suggestIdx < len(a.suggestions)-1 {
			a.suggestIdx++
		}
		return a, nil
	case "up":
		if a.suggestIdx > -1 {
			a.suggestIdx--
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.plInput, cmd = a.plInput.Update(msg)
	a.suggestions = briefing.Suggest(a.plInput.Value())
	a.suggestIdx = -1
	return a, cmd
}

func (a *App) filterLabel() string {
	var parts []string
	if v := a.competitors.value(); v != api.AllCompetitors {
		parts = append(parts, v)
	}
	if v := strings.TrimSpace(a.plInput.Value()); v != "" {
		parts = append(parts, v)
	}
	return strings.Join(parts, " / ")
}

func (a *App) viewTabs() string {
	cards := tabInactiveStyle.Render("Cards")
	table := tabInactiveStyle.Render("Table")
	if a.currentView == viewCards {
		cards = tabActiveStyle.Render("Cards")
	} else {
		table = tabActiveStyle.Render("Table")
	}
	return " " + cards + tabSeparatorStyle.Render(" · ") + table
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorAccent).Render("  scout")
	}

	if a.mode == modeHelp {
		return a.renderHelp()
	}

	// Header
	headerLeft := headerStyle.Render("scout")
	headerRight := headerDateStyle.Render(time.Now().Format("Jan 2"))
	headerGap := a.width - lipgloss.Width(headerLeft) - lipgloss.Width(headerRight)
	if headerGap < 0 {
		headerGap = 0
	}
	header := headerLeft + fmt.Sprintf("%*s", headerGap, "") + headerRight

	// Competitor selector
	selectorBar := a.competitors.render(a.width)

	// Product-line filter row (with autocomplete while focused)
	var filterRows []string
	if a.mode == modeProductLine {
		filterRows = append(filterRows, " "+a.plInput.View())
		filterRows = append(filterRows, renderSuggestions(a.suggestions, a.suggestIdx, a.width))
	} else {
		value := strings.TrimSpace(a.plInput.Value())
		if value == "" {
			value = emptyStyle.Render("(any product line)")
		} else {
			value = cardMetaStyle.Render(value)
		}
		filterRows = append(filterRows, freshnessStyle.Render("product line: ")+value)
	}
	filterArea := strings.Join(filterRows, "\n")

	contentHeight := a.height - lipgloss.Height(header) - lipgloss.Height(selectorBar) - lipgloss.Height(filterArea) - 1
	if contentHeight < 3 {
		contentHeight = 3
	}

	content := a.renderContent(contentHeight)

	// Status bar
	status := renderStatusBar(len(a.briefings), a.filterLabel(), a.width, a.searching, len(a.briefings) > 0)
	if a.searching {
		status = a.spinner.View() + " " + status
	}
	if a.notice != "" {
		status = noticeStyle.Render(" " + a.notice)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, selectorBar, filterArea, content, status)
}

// renderContent rebuilds the whole display surface from the cached result
// set on every call; nothing is patched incrementally.
func (a *App) renderContent(height int) string {
	var body string
	switch {
	case a.err != nil:
		body = errorStyle.Render(fetchFailedMessage)
	case !a.hasSearched:
		body = emptyStyle.Render(welcomeMessage)
	case len(a.briefings) == 0:
		body = emptyStyle.Render(emptyResultsMessage)
	default:
		tabs := a.viewTabs()
		fresh := freshnessStyle.Render("Most recent: " + briefing.FreshnessLabel(a.briefings))
		var rendered string
		if a.currentView == viewCards {
			rendered = renderCards(a.briefings, a.cursor, a.width)
		} else {
			rendered = renderTable(a.briefings, a.cursor, a.width)
		}
		visible := height - 2
		if visible < 1 {
			visible = 1
		}
		return padToHeight(tabs+"\n"+fresh+"\n"+a.clipToCursor(rendered, visible), height)
	}

	return padToHeight("\n  "+body, height)
}

// clipToCursor windows the rendered body so the selected unit stays visible.
func (a *App) clipToCursor(body string, visible int) string {
	lines := strings.Split(body, "\n")
	if len(lines) <= visible {
		return body
	}

	unitHeight := 1
	if len(a.briefings) > 0 {
		unitHeight = len(lines) / len(a.briefings)
		if unitHeight < 1 {
			unitHeight = 1
		}
	}
	cursorTop := a.cursor * unitHeight

	if cursorTop < a.scrollLine {
		a.scrollLine = cursorTop
	}
	if cursorTop+unitHeight > a.scrollLine+visible {
		a.scrollLine = cursorTop + unitHeight - visible
	}
	if a.scrollLine < 0 {
		a.scrollLine = 0
	}
	if a.scrollLine > len(lines)-1 {
		a.scrollLine = len(lines) - 1
	}

	end := a.scrollLine + visible
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[a.scrollLine:end], "\n")
}

func padToHeight(s string, height int) string {
	lines := strings.Split(s, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderHelp() string {
	title := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("scout")
	dim := helpDimStyle

	help := title + dim.Render(" — Keyboard Shortcuts") + "\n\n" +
		dim.Render("Searching") + "\n" +
		"  s, r          Fetch briefings with current filters\n" +
		"  f             Choose competitor (←/→, enter to confirm)\n" +
		"  /             Edit product-line filter (autocomplete)\n\n" +
		dim.Render("Results") + "\n" +
		"  v, 1, 2       Switch between cards and table\n" +
		"  j/k, ↑/↓     Move between briefings\n" +
		"  o, enter      Open source URL in browser\n" +
		"  e             Export results to CSV\n\n" +
		dim.Render("General") + "\n" +
		"  ?             Toggle this help\n" +
		"  q, ctrl+c    Quit"

	card := helpCardStyle.Render(help)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

// Run starts the dashboard.
func Run(opts RunOpts) error {
	p := tea.NewProgram(NewApp(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
