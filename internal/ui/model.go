package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/tushar-tyagi17/artwork-dashboard/internal/config"
	"github.com/tushar-tyagi17/artwork-dashboard/internal/domain"
	"github.com/tushar-tyagi17/artwork-dashboard/internal/ui/coordinator"
	"github.com/tushar-tyagi17/artwork-dashboard/internal/ui/input"
	inputtypes "github.com/tushar-tyagi17/artwork-dashboard/internal/ui/input/types"
	"github.com/tushar-tyagi17/artwork-dashboard/internal/ui/state"
	"github.com/tushar-tyagi17/artwork-dashboard/internal/ui/views"
)

// maxPagerDots caps the dots pager; past this many pages the dots stop
// being readable and the status line alone carries the position.
const maxPagerDots = 30

// PageFetcher loads one page of the catalog. Implemented by catalog.Client.
type PageFetcher interface {
	FetchPage(ctx context.Context, page int, query string) (domain.Page, error)
}

// fetchRequest is the (page, query) pair a cursor event asked for.
type fetchRequest struct {
	page  int
	query string
}

// Model represents the UI state
type Model struct {
	coord   *coordinator.Coordinator
	fetcher PageFetcher
	config  *config.Config
	logger  *zap.SugaredLogger
	state   *state.AppState

	// UI-specific state not in AppState
	width  int
	height int

	table     table.Model
	spinner   spinner.Model
	paginator paginator.Model
	help      help.Model
	keys      keyMap

	renderer     *views.Renderer
	inputHandler *input.Handler
	detailOps    *DetailOps

	// pendingFetch holds the latest cursor event until the update loop
	// turns it into a request. Several mutations inside one keystroke
	// collapse into a single fetch for the final pair.
	pendingFetch *fetchRequest
}

// NewModel creates a new UI model
func NewModel(coord *coordinator.Coordinator, fetcher PageFetcher, cfg *config.Config, logger *zap.SugaredLogger) *Model {
	t := table.New(
		table.WithColumns(tableColumns(cfg, 80)),
		table.WithHeight(domain.PageSize+1),
		table.WithFocused(true),
	)
	tableStyles := table.DefaultStyles()
	tableStyles.Header = tableStyles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("241")).
		BorderBottom(true).
		Bold(true)
	tableStyles.Selected = tableStyles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("238")).
		Bold(false)
	t.SetStyles(tableStyles)

	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))

	p := paginator.New()
	p.Type = paginator.Dots
	p.ActiveDot = lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Render("•")
	p.InactiveDot = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("•")

	m := &Model{
		coord:        coord,
		fetcher:      fetcher,
		config:       cfg,
		logger:       logger,
		state:        state.NewAppState(),
		table:        t,
		spinner:      s,
		paginator:    p,
		help:         help.New(),
		keys:         defaultKeyMap(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		detailOps:    NewDetailOps(),
	}

	coord.OnQueryStateChanged(func(page int, query string) {
		m.pendingFetch = &fetchRequest{page: page, query: query}
	})

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.detailOps.SetProgram(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	page, query := m.coord.QueryState()
	return m.fetchPage(page, query)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateLayout()

	case tea.KeyMsg:
		ctx := &input.ModelContext{
			State: m.state,
			Coord: m.coord,
		}

		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}

		// Cursor mutations above left at most one event behind; turn it
		// into the one refetch that change is owed.
		if fetchCmd := m.consumePendingFetch(); fetchCmd != nil {
			cmds = append(cmds, fetchCmd)
		}

		return m, tea.Batch(cmds...)

	default:
		// Handle non-keyboard messages
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}

	return m, nil
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pageLoadedMsg:
		return m.handlePageLoaded(msg)

	case spinner.TickMsg:
		if !m.state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case detailClosedMsg:
		if msg.err != nil {
			m.logger.Errorw("detail pager failed", "error", msg.err)
			m.state.StatusMessage = "Could not open the detail view"
			return m, m.clearStatusSoon()
		}
		return m, nil

	case clearStatusMsg:
		m.state.StatusMessage = ""
		return m, nil

	default:
		// Other messages are handled elsewhere
		return m, nil
	}
}

// handlePageLoaded applies a fetch result, unless the cursor has moved on.
func (m *Model) handlePageLoaded(msg pageLoadedMsg) (tea.Model, tea.Cmd) {
	curPage, curQuery := m.coord.QueryState()
	if msg.page != curPage || msg.query != curQuery {
		m.logger.Debugw("dropping stale page response",
			"page", msg.page, "query", msg.query,
			"current_page", curPage, "current_query", curQuery)
		return m, nil
	}

	m.state.Loading = false

	if msg.err != nil {
		m.logger.Errorw("catalog fetch failed",
			"page", msg.page, "query", msg.query, "error", msg.err)
		m.state.SetPage(domain.Page{Number: msg.page})
		m.syncTable()
		m.state.StatusMessage = fmt.Sprintf("Catalog request failed; see %s", m.config.LogFile)
		return m, m.clearStatusSoon()
	}

	m.state.SetPage(msg.result)
	m.state.SeedChecked(m.coord.VisibleSelection(msg.result.Artworks))
	m.syncTable()
	m.table.GotoTop()
	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	page, query := m.coord.QueryState()

	inputMode := ""
	if m.inputHandler.CurrentMode() != inputtypes.ModeNormal {
		inputMode = m.inputHandler.ModeName()
	}

	pager := ""
	if tp := m.paginator.TotalPages; tp > 1 && tp <= maxPagerDots {
		pager = m.paginator.View()
	}

	vs := views.ViewState{
		Width:  m.width,
		Height: m.height,

		Loaded:  m.state.Loaded,
		Loading: m.state.Loading,
		Spinner: m.spinner.View(),

		Query:     query,
		InputMode: inputMode,
		TextInput: m.inputHandler.GetTextInput().View(),

		Table:     m.table.View(),
		RowCount:  len(m.state.Page.Artworks),
		Paginator: pager,

		Page:         page,
		TotalPages:   m.state.Page.TotalPages(),
		TotalResults: m.state.Page.Total,

		SelectedCount: m.coord.SelectedCount(),
		StatusMessage: m.state.StatusMessage,

		ShowHelp: m.state.ShowHelp,
		Footer:   m.help.View(m.keys),
	}

	if m.state.ShowHelp {
		full := m.help
		full.ShowAll = true
		vs.HelpContent = full.View(m.keys)
	}

	return m.renderer.Render(vs)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		switch a.Direction {
		case "up":
			m.table.MoveUp(1)
		case "down":
			m.table.MoveDown(1)
		case "top":
			m.table.GotoTop()
		case "bottom":
			m.table.GotoBottom()
		}

	case inputtypes.ChangePageAction:
		m.changePage(a.Direction)

	case inputtypes.ToggleSelectAction:
		if art, ok := m.selectedArtwork(); ok {
			m.state.ToggleChecked(art.ID)
			m.reconcileSelection()
			m.syncTable()
		}

	case inputtypes.SelectPageAction:
		m.state.CheckAll()
		m.reconcileSelection()
		m.syncTable()

	case inputtypes.UnselectPageAction:
		m.state.UncheckAll()
		m.reconcileSelection()
		m.syncTable()

	case inputtypes.ClearSelectionAction:
		m.coord.Selection.DeselectAll()
		m.state.UncheckAll()
		m.syncTable()
		m.state.StatusMessage = "Selection cleared"
		return m.clearStatusSoon()

	case inputtypes.ChangeModeAction:
		// Mode switches are handled inside the input handler.

	case inputtypes.UpdateTextAction:
		// Live search: every edit moves the cursor, which resets the
		// page and owes us exactly one refetch.
		if a.Mode == inputtypes.ModeSearch {
			m.coord.Cursor.SetQuery(a.Text)
		}

	case inputtypes.SubmitTextAction:
		switch a.Mode {
		case inputtypes.ModeSearch:
			m.coord.Cursor.SetQuery(a.Text)
		case inputtypes.ModeSelectCount:
			m.selectFirstN(a.Text)
		}

	case inputtypes.CancelTextAction:
		// Abandoning a live search discards whatever it applied.
		if a.Mode == inputtypes.ModeSearch {
			m.coord.Cursor.SetQuery("")
		}

	case inputtypes.ClearQueryAction:
		m.coord.Cursor.SetQuery("")

	case inputtypes.RefreshAction:
		page, query := m.coord.QueryState()
		return m.fetchPage(page, query)

	case inputtypes.OpenDetailAction:
		if art, ok := m.selectedArtwork(); ok {
			return m.openDetail(art)
		}

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// changePage clamps page navigation to the known range and moves the cursor.
// The cursor itself accepts anything; bounds are a presentation concern.
func (m *Model) changePage(direction string) {
	page, _ := m.coord.QueryState()
	totalPages := m.state.Page.TotalPages()
	if totalPages < 1 {
		totalPages = 1
	}

	target := page
	switch direction {
	case "next":
		target = page + 1
	case "prev":
		target = page - 1
	case "first":
		target = 1
	case "last":
		target = totalPages
	}

	if target < 1 {
		target = 1
	}
	if target > totalPages {
		target = totalPages
	}
	if target == page {
		return
	}

	m.coord.Cursor.GoToPage(target)
}

// selectFirstN applies a typed row count. Anything that does not parse to
// a positive number is dropped without feedback.
func (m *Model) selectFirstN(text string) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n <= 0 {
		return
	}

	m.coord.Selection.SelectFirstN(m.state.Page.Artworks, n)
	m.state.SeedChecked(m.coord.VisibleSelection(m.state.Page.Artworks))
	m.syncTable()
}

// reconcileSelection pushes the page's checkbox state into the selection set.
func (m *Model) reconcileSelection() {
	m.coord.Selection.Reconcile(m.state.Page.Artworks, m.state.CheckedArtworks())
}

// selectedArtwork resolves the table cursor to an artwork on the page.
func (m *Model) selectedArtwork() (domain.Artwork, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.state.Page.Artworks) {
		return domain.Artwork{}, false
	}
	return m.state.Page.Artworks[idx], true
}

// consumePendingFetch turns the latest cursor event into one fetch command.
func (m *Model) consumePendingFetch() tea.Cmd {
	if m.pendingFetch == nil {
		return nil
	}
	req := *m.pendingFetch
	m.pendingFetch = nil
	return m.fetchPage(req.page, req.query)
}

// fetchPage requests one page from the catalog and starts the spinner.
func (m *Model) fetchPage(page int, query string) tea.Cmd {
	m.state.Loading = true
	m.logger.Debugw("requesting page", "page", page, "query", query)

	fetcher := m.fetcher
	fetch := func() tea.Msg {
		result, err := fetcher.FetchPage(context.Background(), page, query)
		return pageLoadedMsg{page: page, query: query, result: result, err: err}
	}
	return tea.Batch(fetch, m.spinner.Tick)
}

// openDetail hands the terminal to the pager for one artwork.
func (m *Model) openDetail(art domain.Artwork) tea.Cmd {
	detail := m.detailOps
	return func() tea.Msg {
		err := detail.ShowArtwork(art)
		return detailClosedMsg{err: err}
	}
}

// clearStatusSoon fades the transient status message.
func (m *Model) clearStatusSoon() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// syncTable rebuilds the table rows from the page and its checkboxes and
// mirrors the cursor position into the pager.
func (m *Model) syncTable() {
	rows := make([]table.Row, 0, len(m.state.Page.Artworks))
	for _, art := range m.state.Page.Artworks {
		mark := "[ ]"
		if m.state.IsChecked(art.ID) {
			mark = "[x]"
		}

		row := table.Row{mark, art.Title, art.ArtistDisplay}
		if m.config.UISettings.ShowDates {
			row = append(row, formatDates(art.DateStart, art.DateEnd))
		}
		if m.config.UISettings.ShowOrigin {
			row = append(row, art.PlaceOfOrigin)
		}
		rows = append(rows, row)
	}

	m.table.SetRows(rows)
	if cur := m.table.Cursor(); cur >= len(rows) {
		last := len(rows) - 1
		if last < 0 {
			last = 0
		}
		m.table.SetCursor(last)
	}

	m.updatePaginator()
}

// updatePaginator mirrors the cursor position into the dots pager.
func (m *Model) updatePaginator() {
	totalPages := m.state.Page.TotalPages()
	if totalPages < 1 {
		totalPages = 1
	}
	m.paginator.TotalPages = totalPages

	page, _ := m.coord.QueryState()
	current := page - 1
	if current < 0 {
		current = 0
	}
	if current >= totalPages {
		current = totalPages - 1
	}
	m.paginator.Page = current
}

// updateLayout resizes the table to the terminal.
func (m *Model) updateLayout() {
	if m.width <= 0 {
		return
	}

	m.table.SetColumns(tableColumns(m.config, m.width))
	m.table.SetWidth(m.width - 4)

	height := m.height - 10 // title, prompt, pager, status and footer chrome
	if height < 5 {
		height = 5
	}
	if height > domain.PageSize+1 {
		height = domain.PageSize + 1
	}
	m.table.SetHeight(height)
}

// tableColumns sizes the grid to the terminal, growing the title column.
func tableColumns(cfg *config.Config, width int) []table.Column {
	if width <= 0 {
		width = 80
	}

	cols := []table.Column{
		{Title: " ", Width: 3},
		{Title: "Title", Width: 0}, // sized below from what is left
		{Title: "Artist", Width: 28},
	}
	if cfg.UISettings.ShowDates {
		cols = append(cols, table.Column{Title: "Dates", Width: 11})
	}
	if cfg.UISettings.ShowOrigin {
		cols = append(cols, table.Column{Title: "Origin", Width: 16})
	}

	used := 0
	for _, c := range cols {
		used += c.Width + 2 // cell padding
	}
	titleWidth := width - 4 - used
	if titleWidth < 20 {
		titleWidth = 20
	}
	cols[1].Width = titleWidth

	return cols
}

// formatDates renders an artwork date range, collapsing unknown years.
func formatDates(start, end int) string {
	switch {
	case start == 0 && end == 0:
		return ""
	case start == end:
		return strconv.Itoa(start)
	case start == 0:
		return strconv.Itoa(end)
	case end == 0:
		return strconv.Itoa(start)
	default:
		return fmt.Sprintf("%d-%d", start, end)
	}
}
