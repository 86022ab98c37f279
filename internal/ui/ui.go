package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"selektah/internal/formatter"
	"selektah/internal/models"
	"selektah/internal/services"
	"selektah/internal/shared"
	"selektah/internal/tasks"
	"selektah/internal/views"
)

// Section is one top-level tab of the TUI.
type Section int

const (
	HomeSection Section = iota
	BoardSection
	LibrarySection
	ExcludedSection
	PlaysSection
)

func (s Section) String() string {
	switch s {
	case HomeSection:
		return "Home"
	case BoardSection:
		return "Big Board"
	case LibrarySection:
		return "Library"
	case ExcludedSection:
		return "Excluded"
	case PlaysSection:
		return "Plays"
	default:
		return ""
	}
}

var sections = []Section{HomeSection, BoardSection, LibrarySection, ExcludedSection, PlaysSection}

// Overlay is a modal layer stacked on the active section.
type Overlay int

const (
	overlayNone Overlay = iota
	overlayConfirmExclude
	overlayDetail
	overlaySyncMenu
	overlaySync
	overlaySearch
)

// editField says which override the detail card's input edits.
type editField int

const (
	editNone editField = iota
	editMaster
	editRelease
	editYear
)

func (f editField) label() string {
	switch f {
	case editMaster:
		return "master id or url"
	case editRelease:
		return "release id or url"
	case editYear:
		return "display year (empty clears)"
	}
	return ""
}

// row is one selectable line of a browse view: either a group header or a
// record within one.
type row struct {
	header bool
	label  string
	rec    views.Record
}

// Model represents the TUI application state.
type Model struct {
	ctx     context.Context
	svc     services.Service
	review  *tasks.ReviewEngine
	monitor *tasks.Monitor
	editor  *tasks.OverrideEditor
	events  <-chan tasks.Event

	width  int
	height int

	section Section
	overlay Overlay
	keys    keyMap
	help    help.Model
	status  string

	stats           *models.Stats
	deck            *models.Album
	deckFromHistory bool

	boardNav     *views.Navigator
	boardGen     string
	boardRecords []views.Record
	boardCursor  int

	libNav    *views.Navigator
	libGen    string
	libAlbums []models.Album
	libCursor int

	historyPage  *models.HistoryPage
	historyNum   int
	historyPer   int
	historyList  list.Model
	excludedList list.Model
	playsList    list.Model

	search textinput.Model

	syncUpdates <-chan tasks.Update
	syncState   tasks.Update
	syncCursor  int

	detail      *models.Album
	detailDates []string
	editField   editField
	editInput   textinput.Model
}

// NewModel creates a new TUI model with the provided dependencies. The hub
// carries invalidation events between the review engine, the monitor, the
// override editor and this model.
func NewModel(ctx context.Context, svc services.Service, review *tasks.ReviewEngine, monitor *tasks.Monitor, editor *tasks.OverrideEditor, hub *tasks.Hub, historyPerPage int) *Model {
	if historyPerPage <= 0 {
		historyPerPage = 10
	}

	search := textinput.New()
	search.Placeholder = "artist or title"
	search.CharLimit = 80

	edit := textinput.New()
	edit.CharLimit = 120

	newList := func(title string) list.Model {
		l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
		l.Title = title
		l.SetShowHelp(false)
		return l
	}

	return &Model{
		ctx:          ctx,
		svc:          svc,
		review:       review,
		monitor:      monitor,
		editor:       editor,
		events:       hub.Subscribe(),
		historyPer:   historyPerPage,
		keys:         newKeyMap(),
		help:         help.New(),
		boardNav:     views.NewNavigator(views.State{Facet: views.FacetRank}),
		libNav:       views.NewNavigator(views.State{Facet: views.FacetArtist}),
		historyList:  newList("Recent selections"),
		excludedList: newList("Excluded albums"),
		playsList:    newList("Most played"),
		search:       search,
		editInput:    edit,
	}
}

// Init loads the home section. Board and library fetch lazily on first
// visit; no album is selected until the user asks for one.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.fetchStats(), m.fetchHistory(1), m.waitForEvent())
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		for _, l := range []*list.Model{&m.historyList, &m.excludedList, &m.playsList} {
			l.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)

	case statsMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.stats = msg.stats
		return m, nil

	case boardMsg:
		if msg.gen != m.boardGen {
			return m, nil
		}
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.boardRecords = views.FromBoard(msg.entries)
		m.boardCursor = 0
		return m, nil

	case libraryMsg:
		if msg.gen != m.libGen {
			return m, nil
		}
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.libAlbums = msg.page.Albums
		m.libCursor = 0
		return m, nil

	case historyMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.historyPage = msg.page
		m.historyNum = msg.num
		var items []list.Item
		if msg.num > 1 {
			items = m.historyList.Items()
		}
		for _, h := range msg.page.History {
			items = append(items, historyItem{entry: h})
		}
		return m, m.historyList.SetItems(items)

	case excludedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		items := make([]list.Item, len(msg.albums))
		for i, a := range msg.albums {
			items[i] = excludedItem{album: a}
		}
		return m, m.excludedList.SetItems(items)

	case playsMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		items := make([]list.Item, len(msg.page.Albums))
		for i, s := range msg.page.Albums {
			items[i] = playItem{stat: s}
		}
		return m, m.playsList.SetItems(items)

	case deckMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.deck, m.deckFromHistory = m.review.Current()
		m.status = ""
		return m, nil

	case actionMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.deck, m.deckFromHistory = m.review.Current()
		return m, nil

	case detailMsg:
		if msg.err != nil {
			m.overlay = overlayNone
			return m.fail(msg.err)
		}
		m.detail = msg.album
		m.detailDates = msg.dates
		return m, nil

	case overrideMsg:
		if msg.err != nil {
			// Validation and save failures leave the form as it was.
			return m.fail(msg.err)
		}
		m.editField = editNone
		m.editInput.Blur()
		m.status = ""
		return m, nil

	case browserMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		return m, nil

	case syncStartedMsg:
		if msg.err != nil {
			m.overlay = overlayNone
			return m.fail(msg.err)
		}
		m.syncUpdates = msg.updates
		m.syncState = tasks.Update{}
		m.overlay = overlaySync
		return m, m.waitForSync()

	case syncUpdateMsg:
		m.syncState = tasks.Update(msg)
		if m.syncState.Err != nil {
			m.overlay = overlayNone
			m.syncUpdates = nil
			return m.fail(m.syncState.Err)
		}
		return m, m.waitForSync()

	case syncClosedMsg:
		m.syncUpdates = nil
		m.overlay = overlayNone
		return m, nil

	case invalidationMsg:
		return m, tea.Batch(m.applyInvalidation(tasks.Event(msg)), m.waitForEvent())
	}

	return m.updateLists(msg)
}

func (m *Model) fail(err error) (tea.Model, tea.Cmd) {
	m.status = services.UserMessage(err)
	return m, nil
}

// applyInvalidation refetches whatever an event marked stale.
func (m *Model) applyInvalidation(e tasks.Event) tea.Cmd {
	switch e.Kind {
	case tasks.EventStatsStale:
		return m.fetchStats()
	case tasks.EventHistoryStale:
		return m.fetchHistory(1)
	case tasks.EventAlbumChanged:
		var cmds []tea.Cmd
		if m.deck != nil && m.deck.AlbumID == e.AlbumID {
			cmds = append(cmds, m.refreshDeck())
		}
		if m.overlay == overlayDetail && m.detail != nil && m.detail.AlbumID == e.AlbumID {
			cmds = append(cmds, m.fetchDetail(e.AlbumID))
		}
		return tea.Batch(cmds...)
	}
	return nil
}

func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.overlay {
	case overlayConfirmExclude:
		return m.handleConfirmExcludeKeys(msg)
	case overlayDetail:
		return m.handleDetailKeys(msg)
	case overlaySyncMenu:
		return m.handleSyncMenuKeys(msg)
	case overlaySync:
		// Progress is modal; the job keeps running server-side if the user
		// bails out of the TUI entirely.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	case overlaySearch:
		return m.handleSearchKeys(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		return m.nextSection()
	case "S":
		m.overlay = overlaySyncMenu
		m.syncCursor = 0
		return m, nil
	}

	switch m.section {
	case HomeSection:
		return m.handleHomeKeys(msg)
	case BoardSection:
		return m.handleBrowseKeys(msg, m.boardNav, &m.boardCursor, boardFacets)
	case LibrarySection:
		return m.handleBrowseKeys(msg, m.libNav, &m.libCursor, libraryFacets)
	case ExcludedSection:
		return m.handleExcludedKeys(msg)
	case PlaysSection:
		return m.updateLists(msg)
	}
	return m, nil
}

func (m *Model) nextSection() (tea.Model, tea.Cmd) {
	m.section = sections[(int(m.section)+1)%len(sections)]
	m.status = ""
	switch m.section {
	case BoardSection:
		m.boardNav.Reset()
		return m, m.fetchBoard()
	case LibrarySection:
		m.libNav.Reset()
		return m, m.fetchLibrary()
	case ExcludedSection:
		return m, m.fetchExcluded()
	case PlaysSection:
		return m, m.fetchPlays()
	}
	return m, nil
}

func (m *Model) handleHomeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "n":
		return m, m.deckCmd(m.review.SelectNext)
	case "p":
		return m, m.deckCmd(m.review.GoPrevious)
	case "l":
		return m, m.actionCmd(m.review.MarkListened)
	case "s":
		return m, m.actionCmd(m.review.MarkSkipped)
	case "x":
		if m.deck != nil {
			m.overlay = overlayConfirmExclude
		}
		return m, nil
	case "d":
		if m.deck != nil {
			m.overlay = overlayDetail
			m.detail = nil
			return m, m.fetchDetail(m.deck.AlbumID)
		}
		return m, nil
	case "m":
		if m.historyPage != nil && len(m.historyList.Items()) < m.historyPage.Total {
			return m, m.fetchHistory(m.historyNum + 1)
		}
		return m, nil
	}
	return m.updateLists(msg)
}

var (
	boardFacets   = []views.Facet{views.FacetRank, views.FacetDecade, views.FacetGenre, views.FacetHeatmap}
	libraryFacets = []views.Facet{views.FacetArtist, views.FacetTitle, views.FacetMasterYear, views.FacetReleaseYear}
)

func cycleFacet(current views.Facet, order []views.Facet) views.Facet {
	for i, f := range order {
		if f == current {
			return order[(i+1)%len(order)]
		}
	}
	return order[0]
}

func (m *Model) handleBrowseKeys(msg tea.KeyMsg, nav *views.Navigator, cursor *int, facets []views.Facet) (tea.Model, tea.Cmd) {
	rendered := m.renderedModel(nav)
	rows := modelRows(rendered)

	switch msg.String() {
	case "up", "k":
		if *cursor > 0 {
			*cursor--
		}
		return m, nil
	case "down", "j":
		if *cursor < len(rows)-1 {
			*cursor++
		}
		return m, nil
	case "enter":
		if *cursor < len(rows) {
			r := rows[*cursor]
			if r.header {
				nav.SelectGroup(r.label)
				*cursor = 0
				return m, nil
			}
			m.overlay = overlayDetail
			m.detail = nil
			if r.rec.AlbumID != 0 {
				return m, m.fetchDetail(r.rec.AlbumID)
			}
			// Unowned board rows have no album behind them.
			m.overlay = overlayNone
			return m, nil
		}
		return m, nil
	case "esc":
		nav.Back()
		*cursor = 0
		return m, nil
	case "f":
		nav.SetFacet(cycleFacet(nav.State().Facet, facets))
		*cursor = 0
		if nav == m.libNav && nav.State().Facet.Library() {
			// The service pre-sorts the library per facet.
			return m, m.fetchLibrary()
		}
		return m, nil
	case "o":
		nav.ToggleOrder()
		if nav == m.libNav {
			return m, m.fetchLibrary()
		}
		return m, nil
	case "w":
		if nav == m.boardNav {
			nav.SetOwnership(nextOwnership(nav.State().Ownership))
			*cursor = 0
		}
		return m, nil
	case "/":
		m.overlay = overlaySearch
		m.search.SetValue(nav.State().Query)
		return m, m.search.Focus()
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		if len(rendered.YearChips) > 0 {
			idx := int(msg.String()[0] - '1')
			if idx < len(rendered.YearChips) {
				nav.SelectYear(rendered.YearChips[idx])
				*cursor = 0
			}
		}
		return m, nil
	}
	return m, nil
}

func nextOwnership(o views.Ownership) views.Ownership {
	switch o {
	case views.OwnershipAll:
		return views.OwnershipOwned
	case views.OwnershipOwned:
		return views.OwnershipUnowned
	default:
		return views.OwnershipAll
	}
}

func (m *Model) handleExcludedKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "u" || msg.String() == "enter" {
		if item, ok := m.excludedList.SelectedItem().(excludedItem); ok {
			return m, m.unexclude(item.album.AlbumID)
		}
		return m, nil
	}
	return m.updateLists(msg)
}

func (m *Model) handleConfirmExcludeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		m.overlay = overlayNone
		return m, m.deckCmd(m.review.Exclude)
	case "n", "esc", "q":
		m.overlay = overlayNone
		return m, nil
	}
	return m, nil
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editField != editNone {
		return m.handleEditKeys(msg)
	}

	switch msg.String() {
	case "esc", "q", "d":
		m.overlay = overlayNone
		m.detail = nil
		return m, nil
	case "m":
		return m.startEdit(editMaster)
	case "r":
		return m.startEdit(editRelease)
	case "y":
		return m.startEdit(editYear)
	case "c":
		if m.detail != nil {
			return m, m.overrideCmd(func(ctx context.Context, id int64) error {
				return m.editor.ClearMaster(ctx, id)
			})
		}
		return m, nil
	case "u":
		if m.detail != nil {
			return m, m.overrideCmd(func(ctx context.Context, id int64) error {
				return m.editor.UseReleaseAsMaster(ctx, id)
			})
		}
		return m, nil
	case "b":
		if m.detail != nil && m.detail.DiscogsURL != "" {
			url := m.detail.DiscogsURL
			return m, func() tea.Msg {
				return browserMsg{err: shared.OpenBrowser(url)}
			}
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) startEdit(field editField) (tea.Model, tea.Cmd) {
	if m.detail == nil {
		return m, nil
	}
	m.editField = field
	m.editInput.SetValue("")
	m.editInput.Placeholder = field.label()
	m.editInput.Focus()
	m.status = ""
	return m, nil
}

// handleEditKeys drives the override input on the detail card. The form
// stays open on a validation error so the value can be corrected.
func (m *Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editField = editNone
		m.editInput.Blur()
		return m, nil
	case "enter":
		field, value := m.editField, m.editInput.Value()
		return m, m.overrideCmd(func(ctx context.Context, id int64) error {
			switch field {
			case editMaster:
				return m.editor.SaveMaster(ctx, id, value)
			case editRelease:
				return m.editor.SaveRelease(ctx, id, value)
			default:
				return m.editor.SaveYear(ctx, id, value)
			}
		})
	}
	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

func (m *Model) overrideCmd(save func(context.Context, int64) error) tea.Cmd {
	albumID := m.detail.AlbumID
	return func() tea.Msg {
		return overrideMsg{err: save(m.ctx, albumID)}
	}
}

func (m *Model) handleSyncMenuKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	jobs := services.Jobs()
	switch msg.String() {
	case "up", "k":
		if m.syncCursor > 0 {
			m.syncCursor--
		}
	case "down", "j":
		if m.syncCursor < len(jobs)-1 {
			m.syncCursor++
		}
	case "enter":
		return m, m.startSync(jobs[m.syncCursor])
	case "esc", "q":
		m.overlay = overlayNone
	}
	return m, nil
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	nav := m.activeNav()
	switch msg.String() {
	case "esc":
		nav.SetQuery("")
		m.search.SetValue("")
		m.search.Blur()
		m.overlay = overlayNone
		return m, nil
	case "enter":
		m.search.Blur()
		m.overlay = overlayNone
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	nav.SetQuery(m.search.Value())
	return m, cmd
}

func (m *Model) activeNav() *views.Navigator {
	if m.section == LibrarySection {
		return m.libNav
	}
	return m.boardNav
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.section {
	case HomeSection:
		m.historyList, cmd = m.historyList.Update(msg)
	case ExcludedSection:
		m.excludedList, cmd = m.excludedList.Update(msg)
	case PlaysSection:
		m.playsList, cmd = m.playsList.Update(msg)
	}
	return m, cmd
}

// renderedModel recomputes the browse model for the navigator's section.
// Rendering is pure, so this stays in sync with every filter change for free.
func (m *Model) renderedModel(nav *views.Navigator) views.Model {
	if nav == m.libNav {
		return views.Render(views.FromAlbums(m.libAlbums), nav.State())
	}
	return views.Render(m.boardRecords, nav.State())
}

func modelRows(rendered views.Model) []row {
	var rows []row
	switch rendered.Mode {
	case views.ModeGrouped:
		for _, g := range rendered.Groups {
			rows = append(rows, row{header: true, label: g.Label})
			for _, r := range g.Records {
				rows = append(rows, row{rec: r})
			}
		}
	case views.ModeFlat, views.ModeDrilled:
		for _, r := range rendered.Flat {
			rows = append(rows, row{rec: r})
		}
	}
	return rows
}

func (m *Model) fetchStats() tea.Cmd {
	return func() tea.Msg {
		stats, err := m.svc.Stats(m.ctx)
		return statsMsg{stats: stats, err: err}
	}
}

func (m *Model) fetchBoard() tea.Cmd {
	gen := shared.GenerateID()
	m.boardGen = gen
	return func() tea.Msg {
		entries, err := m.svc.BigBoard(m.ctx)
		return boardMsg{gen: gen, entries: entries, err: err}
	}
}

func (m *Model) fetchLibrary() tea.Cmd {
	gen := shared.GenerateID()
	m.libGen = gen
	s := m.libNav.State()
	sort := "artist"
	if s.Facet.Library() {
		sort = s.Facet.String()
	}
	order := s.Order.String()
	return func() tea.Msg {
		page, err := m.svc.Library(m.ctx, sort, order)
		return libraryMsg{gen: gen, page: page, err: err}
	}
}

func (m *Model) fetchHistory(num int) tea.Cmd {
	return func() tea.Msg {
		page, err := m.svc.History(m.ctx, num, m.historyPer)
		return historyMsg{num: num, page: page, err: err}
	}
}

func (m *Model) fetchExcluded() tea.Cmd {
	return func() tea.Msg {
		albums, err := m.svc.Excluded(m.ctx)
		views.SortByArtist(albums)
		return excludedMsg{albums: albums, err: err}
	}
}

func (m *Model) fetchPlays() tea.Cmd {
	return func() tea.Msg {
		page, err := m.svc.ListeningStats(m.ctx)
		return playsMsg{page: page, err: err}
	}
}

func (m *Model) fetchDetail(albumID int64) tea.Cmd {
	return func() tea.Msg {
		album, err := m.svc.Album(m.ctx, albumID)
		if err != nil {
			return detailMsg{err: err}
		}
		dates, err := m.svc.PlayDates(m.ctx, albumID)
		if err != nil {
			return detailMsg{err: err}
		}
		return detailMsg{album: album, dates: dates}
	}
}

func (m *Model) refreshDeck() tea.Cmd {
	return func() tea.Msg {
		album, err := m.review.RefreshCurrent(m.ctx)
		return deckMsg{album: album, err: err}
	}
}

func (m *Model) deckCmd(move func(context.Context) (*models.Album, error)) tea.Cmd {
	return func() tea.Msg {
		album, err := move(m.ctx)
		return deckMsg{album: album, err: err}
	}
}

func (m *Model) actionCmd(act func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return actionMsg{err: act(m.ctx)}
	}
}

func (m *Model) unexclude(albumID int64) tea.Cmd {
	return func() tea.Msg {
		if err := m.svc.Unexclude(m.ctx, albumID); err != nil {
			return actionMsg{err: err}
		}
		albums, err := m.svc.Excluded(m.ctx)
		return excludedMsg{albums: albums, err: err}
	}
}

func (m *Model) startSync(job services.SyncJob) tea.Cmd {
	return func() tea.Msg {
		updates, err := m.monitor.Start(m.ctx, job)
		return syncStartedMsg{updates: updates, err: err}
	}
}

func (m *Model) waitForSync() tea.Cmd {
	updates := m.syncUpdates
	return func() tea.Msg {
		if updates == nil {
			return syncClosedMsg{}
		}
		u, ok := <-updates
		if !ok {
			return syncClosedMsg{}
		}
		return syncUpdateMsg(u)
	}
}

func (m *Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		e, ok := <-m.events
		if !ok {
			return nil
		}
		return invalidationMsg(e)
	}
}

// View renders the UI based on the current section and overlay.
func (m *Model) View() string {
	switch m.overlay {
	case overlayConfirmExclude:
		return m.renderConfirmExclude()
	case overlayDetail:
		return m.renderDetail()
	case overlaySyncMenu:
		return m.renderSyncMenu()
	case overlaySync:
		return m.renderSync()
	}

	var body string
	switch m.section {
	case HomeSection:
		body = m.renderHome()
	case BoardSection:
		body = m.renderBrowse(m.boardNav, m.boardCursor)
	case LibrarySection:
		body = m.renderBrowse(m.libNav, m.libCursor)
	case ExcludedSection:
		body = m.excludedList.View()
	case PlaysSection:
		body = m.playsList.View()
	}

	out := m.renderTabs() + "\n" + body
	if m.overlay == overlaySearch {
		out += "\n" + styles.accent.Render("search: ") + m.search.View()
	}
	if m.status != "" {
		out += "\n" + styles.err.Render(m.status)
	}
	return out + "\n" + m.help.View(m.keys)
}

func (m *Model) renderTabs() string {
	parts := make([]string, len(sections))
	for i, s := range sections {
		label := s.String()
		if s == m.section {
			parts[i] = styles.accent.Render("[" + label + "]")
		} else {
			parts[i] = styles.tab.Render(" " + label + " ")
		}
	}
	return strings.Join(parts, " ")
}

func (m *Model) renderHome() string {
	var b strings.Builder

	if m.stats != nil {
		fmt.Fprintf(&b, "%d albums • %d ranked • %d listened • %d excluded\n\n",
			m.stats.TotalAlbums, m.stats.BigBoardRanked, m.stats.UniqueListened, m.stats.Excluded)
		if m.stats.TotalAlbums == 0 {
			b.WriteString(styles.title.Render("Welcome"))
			b.WriteString("\n\nYour collection is empty. Press S and run a Discogs sync to import it.\n")
			return b.String()
		}
	}

	if m.deck == nil {
		b.WriteString(styles.title.Render("Nothing on deck"))
		b.WriteString("\n\nPress n to select an album.\n")
	} else {
		title := fmt.Sprintf("%s - %s", m.deck.Artist, m.deck.Title)
		if m.deck.DisplayYear != 0 {
			title = fmt.Sprintf("%s (%d)", title, m.deck.DisplayYear)
		}
		b.WriteString(styles.title.Render(title))
		b.WriteString("\n")
		if len(m.deck.Genres) > 0 {
			b.WriteString(strings.Join(m.deck.Genres, ", ") + "\n")
		}
		if m.deck.BigBoardRank != 0 {
			fmt.Fprintf(&b, "Big Board #%d\n", m.deck.BigBoardRank)
		}
		switch {
		case m.deck.DidListen:
			b.WriteString(styles.ok.Render("✓ Listened") + "\n")
		case m.deck.Skipped:
			b.WriteString(styles.warn.Render("Skipped") + "\n")
		default:
			b.WriteString("l listen • s skip • x exclude • d detail\n")
		}
		if m.deckFromHistory {
			b.WriteString(styles.help.Render("(from history)") + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.historyList.View())
	if m.historyPage != nil && len(m.historyList.Items()) < m.historyPage.Total {
		b.WriteString("\n" + styles.help.Render("m load more"))
	}
	return b.String()
}

func (m *Model) renderBrowse(nav *views.Navigator, cursor int) string {
	rendered := m.renderedModel(nav)
	s := nav.State()

	var b strings.Builder
	fmt.Fprintf(&b, "group: %s • order: %s", s.Facet, s.Order)
	if nav == m.boardNav {
		fmt.Fprintf(&b, " • show: %s", s.Ownership)
	}
	if s.Query != "" {
		fmt.Fprintf(&b, " • search: %q", s.Query)
	}
	b.WriteString("\n")

	if rendered.Mode == views.ModeHeatmap {
		b.WriteString(formatter.HeatmapMatrix(rendered.Heatmap))
		b.WriteString("\n")
		fmt.Fprintf(&b, "%d of %d shown\n", rendered.Shown, rendered.Total)
		return b.String()
	}

	if rendered.Breadcrumb != "" {
		b.WriteString(styles.accent.Render(rendered.Breadcrumb) + "\n")
	}
	if len(rendered.YearChips) > 0 {
		chips := make([]string, len(rendered.YearChips))
		for i, y := range rendered.YearChips {
			chips[i] = fmt.Sprintf("%d:%d", i+1, y)
		}
		b.WriteString(styles.help.Render("years "+strings.Join(chips, " ")) + "\n")
	}

	rows := modelRows(rendered)
	b.WriteString(m.renderRows(rows, cursor))
	fmt.Fprintf(&b, "%d of %d shown\n", rendered.Shown, rendered.Total)
	return b.String()
}

// renderRows windows the row list around the cursor so long collections stay
// on screen.
func (m *Model) renderRows(rows []row, cursor int) string {
	window := m.height - 10
	if window < 5 {
		window = 5
	}
	start := 0
	if cursor >= window {
		start = cursor - window + 1
	}
	end := start + window
	if end > len(rows) {
		end = len(rows)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		r := rows[i]
		line := ""
		if r.header {
			line = styles.title.Render(r.label)
		} else {
			line = fmt.Sprintf("  %s - %s", r.rec.Artist, r.rec.Title)
			if r.rec.Rank != 0 {
				line = fmt.Sprintf("  #%-4d %s - %s", r.rec.Rank, r.rec.Artist, r.rec.Title)
			}
			if r.rec.DisplayYear != 0 {
				line = fmt.Sprintf("%s (%d)", line, r.rec.DisplayYear)
			}
			if !r.rec.Owned {
				line += styles.help.Render("  unowned")
			}
		}
		if i == cursor {
			line = styles.accent.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m *Model) renderConfirmExclude() string {
	if m.deck == nil {
		return ""
	}
	title := styles.title.Render(fmt.Sprintf("Exclude '%s - %s'?", m.deck.Artist, m.deck.Title))
	info := "\nIt will no longer come up when selecting albums.\nThe next album is selected right away.\n"
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.yes, m.keys.no})
	return fmt.Sprintf("%s\n%s\n%s", title, info, helpView)
}

func (m *Model) renderDetail() string {
	if m.detail == nil {
		return styles.help.Render("Loading...")
	}
	out := formatter.AlbumDetail(m.detail, m.detailDates)
	if m.editField != editNone {
		form := styles.accent.Render(m.editField.label()+": ") + m.editInput.View()
		footer := styles.help.Render("enter save • esc cancel")
		return fmt.Sprintf("%s\n%s\n%s", out, form, footer)
	}
	footer := styles.help.Render("m master • r release • y year • c clear master • u use release • b browser • esc close")
	return fmt.Sprintf("%s\n%s", out, footer)
}

func (m *Model) renderSyncMenu() string {
	var b strings.Builder
	b.WriteString(styles.title.Render("Start sync"))
	b.WriteString("\n\n")
	for i, job := range services.Jobs() {
		cursor := "  "
		if i == m.syncCursor {
			cursor = styles.accent.Render("> ")
		}
		fmt.Fprintf(&b, "%s%s\n", cursor, job)
	}
	b.WriteString("\n" + m.help.ShortHelpView([]key.Binding{m.keys.enter, m.keys.back}))
	return b.String()
}

func (m *Model) renderSync() string {
	u := m.syncState
	width := 30
	filled := u.Percent * width / 100
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	label := fmt.Sprintf("%d%%", u.Percent)
	if u.Indeterminate {
		label = "working..."
	}
	if u.Done {
		label = styles.ok.Render("done")
	}

	title := styles.title.Render("Syncing")
	return fmt.Sprintf("%s\n\n%s %s\n%s\n", title, bar, label, u.Message)
}
