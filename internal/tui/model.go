// Package tui is a terminal browser for the catalog, news feed, and
// favorites, driven by the same feed/window engine the web client uses.
package tui

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"nextplay/internal/client/freetogame"
	"nextplay/internal/client/gnews"
	"nextplay/internal/engine"
	"nextplay/internal/models"
	"nextplay/internal/service"
)

// Terminal cells are mapped into the engine's pixel-denominated layout
// units so the same breakpoints and row estimates apply.
const (
	cellWidthPx  = 16
	lineHeightPx = 24
	cardLines    = 4

	// revealDelay holds freshly loaded items back for one beat so rows
	// appear in a settled batch rather than mid-scroll.
	revealDelay = 200 * time.Millisecond

	// sentinelMargin is how close to the end (in layout px) scrolling may
	// get before the next page is requested.
	sentinelMargin = 400
)

type tab int

const (
	tabGames tab = iota
	tabNews
	tabFavorites
)

var tabNames = []string{"Games", "News", "Favorites"}

func (t tab) route() string { return tabNames[t] }

type gamesLoadedMsg struct{ err error }
type newsLoadedMsg struct{ err error }
type favoritesLoadedMsg struct {
	items []models.Favorite
	err   error
}
type revealMsg struct{ tab tab }
type restoreMsg struct {
	tab  tab
	step int
}
type favoriteToggledMsg struct {
	gameID int
	add    bool
	err    error
}

// Model is the bubbletea model for the browser.
type Model struct {
	client *APIClient

	games *engine.Feed[freetogame.Game]
	news  *engine.Feed[gnews.Article]

	window  *engine.Window
	scroll  *engine.ScrollMemory
	spinner spinner.Model

	favorites   []models.Favorite
	favoriteIDs map[int]bool

	active    tab
	scrollTop int
	revealed  map[tab]int

	platformIdx int
	search      string
	searchMode  bool
	status      string
	width       int
	height      int
	ready       bool
	quitting    bool
}

var platformCycle = []string{"", "pc", "browser"}

func NewModel(client *APIClient, pageSize int) *Model {
	catalog := newCatalogSource(client, pageSize)
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	return &Model{
		spinner:     sp,
		client:      client,
		games:       engine.NewFeed[freetogame.Game](catalog, func(g freetogame.Game) string { return strconv.Itoa(g.ID) }),
		news:        engine.NewFeed[gnews.Article](&trendingSource{client: client}, func(a gnews.Article) string { return a.URL }),
		window:      engine.NewWindow(),
		scroll:      engine.NewScrollMemory(),
		favoriteIDs: map[int]bool{},
		revealed:    map[tab]int{},
	}
}

func (m *Model) Init() tea.Cmd {
	m.games.ResetForFilters(engine.Fingerprint{})
	m.news.ResetForFilters(engine.Fingerprint{})
	return tea.Batch(m.spinner.Tick, m.loadGamesCmd(), m.loadNewsCmd(), m.loadFavoritesCmd())
}

func (m *Model) loadGamesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return gamesLoadedMsg{err: m.games.LoadNextPage(ctx)}
	}
}

func (m *Model) loadNewsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return newsLoadedMsg{err: m.news.LoadNextPage(ctx)}
	}
}

func (m *Model) loadFavoritesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		items, err := m.client.Favorites(ctx)
		return favoritesLoadedMsg{items: items, err: err}
	}
}

func revealCmd(t tab) tea.Cmd {
	return tea.Tick(revealDelay, func(time.Time) tea.Msg { return revealMsg{tab: t} })
}

// restoreCmds replays the saved scroll offset on the restore schedule, so
// the position lands even if rows materialize a few frames late.
func (m *Model) restoreCmds(t tab) []tea.Cmd {
	if _, ok := m.scroll.Restore(t.route()); !ok {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(engine.RestoreSchedule))
	for i, delay := range engine.RestoreSchedule {
		step := i
		if delay == 0 {
			m.applyRestore(t)
			continue
		}
		cmds = append(cmds, tea.Tick(delay, func(time.Time) tea.Msg { return restoreMsg{tab: t, step: step} }))
	}
	return cmds
}

func (m *Model) applyRestore(t tab) {
	if t != m.active {
		return
	}
	if offset, ok := m.scroll.Restore(t.route()); ok {
		m.scrollTop = m.clampScroll(offset)
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.window.SetViewport(m.width*cellWidthPx, m.contentLines()*lineHeightPx)
		m.window.SetRowEstimate(cardLines * lineHeightPx)
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case gamesLoadedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.status = ""
		return m, revealCmd(tabGames)

	case newsLoadedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.status = ""
		return m, revealCmd(tabNews)

	case favoritesLoadedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.setFavorites(msg.items)
		m.revealed[tabFavorites] = len(msg.items)
		return m, nil

	case revealMsg:
		switch msg.tab {
		case tabGames:
			m.revealed[tabGames] = m.games.Len()
		case tabNews:
			m.revealed[tabNews] = m.news.Len()
		}
		return m, nil

	case restoreMsg:
		m.applyRestore(msg.tab)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case favoriteToggledMsg:
		if msg.err != nil {
			// Roll the optimistic flip back.
			m.favoriteIDs[msg.gameID] = !msg.add
			m.status = msg.err.Error()
			return m, m.loadFavoritesCmd()
		}
		return m, m.loadFavoritesCmd()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searchMode {
		switch msg.Type {
		case tea.KeyEnter, tea.KeyEsc:
			if msg.Type == tea.KeyEsc {
				m.search = ""
			}
			m.searchMode = false
		case tea.KeyBackspace:
			if len(m.search) > 0 {
				m.search = m.search[:len(m.search)-1]
			}
		case tea.KeyRunes:
			m.search += string(msg.Runes)
		}
		m.setScroll(0)
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.scroll.Flush(m.active.route(), m.scrollTop)
		m.quitting = true
		return m, tea.Quit

	case "tab", "right", "l":
		return m.switchTab((m.active + 1) % 3)

	case "shift+tab", "left", "h":
		return m.switchTab((m.active + 2) % 3)

	case "down", "j":
		m.setScroll(m.scrollTop + lineHeightPx)
		return m, m.maybeLoadMore()

	case "up", "k":
		m.setScroll(m.scrollTop - lineHeightPx)
		return m, nil

	case "pgdown", " ":
		m.setScroll(m.scrollTop + m.contentLines()*lineHeightPx)
		return m, m.maybeLoadMore()

	case "pgup":
		m.setScroll(m.scrollTop - m.contentLines()*lineHeightPx)
		return m, nil

	case "g", "home":
		m.setScroll(0)
		return m, nil

	case "G", "end":
		m.setScroll(m.window.TotalHeight())
		return m, m.maybeLoadMore()

	case "p":
		if m.active == tabGames {
			m.platformIdx = (m.platformIdx + 1) % len(platformCycle)
			fp := engine.Fingerprint{Platform: platformCycle[m.platformIdx]}
			m.games.ResetForFilters(fp)
			m.revealed[tabGames] = 0
			m.setScroll(0)
			return m, m.loadGamesCmd()
		}
		return m, nil

	case "f":
		if m.active == tabGames {
			return m, m.toggleFavoriteUnderCursor()
		}
		return m, nil

	case "/":
		if m.active == tabGames {
			m.searchMode = true
		}
		return m, nil

	case "r":
		switch m.active {
		case tabGames:
			return m, m.loadGamesCmd()
		case tabNews:
			return m, m.loadNewsCmd()
		default:
			return m, m.loadFavoritesCmd()
		}
	}
	return m, nil
}

func (m *Model) switchTab(next tab) (tea.Model, tea.Cmd) {
	m.scroll.Flush(m.active.route(), m.scrollTop)
	m.active = next
	m.scrollTop = 0
	cmds := m.restoreCmds(next)
	return m, tea.Batch(cmds...)
}

func (m *Model) setScroll(offset int) {
	m.scrollTop = m.clampScroll(offset)
	m.scroll.Save(m.active.route(), m.scrollTop)
}

func (m *Model) clampScroll(offset int) int {
	m.syncWindow()
	max := m.window.TotalHeight() - m.contentLines()*lineHeightPx
	if max < 0 {
		max = 0
	}
	if offset > max {
		offset = max
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// maybeLoadMore fires the next page load when the sentinel comes into
// range. Feed makes overlapping calls no-ops, so firing eagerly is safe.
func (m *Model) maybeLoadMore() tea.Cmd {
	m.syncWindow()
	if !m.window.NearEnd(m.scrollTop, sentinelMargin) {
		return nil
	}
	switch m.active {
	case tabGames:
		if m.games.HasMore() && !m.games.InFlight() {
			return m.loadGamesCmd()
		}
	case tabNews:
		if m.news.HasMore() && !m.news.InFlight() {
			return m.loadNewsCmd()
		}
	}
	return nil
}

func (m *Model) toggleFavoriteUnderCursor() tea.Cmd {
	items := m.visibleGames()
	if len(items) == 0 {
		return nil
	}
	m.syncWindow()
	game := items[0]
	first, _ := m.window.VisibleRange(m.scrollTop)
	start, _ := m.window.RowSpan(first)
	if start < len(items) {
		game = items[start]
	}

	add := !m.favoriteIDs[game.ID]
	m.favoriteIDs[game.ID] = add
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		var err error
		if add {
			err = m.client.AddFavorite(ctx, service.AddFavoriteInput{
				GameID:        game.ID,
				GameTitle:     game.Title,
				GameThumbnail: game.Thumbnail,
				GameGenre:     game.Genre,
				GamePlatform:  game.Platform,
			})
		} else {
			err = m.client.RemoveFavorite(ctx, game.ID)
		}
		return favoriteToggledMsg{gameID: game.ID, add: add, err: err}
	}
}

func (m *Model) setFavorites(items []models.Favorite) {
	m.favorites = items
	m.favoriteIDs = make(map[int]bool, len(items))
	for _, f := range items {
		m.favoriteIDs[f.GameID] = true
	}
}

func (m *Model) contentLines() int {
	lines := m.height - 4
	if lines < 1 {
		lines = 1
	}
	return lines
}

// syncWindow points the shared window at the active tab's item count.
func (m *Model) syncWindow() {
	switch m.active {
	case tabGames:
		m.window.SetItemCount(len(m.visibleGames()))
	case tabNews:
		m.window.SetItemCount(m.revealedCount(tabNews, m.news.Len()))
	default:
		m.window.SetItemCount(len(m.favorites))
	}
}

func (m *Model) revealedCount(t tab, loaded int) int {
	n := m.revealed[t]
	if n > loaded {
		n = loaded
	}
	return n
}

// visibleGames applies the client-side text filter over the revealed
// portion of the accumulated list. Search never touches pagination state.
func (m *Model) visibleGames() []freetogame.Game {
	if m.search != "" {
		needle := strings.ToLower(m.search)
		return m.games.Filtered(func(g freetogame.Game) bool {
			return strings.Contains(strings.ToLower(g.Title), needle) ||
				strings.Contains(strings.ToLower(g.Genre), needle)
		})
	}
	n := m.revealedCount(tabGames, m.games.Len())
	return m.games.Items()[:n]
}
