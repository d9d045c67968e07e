package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 2)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true).
			Padding(0, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	favStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading...\n"
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m *Model) renderTabs() string {
	parts := make([]string, len(tabNames))
	for i, name := range tabNames {
		if tab(i) == m.active {
			parts[i] = activeTabStyle.Render(name)
		} else {
			parts[i] = tabStyle.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// renderContent materializes only the window's visible row range; rows
// outside it never hit the string builder.
func (m *Model) renderContent() string {
	m.syncWindow()
	first, last := m.window.VisibleRange(m.scrollTop)
	if last < first {
		return m.emptyState()
	}

	var b strings.Builder
	budget := m.contentLines()
	lines := 0
	for row := first; row <= last && lines < budget; row++ {
		rendered := m.renderRow(row)
		if rendered == "" {
			continue
		}
		rowLines := strings.Count(rendered, "\n") + 1
		m.window.MeasureRow(row, rowLines*lineHeightPx)
		b.WriteString(rendered)
		b.WriteString("\n")
		lines += rowLines
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) renderRow(row int) string {
	start, end := m.window.RowSpan(row)
	if start >= end {
		return ""
	}
	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		cards = append(cards, m.renderCard(i))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m *Model) renderCard(index int) string {
	cardWidth := m.width / m.window.Columns()
	if cardWidth < 12 {
		cardWidth = 12
	}
	style := lipgloss.NewStyle().Width(cardWidth - 1).MaxWidth(cardWidth - 1)

	switch m.active {
	case tabGames:
		games := m.visibleGames()
		if index >= len(games) {
			return ""
		}
		g := games[index]
		marker := "  "
		if m.favoriteIDs[g.ID] {
			marker = favStyle.Render("* ")
		}
		return style.Render(fmt.Sprintf("%s\n%s\n%s",
			marker+titleStyle.Render(g.Title),
			metaStyle.Render(g.Genre+" · "+g.Platform),
			truncate(g.ShortDescription, cardWidth*2),
		))

	case tabNews:
		n := m.revealedCount(tabNews, m.news.Len())
		articles := m.news.Items()[:n]
		if index >= len(articles) {
			return ""
		}
		a := articles[index]
		return style.Render(fmt.Sprintf("%s\n%s\n%s",
			titleStyle.Render(truncate(a.Title, cardWidth-2)),
			metaStyle.Render(a.Source.Name+" · "+a.PublishedAt),
			truncate(a.Description, cardWidth*2),
		))

	default:
		if index >= len(m.favorites) {
			return ""
		}
		f := m.favorites[index]
		return style.Render(fmt.Sprintf("%s\n%s",
			favStyle.Render("* ")+titleStyle.Render(f.GameTitle),
			metaStyle.Render(f.GameGenre+" · "+f.GamePlatform),
		))
	}
}

func (m *Model) emptyState() string {
	switch m.active {
	case tabGames:
		if m.games.Err() != nil {
			return statusStyle.Render("Could not load games: " + m.games.Err().Error())
		}
		if m.games.InFlight() || !m.games.Loaded() {
			return m.spinner.View() + " Loading games..."
		}
		return "No games match the current filters."
	case tabNews:
		if m.news.Err() != nil {
			return statusStyle.Render("Could not load news: " + m.news.Err().Error())
		}
		if m.news.InFlight() || !m.news.Loaded() {
			return m.spinner.View() + " Loading news..."
		}
		return "No articles."
	default:
		return "No favorites yet. Press f on a game to add one."
	}
}

func (m *Model) renderFooter() string {
	help := "tab: switch | j/k: scroll | /: search | p: platform | f: favorite | r: reload | q: quit"
	if m.searchMode || m.search != "" {
		prompt := "/" + m.search
		if m.searchMode {
			prompt += "_"
		}
		return titleStyle.Render(prompt) + "  " + helpStyle.Render(help)
	}
	if m.status != "" {
		return statusStyle.Render(m.status) + "  " + helpStyle.Render(help)
	}
	counter := ""
	switch m.active {
	case tabGames:
		counter = fmt.Sprintf("%d games", m.revealedCount(tabGames, m.games.Len()))
		if m.games.HasMore() {
			counter += "+"
		}
	case tabNews:
		counter = fmt.Sprintf("%d articles", m.revealedCount(tabNews, m.news.Len()))
		if m.news.HasMore() {
			counter += "+"
		}
	default:
		counter = fmt.Sprintf("%d favorites", len(m.favorites))
	}
	return metaStyle.Render(counter) + "  " + helpStyle.Render(help)
}

func truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
