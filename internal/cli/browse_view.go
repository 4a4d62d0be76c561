package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/masadraza1122/pixalpromt/internal/catalog"
)

var (
	tabStyle          = lipgloss.NewStyle().Padding(0, 1)
	activeTabStyle    = tabStyle.Reverse(true).Bold(true)
	cardStyle         = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	selectedCardStyle = cardStyle.BorderForeground(lipgloss.Color("#14B8A6"))
	footerStyle       = lipgloss.NewStyle().Faint(true)
)

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	cards := m.cards()
	if len(cards) == 0 {
		if m.favView {
			b.WriteString(Silent("No favorites yet. Press v to go back and f to add one."))
		} else {
			b.WriteString(Silent("No cards in this category."))
		}
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderGrid(cards))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.footerMsg != "" {
		b.WriteString(m.footerMsg)
		b.WriteString("\n")
	}
	b.WriteString(footerStyle.Render("←/→ category  ↑/↓ card  f favorite  v favorites  enter generate  q quit"))
	return b.String()
}

func (m browseModel) renderTabs() string {
	if m.favView {
		return activeTabStyle.Render("♥ Favorites")
	}
	tabs := make([]string, len(m.categories))
	for i, cat := range m.categories {
		if i == m.tab {
			tabs[i] = activeTabStyle.Render(cat)
		} else {
			tabs[i] = tabStyle.Render(Silent(cat))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m browseModel) renderGrid(cards []catalog.Card) string {
	cols := m.columns()
	width := int(catalog.CardWidth(m.termWidth*cellPixelWidth, m.termHeight*cellPixelHeight)) / cellPixelWidth
	if width < 16 {
		width = 16
	}

	var rows []string
	for start := 0; start < len(cards); start += cols {
		end := min(start+cols, len(cards))
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cells = append(cells, m.renderCard(cards[i], width, i == m.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m browseModel) renderCard(c catalog.Card, width int, selected bool) string {
	style := cardStyle
	if selected {
		style = selectedCardStyle
	}
	inner := width - 4

	heart := " "
	if m.favs.Has(c.ID) {
		heart = Error("♥")
	}
	rating := ""
	if c.HasRating() {
		rating = Accent("★ " + c.RatingString())
	}

	lines := []string{
		Primary(padRight(c.Title, inner)),
		Silent(padRight(c.Subtitle, inner)),
		heart + " " + Silent(c.ID) + "  " + rating,
	}
	return style.Width(width - 2).Render(strings.Join(lines, "\n"))
}
