package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/masadraza1122/pixalpromt/internal/catalog"
	"github.com/masadraza1122/pixalpromt/internal/favorite"
)

// Terminal cells are scaled to pseudo-pixels so the grid follows the same
// device classes as the catalog layout.
const (
	cellPixelWidth  = 8
	cellPixelHeight = 16
)

type favoriteToggledMsg struct {
	id  string
	on  bool
	err error
}

type browseModel struct {
	ctx        context.Context
	catalog    *catalog.Catalog
	favs       *favorite.Set
	categories []string
	tab        int
	favView    bool
	cursor     int
	termWidth  int
	termHeight int
	footerMsg  string
	chosen     string // card to open in the generate flow after quitting
}

func newBrowseModel(ctx context.Context, app *App) browseModel {
	return browseModel{
		ctx:        ctx,
		catalog:    app.Catalog,
		favs:       app.Favorites,
		categories: app.Catalog.Categories(),
		termWidth:  100,
		termHeight: 40,
	}
}

// cards returns the cards of the active view.
func (m browseModel) cards() []catalog.Card {
	if m.favView {
		return m.favs.Cards(m.catalog)
	}
	cards, _ := m.catalog.ByCategory(m.categories[m.tab])
	return cards
}

func (m browseModel) columns() int {
	return catalog.Columns(m.termWidth*cellPixelWidth, m.termHeight*cellPixelHeight)
}

func (m browseModel) selected() (catalog.Card, bool) {
	cards := m.cards()
	if m.cursor < 0 || m.cursor >= len(cards) {
		return catalog.Card{}, false
	}
	return cards[m.cursor], true
}

func (m browseModel) clampCursor() browseModel {
	n := len(m.cards())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return m
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) toggleFavorite(id string) tea.Cmd {
	ctx, favs := m.ctx, m.favs
	return func() tea.Msg {
		on, err := favs.Toggle(ctx, id)
		return favoriteToggledMsg{id: id, on: on, err: err}
	}
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case favoriteToggledMsg:
		switch {
		case msg.err != nil:
			m.footerMsg = Error("could not save favorite: " + msg.err.Error())
		case msg.on:
			m.footerMsg = "added " + msg.id + " to favorites"
		default:
			m.footerMsg = "removed " + msg.id + " from favorites"
		}
		m = m.clampCursor()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "right", "l", "tab":
			if !m.favView {
				m.tab = (m.tab + 1) % len(m.categories)
				m.cursor = 0
			}
		case "left", "h", "shift+tab":
			if !m.favView {
				m.tab = (m.tab + len(m.categories) - 1) % len(m.categories)
				m.cursor = 0
			}
		case "down", "j":
			if m.cursor < len(m.cards())-1 {
				m.cursor++
			}
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "v":
			m.favView = !m.favView
			m.cursor = 0
			m.footerMsg = ""
		case "f":
			if card, ok := m.selected(); ok {
				return m, m.toggleFavorite(card.ID)
			}
		case "enter":
			if card, ok := m.selected(); ok {
				m.chosen = card.ID
				return m, tea.Quit
			}
		}
	}
	return m, nil
}
