package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/masadraza1122/pixalpromt/internal/catalog"
	"github.com/masadraza1122/pixalpromt/internal/favorite"
	"github.com/spf13/cobra"
)

const (
	idColWidth    = 7
	titleColWidth = 22
)

var listCmd = LeafCommand{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List prompt cards",
	Example: "  pixalprompt list --category trending\n  pixalprompt list --favorites\n  pixalprompt list --search portrait",
	BoolFlags: []BoolFlag{
		{Name: "favorites", Short: "f", Usage: "only show favorite cards"},
	},
	StrFlags: []StringFlag{
		{Name: "category", Short: "c", Usage: "only show cards of this category"},
		{Name: "search", Short: "s", Usage: "match title or subtitle"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts listOptions
		opts.category, _ = cmd.Flags().GetString("category")
		opts.search, _ = cmd.Flags().GetString("search")
		opts.favorites, _ = cmd.Flags().GetBool("favorites")
		return withApp(cmd, func(app *App) error {
			return runList(cmd, app, opts)
		})
	},
}.Build()

type listOptions struct {
	category  string
	search    string
	favorites bool
}

func runList(cmd *cobra.Command, app *App, opts listOptions) error {
	cards, err := selectCards(app, opts)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(cards) == 0 {
		_, _ = fmt.Fprintln(w, Silent("no cards match"))
		return nil
	}

	category := ""
	for _, c := range cards {
		if c.Category != category {
			if category != "" {
				_, _ = fmt.Fprintln(w)
			}
			category = c.Category
			_, _ = fmt.Fprintln(w, Info(category))
		}
		printCardLine(w, c, app.Favorites)
	}
	return nil
}

// selectCards applies the category, favorites and search filters in turn.
func selectCards(app *App, opts listOptions) ([]catalog.Card, error) {
	cards := app.Catalog.All()
	if opts.category != "" {
		var err error
		if cards, err = app.Catalog.ByCategory(opts.category); err != nil {
			return nil, err
		}
	}

	if opts.search != "" {
		matched := map[string]bool{}
		for _, c := range app.Catalog.Search(opts.search) {
			matched[c.ID] = true
		}
		cards = keepCards(cards, func(c catalog.Card) bool { return matched[c.ID] })
	}

	if opts.favorites {
		cards = keepCards(cards, func(c catalog.Card) bool { return app.Favorites.Has(c.ID) })
	}
	return cards, nil
}

func keepCards(cards []catalog.Card, keep func(catalog.Card) bool) []catalog.Card {
	var out []catalog.Card
	for _, c := range cards {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

func printCardLine(w io.Writer, c catalog.Card, favs *favorite.Set) {
	mark := " "
	if favs.Has(c.ID) {
		mark = Error("♥")
	}
	_, _ = fmt.Fprintf(w, "  %s %s %s %s%s\n",
		mark,
		Primary(padRight(c.ID, idColWidth)),
		Text(padRight(c.Title, titleColWidth)),
		Silent(c.Subtitle),
		ratingSuffix(c),
	)
}

func ratingSuffix(c catalog.Card) string {
	if !c.HasRating() {
		return ""
	}
	return "  " + Accent("★ "+c.RatingString())
}

// padRight pads s with spaces to width, truncating if longer.
func padRight(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
