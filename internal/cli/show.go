package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/masadraza1122/pixalpromt/internal/catalog"
	"github.com/spf13/cobra"
)

// MarkdownRenderer turns markdown into terminal output.
type MarkdownRenderer func(md string) (string, error)

// NewGlamourRenderer renders with glamour's auto-detected style.
func NewGlamourRenderer(width int) MarkdownRenderer {
	return func(md string) (string, error) {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", err
		}
		return r.Render(md)
	}
}

var showCmd = LeafCommand{
	Use:     "show <id>",
	Short:   "Show the details of a prompt card",
	Example: "  pixalprompt show trend1",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(app *App) error {
			return runShow(cmd, app, args[0], NewGlamourRenderer(80))
		})
	},
}.Build()

func runShow(cmd *cobra.Command, app *App, id string, render MarkdownRenderer) error {
	card, err := app.Catalog.Find(id)
	if err != nil {
		return err
	}

	out, err := render(cardMarkdown(app, card))
	if err != nil {
		return fmt.Errorf("render card: %w", err)
	}
	_, _ = fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func cardMarkdown(app *App, card catalog.Card) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", card.Title)
	fmt.Fprintf(&b, "*%s* · %s\n\n", card.Subtitle, card.Category)

	if card.HasRating() {
		fmt.Fprintf(&b, "- **Rating:** ★ %s\n", card.RatingString())
	} else {
		b.WriteString("- **Rating:** not rated yet\n")
	}
	if app.Favorites.Has(card.ID) {
		b.WriteString("- **Favorite:** yes\n")
	} else {
		b.WriteString("- **Favorite:** no\n")
	}
	fmt.Fprintf(&b, "- **Image:** %s\n\n", card.ImageURL)

	b.WriteString("## Generate\n\n")
	if remaining := app.Tracker.Remaining(); remaining < 0 {
		b.WriteString("Premium: unlimited prompts.\n\n")
	} else {
		fmt.Fprintf(&b, "%d of %d free prompts remaining today.\n\n", remaining, app.Tracker.DailyLimit())
	}
	fmt.Fprintf(&b, "```\npixalprompt generate %s\n```\n", card.ID)
	return b.String()
}
