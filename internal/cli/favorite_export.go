package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/masadraza1122/pixalpromt/internal/catalog"
	"github.com/spf13/cobra"
)

var (
	pdfHeaderColor = props.Color{Red: 20, Green: 120, Blue: 110}
	pdfMutedColor  = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor   = props.Color{Red: 200, Green: 200, Blue: 200}
)

var favoriteExportCmd = LeafCommand{
	Use:     "export [file.pdf]",
	Short:   "Export favorite cards to a PDF",
	Example: "  pixalprompt favorite export\n  pixalprompt favorite export ~/Desktop/favorites.pdf",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output := ""
		if len(args) == 1 {
			output = args[0]
		}
		return withApp(cmd, func(app *App) error {
			return runFavoriteExport(cmd, app, output)
		})
	},
}.Build()

func defaultExportName(now time.Time) string {
	return fmt.Sprintf("pixalprompt-favorites-%s.pdf", now.Format("2006-01-02"))
}

func runFavoriteExport(cmd *cobra.Command, app *App, outputPath string) error {
	w := cmd.OutOrStdout()
	cards := app.Favorites.Cards(app.Catalog)
	if len(cards) == 0 {
		_, _ = fmt.Fprintln(w, Silent("no favorites to export"))
		return nil
	}

	now := app.Now()
	if outputPath == "" {
		outputPath = defaultExportName(now)
	}
	if filepath.Ext(outputPath) == "" {
		outputPath += ".pdf"
	}

	if err := renderFavoritesPDF(cards, now, outputPath); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "%s %s\n", Text(fmt.Sprintf("exported %d favorites to", len(cards))), Primary(outputPath))
	return nil
}

// renderFavoritesPDF writes the favorite cards, grouped by category, to
// outputPath.
func renderFavoritesPDF(cards []catalog.Card, generatedAt time.Time, outputPath string) error {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	m.AddRow(14,
		text.NewCol(12, "PixalPrompt Favorites", props.Text{
			Style: fontstyle.Bold,
			Size:  16,
			Color: &pdfHeaderColor,
		}),
	)
	m.AddRow(8,
		text.NewCol(12, fmt.Sprintf("%d cards - %s", len(cards), generatedAt.Format("January 2, 2006")), props.Text{
			Size:  10,
			Color: &pdfMutedColor,
		}),
	)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(4)

	category := ""
	for _, c := range cards {
		if c.Category != category {
			if category != "" {
				m.AddRow(4)
			}
			category = c.Category
			m.AddRow(8,
				text.NewCol(12, category, props.Text{
					Style: fontstyle.Bold,
					Size:  11,
					Color: &pdfHeaderColor,
				}),
			)
		}

		rating := "-"
		if c.HasRating() {
			rating = c.RatingString()
		}
		m.AddRow(6,
			text.NewCol(2, c.ID, props.Text{Size: 9, Color: &pdfMutedColor}),
			text.NewCol(5, c.Title, props.Text{Style: fontstyle.Bold, Size: 9}),
			text.NewCol(3, c.Subtitle, props.Text{Size: 9}),
			text.NewCol(2, rating, props.Text{Size: 9, Align: align.Right}),
		)
		m.AddRow(5,
			text.NewCol(12, c.ImageURL, props.Text{Size: 7, Color: &pdfMutedColor}),
		)
	}

	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(8,
		text.NewCol(12, "Generate a prompt with: pixalprompt generate <id>", props.Text{
			Size:  8,
			Color: &pdfMutedColor,
		}),
	)

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}

	return doc.Save(outputPath)
}
