package cli

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/masadraza1122/pixalpromt/internal/logging"
	"github.com/spf13/cobra"
)

var browseCmd = LeafCommand{
	Use:   "browse",
	Short: "Browse prompt cards interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(app *App) error {
			return runBrowse(cmd, app)
		})
	},
}.Build()

func runBrowse(cmd *cobra.Command, app *App) error {
	out := cmd.OutOrStdout()

	// Non-TTY fallback: print the static listing
	if !logging.IsTerminal(out) {
		return runList(cmd, app, listOptions{})
	}

	ctx := cmdContext(cmd)
	m := newBrowseModel(ctx, app)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(out), tea.WithContext(ctx))
	final, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	if err != nil {
		return err
	}

	fm, _ := final.(browseModel)
	opts := generateOptions{animate: true, revealInterval: app.Config.Generate.RevealInterval}
	return openChosenCard(cmd, app, fm, opts, newPromptKit(false))
}

// openChosenCard runs the generate flow for the card picked with enter, if
// any. The browser has already left the alternate screen by then.
func openChosenCard(cmd *cobra.Command, app *App, m browseModel, opts generateOptions, kit promptKit) error {
	if m.chosen == "" {
		return nil
	}
	return runGenerate(cmd, app, m.chosen, opts, kit)
}
