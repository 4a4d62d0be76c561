package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var favoriteCmd = GroupCommand{
	Use:     "favorite",
	Aliases: []string{"fav"},
	Short:   "Manage favorite prompt cards",
	Subcommands: []*cobra.Command{
		favoriteAddCmd,
		favoriteRemoveCmd,
		favoriteToggleCmd,
		favoriteListCmd,
		favoriteExportCmd,
	},
}.Build()

var favoriteAddCmd = LeafCommand{
	Use:   "add <id>",
	Short: "Mark a card as favorite",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(app *App) error {
			return runFavoriteAdd(cmd, app, args[0])
		})
	},
}.Build()

var favoriteRemoveCmd = LeafCommand{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove a card from favorites",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(app *App) error {
			return runFavoriteRemove(cmd, app, args[0])
		})
	},
}.Build()

var favoriteToggleCmd = LeafCommand{
	Use:   "toggle <id>",
	Short: "Flip the favorite state of a card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(app *App) error {
			return runFavoriteToggle(cmd, app, args[0])
		})
	},
}.Build()

var favoriteListCmd = LeafCommand{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List favorite cards",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(app *App) error {
			return runList(cmd, app, listOptions{favorites: true})
		})
	},
}.Build()

func runFavoriteAdd(cmd *cobra.Command, app *App, id string) error {
	card, err := app.Catalog.Find(id)
	if err != nil {
		return err
	}
	if err := app.Favorites.Add(cmdContext(cmd), card.ID); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", Error("♥"), Text(card.Title+" added to favorites"))
	return nil
}

func runFavoriteRemove(cmd *cobra.Command, app *App, id string) error {
	card, err := app.Catalog.Find(id)
	if err != nil {
		return err
	}
	if err := app.Favorites.Remove(cmdContext(cmd), card.ID); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), Text(card.Title+" removed from favorites"))
	return nil
}

func runFavoriteToggle(cmd *cobra.Command, app *App, id string) error {
	card, err := app.Catalog.Find(id)
	if err != nil {
		return err
	}
	on, err := app.Favorites.Toggle(cmdContext(cmd), card.ID)
	if err != nil {
		return err
	}
	if on {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", Error("♥"), Text(card.Title+" added to favorites"))
	} else {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), Text(card.Title+" removed from favorites"))
	}
	return nil
}
