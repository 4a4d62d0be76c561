package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var debugCmd = GroupCommand{
	Use:   "debug",
	Short: "Developer utilities",
	Subcommands: []*cobra.Command{
		debugResetCmd,
	},
}.Build()

var debugResetCmd = LeafCommand{
	Use:   "reset",
	Short: "Clear premium status and today's prompt count",
	BoolFlags: []BoolFlag{
		{Name: "yes", Short: "y", Usage: "skip the confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		return withApp(cmd, func(app *App) error {
			return runDebugReset(cmd, app, confirmFor(yes))
		})
	},
}.Build()

func runDebugReset(cmd *cobra.Command, app *App, confirm ConfirmFunc) error {
	w := cmd.OutOrStdout()

	ok, err := confirm("Reset premium status and usage counters?")
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(w, Silent("reset cancelled"))
		return nil
	}

	if err := app.Tracker.Reset(cmdContext(cmd)); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(w, Primary("entitlement state reset"))
	return nil
}
