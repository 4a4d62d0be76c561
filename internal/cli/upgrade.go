package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var upgradeCmd = LeafCommand{
	Use:   "upgrade",
	Short: "Upgrade to Premium for unlimited prompts",
	BoolFlags: []BoolFlag{
		{Name: "yes", Short: "y", Usage: "skip the confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		return withApp(cmd, func(app *App) error {
			return runUpgrade(cmd, app, confirmFor(yes))
		})
	},
}.Build()

func runUpgrade(cmd *cobra.Command, app *App, confirm ConfirmFunc) error {
	w := cmd.OutOrStdout()

	if app.Tracker.IsPremium() {
		_, _ = fmt.Fprintln(w, Info("You are already on Premium."))
		return nil
	}

	ok, err := confirm("Upgrade to Premium? Unlimited prompts, no ads.")
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(w, Silent("upgrade cancelled"))
		return nil
	}

	if err := app.Tracker.UpgradeToPremium(cmdContext(cmd)); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "%s %s\n", Primary("Welcome to Premium!"), Text("Enjoy unlimited prompts."))
	return nil
}
