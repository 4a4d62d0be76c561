package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "pixalprompt",
	Short:         "Browse AI image prompts and generate your own",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default <data-dir>/config.yaml)")
	rootCmd.PersistentFlags().String("data-dir", "", "directory holding local state (default ~/.pixalprompt)")
	rootCmd.SetHelpFunc(colorizedHelpFunc())

	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(upgradeCmd)
	rootCmd.AddCommand(favoriteCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command. Errors are printed here because cobra's
// own error output is silenced.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		_, _ = rootCmd.ErrOrStderr().Write([]byte(Error("error: ") + err.Error() + "\n"))
	}
	return err
}
