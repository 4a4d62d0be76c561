package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/atotto/clipboard"
	"github.com/masadraza1122/pixalpromt/internal/generate"
	"github.com/masadraza1122/pixalpromt/internal/logging"
	"github.com/spf13/cobra"
)

var clipboardWriteAll = clipboard.WriteAll

// Choices offered when the daily limit is reached.
const (
	limitChoiceWatchAd = iota
	limitChoiceUpgrade
	limitChoiceCancel
)

var limitChoices = []string{
	"Watch an ad for one free prompt",
	"Upgrade to Premium (unlimited)",
	"Cancel",
}

var generateCmd = LeafCommand{
	Use:     "generate <id>",
	Aliases: []string{"gen"},
	Short:   "Generate a prompt for a card",
	Example: "  pixalprompt generate cine1\n  pixalprompt generate cine1 --watch-ad --copy",
	Args:    cobra.ExactArgs(1),
	BoolFlags: []BoolFlag{
		{Name: "watch-ad", Short: "a", Usage: "watch a rewarded ad first to earn a free prompt"},
		{Name: "copy", Short: "c", Usage: "copy the generated prompt to the clipboard"},
		{Name: "no-animate", Usage: "print the prompt at once instead of word by word"},
		{Name: "yes", Short: "y", Usage: "skip confirmation prompts"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts generateOptions
		opts.watchAd, _ = cmd.Flags().GetBool("watch-ad")
		opts.copy, _ = cmd.Flags().GetBool("copy")
		noAnimate, _ := cmd.Flags().GetBool("no-animate")
		yes, _ := cmd.Flags().GetBool("yes")
		opts.animate = !noAnimate && logging.IsTerminal(cmd.OutOrStdout())

		return withApp(cmd, func(app *App) error {
			opts.revealInterval = app.Config.Generate.RevealInterval
			return runGenerate(cmd, app, args[0], opts, newPromptKit(yes))
		})
	},
}.Build()

type generateOptions struct {
	watchAd        bool
	copy           bool
	animate        bool
	revealInterval time.Duration
}

func runGenerate(cmd *cobra.Command, app *App, id string, opts generateOptions, kit promptKit) error {
	card, err := app.Catalog.Find(id)
	if err != nil {
		return err
	}

	ctx := cmdContext(cmd)
	w := cmd.OutOrStdout()
	session := app.NewSession(card)

	_, _ = fmt.Fprintf(w, "%s %s\n", Primary(card.Title), Silent("· "+card.Subtitle))

	if opts.watchAd {
		if err := watchAd(ctx, w, session); err != nil {
			return err
		}
	}

	text, err := generateOnce(ctx, w, session)
	if errors.Is(err, generate.ErrLimitReached) {
		var proceed bool
		proceed, err = resolveLimit(ctx, w, app, session, kit)
		if err != nil || !proceed {
			return err
		}
		text, err = generateOnce(ctx, w, session)
	}
	if err != nil {
		return err
	}

	if err := printPrompt(ctx, w, text, opts); err != nil {
		return err
	}

	if opts.copy {
		if err := clipboardWriteAll(text); err != nil {
			app.Log.Warn().Err(err).Msg("clipboard unavailable")
			_, _ = fmt.Fprintln(w, Warning("could not copy to clipboard"))
		} else {
			_, _ = fmt.Fprintln(w, Silent("copied to clipboard"))
		}
	}

	_, _ = fmt.Fprintln(w, quotaLine(app))
	return nil
}

func generateOnce(ctx context.Context, w io.Writer, session *generate.Session) (string, error) {
	if session.HasBonus() {
		_, _ = fmt.Fprintln(w, Silent("Generating with your bonus prompt..."))
	} else {
		_, _ = fmt.Fprintln(w, Silent("Generating..."))
	}
	return session.Generate(ctx)
}

func watchAd(ctx context.Context, w io.Writer, session *generate.Session) error {
	_, _ = fmt.Fprintln(w, Silent("Watching ad..."))
	if err := session.WatchAd(ctx); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(w, Primary("Bonus prompt unlocked!"))
	return nil
}

// resolveLimit asks the user how to continue once the free quota is used up.
// It returns true when a retry should succeed.
func resolveLimit(ctx context.Context, w io.Writer, app *App, session *generate.Session, kit promptKit) (bool, error) {
	_, _ = fmt.Fprintln(w, Warning(fmt.Sprintf("Daily limit reached (%d of %d free prompts used).",
		app.Tracker.PromptsUsedToday(), app.Tracker.DailyLimit())))

	choice, err := kit.selectOne("What would you like to do?", limitChoices)
	if err != nil {
		return false, err
	}

	switch choice {
	case limitChoiceWatchAd:
		if err := watchAd(ctx, w, session); err != nil {
			return false, err
		}
		return true, nil
	case limitChoiceUpgrade:
		ok, err := kit.confirm("Upgrade to Premium? Unlimited prompts, no ads.")
		if err != nil {
			return false, err
		}
		if !ok {
			_, _ = fmt.Fprintln(w, Silent("cancelled"))
			return false, nil
		}
		if err := app.Tracker.UpgradeToPremium(ctx); err != nil {
			return false, err
		}
		_, _ = fmt.Fprintln(w, Primary("Welcome to Premium!"))
		return true, nil
	default:
		_, _ = fmt.Fprintln(w, Silent("cancelled"))
		return false, nil
	}
}

// printPrompt writes text, word by word when animating.
func printPrompt(ctx context.Context, w io.Writer, text string, opts generateOptions) error {
	_, _ = fmt.Fprintln(w)
	if !opts.animate {
		_, _ = fmt.Fprintln(w, Text(text))
		_, _ = fmt.Fprintln(w)
		return nil
	}

	shown := 0
	for frame := range generate.Reveal(ctx, text, opts.revealInterval) {
		_, _ = fmt.Fprint(w, frame[shown:])
		shown = len(frame)
	}
	_, _ = fmt.Fprint(w, "\n\n")
	return ctx.Err()
}

func quotaLine(app *App) string {
	remaining := app.Tracker.Remaining()
	switch {
	case remaining < 0:
		return Accent("Premium: unlimited prompts")
	case remaining == 1:
		return Silent("1 free prompt remaining today")
	default:
		return Silent(fmt.Sprintf("%d free prompts remaining today", remaining))
	}
}
