package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var statusCmd = LeafCommand{
	Use:   "status",
	Short: "Show your plan and today's prompt quota",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(app *App) error {
			return runStatus(cmd, app)
		})
	},
}.Build()

func runStatus(cmd *cobra.Command, app *App) error {
	w := cmd.OutOrStdout()
	st := app.Tracker.Snapshot()

	if st.Premium {
		_, _ = fmt.Fprintf(w, "%s %s\n", Silent(label("Plan:")), Accent("Premium"))
		_, _ = fmt.Fprintf(w, "%s %s\n", Silent(label("Prompts:")), Text("unlimited"))
		return nil
	}

	remaining := app.Tracker.Remaining()
	_, _ = fmt.Fprintf(w, "%s %s\n", Silent(label("Plan:")), Primary("Free"))
	_, _ = fmt.Fprintf(w, "%s %s\n", Silent(label("Prompts:")),
		Text(fmt.Sprintf("%d of %d used today", st.PromptsUsedToday, st.DailyLimit)))
	_, _ = fmt.Fprintf(w, "%s %s\n", Silent(label("Remaining:")), remainingText(remaining))
	_, _ = fmt.Fprintf(w, "%s %s\n", Silent(label("Resets in:")),
		Text(formatDuration(app.Tracker.NextReset().Sub(app.Now()))))

	if remaining == 0 {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, Warning("Daily limit reached. Watch an ad with 'pixalprompt generate <id> --watch-ad' or run 'pixalprompt upgrade'."))
	}
	return nil
}

func label(s string) string {
	return fmt.Sprintf("%-10s", s)
}

func remainingText(n int) string {
	switch {
	case n < 0:
		return Accent("unlimited")
	case n == 0:
		return Error("0")
	default:
		return Primary(fmt.Sprintf("%d", n))
	}
}

// formatDuration formats a duration as "Xh Ym", rounding down to the minute.
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	totalMins := int(d.Minutes())
	if totalMins < 1 {
		return "less than a minute"
	}
	hours := totalMins / 60
	mins := totalMins % 60
	if hours > 0 && mins > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dm", mins)
}
