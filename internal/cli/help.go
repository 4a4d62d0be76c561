package cli

import (
	"regexp"
	"strings"

	"github.com/spf13/cobra"
)

var (
	// Section headers like "Usage:", "Available Commands:", "Flags:"
	sectionHeaderRe = regexp.MustCompile(`^[A-Z][A-Za-z ]+:$`)
	// Command listings: "  generate      Generate a prompt for a card"
	commandListingRe = regexp.MustCompile(`^( {2})(\S+)(\s{2,}.*)$`)
	// Flag lines: "  -y, --yes   skip the confirmation prompt"
	flagLineRe = regexp.MustCompile(`^( +)(-.+?)( {2,}.*)$`)
	// Example invocations: "  pixalprompt generate cine1"
	exampleLineRe = regexp.MustCompile(`^( +)(pixalprompt\b.*)$`)
	// Footer: `Use "pixalprompt [command] --help" for more information`
	footerRe = regexp.MustCompile(`^Use "`)
)

// colorizedHelpFunc renders cobra's default usage text through the palette.
func colorizedHelpFunc() func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		origOut := cmd.OutOrStdout()

		var buf strings.Builder
		cmd.SetOut(&buf)
		cmd.InitDefaultHelpFlag()
		_ = cmd.Usage()
		cmd.SetOut(origOut)

		var result strings.Builder
		if cmd.Long != "" {
			result.WriteString(Text(cmd.Long))
			result.WriteString("\n\n")
		} else if cmd.Short != "" && !cmd.HasParent() {
			result.WriteString(Text(cmd.Short))
			result.WriteString("\n\n")
		}
		for _, line := range strings.Split(buf.String(), "\n") {
			result.WriteString(colorizeLine(line))
			result.WriteString("\n")
		}

		cmd.Print(strings.TrimRight(result.String(), "\n") + "\n")
	}
}

func colorizeLine(line string) string {
	trimmed := strings.TrimSpace(line)

	if sectionHeaderRe.MatchString(trimmed) {
		return Info(line)
	}
	if footerRe.MatchString(trimmed) {
		return Silent(line)
	}
	if m := exampleLineRe.FindStringSubmatch(line); m != nil {
		return m[1] + Accent(m[2])
	}
	if m := flagLineRe.FindStringSubmatch(line); m != nil {
		return m[1] + Primary(m[2]) + Text(m[3])
	}
	if m := commandListingRe.FindStringSubmatch(line); m != nil {
		return m[1] + Primary(m[2]) + Text(m[3])
	}
	return Text(line)
}
