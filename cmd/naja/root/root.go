package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pathtonaja-debug/naja-sub002/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "naja",
	Short:         "naja — local-first worship habit tracker",
	Long:          "naja tracks prayers, dhikr, Quran reading, and daily goals on this device,\nwith Barakah points, levels, and hasanat streaks. No account needed.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newLogCmd(),
		newStatusCmd(),
		newPracticesCmd(),
		newNameCmd(),
		newResetCmd(),
		newGoalCmd(),
		newChaptersCmd(),
		newHijriCmd(),
		newDashboardCmd(),
		newServeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
