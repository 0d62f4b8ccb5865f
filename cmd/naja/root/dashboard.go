package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pathtonaja-debug/naja-sub002/internal/tui"
)

func newDashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"board"},
		Short:   "Interactive daily dashboard (TUI)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunDashboard(ctx, a.profiles, a.goals, cmd.OutOrStdout())
		},
	}

	return cmd
}
