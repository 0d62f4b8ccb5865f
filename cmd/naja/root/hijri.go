package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pathtonaja-debug/naja-sub002/internal/ui"
)

func newHijriCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hijri",
		Short: "Show today's Hijri date",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			h, err := a.content.HijriToday(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s, %s %s %s AH\n",
				ui.IconMoon,
				ui.Key.Render(h.Weekday),
				h.Day,
				ui.Good.Render(h.Month),
				h.Year,
			)
			for _, holiday := range h.Holidays {
				fmt.Fprintf(out, "%s %s\n", ui.IconStar, ui.Gold.Render(holiday))
			}
			return nil
		},
	}

	return cmd
}
