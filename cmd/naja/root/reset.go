package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pathtonaja-debug/naja-sub002/internal/ui"
)

func newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset points, level, and streak (keeps the device identity)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("this discards all progress; re-run with --yes to confirm")
			}

			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := a.profiles.ResetProfile(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Profile reset. %s\n",
				ui.IconWarn, ui.Muted.Render("device id "+p.ID))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the reset")

	return cmd
}
