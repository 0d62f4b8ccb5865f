package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pathtonaja-debug/naja-sub002/internal/engine"
	"github.com/pathtonaja-debug/naja-sub002/internal/ui"
)

func newNameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "name <display name>",
		Short: "Set the profile display name",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 || strings.TrimSpace(strings.Join(args, " ")) == "" {
				return errors.New("display name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			name := strings.TrimSpace(strings.Join(args, " "))
			p, err := a.profiles.UpdateProfile(ctx, engine.ProfilePatch{DisplayName: &name})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Salaam, %s\n", ui.IconSparkle, ui.Good.Render(p.DisplayName))
			return nil
		},
	}

	return cmd
}
