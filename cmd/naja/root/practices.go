package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pathtonaja-debug/naja-sub002/internal/engine"
	"github.com/pathtonaja-debug/naja-sub002/internal/ui"
)

func newPracticesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "practices",
		Short: "List trackable practices and their Barakah awards",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconBeads, "Practices"))
			for _, p := range engine.Practices() {
				fmt.Fprintf(out, "%s %-8s %s %s\n",
					p.Icon,
					ui.Key.Render(p.Code),
					p.Name,
					ui.Gold.Render(fmt.Sprintf("+%d", p.Points)),
				)
			}
			return nil
		},
	}

	return cmd
}
