package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pathtonaja-debug/naja-sub002/internal/ui"
)

func newChaptersCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "chapters",
		Short: "List Quran chapters (cached reference data)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			chapters, err := a.content.Chapters(ctx)
			if err != nil {
				return err
			}
			if limit > 0 && limit < len(chapters) {
				chapters = chapters[:limit]
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconBook, "Chapters"))
			for _, c := range chapters {
				fmt.Fprintf(out, "%3d. %-16s %s %s\n",
					c.Number,
					ui.Key.Render(c.EnglishName),
					ui.Muted.Render(c.EnglishNameTranslation),
					ui.Dim.Render(fmt.Sprintf("(%d ayahs)", c.NumberOfAyahs)),
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Show only the first N chapters")

	return cmd
}
