package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pathtonaja-debug/naja-sub002/internal/engine"
	"github.com/pathtonaja-debug/naja-sub002/internal/ui"
)

func newLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log <practice>",
		Short: "Log a completed practice and earn Barakah points",
		Long: `Log a completed practice (fajr, dhuhr, asr, maghrib, isha, dhikr,
quran, hifdh, journal, fast). The day's first log extends the hasanat
streak; every log earns the practice's Barakah points.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("practice is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			practice, err := engine.ParsePractice(args[0])
			if err != nil {
				return err
			}

			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			// Streak before points: awarding stamps today's date, which
			// would make the streak update a same-day no-op.
			streak, err := a.profiles.UpdateStreak(ctx)
			if err != nil {
				return err
			}
			res, err := a.profiles.AddBarakahPoints(ctx, practice.Points)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s %s %s\n",
				practice.Icon,
				ui.Good.Render(practice.Name),
				ui.Gold.Render(fmt.Sprintf("+%d barakah", res.Points)),
				ui.Muted.Render(fmt.Sprintf("(total %d)", res.Profile.BarakahPoints)),
			)
			fmt.Fprintln(out, ui.StreakText(streak))
			if res.LeveledUp {
				fmt.Fprintf(out, "%s %s → level %d, %s\n",
					ui.IconSparkle, ui.BadgeLevelUp, res.NewLevel, ui.Gold.Render(engine.LevelTitle(res.NewLevel)))
			}
			return nil
		},
	}

	return cmd
}
