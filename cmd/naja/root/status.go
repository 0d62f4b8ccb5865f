package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pathtonaja-debug/naja-sub002/internal/engine"
	"github.com/pathtonaja-debug/naja-sub002/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show profile, level progress, streak, and goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := a.profiles.Load(ctx)
			if err != nil {
				return err
			}
			progress := p.Progress()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconMosque, p.DisplayName))
			fmt.Fprintln(out, ui.LabelValue("Level", fmt.Sprintf("%d — %s", p.Level, p.Title())))
			if progress.Required > 0 {
				fmt.Fprintf(out, "%s %s %s\n",
					ui.LabelValue("Barakah", p.BarakahPoints),
					ui.ProgressBar(progress.Current, progress.Required, 24),
					ui.Muted.Render(fmt.Sprintf("%d/%d to next level", progress.Current, progress.Required)),
				)
			} else {
				fmt.Fprintf(out, "%s %s %s\n",
					ui.LabelValue("Barakah", p.BarakahPoints),
					ui.ProgressBar(1, 0, 24),
					ui.Gold.Render("max level"),
				)
			}
			fmt.Fprintln(out, ui.StreakText(p.HasanatStreak))
			if p.LongestStreak > p.HasanatStreak {
				fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("longest streak: %d days", p.LongestStreak)))
			}
			fmt.Fprintln(out, "")

			goal := a.goals.ActiveGoal(ctx)
			if goal == nil {
				fmt.Fprintln(out, ui.Muted.Render("No active goal. Start one with: naja goal set"))
				return nil
			}

			day, err := a.goals.CurrentDayNumber(ctx)
			if err != nil {
				return err
			}
			icon := goal.Icon
			if icon == "" {
				icon = ui.IconTarget
			}
			fmt.Fprintln(out, ui.H2.Render(fmt.Sprintf("%s %s — day %d of %d", icon, goal.Title, day, goal.TimeframeDays)))

			completion, err := a.goals.TodayCompletion(ctx)
			if err != nil && !errors.Is(err, engine.ErrNoActiveGoal) {
				return err
			}
			for i, task := range a.goals.TodayTasks(goal) {
				done := false
				if completion != nil && i < len(completion.TasksCompleted) {
					done = completion.TasksCompleted[i]
				}
				fmt.Fprintf(out, "%2d. %s %s\n", i+1, ui.Checkbox(done), task.Label)
			}
			return nil
		},
	}

	return cmd
}
