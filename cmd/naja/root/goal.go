package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pathtonaja-debug/naja-sub002/internal/engine"
	"github.com/pathtonaja-debug/naja-sub002/internal/ui"
)

func newGoalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage the active multi-day goal",
	}

	cmd.AddCommand(
		newGoalSetCmd(),
		newGoalStatusCmd(),
		newGoalCheckCmd(),
		newGoalClearCmd(),
	)

	return cmd
}

func newGoalSetCmd() *cobra.Command {
	var icon string
	var days int
	var start string
	var tasks []string

	cmd := &cobra.Command{
		Use:   "set <title>",
		Short: "Start a goal (replaces any existing one)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
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

			g, err := a.goals.SetActiveGoal(ctx, engine.GoalInput{
				Title:         args[0],
				Icon:          icon,
				TimeframeDays: days,
				StartDate:     start,
				TaskLabels:    tasks,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s — %d days, %d daily tasks\n",
				ui.IconTarget, ui.Good.Render(g.Title), g.TimeframeDays, len(g.Tasks))
			return nil
		},
	}

	cmd.Flags().StringVar(&icon, "icon", "", "Goal icon (emoji)")
	cmd.Flags().IntVar(&days, "days", 30, "Goal timeframe in days")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD, default today)")
	cmd.Flags().StringArrayVarP(&tasks, "task", "t", nil, "Daily task label (repeatable)")

	return cmd
}

func newGoalStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the active goal and its completion history",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			goal := a.goals.ActiveGoal(ctx)
			if goal == nil {
				return engine.ErrNoActiveGoal
			}
			day, err := a.goals.CurrentDayNumber(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			icon := goal.Icon
			if icon == "" {
				icon = ui.IconTarget
			}
			fmt.Fprintln(out, ui.Heading(icon, goal.Title))
			fmt.Fprintln(out, ui.LabelValue("Day", fmt.Sprintf("%d of %d (started %s)", day, goal.TimeframeDays, goal.StartDate)))

			history, err := a.goals.History(ctx)
			if err != nil {
				return err
			}
			if len(history) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No days recorded yet."))
				return nil
			}
			for _, c := range history {
				fmt.Fprintf(out, "%s  %d/%d tasks\n", ui.Key.Render(c.Date), c.DoneCount(), len(c.TasksCompleted))
			}
			return nil
		},
	}

	return cmd
}

func newGoalCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <task number>",
		Short: "Toggle one of today's goal tasks",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("task number is required")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("task number must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			n, _ := strconv.Atoi(args[0])

			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			// Task numbers are 1-based on the CLI.
			c, err := a.goals.ToggleTask(ctx, n-1)
			if err != nil {
				return err
			}

			goal := a.goals.ActiveGoal(ctx)
			out := cmd.OutOrStdout()
			for i, done := range c.TasksCompleted {
				label := fmt.Sprintf("task %d", i+1)
				if goal != nil && i < len(goal.Tasks) {
					label = goal.Tasks[i].Label
				}
				fmt.Fprintf(out, "%2d. %s %s\n", i+1, ui.Checkbox(done), label)
			}
			if c.DoneCount() == len(c.TasksCompleted) {
				fmt.Fprintf(out, "%s %s\n", ui.IconDone, ui.Good.Render("All of today's tasks done!"))
			}
			return nil
		},
	}

	return cmd
}

func newGoalClearCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Abandon the active goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("this abandons the active goal; re-run with --yes to confirm")
			}

			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := a.goals.ClearActiveGoal(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Goal cleared."))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm")

	return cmd
}
