package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pathtonaja-debug/naja-sub002/internal/store"
)

// ActiveGoalKey is the fixed KV key for the one active goal config.
const ActiveGoalKey = "naja_active_goal"

const completionKeyPrefix = "naja_goal_completion:"

func completionKey(goalID, date string) string {
	return completionKeyPrefix + goalID + ":" + date
}

// GoalTask is a single daily checkbox within a goal.
type GoalTask struct {
	Label string `json:"label"`
}

// GoalConfig is a multi-day goal: a fixed task list checked off each
// day for TimeframeDays days starting at StartDate.
type GoalConfig struct {
	ID            string     `json:"id"`
	Title         string     `json:"goalTitle"`
	Icon          string     `json:"goalIcon"`
	TimeframeDays int        `json:"timeframe"`
	StartDate     string     `json:"startDate"`
	Tasks         []GoalTask `json:"tasks"`
}

// Valid rejects structurally unusable goal records so a corrupt config
// reads back as "no active goal" instead of misbehaving downstream.
func (g GoalConfig) Valid() bool {
	if g.ID == "" || g.TimeframeDays < 1 || len(g.Tasks) == 0 {
		return false
	}
	_, err := time.Parse(DateLayout, g.StartDate)
	return err == nil
}

// DayNumber returns which day of the goal today is, clamped to
// [1, TimeframeDays]. Day 1 is the start date itself.
func (g GoalConfig) DayNumber(today string) int {
	day := DaysBetween(g.StartDate, today) + 1
	if day < 1 {
		return 1
	}
	if day > g.TimeframeDays {
		return g.TimeframeDays
	}
	return day
}

// DailyCompletion records which of the goal's tasks were completed on
// one calendar day. Created lazily on the first toggle of that day.
type DailyCompletion struct {
	GoalID         string `json:"goalId"`
	Date           string `json:"date"`
	TasksCompleted []bool `json:"tasksCompleted"`
}

// DoneCount returns how many tasks are checked off.
func (c DailyCompletion) DoneCount() int {
	n := 0
	for _, done := range c.TasksCompleted {
		if done {
			n++
		}
	}
	return n
}

// GoalInput is the caller-facing shape for starting a goal.
type GoalInput struct {
	Title         string
	Icon          string
	TimeframeDays int
	StartDate     string // defaults to today
	TaskLabels    []string
}

// GoalTracker owns the active goal config and its per-day completion
// records. At most one goal is active at a time; starting a new one
// replaces the old config (historic completion records keep their
// goal-scoped keys and simply go dark).
type GoalTracker struct {
	kv  store.KV
	now func() time.Time
}

func NewGoalTracker(kv store.KV) *GoalTracker {
	return &GoalTracker{kv: kv, now: time.Now}
}

// ActiveGoal returns the active goal, or nil when none is configured
// (or the stored record is corrupt).
func (t *GoalTracker) ActiveGoal(ctx context.Context) *GoalConfig {
	g := store.ReadJSON(ctx, t.kv, ActiveGoalKey, GoalConfig{})
	if !g.Valid() {
		return nil
	}
	return &g
}

// SetActiveGoal validates and persists a new goal config, replacing any
// existing one.
func (t *GoalTracker) SetActiveGoal(ctx context.Context, in GoalInput) (GoalConfig, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return GoalConfig{}, fmt.Errorf("goal title is required")
	}
	if in.TimeframeDays < 1 {
		return GoalConfig{}, fmt.Errorf("goal timeframe must be at least 1 day")
	}
	if len(in.TaskLabels) == 0 {
		return GoalConfig{}, fmt.Errorf("goal needs at least one daily task")
	}

	start := strings.TrimSpace(in.StartDate)
	if start == "" {
		start = Today(t.now())
	}
	if _, err := time.Parse(DateLayout, start); err != nil {
		return GoalConfig{}, fmt.Errorf("invalid start date %q (want YYYY-MM-DD)", in.StartDate)
	}

	tasks := make([]GoalTask, 0, len(in.TaskLabels))
	for _, label := range in.TaskLabels {
		label = strings.TrimSpace(label)
		if label == "" {
			return GoalConfig{}, fmt.Errorf("task labels must not be empty")
		}
		tasks = append(tasks, GoalTask{Label: label})
	}

	g := GoalConfig{
		ID:            uuid.NewString(),
		Title:         title,
		Icon:          in.Icon,
		TimeframeDays: in.TimeframeDays,
		StartDate:     start,
		Tasks:         tasks,
	}
	if err := store.WriteJSON(ctx, t.kv, ActiveGoalKey, g); err != nil {
		return GoalConfig{}, err
	}
	return g, nil
}

// ClearActiveGoal removes the active goal config.
func (t *GoalTracker) ClearActiveGoal(ctx context.Context) error {
	return t.kv.Remove(ctx, ActiveGoalKey)
}

// CurrentDayNumber returns today's day number within the active goal.
func (t *GoalTracker) CurrentDayNumber(ctx context.Context) (int, error) {
	g := t.ActiveGoal(ctx)
	if g == nil {
		return 0, ErrNoActiveGoal
	}
	return g.DayNumber(Today(t.now())), nil
}

// TodayTasks returns the task list for the current day. Goals here do
// not vary tasks by day, so this is the full fixed list.
func (t *GoalTracker) TodayTasks(g *GoalConfig) []GoalTask {
	if g == nil {
		return nil
	}
	return g.Tasks
}

// TodayCompletion returns today's completion record, or nil before the
// first toggle of the day.
func (t *GoalTracker) TodayCompletion(ctx context.Context) (*DailyCompletion, error) {
	g := t.ActiveGoal(ctx)
	if g == nil {
		return nil, ErrNoActiveGoal
	}
	key := completionKey(g.ID, Today(t.now()))
	c := store.ReadJSON(ctx, t.kv, key, DailyCompletion{})
	if c.GoalID == "" {
		return nil, nil
	}
	return &c, nil
}

// ToggleTask flips one task's checkbox for today, materializing the
// day's record on first write. Index must be in range of the goal's
// task list.
func (t *GoalTracker) ToggleTask(ctx context.Context, index int) (DailyCompletion, error) {
	g := t.ActiveGoal(ctx)
	if g == nil {
		return DailyCompletion{}, ErrNoActiveGoal
	}
	if index < 0 || index >= len(g.Tasks) {
		return DailyCompletion{}, TaskIndexError{Index: index, Count: len(g.Tasks)}
	}

	today := Today(t.now())
	key := completionKey(g.ID, today)
	c := store.ReadJSON(ctx, t.kv, key, DailyCompletion{})
	if c.GoalID == "" {
		c = DailyCompletion{
			GoalID:         g.ID,
			Date:           today,
			TasksCompleted: make([]bool, len(g.Tasks)),
		}
	}
	// Bounds-safe even if the stored record predates a task-list edit.
	if len(c.TasksCompleted) < len(g.Tasks) {
		grown := make([]bool, len(g.Tasks))
		copy(grown, c.TasksCompleted)
		c.TasksCompleted = grown
	}

	c.TasksCompleted[index] = !c.TasksCompleted[index]
	if err := store.WriteJSON(ctx, t.kv, key, c); err != nil {
		return DailyCompletion{}, err
	}
	return c, nil
}

// History returns all completion records for the active goal, ordered
// by date. Requires the KV medium to support prefix listing.
func (t *GoalTracker) History(ctx context.Context) ([]DailyCompletion, error) {
	g := t.ActiveGoal(ctx)
	if g == nil {
		return nil, ErrNoActiveGoal
	}
	lister, ok := t.kv.(store.KeyLister)
	if !ok {
		return nil, fmt.Errorf("storage medium does not support history listing")
	}
	keys, err := lister.Keys(ctx, completionKeyPrefix+g.ID+":")
	if err != nil {
		return nil, err
	}
	out := make([]DailyCompletion, 0, len(keys))
	for _, k := range keys {
		c := store.ReadJSON(ctx, t.kv, k, DailyCompletion{})
		if c.GoalID == "" {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}
