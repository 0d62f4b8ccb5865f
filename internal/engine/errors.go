package engine

import (
	"errors"
	"fmt"
)

// ErrNoActiveGoal is returned by goal-tracker operations when no goal
// is configured (or the stored config is corrupt and was discarded).
var ErrNoActiveGoal = errors.New("no active goal")

// ErrContentUnavailable indicates a remote collection could not be
// fetched and no cached copy, stale or otherwise, exists.
var ErrContentUnavailable = errors.New("content unavailable")

// TaskIndexError indicates a toggle aimed outside the goal's task list.
// This is a programming error on the calling layer, reported instead of
// panicking.
type TaskIndexError struct {
	Index int
	Count int
}

func (e TaskIndexError) Error() string {
	return fmt.Sprintf("task index %d out of range (goal has %d tasks)", e.Index, e.Count)
}
