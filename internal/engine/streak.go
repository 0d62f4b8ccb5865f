package engine

import "time"

// DateLayout is the calendar-day format all activity dates are stored
// and compared in. Streak logic works on whole days, never timestamps.
const DateLayout = "2006-01-02"

// Today formats now as a calendar date in its own location.
func Today(now time.Time) string {
	return now.Format(DateLayout)
}

// NextStreak applies the streak continuation rules:
//   - lastActivityDate == today: unchanged (same-day calls are no-ops)
//   - lastActivityDate is exactly yesterday: streak + 1
//   - anything else (no record, gap of two or more days, or a future
//     date from clock skew): reset to 1
func NextStreak(current int, lastActivityDate, today string) int {
	if lastActivityDate == today {
		return current
	}
	if isDayBefore(lastActivityDate, today) {
		return current + 1
	}
	return 1
}

// isDayBefore reports whether date is the exact calendar predecessor of
// today. Unparseable dates are never a predecessor.
func isDayBefore(date, today string) bool {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return false
	}
	t, err := time.Parse(DateLayout, today)
	if err != nil {
		return false
	}
	return d.AddDate(0, 0, 1).Equal(t)
}

// DaysBetween returns the number of whole calendar days from one date
// to another. Negative when to precedes from. Unparseable input counts
// as zero days.
func DaysBetween(from, to string) int {
	f, err := time.Parse(DateLayout, from)
	if err != nil {
		return 0
	}
	t, err := time.Parse(DateLayout, to)
	if err != nil {
		return 0
	}
	return int(t.Sub(f).Hours() / 24)
}
