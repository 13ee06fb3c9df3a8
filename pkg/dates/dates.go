// Package dates computes calendar-date keys and relative labels in a
// specific timezone. All comparisons elsewhere in the codebase rely on the
// fixed-width YYYY-MM-DD key format produced here.
package dates

import (
	"fmt"
	"time"
)

// KeyLayout is the canonical calendar-date key format. Keys are zero padded,
// so lexicographic comparison between two keys orders them chronologically.
const KeyLayout = "2006-01-02"

// InvalidDate is returned by RelativeLabel for unparseable input instead of
// an error; a bad date on one task must not take down a whole render pass.
const InvalidDate = "Invalid Date"

// Ranges holds the three partition boundaries used for categorization.
type Ranges struct {
	Today    string
	Tomorrow string
	WeekEnd  string
}

func locOrLocal(loc *time.Location) *time.Location {
	if loc == nil {
		return time.Local
	}
	return loc
}

// Key converts an instant into its calendar-date key in loc. A nil loc means
// the system timezone. Two machines on opposite sides of midnight get
// different keys for the same instant, which is the point.
func Key(t time.Time, loc *time.Location) string {
	return t.In(locOrLocal(loc)).Format(KeyLayout)
}

// Today returns the current calendar-date key in loc.
func Today(loc *time.Location) string {
	return Key(time.Now(), loc)
}

// DaysBetween returns the signed whole-day difference between the calendar
// dates of a and b in loc. Both instants are normalized through their date
// keys first; dividing raw durations by 24h miscounts across DST shifts.
func DaysBetween(a, b time.Time, loc *time.Location) int {
	ka, _ := time.Parse(KeyLayout, Key(a, loc))
	kb, _ := time.Parse(KeyLayout, Key(b, loc))
	return int(ka.Sub(kb).Hours() / 24)
}

// RangesAt computes today, tomorrow, and the end of the seven day window
// relative to now in loc.
func RangesAt(now time.Time, loc *time.Location) Ranges {
	return Ranges{
		Today:    Key(now, loc),
		Tomorrow: Key(now.AddDate(0, 0, 1), loc),
		WeekEnd:  Key(now.AddDate(0, 0, 7), loc),
	}
}

// RelativeLabel renders a due-date key relative to now: "Today", "Tomorrow",
// "Yesterday", "N days ago", or "in N days". Anything more than seven days in
// the future is suppressed to an empty string, as is an empty key. Malformed
// keys yield InvalidDate.
func RelativeLabel(dueKey string, now time.Time, loc *time.Location) string {
	if dueKey == "" {
		return ""
	}
	due, err := time.Parse(KeyLayout, dueKey)
	if err != nil {
		return InvalidDate
	}
	today, _ := time.Parse(KeyLayout, Key(now, loc))
	diff := int(due.Sub(today).Hours() / 24)

	switch {
	case diff == 0:
		return "Today"
	case diff == 1:
		return "Tomorrow"
	case diff == -1:
		return "Yesterday"
	case diff < 0:
		return fmt.Sprintf("%d days ago", -diff)
	case diff <= 7:
		return fmt.Sprintf("in %d days", diff)
	}
	return ""
}

// Countdown renders the compact due-date chip shown next to a task: "Today",
// "Tomorrow", "N days", or "N days overdue". Empty when the key is empty or
// malformed.
func Countdown(dueKey string, now time.Time, loc *time.Location) string {
	if dueKey == "" {
		return ""
	}
	due, err := time.Parse(KeyLayout, dueKey)
	if err != nil {
		return ""
	}
	today, _ := time.Parse(KeyLayout, Key(now, loc))
	diff := int(due.Sub(today).Hours() / 24)

	switch {
	case diff == 0:
		return "Today"
	case diff == 1:
		return "Tomorrow"
	case diff > 1:
		return fmt.Sprintf("%d days", diff)
	}
	return fmt.Sprintf("%d days overdue", -diff)
}
