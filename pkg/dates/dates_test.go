package dates

import (
	"testing"
	"time"
)

func TestRangesSplitAcrossTimezones(t *testing.T) {
	// 06:00 UTC is still the previous evening eight hours west, and
	// already the afternoon ten hours east.
	instant := time.Date(2024, 6, 10, 6, 0, 0, 0, time.UTC)

	west := RangesAt(instant, time.FixedZone("UTC-8", -8*60*60))
	east := RangesAt(instant, time.FixedZone("UTC+10", 10*60*60))

	if west.Today != "2024-06-09" {
		t.Errorf("expected west today 2024-06-09, got %s", west.Today)
	}
	if east.Today != "2024-06-10" {
		t.Errorf("expected east today 2024-06-10, got %s", east.Today)
	}
	if west.Today == east.Today {
		t.Errorf("expected different todays across the date line, got %s for both", west.Today)
	}
}

func TestRangesBoundaries(t *testing.T) {
	instant := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	r := RangesAt(instant, time.UTC)

	if r.Today != "2024-06-10" {
		t.Errorf("expected today 2024-06-10, got %s", r.Today)
	}
	if r.Tomorrow != "2024-06-11" {
		t.Errorf("expected tomorrow 2024-06-11, got %s", r.Tomorrow)
	}
	if r.WeekEnd != "2024-06-17" {
		t.Errorf("expected weekEnd 2024-06-17, got %s", r.WeekEnd)
	}
}

func TestDaysBetween(t *testing.T) {
	loc := time.UTC
	a := time.Date(2024, 6, 12, 1, 0, 0, 0, loc)
	b := time.Date(2024, 6, 10, 23, 0, 0, 0, loc)

	if got := DaysBetween(a, b, loc); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
	if got := DaysBetween(b, a, loc); got != -2 {
		t.Errorf("expected -2, got %d", got)
	}
	if got := DaysBetween(a, a, loc); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestRelativeLabel(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		due  string
		want string
	}{
		{"2024-06-10", "Today"},
		{"2024-06-11", "Tomorrow"},
		{"2024-06-09", "Yesterday"},
		{"2024-06-05", "5 days ago"},
		{"2024-06-15", "in 5 days"},
		{"2024-06-17", "in 7 days"},
		{"2024-06-18", ""}, // beyond the week window the label is suppressed
		{"", ""},
		{"not-a-date", InvalidDate},
	}
	for _, tc := range cases {
		if got := RelativeLabel(tc.due, now, time.UTC); got != tc.want {
			t.Errorf("RelativeLabel(%q) = %q, want %q", tc.due, got, tc.want)
		}
	}
}

func TestCountdown(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		due  string
		want string
	}{
		{"2024-06-10", "Today"},
		{"2024-06-11", "Tomorrow"},
		{"2024-06-13", "3 days"},
		{"2024-06-08", "2 days overdue"},
		{"", ""},
		{"garbage", ""},
	}
	for _, tc := range cases {
		if got := Countdown(tc.due, now, time.UTC); got != tc.want {
			t.Errorf("Countdown(%q) = %q, want %q", tc.due, got, tc.want)
		}
	}
}
