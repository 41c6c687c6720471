package tracker

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date encoding used for due dates and
// last-response dates: MM/DD/YYYY, no time component.
const DateLayout = "01/02/2006"

// ParseDate parses a MM/DD/YYYY date string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want MM/DD/YYYY): %w", s, err)
	}
	return t, nil
}

// FormatDate renders a time as a MM/DD/YYYY date string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// civilDate strips the time-of-day and zone from t, leaving a comparable
// calendar date at UTC midnight. ParseDate already produces such values;
// this normalizes clock readings to match.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// mondayOf returns the Monday of the week containing d.
func mondayOf(d time.Time) time.Time {
	offset := (int(d.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return d.AddDate(0, 0, -offset)
}

// StatusFilter selects reminders by stored status in filtered queries.
type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusPending   StatusFilter = "pending"
	StatusCompleted StatusFilter = "completed"
	StatusSnoozed   StatusFilter = "snoozed"
)

// ParseStatusFilter converts a user-supplied string into a StatusFilter.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch StatusFilter(s) {
	case StatusAll, StatusPending, StatusCompleted, StatusSnoozed:
		return StatusFilter(s), nil
	}
	return "", fmt.Errorf("unknown status filter: %q", s)
}

// DateFilter selects reminders by due date relative to the query-time clock.
// Ranges are inclusive on both bounds.
type DateFilter struct {
	kind string // "all", "today", "this-week", "next-week", "custom"
	from string // custom only
	to   string // custom only
}

func DateAll() DateFilter      { return DateFilter{kind: "all"} }
func DateToday() DateFilter    { return DateFilter{kind: "today"} }
func DateThisWeek() DateFilter { return DateFilter{kind: "this-week"} }
func DateNextWeek() DateFilter { return DateFilter{kind: "next-week"} }

// DateBetween builds a custom inclusive range from two MM/DD/YYYY dates.
func DateBetween(from, to string) DateFilter {
	return DateFilter{kind: "custom", from: from, to: to}
}

// ParseDateFilter converts a user-supplied range name into a DateFilter.
// Custom ranges are built with DateBetween, not parsed here.
func ParseDateFilter(s string) (DateFilter, error) {
	switch s {
	case "all":
		return DateAll(), nil
	case "today":
		return DateToday(), nil
	case "this-week":
		return DateThisWeek(), nil
	case "next-week":
		return DateNextWeek(), nil
	}
	return DateFilter{}, fmt.Errorf("unknown date filter: %q", s)
}

// bounds resolves the filter against today. ok is false for the "all" kind,
// which imposes no bounds.
func (f DateFilter) bounds(today time.Time) (from, to time.Time, ok bool, err error) {
	day := civilDate(today)
	switch f.kind {
	case "", "all":
		return time.Time{}, time.Time{}, false, nil
	case "today":
		return day, day, true, nil
	case "this-week":
		monday := mondayOf(day)
		return monday, monday.AddDate(0, 0, 6), true, nil
	case "next-week":
		monday := mondayOf(day).AddDate(0, 0, 7)
		return monday, monday.AddDate(0, 0, 6), true, nil
	case "custom":
		from, err = ParseDate(f.from)
		if err != nil {
			return time.Time{}, time.Time{}, false, fmt.Errorf("range start: %w", err)
		}
		to, err = ParseDate(f.to)
		if err != nil {
			return time.Time{}, time.Time{}, false, fmt.Errorf("range end: %w", err)
		}
		return from, to, true, nil
	}
	return time.Time{}, time.Time{}, false, fmt.Errorf("unknown date filter: %q", f.kind)
}
