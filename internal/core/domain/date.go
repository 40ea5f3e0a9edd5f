package domain

import "time"

// Day is the length of one calendar day in the layout's time arithmetic.
const Day = 24 * time.Hour

// DateOf truncates t to midnight UTC of its calendar date.
// The zero time is returned unchanged so it keeps meaning "unscheduled".
func DateOf(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the signed number of whole calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(DateOf(b).Sub(DateOf(a)) / Day)
}

// AddDays returns the calendar date n days after t.
func AddDays(t time.Time, n int) time.Time {
	return DateOf(t).AddDate(0, 0, n)
}
