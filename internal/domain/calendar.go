package domain

import "time"

// Fixed business calendar: Monday to Friday, 09:00 to 17:00.
const (
	WorkStartHour   = 9
	WorkEndHour     = 17
	WorkHoursPerDay = WorkEndHour - WorkStartHour
)

// IsWorkingDay returns true for Monday through Friday.
func IsWorkingDay(day time.Weekday) bool {
	return day >= time.Monday && day <= time.Friday
}

// WorkStart returns 09:00:00 on the calendar day of t, in t's location.
func WorkStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), WorkStartHour, 0, 0, 0, t.Location())
}

// WorkEnd returns 17:00:00 on the calendar day of t, in t's location.
func WorkEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), WorkEndHour, 0, 0, 0, t.Location())
}
