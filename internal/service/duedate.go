package service

import (
	"fmt"
	"math"
	"time"

	"github.com/mtlprog/duedate/internal/domain"
)

// maxTurnaroundHours is the largest turnaround representable as a time.Duration.
var maxTurnaroundHours = float64(math.MaxInt64 / int64(time.Hour))

// CalculateDueDate returns the instant at which turnaroundHours working hours
// have elapsed since submit. Nights and weekends are skipped.
// The submit instant must itself fall inside working hours.
func CalculateDueDate(submit time.Time, turnaroundHours float64) (time.Time, error) {
	if !IsWorkingTime(submit) {
		return time.Time{}, fmt.Errorf("%w: got %s", domain.ErrOutsideWorkingHours, submit.Format("Monday 2006-01-02 15:04:05"))
	}

	if math.IsNaN(turnaroundHours) || math.IsInf(turnaroundHours, 0) || turnaroundHours > maxTurnaroundHours {
		return time.Time{}, fmt.Errorf("%w: got %v", domain.ErrInvalidTurnaround, turnaroundHours)
	}
	if turnaroundHours < 0 {
		return time.Time{}, fmt.Errorf("%w: got %v", domain.ErrNegativeTurnaround, turnaroundHours)
	}

	if turnaroundHours == 0 {
		return submit, nil
	}

	remaining := time.Duration(math.Round(turnaroundHours * float64(time.Hour)))

	leftToday := remainingInDay(submit)
	if remaining <= leftToday {
		return submit.Add(remaining), nil
	}

	remaining -= leftToday
	current := NextWorkingDayStart(submit)

	fullDay := domain.WorkHoursPerDay * time.Hour
	for remaining >= fullDay {
		remaining -= fullDay
		current = NextWorkingDayStart(current)
	}

	if remaining > 0 {
		current = domain.WorkStart(current).Add(remaining)
	}

	return current, nil
}

// IsWorkingTime reports whether t falls inside the business calendar.
// 17:00:00 sharp counts as working time; anything after it does not.
func IsWorkingTime(t time.Time) bool {
	if !domain.IsWorkingDay(t.Weekday()) {
		return false
	}

	hour := t.Hour()
	if hour >= domain.WorkStartHour && hour < domain.WorkEndHour {
		return true
	}

	return t.Equal(domain.WorkEnd(t))
}

// RemainingHoursInDay returns the working hours left between t and 17:00
// on the same day. Only meaningful for instants that pass IsWorkingTime.
func RemainingHoursInDay(t time.Time) float64 {
	return remainingInDay(t).Hours()
}

func remainingInDay(t time.Time) time.Duration {
	return time.Duration(domain.WorkEndHour-t.Hour())*time.Hour -
		time.Duration(t.Minute())*time.Minute -
		time.Duration(t.Second())*time.Second
}

// NextWorkingDayStart returns 09:00 on the first working day after t's calendar day.
func NextWorkingDayStart(t time.Time) time.Time {
	next := domain.WorkStart(t).AddDate(0, 0, 1)
	for !domain.IsWorkingDay(next.Weekday()) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
