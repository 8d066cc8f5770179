package service

import (
	"fmt"
	"math"
)

// FormatHours renders a number of hours for display: 2.5 -> "2h 30m", 16 -> "16h".
func FormatHours(hours float64) string {
	totalMinutes := int(math.Round(hours * 60))
	if totalMinutes == 0 {
		return "0m"
	}

	sign := ""
	if totalMinutes < 0 {
		sign = "-"
		totalMinutes = -totalMinutes
	}

	h := totalMinutes / 60
	m := totalMinutes % 60

	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%s%dh %dm", sign, h, m)
	case h > 0:
		return fmt.Sprintf("%s%dh", sign, h)
	default:
		return fmt.Sprintf("%s%dm", sign, m)
	}
}
