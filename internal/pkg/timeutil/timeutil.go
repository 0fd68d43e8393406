package timeutil

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var nanosPerHour = decimal.NewFromInt(int64(time.Hour))

// ParseClockTime combines a calendar day with a wall-clock value in "HH:MM"
// format and returns the resulting UTC instant. The hour must be in [0,23]
// and the minute in [0,59].
func ParseClockTime(day time.Time, clock string) (time.Time, error) {
	hh, mm, ok := strings.Cut(clock, ":")
	if !ok || len(hh) != 2 || len(mm) != 2 {
		return time.Time{}, ErrInvalidTime
	}

	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return time.Time{}, ErrInvalidTime
	}

	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return time.Time{}, ErrInvalidTime
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC), nil
}

// HoursBetween returns b-a expressed in hours. Timestamps carry nanosecond
// resolution, so the result is derived from the exact nanosecond difference
// rather than float division.
func HoursBetween(a, b time.Time) (decimal.Decimal, error) {
	if !b.After(a) {
		return decimal.Zero, ErrInvalidRange
	}
	return decimal.NewFromInt(b.Sub(a).Nanoseconds()).Div(nanosPerHour), nil
}

// DaysInMonth returns the number of calendar days in the given Gregorian
// month, including leap-year February.
func DaysInMonth(year int, month time.Month) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ExpectedWorkingDays counts the calendar days of a month excluding the given
// weekend weekdays. With no weekend configured every day counts.
func ExpectedWorkingDays(year int, month time.Month, weekend []time.Weekday) int {
	total := DaysInMonth(year, month)
	if len(weekend) == 0 {
		return total
	}

	off := make(map[time.Weekday]bool, len(weekend))
	for _, wd := range weekend {
		off[wd] = true
	}

	count := 0
	for day := 1; day <= total; day++ {
		if !off[time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Weekday()] {
			count++
		}
	}
	return count
}

// ParseWeekdays parses a comma-separated list of weekday names
// ("friday,saturday") into weekdays. Empty input yields an empty pattern.
func ParseWeekdays(s string) ([]time.Weekday, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	names := map[string]time.Weekday{
		"sunday":    time.Sunday,
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
	}

	var out []time.Weekday
	for _, part := range strings.Split(s, ",") {
		wd, ok := names[strings.ToLower(strings.TrimSpace(part))]
		if !ok {
			return nil, ErrInvalidWeekday
		}
		out = append(out, wd)
	}
	return out, nil
}
