package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime_Valid(t *testing.T) {
	t.Parallel()
	day := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	got, err := ParseClockTime(day, "08:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 1, 8, 30, 0, 0, time.UTC), got)

	got, err = ParseClockTime(day, "00:00")
	require.NoError(t, err)
	assert.Equal(t, day, got)

	got, err = ParseClockTime(day, "23:59")
	require.NoError(t, err)
	assert.Equal(t, 23, got.Hour())
	assert.Equal(t, 59, got.Minute())
}

func TestParseClockTime_Invalid(t *testing.T) {
	t.Parallel()
	day := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	for _, clock := range []string{"24:00", "12:60", "-1:00", "8:00", "08:5", "0800", "ab:cd", "", "08:00:00"} {
		_, err := ParseClockTime(day, clock)
		assert.ErrorIs(t, err, ErrInvalidTime, "clock %q", clock)
	}
}

func TestHoursBetween(t *testing.T) {
	t.Parallel()
	in := time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC)
	out := time.Date(2024, time.March, 1, 18, 0, 0, 0, time.UTC)

	hours, err := HoursBetween(in, out)
	require.NoError(t, err)
	assert.Equal(t, "10", hours.String())
}

func TestHoursBetween_InvalidRange(t *testing.T) {
	t.Parallel()
	in := time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC)

	_, err := HoursBetween(in, in)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = HoursBetween(in, in.Add(-time.Minute))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestHoursBetween_NanosecondAboveZero(t *testing.T) {
	t.Parallel()
	in := time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC)

	hours, err := HoursBetween(in, in.Add(time.Nanosecond))
	require.NoError(t, err)
	assert.True(t, hours.IsPositive(), "one nanosecond must yield worked hours just above zero, got %s", hours)
}

func TestDaysInMonth(t *testing.T) {
	t.Parallel()
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.January, 31},
		{2024, time.February, 29}, // leap year
		{2023, time.February, 28},
		{2000, time.February, 29}, // divisible by 400
		{1900, time.February, 28}, // divisible by 100 but not 400
		{2024, time.March, 31},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, DaysInMonth(tc.year, tc.month), "%d-%d", tc.year, tc.month)
	}
}

func TestExpectedWorkingDays_DefaultCountsEveryDay(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 31, ExpectedWorkingDays(2024, time.March, nil))
	assert.Equal(t, 29, ExpectedWorkingDays(2024, time.February, nil))
}

func TestExpectedWorkingDays_WithWeekend(t *testing.T) {
	t.Parallel()
	// March 2024 has five Fridays and five Saturdays.
	weekend := []time.Weekday{time.Friday, time.Saturday}
	assert.Equal(t, 21, ExpectedWorkingDays(2024, time.March, weekend))
}

func TestParseWeekdays(t *testing.T) {
	t.Parallel()

	got, err := ParseWeekdays("friday, Saturday")
	require.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Friday, time.Saturday}, got)

	got, err = ParseWeekdays("")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = ParseWeekdays("friday,noday")
	assert.ErrorIs(t, err, ErrInvalidWeekday)
}
