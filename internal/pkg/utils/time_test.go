package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockMinutes(t *testing.T) {
	t.Run("valid times map to minute of day", func(t *testing.T) {
		cases := map[string]int{
			"00:00": 0,
			"00:01": 1,
			"09:30": 570,
			"12:00": 720,
			"23:59": 1439,
		}
		for clock, want := range cases {
			got, err := ParseClockMinutes(clock)
			require.NoError(t, err, clock)
			assert.Equal(t, want, got, clock)
		}
	})

	t.Run("malformed or out of range times are rejected", func(t *testing.T) {
		for _, clock := range []string{"", "9", "24:00", "12:60", "-1:00", "ab:cd", "12.30"} {
			_, err := ParseClockMinutes(clock)
			assert.Error(t, err, clock)
		}
	})
}

func TestFormatClockMinutes(t *testing.T) {
	assert.Equal(t, "00:00", FormatClockMinutes(0))
	assert.Equal(t, "09:05", FormatClockMinutes(545))
	assert.Equal(t, "23:59", FormatClockMinutes(1439))
}

func TestDateInRange(t *testing.T) {
	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local)
	end := time.Date(2025, 6, 6, 0, 0, 0, 0, time.Local)

	t.Run("bounds are inclusive", func(t *testing.T) {
		assert.True(t, DateInRange(start, start, end))
		assert.True(t, DateInRange(end, start, end))
		assert.True(t, DateInRange(start.AddDate(0, 0, 2), start, end))
	})

	t.Run("time of day does not matter", func(t *testing.T) {
		lateOnEnd := time.Date(2025, 6, 6, 23, 30, 0, 0, time.Local)
		assert.True(t, DateInRange(lateOnEnd, start, end))
	})

	t.Run("dates outside are excluded", func(t *testing.T) {
		assert.False(t, DateInRange(start.AddDate(0, 0, -1), start, end))
		assert.False(t, DateInRange(end.AddDate(0, 0, 1), start, end))
	})
}

func TestWeekdayKey(t *testing.T) {
	monday := time.Date(2025, 6, 2, 10, 0, 0, 0, time.Local)
	assert.Equal(t, "monday", WeekdayKey(monday))
	assert.Equal(t, "sunday", WeekdayKey(monday.AddDate(0, 0, 6)))
}

func TestIsWeekdayKey(t *testing.T) {
	assert.True(t, IsWeekdayKey("monday"))
	assert.True(t, IsWeekdayKey("sunday"))
	assert.False(t, IsWeekdayKey("Monday"))
	assert.False(t, IsWeekdayKey("lundi"))
	assert.False(t, IsWeekdayKey(""))
}

func TestSameMonthDay(t *testing.T) {
	christmas2024 := time.Date(2024, 12, 25, 0, 0, 0, 0, time.Local)
	christmas2025 := time.Date(2025, 12, 25, 9, 30, 0, 0, time.Local)
	assert.True(t, SameMonthDay(christmas2024, christmas2025))
	assert.False(t, SameMonthDay(christmas2024, christmas2024.AddDate(0, 0, 1)))
}
