package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	ClockLayout = "15:04"
	DateLayout  = "2006-01-02"

	MinutesPerDay = 24 * 60
)

// ParseClockMinutes converts an "HH:MM" 24-hour string to its minute-of-day
// integer. All schedule arithmetic runs on these integers; the strings only
// exist on the wire and in storage.
func ParseClockMinutes(clock string) (int, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q, expected HH:MM", clock)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", clock, err)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", clock, err)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("clock time %q out of range", clock)
	}
	return hours*60 + minutes, nil
}

// FormatClockMinutes renders a minute-of-day integer back to "HH:MM".
func FormatClockMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseDate parses an ISO calendar date ("YYYY-MM-DD") in the local timezone.
func ParseDate(date string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, date, time.Local)
}

// DateOnly truncates a timestamp to its calendar date.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func SameMonthDay(a, b time.Time) bool {
	return a.Month() == b.Month() && a.Day() == b.Day()
}

// DateInRange reports start <= date <= end comparing calendar dates only.
func DateInRange(date, start, end time.Time) bool {
	d := DateOnly(date)
	return !d.Before(DateOnly(start)) && !d.After(DateOnly(end))
}

// WeekdayKey maps a date to the lowercase day name used as working-hours map
// key ("monday".."sunday").
func WeekdayKey(date time.Time) string {
	return strings.ToLower(date.Weekday().String())
}

var weekdayKeys = map[string]struct{}{
	"monday": {}, "tuesday": {}, "wednesday": {}, "thursday": {},
	"friday": {}, "saturday": {}, "sunday": {},
}

func IsWeekdayKey(day string) bool {
	_, ok := weekdayKeys[day]
	return ok
}
