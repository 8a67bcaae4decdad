package bucket

import (
	"fmt"
	"strconv"
	"time"
)

// DayLayout is the on-disk and wire format of a day bucket.
const DayLayout = "2006-01-02"

// DayKey returns the calendar day of t in loc.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(orUTC(loc)).Format(DayLayout)
}

// StartOfDay returns midnight of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(orUTC(loc))
	y, m, d := local.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, local.Location())
}

// ParseDay parses a YYYY-MM-DD day key as midnight in loc.
func ParseDay(day string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DayLayout, day, orUTC(loc))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q: %w", day, err)
	}
	return t, nil
}

// HourKey returns the zero-padded hour of day, "00" to "23".
func HourKey(t time.Time, loc *time.Location) string {
	return fmt.Sprintf("%02d", t.In(orUTC(loc)).Hour())
}

// HourLabel renders an hour key for display, e.g. "07:00".
func HourLabel(hourKey string) string {
	return hourKey + ":00"
}

// WeekdayKey returns the day of week, "0" (Sunday) to "6".
func WeekdayKey(t time.Time, loc *time.Location) string {
	return strconv.Itoa(int(t.In(orUTC(loc)).Weekday()))
}

// WeekdayLabel renders a weekday key for display.
func WeekdayLabel(weekdayKey string) string {
	n, err := strconv.Atoi(weekdayKey)
	if err != nil || n < 0 || n > 6 {
		return UnknownLabel
	}
	return time.Weekday(n).String()
}

func orUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}
