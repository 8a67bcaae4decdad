package bucket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarKeys_UTC(t *testing.T) {
	ts := time.Date(2024, 1, 1, 7, 30, 0, 0, time.UTC) // Monday

	assert.Equal(t, "2024-01-01", DayKey(ts, time.UTC))
	assert.Equal(t, "07", HourKey(ts, time.UTC))
	assert.Equal(t, "1", WeekdayKey(ts, time.UTC))
	assert.Equal(t, "Monday", WeekdayLabel("1"))
	assert.Equal(t, "07:00", HourLabel("07"))
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), StartOfDay(ts, time.UTC))
}

func TestCalendarKeys_LocalZone(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	ts := time.Date(2023, 12, 31, 23, 15, 0, 0, time.UTC) // Sunday in UTC

	assert.Equal(t, "2024-01-01", DayKey(ts, loc))
	assert.Equal(t, "01", HourKey(ts, loc))
	assert.Equal(t, "1", WeekdayKey(ts, loc))

	start := StartOfDay(ts, loc)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, loc).Unix(), start.Unix())
}

func TestParseDay(t *testing.T) {
	day, err := ParseDay("2024-02-29", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), day)

	_, err = ParseDay("2024-13-01", time.UTC)
	require.Error(t, err)
}

func TestWeekdayLabel_Invalid(t *testing.T) {
	assert.Equal(t, UnknownLabel, WeekdayLabel("9"))
	assert.Equal(t, UnknownLabel, WeekdayLabel("x"))
}

func TestNilLocationDefaultsToUTC(t *testing.T) {
	ts := time.Date(2024, 5, 5, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-05-05", DayKey(ts, nil))
}
