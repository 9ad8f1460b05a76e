package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return ts
}

func TestGenerateWeekendOnlyRangeIsEmpty(t *testing.T) {
	// 2025-03-01 is a Saturday
	shifts := Generate(ShiftMorning, day(t, "2025-03-01"), day(t, "2025-03-02"))
	assert.Empty(t, shifts)
}

func TestGenerateSingleMonday(t *testing.T) {
	monday := day(t, "2025-03-03")
	shifts := Generate(ShiftMorning, monday, monday)

	require.Len(t, shifts, 1)
	assert.Equal(t, "2025-03-03 06:00", shifts[0].Start.Format("2006-01-02 15:04"))
	assert.Equal(t, "2025-03-03 14:00", shifts[0].End.Format("2006-01-02 15:04"))
}

func TestGenerateAfternoon(t *testing.T) {
	monday := day(t, "2025-03-03")
	shifts := Generate(ShiftAfternoon, monday, monday)

	require.Len(t, shifts, 1)
	assert.Equal(t, 14, shifts[0].Start.Hour())
	assert.Equal(t, 22, shifts[0].End.Hour())
}

func TestGenerateNightCrossesMidnight(t *testing.T) {
	monday := day(t, "2025-03-03")
	shifts := Generate(ShiftNight, monday, monday)

	require.Len(t, shifts, 1)
	assert.Equal(t, "2025-03-03 22:00", shifts[0].Start.Format("2006-01-02 15:04"))
	assert.Equal(t, "2025-03-04 06:00", shifts[0].End.Format("2006-01-02 15:04"))
}

func TestGenerateFullWeekSkipsWeekend(t *testing.T) {
	// Sunday through Saturday
	shifts := Generate(ShiftMorning, day(t, "2025-03-02"), day(t, "2025-03-08"))

	require.Len(t, shifts, 5)
	for _, s := range shifts {
		wd := s.Start.Weekday()
		assert.True(t, wd >= time.Monday && wd <= time.Friday)
	}
}

func TestGenerateInclusiveBounds(t *testing.T) {
	// Monday to Friday inclusive on both ends
	shifts := Generate(ShiftMorning, day(t, "2025-03-03"), day(t, "2025-03-07"))
	require.Len(t, shifts, 5)
	assert.Equal(t, time.Monday, shifts[0].Start.Weekday())
	assert.Equal(t, time.Friday, shifts[4].Start.Weekday())
}

func TestGenerateUnknownShiftTypeYieldsNothing(t *testing.T) {
	shifts := Generate("", day(t, "2025-03-03"), day(t, "2025-03-07"))
	assert.Empty(t, shifts)
}
