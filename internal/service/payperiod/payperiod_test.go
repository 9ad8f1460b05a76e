package payperiod

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var policy = Policy{FirstPeriodEnd: 15, SecondPeriodEnd: 30, ProcessingDelayDays: 5}

func date(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return ts
}

func TestCurrentFirstHalf(t *testing.T) {
	p := policy.Current(date(t, "2025-03-10T12:00:00Z"))

	assert.Equal(t, "2025-03-01", p.Start.Format("2006-01-02"))
	assert.Equal(t, "2025-03-15", p.End.Format("2006-01-02"))
	assert.Equal(t, "2025-03-20", p.NextPayDate.Format("2006-01-02"))
}

func TestCurrentBoundaryDay(t *testing.T) {
	// day 15 still belongs to the first period
	p := policy.Current(date(t, "2025-03-15T23:00:00Z"))
	assert.Equal(t, "2025-03-01", p.Start.Format("2006-01-02"))

	// day 16 starts the second
	p = policy.Current(date(t, "2025-03-16T00:30:00Z"))
	assert.Equal(t, "2025-03-16", p.Start.Format("2006-01-02"))
	assert.Equal(t, "2025-03-30", p.End.Format("2006-01-02"))
}

func TestCurrentSecondHalfClampedToMonthEnd(t *testing.T) {
	p := policy.Current(date(t, "2025-02-20T12:00:00Z"))

	assert.Equal(t, "2025-02-16", p.Start.Format("2006-01-02"))
	assert.Equal(t, "2025-02-28", p.End.Format("2006-01-02"))
	assert.Equal(t, "2025-03-05", p.NextPayDate.Format("2006-01-02"))
}

func TestCurrentEndCoversWholeDay(t *testing.T) {
	p := policy.Current(date(t, "2025-03-10T12:00:00Z"))

	lastMoment := date(t, "2025-03-15T23:59:59Z")
	assert.True(t, lastMoment.Before(p.End) || lastMoment.Equal(p.End))

	nextDay := date(t, "2025-03-16T00:00:00Z")
	assert.True(t, nextDay.After(p.End))
}

func TestRecentWindows(t *testing.T) {
	now := date(t, "2025-03-31T12:00:00Z")
	windows := RecentWindows(now, 3)
	require.Len(t, windows, 3)

	assert.Equal(t, "2025-03-17", windows[0].End.Format("2006-01-02"))
	assert.Equal(t, "2025-03-04", windows[0].Start.Format("2006-01-02"))

	// blocks are adjacent 14-day spans, most recent first
	for i := 1; i < len(windows); i++ {
		assert.Equal(t, windows[i-1].Start.AddDate(0, 0, -1), windows[i].End)
		assert.True(t, windows[i].End.Before(windows[i-1].End))
	}
}

func TestYearStart(t *testing.T) {
	ys := YearStart(date(t, "2025-06-15T08:00:00Z"))
	assert.Equal(t, "2025-01-01", ys.Format("2006-01-02"))
}
