// Package payperiod implements the two period conventions used by the pay
// estimator. The overview uses a fixed bimonthly split of the calendar month;
// the history listing walks backward in rolling 14-day blocks. The two are
// intentionally distinct policies.
package payperiod

import (
	"fmt"
	"time"
)

// Policy is the bimonthly split configuration: day 1 through FirstPeriodEnd,
// then through SecondPeriodEnd (clamped to the month's last day). The pay
// date trails the period end by ProcessingDelayDays.
type Policy struct {
	FirstPeriodEnd      int
	SecondPeriodEnd     int
	ProcessingDelayDays int
}

type Period struct {
	Start       time.Time
	End         time.Time
	Label       string
	NextPayDate time.Time
}

type Window struct {
	Start time.Time
	End   time.Time
	Label string
}

func lastDayOfMonth(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

func periodLabel(start, end time.Time) string {
	return fmt.Sprintf("%s – %s", start.Format("1/2/2006"), end.Format("1/2/2006"))
}

// Current returns the bimonthly period containing now. The period covers
// whole days: start at midnight, end at the last nanosecond of the end day.
func (p Policy) Current(now time.Time) Period {
	year, month, day := now.Date()
	loc := now.Location()

	var start, end time.Time
	if day <= p.FirstPeriodEnd {
		start = time.Date(year, month, 1, 0, 0, 0, 0, loc)
		end = time.Date(year, month, p.FirstPeriodEnd, 0, 0, 0, 0, loc)
	} else {
		start = time.Date(year, month, p.FirstPeriodEnd+1, 0, 0, 0, 0, loc)
		endDay := p.SecondPeriodEnd
		if last := lastDayOfMonth(year, month, loc); endDay > last {
			endDay = last
		}
		end = time.Date(year, month, endDay, 0, 0, 0, 0, loc)
	}

	return Period{
		Start:       start,
		End:         end.AddDate(0, 0, 1).Add(-time.Nanosecond),
		Label:       periodLabel(start, end),
		NextPayDate: end.AddDate(0, 0, p.ProcessingDelayDays),
	}
}

// RecentWindows returns count rolling 14-day blocks walking backward from
// now, most recent first: block i ends at now minus 14*i days.
func RecentWindows(now time.Time, count int) []Window {
	windows := make([]Window, 0, count)

	for i := 1; i <= count; i++ {
		end := now.AddDate(0, 0, -14*i)
		start := end.AddDate(0, 0, -13)
		windows = append(windows, Window{
			Start: start,
			End:   end,
			Label: periodLabel(start, end),
		})
	}

	return windows
}

// YearStart returns January 1 of now's year, for year-to-date sums.
func YearStart(now time.Time) time.Time {
	return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
}
