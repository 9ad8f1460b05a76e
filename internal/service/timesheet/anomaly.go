package timesheet

import (
	"time"

	"timeclock/backend/internal/entity"
)

// Advisory anomaly flags. They are computed at read time and never stored.
const (
	AnomalyStartOffset = "start_offset"
	AnomalyShortShift  = "short_shift"
	AnomalyLongShift   = "long_shift"
	AnomalyPendingEdit = "pending_edit"
)

const (
	startOffsetLimitMinutes = 15
	shortShiftMinutes       = 300
	longShiftMinutes        = 720
)

func shiftStartHour(shiftType string) int {
	switch shiftType {
	case "MORNING":
		return 6
	case "AFTERNOON":
		return 14
	default:
		return 22
	}
}

// Anomalies annotates a session with the advisory flags: a clock-in more than
// 15 minutes off the shift-implied start, shifts under 300 or over 720
// minutes, and the presence of a pending edit.
func Anomalies(s *entity.ClockSession, shiftType *string) []string {
	anomalies := []string{}

	minutes := s.TotalMinutes
	if minutes == nil {
		minutes = ComputeTotalMinutes(s.ClockInAt, s.ClockOutAt, s.BreakMinutes)
	}

	if shiftType != nil && s.ClockInAt != nil {
		in := *s.ClockInAt
		expected := time.Date(in.Year(), in.Month(), in.Day(), shiftStartHour(*shiftType), 0, 0, 0, in.Location())

		delta := in.Sub(expected)
		if delta < 0 {
			delta = -delta
		}
		if delta > startOffsetLimitMinutes*time.Minute {
			anomalies = append(anomalies, AnomalyStartOffset)
		}
	}

	if minutes != nil {
		if *minutes < shortShiftMinutes {
			anomalies = append(anomalies, AnomalyShortShift)
		}
		if *minutes > longShiftMinutes {
			anomalies = append(anomalies, AnomalyLongShift)
		}
	}

	if s.PendingRequestedAt != nil {
		anomalies = append(anomalies, AnomalyPendingEdit)
	}

	return anomalies
}
