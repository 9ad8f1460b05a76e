package timesheet

import (
	"testing"
	"time"

	"timeclock/backend/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestAnomaliesShiftDuration(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		want    []string
	}{
		{"at short boundary", 300, []string{}},
		{"just under short boundary", 299, []string{AnomalyShortShift}},
		{"at long boundary", 720, []string{}},
		{"just over long boundary", 721, []string{AnomalyLongShift}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &entity.ClockSession{TotalMinutes: ptr(tt.minutes)}
			assert.Equal(t, tt.want, Anomalies(s, nil))
		})
	}
}

func TestAnomaliesStartOffset(t *testing.T) {
	shift := "MORNING"

	tests := []struct {
		name    string
		clockIn string
		flagged bool
	}{
		{"on time", "2025-03-03T06:00:00Z", false},
		{"fifteen minutes late", "2025-03-03T06:15:00Z", false},
		{"sixteen minutes late", "2025-03-03T06:16:00Z", true},
		{"twenty minutes early", "2025-03-03T05:40:00Z", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tm(t, tt.clockIn)
			s := &entity.ClockSession{ClockInAt: &in, TotalMinutes: ptr(480)}

			got := Anomalies(s, &shift)
			if tt.flagged {
				assert.Contains(t, got, AnomalyStartOffset)
			} else {
				assert.NotContains(t, got, AnomalyStartOffset)
			}
		})
	}
}

func TestAnomaliesNightShiftStart(t *testing.T) {
	shift := "NIGHT"
	in := tm(t, "2025-03-03T22:05:00Z")
	s := &entity.ClockSession{ClockInAt: &in, TotalMinutes: ptr(480)}

	assert.NotContains(t, Anomalies(s, &shift), AnomalyStartOffset)
}

func TestAnomaliesPendingEdit(t *testing.T) {
	requested := tm(t, "2025-03-04T10:00:00Z")
	s := &entity.ClockSession{TotalMinutes: ptr(480), PendingRequestedAt: &requested}

	assert.Contains(t, Anomalies(s, nil), AnomalyPendingEdit)
}

func TestAnomaliesComputesMinutesWhenUnset(t *testing.T) {
	in := tm(t, "2025-03-03T09:00:00Z")
	out := in.Add(2 * time.Hour)
	s := &entity.ClockSession{ClockInAt: &in, ClockOutAt: &out}

	assert.Contains(t, Anomalies(s, nil), AnomalyShortShift)
}
