package timesheet

import (
	"testing"
	"time"

	"timeclock/backend/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tm(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return ts
}

func ptr[T any](v T) *T { return &v }

func TestComputeTotalMinutes(t *testing.T) {
	tests := []struct {
		name         string
		in, out      string
		breakMinutes int
		want         int
	}{
		{"eight hours no break", "2025-03-03T09:00:00Z", "2025-03-03T17:00:00Z", 0, 480},
		{"break subtracted", "2025-03-03T09:00:00Z", "2025-03-03T17:00:00Z", 30, 450},
		{"rounds to nearest minute", "2025-03-03T09:00:00Z", "2025-03-03T09:10:31Z", 0, 11},
		{"break exceeds duration floors at zero", "2025-03-03T09:00:00Z", "2025-03-03T09:10:00Z", 30, 0},
		{"out before in floors at zero", "2025-03-03T17:00:00Z", "2025-03-03T09:00:00Z", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, out := tm(t, tt.in), tm(t, tt.out)
			got := ComputeTotalMinutes(&in, &out, tt.breakMinutes)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestComputeTotalMinutesMissingTimestamp(t *testing.T) {
	in := tm(t, "2025-03-03T09:00:00Z")
	assert.Nil(t, ComputeTotalMinutes(&in, nil, 0))
	assert.Nil(t, ComputeTotalMinutes(nil, &in, 0))
}

func TestLocked(t *testing.T) {
	assert.True(t, Locked(entity.SessionApproved))
	assert.True(t, Locked(entity.SessionPaid))
	assert.False(t, Locked(entity.SessionOpen))
	assert.False(t, Locked(entity.SessionSubmitted))
	assert.False(t, Locked(entity.SessionRejected))
}

func TestAttachEditDefaultsToCurrentValues(t *testing.T) {
	in := tm(t, "2025-03-03T09:00:00Z")
	out := tm(t, "2025-03-03T17:00:00Z")
	now := tm(t, "2025-03-04T10:00:00Z")

	s := &entity.ClockSession{
		ClockInAt:    &in,
		ClockOutAt:   &out,
		BreakMinutes: 30,
		Status:       ptr(entity.SessionSubmitted),
	}

	newOut := tm(t, "2025-03-03T18:00:00Z")
	err := AttachEdit(s, 7, EditRequest{ClockOutAt: &newOut}, now)
	require.NoError(t, err)

	require.NotNil(t, s.PendingRequestedAt)
	assert.Equal(t, in, *s.PendingClockInAt)
	assert.Equal(t, newOut, *s.PendingClockOutAt)
	assert.Equal(t, 30, *s.PendingBreakMinutes)
	assert.Equal(t, "Edit requested", *s.PendingReason)
	assert.Equal(t, 7, *s.PendingRequestedBy)

	// the session itself is untouched until the edit is approved
	assert.Equal(t, out, *s.ClockOutAt)
}

func TestAttachEditLocked(t *testing.T) {
	now := tm(t, "2025-03-04T10:00:00Z")

	for _, status := range []string{entity.SessionApproved, entity.SessionPaid} {
		s := &entity.ClockSession{Status: &status}
		err := AttachEdit(s, 1, EditRequest{}, now)
		assert.ErrorIs(t, err, ErrLocked, status)
	}
}

func TestAttachEditRejectedAllowed(t *testing.T) {
	now := tm(t, "2025-03-04T10:00:00Z")
	s := &entity.ClockSession{Status: ptr(entity.SessionRejected)}

	require.NoError(t, AttachEdit(s, 1, EditRequest{Reason: "wrong day"}, now))
	assert.Equal(t, "wrong day", *s.PendingReason)
	assert.Equal(t, entity.SessionRejected, *s.Status)
}

func TestMergePendingEdit(t *testing.T) {
	in := tm(t, "2025-03-03T09:00:00Z")
	out := tm(t, "2025-03-03T17:00:00Z")
	newIn := tm(t, "2025-03-03T08:00:00Z")
	requested := tm(t, "2025-03-04T10:00:00Z")

	s := &entity.ClockSession{
		ClockInAt:           &in,
		ClockOutAt:          &out,
		BreakMinutes:        0,
		Status:              ptr(entity.SessionSubmitted),
		PendingClockInAt:    &newIn,
		PendingClockOutAt:   &out,
		PendingBreakMinutes: ptr(60),
		PendingReason:       ptr("forgot to clock in"),
		PendingRequestedBy:  ptr(7),
		PendingRequestedAt:  &requested,
	}

	MergePendingEdit(s)

	assert.Equal(t, newIn, *s.ClockInAt)
	assert.Equal(t, 60, s.BreakMinutes)
	require.NotNil(t, s.TotalMinutes)
	assert.Equal(t, 480, *s.TotalMinutes) // 9h - 60m break

	assert.Nil(t, s.PendingClockInAt)
	assert.Nil(t, s.PendingClockOutAt)
	assert.Nil(t, s.PendingBreakMinutes)
	assert.Nil(t, s.PendingReason)
	assert.Nil(t, s.PendingRequestedBy)
	assert.Nil(t, s.PendingRequestedAt)
}

func TestMergePendingEditNoop(t *testing.T) {
	in := tm(t, "2025-03-03T09:00:00Z")
	s := &entity.ClockSession{ClockInAt: &in, BreakMinutes: 15}

	MergePendingEdit(s)

	assert.Equal(t, in, *s.ClockInAt)
	assert.Nil(t, s.TotalMinutes)
}

func TestWeekWindow(t *testing.T) {
	// Wednesday 2025-03-05
	now := tm(t, "2025-03-05T13:45:00Z")
	start, end := WeekWindow(now)

	assert.Equal(t, time.Sunday, start.Weekday())
	assert.Equal(t, "2025-03-02", start.Format("2006-01-02"))
	assert.Equal(t, "2025-03-08", end.Format("2006-01-02"))
}

func TestValidateManualWindow(t *testing.T) {
	// Wednesday 2025-03-05
	now := tm(t, "2025-03-05T13:45:00Z")

	tests := []struct {
		name    string
		in, out string
		wantErr error
	}{
		{"yesterday ok", "2025-03-04T09:00:00Z", "2025-03-04T17:00:00Z", nil},
		{"out before in", "2025-03-04T17:00:00Z", "2025-03-04T09:00:00Z", ErrNotChronological},
		{"equal times", "2025-03-04T09:00:00Z", "2025-03-04T09:00:00Z", ErrNotChronological},
		{"in the future", "2025-03-06T09:00:00Z", "2025-03-06T17:00:00Z", ErrInFuture},
		{"previous week", "2025-03-01T09:00:00Z", "2025-03-01T17:00:00Z", ErrOutsideWeek},
		{"today", "2025-03-05T06:00:00Z", "2025-03-05T12:00:00Z", ErrForToday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateManualWindow(tm(t, tt.in), tm(t, tt.out), now)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
