// Package timesheet holds the session lifecycle rules: duration math, the
// pending-edit merge, lock checks and the manual-entry window. Repositories
// apply these rules and persist the result.
package timesheet

import (
	"math"
	"time"

	"timeclock/backend/internal/entity"

	"github.com/pkg/errors"
)

var (
	ErrNotChronological = errors.New("clock_out_at must be after clock_in_at")
	ErrInFuture         = errors.New("manual timesheets must be in the past")
	ErrOutsideWeek      = errors.New("manual timesheets must be within this week")
	ErrForToday         = errors.New("use clock in/out for today's shift")
	ErrLocked           = errors.New("approved timesheets cannot be edited")
)

// ComputeTotalMinutes returns round(clockOut-clockIn in minutes) minus the
// break, floored at zero. Nil when either timestamp is missing.
func ComputeTotalMinutes(clockInAt, clockOutAt *time.Time, breakMinutes int) *int {
	if clockInAt == nil || clockOutAt == nil {
		return nil
	}

	diff := clockOutAt.Sub(*clockInAt)
	if diff < 0 {
		diff = 0
	}

	total := int(math.Round(diff.Minutes())) - breakMinutes
	if total < 0 {
		total = 0
	}
	return &total
}

// Locked reports whether a session may no longer be edited directly. Locked
// sessions can only change through the edit-request path. Rejected sessions
// are deliberately not locked, so they can be resubmitted the same way.
func Locked(status string) bool {
	return status == entity.SessionApproved || status == entity.SessionPaid
}

// EditRequest is a proposed correction. Unset fields fall back to the
// session's current values when the request is attached.
type EditRequest struct {
	ClockInAt    *time.Time
	ClockOutAt   *time.Time
	BreakMinutes *int
	Reason       string
}

// AttachEdit places the proposal on the session, filling unspecified fields
// from the current values, and demotes an approved session back to submitted
// so it goes through review again.
func AttachEdit(s *entity.ClockSession, actorID int, req EditRequest, now time.Time) error {
	if s.Status != nil && Locked(*s.Status) {
		return ErrLocked
	}

	clockIn := req.ClockInAt
	if clockIn == nil {
		clockIn = s.ClockInAt
	}
	clockOut := req.ClockOutAt
	if clockOut == nil {
		clockOut = s.ClockOutAt
	}
	breakMinutes := s.BreakMinutes
	if req.BreakMinutes != nil {
		breakMinutes = *req.BreakMinutes
	}
	reason := req.Reason
	if reason == "" {
		reason = "Edit requested"
	}

	s.PendingClockInAt = clockIn
	s.PendingClockOutAt = clockOut
	s.PendingBreakMinutes = &breakMinutes
	s.PendingReason = &reason
	s.PendingRequestedBy = &actorID
	s.PendingRequestedAt = &now

	if s.Status != nil && *s.Status == entity.SessionApproved {
		submitted := entity.SessionSubmitted
		s.Status = &submitted
	}

	return nil
}

// MergePendingEdit applies the proposal's times and break to the session,
// recomputes the total and clears the proposal. A session without a pending
// edit is returned unchanged.
func MergePendingEdit(s *entity.ClockSession) {
	if s.PendingRequestedAt == nil {
		return
	}

	if s.PendingClockInAt != nil {
		s.ClockInAt = s.PendingClockInAt
	}
	if s.PendingClockOutAt != nil {
		s.ClockOutAt = s.PendingClockOutAt
	}
	if s.PendingBreakMinutes != nil {
		s.BreakMinutes = *s.PendingBreakMinutes
	}
	s.TotalMinutes = ComputeTotalMinutes(s.ClockInAt, s.ClockOutAt, s.BreakMinutes)

	s.PendingClockInAt = nil
	s.PendingClockOutAt = nil
	s.PendingBreakMinutes = nil
	s.PendingReason = nil
	s.PendingRequestedBy = nil
	s.PendingRequestedAt = nil
}

// WeekWindow returns the Sunday-aligned calendar week containing now.
func WeekWindow(now time.Time) (start, end time.Time) {
	start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start = start.AddDate(0, 0, -int(now.Weekday()))
	end = start.AddDate(0, 0, 7).Add(-time.Nanosecond)
	return start, end
}

// ValidateManualWindow enforces the rules for manually submitted entries:
// chronological order, past times only, inside the current Sunday-aligned
// week, and not for today (today is served by clock in/out).
func ValidateManualWindow(clockInAt, clockOutAt, now time.Time) error {
	if !clockOutAt.After(clockInAt) {
		return ErrNotChronological
	}
	if clockInAt.After(now) || clockOutAt.After(now) {
		return ErrInFuture
	}

	weekStart, weekEnd := WeekWindow(now)
	if clockInAt.Before(weekStart) || clockOutAt.After(weekEnd) {
		return ErrOutsideWeek
	}

	y1, m1, d1 := clockInAt.Date()
	y2, m2, d2 := now.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return ErrForToday
	}

	return nil
}
