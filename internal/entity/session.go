package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// Session statuses. A session with status approved or paid may only change
// through the edit-request path, which demotes it to submitted first.
const (
	SessionOpen      = "open"
	SessionSubmitted = "submitted"
	SessionApproved  = "approved"
	SessionRejected  = "rejected"
	SessionPaid      = "paid"
)

type ClockSession struct {
	bun.BaseModel `bun:"table:clock_sessions"`

	BasicEntity
	UserID          *int       `json:"user_id"          bun:"user_id"`
	UserEmail       *string    `json:"user_email"       bun:"user_email"`
	ClockInAt       *time.Time `json:"clock_in_at"      bun:"clock_in_at"`
	ClockOutAt      *time.Time `json:"clock_out_at"     bun:"clock_out_at"`
	BreakMinutes    int        `json:"break_minutes"    bun:"break_minutes"`
	TotalMinutes    *int       `json:"total_minutes"    bun:"total_minutes"`
	Status          *string    `json:"status"           bun:"status"`
	SubmittedAt     *time.Time `json:"submitted_at"     bun:"submitted_at"`
	ReviewedAt      *time.Time `json:"reviewed_at"      bun:"reviewed_at"`
	ApproverID      *int       `json:"approver_id"      bun:"approver_id"`
	ApproverComment *string    `json:"approver_comment" bun:"approver_comment"`

	PendingClockInAt    *time.Time `json:"-" bun:"pending_clock_in_at"`
	PendingClockOutAt   *time.Time `json:"-" bun:"pending_clock_out_at"`
	PendingBreakMinutes *int       `json:"-" bun:"pending_break_minutes"`
	PendingReason       *string    `json:"-" bun:"pending_reason"`
	PendingRequestedBy  *int       `json:"-" bun:"pending_requested_by"`
	PendingRequestedAt  *time.Time `json:"-" bun:"pending_requested_at"`
}

// PendingEdit is the proposed correction attached to a session. It is
// flattened into the clock_sessions row and cleared when the edit is applied.
type PendingEdit struct {
	ClockInAt    *time.Time `json:"clock_in_at"`
	ClockOutAt   *time.Time `json:"clock_out_at"`
	BreakMinutes *int       `json:"break_minutes"`
	Reason       string     `json:"reason"`
	RequestedBy  int        `json:"requested_by"`
	RequestedAt  time.Time  `json:"requested_at"`
}

// PendingEdit returns the attached edit proposal, or nil when none exists.
func (s *ClockSession) PendingEdit() *PendingEdit {
	if s.PendingRequestedAt == nil {
		return nil
	}

	edit := PendingEdit{
		ClockInAt:    s.PendingClockInAt,
		ClockOutAt:   s.PendingClockOutAt,
		BreakMinutes: s.PendingBreakMinutes,
		RequestedAt:  *s.PendingRequestedAt,
	}
	if s.PendingReason != nil {
		edit.Reason = *s.PendingReason
	}
	if s.PendingRequestedBy != nil {
		edit.RequestedBy = *s.PendingRequestedBy
	}
	return &edit
}
