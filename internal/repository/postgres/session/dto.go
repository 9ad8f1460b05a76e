package session

import (
	"time"

	"timeclock/backend/internal/entity"

	"github.com/Azure/go-autorest/autorest/date"
)

type Filter struct {
	From   *date.Date
	To     *date.Date
	Status *string
	UserID *int
	Limit  *int
	Offset *int
	Page   *int
}

type ClockOutRequest struct {
	BreakMinutes *int `json:"break_minutes" form:"break_minutes"`
}

type CreateManualRequest struct {
	ClockInAt    *time.Time `json:"clock_in_at" form:"clock_in_at"`
	ClockOutAt   *time.Time `json:"clock_out_at" form:"clock_out_at"`
	BreakMinutes *int       `json:"break_minutes" form:"break_minutes"`
}

type SubmitEditRequest struct {
	ID           int        `json:"-" form:"-"`
	ClockInAt    *time.Time `json:"clock_in_at" form:"clock_in_at"`
	ClockOutAt   *time.Time `json:"clock_out_at" form:"clock_out_at"`
	BreakMinutes *int       `json:"break_minutes" form:"break_minutes"`
	Reason       *string    `json:"reason" form:"reason"`
}

type ReviewRequest struct {
	ID      int     `json:"-" form:"-"`
	Comment *string `json:"comment" form:"comment"`
}

type BulkApproveRequest struct {
	IDs []int `json:"ids" form:"ids"`
}

type UserSummary struct {
	ID        int     `json:"id"`
	FullName  *string `json:"full_name"`
	Email     *string `json:"email"`
	ShiftType *string `json:"shift_type"`
}

// SessionView is a session as returned to clients: the row itself plus the
// pending edit, read-time anomaly flags and, on manager listings, the owner.
type SessionView struct {
	entity.ClockSession
	PendingEdit *entity.PendingEdit `json:"pending_edit,omitempty"`
	Anomalies   []string            `json:"anomalies,omitempty"`
	User        *UserSummary        `json:"user,omitempty"`
}

type BulkApproveResponse struct {
	Updated int `json:"updated"`
}

// ExportRow feeds the spreadsheet export.
type ExportRow struct {
	SessionID    int
	FullName     string
	Email        string
	ClockInAt    time.Time
	ClockOutAt   *time.Time
	BreakMinutes int
	TotalMinutes *int
	Status       string
}
