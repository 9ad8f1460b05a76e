package timesheet

import (
	"context"

	"timeclock/backend/internal/entity"
	"timeclock/backend/internal/repository/postgres/session"
)

type Session interface {
	ClockIn(ctx context.Context) (session.SessionView, error)
	ClockOut(ctx context.Context, request session.ClockOutRequest) (session.SessionView, error)
	GetSessions(ctx context.Context, filter session.Filter) ([]session.SessionView, error)

	CreateManual(ctx context.Context, request session.CreateManualRequest) (session.SessionView, error)
	GetMyList(ctx context.Context, filter session.Filter) ([]session.SessionView, error)
	GetPendingList(ctx context.Context, filter session.Filter) ([]session.SessionView, error)

	SubmitEdit(ctx context.Context, request session.SubmitEditRequest) (session.SessionView, error)
	Approve(ctx context.Context, request session.ReviewRequest) (session.SessionView, error)
	Reject(ctx context.Context, request session.ReviewRequest) (session.SessionView, error)
	BulkApprove(ctx context.Context, request session.BulkApproveRequest) (session.BulkApproveResponse, error)

	GetAuditLog(ctx context.Context, id int) ([]entity.TimesheetAudit, error)
	GetExportRows(ctx context.Context, filter session.Filter) ([]session.ExportRow, error)
}
