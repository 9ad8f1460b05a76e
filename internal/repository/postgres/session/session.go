package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"timeclock/backend/foundation/web"
	"timeclock/backend/internal/auth"
	"timeclock/backend/internal/entity"
	"timeclock/backend/internal/pkg/repository/postgresql"
	"timeclock/backend/internal/repository/postgres"
	"timeclock/backend/internal/service/timesheet"

	"github.com/pkg/errors"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

func (r Repository) ClockIn(ctx context.Context) (SessionView, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return SessionView{}, err
	}

	now := time.Now()
	open := entity.SessionOpen

	detail := entity.ClockSession{
		UserID:    &claims.UserId,
		UserEmail: &claims.Email,
		ClockInAt: &now,
		Status:    &open,
	}
	detail.CreatedAt = now
	detail.CreatedBy = &claims.UserId

	_, err = r.NewInsert().Model(&detail).Returning("id").Exec(ctx, &detail.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return SessionView{}, web.NewRequestError(errors.New("an open session already exists"), http.StatusConflict)
		}
		return SessionView{}, web.NewRequestError(errors.Wrap(err, "creating clock session"), http.StatusBadRequest)
	}

	return SessionView{ClockSession: detail}, nil
}

func (r Repository) ClockOut(ctx context.Context, request ClockOutRequest) (SessionView, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return SessionView{}, err
	}

	var detail entity.ClockSession
	err = r.NewSelect().Model(&detail).
		Where("user_id = ? AND status = ? AND deleted_at IS NULL", claims.UserId, entity.SessionOpen).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return SessionView{}, web.NewRequestError(errors.New("no open session"), http.StatusNotFound)
	}
	if err != nil {
		return SessionView{}, web.NewRequestError(errors.Wrap(err, "selecting open session"), http.StatusInternalServerError)
	}

	now := time.Now()
	submitted := entity.SessionSubmitted

	detail.ClockOutAt = &now
	if request.BreakMinutes != nil && *request.BreakMinutes > 0 {
		detail.BreakMinutes = *request.BreakMinutes
	}
	detail.TotalMinutes = timesheet.ComputeTotalMinutes(detail.ClockInAt, detail.ClockOutAt, detail.BreakMinutes)
	detail.Status = &submitted
	detail.SubmittedAt = &now
	detail.UpdatedAt = &now
	detail.UpdatedBy = &claims.UserId

	q := r.NewUpdate().Table("clock_sessions").Where("deleted_at IS NULL AND id = ?", detail.ID)
	q.Set("clock_out_at = ?", detail.ClockOutAt)
	q.Set("break_minutes = ?", detail.BreakMinutes)
	q.Set("total_minutes = ?", detail.TotalMinutes)
	q.Set("status = ?", detail.Status)
	q.Set("submitted_at = ?", detail.SubmittedAt)
	q.Set("updated_at = ?", detail.UpdatedAt)
	q.Set("updated_by = ?", detail.UpdatedBy)

	_, err = q.Exec(ctx)
	if err != nil {
		return SessionView{}, web.NewRequestError(errors.Wrap(err, "closing clock session"), http.StatusBadRequest)
	}

	return SessionView{ClockSession: detail}, nil
}

func (r Repository) GetSessions(ctx context.Context, filter Filter) ([]SessionView, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, err
	}

	whereQuery := fmt.Sprintf(`WHERE s.deleted_at IS NULL AND s.user_id = %d`, claims.UserId)
	whereQuery += rangeQuery(filter, time.Now())

	var list []entity.ClockSession
	err = r.NewRaw(fmt.Sprintf(`
		SELECT s.* FROM clock_sessions s
		%s
		ORDER BY s.clock_in_at DESC
	`, whereQuery)).Scan(ctx, &list)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting clock sessions"), http.StatusInternalServerError)
	}

	views := make([]SessionView, 0, len(list))
	for i := range list {
		views = append(views, SessionView{
			ClockSession: list[i],
			PendingEdit:  list[i].PendingEdit(),
		})
	}

	return views, nil
}

func (r Repository) CreateManual(ctx context.Context, request CreateManualRequest) (SessionView, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return SessionView{}, err
	}

	if err := r.ValidateStruct(&request, "ClockInAt", "ClockOutAt"); err != nil {
		return SessionView{}, err
	}

	now := time.Now()
	if err := timesheet.ValidateManualWindow(*request.ClockInAt, *request.ClockOutAt, now); err != nil {
		return SessionView{}, web.NewRequestError(err, http.StatusBadRequest)
	}

	submitted := entity.SessionSubmitted

	detail := entity.ClockSession{
		UserID:      &claims.UserId,
		UserEmail:   &claims.Email,
		ClockInAt:   request.ClockInAt,
		ClockOutAt:  request.ClockOutAt,
		Status:      &submitted,
		SubmittedAt: &now,
	}
	if request.BreakMinutes != nil && *request.BreakMinutes > 0 {
		detail.BreakMinutes = *request.BreakMinutes
	}
	detail.TotalMinutes = timesheet.ComputeTotalMinutes(detail.ClockInAt, detail.ClockOutAt, detail.BreakMinutes)
	detail.CreatedAt = now
	detail.CreatedBy = &claims.UserId

	_, err = r.NewInsert().Model(&detail).Returning("id").Exec(ctx, &detail.ID)
	if err != nil {
		return SessionView{}, web.NewRequestError(errors.Wrap(err, "creating manual entry"), http.StatusBadRequest)
	}

	entry := auditEntry{
		Action:   entity.AuditSubmit,
		ToStatus: detail.Status,
		Payload:  map[string]interface{}{"manual": true},
	}
	if err := r.logAudit(ctx, detail.ID, claims, entry); err != nil {
		return SessionView{}, err
	}

	return SessionView{ClockSession: detail}, nil
}

func (r Repository) GetMyList(ctx context.Context, filter Filter) ([]SessionView, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, err
	}

	shiftType, err := r.getShiftType(ctx, claims.UserId)
	if err != nil {
		return nil, err
	}

	whereQuery := fmt.Sprintf(`WHERE s.deleted_at IS NULL AND s.user_id = %d`, claims.UserId)
	whereQuery += rangeQuery(filter, time.Now())
	if filter.Status != nil {
		whereQuery += fmt.Sprintf(` AND s.status = '%s'`, *filter.Status)
	}

	var list []entity.ClockSession
	err = r.NewRaw(fmt.Sprintf(`
		SELECT s.* FROM clock_sessions s
		%s
		ORDER BY s.clock_in_at DESC
	`, whereQuery)).Scan(ctx, &list)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting timesheet list"), http.StatusInternalServerError)
	}

	views := make([]SessionView, 0, len(list))
	for i := range list {
		views = append(views, SessionView{
			ClockSession: list[i],
			PendingEdit:  list[i].PendingEdit(),
			Anomalies:    timesheet.Anomalies(&list[i], shiftType),
		})
	}

	return views, nil
}

func (r Repository) GetPendingList(ctx context.Context, filter Filter) ([]SessionView, error) {
	_, err := r.CheckClaims(ctx, auth.RoleManager, auth.RoleAdmin)
	if err != nil {
		return nil, err
	}

	status := entity.SessionSubmitted
	if filter.Status != nil {
		status = *filter.Status
	}

	whereQuery := fmt.Sprintf(`WHERE s.deleted_at IS NULL AND s.status = '%s'`, status)
	if filter.UserID != nil {
		whereQuery += fmt.Sprintf(` AND s.user_id = %d`, *filter.UserID)
	}
	if filter.From != nil {
		whereQuery += fmt.Sprintf(` AND s.clock_in_at >= '%s'`, filter.From.Format("2006-01-02"))
	}
	if filter.To != nil {
		whereQuery += fmt.Sprintf(` AND s.clock_in_at < '%s'`, filter.To.AddDate(0, 0, 1).Format("2006-01-02"))
	}

	var limitQuery, offsetQuery string
	if filter.Page != nil && filter.Limit != nil {
		offset := (*filter.Page - 1) * (*filter.Limit)
		filter.Offset = &offset
	}
	if filter.Limit != nil {
		limitQuery = fmt.Sprintf(" LIMIT %d", *filter.Limit)
	}
	if filter.Offset != nil {
		offsetQuery = fmt.Sprintf(" OFFSET %d", *filter.Offset)
	}

	type pendingRow struct {
		entity.ClockSession
		FullName   *string `bun:"full_name"`
		OwnerEmail *string `bun:"owner_email"`
		OwnerShift *string `bun:"owner_shift"`
	}

	var rows []pendingRow
	err = r.NewRaw(fmt.Sprintf(`
		SELECT
			s.*,
			u.full_name AS full_name,
			u.email AS owner_email,
			u.shift_type AS owner_shift
		FROM clock_sessions s
		LEFT JOIN users u ON u.id = s.user_id
		%s
		ORDER BY s.clock_in_at DESC
		%s %s
	`, whereQuery, limitQuery, offsetQuery)).Scan(ctx, &rows)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting pending timesheets"), http.StatusInternalServerError)
	}

	views := make([]SessionView, 0, len(rows))
	for i := range rows {
		var owner *UserSummary
		if rows[i].UserID != nil {
			owner = &UserSummary{
				ID:        *rows[i].UserID,
				FullName:  rows[i].FullName,
				Email:     rows[i].OwnerEmail,
				ShiftType: rows[i].OwnerShift,
			}
		}
		views = append(views, SessionView{
			ClockSession: rows[i].ClockSession,
			PendingEdit:  rows[i].ClockSession.PendingEdit(),
			Anomalies:    timesheet.Anomalies(&rows[i].ClockSession, rows[i].OwnerShift),
			User:         owner,
		})
	}

	return views, nil
}

func (r Repository) SubmitEdit(ctx context.Context, request SubmitEditRequest) (SessionView, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return SessionView{}, err
	}

	detail, err := r.getByID(ctx, request.ID)
	if err != nil {
		return SessionView{}, err
	}

	if !isOwner(detail, claims) && !claims.Authorized(auth.RoleManager, auth.RoleAdmin) {
		return SessionView{}, web.NewRequestError(errors.New("not allowed to edit this session"), http.StatusForbidden)
	}

	fromStatus := detail.Status

	reason := ""
	if request.Reason != nil {
		reason = *request.Reason
	}

	edit := timesheet.EditRequest{
		ClockInAt:    request.ClockInAt,
		ClockOutAt:   request.ClockOutAt,
		BreakMinutes: request.BreakMinutes,
		Reason:       reason,
	}

	now := time.Now()
	if err := timesheet.AttachEdit(&detail, claims.UserId, edit, now); err != nil {
		if errors.Is(err, timesheet.ErrLocked) {
			return SessionView{}, web.NewRequestError(err, http.StatusLocked)
		}
		return SessionView{}, web.NewRequestError(err, http.StatusBadRequest)
	}

	q := r.NewUpdate().Table("clock_sessions").Where("deleted_at IS NULL AND id = ?", detail.ID)
	q.Set("status = ?", detail.Status)
	q.Set("pending_clock_in_at = ?", detail.PendingClockInAt)
	q.Set("pending_clock_out_at = ?", detail.PendingClockOutAt)
	q.Set("pending_break_minutes = ?", detail.PendingBreakMinutes)
	q.Set("pending_reason = ?", detail.PendingReason)
	q.Set("pending_requested_by = ?", detail.PendingRequestedBy)
	q.Set("pending_requested_at = ?", detail.PendingRequestedAt)
	q.Set("updated_at = ?", now)
	q.Set("updated_by = ?", claims.UserId)

	_, err = q.Exec(ctx)
	if err != nil {
		return SessionView{}, web.NewRequestError(errors.Wrap(err, "saving edit request"), http.StatusBadRequest)
	}

	entry := auditEntry{
		Action:     entity.AuditSubmitEdit,
		FromStatus: fromStatus,
		ToStatus:   detail.Status,
		Note:       detail.PendingReason,
		Payload: map[string]interface{}{
			"clock_in_at":   detail.PendingClockInAt,
			"clock_out_at":  detail.PendingClockOutAt,
			"break_minutes": detail.PendingBreakMinutes,
		},
	}
	if err := r.logAudit(ctx, detail.ID, claims, entry); err != nil {
		return SessionView{}, err
	}

	return SessionView{ClockSession: detail, PendingEdit: detail.PendingEdit()}, nil
}

func (r Repository) Approve(ctx context.Context, request ReviewRequest) (SessionView, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleManager, auth.RoleAdmin)
	if err != nil {
		return SessionView{}, err
	}

	detail, err := r.getByID(ctx, request.ID)
	if err != nil {
		return SessionView{}, err
	}

	fromStatus := detail.Status
	before := snapshot(detail)

	timesheet.MergePendingEdit(&detail)

	now := time.Now()
	approved := entity.SessionApproved
	detail.Status = &approved
	detail.ReviewedAt = &now
	detail.ApproverID = &claims.UserId
	detail.ApproverComment = request.Comment
	detail.UpdatedAt = &now
	detail.UpdatedBy = &claims.UserId

	if err := r.saveReview(ctx, detail); err != nil {
		return SessionView{}, err
	}

	entry := auditEntry{
		Action:     entity.AuditApprove,
		FromStatus: fromStatus,
		ToStatus:   detail.Status,
		Note:       request.Comment,
		Payload:    map[string]interface{}{"before": before, "after": snapshot(detail)},
	}
	if err := r.logAudit(ctx, detail.ID, claims, entry); err != nil {
		return SessionView{}, err
	}

	return SessionView{ClockSession: detail}, nil
}

func (r Repository) Reject(ctx context.Context, request ReviewRequest) (SessionView, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleManager, auth.RoleAdmin)
	if err != nil {
		return SessionView{}, err
	}

	detail, err := r.getByID(ctx, request.ID)
	if err != nil {
		return SessionView{}, err
	}

	fromStatus := detail.Status
	before := snapshot(detail)

	// The pending edit is left attached, the recorded times stay as they
	// were. A later approve still applies it.
	now := time.Now()
	rejected := entity.SessionRejected
	detail.Status = &rejected
	detail.ReviewedAt = &now
	detail.ApproverID = &claims.UserId
	detail.ApproverComment = request.Comment
	detail.UpdatedAt = &now
	detail.UpdatedBy = &claims.UserId

	if err := r.saveReview(ctx, detail); err != nil {
		return SessionView{}, err
	}

	entry := auditEntry{
		Action:     entity.AuditReject,
		FromStatus: fromStatus,
		ToStatus:   detail.Status,
		Note:       request.Comment,
		Payload:    map[string]interface{}{"before": before, "after": snapshot(detail)},
	}
	if err := r.logAudit(ctx, detail.ID, claims, entry); err != nil {
		return SessionView{}, err
	}

	return SessionView{ClockSession: detail}, nil
}

func (r Repository) BulkApprove(ctx context.Context, request BulkApproveRequest) (BulkApproveResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleManager, auth.RoleAdmin)
	if err != nil {
		return BulkApproveResponse{}, err
	}

	if len(request.IDs) == 0 {
		return BulkApproveResponse{}, web.NewRequestError(errors.New("ids is required"), http.StatusBadRequest)
	}

	updated := 0
	for _, id := range request.IDs {
		detail, err := r.getByID(ctx, id)
		if err != nil {
			// Missing or deleted rows are skipped, the rest still go through.
			if web.IsRequestError(err) {
				continue
			}
			return BulkApproveResponse{}, err
		}

		fromStatus := detail.Status
		before := snapshot(detail)
		timesheet.MergePendingEdit(&detail)

		now := time.Now()
		approved := entity.SessionApproved
		detail.Status = &approved
		detail.ReviewedAt = &now
		detail.ApproverID = &claims.UserId
		detail.UpdatedAt = &now
		detail.UpdatedBy = &claims.UserId

		if err := r.saveReview(ctx, detail); err != nil {
			return BulkApproveResponse{}, err
		}

		entry := auditEntry{
			Action:     entity.AuditApprove,
			FromStatus: fromStatus,
			ToStatus:   detail.Status,
			Payload:    map[string]interface{}{"before": before, "after": snapshot(detail)},
		}
		if err := r.logAudit(ctx, detail.ID, claims, entry); err != nil {
			return BulkApproveResponse{}, err
		}

		updated++
	}

	return BulkApproveResponse{Updated: updated}, nil
}

func (r Repository) GetAuditLog(ctx context.Context, id int) ([]entity.TimesheetAudit, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, err
	}

	detail, err := r.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isOwner(detail, claims) && !claims.Authorized(auth.RoleManager, auth.RoleAdmin) {
		return nil, web.NewRequestError(errors.New("not allowed to view this audit log"), http.StatusForbidden)
	}

	var list []entity.TimesheetAudit
	err = r.NewSelect().Model(&list).
		Where("session_id = ?", id).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting audit log"), http.StatusInternalServerError)
	}

	if list == nil {
		list = []entity.TimesheetAudit{}
	}

	return list, nil
}

func (r Repository) GetExportRows(ctx context.Context, filter Filter) ([]ExportRow, error) {
	_, err := r.CheckClaims(ctx, auth.RoleManager, auth.RoleAdmin)
	if err != nil {
		return nil, err
	}

	whereQuery := `WHERE s.deleted_at IS NULL`
	if filter.UserID != nil {
		whereQuery += fmt.Sprintf(` AND s.user_id = %d`, *filter.UserID)
	}
	if filter.Status != nil {
		whereQuery += fmt.Sprintf(` AND s.status = '%s'`, *filter.Status)
	}
	whereQuery += rangeQuery(filter, time.Now())

	query := fmt.Sprintf(`
		SELECT
			s.id,
			u.full_name,
			u.email,
			s.clock_in_at,
			s.clock_out_at,
			s.break_minutes,
			s.total_minutes,
			s.status
		FROM clock_sessions s
		LEFT JOIN users u ON u.id = s.user_id
		%s
		ORDER BY u.full_name ASC, s.clock_in_at ASC
	`, whereQuery)

	rows, err := r.QueryContext(ctx, query)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting export rows"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []ExportRow
	for rows.Next() {
		var row ExportRow
		var fullName, email sql.NullString
		if err = rows.Scan(
			&row.SessionID,
			&fullName,
			&email,
			&row.ClockInAt,
			&row.ClockOutAt,
			&row.BreakMinutes,
			&row.TotalMinutes,
			&row.Status,
		); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning export row"), http.StatusInternalServerError)
		}
		row.FullName = fullName.String
		row.Email = email.String
		list = append(list, row)
	}
	if err = rows.Err(); err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "reading export rows"), http.StatusInternalServerError)
	}

	return list, nil
}

func (r Repository) getByID(ctx context.Context, id int) (entity.ClockSession, error) {
	var detail entity.ClockSession
	err := r.NewSelect().Model(&detail).
		Where("id = ? AND deleted_at IS NULL", id).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.ClockSession{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return entity.ClockSession{}, web.NewRequestError(errors.Wrap(err, "selecting clock session"), http.StatusInternalServerError)
	}

	return detail, nil
}

func (r Repository) getShiftType(ctx context.Context, userID int) (*string, error) {
	var shiftType sql.NullString
	err := r.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT shift_type FROM users WHERE id = %d AND deleted_at IS NULL`, userID),
	).Scan(&shiftType)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting shift type"), http.StatusInternalServerError)
	}

	if !shiftType.Valid {
		return nil, nil
	}

	return &shiftType.String, nil
}

func (r Repository) saveReview(ctx context.Context, detail entity.ClockSession) error {
	q := r.NewUpdate().Table("clock_sessions").Where("deleted_at IS NULL AND id = ?", detail.ID)
	q.Set("clock_in_at = ?", detail.ClockInAt)
	q.Set("clock_out_at = ?", detail.ClockOutAt)
	q.Set("break_minutes = ?", detail.BreakMinutes)
	q.Set("total_minutes = ?", detail.TotalMinutes)
	q.Set("status = ?", detail.Status)
	q.Set("reviewed_at = ?", detail.ReviewedAt)
	q.Set("approver_id = ?", detail.ApproverID)
	q.Set("approver_comment = ?", detail.ApproverComment)
	q.Set("pending_clock_in_at = ?", detail.PendingClockInAt)
	q.Set("pending_clock_out_at = ?", detail.PendingClockOutAt)
	q.Set("pending_break_minutes = ?", detail.PendingBreakMinutes)
	q.Set("pending_reason = ?", detail.PendingReason)
	q.Set("pending_requested_by = ?", detail.PendingRequestedBy)
	q.Set("pending_requested_at = ?", detail.PendingRequestedAt)
	q.Set("updated_at = ?", detail.UpdatedAt)
	q.Set("updated_by = ?", detail.UpdatedBy)

	_, err := q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "saving review"), http.StatusBadRequest)
	}

	return nil
}

type auditEntry struct {
	Action     string
	FromStatus *string
	ToStatus   *string
	Note       *string
	Payload    map[string]interface{}
}

func (r Repository) logAudit(ctx context.Context, sessionID int, claims auth.Claims, entry auditEntry) error {
	var raw json.RawMessage
	if entry.Payload != nil {
		b, err := json.Marshal(entry.Payload)
		if err != nil {
			return web.NewRequestError(errors.Wrap(err, "marshalling audit payload"), http.StatusInternalServerError)
		}
		raw = b
	}

	audit := entity.TimesheetAudit{
		SessionID:  sessionID,
		ActorID:    claims.UserId,
		ActorEmail: claims.Email,
		Action:     entry.Action,
		FromStatus: entry.FromStatus,
		ToStatus:   entry.ToStatus,
		Note:       entry.Note,
		Payload:    raw,
		CreatedAt:  time.Now(),
	}

	_, err := r.NewInsert().Model(&audit).Returning("id").Exec(ctx, &audit.ID)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "writing audit entry"), http.StatusInternalServerError)
	}

	return nil
}

// rangeQuery bounds a listing by clock_in_at. Without parameters the window
// is the trailing seven days up to tomorrow.
func rangeQuery(filter Filter, now time.Time) string {
	from := now.AddDate(0, 0, -7)
	to := now.AddDate(0, 0, 1)

	if filter.From != nil {
		from = filter.From.Time
	}
	if filter.To != nil {
		to = filter.To.AddDate(0, 0, 1)
	}

	return fmt.Sprintf(
		` AND s.clock_in_at >= '%s' AND s.clock_in_at < '%s'`,
		from.Format("2006-01-02"),
		to.Format("2006-01-02"),
	)
}

func snapshot(s entity.ClockSession) map[string]interface{} {
	return map[string]interface{}{
		"clock_in_at":   s.ClockInAt,
		"clock_out_at":  s.ClockOutAt,
		"break_minutes": s.BreakMinutes,
		"total_minutes": s.TotalMinutes,
		"status":        s.Status,
	}
}

func isOwner(s entity.ClockSession, claims auth.Claims) bool {
	return s.UserID != nil && *s.UserID == claims.UserId
}

func isUniqueViolation(err error) bool {
	var pgErr interface{ Field(k byte) string }
	if errors.As(err, &pgErr) {
		return pgErr.Field('C') == "23505"
	}
	return false
}
