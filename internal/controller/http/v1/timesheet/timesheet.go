package timesheet

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"time"

	"timeclock/backend/foundation/web"
	"timeclock/backend/internal/repository/postgres/session"
	"timeclock/backend/internal/service"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"
)

type Controller struct {
	session Session
}

func NewController(session Session) *Controller {
	return &Controller{session: session}
}

func (uc Controller) ClockIn(c *web.Context) error {
	response, err := uc.session.ClockIn(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusCreated)
}

func (uc Controller) ClockOut(c *web.Context) error {
	var request session.ClockOutRequest

	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.session.ClockOut(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetSessions(c *web.Context) error {
	filter, err := parseFilter(c)
	if err != nil {
		return c.RespondError(err)
	}

	list, err := uc.session.GetSessions(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"results": list,
			"count":   len(list),
		},
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) CreateManual(c *web.Context) error {
	var request session.CreateManualRequest

	if err := c.BindFunc(&request, "ClockInAt", "ClockOutAt"); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.session.CreateManual(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusCreated)
}

func (uc Controller) GetMyList(c *web.Context) error {
	filter, err := parseFilter(c)
	if err != nil {
		return c.RespondError(err)
	}

	list, err := uc.session.GetMyList(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"results": list,
			"count":   len(list),
		},
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetPendingList(c *web.Context) error {
	filter, err := parseFilter(c)
	if err != nil {
		return c.RespondError(err)
	}

	list, err := uc.session.GetPendingList(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"results": list,
			"count":   len(list),
		},
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) SubmitEdit(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request session.SubmitEditRequest
	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}
	request.ID = id

	response, err := uc.session.SubmitEdit(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Approve(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request session.ReviewRequest
	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}
	request.ID = id

	response, err := uc.session.Approve(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Reject(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request session.ReviewRequest
	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}
	request.ID = id

	response, err := uc.session.Reject(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) BulkApprove(c *web.Context) error {
	var request session.BulkApproveRequest

	if err := c.BindFunc(&request, "IDs"); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.session.BulkApprove(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetAuditLog(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	list, err := uc.session.GetAuditLog(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"results": list,
			"count":   len(list),
		},
		"status": true,
	}, http.StatusOK)
}

// ExportTimesheets streams an xlsx of sessions matching the filter.
func (uc Controller) ExportTimesheets(c *web.Context) error {
	filter, err := parseFilter(c)
	if err != nil {
		return c.RespondError(err)
	}

	rows, err := uc.session.GetExportRows(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	entries := make([]service.TimesheetRow, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, service.TimesheetRow{
			SessionID:    row.SessionID,
			FullName:     row.FullName,
			Email:        row.Email,
			ClockInAt:    row.ClockInAt,
			ClockOutAt:   row.ClockOutAt,
			BreakMinutes: row.BreakMinutes,
			TotalMinutes: row.TotalMinutes,
			Status:       row.Status,
		})
	}

	filePath := filepath.Join(os.TempDir(), fmt.Sprintf("timesheets_%d.xlsx", time.Now().UnixNano()))
	if err := service.AddTimesheetsToExcel(entries, filePath); err != nil {
		return c.RespondError(err)
	}
	defer os.Remove(filePath)

	file, err := os.Open(filePath)
	if err != nil {
		return c.RespondError(err)
	}
	defer file.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=\"timesheets.xlsx\"")
	c.Status(http.StatusOK)
	_, err = io.Copy(c.Writer, file)
	if err != nil {
		return c.RespondError(err)
	}

	return nil
}

func parseFilter(c *web.Context) (session.Filter, error) {
	var filter session.Filter

	if from, ok := c.GetQueryFunc(reflect.String, "from").(*string); ok && from != nil {
		parsed, err := date.ParseDate(*from)
		if err != nil {
			return session.Filter{}, web.NewRequestError(errors.Wrap(err, "parsing from date"), http.StatusBadRequest)
		}
		filter.From = &parsed
	}
	if to, ok := c.GetQueryFunc(reflect.String, "to").(*string); ok && to != nil {
		parsed, err := date.ParseDate(*to)
		if err != nil {
			return session.Filter{}, web.NewRequestError(errors.Wrap(err, "parsing to date"), http.StatusBadRequest)
		}
		filter.To = &parsed
	}
	if status, ok := c.GetQueryFunc(reflect.String, "status").(*string); ok {
		filter.Status = status
	}
	if userID, ok := c.GetQueryFunc(reflect.Int, "user_id").(*int); ok {
		filter.UserID = userID
	}
	if limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok {
		filter.Limit = limit
	}
	if offset, ok := c.GetQueryFunc(reflect.Int, "offset").(*int); ok {
		filter.Offset = offset
	}
	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if err := c.ValidQuery(); err != nil {
		return session.Filter{}, err
	}

	return filter, nil
}
