package pay

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"timeclock/backend/foundation/web"
	"timeclock/backend/internal/service"
)

type Controller struct {
	pay Pay
}

func NewController(pay Pay) *Controller {
	return &Controller{pay: pay}
}

func (uc Controller) GetOverview(c *web.Context) error {
	response, err := uc.pay.GetOverview(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetRecentPeriods(c *web.Context) error {
	periods, err := uc.pay.GetRecentPeriods(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"periods": periods,
		},
		"status": true,
	}, http.StatusOK)
}

// GetStatement streams the current period's statement as a PDF.
func (uc Controller) GetStatement(c *web.Context) error {
	data, err := uc.pay.GetStatement(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	filePath := filepath.Join(os.TempDir(), fmt.Sprintf("statement_%d.pdf", time.Now().UnixNano()))
	statement := service.PayStatement{
		FullName:       data.FullName,
		Email:          data.Email,
		PeriodLabel:    data.PeriodLabel,
		NextPayDate:    data.NextPayDate,
		SubmittedHours: data.SubmittedHours,
		ApprovedHours:  data.ApprovedHours,
		EstimatedPay:   data.EstimatedPay,
		GeneratedAt:    data.GeneratedAt,
	}
	if err := service.CreatePayStatementPDF(statement, filePath); err != nil {
		return c.RespondError(err)
	}
	defer os.Remove(filePath)

	file, err := os.Open(filePath)
	if err != nil {
		return c.RespondError(err)
	}
	defer file.Close()

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", "attachment; filename=\"pay_statement.pdf\"")
	c.Status(http.StatusOK)
	_, err = io.Copy(c.Writer, file)
	if err != nil {
		return c.RespondError(err)
	}

	return nil
}
