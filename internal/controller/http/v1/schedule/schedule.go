package schedule

import (
	"fmt"
	"net/http"
	"reflect"
	"time"

	"timeclock/backend/foundation/web"
	"timeclock/backend/internal/service/schedule"

	"github.com/pkg/errors"
)

type Controller struct {
	user User
}

func NewController(user User) *Controller {
	return &Controller{user: user}
}

type shiftResponse struct {
	ID    string    `json:"id"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Notes string    `json:"notes,omitempty"`
}

// GetShifts returns the caller's upcoming shifts. The default window is
// today through fourteen days out.
func (uc Controller) GetShifts(c *web.Context) error {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 0, 14)

	if raw, ok := c.GetQueryFunc(reflect.String, "from").(*string); ok && raw != nil {
		parsed, err := time.Parse(time.RFC3339, *raw)
		if err != nil {
			parsed, err = time.Parse("2006-01-02", *raw)
		}
		if err != nil {
			return c.RespondError(web.NewRequestError(errors.New("from and to must be valid ISO date strings"), http.StatusBadRequest))
		}
		from = parsed
	}
	if raw, ok := c.GetQueryFunc(reflect.String, "to").(*string); ok && raw != nil {
		parsed, err := time.Parse(time.RFC3339, *raw)
		if err != nil {
			parsed, err = time.Parse("2006-01-02", *raw)
		}
		if err != nil {
			return c.RespondError(web.NewRequestError(errors.New("from and to must be valid ISO date strings"), http.StatusBadRequest))
		}
		to = parsed
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	me, err := uc.user.GetMe(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	// No assigned schedule yet.
	if me.ShiftType == nil {
		return c.Respond(map[string]interface{}{
			"data":   []shiftResponse{},
			"status": true,
		}, http.StatusOK)
	}

	generated := schedule.Generate(*me.ShiftType, from, to)

	result := make([]shiftResponse, 0, len(generated))
	for i, s := range generated {
		result = append(result, shiftResponse{
			ID:    fmt.Sprintf("%d-%s-%d", me.ID, s.Start.Format(time.RFC3339), i),
			Start: s.Start,
			End:   s.End,
			Notes: s.Notes,
		})
	}

	return c.Respond(map[string]interface{}{
		"data":   result,
		"status": true,
	}, http.StatusOK)
}
