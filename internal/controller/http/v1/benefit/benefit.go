package benefit

import (
	"net/http"
	"reflect"

	"timeclock/backend/foundation/web"
	"timeclock/backend/internal/repository/postgres/benefit"
)

type Controller struct {
	benefit Benefit
}

func NewController(benefit Benefit) *Controller {
	return &Controller{benefit: benefit}
}

func (uc Controller) GetBenefitList(c *web.Context) error {
	var filter benefit.Filter

	if category, ok := c.GetQueryFunc(reflect.String, "category").(*string); ok {
		filter.Category = category
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, err := uc.benefit.GetList(c.Ctx, filter)
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
