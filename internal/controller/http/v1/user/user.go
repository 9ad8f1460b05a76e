package user

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"reflect"

	"timeclock/backend/foundation/web"
	"timeclock/backend/internal/repository/postgres/user"
	"timeclock/backend/internal/service"
)

type Controller struct {
	user    User
	baseURL string
}

func NewController(user User, baseURL string) *Controller {
	return &Controller{user: user, baseURL: baseURL}
}

func (uc Controller) GetUserList(c *web.Context) error {
	var filter user.Filter

	if limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok {
		filter.Limit = limit
	}
	if offset, ok := c.GetQueryFunc(reflect.Int, "offset").(*int); ok {
		filter.Offset = offset
	}
	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if search, ok := c.GetQueryFunc(reflect.String, "search").(*string); ok {
		filter.Search = search
	}
	if role, ok := c.GetQueryFunc(reflect.String, "role").(*string); ok {
		filter.Role = role
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, count, err := uc.user.GetList(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"results": list,
			"count":   count,
		},
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetMe(c *web.Context) error {
	response, err := uc.user.GetMe(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetUserDetailById(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.user.GetDetailById(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

// GetBadgeQr streams a PNG badge for a user. Kiosks scan it at clock-in.
func (uc Controller) GetBadgeQr(c *web.Context) error {
	var id int
	if v, ok := c.GetQueryFunc(reflect.Int, "user_id").(*int); ok && v != nil {
		id = *v
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}
	if id == 0 {
		return c.RespondError(web.NewRequestError(errors.New("user_id parameter is required"), http.StatusBadRequest))
	}

	if _, err := uc.user.GetDetailById(c.Ctx, id); err != nil {
		return c.RespondError(err)
	}

	filePath := filepath.Join(os.TempDir(), fmt.Sprintf("badge_%d.png", id))
	if err := service.CreateBadgeQR(uc.baseURL, id, filePath); err != nil {
		return c.RespondError(err)
	}
	defer os.Remove(filePath)

	file, err := os.Open(filePath)
	if err != nil {
		return c.RespondError(err)
	}
	defer file.Close()

	c.Header("Content-Type", "image/png")
	c.Header("Content-Disposition", "inline; filename="+filepath.Base(filePath))
	c.Status(http.StatusOK)
	_, err = io.Copy(c.Writer, file)
	if err != nil {
		return c.RespondError(err)
	}

	return nil
}

func (uc Controller) CreateUser(c *web.Context) error {
	var request user.CreateRequest

	if err := c.BindFunc(&request, "FullName", "Email", "Password", "Role"); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.user.Create(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusCreated)
}

func (uc Controller) UpdateUserColumns(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request user.UpdateRequest
	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}
	request.ID = id

	if err := uc.user.UpdateColumns(c.Ctx, request); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) DeleteUser(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	if err := uc.user.Delete(c.Ctx, id); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}
