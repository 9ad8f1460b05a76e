package web

import (
	"context"
	"net/http"
	"reflect"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Context carries the request scoped context.Context alongside the gin
// context. Repositories receive Ctx, which is where claims are stored.
type Context struct {
	*gin.Context
	Ctx context.Context

	paramErrs []error
	queryErrs []error
}

// GetParam parses a path parameter into the requested kind. Parse failures
// are collected and reported by ValidParam.
func (c *Context) GetParam(kind reflect.Kind, name string) interface{} {
	raw := c.Param(name)

	switch kind {
	case reflect.Int:
		v, err := strconv.Atoi(raw)
		if err != nil {
			c.paramErrs = append(c.paramErrs, errors.Errorf("param %q must be an integer", name))
			return 0
		}
		return v
	default:
		return raw
	}
}

func (c *Context) ValidParam() error {
	if len(c.paramErrs) == 0 {
		return nil
	}
	return NewRequestError(c.paramErrs[0], http.StatusBadRequest)
}

// GetQueryFunc parses an optional query parameter into a typed pointer.
// A missing parameter yields nil so the caller's type assertion fails and the
// filter field stays unset.
func (c *Context) GetQueryFunc(kind reflect.Kind, name string) interface{} {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil
	}

	switch kind {
	case reflect.Int:
		v, err := strconv.Atoi(raw)
		if err != nil {
			c.queryErrs = append(c.queryErrs, errors.Errorf("query %q must be an integer", name))
			return nil
		}
		return &v
	case reflect.Bool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.queryErrs = append(c.queryErrs, errors.Errorf("query %q must be a boolean", name))
			return nil
		}
		return &v
	default:
		return &raw
	}
}

func (c *Context) ValidQuery() error {
	if len(c.queryErrs) == 0 {
		return nil
	}
	return NewRequestError(c.queryErrs[0], http.StatusBadRequest)
}

// BindFunc decodes the request body into v and checks the listed required
// fields.
func (c *Context) BindFunc(v interface{}, requiredFields ...string) error {
	if err := c.ShouldBind(v); err != nil {
		return NewRequestError(errors.Wrap(err, "parsing request body"), http.StatusBadRequest)
	}

	return ValidateRequired(v, requiredFields...)
}

// Respond writes data as the JSON response.
func (c *Context) Respond(data interface{}, status int) error {
	c.JSON(status, data)
	return nil
}

// RespondError translates an application error to a JSON error response.
// Unexpected errors are reported as 500 without leaking internals outside of
// debug mode.
func (c *Context) RespondError(err error) error {
	var webErr *Error
	if errors.As(err, &webErr) {
		body := map[string]interface{}{
			"error":  webErr.Err.Error(),
			"status": false,
		}
		if len(webErr.Fields) > 0 {
			body["fields"] = webErr.Fields
		}
		c.JSON(webErr.Status, body)
		return nil
	}

	body := map[string]interface{}{
		"error":  "internal server error",
		"status": false,
	}
	if gin.Mode() != gin.ReleaseMode {
		body["error"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
	return nil
}
