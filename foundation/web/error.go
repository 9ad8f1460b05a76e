package web

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// Error is used to pass an error during the request through the application
// with web specific context.
type Error struct {
	Err    error
	Status int
	Fields map[string]string
}

// NewRequestError wraps a provided error with an HTTP status code. This
// function should be used when repositories and controllers encounter expected
// errors.
func NewRequestError(err error, status int) error {
	return &Error{Err: err, Status: status}
}

func (err *Error) Error() string {
	return err.Err.Error()
}

// IsRequestError checks if an error of type Error exists in the chain.
func IsRequestError(err error) bool {
	var e *Error
	return errors.As(err, &e)
}

// ValidateRequired checks that the listed struct fields are set. Pointer
// fields must be non-nil, strings non-empty. v must be a pointer to a struct.
func ValidateRequired(v interface{}, fields ...string) error {
	if len(fields) == 0 {
		return nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return NewRequestError(errors.New("validate: expected a struct"), 500)
	}

	missing := map[string]string{}
	for _, name := range fields {
		f := rv.FieldByName(name)
		if !f.IsValid() {
			missing[name] = "unknown field"
			continue
		}

		switch f.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface:
			if f.IsNil() {
				missing[name] = "required"
			}
		case reflect.String:
			if f.String() == "" {
				missing[name] = "required"
			}
		default:
			if f.IsZero() {
				missing[name] = "required"
			}
		}
	}

	if len(missing) > 0 {
		return &Error{
			Err:    fmt.Errorf("required fields: %v", fields),
			Status: 400,
			Fields: missing,
		}
	}

	return nil
}
