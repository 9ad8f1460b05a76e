package web

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestError(t *testing.T) {
	err := NewRequestError(errors.New("boom"), http.StatusConflict)
	require.True(t, IsRequestError(err))

	var webErr *Error
	require.True(t, errors.As(err, &webErr))
	assert.Equal(t, http.StatusConflict, webErr.Status)
	assert.Equal(t, "boom", webErr.Error())

	assert.False(t, IsRequestError(errors.New("plain")))
}

func TestValidateRequired(t *testing.T) {
	type request struct {
		Name  *string
		Email string
		Count *int
		IDs   []int
	}

	name := "a"
	count := 3

	tests := []struct {
		name    string
		request request
		fields  []string
		wantErr []string
	}{
		{
			name:    "all present",
			request: request{Name: &name, Email: "x@y", Count: &count, IDs: []int{1}},
			fields:  []string{"Name", "Email", "Count", "IDs"},
		},
		{
			name:    "nil pointer",
			request: request{Email: "x@y"},
			fields:  []string{"Name", "Email"},
			wantErr: []string{"Name"},
		},
		{
			name:    "empty string",
			request: request{Name: &name},
			fields:  []string{"Name", "Email"},
			wantErr: []string{"Email"},
		},
		{
			name:    "nil slice",
			request: request{},
			fields:  []string{"IDs"},
			wantErr: []string{"IDs"},
		},
		{
			name:    "nothing required",
			request: request{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(&tt.request, tt.fields...)

			if len(tt.wantErr) == 0 {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			var webErr *Error
			require.True(t, errors.As(err, &webErr))
			assert.Equal(t, http.StatusBadRequest, webErr.Status)
			for _, field := range tt.wantErr {
				assert.Contains(t, webErr.Fields, field)
			}
		})
	}
}
