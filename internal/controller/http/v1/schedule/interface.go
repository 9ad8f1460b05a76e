package schedule

import (
	"context"

	"timeclock/backend/internal/repository/postgres/user"
)

type User interface {
	GetMe(ctx context.Context) (user.GetDetailByIdResponse, error)
}
