package benefit

import (
	"context"

	"timeclock/backend/internal/repository/postgres/benefit"
)

type Benefit interface {
	GetList(ctx context.Context, filter benefit.Filter) ([]benefit.GetListResponse, error)
}
