package pay

import (
	"context"

	"timeclock/backend/internal/repository/postgres/pay"
)

type Pay interface {
	GetOverview(ctx context.Context) (pay.OverviewResponse, error)
	GetRecentPeriods(ctx context.Context) ([]pay.PeriodResponse, error)
	GetStatement(ctx context.Context) (pay.StatementData, error)
}
