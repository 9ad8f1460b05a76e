package pay

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"net/http"
	"time"

	"timeclock/backend/foundation/web"
	"timeclock/backend/internal/pkg/repository/postgresql"
	"timeclock/backend/internal/repository/postgres"
	"timeclock/backend/internal/service/payperiod"

	"github.com/pkg/errors"
)

type Repository struct {
	*postgresql.Database
	policy         payperiod.Policy
	historyPeriods int
}

func NewRepository(database *postgresql.Database, policy payperiod.Policy, historyPeriods int) *Repository {
	return &Repository{Database: database, policy: policy, historyPeriods: historyPeriods}
}

func (r Repository) GetOverview(ctx context.Context) (OverviewResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return OverviewResponse{}, err
	}

	hourly, err := r.getHourlyRate(ctx, claims.UserId)
	if err != nil {
		return OverviewResponse{}, err
	}

	now := time.Now()
	period := r.policy.Current(now)

	submitted, approved, err := r.sumHours(ctx, claims.UserId, period.Start, period.End)
	if err != nil {
		return OverviewResponse{}, err
	}

	ytdHours, _, err := r.sumHours(ctx, claims.UserId, payperiod.YearStart(now), now)
	if err != nil {
		return OverviewResponse{}, err
	}

	response := OverviewResponse{
		NextPayDate:        period.NextPayDate.Format("Mon Jan 2 2006"),
		Frequency:          "Every 2 weeks",
		CurrentPeriodLabel: period.Label,
		ApprovedHours:      approved,
		SubmittedHours:     submitted,
		EstimatedPay:       int(math.Round(submitted * hourly)),
		YtdHours:           ytdHours,
		YtdEstimatedPay:    int(math.Round(ytdHours * hourly)),
	}

	return response, nil
}

func (r Repository) GetRecentPeriods(ctx context.Context) ([]PeriodResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, err
	}

	hourly, err := r.getHourlyRate(ctx, claims.UserId)
	if err != nil {
		return nil, err
	}

	windows := payperiod.RecentWindows(time.Now(), r.historyPeriods)

	periods := make([]PeriodResponse, 0, len(windows))
	for i, w := range windows {
		hours, _, err := r.sumHours(ctx, claims.UserId, w.Start, w.End)
		if err != nil {
			return nil, err
		}

		periods = append(periods, PeriodResponse{
			ID:           fmt.Sprintf("p%d", i+1),
			Label:        w.Label,
			Status:       "Paid",
			Hours:        hours,
			EstimatedPay: int(math.Round(hours * hourly)),
		})
	}

	return periods, nil
}

func (r Repository) GetStatement(ctx context.Context) (StatementData, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return StatementData{}, err
	}

	var fullName, email sql.NullString
	var hourly sql.NullFloat64
	err = r.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT full_name, email, hourly_rate FROM users WHERE id = %d AND deleted_at IS NULL`, claims.UserId),
	).Scan(&fullName, &email, &hourly)
	if errors.Is(err, sql.ErrNoRows) {
		return StatementData{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return StatementData{}, web.NewRequestError(errors.Wrap(err, "selecting user for statement"), http.StatusInternalServerError)
	}

	now := time.Now()
	period := r.policy.Current(now)

	submitted, approved, err := r.sumHours(ctx, claims.UserId, period.Start, period.End)
	if err != nil {
		return StatementData{}, err
	}

	data := StatementData{
		FullName:       fullName.String,
		Email:          email.String,
		PeriodLabel:    period.Label,
		NextPayDate:    period.NextPayDate.Format("Mon Jan 2 2006"),
		SubmittedHours: submitted,
		ApprovedHours:  approved,
		EstimatedPay:   int(math.Round(submitted * hourly.Float64)),
		GeneratedAt:    now,
	}

	return data, nil
}

// sumHours totals the session minutes for a user between two instants. The
// first value covers every session in the range, the second only approved
// and paid ones.
func (r Repository) sumHours(ctx context.Context, userID int, from, to time.Time) (float64, float64, error) {
	query := `
		SELECT
			COALESCE(SUM(total_minutes), 0),
			COALESCE(SUM(total_minutes) FILTER (WHERE status IN ('approved', 'paid')), 0)
		FROM clock_sessions
		WHERE deleted_at IS NULL
			AND user_id = $1
			AND clock_in_at >= $2
			AND clock_in_at <= $3
	`

	var totalMinutes, approvedMinutes int64
	err := r.QueryRowContext(ctx, query, userID, from, to).Scan(&totalMinutes, &approvedMinutes)
	if err != nil {
		return 0, 0, web.NewRequestError(errors.Wrap(err, "summing session minutes"), http.StatusInternalServerError)
	}

	return float64(totalMinutes) / 60, float64(approvedMinutes) / 60, nil
}

func (r Repository) getHourlyRate(ctx context.Context, userID int) (float64, error) {
	var hourly sql.NullFloat64
	err := r.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT hourly_rate FROM users WHERE id = %d AND deleted_at IS NULL`, userID),
	).Scan(&hourly)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return 0, web.NewRequestError(errors.Wrap(err, "selecting hourly rate"), http.StatusInternalServerError)
	}

	return hourly.Float64, nil
}
