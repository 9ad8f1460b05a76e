package benefit

import (
	"context"
	"net/http"

	"timeclock/backend/foundation/web"
	"timeclock/backend/internal/entity"
	"timeclock/backend/internal/pkg/repository/postgresql"

	"github.com/pkg/errors"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, error) {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, err
	}

	var list []entity.Benefit
	q := r.NewSelect().Model(&list).
		Where("deleted_at IS NULL AND is_active = true").
		Order("display_order ASC", "name ASC")

	if filter.Category != nil {
		q.Where("category = ?", *filter.Category)
	}

	err = q.Scan(ctx)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting benefits"), http.StatusInternalServerError)
	}

	responses := make([]GetListResponse, 0, len(list))
	for _, b := range list {
		highlights := b.Highlights
		if highlights == nil {
			highlights = []string{}
		}
		responses = append(responses, GetListResponse{
			ID:          b.ID,
			Name:        b.Name,
			ShortLabel:  b.ShortLabel,
			Category:    b.Category,
			Icon:        b.Icon,
			Description: b.Description,
			Highlights:  highlights,
			Eligibility: b.Eligibility,
		})
	}

	return responses, nil
}
