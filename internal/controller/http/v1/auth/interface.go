package auth

import (
	"context"

	"timeclock/backend/internal/entity"
)

type User interface {
	GetByEmail(ctx context.Context, email string) (entity.User, error)
}

type LoginCode interface {
	Issue(ctx context.Context, email string) (string, error)
	Verify(ctx context.Context, email, code string) error
}
