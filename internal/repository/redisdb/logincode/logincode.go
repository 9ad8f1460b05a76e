package logincode

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"time"

	"timeclock/backend/foundation/web"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// Repository keeps one-time sign-in codes in redis. A code is six digits,
// bound to an email and gone after first use or expiry.
type Repository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRepository(client *redis.Client, ttl time.Duration) *Repository {
	return &Repository{client: client, ttl: ttl}
}

func key(email string) string {
	return "login_code:" + strings.ToLower(strings.TrimSpace(email))
}

func (r Repository) Issue(ctx context.Context, email string) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", web.NewRequestError(errors.Wrap(err, "generating login code"), http.StatusInternalServerError)
	}
	code := fmt.Sprintf("%06d", n.Int64())

	if err := r.client.Set(ctx, key(email), code, r.ttl).Err(); err != nil {
		return "", web.NewRequestError(errors.Wrap(err, "storing login code"), http.StatusInternalServerError)
	}

	return code, nil
}

// Verify checks a code and consumes it on success.
func (r Repository) Verify(ctx context.Context, email, code string) error {
	stored, err := r.client.Get(ctx, key(email)).Result()
	if errors.Is(err, redis.Nil) {
		return web.NewRequestError(errors.New("invalid or expired code"), http.StatusUnauthorized)
	}
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "reading login code"), http.StatusInternalServerError)
	}

	if stored != code {
		return web.NewRequestError(errors.New("invalid or expired code"), http.StatusUnauthorized)
	}

	if err := r.client.Del(ctx, key(email)).Err(); err != nil {
		return web.NewRequestError(errors.Wrap(err, "consuming login code"), http.StatusInternalServerError)
	}

	return nil
}
