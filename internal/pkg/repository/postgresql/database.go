// Package postgresql owns the bun database handle shared by every repository
// and the claim/validation helpers they call.
package postgresql

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"timeclock/backend/foundation/web"
	"timeclock/backend/internal/auth"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
)

type Database struct {
	*bun.DB
}

type Config struct {
	Username   string
	Password   string
	Host       string
	Port       string
	Name       string
	DisableTLS bool
	Debug      bool
}

func NewDatabase(cfg Config) *Database {
	sslMode := "require"
	if cfg.DisableTLS {
		sslMode = "disable"
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.Name, sslMode)

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())

	if cfg.Debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}

	return &Database{DB: db}
}

// CheckClaims returns the claims attached to the request context by the
// authenticate middleware, optionally restricted to the given roles.
func (d *Database) CheckClaims(ctx context.Context, roles ...string) (auth.Claims, error) {
	claims, err := auth.GetClaims(ctx)
	if err != nil {
		return auth.Claims{}, err
	}

	if len(roles) > 0 && !claims.Authorized(roles...) {
		return auth.Claims{}, web.NewRequestError(errors.New("attempted action is not allowed"), http.StatusForbidden)
	}

	return claims, nil
}

// ValidateStruct checks the required fields of a request struct.
func (d *Database) ValidateStruct(s interface{}, requiredFields ...string) error {
	return web.ValidateRequired(s, requiredFields...)
}

// DeleteRow soft-deletes a row, stamping the acting user.
func (d *Database) DeleteRow(ctx context.Context, table string, id int) error {
	claims, err := d.CheckClaims(ctx)
	if err != nil {
		return err
	}

	q := d.NewUpdate().Table(table).Where("deleted_at IS NULL AND id = ?", id)
	q.Set("deleted_at = ?", time.Now())
	q.Set("deleted_by = ?", claims.UserId)

	res, err := q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrapf(err, "deleting from %s", table), http.StatusInternalServerError)
	}

	rows, err := res.RowsAffected()
	if err == nil && rows == 0 {
		return web.NewRequestError(errors.New("row not found"), http.StatusNotFound)
	}

	return nil
}
