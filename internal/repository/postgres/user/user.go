package user

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"timeclock/backend/foundation/web"
	"timeclock/backend/internal/auth"
	"timeclock/backend/internal/entity"
	"timeclock/backend/internal/pkg/repository/postgresql"
	"timeclock/backend/internal/repository/postgres"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// GetByEmail looks a user up for sign-in. A wrong email and a wrong password
// produce the same response.
func (r Repository) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	var detail entity.User

	err := r.NewSelect().Model(&detail).
		Where("lower(email) = lower(?) AND deleted_at IS NULL", email).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.User{}, web.NewRequestError(errors.New("invalid email or password"), http.StatusUnauthorized)
	}
	if err != nil {
		return entity.User{}, web.NewRequestError(errors.Wrap(err, "selecting user by email"), http.StatusInternalServerError)
	}

	return detail, nil
}

func (r Repository) GetMe(ctx context.Context) (GetDetailByIdResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return GetDetailByIdResponse{}, err
	}

	return r.GetDetailById(ctx, claims.UserId)
}

func (r Repository) GetDetailById(ctx context.Context, id int) (GetDetailByIdResponse, error) {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return GetDetailByIdResponse{}, err
	}

	var detail entity.User
	err = r.NewSelect().Model(&detail).
		Where("id = ? AND deleted_at IS NULL", id).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDetailByIdResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return GetDetailByIdResponse{}, web.NewRequestError(errors.Wrap(err, "selecting user detail"), http.StatusInternalServerError)
	}

	response := GetDetailByIdResponse{
		ID:         detail.ID,
		FullName:   detail.FullName,
		Email:      detail.Email,
		Role:       detail.Role,
		HourlyRate: detail.HourlyRate,
		ShiftType:  detail.ShiftType,
		ClientID:   detail.ClientID,
		SiteIDs:    detail.SiteIDs,
	}

	return response, nil
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx, auth.RoleManager, auth.RoleAdmin)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := `WHERE u.deleted_at IS NULL`

	if filter.Search != nil {
		search := strings.Replace(*filter.Search, "'", "''", -1)
		whereQuery += fmt.Sprintf(` AND (u.full_name ilike '%s' OR u.email ilike '%s')`,
			"%"+search+"%", "%"+search+"%")
	}
	if filter.Role != nil {
		whereQuery += fmt.Sprintf(` AND u.role = '%s'`, *filter.Role)
	}

	orderQuery := "ORDER BY u.full_name ASC"

	var limitQuery, offsetQuery string
	if filter.Page != nil && filter.Limit != nil {
		offset := (*filter.Page - 1) * (*filter.Limit)
		filter.Offset = &offset
	}
	if filter.Limit != nil {
		limitQuery = fmt.Sprintf(" LIMIT %d", *filter.Limit)
	}
	if filter.Offset != nil {
		offsetQuery = fmt.Sprintf(" OFFSET %d", *filter.Offset)
	}

	var list []entity.User
	err = r.NewRaw(fmt.Sprintf(`
		SELECT u.* FROM users u
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)).Scan(ctx, &list)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting users"), http.StatusInternalServerError)
	}

	responses := make([]GetListResponse, 0, len(list))
	for _, u := range list {
		responses = append(responses, GetListResponse{
			ID:         u.ID,
			FullName:   u.FullName,
			Email:      u.Email,
			Role:       u.Role,
			HourlyRate: u.HourlyRate,
			ShiftType:  u.ShiftType,
			SiteIDs:    u.SiteIDs,
		})
	}

	count := 0
	err = r.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT count(u.id) FROM users u %s
	`, whereQuery)).Scan(&count)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting users"), http.StatusInternalServerError)
	}

	return responses, count, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "FullName", "Email", "Password", "Role"); err != nil {
		return CreateResponse{}, err
	}

	if !validRole(*request.Role) {
		return CreateResponse{}, web.NewRequestError(errors.New("invalid role"), http.StatusBadRequest)
	}
	if request.ShiftType != nil && !validShiftType(*request.ShiftType) {
		return CreateResponse{}, web.NewRequestError(errors.New("invalid shift type"), http.StatusBadRequest)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*request.Password), bcrypt.DefaultCost)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "hashing password"), http.StatusInternalServerError)
	}
	hashed := string(hash)

	var response CreateResponse
	response.FullName = request.FullName
	response.Email = request.Email
	response.Password = &hashed
	response.Role = request.Role
	response.HourlyRate = request.HourlyRate
	response.ShiftType = request.ShiftType
	response.SiteIDs = request.SiteIDs
	response.CreatedAt = time.Now()
	response.CreatedBy = &claims.UserId

	_, err = r.NewInsert().Model(&response.User).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		if strings.Contains(err.Error(), "users_email_live") {
			return CreateResponse{}, web.NewRequestError(postgres.ErrAlreadyExists, http.StatusConflict)
		}
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating user"), http.StatusBadRequest)
	}

	return response, nil
}

func (r Repository) UpdateColumns(ctx context.Context, request UpdateRequest) error {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "ID"); err != nil {
		return err
	}

	if request.Role != nil && !validRole(*request.Role) {
		return web.NewRequestError(errors.New("invalid role"), http.StatusBadRequest)
	}
	if request.ShiftType != nil && !validShiftType(*request.ShiftType) {
		return web.NewRequestError(errors.New("invalid shift type"), http.StatusBadRequest)
	}

	q := r.NewUpdate().Table("users").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.FullName != nil {
		q.Set("full_name = ?", request.FullName)
	}
	if request.Email != nil {
		q.Set("email = ?", request.Email)
	}
	if request.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*request.Password), bcrypt.DefaultCost)
		if err != nil {
			return web.NewRequestError(errors.Wrap(err, "hashing password"), http.StatusInternalServerError)
		}
		q.Set("password = ?", string(hash))
	}
	if request.Role != nil {
		q.Set("role = ?", request.Role)
	}
	if request.HourlyRate != nil {
		q.Set("hourly_rate = ?", request.HourlyRate)
	}
	if request.ShiftType != nil {
		q.Set("shift_type = ?", request.ShiftType)
	}
	if request.SiteIDs != nil {
		raw, err := json.Marshal(request.SiteIDs)
		if err != nil {
			return web.NewRequestError(errors.Wrap(err, "marshalling site ids"), http.StatusBadRequest)
		}
		q.Set("site_ids = ?", string(raw))
	}
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	result, err := q.Exec(ctx)
	if err != nil {
		if strings.Contains(err.Error(), "users_email_live") {
			return web.NewRequestError(postgres.ErrAlreadyExists, http.StatusConflict)
		}
		return web.NewRequestError(errors.Wrap(err, "updating user"), http.StatusBadRequest)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "checking updated rows"), http.StatusInternalServerError)
	}
	if rows == 0 {
		return web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return err
	}

	return r.DeleteRow(ctx, "users", id)
}

func validRole(role string) bool {
	switch role {
	case auth.RoleEmployee, auth.RoleManager, auth.RoleAdmin:
		return true
	}
	return false
}

func validShiftType(shiftType string) bool {
	switch shiftType {
	case "MORNING", "AFTERNOON", "NIGHT":
		return true
	}
	return false
}
