package user

import (
	"timeclock/backend/internal/entity"
)

type Filter struct {
	Limit  *int
	Offset *int
	Page   *int
	Search *string
	Role   *string
}

type SignInRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type RefreshTokenRequest struct {
	AccessToken  string `json:"access_token" form:"access_token"`
	RefreshToken string `json:"refresh_token" form:"refresh_token"`
}

type RequestCodeRequest struct {
	Email string `json:"email" form:"email"`
}

type VerifyCodeRequest struct {
	Email string `json:"email" form:"email"`
	Code  string `json:"code" form:"code"`
}

type GetListResponse struct {
	ID         int      `json:"id"`
	FullName   *string  `json:"full_name"`
	Email      *string  `json:"email"`
	Role       *string  `json:"role"`
	HourlyRate *float64 `json:"hourly_rate"`
	ShiftType  *string  `json:"shift_type"`
	SiteIDs    []string `json:"site_ids"`
}

type GetDetailByIdResponse struct {
	ID         int      `json:"id"`
	FullName   *string  `json:"full_name"`
	Email      *string  `json:"email"`
	Role       *string  `json:"role"`
	HourlyRate *float64 `json:"hourly_rate"`
	ShiftType  *string  `json:"shift_type"`
	ClientID   *string  `json:"client_id"`
	SiteIDs    []string `json:"site_ids"`
}

type CreateRequest struct {
	FullName   *string  `json:"full_name"   form:"full_name"`
	Email      *string  `json:"email"       form:"email"`
	Password   *string  `json:"password"    form:"password"`
	Role       *string  `json:"role"        form:"role"`
	HourlyRate *float64 `json:"hourly_rate" form:"hourly_rate"`
	ShiftType  *string  `json:"shift_type"  form:"shift_type"`
	SiteIDs    []string `json:"site_ids"    form:"site_ids"`
}

type CreateResponse struct {
	entity.User
}

type UpdateRequest struct {
	ID         int      `json:"id" form:"id"`
	FullName   *string  `json:"full_name"   form:"full_name"`
	Email      *string  `json:"email"       form:"email"`
	Password   *string  `json:"password"    form:"password"`
	Role       *string  `json:"role"        form:"role"`
	HourlyRate *float64 `json:"hourly_rate" form:"hourly_rate"`
	ShiftType  *string  `json:"shift_type"  form:"shift_type"`
	SiteIDs    []string `json:"site_ids"    form:"site_ids"`
}
