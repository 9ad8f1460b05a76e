package entity

import (
	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users"`

	BasicEntity
	FullName   *string  `json:"full_name"   bun:"full_name"`
	Email      *string  `json:"email"       bun:"email"`
	Password   *string  `json:"-"           bun:"password"`
	Role       *string  `json:"role"        bun:"role"`
	HourlyRate *float64 `json:"hourly_rate" bun:"hourly_rate"`
	ShiftType  *string  `json:"shift_type"  bun:"shift_type"`
	ClientID   *string  `json:"client_id"   bun:"client_id"`
	SiteIDs    []string `json:"site_ids"    bun:"site_ids,type:jsonb"`
}
