package entity

import (
	"github.com/uptrace/bun"
)

const (
	BenefitHealth    = "HEALTH"
	BenefitFinancial = "FINANCIAL"
	BenefitTimeOff   = "TIME_OFF"
	BenefitWellness  = "WELLNESS"
)

type Benefit struct {
	bun.BaseModel `bun:"table:benefits"`

	BasicEntity
	Name         *string  `json:"name"          bun:"name"`
	ShortLabel   *string  `json:"short_label"   bun:"short_label"`
	Category     *string  `json:"category"      bun:"category"`
	Icon         *string  `json:"icon"          bun:"icon"`
	Description  *string  `json:"description"   bun:"description"`
	Highlights   []string `json:"highlights"    bun:"highlights,type:jsonb"`
	Eligibility  *string  `json:"eligibility"   bun:"eligibility"`
	IsActive     bool     `json:"is_active"     bun:"is_active"`
	DisplayOrder int      `json:"display_order" bun:"display_order"`
}
