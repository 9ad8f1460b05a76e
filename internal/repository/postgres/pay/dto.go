package pay

import "time"

type OverviewResponse struct {
	NextPayDate        string  `json:"next_pay_date"`
	Frequency          string  `json:"frequency"`
	CurrentPeriodLabel string  `json:"current_period_label"`
	ApprovedHours      float64 `json:"approved_hours"`
	SubmittedHours     float64 `json:"submitted_hours"`
	EstimatedPay       int     `json:"estimated_pay"`
	YtdHours           float64 `json:"ytd_hours"`
	YtdEstimatedPay    int     `json:"ytd_estimated_pay"`
}

type PeriodResponse struct {
	ID           string  `json:"id"`
	Label        string  `json:"label"`
	Status       string  `json:"status"`
	Hours        float64 `json:"hours"`
	EstimatedPay int     `json:"estimated_pay"`
}

// StatementData feeds the pay statement PDF.
type StatementData struct {
	FullName       string
	Email          string
	PeriodLabel    string
	NextPayDate    string
	SubmittedHours float64
	ApprovedHours  float64
	EstimatedPay   int
	GeneratedAt    time.Time
}
