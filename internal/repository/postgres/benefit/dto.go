package benefit

type Filter struct {
	Category *string
}

type GetListResponse struct {
	ID          int      `json:"id"`
	Name        *string  `json:"name"`
	ShortLabel  *string  `json:"short_label"`
	Category    *string  `json:"category"`
	Icon        *string  `json:"icon,omitempty"`
	Description *string  `json:"description"`
	Highlights  []string `json:"highlights"`
	Eligibility *string  `json:"eligibility,omitempty"`
}
