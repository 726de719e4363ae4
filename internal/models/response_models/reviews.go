package response_models

type ReviewData struct {
	Rating       float64 `json:"rating"`
	TotalReviews int     `json:"totalReviews"`
	Source       string  `json:"source"`
	URL          string  `json:"url,omitempty"`
}
