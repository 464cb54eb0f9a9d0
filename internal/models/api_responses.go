package models

// AnalyticsResponse is the payload for the admin analytics endpoint.
// SuccessRate is a percentage (0-100) for display, matching the dashboard.
type AnalyticsResponse struct {
	TopTerms     []TermCount  `json:"top_terms"`
	DailyQueries []DailyCount `json:"daily_queries"`
	TotalQueries int64        `json:"total_queries"`
	UniqueUsers  int64        `json:"unique_users"`
	SuccessRate  float64      `json:"success_rate"`
}

// SeedResponse reports how many glossary entries a seed request inserted.
type SeedResponse struct {
	Inserted int `json:"inserted"`
}
