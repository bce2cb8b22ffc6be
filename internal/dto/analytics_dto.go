package dto

// ChartPoint is one (label, count) entry of an ordered chart series.
type ChartPoint struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// AnalyticsOverview is the chart-ready projection of a session's
// analytics. Empty flags are explicit so the client renders an
// empty-state message instead of an empty chart.
type AnalyticsOverview struct {
	TotalPages   int `json:"total_pages"`
	TotalNames   int `json:"total_names"`
	TotalEmails  int `json:"total_emails"`
	TotalPhones  int `json:"total_phones"`
	TotalClauses int `json:"total_clauses"`

	EntityDistribution []ChartPoint `json:"entity_distribution"`
	ClauseDistribution []ChartPoint `json:"clause_distribution"`
	ClauseEmpty        bool         `json:"clause_empty"`
	KeywordFrequency   []ChartPoint `json:"keyword_frequency"`
	KeywordEmpty       bool         `json:"keyword_empty"`

	LegalityScore *float64 `json:"legality_score,omitempty"`
	Summary       string   `json:"summary,omitempty"`
}
