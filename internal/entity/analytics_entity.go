package entity

// Analytics is the backend-produced aggregate for one document.
// LegalityScore is a pointer because "absent" means "not computed",
// which is distinct from 0.
type Analytics struct {
	TotalPages       int            `json:"total_pages"`
	TotalNames       int            `json:"total_names"`
	TotalEmails      int            `json:"total_emails"`
	TotalPhones      int            `json:"total_phones"`
	TotalClauses     int            `json:"total_clauses"`
	ClauseSummary    map[string]int `json:"clause_summary,omitempty"`
	KeywordFrequency map[string]int `json:"keyword_frequency,omitempty"`
	LegalityScore    *float64       `json:"legality_score,omitempty"`
	Summary          string         `json:"summary,omitempty"`
}
