package dto

type SummarizeRequest struct {
	PageIndex int `json:"page_index" validate:"min=0"`
}

type AskRequest struct {
	PageIndex int    `json:"page_index" validate:"min=0"`
	Question  string `json:"question" validate:"required"`
}

type InsightResponse struct {
	Answer string `json:"answer"`
	Cached bool   `json:"cached"`
}
