package dto

import (
	"time"

	"github.com/google/uuid"
)

// HistoryItemResponse is one entry of the session history list, newest
// first. Index is its current position; a delete shifts later indices
// down by one.
type HistoryItemResponse struct {
	Index       int       `json:"index"`
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	UploadedAt  time.Time `json:"uploaded_at"`
	Pages       int       `json:"pages"`
	NameCount   int       `json:"name_count"`
	EmailCount  int       `json:"email_count"`
	PhoneCount  int       `json:"phone_count"`
	ClauseCount int       `json:"clause_count"`
	PreviewURL  string    `json:"preview_url"`
	Active      bool      `json:"active"`
}
