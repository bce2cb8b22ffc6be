package dto

import (
	"time"

	"legaldocai-be/internal/entity"

	"github.com/google/uuid"
)

// CaptureRequest carries a camera capture as base64-encoded PNG bytes.
// The service packages it as a file with a synthetic name.
type CaptureRequest struct {
	ImageBase64 string `json:"image_base64" validate:"required"`
	ClientId    string `json:"client_id,omitempty"`
}

// SessionResponse is the client view of one committed session.
type SessionResponse struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	UploadedAt  time.Time `json:"uploaded_at"`
	Pages       int       `json:"pages"`
	NameCount   int       `json:"name_count"`
	EmailCount  int       `json:"email_count"`
	PhoneCount  int       `json:"phone_count"`
	ClauseCount int       `json:"clause_count"`
	PreviewURL  string    `json:"preview_url"`
}

// UploadResponse is returned after a successful upload-and-commit: the
// new session plus its frozen results/analytics, and the wizard step the
// shell should show next.
type UploadResponse struct {
	Session   *SessionResponse    `json:"session"`
	Results   []entity.PageResult `json:"results"`
	Analytics entity.Analytics    `json:"analytics"`
	Step      int                 `json:"step"`
}
