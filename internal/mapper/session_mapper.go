package mapper

import (
	"legaldocai-be/internal/dto"
	"legaldocai-be/internal/entity"
)

type SessionMapper struct{}

func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

func (m *SessionMapper) ToSessionResponse(s *entity.DocumentSession) *dto.SessionResponse {
	if s == nil {
		return nil
	}
	return &dto.SessionResponse{
		Id:          s.Id,
		Name:        s.Name,
		UploadedAt:  s.UploadedAt,
		Pages:       s.Pages,
		NameCount:   len(s.Names),
		EmailCount:  len(s.Emails),
		PhoneCount:  len(s.Phones),
		ClauseCount: len(s.ClausesFound),
		PreviewURL:  s.PreviewURL,
	}
}

func (m *SessionMapper) ToHistoryItem(s *entity.DocumentSession, index int, active bool) *dto.HistoryItemResponse {
	if s == nil {
		return nil
	}
	return &dto.HistoryItemResponse{
		Index:       index,
		Id:          s.Id,
		Name:        s.Name,
		UploadedAt:  s.UploadedAt,
		Pages:       s.Pages,
		NameCount:   len(s.Names),
		EmailCount:  len(s.Emails),
		PhoneCount:  len(s.Phones),
		ClauseCount: len(s.ClausesFound),
		PreviewURL:  s.PreviewURL,
		Active:      active,
	}
}
