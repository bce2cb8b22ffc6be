package service

import (
	"sync"

	"legaldocai-be/internal/constant"
	"legaldocai-be/internal/dto"
	"legaldocai-be/internal/entity"
	"legaldocai-be/internal/pkg/serverutils"
	"legaldocai-be/internal/repository/memory"
)

// IPreviewService tracks paging state for the active preview and
// resolves preview tokens to stored blobs. Navigation is clamped to
// [1, totalPages]; the page resets to 1 whenever the preview reference
// changes.
type IPreviewService interface {
	Current() (*dto.PreviewState, error)
	Navigate(delta int) (*dto.PreviewState, error)
	GoTo(page int) (*dto.PreviewState, error)
	Blob(token string) (*entity.UploadedFile, error)
}

type previewService struct {
	mu          sync.Mutex
	sessions    ISessionService
	previewRepo *memory.PreviewRepository

	lastToken string
	page      int
}

func NewPreviewService(sessions ISessionService, previewRepo *memory.PreviewRepository) IPreviewService {
	return &previewService{
		sessions:    sessions,
		previewRepo: previewRepo,
		page:        1,
	}
}

func (s *previewService) Current() (*dto.PreviewState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state()
}

func (s *previewService) Navigate(delta int) (*dto.PreviewState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.state()
	if err != nil {
		return nil, err
	}
	s.page = clamp(s.page+delta, 1, state.TotalPages)
	return s.state()
}

func (s *previewService) GoTo(page int) (*dto.PreviewState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.state()
	if err != nil {
		return nil, err
	}
	s.page = clamp(page, 1, state.TotalPages)
	return s.state()
}

// Blob resolves a preview token regardless of which session owns it, so
// history entries can be previewed without selecting them first.
func (s *previewService) Blob(token string) (*entity.UploadedFile, error) {
	file, ok := s.previewRepo.Get(token)
	if !ok {
		return nil, serverutils.NewNotFoundError(constant.MsgMissingPreview)
	}
	return file, nil
}

// state builds the current view; callers must hold the lock.
func (s *previewService) state() (*dto.PreviewState, error) {
	session := s.sessions.Active()
	if session == nil {
		return nil, serverutils.NewNotFoundError(constant.MsgNothingToPreview)
	}
	if _, ok := s.previewRepo.Get(session.PreviewToken); !ok {
		return nil, serverutils.NewNotFoundError(constant.MsgNothingToPreview)
	}

	// New document: reset to the first page.
	if session.PreviewToken != s.lastToken {
		s.lastToken = session.PreviewToken
		s.page = 1
	}

	total := session.Pages
	if total < 1 {
		total = 1
	}
	s.page = clamp(s.page, 1, total)

	return &dto.PreviewState{
		Page:       s.page,
		TotalPages: total,
		AtStart:    s.page <= 1,
		AtEnd:      s.page >= total,
		PreviewURL: session.PreviewURL,
		Name:       session.Name,
	}, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
