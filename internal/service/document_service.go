package service

import (
	"encoding/json"
	"fmt"
	"sync"

	"legaldocai-be/internal/constant"
	"legaldocai-be/internal/dto"
	"legaldocai-be/internal/entity"
	"legaldocai-be/internal/pkg/serverutils"
	"legaldocai-be/pkg/search"

	"github.com/google/uuid"
)

// IDocumentService produces the extracted-data view of the active
// session: filtered pages, highlighting, page selection and the
// disclosure flags. All reads are against the frozen session snapshot;
// nothing here mutates it.
type IDocumentService interface {
	Pages(query string) (*dto.PagesResponse, error)
	SelectPage(index int) (*dto.PagesResponse, error)
	ToggleSection(section string) (*dto.SectionFlags, error)
	SetCollapsedAll(collapsed bool) (*dto.SectionFlags, error)
	ExportJSON() (*dto.ExportPayload, error)
	ExportText() (*dto.ExportPayload, error)
	PageText() (string, error)
}

type documentService struct {
	mu       sync.Mutex
	sessions ISessionService

	// View state, reset whenever the active session's results
	// reference changes.
	lastSessionID uuid.UUID
	pageIndex     int
	collapsedAll  bool
	sections      dto.SectionFlags
	lastQuery     string
}

func NewDocumentService(sessions ISessionService) IDocumentService {
	return &documentService{
		sessions: sessions,
		sections: defaultSections(),
	}
}

// defaultSections opens everything except the AI panel.
func defaultSections() dto.SectionFlags {
	return dto.SectionFlags{
		Names:   true,
		Emails:  true,
		Phones:  true,
		Clauses: true,
		Signers: true,
		Text:    true,
		AI:      false,
	}
}

// FilterPages applies the query to every page's entity lists. Text and
// signers pass through untouched; an empty query returns the pages
// unchanged. Pure and idempotent.
func FilterPages(pages []entity.PageResult, query string) []entity.PageResult {
	if query == "" {
		return pages
	}
	filtered := make([]entity.PageResult, len(pages))
	for i, page := range pages {
		filtered[i] = entity.PageResult{
			Page:         page.Page,
			Text:         page.Text,
			Names:        search.FilterList(page.Names, query),
			Emails:       search.FilterList(page.Emails, query),
			Phones:       search.FilterList(page.Phones, query),
			ClausesFound: search.FilterList(page.ClausesFound, query),
			Signers:      page.Signers,
		}
	}
	return filtered
}

func (s *documentService) Pages(query string) (*dto.PagesResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.sessions.Active()
	if session == nil || len(session.Results) == 0 {
		return nil, serverutils.NewNotFoundError(constant.MsgNoExtractedData)
	}
	s.syncSession(session)
	s.lastQuery = query

	filtered := FilterPages(session.Results, query)
	views := make([]dto.PageView, len(filtered))
	for i, page := range filtered {
		views[i] = dto.PageView{
			Page:            page.Page,
			Text:            page.Text,
			HighlightedText: search.Highlight(page.Text, query),
			Names:           page.Names,
			Emails:          page.Emails,
			Phones:          page.Phones,
			ClausesFound:    page.ClausesFound,
			Signers:         page.Signers,
		}
	}

	return &dto.PagesResponse{
		Query:        query,
		Pages:        views,
		PageIndex:    s.pageIndex,
		CollapsedAll: s.collapsedAll,
		Sections:     s.sections,
	}, nil
}

func (s *documentService) SelectPage(index int) (*dto.PagesResponse, error) {
	s.mu.Lock()

	session := s.sessions.Active()
	if session == nil || len(session.Results) == 0 {
		s.mu.Unlock()
		return nil, serverutils.NewNotFoundError(constant.MsgNoExtractedData)
	}
	s.syncSession(session)

	if index < 0 || index >= len(session.Results) {
		s.mu.Unlock()
		return nil, serverutils.NewValidationError("Page index out of range")
	}
	s.pageIndex = index
	query := s.lastQuery
	s.mu.Unlock()

	return s.Pages(query)
}

func (s *documentService) ToggleSection(section string) (*dto.SectionFlags, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session := s.sessions.Active(); session != nil {
		s.syncSession(session)
	}

	var flag *bool
	switch section {
	case constant.SectionNames:
		flag = &s.sections.Names
	case constant.SectionEmails:
		flag = &s.sections.Emails
	case constant.SectionPhones:
		flag = &s.sections.Phones
	case constant.SectionClauses:
		flag = &s.sections.Clauses
	case constant.SectionSigners:
		flag = &s.sections.Signers
	case constant.SectionText:
		flag = &s.sections.Text
	case constant.SectionAI:
		flag = &s.sections.AI
	default:
		return nil, serverutils.NewValidationError("Unknown section")
	}
	*flag = !*flag

	flags := s.sections
	return &flags, nil
}

// SetCollapsedAll forces every disclosure flag to the same value.
func (s *documentService) SetCollapsedAll(collapsed bool) (*dto.SectionFlags, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session := s.sessions.Active(); session != nil {
		s.syncSession(session)
	}

	s.collapsedAll = collapsed
	open := !collapsed
	s.sections = dto.SectionFlags{
		Names:   open,
		Emails:  open,
		Phones:  open,
		Clauses: open,
		Signers: open,
		Text:    open,
		AI:      open,
	}

	flags := s.sections
	return &flags, nil
}

// ExportJSON serializes the selected page's full record, pretty
// printed. Parsing the body reproduces the page exactly.
func (s *documentService) ExportJSON() (*dto.ExportPayload, error) {
	page, err := s.selectedPage()
	if err != nil {
		return nil, err
	}
	body, err := json.MarshalIndent(page, "", "  ")
	if err != nil {
		return nil, serverutils.NewApiError(500, "Failed to serialize page")
	}
	return &dto.ExportPayload{
		Filename:    fmt.Sprintf("page-%d.json", page.Page),
		ContentType: "application/json",
		Body:        string(body),
	}, nil
}

func (s *documentService) ExportText() (*dto.ExportPayload, error) {
	page, err := s.selectedPage()
	if err != nil {
		return nil, err
	}
	return &dto.ExportPayload{
		Filename:    fmt.Sprintf("page-%d.txt", page.Page),
		ContentType: "text/plain",
		Body:        page.Text,
	}, nil
}

func (s *documentService) PageText() (string, error) {
	page, err := s.selectedPage()
	if err != nil {
		return "", err
	}
	return page.Text, nil
}

func (s *documentService) selectedPage() (*entity.PageResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.sessions.Active()
	if session == nil || len(session.Results) == 0 {
		return nil, serverutils.NewNotFoundError(constant.MsgNoExtractedData)
	}
	s.syncSession(session)

	if s.pageIndex >= len(session.Results) {
		s.pageIndex = 0
	}
	page := session.Results[s.pageIndex]
	return &page, nil
}

// syncSession resets page selection and disclosure state when the
// active results reference has changed since the last read. Callers
// must hold the lock.
func (s *documentService) syncSession(session *entity.DocumentSession) {
	if session.Id == s.lastSessionID {
		return
	}
	s.lastSessionID = session.Id
	s.pageIndex = 0
	s.collapsedAll = false
	s.sections = defaultSections()
	s.lastQuery = ""
}
