package entity

import (
	"time"

	"github.com/google/uuid"
)

// UploadedFile carries the raw bytes of one accepted upload through the
// submit/commit flow. The session store takes ownership of the bytes at
// commit time.
type UploadedFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// DocumentSession is one captured upload: results, analytics and the
// preview reference, frozen at commit time. The derived fields below
// Results are computed once at creation and never recomputed, so they
// cannot drift from the snapshot.
type DocumentSession struct {
	Id         uuid.UUID
	Name       string
	UploadedAt time.Time
	Results    []PageResult
	Analytics  Analytics

	// PreviewToken resolves the uploaded blob in the preview repository.
	// The session exclusively owns the token's lifetime: it is released
	// when the session is removed.
	PreviewToken string
	PreviewURL   string

	// Derived at commit time from Results.
	Pages        int
	Names        []string
	Emails       []string
	Phones       []string
	ClausesFound []string
}

// NewDocumentSession freezes an upload into a session. The caller is
// responsible for parking the blob and passing the resulting token.
func NewDocumentSession(name string, results []PageResult, analytics Analytics, token, previewURL string) *DocumentSession {
	s := &DocumentSession{
		Id:           uuid.New(),
		Name:         name,
		UploadedAt:   time.Now(),
		Results:      NormalizePages(results),
		Analytics:    analytics,
		PreviewToken: token,
		PreviewURL:   previewURL,
		Names:        []string{},
		Emails:       []string{},
		Phones:       []string{},
		ClausesFound: []string{},
	}

	s.Pages = len(s.Results)
	if s.Pages == 0 {
		s.Pages = 1
	}
	for _, page := range s.Results {
		s.Names = append(s.Names, page.Names...)
		s.Emails = append(s.Emails, page.Emails...)
		s.Phones = append(s.Phones, page.Phones...)
		s.ClausesFound = append(s.ClausesFound, page.ClausesFound...)
	}
	return s
}
