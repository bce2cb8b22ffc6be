package service

import (
	"legaldocai-be/internal/entity"
	"legaldocai-be/internal/repository/memory"
)

// nopLogger satisfies ILogger without touching the filesystem.
type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type sessionFixture struct {
	service     ISessionService
	historyRepo *memory.HistoryRepository
	previewRepo *memory.PreviewRepository
}

func newSessionFixture() *sessionFixture {
	historyRepo := memory.NewHistoryRepository()
	previewRepo := memory.NewPreviewRepository()
	return &sessionFixture{
		service:     NewSessionService(historyRepo, previewRepo, nil, nopLogger{}),
		historyRepo: historyRepo,
		previewRepo: previewRepo,
	}
}

func twoPageResults() []entity.PageResult {
	return []entity.PageResult{
		{
			Page:         1,
			Text:         "This agreement is between Alice Johnson and Bob Smith.",
			Names:        []string{"Alice Johnson", "Bob Smith"},
			Emails:       []string{"alice@corp.com"},
			Phones:       []string{"+1-555-0100"},
			ClausesFound: []string{"Confidentiality", "Termination"},
			Signers:      []string{"Alice Johnson"},
		},
		{
			Page:         2,
			Text:         "Governing law and indemnification.",
			Names:        []string{"Carol White"},
			Emails:       []string{},
			Phones:       []string{},
			ClausesFound: []string{"Indemnification"},
			Signers:      []string{},
		},
	}
}

func sampleAnalytics() entity.Analytics {
	score := 78.5
	return entity.Analytics{
		TotalPages:   2,
		TotalNames:   3,
		TotalEmails:  1,
		TotalPhones:  1,
		TotalClauses: 3,
		ClauseSummary: map[string]int{
			"Confidentiality": 1,
			"Termination":     1,
			"Indemnification": 1,
		},
		KeywordFrequency: map[string]int{
			"agreement": 4,
			"law":       2,
		},
		LegalityScore: &score,
		Summary:       "Standard bilateral agreement.",
	}
}

func pdfFile(name string) *entity.UploadedFile {
	return &entity.UploadedFile{
		Name:        name,
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.4 fake"),
	}
}
