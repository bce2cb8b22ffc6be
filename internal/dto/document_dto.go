package dto

// SectionFlags is the disclosure state of the extracted-data panels.
// The section set is closed, so this is a fixed-shape record rather
// than an open map.
type SectionFlags struct {
	Names   bool `json:"names"`
	Emails  bool `json:"emails"`
	Phones  bool `json:"phones"`
	Clauses bool `json:"clauses"`
	Signers bool `json:"signers"`
	Text    bool `json:"text"`
	AI      bool `json:"ai"`
}

// PageView is one page after filtering, with the full text highlighted
// for the current query. Text itself is never filtered.
type PageView struct {
	Page            int      `json:"page"`
	Text            string   `json:"text"`
	HighlightedText string   `json:"highlighted_text"`
	Names           []string `json:"names"`
	Emails          []string `json:"emails"`
	Phones          []string `json:"phones"`
	ClausesFound    []string `json:"clauses_found"`
	Signers         []string `json:"signers"`
}

// PagesResponse is the extracted-data view for the active session.
type PagesResponse struct {
	Query        string       `json:"query"`
	Pages        []PageView   `json:"pages"`
	PageIndex    int          `json:"page_index"`
	CollapsedAll bool         `json:"collapsed_all"`
	Sections     SectionFlags `json:"sections"`
}

type SelectPageRequest struct {
	Index int `json:"index" validate:"min=0"`
}

type ToggleSectionRequest struct {
	Section string `json:"section" validate:"required,oneof=names emails phones clauses signers text ai"`
}

type CollapseRequest struct {
	Collapsed bool `json:"collapsed"`
}

// ExportPayload is a pure client-side serialization of the selected
// page; no network dependency.
type ExportPayload struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Body        string `json:"body"`
}

type StepResponse struct {
	Step int    `json:"step"`
	Key  string `json:"key"`
}

type GoToStepRequest struct {
	Key string `json:"key" validate:"required,oneof=upload data analytics history"`
}
