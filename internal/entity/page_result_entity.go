package entity

// PageResult is one page of the analyzer backend's extraction output.
// The payload is opaque to this layer: we normalize it at the boundary
// and snapshot it into sessions, but never recompute it.
type PageResult struct {
	Page         int      `json:"page"`
	Text         string   `json:"text"`
	Names        []string `json:"names"`
	Emails       []string `json:"emails"`
	Phones       []string `json:"phones"`
	ClausesFound []string `json:"clauses_found"`
	Signers      []string `json:"signers"`
}

// Normalize replaces nil entity lists with empty slices so no consumer
// ever sees a null list ("empty sequence, not absent").
func (p *PageResult) Normalize() {
	if p.Names == nil {
		p.Names = []string{}
	}
	if p.Emails == nil {
		p.Emails = []string{}
	}
	if p.Phones == nil {
		p.Phones = []string{}
	}
	if p.ClausesFound == nil {
		p.ClausesFound = []string{}
	}
	if p.Signers == nil {
		p.Signers = []string{}
	}
}

// NormalizePages normalizes every page in place and returns the slice,
// replacing a nil slice with an empty one.
func NormalizePages(pages []PageResult) []PageResult {
	if pages == nil {
		return []PageResult{}
	}
	for i := range pages {
		pages[i].Normalize()
	}
	return pages
}
