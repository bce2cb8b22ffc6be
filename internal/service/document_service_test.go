package service

import (
	"encoding/json"
	"testing"

	"legaldocai-be/internal/constant"
	"legaldocai-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func newDocumentFixture(t *testing.T) (*sessionFixture, IDocumentService) {
	t.Helper()
	f := newSessionFixture()
	f.service.Commit(twoPageResults(), sampleAnalytics(), pdfFile("contract.pdf"))
	return f, NewDocumentService(f.service)
}

func TestPagesNoSession(t *testing.T) {
	f := newSessionFixture()
	docs := NewDocumentService(f.service)

	_, err := docs.Pages("")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), constant.MsgNoExtractedData)
}

func TestPagesFiltersEntityListsOnly(t *testing.T) {
	_, docs := newDocumentFixture(t)

	res, err := docs.Pages("alice")
	assert.NoError(t, err)
	assert.Len(t, res.Pages, 2, "pages are never dropped by filtering")

	first := res.Pages[0]
	assert.Equal(t, []string{"Alice Johnson"}, first.Names)
	assert.Equal(t, []string{"alice@corp.com"}, first.Emails)
	assert.Empty(t, first.Phones)
	assert.Empty(t, first.ClausesFound)
	assert.Equal(t, []string{"Alice Johnson"}, first.Signers, "signers pass through unfiltered")
	assert.Equal(t, "This agreement is between Alice Johnson and Bob Smith.", first.Text, "text passes through unfiltered")
	assert.Contains(t, first.HighlightedText, "<mark>Alice</mark>")

	second := res.Pages[1]
	assert.Empty(t, second.Names)
	assert.Empty(t, second.ClausesFound)
}

func TestPagesEmptyQueryReturnsEverything(t *testing.T) {
	_, docs := newDocumentFixture(t)

	res, err := docs.Pages("")
	assert.NoError(t, err)
	assert.Len(t, res.Pages[0].Names, 2)
	assert.Len(t, res.Pages[0].ClausesFound, 2)
	assert.NotContains(t, res.Pages[0].HighlightedText, "<mark>")
}

func TestFilterPagesDoesNotMutateSnapshot(t *testing.T) {
	pages := twoPageResults()

	FilterPages(pages, "alice")

	assert.Len(t, pages[0].Names, 2, "the snapshot must survive filtering untouched")
	assert.Len(t, pages[0].ClausesFound, 2)
}

func TestFilterPagesIdempotent(t *testing.T) {
	once := FilterPages(twoPageResults(), "ti")
	twice := FilterPages(once, "ti")
	assert.Equal(t, once, twice)
}

func TestSelectPage(t *testing.T) {
	_, docs := newDocumentFixture(t)

	res, err := docs.SelectPage(1)
	assert.NoError(t, err)
	assert.Equal(t, 1, res.PageIndex)

	_, err = docs.SelectPage(2)
	assert.Error(t, err, "index past the last page is rejected")
	_, err = docs.SelectPage(-1)
	assert.Error(t, err)
}

func TestSelectPageKeepsLastQuery(t *testing.T) {
	_, docs := newDocumentFixture(t)

	_, err := docs.Pages("alice")
	assert.NoError(t, err)

	res, err := docs.SelectPage(1)
	assert.NoError(t, err)
	assert.Equal(t, "alice", res.Query, "page selection re-renders with the active query")
	assert.Equal(t, []string{"Alice Johnson"}, res.Pages[0].Names)
}

func TestToggleSection(t *testing.T) {
	_, docs := newDocumentFixture(t)

	flags, err := docs.ToggleSection(constant.SectionAI)
	assert.NoError(t, err)
	assert.True(t, flags.AI, "AI panel starts closed, toggle opens it")
	assert.True(t, flags.Names, "other panels untouched")

	flags, err = docs.ToggleSection(constant.SectionNames)
	assert.NoError(t, err)
	assert.False(t, flags.Names)

	_, err = docs.ToggleSection("bogus")
	assert.Error(t, err)
}

func TestSetCollapsedAll(t *testing.T) {
	_, docs := newDocumentFixture(t)

	flags, err := docs.SetCollapsedAll(true)
	assert.NoError(t, err)
	assert.Equal(t, false, flags.Names)
	assert.Equal(t, false, flags.Text)
	assert.Equal(t, false, flags.AI)

	flags, err = docs.SetCollapsedAll(false)
	assert.NoError(t, err)
	assert.True(t, flags.Names)
	assert.True(t, flags.AI, "expand-all opens even the AI panel")
}

func TestViewStateResetsOnNewSession(t *testing.T) {
	f, docs := newDocumentFixture(t)

	_, err := docs.SelectPage(1)
	assert.NoError(t, err)
	_, err = docs.SetCollapsedAll(true)
	assert.NoError(t, err)

	// New upload becomes active; view state must reset.
	f.service.Commit(twoPageResults(), sampleAnalytics(), pdfFile("another.pdf"))

	res, err := docs.Pages("")
	assert.NoError(t, err)
	assert.Equal(t, 0, res.PageIndex)
	assert.False(t, res.CollapsedAll)
	assert.True(t, res.Sections.Names)
	assert.False(t, res.Sections.AI)
}

func TestExportJSONRoundTrip(t *testing.T) {
	_, docs := newDocumentFixture(t)

	payload, err := docs.ExportJSON()
	assert.NoError(t, err)
	assert.Equal(t, "page-1.json", payload.Filename)
	assert.Equal(t, "application/json", payload.ContentType)

	var page entity.PageResult
	assert.NoError(t, json.Unmarshal([]byte(payload.Body), &page))
	assert.Equal(t, twoPageResults()[0], page, "parsing the export reproduces the page exactly")
}

func TestExportTextAndCopy(t *testing.T) {
	_, docs := newDocumentFixture(t)

	_, err := docs.SelectPage(1)
	assert.NoError(t, err)

	payload, err := docs.ExportText()
	assert.NoError(t, err)
	assert.Equal(t, "page-2.txt", payload.Filename)
	assert.Equal(t, "Governing law and indemnification.", payload.Body)

	text, err := docs.PageText()
	assert.NoError(t, err)
	assert.Equal(t, payload.Body, text)
}
