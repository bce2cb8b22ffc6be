package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newPreviewFixture(t *testing.T) (*sessionFixture, IPreviewService) {
	t.Helper()
	f := newSessionFixture()
	return f, NewPreviewService(f.service, f.previewRepo)
}

func TestPreviewNoSession(t *testing.T) {
	_, previews := newPreviewFixture(t)

	_, err := previews.Current()
	assert.Error(t, err)
}

func TestPreviewInitialState(t *testing.T) {
	f, previews := newPreviewFixture(t)
	session := f.service.Commit(twoPageResults(), sampleAnalytics(), pdfFile("contract.pdf"))

	state, err := previews.Current()
	assert.NoError(t, err)
	assert.Equal(t, 1, state.Page)
	assert.Equal(t, 2, state.TotalPages)
	assert.True(t, state.AtStart)
	assert.False(t, state.AtEnd)
	assert.Equal(t, session.PreviewURL, state.PreviewURL)
	assert.Equal(t, "contract.pdf", state.Name)
}

func TestPreviewNavigationClamps(t *testing.T) {
	f, previews := newPreviewFixture(t)
	f.service.Commit(twoPageResults(), sampleAnalytics(), pdfFile("contract.pdf"))

	state, err := previews.Navigate(-1)
	assert.NoError(t, err)
	assert.Equal(t, 1, state.Page, "cannot go below the first page")

	state, err = previews.Navigate(1)
	assert.NoError(t, err)
	assert.Equal(t, 2, state.Page)
	assert.True(t, state.AtEnd)

	state, err = previews.Navigate(1)
	assert.NoError(t, err)
	assert.Equal(t, 2, state.Page, "cannot go past the last page")
}

func TestPreviewGoToClamps(t *testing.T) {
	f, previews := newPreviewFixture(t)
	f.service.Commit(twoPageResults(), sampleAnalytics(), pdfFile("contract.pdf"))

	state, err := previews.GoTo(99)
	assert.NoError(t, err)
	assert.Equal(t, 2, state.Page)

	state, err = previews.GoTo(-3)
	assert.NoError(t, err)
	assert.Equal(t, 1, state.Page)
}

func TestPreviewResetsOnNewDocument(t *testing.T) {
	f, previews := newPreviewFixture(t)
	f.service.Commit(twoPageResults(), sampleAnalytics(), pdfFile("first.pdf"))

	_, err := previews.GoTo(2)
	assert.NoError(t, err)

	f.service.Commit(twoPageResults(), sampleAnalytics(), pdfFile("second.pdf"))

	state, err := previews.Current()
	assert.NoError(t, err)
	assert.Equal(t, 1, state.Page, "a new document starts at page one")
	assert.Equal(t, "second.pdf", state.Name)
}

func TestPreviewSinglePageDocument(t *testing.T) {
	f, previews := newPreviewFixture(t)
	f.service.Commit(nil, sampleAnalytics(), pdfFile("scan.pdf"))

	state, err := previews.Current()
	assert.NoError(t, err)
	assert.Equal(t, 1, state.TotalPages)
	assert.True(t, state.AtStart)
	assert.True(t, state.AtEnd)
}

func TestPreviewMissingBlob(t *testing.T) {
	f, previews := newPreviewFixture(t)
	session := f.service.Commit(twoPageResults(), sampleAnalytics(), pdfFile("contract.pdf"))

	f.previewRepo.Release(session.PreviewToken)

	_, err := previews.Current()
	assert.Error(t, err)
}

func TestPreviewBlobResolvesAnySession(t *testing.T) {
	f, previews := newPreviewFixture(t)
	old := f.service.Commit(twoPageResults(), sampleAnalytics(), pdfFile("old.pdf"))
	f.service.Commit(twoPageResults(), sampleAnalytics(), pdfFile("new.pdf"))

	file, err := previews.Blob(old.PreviewToken)
	assert.NoError(t, err)
	assert.Equal(t, "old.pdf", file.Name)

	_, err = previews.Blob("unknown-token")
	assert.Error(t, err)
}
