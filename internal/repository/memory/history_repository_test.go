package memory

import (
	"fmt"
	"testing"

	"legaldocai-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func newSession(name string) *entity.DocumentSession {
	return entity.NewDocumentSession(name, nil, entity.Analytics{}, "token-"+name, "/api/preview/v1/file/token-"+name)
}

func TestHistoryRepositoryPrependOrder(t *testing.T) {
	repo := NewHistoryRepository()

	for i := 1; i <= 3; i++ {
		repo.Prepend(newSession(fmt.Sprintf("doc-%d", i)))
	}

	list := repo.List()
	assert.Len(t, list, 3)
	assert.Equal(t, "doc-3", list[0].Name, "newest entry must be first")
	assert.Equal(t, "doc-1", list[2].Name)
}

func TestHistoryRepositoryRemoveSplices(t *testing.T) {
	repo := NewHistoryRepository()
	repo.Prepend(newSession("a"))
	repo.Prepend(newSession("b"))
	repo.Prepend(newSession("c")) // order: c, b, a

	removed := repo.Remove(1)
	assert.NotNil(t, removed)
	assert.Equal(t, "b", removed.Name)

	list := repo.List()
	assert.Len(t, list, 2)
	assert.Equal(t, "c", list[0].Name)
	assert.Equal(t, "a", list[1].Name, "later entries shift down by one")
}

func TestHistoryRepositoryOutOfRange(t *testing.T) {
	repo := NewHistoryRepository()
	repo.Prepend(newSession("only"))

	assert.Nil(t, repo.Get(-1))
	assert.Nil(t, repo.Get(1))
	assert.Nil(t, repo.Remove(5))
	assert.Equal(t, 1, repo.Len())
}

func TestHistoryRepositoryListReturnsCopy(t *testing.T) {
	repo := NewHistoryRepository()
	repo.Prepend(newSession("a"))

	list := repo.List()
	list[0] = nil

	assert.NotNil(t, repo.Get(0), "mutating the returned slice must not affect the repository")
}

func TestPreviewRepositoryLifecycle(t *testing.T) {
	repo := NewPreviewRepository()
	file := &entity.UploadedFile{Name: "contract.pdf", ContentType: "application/pdf", Data: []byte("%PDF")}

	token := repo.Put(file)
	assert.NotEmpty(t, token)

	got, found := repo.Get(token)
	assert.True(t, found)
	assert.Equal(t, "contract.pdf", got.Name)

	repo.Release(token)
	_, found = repo.Get(token)
	assert.False(t, found, "released token must not resolve")
}
