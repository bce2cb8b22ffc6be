package memory

import (
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"legaldocai-be/internal/entity"
)

// PreviewRepository parks uploaded blobs so the preview endpoint can
// stream them without re-reading the upload. Entries never expire on
// their own: the owning session must release its token on removal, or
// the blob leaks for the process lifetime. That release is the one
// explicit resource-lifetime contract in this service.
type PreviewRepository struct {
	cache *cache.Cache
}

func NewPreviewRepository() *PreviewRepository {
	return &PreviewRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// Put stores the blob under a fresh token and returns the token.
func (r *PreviewRepository) Put(file *entity.UploadedFile) string {
	token := uuid.NewString()
	r.cache.Set(token, file, cache.NoExpiration)
	return token
}

func (r *PreviewRepository) Get(token string) (*entity.UploadedFile, bool) {
	if x, found := r.cache.Get(token); found {
		return x.(*entity.UploadedFile), true
	}
	return nil, false
}

// Release revokes a token and drops the blob.
func (r *PreviewRepository) Release(token string) {
	r.cache.Delete(token)
}
