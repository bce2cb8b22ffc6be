package memory

import (
	"sync"

	"legaldocai-be/internal/entity"
)

// HistoryRepository holds the ordered session history, newest first.
// It lives for the process lifetime; nothing is persisted. Indices are
// stable between mutations, and a removal shifts later entries down by
// one (splice semantics), so callers must not cache indices across a
// delete.
type HistoryRepository struct {
	mu       sync.RWMutex
	sessions []*entity.DocumentSession
}

func NewHistoryRepository() *HistoryRepository {
	return &HistoryRepository{
		sessions: []*entity.DocumentSession{},
	}
}

// Prepend inserts a session at the head of the history.
func (r *HistoryRepository) Prepend(session *entity.DocumentSession) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions = append([]*entity.DocumentSession{session}, r.sessions...)
}

// Get returns the session at index, or nil when out of range.
func (r *HistoryRepository) Get(index int) *entity.DocumentSession {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if index < 0 || index >= len(r.sessions) {
		return nil
	}
	return r.sessions[index]
}

// Remove splices out the session at index and returns it, or nil when
// out of range.
func (r *HistoryRepository) Remove(index int) *entity.DocumentSession {
	r.mu.Lock()
	defer r.mu.Unlock()
	if index < 0 || index >= len(r.sessions) {
		return nil
	}
	removed := r.sessions[index]
	r.sessions = append(r.sessions[:index], r.sessions[index+1:]...)
	return removed
}

// List returns a copy of the history slice, newest first.
func (r *HistoryRepository) List() []*entity.DocumentSession {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.DocumentSession, len(r.sessions))
	copy(out, r.sessions)
	return out
}

func (r *HistoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
