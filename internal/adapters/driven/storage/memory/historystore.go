package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/quickread-cli/internal/core/domain"
	"github.com/custodia-labs/quickread-cli/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
type HistoryStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.ReadingSession
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{
		sessions: make(map[string]domain.ReadingSession),
	}
}

// Save stores or updates a session.
func (s *HistoryStore) Save(_ context.Context, session domain.ReadingSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

// Get retrieves a session by ID.
func (s *HistoryStore) Get(_ context.Context, id string) (*domain.ReadingSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &session, nil
}

// Delete removes a session.
func (s *HistoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// DeleteByURL removes every session for an article URL.
func (s *HistoryStore) DeleteByURL(_ context.Context, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, session := range s.sessions {
		if session.Article.URL == url {
			delete(s.sessions, id)
		}
	}
	return nil
}

// List returns all sessions, most recently read first.
func (s *HistoryStore) List(_ context.Context) ([]domain.ReadingSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.ReadingSession, 0, len(s.sessions))
	for _, session := range s.sessions {
		result = append(result, session)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].LastReadAt.Equal(result[j].LastReadAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].LastReadAt.After(result[j].LastReadAt)
	})
	return result, nil
}

// Clear removes all sessions.
func (s *HistoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = make(map[string]domain.ReadingSession)
	return nil
}
