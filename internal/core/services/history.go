package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/quickread-cli/internal/core/domain"
	"github.com/custodia-labs/quickread-cli/internal/core/ports/driven"
	"github.com/custodia-labs/quickread-cli/internal/core/ports/driving"
	"github.com/custodia-labs/quickread-cli/internal/logger"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService manages resumable reading sessions.
// Retention and the session cap are read from settings on every call.
type HistoryService struct {
	store    driven.HistoryStore
	settings driving.SettingsService
	now      func() time.Time
}

// NewHistoryService creates a new history service.
func NewHistoryService(store driven.HistoryStore, settings driving.SettingsService) *HistoryService {
	return &HistoryService{
		store:    store,
		settings: settings,
		now:      time.Now,
	}
}

// Save records a session, replacing any earlier session for the same URL,
// then drops the oldest sessions beyond the configured cap.
func (s *HistoryService) Save(ctx context.Context, session domain.ReadingSession) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	if session.LastReadAt.IsZero() {
		session.LastReadAt = s.now()
	}

	if err := s.store.DeleteByURL(ctx, session.Article.URL); err != nil {
		return fmt.Errorf("replace session for %s: %w", session.Article.URL, err)
	}
	if err := s.store.Save(ctx, session); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	logger.Debug("saved session %s at word %d/%d", session.ID, session.WordIndex, session.Article.WordCount())

	return s.enforceCap(ctx)
}

// Get retrieves a session by ID.
func (s *HistoryService) Get(ctx context.Context, id string) (*domain.ReadingSession, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.Get(ctx, id)
}

// Remove deletes a session.
func (s *HistoryService) Remove(ctx context.Context, id string) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	if _, err := s.store.Get(ctx, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

// ClearAll deletes every session.
func (s *HistoryService) ClearAll(ctx context.Context) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	return s.store.Clear(ctx)
}

// List returns retained sessions, most recent first.
// Sessions older than the retention window are deleted from the store.
func (s *HistoryService) List(ctx context.Context) ([]domain.ReadingSession, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}

	sessions, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	settings, err := s.settings.Get()
	if err != nil {
		return nil, err
	}
	days := settings.History.RetentionDays
	if days <= 0 {
		return sessions, nil
	}

	cutoff := s.now().AddDate(0, 0, -days)
	kept := sessions[:0]
	for _, session := range sessions {
		if session.LastReadAt.Before(cutoff) {
			if err := s.store.Delete(ctx, session.ID); err != nil {
				return nil, fmt.Errorf("expire session %s: %w", session.ID, err)
			}
			logger.Debug("expired session %s (last read %s)", session.ID, session.LastReadAt.Format(time.DateOnly))
			continue
		}
		kept = append(kept, session)
	}
	return kept, nil
}

// MostRecentUnfinished returns the newest session that is not complete,
// or nil if there is none.
func (s *HistoryService) MostRecentUnfinished(ctx context.Context) (*domain.ReadingSession, error) {
	sessions, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range sessions {
		if !sessions[i].IsComplete() {
			return &sessions[i], nil
		}
	}
	return nil, nil
}

// enforceCap deletes the oldest sessions beyond MaxSessions.
func (s *HistoryService) enforceCap(ctx context.Context) error {
	settings, err := s.settings.Get()
	if err != nil {
		return err
	}
	limit := settings.History.MaxSessions
	if limit <= 0 {
		return nil
	}

	sessions, err := s.store.List(ctx)
	if err != nil {
		return fmt.Errorf("list sessions: %w", err)
	}
	for _, session := range sessions[min(limit, len(sessions)):] {
		if err := s.store.Delete(ctx, session.ID); err != nil {
			return fmt.Errorf("trim session %s: %w", session.ID, err)
		}
	}
	return nil
}
