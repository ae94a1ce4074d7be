package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/custodia-labs/quickread-cli/internal/core/domain"
	"github.com/custodia-labs/quickread-cli/internal/core/playback"
	"github.com/custodia-labs/quickread-cli/internal/core/ports/driven"
	"github.com/custodia-labs/quickread-cli/internal/core/ports/driving"
	"github.com/custodia-labs/quickread-cli/internal/logger"
)

// Ensure ReaderService implements the interface.
var _ driving.ReaderService = (*ReaderService)(nil)

// ReaderService opens articles for playback and saves reading positions.
type ReaderService struct {
	settings driving.SettingsService
	history  driving.HistoryService
}

// NewReaderService creates a new reader service.
func NewReaderService(settings driving.SettingsService, history driving.HistoryService) *ReaderService {
	return &ReaderService{
		settings: settings,
		history:  history,
	}
}

// Open creates a Reading for article at startIndex.
func (s *ReaderService) Open(article *domain.Article, startIndex int, clock driven.Clock) (*driving.Reading, error) {
	return s.open(uuid.NewString(), article, startIndex, clock)
}

// Resume reopens a saved session. An empty id picks the most recent
// unfinished session.
func (s *ReaderService) Resume(ctx context.Context, id string, clock driven.Clock) (*driving.Reading, error) {
	var session *domain.ReadingSession
	var err error
	if id == "" {
		session, err = s.history.MostRecentUnfinished(ctx)
		if err == nil && session == nil {
			err = fmt.Errorf("%w: no unfinished reading session", domain.ErrNotFound)
		}
	} else {
		session, err = s.history.Get(ctx, id)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("resuming %q at word %d/%d", session.Article.Title, session.WordIndex, session.Article.WordCount())
	return s.open(session.ID, &session.Article, session.WordIndex, clock)
}

// Dismiss stops playback and saves the reading position to history.
// A reading that played to the last word is saved as complete.
func (s *ReaderService) Dismiss(ctx context.Context, reading *driving.Reading) (*domain.ReadingSession, error) {
	if reading == nil || reading.Article == nil || reading.Engine == nil {
		return nil, domain.ErrInvalidInput
	}

	index := reading.Engine.Position()
	if reading.Engine.Finished() {
		index = reading.Article.WordCount()
	}
	reading.Engine.Close()

	session := domain.NewReadingSession(reading.SessionID, *reading.Article, index)
	if err := s.history.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save reading position: %w", err)
	}
	return &session, nil
}

// PersistRate stores a rate chosen during playback as the new default.
func (s *ReaderService) PersistRate(wpm int) error {
	return s.settings.SetRate(wpm)
}

func (s *ReaderService) open(id string, article *domain.Article, startIndex int, clock driven.Clock) (*driving.Reading, error) {
	if article == nil || article.WordCount() == 0 {
		return nil, domain.ErrNoContent
	}

	settings, err := s.settings.Get()
	if err != nil {
		return nil, err
	}

	engine := playback.NewEngine(article, clock, playback.OptionsFromSettings(*settings, startIndex))
	return &driving.Reading{
		SessionID: id,
		Article:   article,
		Engine:    engine,
	}, nil
}
