package driving

import (
	"context"

	"github.com/custodia-labs/quickread-cli/internal/core/domain"
	"github.com/custodia-labs/quickread-cli/internal/core/playback"
	"github.com/custodia-labs/quickread-cli/internal/core/ports/driven"
)

// Reading is an open reading session: an Article and the engine playing it.
type Reading struct {
	// SessionID identifies the history entry this reading saves to.
	SessionID string

	// Article is the content being read.
	Article *domain.Article

	// Engine drives playback. It is owned by the host's event loop.
	Engine *playback.Engine
}

// ReaderService opens articles for playback and records where reading stopped.
type ReaderService interface {
	// Open creates a Reading for article at startIndex. A positive index is
	// treated as a resume. Settings are read once here.
	Open(article *domain.Article, startIndex int, clock driven.Clock) (*Reading, error)

	// Resume reopens a saved session. An empty id picks the most recent
	// unfinished session.
	Resume(ctx context.Context, id string, clock driven.Clock) (*Reading, error)

	// Dismiss stops playback and saves the reading position to history.
	Dismiss(ctx context.Context, reading *Reading) (*domain.ReadingSession, error)

	// PersistRate stores a rate chosen during playback as the new default.
	PersistRate(wpm int) error
}
