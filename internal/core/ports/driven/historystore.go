package driven

import (
	"context"

	"github.com/custodia-labs/quickread-cli/internal/core/domain"
)

// HistoryStore persists reading sessions.
type HistoryStore interface {
	// Save stores or updates a session.
	Save(ctx context.Context, session domain.ReadingSession) error

	// Get retrieves a session by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*domain.ReadingSession, error)

	// Delete removes a session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error

	// DeleteByURL removes every session for an article URL.
	DeleteByURL(ctx context.Context, url string) error

	// List returns all sessions, most recently read first.
	List(ctx context.Context) ([]domain.ReadingSession, error)

	// Clear removes all sessions.
	Clear(ctx context.Context) error
}
