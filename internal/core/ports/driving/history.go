package driving

import (
	"context"

	"github.com/custodia-labs/quickread-cli/internal/core/domain"
)

// HistoryService manages resumable reading sessions.
type HistoryService interface {
	// Save records a session, replacing any earlier session for the same URL.
	Save(ctx context.Context, session domain.ReadingSession) error

	// Get retrieves a session by ID.
	Get(ctx context.Context, id string) (*domain.ReadingSession, error)

	// Remove deletes a session.
	Remove(ctx context.Context, id string) error

	// ClearAll deletes every session.
	ClearAll(ctx context.Context) error

	// List returns retained sessions, most recent first.
	// Sessions older than the retention window are dropped.
	List(ctx context.Context) ([]domain.ReadingSession, error)

	// MostRecentUnfinished returns the newest session that is not complete,
	// or nil if there is none.
	MostRecentUnfinished(ctx context.Context) (*domain.ReadingSession, error)
}
