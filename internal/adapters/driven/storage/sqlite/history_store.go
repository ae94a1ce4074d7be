package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/quickread-cli/internal/core/domain"
	"github.com/custodia-labs/quickread-cli/internal/core/ports/driven"
)

// historyStore implements driven.HistoryStore.
type historyStore struct {
	store *Store
}

var _ driven.HistoryStore = (*historyStore)(nil)

const sessionColumns = "id, article_id, url, title, text, word_index, fetched_at, last_read_at"

// Save stores or updates a session.
func (s *historyStore) Save(ctx context.Context, session domain.ReadingSession) error {
	a := session.Article
	err := s.store.exec(ctx, `
		INSERT INTO sessions (`+sessionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			article_id = excluded.article_id,
			url = excluded.url,
			title = excluded.title,
			text = excluded.text,
			word_index = excluded.word_index,
			fetched_at = excluded.fetched_at,
			last_read_at = excluded.last_read_at
	`, session.ID, a.ID, a.URL, a.Title, a.Text, session.WordIndex,
		a.FetchedAt.UnixMilli(), session.LastReadAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

// Get retrieves a session by ID.
func (s *historyStore) Get(ctx context.Context, id string) (*domain.ReadingSession, error) {
	row := s.store.db.QueryRowContext(ctx,
		"SELECT "+sessionColumns+" FROM sessions WHERE id = ?", id)

	session, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

// Delete removes a session.
func (s *historyStore) Delete(ctx context.Context, id string) error {
	if err := s.store.exec(ctx, "DELETE FROM sessions WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

// DeleteByURL removes every session for an article URL.
func (s *historyStore) DeleteByURL(ctx context.Context, url string) error {
	if err := s.store.exec(ctx, "DELETE FROM sessions WHERE url = ?", url); err != nil {
		return fmt.Errorf("deleting sessions for %s: %w", url, err)
	}
	return nil
}

// List returns all sessions, most recently read first.
func (s *historyStore) List(ctx context.Context) ([]domain.ReadingSession, error) {
	rows, err := s.store.db.QueryContext(ctx,
		"SELECT "+sessionColumns+" FROM sessions ORDER BY last_read_at DESC, id ASC")
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.ReadingSession //nolint:prealloc // size unknown from query
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

// Clear removes all sessions.
func (s *historyStore) Clear(ctx context.Context) error {
	if err := s.store.exec(ctx, "DELETE FROM sessions"); err != nil {
		return fmt.Errorf("clearing sessions: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanSession rebuilds a session, re-tokenizing the stored text.
// The word index is clamped in case the tokenizer changed since the save.
func scanSession(row rowScanner) (*domain.ReadingSession, error) {
	var session domain.ReadingSession
	var a domain.Article
	var fetchedAt, lastReadAt int64
	err := row.Scan(&session.ID, &a.ID, &a.URL, &a.Title, &a.Text,
		&session.WordIndex, &fetchedAt, &lastReadAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning session: %w", err)
	}

	a.Words = domain.Tokenize(a.Text)
	a.EstimatedReadSeconds = domain.EstimateReadSeconds(len(a.Words))
	a.FetchedAt = time.UnixMilli(fetchedAt)

	session.Article = a
	session.WordIndex = min(max(0, session.WordIndex), len(a.Words))
	session.LastReadAt = time.UnixMilli(lastReadAt)
	return &session, nil
}
