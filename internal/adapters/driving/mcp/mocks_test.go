package mcp

import (
	"context"

	"github.com/custodia-labs/quickread-cli/internal/core/domain"
)

// mockCaptureService is a mock implementation of driving.CaptureService.
type mockCaptureService struct {
	article *domain.Article
	err     error
	urls    []string
}

func (m *mockCaptureService) CaptureActiveTab(_ context.Context) (*domain.Article, error) {
	return m.article, m.err
}

func (m *mockCaptureService) CaptureURL(_ context.Context, url string) (*domain.Article, error) {
	m.urls = append(m.urls, url)
	return m.article, m.err
}

func (m *mockCaptureService) ExtractURL(_ context.Context, url string) (*domain.Article, error) {
	m.urls = append(m.urls, url)
	return m.article, m.err
}

func (m *mockCaptureService) FromText(_ context.Context, _, _ string) (*domain.Article, error) {
	return m.article, m.err
}

func (m *mockCaptureService) FromDocument(_ context.Context, _ *domain.RawDocument) (*domain.Article, error) {
	return m.article, m.err
}

func (m *mockCaptureService) FromClipboard(_ context.Context) (*domain.Article, error) {
	return m.article, m.err
}

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	sessions []domain.ReadingSession
	err      error
}

func (m *mockHistoryService) Save(_ context.Context, _ domain.ReadingSession) error {
	return m.err
}

func (m *mockHistoryService) Get(_ context.Context, id string) (*domain.ReadingSession, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.sessions {
		if m.sessions[i].ID == id {
			return &m.sessions[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockHistoryService) Remove(_ context.Context, _ string) error {
	return m.err
}

func (m *mockHistoryService) ClearAll(_ context.Context) error {
	return m.err
}

func (m *mockHistoryService) List(_ context.Context) ([]domain.ReadingSession, error) {
	return m.sessions, m.err
}

func (m *mockHistoryService) MostRecentUnfinished(_ context.Context) (*domain.ReadingSession, error) {
	return nil, m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.AppSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) Save(_ *domain.AppSettings) error { return m.err }
func (m *mockSettingsService) SetRate(_ int) error { return m.err }
func (m *mockSettingsService) SetCountdown(_, _ bool) error { return m.err }
func (m *mockSettingsService) SetRewindSentences(_ int) error { return m.err }
func (m *mockSettingsService) SetHistoryRetention(_ int) error { return m.err }
func (m *mockSettingsService) Reset() error { return m.err }
func (m *mockSettingsService) Validate() error { return m.err }
func (m *mockSettingsService) GetDefaults() domain.AppSettings { return domain.DefaultAppSettings() }

func testArticle(url, title, text string) *domain.Article {
	article, err := domain.NewArticle("art-1", url, title, text)
	if err != nil {
		panic(err)
	}
	return article
}

func testSessions() []domain.ReadingSession {
	return []domain.ReadingSession{
		domain.NewReadingSession("s1", *testArticle("https://example.com/a", "First", "One two three four"), 2),
		domain.NewReadingSession("s2", *testArticle("https://example.com/b", "Second", "Five six"), 2),
		domain.NewReadingSession("s3", *testArticle("https://example.com/c", "Third", "Seven eight nine"), 0),
	}
}
