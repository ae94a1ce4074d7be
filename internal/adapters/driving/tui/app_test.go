package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/quickread-cli/internal/adapters/driven/clock"
	"github.com/custodia-labs/quickread-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/quickread-cli/internal/core/domain"
	"github.com/custodia-labs/quickread-cli/internal/core/playback"
	"github.com/custodia-labs/quickread-cli/internal/core/ports/driven"
	"github.com/custodia-labs/quickread-cli/internal/core/ports/driving"
)

func newTestPorts() (*Ports, *MockReaderService, *MockHistoryService) {
	reader := &MockReaderService{}
	history := &MockHistoryService{}
	return NewPorts(reader, history, &MockSettingsService{}), reader, history
}

func testArticle(t *testing.T) *domain.Article {
	t.Helper()
	article, err := domain.NewArticle("a1", "https://example.com/post", "A Post",
		"The cat sat. It was happy. Then it slept.")
	require.NoError(t, err)
	return article
}

func newTestApp(t *testing.T) (*App, *MockReaderService, *MockHistoryService, *clock.Virtual) {
	t.Helper()
	ports, reader, history := newTestPorts()
	c := clock.NewVirtual()
	app, err := NewApp(ports, c)
	require.NoError(t, err)
	app.SetDimensions(80, 24)
	return app, reader, history, c
}

// openerFor returns an Opener that opens article through reader.
func openerFor(reader driving.ReaderService, article *domain.Article) Opener {
	return func(_ context.Context, c driven.Clock) (*driving.Reading, error) {
		return reader.Open(article, 0, c)
	}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNewApp_Success(t *testing.T) {
	ports, _, _ := newTestPorts()

	app, err := NewApp(ports, clock.NewVirtual())

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, messages.ViewHistory, app.CurrentView())
	assert.False(t, app.Ready())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{}, clock.NewVirtual())

	assert.ErrorIs(t, err, ErrMissingReaderService)
	assert.Nil(t, app)
}

func TestNewApp_MissingClock(t *testing.T) {
	ports, _, _ := newTestPorts()

	app, err := NewApp(ports, nil)

	assert.ErrorIs(t, err, ErrMissingClock)
	assert.Nil(t, app)
}

func TestApp_WithContext(t *testing.T) {
	app, _, _, _ := newTestApp(t)

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")

	assert.Equal(t, app, app.WithContext(ctx))
	assert.Equal(t, ctx, app.ctx)
}

func TestApp_WithOpener(t *testing.T) {
	app, reader, _, _ := newTestApp(t)

	app.WithOpener(openerFor(reader, testArticle(t)))

	assert.Equal(t, messages.ViewLoading, app.CurrentView())
	assert.NotNil(t, app.Init())
	assert.Contains(t, app.View(), "Fetching article")
}

func TestApp_View_NotReady(t *testing.T) {
	ports, _, _ := newTestPorts()
	app, err := NewApp(ports, clock.NewVirtual())
	require.NoError(t, err)

	assert.Equal(t, "Initialising...", app.View())
}

func TestApp_Update_WindowSize(t *testing.T) {
	ports, _, _ := newTestPorts()
	app, err := NewApp(ports, clock.NewVirtual())
	require.NoError(t, err)

	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.True(t, app.Ready())
	assert.Equal(t, 100, app.width)
	assert.Equal(t, 30, app.height)
}

func TestApp_Update_Dispatch(t *testing.T) {
	app, _, _, _ := newTestApp(t)
	ran := false

	_, cmd := app.Update(messages.Dispatch{Fn: func() { ran = true }})

	assert.True(t, ran)
	assert.Nil(t, cmd)

	assert.NotPanics(t, func() { app.Update(messages.Dispatch{}) })
}

func TestApp_OpenReadDismiss(t *testing.T) {
	app, reader, _, c := newTestApp(t)
	app.WithOpener(openerFor(reader, testArticle(t)))

	app.Update(app.open(app.opener)())
	require.Equal(t, messages.ViewReader, app.CurrentView())
	assert.Contains(t, app.View(), "A Post")

	app.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	engine := app.readerView.Reading().Engine
	require.Equal(t, playback.StatePlaying, engine.State())
	c.Advance(3 * engine.Interval())
	assert.Equal(t, 3, engine.Position())

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	require.Len(t, reader.Dismissed, 1)

	dismissed := cmd()
	_, cmd = app.Update(dismissed)

	assert.True(t, isQuit(cmd), "single-article mode exits after dismissal")
	assert.Equal(t, 3, dismissed.(messages.Dismissed).Session.WordIndex)
}

func TestApp_OpenError(t *testing.T) {
	app, _, _, _ := newTestApp(t)
	app.WithOpener(func(context.Context, driven.Clock) (*driving.Reading, error) {
		return nil, domain.ErrNoContent
	})

	app.Update(app.open(app.opener)())

	assert.Equal(t, messages.ViewError, app.CurrentView())
	assert.ErrorIs(t, app.Err(), domain.ErrNoContent)
	assert.Contains(t, app.View(), "no readable content found")

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.True(t, isQuit(cmd))
}

func TestApp_ResumeFromHistory(t *testing.T) {
	app, reader, history, _ := newTestApp(t)
	article := testArticle(t)
	history.Sessions = []domain.ReadingSession{domain.NewReadingSession("s1", *article, 4)}

	var resumed string
	reader.ResumeFunc = func(_ context.Context, id string, c driven.Clock) (*driving.Reading, error) {
		resumed = id
		return reader.Open(article, 4, c)
	}

	app.Update(app.historyView.Load()())
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	_, cmd = app.Update(cmd())
	assert.Equal(t, messages.ViewLoading, app.CurrentView())

	app.Update(cmd())
	assert.Equal(t, "s1", resumed)
	require.Equal(t, messages.ViewReader, app.CurrentView())
	assert.Equal(t, 3, app.readerView.Reading().Engine.Position(), "resume rewinds to the start of the sentence")

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	_, cmd = app.Update(cmd())

	assert.Equal(t, messages.ViewHistory, app.CurrentView())
	require.NotNil(t, cmd)
	assert.IsType(t, messages.SessionsLoaded{}, cmd())
}

func TestApp_ResumeError_ReturnsToHistory(t *testing.T) {
	app, _, _, _ := newTestApp(t)

	_, cmd := app.Update(messages.ResumeRequested{SessionID: "missing"})
	app.Update(cmd())

	require.Equal(t, messages.ViewError, app.CurrentView())
	assert.ErrorIs(t, app.Err(), domain.ErrNotFound)

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, messages.ViewHistory, app.CurrentView())
	assert.NoError(t, app.Err())
}

func TestApp_CtrlCWhileReading_SavesThenQuits(t *testing.T) {
	app, reader, _, c := newTestApp(t)
	reading, err := reader.Open(testArticle(t), 0, c)
	require.NoError(t, err)
	app.Update(messages.ReadingOpened{Reading: reading})

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Len(t, reader.Dismissed, 1)

	_, cmd = app.Update(cmd())
	assert.True(t, isQuit(cmd))
}

func TestApp_DismissError_Recorded(t *testing.T) {
	app, _, _, _ := newTestApp(t)
	saveErr := errors.New("history unavailable")

	app.Update(messages.Dismissed{Err: saveErr})

	assert.ErrorIs(t, app.Err(), saveErr)
	assert.Equal(t, messages.ViewHistory, app.CurrentView())
}

func TestApp_SettingsNavigation(t *testing.T) {
	app, _, _, _ := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	require.NotNil(t, cmd)
	_, cmd = app.Update(cmd())
	require.Equal(t, messages.ViewSettings, app.CurrentView())

	app.Update(cmd())
	assert.Contains(t, app.View(), "400 wpm")

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	_, cmd = app.Update(cmd())
	assert.Equal(t, messages.ViewHistory, app.CurrentView())
	assert.NotNil(t, cmd)
}

func TestApp_HistoryQuit(t *testing.T) {
	app, _, _, _ := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	assert.True(t, isQuit(cmd))
}

func TestApp_HistoryView(t *testing.T) {
	app, _, history, _ := newTestApp(t)
	history.Sessions = []domain.ReadingSession{domain.NewReadingSession("s1", *testArticle(t), 0)}

	app.Update(app.historyView.Load()())

	assert.Contains(t, app.View(), "A Post")
}

func TestApp_ErrorOccurred(t *testing.T) {
	app, _, _, _ := newTestApp(t)
	testErr := errors.New("boom")

	app.Update(messages.ErrorOccurred{Err: testErr})

	assert.Equal(t, testErr, app.Err())
}
