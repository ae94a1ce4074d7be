// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/custodia-labs/quickread-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/quickread-cli/internal/core/domain"
)

// SessionList displays saved reading sessions in a navigable list.
type SessionList struct {
	sessions []domain.ReadingSession
	selected int
	styles   *styles.Styles
	width    int
	height   int
	now      func() time.Time
}

// NewSessionList creates a new session list component.
func NewSessionList(s *styles.Styles) *SessionList {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &SessionList{
		styles: s,
		width:  80,
		height: 10,
		now:    time.Now,
	}
}

// View renders the session list.
func (r *SessionList) View() string {
	if len(r.sessions) == 0 {
		return r.styles.Muted.Render("No saved sessions")
	}

	lines := make([]string, 0, len(r.sessions)+2)
	lines = append(lines, r.styles.Subtitle.Render(fmt.Sprintf("History (%d)", len(r.sessions))), "")

	// Each session takes two lines.
	visible := max(1, (r.height-4)/2)
	start := 0
	if r.selected >= visible {
		start = r.selected - visible + 1
	}
	end := min(start+visible, len(r.sessions))

	for i := start; i < end; i++ {
		lines = append(lines, r.renderSession(i, &r.sessions[i]))
	}
	return strings.Join(lines, "\n")
}

func (r *SessionList) renderSession(index int, session *domain.ReadingSession) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	title := session.Article.Title
	if title == "" {
		title = "Untitled"
	}
	maxTitle := max(10, r.width-12)
	title = Truncate(title, maxTitle)

	progress := fmt.Sprintf("%3d%%", session.ProgressPercentage())
	var titleLine string
	if index == r.selected {
		titleLine = r.styles.Selected.Render(fmt.Sprintf("%s%-*s  %s", indicator, maxTitle, title, progress))
	} else {
		titleLine = r.styles.Normal.Render(fmt.Sprintf("%s%-*s  ", indicator, maxTitle, title)) +
			r.styles.Muted.Render(progress)
	}

	detail := fmt.Sprintf("    %s · %s words · %s",
		Truncate(session.Article.URL, max(20, r.width-40)),
		humanize.Comma(int64(session.Article.WordCount())),
		humanize.RelTime(session.LastReadAt, r.now(), "ago", "from now"))
	return titleLine + "\n" + r.styles.Muted.Render(detail)
}

// Truncate shortens s to at most n runes, marking the cut with "...".
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// SetSessions replaces the list contents and resets the selection.
func (r *SessionList) SetSessions(sessions []domain.ReadingSession) {
	r.sessions = sessions
	r.selected = 0
}

// Remove drops the session with id, keeping the selection in range.
func (r *SessionList) Remove(id string) {
	for i := range r.sessions {
		if r.sessions[i].ID == id {
			r.sessions = append(r.sessions[:i], r.sessions[i+1:]...)
			break
		}
	}
	r.selected = min(r.selected, max(0, len(r.sessions)-1))
}

// Selected returns the index of the selected session.
func (r *SessionList) Selected() int {
	return r.selected
}

// SelectedSession returns the currently selected session, or nil if none.
func (r *SessionList) SelectedSession() *domain.ReadingSession {
	if r.selected < 0 || r.selected >= len(r.sessions) {
		return nil
	}
	return &r.sessions[r.selected]
}

// MoveUp moves selection up.
func (r *SessionList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *SessionList) MoveDown() {
	if r.selected < len(r.sessions)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *SessionList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of sessions.
func (r *SessionList) Count() int {
	return len(r.sessions)
}
