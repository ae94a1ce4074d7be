package driven

import "context"

// BrowserBridge reads the location of the frontmost browser's active tab.
type BrowserBridge interface {
	// ActiveTabURL returns the active tab URL.
	// Fails with domain.ErrNoBrowserFound, domain.ErrNoURLFound,
	// *domain.UnsupportedBrowserError or *domain.ScriptError.
	ActiveTabURL(ctx context.Context) (string, error)
}

// Clipboard supplies the current clipboard text.
type Clipboard interface {
	// ReadText returns the clipboard contents as text.
	ReadText() (string, error)
}
