// Package clipboard reads the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/custodia-labs/quickread-cli/internal/core/ports/driven"
)

// Ensure System implements the interface.
var _ driven.Clipboard = (*System)(nil)

// System reads text from the operating system clipboard.
type System struct {
	read func() (string, error)
}

// NewSystem creates a clipboard reader backed by atotto/clipboard.
func NewSystem() *System {
	return &System{read: clipboard.ReadAll}
}

// ReadText returns the clipboard contents.
// On Linux this needs xclip, xsel or wl-clipboard on the PATH.
func (s *System) ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", errors.New("clipboard: no clipboard utility available")
	}
	text, err := s.read()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	return text, nil
}
