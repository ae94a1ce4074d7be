package plaintext

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/quickread-cli/internal/core/domain"
	"github.com/custodia-labs/quickread-cli/internal/core/ports/driven"
)

// ClipboardTitle names text that arrives without a title or a file name.
const ClipboardTitle = "From Clipboard"

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles plain text pasted, piped or read from a file.
type Normaliser struct{}

// New creates a new plain text normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"text/plain", "text/csv"}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 5 // Fallback normaliser
}

// Normalise collapses the document's whitespace into single spaces.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	text := strings.Join(strings.Fields(string(raw.Content)), " ")
	if text == "" {
		return nil, domain.ErrNoContent
	}

	return &driven.NormaliseResult{
		Title: resolveTitle(raw),
		Text:  text,
	}, nil
}

// resolveTitle prefers the hint, then a file name, then ClipboardTitle.
func resolveTitle(raw *domain.RawDocument) string {
	if hint := strings.TrimSpace(raw.TitleHint); hint != "" {
		return hint
	}
	if raw.URI == "" || raw.URI == domain.ClipboardURL || strings.Contains(raw.URI, "://") {
		return ClipboardTitle
	}
	return extractTitle(raw.URI)
}

// extractTitle extracts a human-readable title from a file path.
func extractTitle(uri string) string {
	filename := filepath.Base(uri)

	ext := filepath.Ext(filename)
	if ext != "" {
		filename = strings.TrimSuffix(filename, ext)
	}

	filename = strings.ReplaceAll(filename, "_", " ")
	filename = strings.ReplaceAll(filename, "-", " ")

	return filename
}
