package driven

import (
	"context"

	"github.com/custodia-labs/quickread-cli/internal/core/domain"
)

// Normaliser transforms raw documents into readable plain text.
// Each normaliser handles specific MIME types (e.g., HTML, plain text).
type Normaliser interface {
	// SupportedMIMETypes returns the MIME types this normaliser handles.
	SupportedMIMETypes() []string

	// Priority returns the selection priority (higher = preferred).
	// Generic MIME normalisers should return 50-89.
	// Fallback normalisers should return 1-9.
	Priority() int

	// Normalise extracts a title and normalised text from a raw document.
	// Returns domain.ErrNoContent if no readable text remains.
	Normalise(ctx context.Context, raw *domain.RawDocument) (*NormaliseResult, error)
}

// NormaliseResult contains the output of normalisation.
type NormaliseResult struct {
	// Title is the resolved document title.
	Title string

	// Text is single-space separated plain text.
	Text string
}
