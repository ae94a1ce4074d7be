package driven

import (
	"context"

	"github.com/custodia-labs/quickread-cli/internal/core/domain"
)

// NormaliserRegistry routes a captured page or local file to the normaliser
// registered for its MIME type. Unknown types go to the best wildcard
// normaliser; with none registered, ErrUnsupportedType is returned.
type NormaliserRegistry interface {
	// Normalise turns raw into a title and reading text.
	Normalise(ctx context.Context, raw *domain.RawDocument) (*NormaliseResult, error)

	// Register adds a normaliser. Higher priority wins for a shared MIME type.
	Register(normaliser Normaliser)

	// SupportedMIMETypes lists every type with a dedicated normaliser.
	SupportedMIMETypes() []string
}
