package normalisers

import (
	"context"
	"fmt"
	"mime"
	"sort"
	"strings"

	"github.com/custodia-labs/quickread-cli/internal/core/domain"
	"github.com/custodia-labs/quickread-cli/internal/core/ports/driven"
	"github.com/custodia-labs/quickread-cli/internal/normalisers/docx"
	"github.com/custodia-labs/quickread-cli/internal/normalisers/eml"
	"github.com/custodia-labs/quickread-cli/internal/normalisers/html"
	"github.com/custodia-labs/quickread-cli/internal/normalisers/markdown"
	"github.com/custodia-labs/quickread-cli/internal/normalisers/plaintext"
)

// fallbackPriority is the priority below which a normaliser is a fallback.
const fallbackPriority = 10

// Ensure Registry implements the interface.
var _ driven.NormaliserRegistry = (*Registry)(nil)

// Registry dispatches raw documents to normalisers by MIME type.
type Registry struct {
	normalisers []driven.Normaliser
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// NewDefaultRegistry creates a registry with the built-in normalisers.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(html.New())
	r.Register(markdown.New())
	r.Register(docx.New())
	r.Register(eml.New())
	r.Register(plaintext.New())
	return r
}

// Register adds a normaliser. Normalisers are kept ordered by priority.
func (r *Registry) Register(normaliser driven.Normaliser) {
	r.normalisers = append(r.normalisers, normaliser)
	sort.SliceStable(r.normalisers, func(i, j int) bool {
		return r.normalisers[i].Priority() > r.normalisers[j].Priority()
	})
}

// Normalise runs the highest priority normaliser for the document's MIME
// type. Documents with no matching normaliser go to the best fallback.
func (r *Registry) Normalise(ctx context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	n := r.find(baseMIMEType(raw.MIMEType))
	if n == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, raw.MIMEType)
	}
	return n.Normalise(ctx, raw)
}

// SupportedMIMETypes returns every MIME type a registered normaliser handles.
func (r *Registry) SupportedMIMETypes() []string {
	seen := make(map[string]bool)
	var types []string
	for _, n := range r.normalisers {
		for _, t := range n.SupportedMIMETypes() {
			if !seen[t] {
				seen[t] = true
				types = append(types, t)
			}
		}
	}
	sort.Strings(types)
	return types
}

func (r *Registry) find(mimeType string) driven.Normaliser {
	for _, n := range r.normalisers {
		for _, t := range n.SupportedMIMETypes() {
			if t == mimeType {
				return n
			}
		}
	}
	for _, n := range r.normalisers {
		if n.Priority() < fallbackPriority {
			return n
		}
	}
	return nil
}

// baseMIMEType strips parameters and lowercases a content type.
func baseMIMEType(contentType string) string {
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		return mediaType
	}
	mediaType, _, _ := strings.Cut(contentType, ";")
	return strings.ToLower(strings.TrimSpace(mediaType))
}
