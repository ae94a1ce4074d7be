package html

import (
	"context"
	"net/url"

	"github.com/custodia-labs/quickread-cli/internal/core/domain"
	"github.com/custodia-labs/quickread-cli/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Extract returns the title and single-space separated body text of an
// HTML page. sourceHint names the page when it has no title of its own.
// Returns domain.ErrNoContent when no text survives extraction.
func Extract(page, sourceHint string) (title, text string, err error) {
	title = ResolveTitle(page, sourceHint)
	text = ExtractText(page)
	if text == "" {
		return title, "", domain.ErrNoContent
	}
	return title, text, nil
}

// ExtractText runs the body passes in order: noise removal, content
// selection, tag stripping, entity decoding and whitespace collapsing.
func ExtractText(page string) string {
	s := RemoveNoise(page)
	s = SelectContent(s)
	s = StripTags(s)
	s = DecodeEntities(s)
	return CollapseWhitespace(s)
}

// Normaliser handles HTML documents.
type Normaliser struct{}

// New creates a new HTML normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"text/html", "application/xhtml+xml"}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50 // Generic MIME normaliser, higher than plaintext
}

// Normalise extracts the article title and text from an HTML document.
// The title hint defaults to the host of the document URI.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	hint := raw.TitleHint
	if hint == "" {
		hint = hostOf(raw.URI)
	}

	title, text, err := Extract(string(raw.Content), hint)
	if err != nil {
		return nil, err
	}

	return &driven.NormaliseResult{
		Title: title,
		Text:  text,
	}, nil
}

// hostOf returns the host part of uri, or "" when it has none.
func hostOf(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
