package driving

import (
	"context"

	"github.com/custodia-labs/quickread-cli/internal/core/domain"
)

// CaptureService turns a page or raw text into an Article.
type CaptureService interface {
	// CaptureActiveTab reads the active browser tab and extracts its article.
	// When extraction fails the clipboard is used if it holds enough words.
	CaptureActiveTab(ctx context.Context) (*domain.Article, error)

	// CaptureURL fetches url and extracts its article, with the same
	// clipboard fallback as CaptureActiveTab.
	CaptureURL(ctx context.Context, url string) (*domain.Article, error)

	// ExtractURL fetches url and extracts its article without any fallback.
	ExtractURL(ctx context.Context, url string) (*domain.Article, error)

	// FromText builds an Article from externally supplied text.
	FromText(ctx context.Context, title, text string) (*domain.Article, error)

	// FromDocument builds an Article from a local document such as a text
	// or markdown file.
	FromDocument(ctx context.Context, raw *domain.RawDocument) (*domain.Article, error)

	// FromClipboard builds an Article from the current clipboard snapshot.
	FromClipboard(ctx context.Context) (*domain.Article, error)
}
