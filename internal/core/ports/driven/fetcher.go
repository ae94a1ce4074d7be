package driven

import (
	"context"

	"github.com/custodia-labs/quickread-cli/internal/core/domain"
)

// Fetcher retrieves documents over the network.
type Fetcher interface {
	// Fetch downloads the document at url and returns its content decoded to UTF-8.
	// Failures are reported as *domain.FetchError. Implementations must bound
	// the request by a timeout or the context deadline.
	Fetch(ctx context.Context, url string) (*domain.RawDocument, error)
}
