package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/quickread-cli/internal/core/domain"
	"github.com/custodia-labs/quickread-cli/internal/core/ports/driven"
	"github.com/custodia-labs/quickread-cli/internal/core/ports/driving"
	"github.com/custodia-labs/quickread-cli/internal/logger"
)

// Ensure CaptureService implements the interface.
var _ driving.CaptureService = (*CaptureService)(nil)

// MinClipboardWords is the fewest clipboard words accepted as a fallback.
const MinClipboardWords = 6

// ClipboardTitle names articles built from clipboard text.
const ClipboardTitle = "From Clipboard"

// dynamicHosts render their text with scripts; fetching them yields no article.
var dynamicHosts = []string{"x.com", "twitter.com", "facebook.com", "instagram.com", "threads.net"}

// CaptureService turns browser tabs, URLs and raw text into Articles.
type CaptureService struct {
	browser   driven.BrowserBridge
	fetcher   driven.Fetcher
	registry  driven.NormaliserRegistry
	clipboard driven.Clipboard
	newID     func() string
}

// NewCaptureService creates a new capture service.
// browser and clipboard may be nil on platforms without them.
func NewCaptureService(
	browser driven.BrowserBridge,
	fetcher driven.Fetcher,
	registry driven.NormaliserRegistry,
	clipboard driven.Clipboard,
) *CaptureService {
	return &CaptureService{
		browser:   browser,
		fetcher:   fetcher,
		registry:  registry,
		clipboard: clipboard,
		newID:     uuid.NewString,
	}
}

// CaptureActiveTab reads the active browser tab and extracts its article.
// Any failure falls back to the clipboard when it holds enough words.
func (s *CaptureService) CaptureActiveTab(ctx context.Context) (*domain.Article, error) {
	logger.Section("Capture")

	if s.browser == nil {
		return s.fallback(ctx, domain.ErrNoBrowserFound)
	}

	pageURL, err := s.browser.ActiveTabURL(ctx)
	if err != nil {
		logger.Warn("browser bridge: %v", err)
		return s.fallback(ctx, err)
	}
	logger.Debug("active tab: %s", pageURL)

	return s.capture(ctx, pageURL)
}

// CaptureURL fetches url and extracts its article.
// Extraction failures fall back to the clipboard when it holds enough words.
func (s *CaptureService) CaptureURL(ctx context.Context, rawURL string) (*domain.Article, error) {
	logger.Section("Capture")
	return s.capture(ctx, rawURL)
}

// ExtractURL fetches url and extracts its article without any fallback.
func (s *CaptureService) ExtractURL(ctx context.Context, rawURL string) (*domain.Article, error) {
	logger.Section("Extract")

	u, err := parsePageURL(rawURL)
	if err != nil {
		return nil, err
	}
	return s.extract(ctx, u)
}

// FromText builds an Article from externally supplied text.
// An empty title resolves to ClipboardTitle.
func (s *CaptureService) FromText(ctx context.Context, title, text string) (*domain.Article, error) {
	return s.FromDocument(ctx, &domain.RawDocument{
		URI:       domain.ClipboardURL,
		MIMEType:  "text/plain",
		Content:   []byte(text),
		TitleHint: title,
	})
}

// FromDocument builds an Article from a local document.
func (s *CaptureService) FromDocument(ctx context.Context, raw *domain.RawDocument) (*domain.Article, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}
	res, err := s.registry.Normalise(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("normalise %s: %w", raw.URI, err)
	}
	logger.Debug("normalised %s as %q", raw.URI, res.Title)
	return domain.NewArticle(s.newID(), raw.URI, res.Title, res.Text)
}

// FromClipboard builds an Article from the current clipboard snapshot.
func (s *CaptureService) FromClipboard(ctx context.Context) (*domain.Article, error) {
	if s.clipboard == nil {
		return nil, fmt.Errorf("clipboard: %w", domain.ErrNotImplemented)
	}
	text, err := s.clipboard.ReadText()
	if err != nil {
		return nil, fmt.Errorf("read clipboard: %w", err)
	}
	return s.FromText(ctx, ClipboardTitle, text)
}

// capture extracts rawURL, trying the clipboard first for dynamic hosts
// and after any extraction failure.
func (s *CaptureService) capture(ctx context.Context, rawURL string) (*domain.Article, error) {
	u, err := parsePageURL(rawURL)
	if err != nil {
		return s.fallback(ctx, err)
	}

	if isDynamicHost(u.Hostname()) {
		logger.Info("%s loads content dynamically, trying clipboard", u.Hostname())
		if text, ok := s.clipboardSnapshot(); ok {
			return s.articleFromSnapshot(ctx, u.String(), "From "+u.Hostname(), text)
		}
		return nil, &domain.DynamicPageError{Host: u.Hostname()}
	}

	article, err := s.extract(ctx, u)
	if err != nil {
		logger.Warn("extraction failed: %v", err)
		return s.fallback(ctx, err)
	}
	return article, nil
}

// extract fetches and normalises a page. No fallback is applied.
func (s *CaptureService) extract(ctx context.Context, u *url.URL) (*domain.Article, error) {
	if s.fetcher == nil {
		return nil, fmt.Errorf("fetcher: %w", domain.ErrNotImplemented)
	}

	raw, err := s.fetcher.Fetch(ctx, u.String())
	if err != nil {
		return nil, err
	}
	if raw.TitleHint == "" {
		raw.TitleHint = u.Hostname()
	}

	res, err := s.registry.Normalise(ctx, raw)
	if err != nil {
		return nil, err
	}
	logger.Info("extracted %q from %s", res.Title, u.Hostname())

	return domain.NewArticle(s.newID(), u.String(), res.Title, res.Text)
}

// fallback returns a clipboard Article when the clipboard holds enough
// words, otherwise cause.
func (s *CaptureService) fallback(ctx context.Context, cause error) (*domain.Article, error) {
	text, ok := s.clipboardSnapshot()
	if !ok {
		return nil, cause
	}
	logger.Info("using clipboard text after: %v", cause)
	return s.articleFromSnapshot(ctx, domain.ClipboardURL, ClipboardTitle, text)
}

func (s *CaptureService) articleFromSnapshot(ctx context.Context, uri, title, text string) (*domain.Article, error) {
	return s.FromDocument(ctx, &domain.RawDocument{
		URI:       uri,
		MIMEType:  "text/plain",
		Content:   []byte(text),
		TitleHint: title,
	})
}

// clipboardSnapshot returns the clipboard text if it has at least
// MinClipboardWords words.
func (s *CaptureService) clipboardSnapshot() (string, bool) {
	if s.clipboard == nil {
		return "", false
	}
	text, err := s.clipboard.ReadText()
	if err != nil {
		logger.Debug("clipboard unavailable: %v", err)
		return "", false
	}
	if n := len(domain.Tokenize(text)); n < MinClipboardWords {
		logger.Debug("clipboard has %d words, need %d", n, MinClipboardWords)
		return "", false
	}
	return text, true
}

// parsePageURL accepts absolute http and https URLs.
func parsePageURL(rawURL string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSource, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q is not an http(s) URL", domain.ErrInvalidSource, rawURL)
	}
	return u, nil
}

// isDynamicHost matches a host or any of its subdomains against dynamicHosts.
func isDynamicHost(host string) bool {
	host = strings.ToLower(host)
	for _, h := range dynamicHosts {
		if host == h || strings.HasSuffix(host, "."+h) {
			return true
		}
	}
	return false
}
