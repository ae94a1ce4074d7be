package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html/charset"

	"github.com/custodia-labs/quickread-cli/internal/core/domain"
	"github.com/custodia-labs/quickread-cli/internal/core/ports/driven"
	"github.com/custodia-labs/quickread-cli/internal/logger"
)

// Ensure Fetcher implements the interface.
var _ driven.Fetcher = (*Fetcher)(nil)

// DefaultMaxBytes caps the size of a fetched page.
const DefaultMaxBytes = 10 << 20

// Config configures a Fetcher.
type Config struct {
	// Timeout bounds each request, including reading the body.
	Timeout time.Duration

	// UserAgent is sent with every request.
	UserAgent string

	// MaxBytes is the largest body accepted.
	MaxBytes int64

	// HostInterval is the minimum spacing between requests to one host.
	HostInterval time.Duration
}

// ConfigFromSettings builds a Config from fetch settings.
func ConfigFromSettings(s domain.FetchSettings) Config {
	return Config{
		Timeout:      time.Duration(s.TimeoutSeconds) * time.Second,
		UserAgent:    s.UserAgent,
		MaxBytes:     DefaultMaxBytes,
		HostInterval: DefaultHostInterval,
	}
}

// Fetcher downloads pages over HTTP.
type Fetcher struct {
	client  *http.Client
	cfg     Config
	limiter *HostLimiter
}

// New creates a Fetcher. A zero Timeout, UserAgent or MaxBytes takes its
// default. A zero HostInterval disables throttling.
func New(cfg Config) *Fetcher {
	defaults := ConfigFromSettings(domain.DefaultAppSettings().Fetch)
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaults.Timeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaults.UserAgent
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = defaults.MaxBytes
	}
	return &Fetcher{
		client:  &http.Client{},
		cfg:     cfg,
		limiter: NewHostLimiter(cfg.HostInterval),
	}
}

// Fetch downloads url and returns its body as UTF-8.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*domain.RawDocument, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return nil, domain.NewFetchError("invalid URL "+rawURL, err)
	}

	if err := f.limiter.Wait(ctx, u.Host); err != nil {
		return nil, domain.NewFetchError("request cancelled", err)
	}

	ctx, cancel := context.WithTimeout(ctx, f.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, domain.NewFetchError("build request", err)
	}
	req.Header.Set("User-Agent", f.cfg.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,text/plain;q=0.9,*/*;q=0.5")

	done := logger.Timed("fetch %s", rawURL)
	defer done()

	resp, err := f.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, domain.NewFetchError(fmt.Sprintf("timed out after %s", f.cfg.Timeout), err)
		}
		return nil, domain.NewFetchError("request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, domain.NewFetchError(fmt.Sprintf("server returned %s", resp.Status), nil)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.cfg.MaxBytes+1))
	if err != nil {
		return nil, domain.NewFetchError("read body", err)
	}
	if int64(len(body)) > f.cfg.MaxBytes {
		return nil, domain.NewFetchError(fmt.Sprintf("page is larger than %d bytes", f.cfg.MaxBytes), nil)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(body)
	}
	mediaType := baseMediaType(contentType)

	content, name, err := toUTF8(body, contentType, mediaType)
	if err != nil {
		return nil, domain.NewFetchError("could not decode page content", err)
	}
	logger.Debug("fetched %s: %s, %s, %d bytes", rawURL, mediaType, name, len(content))

	return &domain.RawDocument{
		URI:      resp.Request.URL.String(),
		MIMEType: mediaType,
		Charset:  name,
		Content:  content,
	}, nil
}

// baseMediaType drops parameters from a content type.
func baseMediaType(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType, _, _ = strings.Cut(contentType, ";")
	}
	return strings.ToLower(strings.TrimSpace(mediaType))
}

// toUTF8 converts textual bodies using the declared charset, a BOM or an
// HTML meta tag, in that order. Binary types pass through untouched.
func toUTF8(body []byte, contentType, mediaType string) ([]byte, string, error) {
	if !isText(mediaType) {
		return body, "", nil
	}

	_, name, _ := charset.DetermineEncoding(body, contentType)
	if name == "utf-8" {
		return bytes.TrimPrefix(body, []byte("\xef\xbb\xbf")), name, nil
	}

	r, err := charset.NewReaderLabel(name, bytes.NewReader(body))
	if err != nil {
		return nil, "", err
	}
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, "", err
	}
	return content, name, nil
}

func isText(mediaType string) bool {
	return strings.HasPrefix(mediaType, "text/") ||
		mediaType == "application/xhtml+xml" ||
		mediaType == "application/xml"
}
