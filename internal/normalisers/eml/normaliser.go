// Package eml extracts readable text from saved email messages, such as
// newsletters exported from a mail client.
package eml

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/quickread-cli/internal/core/domain"
	"github.com/custodia-labs/quickread-cli/internal/core/ports/driven"
	"github.com/custodia-labs/quickread-cli/internal/normalisers/html"
)

// MIMEType is the content type of a saved message.
const MIMEType = "message/rfc822"

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles EML (email) documents.
type Normaliser struct{}

// New creates a new EML normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{MIMEType}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50 // Generic MIME normaliser
}

// Normalise reads the message body. Plain text parts are preferred over
// HTML, which goes through the same extraction as web pages.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	msg, err := mail.ReadMessage(bytes.NewReader(raw.Content))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	body, err := extractBody(msg)
	if err != nil {
		return nil, err
	}
	text := strings.Join(strings.Fields(body), " ")
	if text == "" {
		return nil, domain.ErrNoContent
	}

	title := decodeHeader(msg.Header.Get("Subject"))
	if title == "" {
		title = strings.TrimSpace(raw.TitleHint)
	}
	if title == "" {
		title = titleFromURI(raw.URI)
	}

	return &driven.NormaliseResult{
		Title: title,
		Text:  text,
	}, nil
}

// decodeHeader decodes RFC 2047 encoded headers.
func decodeHeader(header string) string {
	if header == "" {
		return ""
	}
	dec := new(mime.WordDecoder)
	decoded, err := dec.DecodeHeader(header)
	if err != nil {
		return strings.TrimSpace(header)
	}
	return strings.TrimSpace(decoded)
}

// extractBody returns the readable text of msg.
func extractBody(msg *mail.Message) (string, error) {
	contentType := msg.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "text/plain"
	}
	body := decodeTransfer(msg.Body, msg.Header.Get("Content-Transfer-Encoding"))

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		content, readErr := io.ReadAll(body)
		if readErr != nil {
			return "", fmt.Errorf("%w: %v", domain.ErrInvalidInput, readErr)
		}
		return string(content), nil
	}

	if strings.HasPrefix(mediaType, "multipart/") {
		return extractMultipartBody(body, params["boundary"]), nil
	}

	content, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if mediaType == "text/html" {
		return html.ExtractText(string(content)), nil
	}
	return string(content), nil
}

// extractMultipartBody collects text parts, falling back to HTML parts
// when a message has no plain text alternative.
func extractMultipartBody(r io.Reader, boundary string) string {
	if boundary == "" {
		return ""
	}

	mr := multipart.NewReader(r, boundary)
	var textParts, htmlParts []string
	for {
		part, err := mr.NextPart()
		if err != nil {
			break
		}

		mediaType, params, parseErr := mime.ParseMediaType(part.Header.Get("Content-Type"))
		if parseErr != nil {
			mediaType = "text/plain"
		}
		if disposition, _, _ := mime.ParseMediaType(part.Header.Get("Content-Disposition")); disposition == "attachment" {
			part.Close()
			continue
		}

		content, readErr := io.ReadAll(decodeTransfer(part, part.Header.Get("Content-Transfer-Encoding")))
		part.Close()
		if readErr != nil {
			continue
		}

		switch {
		case mediaType == "text/plain":
			textParts = append(textParts, string(content))
		case mediaType == "text/html":
			htmlParts = append(htmlParts, html.ExtractText(string(content)))
		case strings.HasPrefix(mediaType, "multipart/"):
			if nested := extractMultipartBody(bytes.NewReader(content), params["boundary"]); nested != "" {
				textParts = append(textParts, nested)
			}
		}
	}

	if len(textParts) > 0 {
		return strings.Join(textParts, "\n")
	}
	return strings.Join(htmlParts, "\n")
}

// decodeTransfer undoes a base64 or quoted-printable transfer encoding.
// multipart.Reader already decodes quoted-printable parts and drops the
// header, so only encodings still declared are handled here.
func decodeTransfer(r io.Reader, encoding string) io.Reader {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "base64":
		return base64.NewDecoder(base64.StdEncoding, r)
	case "quoted-printable":
		return quotedprintable.NewReader(r)
	}
	return r
}

// titleFromURI derives a title from the file name.
func titleFromURI(uri string) string {
	filename := filepath.Base(uri)
	filename = strings.TrimSuffix(filename, filepath.Ext(filename))
	return strings.NewReplacer("_", " ", "-", " ").Replace(filename)
}
