package domain

// RawDocument represents opaque bytes fetched from a URL or supplied by the user.
// It is the input to normalisation.
type RawDocument struct {
	// URI is the original location (URL or the clipboard sentinel).
	URI string

	// MIMEType is the content type without parameters (e.g., "text/html").
	MIMEType string

	// Charset is the declared character encoding, if any.
	// Content has already been converted to UTF-8 when Charset is set.
	Charset string

	// Content is the raw bytes.
	Content []byte

	// TitleHint is used when the content carries no title of its own.
	TitleHint string
}
