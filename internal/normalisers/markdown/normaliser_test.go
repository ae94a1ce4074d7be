package markdown

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/quickread-cli/internal/core/domain"
)

func TestNew(t *testing.T) {
	normaliser := New()
	require.NotNil(t, normaliser)
	assert.IsType(t, &Normaliser{}, normaliser)
}

func TestSupportedMIMETypes(t *testing.T) {
	mimeTypes := New().SupportedMIMETypes()

	assert.Contains(t, mimeTypes, "text/markdown")
	assert.Contains(t, mimeTypes, "text/x-markdown")
	assert.Len(t, mimeTypes, 2)
}

func TestPriority(t *testing.T) {
	assert.Equal(t, 50, New().Priority())
}

func TestNormalise_Success(t *testing.T) {
	raw := &domain.RawDocument{
		URI:      "/path/to/document.md",
		MIMEType: "text/markdown",
		Content:  []byte("# Hello World\n\nThis is a **bold** test."),
	}

	result, err := New().Normalise(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, "Hello World", result.Title)
	assert.Equal(t, "Hello World This is a bold test.", result.Text)
}

func TestNormalise_TitleFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		raw      domain.RawDocument
		expected string
	}{
		{
			name:     "hint when no heading",
			raw:      domain.RawDocument{URI: "/notes/a.md", TitleHint: "Notes", Content: []byte("Body.")},
			expected: "Notes",
		},
		{
			name:     "file name when no heading or hint",
			raw:      domain.RawDocument{URI: "/notes/weekly_review-01.md", Content: []byte("Body.")},
			expected: "weekly review 01",
		},
		{
			name:     "second level heading is not a title",
			raw:      domain.RawDocument{URI: "/x/doc.md", Content: []byte("## Section\nBody.")},
			expected: "doc",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := New().Normalise(context.Background(), &tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result.Title)
		})
	}
}

func TestStripMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "link keeps text", input: "See [the docs](https://example.com).", expected: "See the docs."},
		{name: "image dropped", input: "Before ![alt](img.png) after", expected: "Before after"},
		{name: "code block dropped", input: "Intro\n```go\nfmt.Println()\n```\nOutro", expected: "Intro Outro"},
		{name: "inline code kept", input: "Run `make build` now", expected: "Run make build now"},
		{name: "emphasis removed", input: "*one* **two** ***three*** __four__", expected: "one two three four"},
		{name: "snake case kept", input: "use max_retries here", expected: "use max_retries here"},
		{name: "lists", input: "- alpha\n* beta\n1. gamma", expected: "alpha beta gamma"},
		{name: "blockquote", input: "> quoted words", expected: "quoted words"},
		{name: "horizontal rule", input: "above\n---\nbelow", expected: "above below"},
		{name: "headings", input: "### Deep heading\ntext", expected: "Deep heading text"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := stripMarkdown(tc.input)
			assert.Equal(t, tc.expected, strings.Join(strings.Fields(got), " "))
		})
	}
}

func TestNormalise_EmptyContent(t *testing.T) {
	raw := &domain.RawDocument{URI: "/empty.md", Content: []byte("```\ncode only\n```")}

	result, err := New().Normalise(context.Background(), raw)
	assert.ErrorIs(t, err, domain.ErrNoContent)
	assert.Nil(t, result)
}

func TestNormalise_NilDocument(t *testing.T) {
	result, err := New().Normalise(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, result)
}
