package html

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveTitle(t *testing.T) {
	tests := []struct {
		name     string
		page     string
		hint     string
		expected string
	}{
		{
			name:     "og title property first",
			page:     `<meta property="og:title" content="OG Title"><title>Doc</title>`,
			hint:     "example.com",
			expected: "OG Title",
		},
		{
			name:     "og title content first",
			page:     `<meta content="Reversed" name="og:title"><title>Doc</title>`,
			hint:     "example.com",
			expected: "Reversed",
		},
		{
			name:     "og title with name attribute",
			page:     `<META NAME='og:title' CONTENT='Shouty'>`,
			expected: "Shouty",
		},
		{
			name:     "title element trimmed",
			page:     "<head><title>\n  Hello World  \n</title></head>",
			hint:     "example.com",
			expected: "Hello World",
		},
		{
			name:     "title element with attributes",
			page:     `<title data-rh="true">Attr Title</title>`,
			expected: "Attr Title",
		},
		{
			name:     "title entities decoded",
			page:     "<title>Tom &amp; Jerry</title>",
			expected: "Tom & Jerry",
		},
		{
			name:     "og title entities decoded",
			page:     `<meta property="og:title" content="Q&amp;A &#8212; Part 2">`,
			expected: "Q&A — Part 2",
		},
		{
			name:     "inner whitespace collapsed",
			page:     "<title>  A   \n  B  </title>",
			expected: "A B",
		},
		{
			name:     "first title element wins",
			page:     "<title>First</title><svg><title>Second</title></svg>",
			expected: "First",
		},
		{
			name:     "blank title falls back to hint",
			page:     "<title>   </title>",
			hint:     "news.example.org",
			expected: "news.example.org",
		},
		{
			name:     "no title uses hint",
			page:     "<p>body</p>",
			hint:     "example.com",
			expected: "example.com",
		},
		{
			name:     "no title and no hint",
			page:     "<p>body</p>",
			expected: UntitledTitle,
		},
		{
			name:     "other meta tags ignored",
			page:     `<meta property="og:description" content="Desc"><title>Real</title>`,
			expected: "Real",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ResolveTitle(tc.page, tc.hint))
		})
	}
}
