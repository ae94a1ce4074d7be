package domain

import (
	"strings"
	"time"
)

// ReferenceRateWPM is the rate used for the estimated reading time.
const ReferenceRateWPM = 300

// ClipboardURL is the source locator for text that did not come from a page.
const ClipboardURL = "clipboard://"

// Article is readable text extracted from a page or supplied directly.
// Words is derived from Text once at construction and never mutated.
type Article struct {
	// ID uniquely identifies this capture.
	ID string `json:"id"`

	// URL is the source locator, or ClipboardURL.
	URL string `json:"url"`

	// Title is a human-readable title.
	Title string `json:"title"`

	// Text is the normalised body text.
	Text string `json:"text"`

	// Words is the tokenized body text.
	Words []string `json:"words"`

	// EstimatedReadSeconds is the reading time at ReferenceRateWPM.
	EstimatedReadSeconds int `json:"estimated_read_seconds"`

	// FetchedAt is when the article was captured.
	FetchedAt time.Time `json:"fetched_at"`
}

// NewArticle builds an Article, tokenizing text.
// Returns ErrNoContent if text holds no words.
func NewArticle(id, url, title, text string) (*Article, error) {
	words := Tokenize(text)
	if len(words) == 0 {
		return nil, ErrNoContent
	}
	return &Article{
		ID:                   id,
		URL:                  url,
		Title:                title,
		Text:                 text,
		Words:                words,
		EstimatedReadSeconds: EstimateReadSeconds(len(words)),
		FetchedAt:            time.Now(),
	}, nil
}

// WordCount returns the number of words.
func (a *Article) WordCount() int {
	return len(a.Words)
}

// IsClipboard returns true if the article was not captured from a page.
func (a *Article) IsClipboard() bool {
	return a.URL == ClipboardURL
}

// Tokenize splits text on any whitespace run, dropping empty tokens.
// Punctuation attached to a token is preserved.
func Tokenize(text string) []string {
	return strings.Fields(text)
}

// EstimateReadSeconds returns the whole seconds needed to read
// wordCount words at ReferenceRateWPM.
func EstimateReadSeconds(wordCount int) int {
	return wordCount * 60 / ReferenceRateWPM
}
