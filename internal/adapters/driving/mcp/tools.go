package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/quickread-cli/internal/core/domain"
)

// DefaultHistoryLimit is the number of sessions list_history returns by default.
const DefaultHistoryLimit = 20

// ExtractInput is the input schema for the extract_article tool.
type ExtractInput struct {
	URL string `json:"url" jsonschema:"the http or https URL of the page to extract"`
}

// ExtractOutput is the output schema for the extract_article tool.
type ExtractOutput struct {
	Title                string `json:"title"`
	URL                  string `json:"url"`
	Text                 string `json:"text"`
	WordCount            int    `json:"word_count"`
	EstimatedReadSeconds int    `json:"estimated_read_seconds"`
}

// HistoryInput is the input schema for the list_history tool.
type HistoryInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of sessions to return (default 20)"`
}

// HistoryOutput is the output schema for the list_history tool.
type HistoryOutput struct {
	Sessions []SessionOutput `json:"sessions"`
	Count    int             `json:"count"`
}

// SessionOutput represents a single saved reading session.
type SessionOutput struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	URL        string    `json:"url"`
	WordIndex  int       `json:"word_index"`
	WordCount  int       `json:"word_count"`
	Progress   int       `json:"progress_percent"`
	Complete   bool      `json:"complete"`
	LastReadAt time.Time `json:"last_read_at"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_article",
		Description: "Fetch a web page and return its readable article text with word count and reading time",
	}, s.handleExtract)

	if s.ports.History != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "list_history",
			Description: "List saved reading sessions, most recent first",
		}, s.handleListHistory)
	}
}

// handleExtract handles the extract_article tool invocation.
func (s *Server) handleExtract(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExtractInput,
) (*mcp.CallToolResult, ExtractOutput, error) {
	article, err := s.ports.Capture.ExtractURL(ctx, input.URL)
	if err != nil {
		return nil, ExtractOutput{}, fmt.Errorf("extracting %s: %w", input.URL, err)
	}

	return nil, ExtractOutput{
		Title:                article.Title,
		URL:                  article.URL,
		Text:                 article.Text,
		WordCount:            article.WordCount(),
		EstimatedReadSeconds: article.EstimatedReadSeconds,
	}, nil
}

// handleListHistory handles the list_history tool invocation.
func (s *Server) handleListHistory(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input HistoryInput,
) (*mcp.CallToolResult, HistoryOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	sessions, err := s.ports.History.List(ctx)
	if err != nil {
		return nil, HistoryOutput{}, fmt.Errorf("listing history: %w", err)
	}
	if len(sessions) > limit {
		sessions = sessions[:limit]
	}

	output := HistoryOutput{
		Sessions: make([]SessionOutput, len(sessions)),
		Count:    len(sessions),
	}
	for i := range sessions {
		output.Sessions[i] = toSessionOutput(&sessions[i])
	}

	return nil, output, nil
}

func toSessionOutput(s *domain.ReadingSession) SessionOutput {
	return SessionOutput{
		ID:         s.ID,
		Title:      s.Article.Title,
		URL:        s.Article.URL,
		WordIndex:  s.WordIndex,
		WordCount:  s.Article.WordCount(),
		Progress:   s.ProgressPercentage(),
		Complete:   s.IsComplete(),
		LastReadAt: s.LastReadAt,
	}
}
