package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/quickread-cli/internal/core/domain"
)

var (
	extractJSON      bool
	extractStatsOnly bool
)

var extractCmd = &cobra.Command{
	Use:   "extract <url>",
	Short: "Print the article text extracted from a page",
	Long: `Fetch a page and print the readable text quickread would play.

Unlike "read", extraction failures are reported as-is and the clipboard
is never used.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "output the article as JSON")
	extractCmd.Flags().BoolVar(&extractStatsOnly, "stats", false, "print only title and statistics")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	if captureService == nil {
		return errNotConfigured
	}

	article, err := captureService.ExtractURL(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("extract failed: %w", err)
	}

	if extractJSON {
		return outputArticleJSON(cmd, article)
	}

	cmd.Println(article.Title)
	cmd.Printf("%s · %s words · about %s\n",
		article.URL,
		humanize.Comma(int64(article.WordCount())),
		(time.Duration(article.EstimatedReadSeconds) * time.Second).String())
	if extractStatsOnly {
		return nil
	}
	cmd.Println()
	cmd.Println(article.Text)
	return nil
}

// articleJSON is the JSON shape of an extracted article.
type articleJSON struct {
	Title                string `json:"title"`
	URL                  string `json:"url"`
	WordCount            int    `json:"word_count"`
	EstimatedReadSeconds int    `json:"estimated_read_seconds"`
	Text                 string `json:"text,omitempty"`
}

func outputArticleJSON(cmd *cobra.Command, article *domain.Article) error {
	out := articleJSON{
		Title:                article.Title,
		URL:                  article.URL,
		WordCount:            article.WordCount(),
		EstimatedReadSeconds: article.EstimatedReadSeconds,
	}
	if !extractStatsOnly {
		out.Text = article.Text
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal article: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
