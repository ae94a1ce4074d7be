package html

import (
	"regexp"
	"strings"
)

// UntitledTitle is used when neither the page nor the caller names it.
const UntitledTitle = "Untitled"

var (
	ogTitleFirst = regexp.MustCompile(`(?i)<meta[^>]+(?:property|name)=["']og:title["'][^>]+content=["']([^"']+)["']`)
	ogTitleLast  = regexp.MustCompile(`(?i)<meta[^>]+content=["']([^"']+)["'][^>]+(?:property|name)=["']og:title["']`)
	titleElement = regexp.MustCompile(`(?i)<title[^>]*>([^<]+)</title>`)
)

// ResolveTitle picks the page title from the og:title meta tag, then the
// first title element, then hint. The chosen title has entities decoded
// and whitespace collapsed.
func ResolveTitle(s, hint string) string {
	for _, re := range []*regexp.Regexp{ogTitleFirst, ogTitleLast, titleElement} {
		if m := re.FindStringSubmatch(s); m != nil {
			if title := CollapseWhitespace(DecodeEntities(m[1])); title != "" {
				return title
			}
		}
	}

	if hint = strings.TrimSpace(hint); hint != "" {
		return hint
	}
	return UntitledTitle
}
