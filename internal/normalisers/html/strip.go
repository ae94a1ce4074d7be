package html

import (
	"regexp"
	"strings"
)

// Non-content elements removed before the content container is chosen.
var noisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`),
	regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`),
	regexp.MustCompile(`(?is)<noscript[^>]*>.*?</noscript>`),
	regexp.MustCompile(`(?is)<header[^>]*>.*?</header>`),
	regexp.MustCompile(`(?is)<footer[^>]*>.*?</footer>`),
	regexp.MustCompile(`(?is)<nav[^>]*>.*?</nav>`),
	regexp.MustCompile(`(?is)<aside[^>]*>.*?</aside>`),
	regexp.MustCompile(`(?s)<!--.*?-->`),
	regexp.MustCompile(`(?is)<iframe[^>]*>.*?</iframe>`),
}

// Content containers, tried in order. The first match wins.
var contentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<article[^>]*>([\s\S]*?)</article>`),
	regexp.MustCompile(`(?i)<main[^>]*>([\s\S]*?)</main>`),
	regexp.MustCompile(`(?i)<div[^>]*class=["'][^"']*(?:content|article|post|entry)[^"']*["'][^>]*>([\s\S]*?)</div>`),
}

var anyTag = regexp.MustCompile(`<[^>]+>`)

// RemoveNoise replaces script, style, noscript, header, footer, nav, aside
// and iframe elements and HTML comments with a single space.
func RemoveNoise(s string) string {
	for _, re := range noisePatterns {
		s = re.ReplaceAllString(s, " ")
	}
	return s
}

// SelectContent returns the inner markup of the first article, main or
// content-like div element. The whole input is returned when none match.
// Containers are matched non-greedily, so a nested closing tag of the same
// kind ends the selection early.
func SelectContent(s string) string {
	for _, re := range contentPatterns {
		if m := re.FindStringSubmatch(s); m != nil {
			return m[1]
		}
	}
	return s
}

// StripTags replaces every remaining tag with a space.
func StripTags(s string) string {
	return anyTag.ReplaceAllString(s, " ")
}

// CollapseWhitespace folds every run of Unicode whitespace into one space
// and trims the ends.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
