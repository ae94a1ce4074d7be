package html

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// namedEntities is the fixed set of named references that are decoded.
// Anything not listed here is left untouched.
var namedEntities = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
	"&#39;", "'",
	"&mdash;", "—",
	"&ndash;", "–",
	"&hellip;", "…",
	"&ldquo;", "“",
	"&rdquo;", "”",
	"&lsquo;", "‘",
	"&rsquo;", "’",
)

var numericEntity = regexp.MustCompile(`&#(\d+);`)

// DecodeEntities replaces the supported named references and then decimal
// numeric references. Numeric references that do not name a valid code
// point are left as-is.
func DecodeEntities(s string) string {
	s = namedEntities.Replace(s)

	matches := numericEntity.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	// Replace from the end so earlier offsets stay valid.
	for i := len(matches) - 1; i >= 0; i-- {
		m := matches[i]
		code, err := strconv.Atoi(s[m[2]:m[3]])
		if err != nil || code <= 0 || code > utf8.MaxRune {
			continue
		}
		r := rune(code)
		if !utf8.ValidRune(r) {
			continue
		}
		s = s[:m[0]] + string(r) + s[m[1]:]
	}
	return s
}
