package playback

import "strings"

// Rewind walks backward from from (exclusive) until sentences sentence
// endings have been crossed, and returns the index to restart at.
//
// A token ending in '.', '!' or '?' counts as a sentence ending. Abbreviations
// such as "Mr." are indistinguishable from real sentence ends. When a boundary
// was crossed further back than the word immediately before from, the result
// is moved forward one word so it lands on the first word of the sentence.
// A sentences value of zero or less returns from unchanged.
func Rewind(words []string, from, sentences int) int {
	if sentences <= 0 {
		return from
	}
	from = min(from, len(words))

	found := 0
	cursor := from
	for cursor > 0 && found < sentences {
		cursor--
		if endsSentence(words[cursor]) {
			found++
		}
	}

	if found > 0 && cursor < from-1 {
		cursor++
	}
	return max(0, cursor)
}

func endsSentence(word string) bool {
	return strings.HasSuffix(word, ".") ||
		strings.HasSuffix(word, "!") ||
		strings.HasSuffix(word, "?")
}
