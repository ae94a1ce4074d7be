package playback

import "unicode/utf8"

// ORP returns the index of the character in word that should stay visually
// fixed, slightly left of centre. Length is counted in runes.
//
//	1 → 0, 2-5 → 1, 6-9 → 2, 10-13 → 3, 14+ → 4
//
// An empty word returns 0.
func ORP(word string) int {
	switch n := utf8.RuneCountInString(word); {
	case n <= 1:
		return 0
	case n <= 5:
		return 1
	case n <= 9:
		return 2
	case n <= 13:
		return 3
	default:
		return 4
	}
}
