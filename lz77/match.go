package lz77

import "strings"

// FindMatch looks for the longest prefix of text[cursor:], at most lookahead
// bytes long, that also occurs entirely inside the window
// text[max(0, cursor-window):cursor].
//
// The candidate grows one byte at a time, and each length keeps the first
// occurrence of that candidate in the window; the search stops at the first
// length with no occurrence.  The returned start belongs to the longest
// candidate found, which is not necessarily the closest occurrence.
//
// If not even one byte matches, FindMatch returns (-1, 0).
func FindMatch(text string, cursor, window, lookahead int) (start int, length int) {
	start = -1
	if cursor <= 0 || cursor >= len(text) || window <= 0 {
		return start, 0
	}

	lo := cursor - window
	if lo < 0 {
		lo = 0
	}
	searchWindow := text[lo:cursor]

	for k := 1; k <= lookahead && cursor+k <= len(text); k++ {
		pos := strings.Index(searchWindow, text[cursor:cursor+k])
		if pos < 0 {
			break
		}
		start = lo + pos
		length = k
	}
	return start, length
}
