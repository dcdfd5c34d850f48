package artikel

import (
	"strings"
	"unicode"
)

// isBlank reports whether s contains only whitespace.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// collapseWhitespace collapses runs of whitespace to a single space and
// trims the result, matching the "whitespace collapsed to single
// spaces within a block" rule from spec.md §4.7.
func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex().ReplaceAllString(s, " "))
}

// truncateRunes truncates s to at most n runes without splitting a
// multi-byte rune.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// fingerprint normalizes s for deduplication comparison, per spec.md
// §4.7: lowercase, strip punctuation, collapse whitespace, truncate to
// 200 characters.
func fingerprint(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsPunct(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return truncateRunes(collapseWhitespace(b.String()), 200)
}
