package artikel

import (
	"strings"

	"golang.org/x/net/html"
)

// inlineTags lists elements treated as inline for the "direct child
// that is not text/inline" penalty in Phase B scoring.
var inlineTags = map[string]bool{
	"a": true, "span": true, "b": true, "strong": true, "i": true,
	"em": true, "u": true, "small": true, "sub": true, "sup": true,
	"code": true, "abbr": true, "cite": true, "q": true, "mark": true,
	"time": true, "label": true, "img": true, "br": true, "wbr": true,
	"kbd": true, "samp": true, "var": true, "s": true, "del": true,
	"ins": true,
}

// blockScore is a candidate block and its Phase B score.
type blockScore struct {
	node  *html.Node
	score float64
}

// scoreBlock computes the Phase B score for a candidate block, per
// spec.md §4.4.
func scoreBlock(n *html.Node, pageTitle string) float64 {
	text := collapseWhitespace(textContent(n))
	textLen := len([]rune(text))

	density := linkDensity(n)
	if density >= 0.5 {
		return -1 << 20 // discarded outright
	}

	score := 0.0

	lengthBonus := float64(textLen) / 25.0
	if lengthBonus > 3 {
		lengthBonus = 3
	}
	score += lengthBonus

	if textLen > 25 {
		rest := string([]rune(text)[25:])
		if strings.ContainsAny(rest, ",.") {
			score += 1
		}
	}

	score -= density * 10

	nonInline := 0
	for _, c := range directChildElements(n) {
		if !inlineTags[tagName(c)] {
			nonInline++
		}
	}
	score -= 0.5 * float64(nonInline)

	classID := classAndID(n)
	if contentInclusionRegex().MatchString(classID) {
		score += 5
	}
	if contentExclusionRegex().MatchString(classID) {
		score -= 5
	}

	if pageTitle != "" && (tagName(n) == "h1" || tagName(n) == "h2") {
		headingText := strings.TrimSpace(text)
		if headingText != "" && (strings.EqualFold(headingText, pageTitle) || hasCaseFoldPrefix(pageTitle, headingText)) {
			score += 2
		}
	}

	return score
}

// hasCaseFoldPrefix reports whether prefix is a case-insensitive prefix
// of s.
func hasCaseFoldPrefix(s, prefix string) bool {
	if len(prefix) > len(s) {
		return false
	}
	return strings.EqualFold(s[:len(prefix)], prefix)
}
