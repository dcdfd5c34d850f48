package artikel

import "golang.org/x/net/html"

// fallbackMinChars is the content_text length below which extract.go
// invokes the fallback extractor (when UseReadabilityFallback is set),
// per spec.md §4.5.
const fallbackMinChars = 250

// extractByDensity is the density-based fallback extractor: it scores
// every block-level element in the whole document (not just the
// preferred root Phase A would have picked) by text-length, link-ratio,
// and a class/id bonus, then grows a single subtree upward from the
// top-scoring element. It exists for documents whose markup gives
// Phase A nothing to work with, e.g. a page with no <article>/<main>
// and only generic <div> soup.
func extractByDensity(doc *document, opts Options) *html.Node {
	var candidates []*html.Node
	walkBounded(doc.body(), doc.root, doc.maxDepth, func(n *html.Node) {
		if isCandidateBlock(n, opts.IncludeTables) {
			candidates = append(candidates, n)
		}
	})
	if len(candidates) == 0 {
		return nil
	}

	var top *html.Node
	topScore := 0.0
	for _, n := range candidates {
		s := densityScore(n)
		if top == nil || s > topScore {
			top, topScore = n, s
		}
	}
	if top == nil || topScore <= 0 {
		return nil
	}

	top = growByDensity(top, doc.body())

	assembled := cloneTree(top)
	th := thresholds{minTextLen: 10, maxLinkDensity: 0.6}
	pruneBelowDensityThreshold(assembled, th, opts)
	if isBlank(textContent(assembled)) {
		return nil
	}
	return assembled
}

// densityScore implements spec.md §4.5's fallback formula:
// text-length x (1 - link-density) x class/id bonus. The bonus reuses
// Phase B's content-inclusion/exclusion class regexes rather than
// introducing a second vocabulary of boilerplate/content markers.
func densityScore(n *html.Node) float64 {
	textLen := float64(len([]rune(collapseWhitespace(textContent(n)))))
	if textLen == 0 {
		return 0
	}
	bonus := 1.0
	classID := classAndID(n)
	switch {
	case contentInclusionRegex().MatchString(classID):
		bonus = 1.5
	case contentExclusionRegex().MatchString(classID):
		bonus = 0.5
	}
	return textLen * (1 - linkDensity(n)) * bonus
}

// growByDensity walks up from top, climbing to each ancestor as long as
// it does not more than double top's text length without a proportional
// (roughly matching) increase in density score, per spec.md §4.5's
// growth rule. It stops at body at the latest.
func growByDensity(top, body *html.Node) *html.Node {
	baseText := float64(len([]rune(collapseWhitespace(textContent(top)))))
	baseScore := densityScore(top)
	if baseText == 0 {
		return top
	}

	cur := top
	for cur != body {
		parent := cur.Parent
		if parent == nil || parent.Type != html.ElementNode {
			break
		}
		parentText := float64(len([]rune(collapseWhitespace(textContent(parent)))))
		parentScore := densityScore(parent)
		if parentText >= 2*baseText && parentScore < 2*baseScore {
			break
		}
		cur = parent
	}
	return cur
}

func pruneBelowDensityThreshold(assembled *html.Node, th thresholds, opts Options) {
	var toRemove []*html.Node
	walkBounded(assembled, assembled, DefaultMaxTreeDepth, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		if n.Data == "table" {
			if !opts.IncludeTables || !tableQualifies(n) {
				toRemove = append(toRemove, n)
			}
			return
		}
		if !isCandidateBlock(n, false) {
			return
		}
		text := collapseWhitespace(textContent(n))
		if len([]rune(text)) < th.minTextLen || linkDensity(n) >= th.maxLinkDensity {
			toRemove = append(toRemove, n)
		}
	})
	for _, n := range toRemove {
		if n.Parent != nil {
			detach(n)
		}
	}
	pruneEmptyContainers(assembled)
}
