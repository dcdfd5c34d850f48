package artikel

import (
	"golang.org/x/net/html"
)

// thresholds are the Phase C inclusion cutoffs from spec.md §4.4's mode
// table: a candidate block survives assembly only when its text is at
// least minTextLen runes long, its link density is below maxLinkDensity,
// and its Phase B score is at least minScore.
type thresholds struct {
	minTextLen     int
	maxLinkDensity float64
	minScore       float64
}

func thresholdsFor(opts Options) thresholds {
	switch {
	case opts.precisionMode():
		return thresholds{minTextLen: 25, maxLinkDensity: 0.30, minScore: 2.0}
	case opts.recallMode():
		return thresholds{minTextLen: 10, maxLinkDensity: 0.55, minScore: 0.3}
	default:
		return thresholds{minTextLen: 15, maxLinkDensity: 0.45, minScore: 1.0}
	}
}

// selectPreferredRoot implements Phase A's root choice: the first
// <article>, else the first <main>, else the first element carrying
// itemprop="articleBody" or role="main", else the document body itself.
func selectPreferredRoot(doc *document) *html.Node {
	if n := firstMatch(doc.body(), "article"); n != nil {
		return n
	}
	if n := firstMatch(doc.body(), "main"); n != nil {
		return n
	}
	var found *html.Node
	walkBounded(doc.body(), doc.root, doc.maxDepth, func(n *html.Node) {
		if found != nil || n.Type != html.ElementNode {
			return
		}
		if v, ok := attr(n, "itemprop"); ok && v == "articleBody" {
			found = n
			return
		}
		if v, ok := attr(n, "role"); ok && v == "main" {
			found = n
		}
	})
	if found != nil {
		return found
	}
	return doc.body()
}

// isCandidateBlock reports whether n qualifies as a Phase A candidate
// block: one of the always-eligible block tags, or a table when
// includeTables is set, or a <div> whose direct children are all
// inline elements.
func isCandidateBlock(n *html.Node, includeTables bool) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch n.Data {
	case "p", "h1", "h2", "h3", "h4", "h5", "h6", "li", "blockquote",
		"pre", "figure", "dl", "dd", "dt":
		return true
	case "table":
		return includeTables
	case "div":
		return hasOnlyInlineChildren(n) && textContent(n) != "" && !isBlank(textContent(n))
	default:
		return false
	}
}

// collectCandidates gathers every Phase A candidate block under root,
// excluding anything under skip (the detected reader-comments section,
// if any, so replies never contaminate the main content score).
func collectCandidates(root, docRoot *html.Node, maxDepth int, includeTables bool, skip *html.Node) []*html.Node {
	var out []*html.Node
	walkBounded(root, docRoot, maxDepth, func(n *html.Node) {
		if skip != nil && (n == skip || isDescendantOf(n, skip)) {
			return
		}
		if isCandidateBlock(n, includeTables) {
			out = append(out, n)
		}
	})
	return out
}

func isDescendantOf(n, ancestor *html.Node) bool {
	for cur := n.Parent; cur != nil; cur = cur.Parent {
		if cur == ancestor {
			return true
		}
	}
	return false
}

// extractMainContent runs Phases A-C: pick the preferred root, score
// every candidate block, walk up to the lowest common ancestor of the
// blocks scoring at least half the maximum, and assemble a pruned copy
// of that subtree containing only blocks that clear the mode's
// inclusion thresholds. It returns nil when no candidate blocks exist
// at all, signaling the caller to fall back.
func extractMainContent(doc *document, opts Options, pageTitle string, commentsRoot *html.Node) *html.Node {
	preferredRoot := selectPreferredRoot(doc)
	candidates := collectCandidates(preferredRoot, doc.root, doc.maxDepth, opts.IncludeTables, commentsRoot)
	if len(candidates) == 0 {
		return nil
	}

	scores := make([]blockScore, 0, len(candidates))
	var maxScoreF float64
	first := true
	for _, n := range candidates {
		s := scoreBlock(n, pageTitle)
		scores = append(scores, blockScore{node: n, score: s})
		if first || s > maxScoreF {
			maxScoreF = s
			first = false
		}
	}

	keepThreshold := 0.5 * maxScoreF
	var topNodes []*html.Node
	if maxScoreF <= 0 {
		// Degenerate document: no block scores positively. Fall back to
		// the single highest-scoring block so assembly still has an
		// anchor; the mode thresholds below will likely drop it anyway.
		var best *html.Node
		bestScore := 0.0
		bestSet := false
		for _, bs := range scores {
			if !bestSet || bs.score > bestScore {
				best, bestScore, bestSet = bs.node, bs.score, true
			}
		}
		if best != nil {
			topNodes = []*html.Node{best}
		}
	} else {
		for _, bs := range scores {
			if bs.score >= keepThreshold {
				topNodes = append(topNodes, bs.node)
			}
		}
	}
	if len(topNodes) == 0 {
		return nil
	}

	lca := lowestCommonAncestor(topNodes, preferredRoot)
	assembled := cloneTree(lca)

	pruneBelowThreshold(assembled, pageTitle, thresholdsFor(opts), opts)
	if isBlank(textContent(assembled)) {
		return nil
	}
	return assembled
}

// pruneBelowThreshold walks the assembled clone and detaches any
// candidate block that fails the mode's inclusion thresholds, then
// removes containers left empty by that pruning. Tables are judged by
// the table-specific rule instead of the generic thresholds.
func pruneBelowThreshold(assembled *html.Node, pageTitle string, th thresholds, opts Options) {
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
		if len([]rune(text)) < th.minTextLen {
			toRemove = append(toRemove, n)
			return
		}
		if linkDensity(n) >= th.maxLinkDensity {
			toRemove = append(toRemove, n)
			return
		}
		if scoreBlock(n, pageTitle) < th.minScore {
			toRemove = append(toRemove, n)
		}
	})
	for _, n := range toRemove {
		if n.Parent != nil { // may already be a descendant of another removed node
			detach(n)
		}
	}
	pruneEmptyContainers(assembled)
}

// tableQualifies implements spec.md §4.4's table inclusion filter: at
// least one cell must have text length >= 25 runes and link density
// below 0.3.
func tableQualifies(table *html.Node) bool {
	qualifies := false
	walkBounded(table, table, DefaultMaxTreeDepth, func(n *html.Node) {
		if qualifies || n.Type != html.ElementNode || (n.Data != "td" && n.Data != "th") {
			return
		}
		text := collapseWhitespace(textContent(n))
		if len([]rune(text)) >= 25 && linkDensity(n) < 0.3 {
			qualifies = true
		}
	})
	return qualifies
}

// pruneEmptyContainers removes any non-void element left with no child
// nodes at all after pruneBelowThreshold detached their children.
// It repeats until a full pass removes nothing, since removing an
// inner wrapper can empty its own parent.
func pruneEmptyContainers(root *html.Node) {
	for {
		var empties []*html.Node
		walkBounded(root, root, DefaultMaxTreeDepth, func(n *html.Node) {
			if n == root || n.Type != html.ElementNode {
				return
			}
			if voidTags[n.Data] {
				return
			}
			if n.FirstChild == nil && !voidTags[n.Data] {
				empties = append(empties, n)
			}
		})
		if len(empties) == 0 {
			return
		}
		for _, n := range empties {
			if n.Parent != nil {
				detach(n)
			}
		}
	}
}

// voidTags never carry children in well-formed HTML and must not be
// pruned merely for lacking a FirstChild.
var voidTags = map[string]bool{
	"img": true, "br": true, "hr": true, "input": true, "area": true,
	"base": true, "col": true, "embed": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}
