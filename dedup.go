package artikel

import (
	"github.com/cespare/xxhash/v2"
	"golang.org/x/net/html"
)

// deduplicateBlocks drops candidate blocks whose collapsed text
// fingerprint repeats an earlier block's, in document order, per
// spec.md §4.7. A hash-based exact-match seen-set is used rather than
// a probabilistic filter (see DESIGN.md): a false positive here would
// silently drop unique content, which spec.md §8's idempotence
// invariant forbids.
func deduplicateBlocks(root *html.Node) {
	if root == nil {
		return
	}
	seen := make(map[uint64]struct{})
	var toRemove []*html.Node
	walkBounded(root, root, DefaultMaxTreeDepth, func(n *html.Node) {
		if n == root || n.Type != html.ElementNode || !blockTags[n.Data] {
			return
		}
		text := collapseWhitespace(textContent(n))
		if text == "" {
			return
		}
		h := xxhash.Sum64String(fingerprint(text))
		if _, dup := seen[h]; dup {
			toRemove = append(toRemove, n)
			return
		}
		seen[h] = struct{}{}
	})
	for _, n := range toRemove {
		if n.Parent != nil {
			detach(n)
		}
	}
	pruneEmptyContainers(root)
}
