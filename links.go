package artikel

import "golang.org/x/net/html"

// resolveLinks implements the Options.IncludeLinks toggle: when false,
// every <a> in content is unwrapped to its text content, per spec.md
// §4.7; when true, anchors are left as-is for HTML serialization.
func resolveLinks(content *html.Node, includeLinks bool) {
	if content == nil || includeLinks {
		return
	}
	var anchors []*html.Node
	walkBounded(content, content, DefaultMaxTreeDepth, func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			anchors = append(anchors, n)
		}
	})
	for _, a := range anchors {
		unwrap(a)
	}
}
