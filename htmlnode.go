package artikel

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// blockTags lists the elements the GLOSSARY defines as block-level:
// they generate their own line box and are the unit of paragraph
// separation during serialization and the unit of candidacy during
// content scoring.
var blockTags = map[string]bool{
	"p": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true,
	"h6": true, "li": true, "blockquote": true, "pre": true, "figure": true,
	"dl": true, "dd": true, "dt": true, "table": true, "section": true,
	"article": true, "div": true, "ul": true, "ol": true,
}

// attr returns the value of attribute key on n, case-insensitively, and
// whether it was present.
func attr(n *html.Node, key string) (string, bool) {
	if n == nil || n.Type != html.ElementNode {
		return "", false
	}
	key = strings.ToLower(key)
	for _, a := range n.Attr {
		if strings.ToLower(a.Key) == key {
			return a.Val, true
		}
	}
	return "", false
}

// attrOr is attr with a fallback for the missing case.
func attrOr(n *html.Node, key, fallback string) string {
	if v, ok := attr(n, key); ok {
		return v
	}
	return fallback
}

// classAndID returns the lowercased class and id attribute values,
// concatenated with a space, for boilerplate/content regex matching.
func classAndID(n *html.Node) string {
	class, _ := attr(n, "class")
	id, _ := attr(n, "id")
	return strings.ToLower(class + " " + id)
}

// tagName returns the lowercased tag name of an element node, or "" for
// non-element nodes.
func tagName(n *html.Node) string {
	if n == nil || n.Type != html.ElementNode {
		return ""
	}
	return n.Data
}

// textContent concatenates the raw text of n and all its descendants,
// exactly as it appears in the source (whitespace not yet collapsed).
func textContent(n *html.Node) string {
	var b strings.Builder
	collectText(n, &b)
	return b.String()
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	if n.Type == html.ElementNode && (n.DataAtom == atom.Script || n.DataAtom == atom.Style) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// linkTextLength sums the text length of all <a> descendants of n
// (including n itself if it is an <a>).
func linkTextLength(n *html.Node) int {
	total := 0
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && node.DataAtom == atom.A {
			total += len([]rune(textContent(node)))
			return // don't double count nested <a> text (invalid HTML but be defensive)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return total
}

// linkDensity is the ratio of character count inside <a> descendants to
// the total character count of n. An empty element has density 0.
func linkDensity(n *html.Node) float64 {
	total := len([]rune(textContent(n)))
	if total == 0 {
		return 0
	}
	return float64(linkTextLength(n)) / float64(total)
}

// detach removes n from its parent's child list. After detach, n.Parent
// is nil and n is unreachable from the document root, satisfying the
// "no dangling parents" invariant for whatever remains.
func detach(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// unwrap replaces n with its children in place, preserving their order,
// then detaches n itself. Used to flatten <a> elements when
// Options.IncludeLinks is false.
func unwrap(n *html.Node) {
	parent := n.Parent
	if parent == nil {
		return
	}
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		parent.InsertBefore(c, n)
		c = next
	}
	parent.RemoveChild(n)
}

// depth returns the number of ancestors between n and root (root itself
// is depth 0).
func depth(n, root *html.Node) int {
	d := 0
	for cur := n; cur != nil && cur != root; cur = cur.Parent {
		d++
	}
	return d
}

// walkBounded visits n and its descendants in document order, calling
// visit for each node. Descent stops (without visiting further)
// whenever depth from root would exceed maxDepth, so a call always
// terminates against pathologically nested input.
func walkBounded(n, root *html.Node, maxDepth int, visit func(*html.Node)) {
	if depth(n, root) > maxDepth {
		return
	}
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkBounded(c, root, maxDepth, visit)
	}
}

// ancestors returns n's ancestor chain starting with n's parent and
// ending with root (inclusive). If root is not an ancestor of n, the
// chain runs up to the top of n's tree.
func ancestors(n, root *html.Node) []*html.Node {
	var chain []*html.Node
	for cur := n.Parent; cur != nil; cur = cur.Parent {
		chain = append(chain, cur)
		if cur == root {
			break
		}
	}
	return chain
}

// lowestCommonAncestor returns the deepest node that is an ancestor
// (inclusive of self) of every node in nodes. It returns root if nodes
// is empty or shares no ancestor closer than root.
func lowestCommonAncestor(nodes []*html.Node, root *html.Node) *html.Node {
	if len(nodes) == 0 {
		return root
	}
	// Build the ancestor-inclusive-self chain (root..node) for the first
	// node, then intersect by walking every other node's chain upward
	// until it lands on that path.
	first := nodes[0]
	chain := ancestors(first, root)
	path := make([]*html.Node, 0, len(chain)+1)
	for i := len(chain) - 1; i >= 0; i-- {
		path = append(path, chain[i])
	}
	path = append(path, first)
	onPath := make(map[*html.Node]int, len(path))
	for i, n := range path {
		onPath[n] = i
	}
	best := len(path) - 1 // index into path; larger index = deeper = more specific
	for _, n := range nodes[1:] {
		cur := n
		for cur != nil {
			if idx, ok := onPath[cur]; ok {
				if idx < best {
					best = idx
				}
				break
			}
			cur = cur.Parent
		}
	}
	return path[best]
}

// cloneTree deep-copies n and all its descendants into a new, detached
// tree. The clone shares no node pointers with the original, so it can
// be pruned independently without disturbing the source document (used
// by Phase C to assemble the kept content subtree without mutating the
// document the fallback extractor might still need).
func cloneTree(n *html.Node) *html.Node {
	clone := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      append([]html.Attribute(nil), n.Attr...),
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		clone.AppendChild(cloneTree(c))
	}
	return clone
}

// isElement reports whether n is an element with the given tag name.
func isElement(n *html.Node, tag string) bool {
	return n != nil && n.Type == html.ElementNode && n.Data == tag
}

// directChildElements returns n's immediate element children, skipping
// text and comment nodes.
func directChildElements(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// hasOnlyInlineChildren reports whether every direct element child of n
// is an inline (non-block) element. A div with only inline children is
// itself a valid candidate block per the GLOSSARY.
func hasOnlyInlineChildren(n *html.Node) bool {
	for _, c := range directChildElements(n) {
		if blockTags[tagName(c)] {
			return false
		}
	}
	return true
}
