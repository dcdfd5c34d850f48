package artikel

import (
	"regexp"

	"golang.org/x/net/html"
)

// removableTags lists the tags spec.md §4.3 always strips. header/footer
// are conditional (kept inside <article>) and handled separately.
var removableTags = map[string]bool{
	"script": true, "style": true, "noscript": true, "iframe": true,
	"svg": true, "canvas": true, "embed": true, "form": true,
	"input": true, "button": true, "select": true, "textarea": true,
	"nav": true, "aside": true,
}

// clean prunes boilerplate from doc in place, per spec.md §4.3. It runs
// collect-then-apply, as spec.md §9 requires: one read-only pass marks
// nodes for removal, a second pass detaches them, so the walk itself
// never mutates the tree it is iterating.
func clean(doc *document, opts Options) {
	root := doc.body()
	boilerplate := boilerplateClassRegex()
	if opts.precisionMode() {
		boilerplate = boilerplateClassRegexPrecision()
	}

	var toRemove []*html.Node
	walkBounded(root, doc.root, doc.maxDepth, func(n *html.Node) {
		if n.Type == html.CommentNode {
			if !opts.IncludeComments {
				toRemove = append(toRemove, n)
			}
			return
		}
		if n.Type != html.ElementNode {
			return
		}
		tag := n.Data

		if removableTags[tag] {
			toRemove = append(toRemove, n)
			return
		}
		if tag == "header" || tag == "footer" {
			if !hasArticleAncestor(n, root) {
				toRemove = append(toRemove, n)
			}
			return
		}
		if boilerplate.MatchString(classAndID(n)) {
			if isStructuralContainer(tag) {
				// Structural containers survive unless every
				// descendant would be removed anyway; that
				// determination happens after the full mark pass,
				// so structural containers are re-checked below.
				return
			}
			toRemove = append(toRemove, n)
		}
	})

	for _, n := range toRemove {
		detach(n)
	}

	pruneEmptyStructuralContainers(root, doc, boilerplate)
}

// hasArticleAncestor reports whether n has an <article> ancestor at or
// below the cleaning root, so header/footer inside an article survive.
func hasArticleAncestor(n, root *html.Node) bool {
	for cur := n.Parent; cur != nil; cur = cur.Parent {
		if isElement(cur, "article") {
			return true
		}
		if cur == root {
			break
		}
	}
	return false
}

// isStructuralContainer reports whether tag is one of the container
// elements spec.md §4.3 says must survive a boilerplate-class match
// unless every descendant would otherwise be removed.
func isStructuralContainer(tag string) bool {
	switch tag {
	case "div", "section", "main", "article":
		return true
	default:
		return false
	}
}

// pruneEmptyStructuralContainers removes structural containers that
// matched the boilerplate regex during the first pass and, after
// removal of their non-structural descendants, retain no element or
// non-blank text content. This is a second collect-then-apply pass so
// it never mutates mid-walk either.
func pruneEmptyStructuralContainers(root *html.Node, doc *document, boilerplate *regexp.Regexp) {
	var candidates []*html.Node
	walkBounded(root, doc.root, doc.maxDepth, func(n *html.Node) {
		if n.Type != html.ElementNode || !isStructuralContainer(n.Data) {
			return
		}
		if boilerplate.MatchString(classAndID(n)) {
			candidates = append(candidates, n)
		}
	})
	for _, n := range candidates {
		if n.Parent == nil {
			continue // already detached as a descendant of another candidate
		}
		if isBlank(textContent(n)) {
			detach(n)
		}
	}
}
