package artikel

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// document is the mutable parsed tree produced by parseHTML. It exists
// only for the lifetime of one Extract call; nothing about it is
// process-wide state. All traversals are rooted at root and, after
// pruning, the tree remains well-formed: no dangling parents, no node
// reachable from root whose Parent points somewhere else.
type document struct {
	root     *html.Node
	gq       *goquery.Document
	maxDepth int
}

// parseHTML builds a well-formed DOM from a possibly malformed HTML
// string. It never rejects input: golang.org/x/net/html implements the
// HTML5 tree-construction algorithm's error-recovery rules (auto-closed
// tags, foster-parented misnested table content, stray end tags
// dropped), so there is nothing left for this function to repair.
func parseHTML(s string, maxDepth int) (*document, error) {
	root, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// html.Parse only returns an error for I/O failures on the
		// reader; a strings.Reader never fails, but the type escape
		// hatch is preserved for callers that might swap the source.
		return nil, Errorf(EParse, "parse html: %v", err)
	}
	if maxDepth <= 0 {
		maxDepth = DefaultMaxTreeDepth
	}
	gq := goquery.NewDocumentFromNode(root)
	return &document{root: root, gq: gq, maxDepth: maxDepth}, nil
}

// find runs a CSS selector against the whole document.
func (d *document) find(selector string) *goquery.Selection {
	return d.gq.Find(selector)
}

// body returns the <body> element, or the document root if no body
// element exists (e.g. a fragment with no <html>/<body> wrapper).
func (d *document) body() *html.Node {
	if n := firstMatch(d.root, "body"); n != nil {
		return n
	}
	return d.root
}

// title returns the raw text of the first <title> element, if any.
func (d *document) title() string {
	sel := d.find("title").First()
	if sel.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(sel.Text())
}

// firstMatch walks n's descendants (including n) in document order and
// returns the first element node whose tag name equals tag.
func firstMatch(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := firstMatch(c, tag); found != nil {
			return found
		}
	}
	return nil
}
