package artikel

import (
	"strings"

	"golang.org/x/net/html"
)

// serializeText renders content as plain text: each block-level
// element's collapsed text becomes its own line, blocks are separated
// by a single blank line, and inline elements never introduce a
// separator of their own (their text simply concatenates into the
// enclosing block's line).
func serializeText(content *html.Node) string {
	if content == nil {
		return ""
	}
	var lines []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && blockTags[n.Data] {
			if line := collapseWhitespace(blockOwnText(n)); line != "" {
				lines = append(lines, line)
			}
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				walk(c)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(content)
	return strings.Join(lines, "\n\n")
}

// blockOwnText returns n's text content excluding any text that
// belongs to a nested block element, since that nested block
// contributes its own line.
func blockOwnText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			b.WriteString(cur.Data)
			return
		}
		if cur.Type == html.ElementNode && cur != n && blockTags[cur.Data] {
			return
		}
		if cur.Type == html.ElementNode && (cur.Data == "script" || cur.Data == "style") {
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// serializeHTML renders content as an HTML fragment.
func serializeHTML(content *html.Node) (string, error) {
	if content == nil {
		return "", nil
	}
	var b strings.Builder
	if content.FirstChild == nil {
		if err := html.Render(&b, content); err != nil {
			return "", Errorf(EExtraction, "render html fragment: %v", err)
		}
		return b.String(), nil
	}
	for c := content.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			return "", Errorf(EExtraction, "render html fragment: %v", err)
		}
	}
	return b.String(), nil
}
