package artikel

import (
	"strings"

	"golang.org/x/net/html"
)

// resolveAuthor implements spec.md §4.6's author source list and
// cleaning pipeline, rejecting values on the blacklist.
func resolveAuthor(doc *document, jsonLD []map[string]any, blacklist []string) string {
	sources := []func() string{
		func() string {
			for _, m := range jsonLD {
				if name := jsonLDAuthorName(m); name != "" {
					return name
				}
			}
			return ""
		},
		func() string { return metaByName(doc, "author") },
		func() string { return metaByProperty(doc, "article:author") },
		func() string { return elementTextOrAttr(doc, `[itemprop="author"]`, "content") },
		func() string { return elementTextOrAttr(doc, `[rel="author"]`, "href") },
		func() string { return findBylineText(doc) },
	}

	for _, source := range sources {
		raw := source()
		if isBlank(raw) {
			continue
		}
		cleaned := cleanAuthor(raw)
		if cleaned == "" || isBlacklisted(cleaned, blacklist) {
			continue
		}
		return cleaned
	}
	return ""
}

// elementTextOrAttr returns the text of the first element matching
// selector, falling back to fallbackAttr when the element has no text
// content (e.g. a bare <link itemprop="author" content="...">).
func elementTextOrAttr(doc *document, selector, fallbackAttr string) string {
	sel := doc.find(selector)
	if sel.Length() == 0 {
		return ""
	}
	if text := collapseWhitespace(sel.First().Text()); text != "" {
		return text
	}
	v, _ := sel.First().Attr(fallbackAttr)
	return v
}

// findBylineText matches spec.md §4.6 rule 6: a class regex
// by(line|-?author)? on any element.
func findBylineText(doc *document) string {
	var node *html.Node
	walkBounded(doc.body(), doc.root, doc.maxDepth, func(n *html.Node) {
		if node != nil || n.Type != html.ElementNode {
			return
		}
		class, _ := attr(n, "class")
		if isBylineClass(class) {
			node = n
		}
	})
	if node == nil {
		return ""
	}
	return collapseWhitespace(textContent(node))
}

func isBylineClass(class string) bool {
	for _, tok := range strings.Fields(strings.ToLower(class)) {
		switch tok {
		case "by", "byline", "byauthor", "by-author":
			return true
		}
	}
	return false
}

// cleanAuthor implements spec.md §4.6's author cleaning pipeline.
func cleanAuthor(raw string) string {
	s := collapseWhitespace(raw)
	s = authorPrefixRegex().ReplaceAllString(s, "")
	s = authorTrailingRegex().ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	if s == "" || pureDateRegex().MatchString(s) {
		return ""
	}
	s = strings.ReplaceAll(s, ", ", "; ")
	s = strings.ReplaceAll(s, " and ", "; ")
	s = singleInitialRegex().ReplaceAllString(s, "$1")
	return strings.TrimSpace(s)
}

func isBlacklisted(name string, blacklist []string) bool {
	for _, b := range blacklist {
		if strings.EqualFold(name, b) {
			return true
		}
	}
	return false
}
