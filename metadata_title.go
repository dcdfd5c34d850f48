package artikel

import "strings"

// resolveTitle implements spec.md §4.6's title source list and
// cleaning pipeline.
func resolveTitle(doc *document, jsonLD []map[string]any, preferredRoot NodeID, sitename string) string {
	if v := metaByProperty(doc, "og:title"); !isBlank(v) {
		return cleanTitle(v, sitename)
	}
	if v := metaByName(doc, "twitter:title"); !isBlank(v) {
		return cleanTitle(v, sitename)
	}
	if v := jsonLDArticleTitle(jsonLD); !isBlank(v) {
		return cleanTitle(v, sitename)
	}
	if preferredRoot != nil {
		if h1 := firstMatch(preferredRoot, "h1"); h1 != nil {
			if text := collapseWhitespace(textContent(h1)); !isBlank(text) {
				return cleanTitle(text, sitename)
			}
		}
	}
	return cleanTitle(doc.title(), sitename)
}

// jsonLDArticleTitle looks for headline/name on an Article-family node.
func jsonLDArticleTitle(jsonLD []map[string]any) string {
	for _, m := range jsonLD {
		if !isArticleType(m) {
			continue
		}
		if v := jsonLDString(m, "headline"); !isBlank(v) {
			return v
		}
		if v := jsonLDString(m, "name"); !isBlank(v) {
			return v
		}
	}
	return ""
}

func isArticleType(m map[string]any) bool {
	for _, t := range jsonLDStrings(m, "@type") {
		switch t {
		case "Article", "NewsArticle", "BlogPosting":
			return true
		}
	}
	return false
}

// cleanTitle trims the value and, if it ends in a " | Site" style
// suffix matching the resolved sitename, strips the suffix. Internal
// separators are preserved; colons never count as separators.
func cleanTitle(raw, sitename string) string {
	title := collapseWhitespace(raw)
	if title == "" || sitename == "" {
		return title
	}
	m := titleSeparatorRegex().FindStringSubmatchIndex(title)
	if m == nil {
		return title
	}
	suffix := title[m[2]:m[3]]
	if strings.ContainsAny(suffix, ".!?") {
		return title
	}
	if !strings.EqualFold(strings.TrimSpace(suffix), strings.TrimSpace(sitename)) {
		return title
	}
	return strings.TrimSpace(title[:m[0]])
}
