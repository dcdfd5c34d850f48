package artikel

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// resolveSitename implements spec.md §4.6's sitename source list.
func resolveSitename(doc *document, jsonLD []map[string]any, hostname string) string {
	if v := metaByProperty(doc, "og:site_name"); !isBlank(v) {
		return collapseWhitespace(v)
	}
	for _, m := range jsonLD {
		if pub, ok := m["publisher"].(map[string]any); ok {
			if name := jsonLDString(pub, "name"); !isBlank(name) {
				return collapseWhitespace(name)
			}
		}
	}
	if v := metaByName(doc, "application-name"); !isBlank(v) {
		return collapseWhitespace(v)
	}
	if hostname == "" {
		return ""
	}
	first := strings.SplitN(hostname, ".", 2)[0]
	if first == "" {
		return ""
	}
	return strings.ToUpper(first[:1]) + first[1:]
}

// resolveURL implements spec.md §4.6's URL source list.
func resolveURL(doc *document, optsURL string) string {
	if v := firstAttr(doc.find(`link[rel="canonical"]`), "href"); !isBlank(v) {
		return v
	}
	if v := metaByProperty(doc, "og:url"); !isBlank(v) {
		return v
	}
	return optsURL
}

// hostnameOf derives the authority component of rawURL, or "" if
// rawURL is empty or unparseable.
func hostnameOf(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

// resolveLanguage implements spec.md §4.6's language source list,
// normalized to its primary subtag.
func resolveLanguage(doc *document) string {
	htmlEl := firstMatch(doc.root, "html")
	if htmlEl != nil {
		if v, ok := attr(htmlEl, "lang"); ok && !isBlank(v) {
			return primarySubtag(v)
		}
	}
	if v := metaByProperty(doc, "og:locale"); !isBlank(v) {
		return primarySubtag(v)
	}
	if v := metaByHTTPEquiv(doc, "content-language"); !isBlank(v) {
		return primarySubtag(v)
	}
	return ""
}

func primarySubtag(lang string) string {
	lang = strings.TrimSpace(lang)
	if i := strings.IndexAny(lang, "-_"); i >= 0 {
		lang = lang[:i]
	}
	return strings.ToLower(lang)
}

// resolveDescription implements spec.md §4.6's description source list.
func resolveDescription(doc *document) string {
	if v := metaByProperty(doc, "og:description"); !isBlank(v) {
		return collapseWhitespace(v)
	}
	if v := metaByName(doc, "twitter:description"); !isBlank(v) {
		return collapseWhitespace(v)
	}
	if v := metaByName(doc, "description"); !isBlank(v) {
		return collapseWhitespace(v)
	}
	return ""
}

// resolveImage implements spec.md §4.6's image source list. content is
// the subtree searched for the <img> fallback (Extract passes the
// Phase A preferred root); it may be nil.
func resolveImage(doc *document, content *html.Node, docURL string) string {
	if v := metaByProperty(doc, "og:image"); !isBlank(v) {
		return resolveAgainst(docURL, v)
	}
	if v := metaByName(doc, "twitter:image"); !isBlank(v) {
		return resolveAgainst(docURL, v)
	}
	if content == nil {
		return ""
	}
	var found string
	walkBounded(content, content, DefaultMaxTreeDepth, func(n *html.Node) {
		if found != "" || n.Type != html.ElementNode || n.Data != "img" {
			return
		}
		width := attrOr(n, "width", "")
		class, _ := attr(n, "class")
		if widthAtLeast(width, 400) || strings.Contains(strings.ToLower(class), "hero") {
			found = attrOr(n, "src", "")
		}
	})
	return resolveAgainst(docURL, found)
}

func widthAtLeast(width string, min int) bool {
	n := 0
	for _, c := range width {
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
	}
	return n >= min
}

// resolveAgainst resolves ref against base when both are non-empty and
// parseable, otherwise returns ref unchanged.
func resolveAgainst(base, ref string) string {
	if ref == "" || base == "" {
		return ref
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return ref
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return baseURL.ResolveReference(refURL).String()
}

// resolveCategoriesAndTags implements spec.md §4.6's categories/tags
// source lists, deduplicating while preserving first occurrence.
func resolveCategoriesAndTags(doc *document, jsonLD []map[string]any) (categories, tags []string) {
	for _, m := range jsonLD {
		categories = append(categories, jsonLDStrings(m, "articleSection")...)
	}
	if len(categories) == 0 {
		if v := metaByProperty(doc, "article:section"); !isBlank(v) {
			categories = append(categories, v)
		}
	}
	categories = dedupePreserveOrder(categories)

	for _, m := range jsonLD {
		if kw, ok := m["keywords"].(string); ok {
			for _, part := range strings.Split(kw, ",") {
				if p := strings.TrimSpace(part); p != "" {
					tags = append(tags, p)
				}
			}
		} else {
			tags = append(tags, jsonLDStrings(m, "keywords")...)
		}
	}
	if len(tags) == 0 {
		if v := metaByName(doc, "keywords"); !isBlank(v) {
			for _, part := range strings.Split(v, ",") {
				if p := strings.TrimSpace(part); p != "" {
					tags = append(tags, p)
				}
			}
		}
	}
	if len(tags) == 0 {
		doc.find(`meta[property="article:tag"]`).Each(func(_ int, sel *goquery.Selection) {
			if v, ok := sel.Attr("content"); ok && !isBlank(v) {
				tags = append(tags, v)
			}
		})
	}
	if len(tags) == 0 {
		doc.find(`a[rel="tag"]`).Each(func(_ int, sel *goquery.Selection) {
			if text := collapseWhitespace(sel.Text()); text != "" {
				tags = append(tags, text)
			}
		})
	}
	return categories, dedupePreserveOrder(tags)
}

func dedupePreserveOrder(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		key := strings.ToLower(strings.TrimSpace(it))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, strings.TrimSpace(it))
	}
	return out
}

// resolveLicense implements spec.md §4.6's license source list.
func resolveLicense(doc *document, jsonLD []map[string]any) string {
	if v := firstAttr(doc.find(`link[rel="license"]`), "href"); !isBlank(v) {
		return v
	}
	if v := firstAttr(doc.find(`a[rel="license"]`), "href"); !isBlank(v) {
		return v
	}
	for _, m := range jsonLD {
		if v := jsonLDString(m, "license"); !isBlank(v) {
			return v
		}
	}
	return ""
}

// resolvePageType implements spec.md §4.6's page-type source list.
func resolvePageType(doc *document, jsonLD []map[string]any) string {
	if v := metaByProperty(doc, "og:type"); !isBlank(v) {
		return v
	}
	for _, m := range jsonLD {
		if types := jsonLDStrings(m, "@type"); len(types) > 0 {
			return types[0]
		}
	}
	return ""
}
