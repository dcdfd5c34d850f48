package artikel

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"
	"golang.org/x/net/html"
)

// datePropertyNames and dateNameNames list the meta[property=...] and
// meta[name=...] variants sites use for the publish timestamp, in the priority order
// spec.md §4.6 describes ("~10 further variants").
var datePropertyNames = []string{"article:published_time"}
var dateNameNames = []string{
	"pubdate", "publishdate", "sailthru.date", "pdate",
	"date", "publication_date", "publish-date", "article.published",
	"parsely-pub-date", "dc.date.issued",
}

// resolveDate implements spec.md §4.6's date source list, parsing, and
// normalization pipeline. It returns an ISO 8601 string, or "" if no
// source yields a parseable date.
func resolveDate(doc *document, jsonLD []map[string]any, mainRoot NodeID) string {
	for _, m := range jsonLD {
		for _, key := range []string{"datePublished", "dateCreated", "dateModified"} {
			if raw := jsonLDString(m, key); !isBlank(raw) {
				if iso, ok := parseDate(raw); ok {
					return iso
				}
			}
		}
	}

	for _, prop := range datePropertyNames {
		if raw := metaByProperty(doc, prop); !isBlank(raw) {
			if iso, ok := parseDate(raw); ok {
				return iso
			}
		}
	}
	for _, name := range dateNameNames {
		if raw := metaByName(doc, name); !isBlank(raw) {
			if iso, ok := parseDate(raw); ok {
				return iso
			}
		}
	}

	if mainRoot != nil {
		if t := findTimeElement(mainRoot); t != "" {
			if iso, ok := parseDate(t); ok {
				return iso
			}
		}
	}

	if raw := findDateClassText(doc); raw != "" {
		if iso, ok := parseDate(raw); ok {
			return iso
		}
	}
	return ""
}

// findTimeElement returns the datetime attribute (or text) of the
// first <time> element within or above root.
func findTimeElement(root *html.Node) string {
	if t := firstMatch(root, "time"); t != nil {
		if v, ok := attr(t, "datetime"); ok && !isBlank(v) {
			return v
		}
		if text := collapseWhitespace(textContent(t)); text != "" {
			return text
		}
	}
	for cur := root.Parent; cur != nil; cur = cur.Parent {
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			if isElement(c, "time") {
				if v, ok := attr(c, "datetime"); ok && !isBlank(v) {
					return v
				}
			}
		}
	}
	return ""
}

// findDateClassText finds an element matching class regex
// date|publish|time and returns its collapsed text.
func findDateClassText(doc *document) string {
	var found string
	doc.find("*").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if found != "" {
			return false
		}
		class, _ := sel.Attr("class")
		low := strings.ToLower(class)
		if strings.Contains(low, "date") || strings.Contains(low, "publish") || strings.Contains(low, "time") {
			text := collapseWhitespace(sel.Text())
			if text != "" && len([]rune(text)) < 60 {
				found = text
				return false
			}
		}
		return true
	})
	return found
}

// parseDate normalizes raw date text (ordinal/prefix stripping) and
// parses it with dateparse, which already covers ISO 8601, RFC
// 822/1123, US and European numeric forms, and long month-name forms.
// It returns the parsed time formatted as ISO 8601. Parsing is a
// single dateparse.ParseAny call; no alternative readings of an
// ambiguous value are compared, and none is preferred for carrying an
// explicit timezone.
func parseDate(raw string) (string, bool) {
	s := datePrefixRegex().ReplaceAllString(raw, "")
	s = ordinalSuffixRegex().ReplaceAllString(s, "$1")
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return "", false
	}
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 && !strings.ContainsAny(s, ":") {
		return t.Format("2006-01-02"), true
	}
	return t.Format(time.RFC3339), true
}
