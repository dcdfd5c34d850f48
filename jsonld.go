package artikel

import (
	"encoding/json"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
)

// parseJSONLD extracts every <script type="application/ld+json"> block
// under doc.root and decodes it into a generic map. A block that is
// malformed, or whose top-level value is neither a JSON object nor an
// array of objects, is skipped
// rather than failing the whole extraction: real pages routinely ship
// one broken JSON-LD block alongside a good one.
func parseJSONLD(doc *document) []map[string]any {
	var out []map[string]any
	doc.find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		raw := sel.Text()
		if isBlank(raw) {
			return
		}
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			log.Debug().Err(err).Msg("skipping malformed json-ld block")
			return
		}
		switch t := v.(type) {
		case map[string]any:
			out = append(out, flattenGraph(t)...)
		case []any:
			for _, item := range t {
				if m, ok := item.(map[string]any); ok {
					out = append(out, flattenGraph(m)...)
				}
			}
		}
	})
	return out
}

// flattenGraph unwraps a JSON-LD "@graph" array (used by sites that
// bundle multiple entities in one script block) into its member
// objects; a block with no @graph is returned as its single self.
func flattenGraph(m map[string]any) []map[string]any {
	graph, ok := m["@graph"].([]any)
	if !ok {
		return []map[string]any{m}
	}
	var out []map[string]any
	for _, item := range graph {
		if entry, ok := item.(map[string]any); ok {
			out = append(out, entry)
		}
	}
	return out
}

// jsonLDString reads a string-valued field from a JSON-LD object,
// tolerating the common variant where the value is an array of
// strings (returns the first) instead of a bare string.
func jsonLDString(m map[string]any, key string) string {
	v, ok := m[key]
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case []any:
		if len(t) > 0 {
			if s, ok := t[0].(string); ok {
				return s
			}
		}
	}
	return ""
}

// jsonLDStrings reads a field that may be a single string or an array
// of strings, always returning a slice.
func jsonLDStrings(m map[string]any, key string) []string {
	v, ok := m[key]
	if !ok {
		return nil
	}
	switch t := v.(type) {
	case string:
		return []string{t}
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// jsonLDAuthorName resolves the "author" field's several JSON-LD
// shapes: a bare string, a single Person/Organization object, or an
// array of either.
func jsonLDAuthorName(m map[string]any) string {
	v, ok := m["author"]
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case map[string]any:
		return jsonLDString(t, "name")
	case []any:
		for _, item := range t {
			switch a := item.(type) {
			case string:
				if a != "" {
					return a
				}
			case map[string]any:
				if name := jsonLDString(a, "name"); name != "" {
					return name
				}
			}
		}
	}
	return ""
}
