package artikel

import "github.com/PuerkitoBio/goquery"

// metaByName returns the content attribute of the first
// <meta name="key"> element, or "" if absent.
func metaByName(doc *document, key string) string {
	return firstAttr(doc.find(`meta[name="`+key+`"]`), "content")
}

// metaByProperty returns the content attribute of the first
// <meta property="key"> element, or "" if absent.
func metaByProperty(doc *document, key string) string {
	return firstAttr(doc.find(`meta[property="`+key+`"]`), "content")
}

// metaByHTTPEquiv returns the content attribute of the first
// <meta http-equiv="key"> element, or "" if absent.
func metaByHTTPEquiv(doc *document, key string) string {
	return firstAttr(doc.find(`meta[http-equiv="`+key+`"]`), "content")
}

func firstAttr(sel *goquery.Selection, attr string) string {
	if sel.Length() == 0 {
		return ""
	}
	v, _ := sel.First().Attr(attr)
	return v
}
