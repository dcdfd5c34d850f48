package artikel

import (
	"strings"

	"golang.org/x/net/html"
)

// collectImages walks the retained content subtree for <img> elements
// and turns each into an ImageData entry, per spec.md §4.7 and the
// data model's invariant that ImageData.src is an absolute URL: each
// image's src is resolved against docURL exactly as resolveImage
// resolves the metadata image. It runs only when Options.IncludeImages
// is set. heroSrc, when non-empty, is the resolved metadata image
// (typically og:image); if it matches one of the collected images that
// one is the hero. Otherwise the hero is the largest image by declared
// width, then estimated area, then document order — at most one image
// is ever marked as hero.
func collectImages(content *html.Node, heroSrc, docURL string) []ImageData {
	if content == nil {
		return nil
	}
	var out []ImageData
	walkBounded(content, content, DefaultMaxTreeDepth, func(n *html.Node) {
		if n.Type != html.ElementNode || n.Data != "img" {
			return
		}
		src := attrOr(n, "src", "")
		if src == "" {
			src = attrOr(n, "data-src", "")
		}
		if src == "" {
			return
		}
		out = append(out, ImageData{
			Src:      resolveAgainst(docURL, src),
			Filename: filenameFromSrc(src),
			Alt:      attrOr(n, "alt", ""),
			Caption:  figureCaption(n),
		})
	})
	if len(out) == 0 {
		return out
	}

	heroIdx := -1
	if heroSrc != "" {
		for i, img := range out {
			if img.Src == heroSrc {
				heroIdx = i
				break
			}
		}
	}
	if heroIdx < 0 {
		heroIdx = largestImageIndex(content, out)
	}
	if heroIdx >= 0 {
		out[heroIdx].IsHero = true
	}
	return out
}

// largestImageIndex picks the index of the largest image by declared
// width, then by width*height area, then by document order (the
// earliest wins on a full tie, since it is scanned first).
func largestImageIndex(content *html.Node, imgs []ImageData) int {
	widths := make([]int, len(imgs))
	areas := make([]int, len(imgs))
	i := 0
	walkBounded(content, content, DefaultMaxTreeDepth, func(n *html.Node) {
		if n.Type != html.ElementNode || n.Data != "img" || i >= len(imgs) {
			return
		}
		if attrOr(n, "src", "") == "" && attrOr(n, "data-src", "") == "" {
			return // skipped by collectImages, so it has no entry in imgs
		}
		w := parseIntAttr(n, "width")
		h := parseIntAttr(n, "height")
		widths[i] = w
		areas[i] = w * h
		i++
	})
	best := 0
	for j := 1; j < len(imgs); j++ {
		if widths[j] > widths[best] || (widths[j] == widths[best] && areas[j] > areas[best]) {
			best = j
		}
	}
	return best
}

func parseIntAttr(n *html.Node, key string) int {
	v := attrOr(n, key, "")
	num := 0
	for _, c := range v {
		if c < '0' || c > '9' {
			break
		}
		num = num*10 + int(c-'0')
	}
	return num
}

// figureCaption returns the text of n's enclosing <figure>'s
// <figcaption>, if any.
func figureCaption(n *html.Node) string {
	for cur := n.Parent; cur != nil; cur = cur.Parent {
		if !isElement(cur, "figure") {
			continue
		}
		if cap := firstMatch(cur, "figcaption"); cap != nil {
			return collapseWhitespace(textContent(cap))
		}
		return ""
	}
	return ""
}

// filenameFromSrc extracts the trailing path segment of a URL or path
// for use as a suggested local filename, stripping any query string.
func filenameFromSrc(src string) string {
	s := src
	if i := strings.IndexByte(s, '?'); i >= 0 {
		s = s[:i]
	}
	if i := strings.IndexByte(s, '#'); i >= 0 {
		s = s[:i]
	}
	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		return s[i+1:]
	}
	return s
}
