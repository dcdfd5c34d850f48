package artikel

import (
	"strings"

	"golang.org/x/net/html"
)

// commentSectionTags restricts every comment-section rule below to the
// container elements a comment thread is realistically wrapped in.
var commentSectionTags = map[string]bool{"div": true, "ol": true, "ul": true, "dl": true, "section": true}

// findCommentsSection locates the reader-comments container within
// root, applying four pattern rules in order and returning the first
// match in document order. It is the population rule for
// ExtractResult.CommentsText/CommentsHTML, which spec.md leaves
// unspecified: real pages mark up their comment thread with one of a
// handful of recurring id/class conventions, and the first container
// to match is treated as the whole thread (its subtree is not
// re-scored the way main content is, since a comment thread has no
// single "best" block).
func findCommentsSection(root *html.Node, docRoot *html.Node, maxDepth int) *html.Node {
	var found *html.Node
	walkBounded(root, docRoot, maxDepth, func(n *html.Node) {
		if found != nil || n.Type != html.ElementNode {
			return
		}
		if isCommentsSectionNode(n) {
			found = n
		}
	})
	return found
}

func isCommentsSectionNode(n *html.Node) bool {
	return commentsRule1(n) || commentsRule2(n) || commentsRule3(n) || commentsRule4(n)
}

// commentsRule1 matches comment-list containers: commentlist,
// comment-page, comment-list, comments-content, post-comments.
func commentsRule1(n *html.Node) bool {
	if !commentSectionTags[tagName(n)] {
		return false
	}
	id, _ := attr(n, "id")
	class, _ := attr(n, "class")
	idClass := id + class
	return strings.Contains(idClass, "commentlist") ||
		strings.Contains(class, "comment-page") ||
		strings.Contains(idClass, "comment-list") ||
		strings.Contains(class, "comments-content") ||
		strings.Contains(class, "post-comments")
}

// commentsRule2 matches generic comment-section containers:
// comments*, Comments*, comment-*, article-comments.
func commentsRule2(n *html.Node) bool {
	if !commentSectionTags[tagName(n)] {
		return false
	}
	id, _ := attr(n, "id")
	class, _ := attr(n, "class")
	idClass := id + class
	return strings.HasPrefix(idClass, "comments") ||
		strings.HasPrefix(class, "Comments") ||
		strings.HasPrefix(idClass, "comment-") ||
		strings.Contains(class, "article-comments")
}

// commentsRule3 matches third-party comment widgets by id:
// comol*, disqus_thread*, dsq_comments*.
func commentsRule3(n *html.Node) bool {
	if !commentSectionTags[tagName(n)] {
		return false
	}
	id, _ := attr(n, "id")
	return strings.HasPrefix(id, "comol") ||
		strings.HasPrefix(id, "disqus_thread") ||
		strings.HasPrefix(id, "dsq_comments")
}

// commentsRule4 is the loosest rule, restricted to div/section:
// social* ids, or any class containing "comment".
func commentsRule4(n *html.Node) bool {
	tag := tagName(n)
	if tag != "div" && tag != "section" {
		return false
	}
	id, _ := attr(n, "id")
	class, _ := attr(n, "class")
	return strings.HasPrefix(id, "social") || strings.Contains(class, "comment")
}

// stripCommentDebris strips UI chrome from a matched comments
// section before it is serialized: reply forms, quote wrappers, and
// akismet/signin/hidden widgets are not part of the comment text
// itself.
func stripCommentDebris(section *html.Node) {
	var toRemove []*html.Node
	walkBounded(section, section, DefaultMaxTreeDepth, func(n *html.Node) {
		if n == section || n.Type != html.ElementNode {
			return
		}
		if isCommentDebris(n) {
			toRemove = append(toRemove, n)
		}
	})
	for _, n := range toRemove {
		if n.Parent != nil {
			detach(n)
		}
	}
}

func isCommentDebris(n *html.Node) bool {
	tag := tagName(n)
	id, _ := attr(n, "id")
	if (tag == "div" || tag == "section") && strings.HasPrefix(id, "respond") {
		return true
	}
	if tag == "cite" || tag == "quote" {
		return true
	}
	class, _ := attr(n, "class")
	style, _ := attr(n, "style")
	idClass := id + class
	return class == "comments-title" ||
		strings.Contains(class, "comments-title") ||
		strings.Contains(class, "nocomments") ||
		strings.HasPrefix(idClass, "reply-") ||
		strings.Contains(class, "-reply-") ||
		strings.Contains(class, "message") ||
		strings.Contains(class, "signin") ||
		strings.Contains(idClass, "akismet") ||
		strings.Contains(style, "display:none")
}
