package artikel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func mustFirst(t *testing.T, src, selector string) *html.Node {
	t.Helper()
	doc, err := parseHTML(src, DefaultMaxTreeDepth)
	require.NoError(t, err)
	sel := doc.find(selector)
	require.NotZero(t, sel.Length())
	return sel.Get(0)
}

func TestCommentsRule1(t *testing.T) {
	t.Parallel()

	assert.True(t, commentsRule1(mustFirst(t, `<div id="commentlist">c</div>`, "div")))
	assert.True(t, commentsRule1(mustFirst(t, `<ul class="comment-list">c</ul>`, "ul")))
	assert.True(t, commentsRule1(mustFirst(t, `<section class="post-comments">c</section>`, "section")))
	assert.True(t, commentsRule1(mustFirst(t, `<div class="comment-page">c</div>`, "div")))
	assert.False(t, commentsRule1(mustFirst(t, `<article id="commentlist">c</article>`, "article")))
}

func TestCommentsRule2(t *testing.T) {
	t.Parallel()

	assert.True(t, commentsRule2(mustFirst(t, `<div id="comments-section">c</div>`, "div")))
	assert.True(t, commentsRule2(mustFirst(t, `<section class="Comments">c</section>`, "section")))
	assert.True(t, commentsRule2(mustFirst(t, `<div class="comment-area">c</div>`, "div")))
	assert.False(t, commentsRule2(mustFirst(t, `<article id="comments">c</article>`, "article")))
}

func TestCommentsRule3(t *testing.T) {
	t.Parallel()

	assert.True(t, commentsRule3(mustFirst(t, `<div id="disqus_thread">c</div>`, "div")))
	assert.True(t, commentsRule3(mustFirst(t, `<section id="dsq_comments">c</section>`, "section")))
	assert.False(t, commentsRule3(mustFirst(t, `<article id="disqus_thread">c</article>`, "article")))
}

func TestCommentsRule4(t *testing.T) {
	t.Parallel()

	assert.True(t, commentsRule4(mustFirst(t, `<div id="social-comments">c</div>`, "div")))
	assert.True(t, commentsRule4(mustFirst(t, `<section class="user-comment">c</section>`, "section")))
	assert.False(t, commentsRule4(mustFirst(t, `<article class="comment">c</article>`, "article")))
}

func TestFindCommentsSection(t *testing.T) {
	t.Parallel()

	doc, err := parseHTML(`<html><body>
		<article>content</article>
		<div id="comments">comments</div>
		<div id="disqus_thread">disqus</div>
	</body></html>`, DefaultMaxTreeDepth)
	require.NoError(t, err)

	found := findCommentsSection(doc.body(), doc.root, doc.maxDepth)
	require.NotNil(t, found)
	id, _ := attr(found, "id")
	assert.Equal(t, "comments", id)
}

func TestIsCommentDebris(t *testing.T) {
	t.Parallel()

	assert.True(t, isCommentDebris(mustFirst(t, `<div id="respond">form</div>`, "div")))
	assert.True(t, isCommentDebris(mustFirst(t, `<cite>quoted text</cite>`, "cite")))
	assert.True(t, isCommentDebris(mustFirst(t, `<div class="nocomments">no</div>`, "div")))
	assert.True(t, isCommentDebris(mustFirst(t, `<span id="reply-link">reply</span>`, "span")))
	assert.True(t, isCommentDebris(mustFirst(t, `<div style="display:none">hidden</div>`, "div")))
	assert.False(t, isCommentDebris(mustFirst(t, `<div>normal content</div>`, "div")))
}
