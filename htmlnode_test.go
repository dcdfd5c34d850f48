package artikel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestLinkDensity(t *testing.T) {
	t.Parallel()

	t.Run("all text inside a link is density 1", func(t *testing.T) {
		t.Parallel()
		n := mustFirst(t, `<p><a href="/x">all of it</a></p>`, "p")
		assert.InDelta(t, 1.0, linkDensity(n), 0.001)
	})

	t.Run("no links is density 0", func(t *testing.T) {
		t.Parallel()
		n := mustFirst(t, `<p>plain text</p>`, "p")
		assert.Zero(t, linkDensity(n))
	})

	t.Run("mixed content is proportional", func(t *testing.T) {
		t.Parallel()
		n := mustFirst(t, `<p>aaaaa<a href="/x">bbbbb</a></p>`, "p")
		assert.InDelta(t, 0.5, linkDensity(n), 0.01)
	})
}

func TestLowestCommonAncestor(t *testing.T) {
	t.Parallel()

	doc, err := parseHTML(`<html><body><article><div><p id="a">A</p><p id="b">B</p></div></article></body></html>`, DefaultMaxTreeDepth)
	require.NoError(t, err)

	a := doc.find(`#a`).Get(0)
	b := doc.find(`#b`).Get(0)
	div := doc.find(`div`).Get(0)

	lca := lowestCommonAncestor([]*html.Node{a, b}, doc.body())
	assert.Equal(t, div, lca)
}

func TestUnwrap(t *testing.T) {
	t.Parallel()

	doc, err := parseHTML(`<p>before <a href="/x">link text</a> after</p>`, DefaultMaxTreeDepth)
	require.NoError(t, err)
	p := doc.find("p").Get(0)
	a := doc.find("a").Get(0)

	unwrap(a)

	assert.Equal(t, "before link text after", collapseWhitespace(textContent(p)))
	assert.Zero(t, doc.find("a").Length())
}

func TestHasOnlyInlineChildren(t *testing.T) {
	t.Parallel()

	inline := mustFirst(t, `<div><span>a</span><b>b</b></div>`, "div")
	assert.True(t, hasOnlyInlineChildren(inline))

	block := mustFirst(t, `<div><p>a</p></div>`, "div")
	assert.False(t, hasOnlyInlineChildren(block))
}
