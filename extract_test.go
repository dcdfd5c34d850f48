package artikel_test

import (
	"strings"
	"testing"

	"github.com/hallowmark/artikel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_EndToEndScenarios(t *testing.T) {
	t.Parallel()

	t.Run("title suffix stripped, nav excluded, both paragraphs kept", func(t *testing.T) {
		t.Parallel()

		src := `<html><head><title>Hello | Site</title></head><body><nav>Home</nav>` +
			`<article><h1>Hello</h1><p>First paragraph with enough text to score.</p>` +
			`<p>Second paragraph with more content here.</p></article></body></html>`

		result, err := artikel.Extract(src, artikel.DefaultOptions())
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(result.ContentText, "First paragraph"))
		assert.Contains(t, result.ContentText, "Second paragraph")
		assert.NotContains(t, result.ContentText, "Home")
		assert.NotContains(t, result.ContentText, "Hello |")
	})

	t.Run("script content never surfaces in content_text", func(t *testing.T) {
		t.Parallel()

		src := `<html><body><article><h1>Report</h1>` +
			`<p>A paragraph long enough to score as content on its own merits here.</p>` +
			`<script>alert(1)</script></article></body></html>`

		result, err := artikel.Extract(src, artikel.DefaultOptions())
		require.NoError(t, err)
		assert.NotContains(t, result.ContentText, "alert(1)")
	})

	t.Run("json-ld author initials period-stripped and date parsed", func(t *testing.T) {
		t.Parallel()

		src := `<html><body>` +
			`<script type="application/ld+json">{"@type":"Article","author":[{"name":"A. B. Smith"}],"datePublished":"2024-01-02T03:04:05Z"}</script>` +
			`<article><p>Enough text in this paragraph for the scorer to consider it real content.</p></article>` +
			`</body></html>`

		result, err := artikel.Extract(src, artikel.DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, "A B Smith", result.Metadata.Author)
		assert.Contains(t, result.Metadata.Date, "2024-01-02")
	})

	t.Run("og:title wins over title tag suffix", func(t *testing.T) {
		t.Parallel()

		src := `<html><head><meta property="og:title" content="Real Title">` +
			`<title>Real Title — Site</title></head><body><article>` +
			`<p>Enough text in this paragraph for the scorer to consider it real content.</p>` +
			`</article></body></html>`

		result, err := artikel.Extract(src, artikel.DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, "Real Title", result.Metadata.Title)
	})

	t.Run("duplicate paragraphs collapse to one when deduplicate is set", func(t *testing.T) {
		t.Parallel()

		p := "This exact paragraph repeats twice in the document body here."
		src := `<html><body><article><p>` + p + `</p><p>` + p + `</p></article></body></html>`

		opts := artikel.DefaultOptions()
		opts.Deduplicate = true
		result, err := artikel.Extract(src, opts)
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(result.ContentText, "repeats twice"))
	})

	t.Run("all-navigation body yields empty content without error", func(t *testing.T) {
		t.Parallel()

		src := `<html><body><nav><ul><li><a href="/a">A</a></li><li><a href="/b">B</a></li></ul></nav></body></html>`
		result, err := artikel.Extract(src, artikel.DefaultOptions())
		require.NoError(t, err)
		assert.Empty(t, result.ContentText)
	})
}

func TestExtract_BoundaryCases(t *testing.T) {
	t.Parallel()

	t.Run("empty input produces empty result without error", func(t *testing.T) {
		t.Parallel()

		result, err := artikel.Extract("", artikel.DefaultOptions())
		require.NoError(t, err)
		assert.Empty(t, result.ContentText)
		assert.Empty(t, result.Metadata.Title)
	})

	t.Run("script-only body produces empty content_text", func(t *testing.T) {
		t.Parallel()

		result, err := artikel.Extract(`<html><body><script>doStuff()</script></body></html>`, artikel.DefaultOptions())
		require.NoError(t, err)
		assert.Empty(t, result.ContentText)
	})

	t.Run("unclosed tags and stray end tags do not error", func(t *testing.T) {
		t.Parallel()

		src := `<html><body><article><p>Unclosed paragraph with plenty of text to score well` +
			`</article></body></html><table><tr><td>cell</table>`
		_, err := artikel.Extract(src, artikel.DefaultOptions())
		require.NoError(t, err)
	})

	t.Run("content_text never contains raw html tags", func(t *testing.T) {
		t.Parallel()

		src := `<html><body><article><p>Text with <b>bold</b> and <i>italic</i> inline markup that is long enough to score.</p></article></body></html>`
		result, err := artikel.Extract(src, artikel.DefaultOptions())
		require.NoError(t, err)
		assert.NotContains(t, result.ContentText, "<b>")
		assert.NotContains(t, result.ContentText, "<i>")
	})
}

func TestExtract_Invariants(t *testing.T) {
	t.Parallel()

	t.Run("images empty when include_images is false", func(t *testing.T) {
		t.Parallel()

		src := `<html><body><article><p>Paragraph text long enough to be scored as real content here.</p>` +
			`<img src="/a.jpg"></article></body></html>`
		result, err := artikel.Extract(src, artikel.DefaultOptions())
		require.NoError(t, err)
		assert.Empty(t, result.Images)
	})

	t.Run("hostname matches the authority of the resolved url", func(t *testing.T) {
		t.Parallel()

		opts := artikel.DefaultOptions()
		opts.URL = "https://example.com/article/1"
		result, err := artikel.Extract(`<html><body><article><p>Some article text long enough to be scored.</p></article></body></html>`, opts)
		require.NoError(t, err)
		assert.Equal(t, "example.com", result.Metadata.Hostname)
	})

	t.Run("precision mode never grows the recall mode result", func(t *testing.T) {
		t.Parallel()

		src := `<html><body><article><h1>Title</h1>` +
			`<p>A solid paragraph of real article content that should score well under any mode.</p>` +
			`<div class="teaser">A borderline promotional teaser blurb with just enough text.</div>` +
			`</article></body></html>`

		recallOpts := artikel.DefaultOptions()
		recallOpts.FavorRecall = true
		recall, err := artikel.Extract(src, recallOpts)
		require.NoError(t, err)

		precisionOpts := artikel.DefaultOptions()
		precisionOpts.FavorPrecision = true
		precision, err := artikel.Extract(src, precisionOpts)
		require.NoError(t, err)

		assert.LessOrEqual(t, len(precision.ContentText), len(recall.ContentText)+1)
	})
}

func TestExtract_Idempotence(t *testing.T) {
	t.Parallel()

	src := `<html><body><article><h1>Stable</h1><p>Repeatable extraction content that should not vary between runs.</p></article></body></html>`

	first, err := artikel.Extract(src, artikel.DefaultOptions())
	require.NoError(t, err)
	second, err := artikel.Extract(src, artikel.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, first.ContentText, second.ContentText)
	assert.Equal(t, first.Metadata, second.Metadata)
}

func TestExtract_ContentHTMLRoundTrips(t *testing.T) {
	t.Parallel()

	src := `<html><body>
		<nav><a href="/1">one</a><a href="/2">two</a></nav>
		<article>
			<h1>Round Trip</h1>
			<p>Feeding content_html back into Extract should reproduce the same content_text.</p>
			<p>A second paragraph long enough to survive the content thresholds on its own.</p>
		</article>
	</body></html>`

	outer, err := artikel.Extract(src, artikel.DefaultOptions())
	require.NoError(t, err)
	require.NotEmpty(t, outer.ContentHTML)

	inner, err := artikel.Extract(outer.ContentHTML, artikel.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, outer.ContentText, inner.ContentText)
}

func TestExtractBytes_DecodesWindows1252(t *testing.T) {
	t.Parallel()

	// 0x93/0x94 are curly quotes in windows-1252, invalid as UTF-8 continuation bytes.
	data := []byte("<html><head><meta charset=\"windows-1252\"></head><body><article><p>He said \x93hello\x94 to a paragraph long enough to score.</p></article></body></html>")

	result, err := artikel.ExtractBytes(data, artikel.DefaultOptions())
	require.NoError(t, err)
	assert.Contains(t, result.ContentText, "hello")
}
