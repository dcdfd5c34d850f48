package artikel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeText(t *testing.T) {
	t.Parallel()

	t.Run("separates blocks with a blank line", func(t *testing.T) {
		t.Parallel()
		doc, err := parseHTML(`<div><p>First.</p><p>Second.</p></div>`, DefaultMaxTreeDepth)
		require.NoError(t, err)
		got := serializeText(doc.find("div").Get(0))
		assert.Equal(t, "First.\n\nSecond.", got)
	})

	t.Run("inline elements introduce no separator", func(t *testing.T) {
		t.Parallel()
		doc, err := parseHTML(`<p>Hello <b>bold</b> world.</p>`, DefaultMaxTreeDepth)
		require.NoError(t, err)
		got := serializeText(doc.find("p").Get(0))
		assert.Equal(t, "Hello bold world.", got)
	})

	t.Run("nil content is empty text", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, serializeText(nil))
	})
}

func TestSerializeHTML(t *testing.T) {
	t.Parallel()

	doc, err := parseHTML(`<div><p>Text</p></div>`, DefaultMaxTreeDepth)
	require.NoError(t, err)
	out, err := serializeHTML(doc.find("div").Get(0))
	require.NoError(t, err)
	assert.Contains(t, out, "<p>Text</p>")
}
