package artikel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectImages(t *testing.T) {
	t.Parallel()

	t.Run("hero matches the resolved metadata image", func(t *testing.T) {
		t.Parallel()
		doc, err := parseHTML(`<div>
			<img src="/a.jpg" width="100">
			<img src="/b.jpg" width="800">
		</div>`, DefaultMaxTreeDepth)
		require.NoError(t, err)
		div := doc.find("div").Get(0)
		imgs := collectImages(div, "https://example.com/a.jpg", "https://example.com/article")
		require.Len(t, imgs, 2)
		assert.True(t, imgs[0].IsHero)
		assert.False(t, imgs[1].IsHero)
	})

	t.Run("falls back to the largest declared width", func(t *testing.T) {
		t.Parallel()
		doc, err := parseHTML(`<div>
			<img src="/a.jpg" width="100">
			<img src="/b.jpg" width="800">
		</div>`, DefaultMaxTreeDepth)
		require.NoError(t, err)
		div := doc.find("div").Get(0)
		imgs := collectImages(div, "", "https://example.com/article")
		require.Len(t, imgs, 2)
		assert.False(t, imgs[0].IsHero)
		assert.True(t, imgs[1].IsHero)
	})

	t.Run("src is resolved to an absolute URL", func(t *testing.T) {
		t.Parallel()
		doc, err := parseHTML(`<div><img src="/img/a.jpg"></div>`, DefaultMaxTreeDepth)
		require.NoError(t, err)
		div := doc.find("div").Get(0)
		imgs := collectImages(div, "", "https://example.com/article")
		require.Len(t, imgs, 1)
		assert.Equal(t, "https://example.com/img/a.jpg", imgs[0].Src)
	})

	t.Run("figure caption is attached", func(t *testing.T) {
		t.Parallel()
		doc, err := parseHTML(`<figure><img src="/a.jpg"><figcaption>A caption.</figcaption></figure>`, DefaultMaxTreeDepth)
		require.NoError(t, err)
		fig := doc.find("figure").Get(0)
		imgs := collectImages(fig, "", "https://example.com/article")
		require.Len(t, imgs, 1)
		assert.Equal(t, "A caption.", imgs[0].Caption)
	})

	t.Run("nil content yields no images", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, collectImages(nil, "", ""))
	})
}

func TestFilenameFromSrc(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "photo.jpg", filenameFromSrc("https://example.com/img/photo.jpg?w=200"))
	assert.Equal(t, "photo.jpg", filenameFromSrc("/img/photo.jpg#frag"))
	assert.Equal(t, "photo.jpg", filenameFromSrc("photo.jpg"))
}
