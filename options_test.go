package artikel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionsResolved(t *testing.T) {
	t.Parallel()

	t.Run("fills in the default max tree depth", func(t *testing.T) {
		t.Parallel()
		r := Options{}.resolved()
		assert.Equal(t, DefaultMaxTreeDepth, r.MaxTreeDepth)
	})

	t.Run("preserves an explicit max tree depth", func(t *testing.T) {
		t.Parallel()
		r := Options{MaxTreeDepth: 5}.resolved()
		assert.Equal(t, 5, r.MaxTreeDepth)
	})
}

func TestOptionsModePrecedence(t *testing.T) {
	t.Parallel()

	t.Run("precision wins when both are set", func(t *testing.T) {
		t.Parallel()
		o := Options{FavorPrecision: true, FavorRecall: true}
		assert.True(t, o.precisionMode())
		assert.False(t, o.recallMode())
	})

	t.Run("recall alone activates recall mode", func(t *testing.T) {
		t.Parallel()
		o := Options{FavorRecall: true}
		assert.False(t, o.precisionMode())
		assert.True(t, o.recallMode())
	})

	t.Run("neither set is balanced mode", func(t *testing.T) {
		t.Parallel()
		o := Options{}
		assert.False(t, o.precisionMode())
		assert.False(t, o.recallMode())
	})
}
