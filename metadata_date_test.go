package artikel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	t.Run("iso 8601 with timezone", func(t *testing.T) {
		t.Parallel()
		iso, ok := parseDate("2024-01-02T03:04:05Z")
		require.True(t, ok)
		assert.Contains(t, iso, "2024-01-02")
	})

	t.Run("strips published prefix", func(t *testing.T) {
		t.Parallel()
		iso, ok := parseDate("Published: 2024-01-02")
		require.True(t, ok)
		assert.Contains(t, iso, "2024-01-02")
	})

	t.Run("strips ordinal suffix", func(t *testing.T) {
		t.Parallel()
		iso, ok := parseDate("January 2nd, 2024")
		require.True(t, ok)
		assert.Contains(t, iso, "2024-01-02")
	})

	t.Run("unparseable text fails cleanly", func(t *testing.T) {
		t.Parallel()
		_, ok := parseDate("not a date")
		assert.False(t, ok)
	})
}

func TestResolveDate_JSONLDPrecedence(t *testing.T) {
	t.Parallel()

	jsonLD := []map[string]any{
		{"datePublished": "2024-01-02T03:04:05Z", "dateModified": "2025-06-01T00:00:00Z"},
	}
	got := resolveDate(&document{}, jsonLD, nil)
	assert.Contains(t, got, "2024-01-02")
}

func TestResolveDate_FirstJSONLDBlockWins(t *testing.T) {
	t.Parallel()

	jsonLD := []map[string]any{
		{"datePublished": "2024-01-02T00:00:00Z"},
		{"datePublished": "2099-12-31T00:00:00Z"},
	}
	got := resolveDate(&document{}, jsonLD, nil)
	assert.Contains(t, got, "2024-01-02")
}
