package artikel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanAuthor(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"strips by prefix", "By Jane Doe", "Jane Doe"},
		{"strips written by prefix", "Written by Jane Doe", "Jane Doe"},
		{"strips trailing follow segment", "Jane Doe Follow @janedoe", "Jane Doe"},
		{"strips single-letter initials", "A. B. Smith", "A B Smith"},
		{"normalizes comma to semicolon", "Jane Doe, John Roe", "Jane Doe; John Roe"},
		{"normalizes and to semicolon", "Jane Doe and John Roe", "Jane Doe; John Roe"},
		{"rejects a pure date", "January 2, 2024", ""},
		{"passes through an organization name", "Reuters", "Reuters"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, cleanAuthor(tc.in))
		})
	}
}

func TestResolveAuthor_JSONLDArrayOfObjects(t *testing.T) {
	t.Parallel()

	jsonLD := []map[string]any{
		{"author": []any{map[string]any{"name": "A. B. Smith"}}},
	}
	got := resolveAuthor(&document{}, jsonLD, nil)
	assert.Equal(t, "A B Smith", got)
}

func TestIsBlacklisted(t *testing.T) {
	t.Parallel()

	assert.True(t, isBlacklisted("Reuters", []string{"reuters", "AP"}))
	assert.False(t, isBlacklisted("Jane Doe", []string{"reuters", "AP"}))
}
