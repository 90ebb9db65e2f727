package resolver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueryValue(t *testing.T) {
	t.Run("Returns first matching segment", func(t *testing.T) {
		require.Equal(t, "ABC", queryValue("https://h/p?g=ABC&g=DEF", "g"))
	})

	t.Run("No query string", func(t *testing.T) {
		require.Empty(t, queryValue("https://h/p", "g"))
	})

	t.Run("No matching key", func(t *testing.T) {
		require.Empty(t, queryValue("https://h/p?a=1&b=2", "g"))
	})

	t.Run("Prefix matching is literal", func(t *testing.T) {
		// "gx=" must not match "g="; the raw split never URL-decodes.
		require.Empty(t, queryValue("https://h/p?gx=1", "g"))
		require.Equal(t, "a%2Fb", queryValue("https://h/p?g=a%2Fb", "g"))
	})

	t.Run("Empty value", func(t *testing.T) {
		require.Empty(t, queryValue("https://h/p?g=&x=1", "g"))
	})
}

func TestExtractExpires(t *testing.T) {
	t.Run("Parses seconds timestamp", func(t *testing.T) {
		ts, ok := ExtractExpires("https://h/p?a=1&Expires=1700000000")
		require.True(t, ok)
		require.EqualValues(t, 1700000000, ts)
	})

	t.Run("Absent parameter", func(t *testing.T) {
		_, ok := ExtractExpires("https://h/p?a=1")
		require.False(t, ok)
	})

	t.Run("Non-numeric value", func(t *testing.T) {
		_, ok := ExtractExpires("https://h/p?Expires=tomorrow")
		require.False(t, ok)
	})

	t.Run("Case sensitive key", func(t *testing.T) {
		_, ok := ExtractExpires("https://h/p?expires=1700000000")
		require.False(t, ok)
	})
}
