package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSafeURLString(t *testing.T) {
	t.Run("Ampersands are not HTML-escaped", func(t *testing.T) {
		out, err := json.Marshal(SafeURLString("https://h/p?g=ABC&Expires=900"))
		require.NoError(t, err)
		require.Equal(t, `"https://h/p?g=ABC&Expires=900"`, string(out))
	})

	t.Run("Round trip", func(t *testing.T) {
		var s SafeURLString
		require.NoError(t, json.Unmarshal([]byte(`"/final.zip?Expires=1"`), &s))
		require.EqualValues(t, "/final.zip?Expires=1", s)
	})
}
