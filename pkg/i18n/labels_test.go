package i18n

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpiredLabel(t *testing.T) {
	t.Run("Exact tags", func(t *testing.T) {
		require.Equal(t, "Link expired", ExpiredLabel("en"))
		require.Equal(t, "链接已过期", ExpiredLabel("zh"))
		require.Equal(t, "Link abgelaufen", ExpiredLabel("de"))
	})

	t.Run("Regional variants match their base language", func(t *testing.T) {
		require.Equal(t, "Link expired", ExpiredLabel("en-GB"))
		require.Equal(t, "链接已过期", ExpiredLabel("zh-CN"))
		require.Equal(t, "Link expirado", ExpiredLabel("pt-BR"))
	})

	t.Run("Accept-Language lists are honored", func(t *testing.T) {
		require.Equal(t, "Lien expiré", ExpiredLabel("fr-FR,fr;q=0.9,en;q=0.8"))
	})

	t.Run("Unknown or empty tags fall back to English", func(t *testing.T) {
		require.Equal(t, "Link expired", ExpiredLabel(""))
		require.Equal(t, "Link expired", ExpiredLabel("not-a-tag!!"))
		require.Equal(t, "Link expired", ExpiredLabel("tlh"))
	})
}
