package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cards.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadCards(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		cards, err := LoadCards("")
		require.NoError(t, err)
		assert.Equal(t, DefaultCards(), cards)
		assert.Len(t, cards, 3)
		assert.Equal(t, "This is the first card content.", cards[0].Content)
	})

	t.Run("missing file", func(t *testing.T) {
		cards, err := LoadCards(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultCards(), cards)
	})

	t.Run("file", func(t *testing.T) {
		path := writeFile(t, "cards:\n  - title: Welcome\n    content: Hello there.\n  - title: Tips\n    content: |\n      Press SPC for commands.\n")
		cards, err := LoadCards(path)
		require.NoError(t, err)
		assert.Equal(t, []Card{
			{Title: "Welcome", Content: "Hello there."},
			{Title: "Tips", Content: "Press SPC for commands.\n"},
		}, cards)
	})

	t.Run("no cards falls back", func(t *testing.T) {
		cards, err := LoadCards(writeFile(t, "cards: []\n"))
		require.NoError(t, err)
		assert.Equal(t, DefaultCards(), cards)
	})

	t.Run("untitled card", func(t *testing.T) {
		_, err := LoadCards(writeFile(t, "cards:\n  - content: orphan\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "card 1 has no title")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadCards(writeFile(t, "cards: [\n"))
		assert.Error(t, err)
	})
}
