package persist

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBolt(t *testing.T) *Bolt {
	t.Helper()
	b, err := NewBolt(filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { b.Close() })
	return b
}

func TestBoltStore(t *testing.T) {
	t.Run("Should return ErrNoKey for an unset key", func(t *testing.T) {
		b := newTestBolt(t)
		_, err := b.Get("missing")
		assert.ErrorIs(t, err, ErrNoKey)
	})

	t.Run("Should round-trip values", func(t *testing.T) {
		b := newTestBolt(t)
		require.NoError(t, b.Set("mode", "graph"))
		v, err := b.Get("mode")
		require.NoError(t, err)
		assert.Equal(t, "graph", v)
	})

	t.Run("Should delete keys", func(t *testing.T) {
		b := newTestBolt(t)
		require.NoError(t, b.Set("mode", "table"))
		require.NoError(t, b.Delete("mode"))
		_, err := b.Get("mode")
		assert.ErrorIs(t, err, ErrNoKey)
	})

	t.Run("Should survive reopen", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prefs.db")
		b, err := NewBolt(path)
		require.NoError(t, err)
		require.NoError(t, b.Set("mode", "cards"))
		require.NoError(t, b.Close())

		reopened, err := NewBolt(path)
		require.NoError(t, err)
		defer reopened.Close()
		v, err := reopened.Get("mode")
		require.NoError(t, err)
		assert.Equal(t, "cards", v)
	})
}
