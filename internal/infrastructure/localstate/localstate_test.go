package localstate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMissingFileStartsEmpty(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "missing.json"))

	require.NoError(t, err)
	_, ok := store.Get("anything")
	assert.False(t, ok)
}

func TestSetGetRemoveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, store.Set("language", "en"))

	value, ok := store.Get("language")
	assert.True(t, ok)
	assert.Equal(t, "en", value)

	require.NoError(t, store.Remove("language"))
	_, ok = store.Get("language")
	assert.False(t, ok)
}

func TestValuesPersistAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("isAdmin", "true"))
	require.NoError(t, store.Set("cart", `[{"quantity":2}]`))

	reopened, err := Open(path)
	require.NoError(t, err)

	value, ok := reopened.Get("isAdmin")
	assert.True(t, ok)
	assert.Equal(t, "true", value)

	value, ok = reopened.Get("cart")
	assert.True(t, ok)
	assert.Equal(t, `[{"quantity":2}]`, value)
}

func TestOpenRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := Open(path)
	assert.Error(t, err)
}
