package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestFileStore_RoundTrip(t *testing.T) {
	st, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, st.Write("accounts", payload{Name: "bank", Count: 3}))

	var got payload
	found, err := st.Read("accounts", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload{Name: "bank", Count: 3}, got)
}

func TestFileStore_MissingKey(t *testing.T) {
	st, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	var got payload
	found, err := st.Read("nope", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileStore_WriteReplaces(t *testing.T) {
	st, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, st.Write("k", payload{Count: 1}))
	require.NoError(t, st.Write("k", payload{Count: 2}))

	var got payload
	_, err = st.Read("k", &got)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Count)
}

func TestFileStore_Delete(t *testing.T) {
	dir := t.TempDir()
	st, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, st.Write("k", payload{Count: 1}))
	require.NoError(t, st.Delete("k"))

	var got payload
	found, err := st.Read("k", &got)
	require.NoError(t, err)
	assert.False(t, found)

	// Deleting a missing key is fine.
	require.NoError(t, st.Delete("k"))
}

func TestFileStore_OneFilePerKey(t *testing.T) {
	dir := t.TempDir()
	st, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, st.Write("accounts", payload{}))
	require.NoError(t, st.Write("people", payload{}))

	for _, name := range []string{"accounts.json", "people.json"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "%s should exist", name)
	}
}
