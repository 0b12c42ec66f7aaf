package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStores_CompareAndSwap(t *testing.T) {
	stores := map[string]CredentialStore{
		"memory": NewMemoryStore(),
		"file":   NewFileStore(filepath.Join(t.TempDir(), "nested", "credentials.json")),
	}

	for name, s := range stores {
		t.Run(name, func(t *testing.T) {
			old := Credential{AccessToken: "a0", RefreshToken: "r0", UserID: "u1"}
			next := Credential{AccessToken: "a1", RefreshToken: "r1", UserID: "u1"}

			_, ok := s.Load()
			require.False(t, ok)

			swapped, err := s.CompareAndSwap(old, next)
			require.NoError(t, err)
			assert.False(t, swapped, "swap on empty store")

			require.NoError(t, s.Save(old))
			swapped, err = s.CompareAndSwap(old, next)
			require.NoError(t, err)
			assert.True(t, swapped)

			swapped, err = s.CompareAndSwap(old, Credential{AccessToken: "a2"})
			require.NoError(t, err)
			assert.False(t, swapped, "stale expectation")

			got, ok := s.Load()
			require.True(t, ok)
			assert.Equal(t, next, got)

			require.NoError(t, s.Clear())
			require.NoError(t, s.Clear())
			_, ok = s.Load()
			assert.False(t, ok)
		})
	}
}

func TestStores_CompareAndClear(t *testing.T) {
	stores := map[string]CredentialStore{
		"memory": NewMemoryStore(),
		"file":   NewFileStore(filepath.Join(t.TempDir(), "credentials.json")),
	}

	for name, s := range stores {
		t.Run(name, func(t *testing.T) {
			stale := Credential{AccessToken: "a0", RefreshToken: "r0", UserID: "u1"}
			newer := Credential{AccessToken: "a1", RefreshToken: "r1", UserID: "u1"}

			cleared, err := s.CompareAndClear(stale)
			require.NoError(t, err)
			assert.False(t, cleared, "clear on empty store")

			require.NoError(t, s.Save(newer))
			cleared, err = s.CompareAndClear(stale)
			require.NoError(t, err)
			assert.False(t, cleared)

			got, ok := s.Load()
			require.True(t, ok)
			assert.Equal(t, newer, got)

			cleared, err = s.CompareAndClear(newer)
			require.NoError(t, err)
			assert.True(t, cleared)
			_, ok = s.Load()
			assert.False(t, ok)
		})
	}
}

func TestFileStore_PersistsWithOwnerOnlyPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	cred := Credential{AccessToken: "a", RefreshToken: "r", UserID: "u"}

	require.NoError(t, NewFileStore(path).Save(cred))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, ok := NewFileStore(path).Load()
	require.True(t, ok)
	assert.Equal(t, cred, got)
}

func TestFileStore_CorruptFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, ok := NewFileStore(path).Load()
	assert.False(t, ok)
}
