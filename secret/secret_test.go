package secret

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	blob := filepath.Join(dir, "secret.blob")
	key := DefaultKeyPath(blob)

	require.NoError(t, Save(blob, key, []byte("super-secret")))
	got, err := Load(blob, key)
	require.NoError(t, err)
	require.Equal(t, "super-secret", string(got))
}

func TestLoadWithWrongKeyFails(t *testing.T) {
	dir := t.TempDir()
	blob := filepath.Join(dir, "secret.blob")
	require.NoError(t, Save(blob, filepath.Join(dir, "a.key"), []byte("s")))

	otherKey := filepath.Join(dir, "b.key")
	require.NoError(t, os.WriteFile(otherKey, make([]byte, keySize), 0600))
	_, err := Load(blob, otherKey)
	require.Error(t, err)
	require.Contains(t, err.Error(), "decrypt")
}

func TestLoadRefusesWorldReadableBlob(t *testing.T) {
	dir := t.TempDir()
	blob := filepath.Join(dir, "secret.blob")
	key := DefaultKeyPath(blob)
	require.NoError(t, Save(blob, key, []byte("s")))
	require.NoError(t, os.Chmod(blob, 0644))

	_, err := Load(blob, key)
	require.Error(t, err)
	require.Contains(t, err.Error(), "refusing")
}

func TestSaveCreatesPrivateFiles(t *testing.T) {
	dir := t.TempDir()
	blob := filepath.Join(dir, "nested", "secret.blob")
	key := DefaultKeyPath(blob)
	require.NoError(t, Save(blob, key, []byte("s")))

	for _, p := range []string{blob, key} {
		info, err := os.Stat(p)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0600), info.Mode().Perm())
	}
}
