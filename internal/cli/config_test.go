package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	cfg := &Config{
		TokenFile: filepath.Join(t.TempDir(), "nested", "token"),
	}

	require.NoError(t, cfg.SaveToken("tok-abc"))
	assert.Equal(t, "tok-abc", cfg.Token)

	// A fresh config reads the same token back
	fresh := &Config{TokenFile: cfg.TokenFile}
	require.NoError(t, fresh.LoadToken())
	assert.Equal(t, "tok-abc", fresh.Token)
}

func TestLoadTokenTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("tok-abc\n"), 0600))

	cfg := &Config{TokenFile: path}
	require.NoError(t, cfg.LoadToken())
	assert.Equal(t, "tok-abc", cfg.Token)
}

func TestLoadTokenMissingFileIsFine(t *testing.T) {
	cfg := &Config{TokenFile: filepath.Join(t.TempDir(), "absent")}
	require.NoError(t, cfg.LoadToken())
	assert.Empty(t, cfg.Token)
}

func TestLoadTokenPrefersExplicitToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("from-file"), 0600))

	cfg := &Config{Token: "from-flag", TokenFile: path}
	require.NoError(t, cfg.LoadToken())
	assert.Equal(t, "from-flag", cfg.Token)
}

func TestClearToken(t *testing.T) {
	cfg := &Config{TokenFile: filepath.Join(t.TempDir(), "token")}
	require.NoError(t, cfg.SaveToken("tok-abc"))

	require.NoError(t, cfg.ClearToken())
	assert.Empty(t, cfg.Token)

	_, err := os.Stat(cfg.TokenFile)
	assert.True(t, os.IsNotExist(err))

	// Clearing again is harmless
	require.NoError(t, cfg.ClearToken())
}
