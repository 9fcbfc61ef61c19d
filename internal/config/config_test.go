package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withHome points the home directory at a temp dir and runs from another
// temp dir so local config never leaks between tests.
func withHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	orig := homeDir
	homeDir = func() (string, error) { return home, nil }
	t.Cleanup(func() { homeDir = orig })
	t.Chdir(t.TempDir())
	return home
}

func TestDefaults(t *testing.T) {
	home := withHome(t)
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ScopeGlobal, cfg.Scope())
	assert.Equal(t, filepath.Join(home, ".thebook", "book"), cfg.CorpusDir())
	assert.Equal(t, DefaultTreeURL, cfg.TreeURL())
	assert.Equal(t, DefaultRawURL, cfg.RawURL())
	assert.Equal(t, "src/", cfg.Prefix())
	assert.Equal(t, ".md", cfg.Suffix())
	assert.Equal(t, 200*time.Millisecond, cfg.PollInterval())
	assert.Equal(t, 1, cfg.Workers())
	assert.Equal(t, 0, cfg.Limit())
	assert.Equal(t, "dark", cfg.Style())
}

func TestSetGet(t *testing.T) {
	withHome(t)
	cfg, err := Load()
	require.NoError(t, err)

	require.NoError(t, cfg.Set("search.workers", "4"))
	require.NoError(t, cfg.Set("render.style", "light"))
	require.NoError(t, cfg.Set("corpus.dir", "/tmp/book"))

	v, err := cfg.Get("search.workers")
	require.NoError(t, err)
	assert.Equal(t, "4", v)
	assert.True(t, cfg.IsSet("search.workers"))
	assert.False(t, cfg.IsSet("search.limit"))
	assert.Equal(t, "light", cfg.All()["render.style"])
	assert.Equal(t, "/tmp/book", cfg.CorpusDir())
	assert.Len(t, cfg.All(), len(ValidKeys()))
}

func TestSet_Invalid(t *testing.T) {
	cfg := &Config{}
	assert.ErrorIs(t, cfg.Set("search.workers", "0"), ErrInvalidValue)
	assert.ErrorIs(t, cfg.Set("search.poll_interval", "abc"), ErrInvalidValue)
	assert.ErrorIs(t, cfg.Set("render.style", "neon"), ErrInvalidValue)
	assert.ErrorIs(t, cfg.Set("nope", "1"), ErrUnknownKey)

	_, err := cfg.Get("nope")
	assert.ErrorIs(t, err, ErrUnknownKey)
	assert.False(t, IsValidKey("nope"))
	assert.True(t, IsValidKey("corpus.dir"))
}

func TestSaveAndReload(t *testing.T) {
	home := withHome(t)
	cfg, err := Load()
	require.NoError(t, err)
	require.NoError(t, cfg.Set("search.poll_interval", "350"))
	require.NoError(t, cfg.Save())
	assert.FileExists(t, filepath.Join(home, ".thebook", "config.yaml"))

	again, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 350*time.Millisecond, again.PollInterval())
}

func TestLocalPrecedence(t *testing.T) {
	withHome(t)
	require.NoError(t, os.MkdirAll(".thebook", 0755))
	require.NoError(t, os.WriteFile(LocalPath(), []byte("search:\n  limit: 5\n"), 0644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ScopeLocal, cfg.Scope())
	assert.Equal(t, 5, cfg.Limit())
}

func TestLoad_Malformed(t *testing.T) {
	home := withHome(t)
	p := filepath.Join(home, ".thebook", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))

	require.NoError(t, os.WriteFile(p, []byte("search: [\n"), 0644))
	_, err := Load()
	assert.ErrorContains(t, err, "malformed config file")

	require.NoError(t, os.WriteFile(p, []byte("search:\n  workers: 500\n"), 0644))
	_, err = Load()
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestCorpusDir_ExpandsHome(t *testing.T) {
	home := withHome(t)
	cfg := &Config{Corpus: Corpus{Dir: "~/docs/book"}}
	assert.Equal(t, filepath.Join(home, "docs", "book"), cfg.CorpusDir())
}
