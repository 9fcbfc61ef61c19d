package log

import (
	"bytes"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/jpl-au/thebook/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useTempDB points the logger at a fresh database for the test.
func useTempDB(t *testing.T) {
	t.Helper()
	Close()
	tmpDir := t.TempDir()
	orig := dbPathFunc
	dbPathFunc = func() string {
		return filepath.Join(tmpDir, "log", "test.db")
	}
	t.Cleanup(func() {
		Close()
		dbPathFunc = orig
	})
}

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", DBPath())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestLogger(t *testing.T) {
	useTempDB(t)

	t.Run("open and close", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()
		assert.FileExists(t, DBPath())
	})

	t.Run("log entry", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		SetCorpus("/home/user/.thebook/book")

		Log(Entry{
			Source:  "search:search",
			Action:  "search",
			Query:   "ownership rules",
			Results: 7,
			Success: true,
		})

		db := openDB(t)
		var count int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM log").Scan(&count))
		assert.Equal(t, 1, count)

		var source, action, q, corpus string
		var results, success int
		err := db.QueryRow("SELECT source, action, query, results, success, corpus FROM log WHERE id = 1").
			Scan(&source, &action, &q, &results, &success, &corpus)
		require.NoError(t, err)
		assert.Equal(t, "search:search", source)
		assert.Equal(t, "search", action)
		assert.Equal(t, "ownership rules", q)
		assert.Equal(t, 7, results)
		assert.Equal(t, 1, success)
		assert.Equal(t, hash("/home/user/.thebook/book"), corpus)
	})

	t.Run("log without logger is noop", func(t *testing.T) {
		Close()
		Log(Entry{Source: "test:cmd", Action: "test", Success: true})
	})

	t.Run("open is idempotent", func(t *testing.T) {
		require.NoError(t, Open())
		require.NoError(t, Open())
		Close()
	})
}

func TestBuilder(t *testing.T) {
	useTempDB(t)

	t.Run("success", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		Event("search:cat", "read").Path("/b/foreword.md").Write(nil)

		var source, path string
		var success int
		err := openDB(t).QueryRow("SELECT source, path, success FROM log ORDER BY id DESC LIMIT 1").
			Scan(&source, &path, &success)
		require.NoError(t, err)
		assert.Equal(t, "search:cat", source)
		assert.Equal(t, "/b/foreword.md", path)
		assert.Equal(t, 1, success)
	})

	t.Run("error", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		Event("corpus:fetch", "fetch").Write(errors.New("unexpected status 404"))

		var success int
		var msg string
		err := openDB(t).QueryRow("SELECT success, error FROM log ORDER BY id DESC LIMIT 1").
			Scan(&success, &msg)
		require.NoError(t, err)
		assert.Equal(t, 0, success)
		assert.Equal(t, "unexpected status 404", msg)
	})

	t.Run("detail", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		Event("reader:read", "read").Detail("queries", 12).Detail("last", "impl trait").Write(nil)

		var detail string
		require.NoError(t, openDB(t).QueryRow("SELECT detail FROM log ORDER BY id DESC LIMIT 1").Scan(&detail))
		assert.Contains(t, detail, "impl trait")
		assert.Contains(t, detail, "12")
	})

	t.Run("write failure is reported", func(t *testing.T) {
		require.NoError(t, Open())
		mu.Lock()
		l := global
		mu.Unlock()
		require.NoError(t, l.db.Close())

		var buf bytes.Buffer
		orig := stderr
		stderr = &buf
		defer func() { stderr = orig }()

		Event("search:ls", "list").Write(nil)
		assert.Contains(t, buf.String(), "audit log write failed")
		Close()
	})
}

func TestHash(t *testing.T) {
	h1 := hash("/home/user/.thebook/book")
	h2 := hash("/home/user/.thebook/book")
	h3 := hash("/srv/other-book")

	assert.Equal(t, h1, h2, "same input should produce same hash")
	assert.NotEqual(t, h1, h3, "different input should produce different hash")
	assert.Len(t, h1, 16, "BLAKE2b-64 should produce 16 hex chars")
}

func TestDBPath(t *testing.T) {
	orig := dbPathFunc
	dbPathFunc = defaultDBPath
	defer func() { dbPathFunc = orig }()

	assert.Equal(t, filepath.Join(config.BaseDir(), "log", "thebook-log.db"), DBPath())
}
