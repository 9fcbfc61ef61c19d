// Package log provides centralised audit logging for thebook operations.
// Logs are stored in ~/.thebook/log/thebook-log.db and record every CLI
// command, reader session and MCP tool invocation.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("search:search", "search").
//		Query(q).
//		Results(len(docs)).
//		Write(err)
//
//	log.Event("corpus:fetch", "fetch").
//		Path(dir).
//		Detail("files", n).
//		Write(err)
//
// The source parameter follows the format "{extension}:{command}" for CLI
// commands or "mcp:{tool}" for MCP tools. Examples: "search:cat",
// "reader:read", "mcp:search".
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source string // e.g., "search:search", "mcp:read"
	Action string // verb: search, read, list, fetch, etc.
	Path   string // document or directory the operation targeted
	Query  string // search query, if any

	// Results is the number of documents returned or written.
	Results int

	// Timing
	Start int64 // unix millis when Event() called
	End   int64 // unix millis when Write() called

	Success bool           // whether operation succeeded
	Error   string         // error message if failed
	Detail  map[string]any // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write]
// to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
//
// The source identifies where the operation originated:
//   - CLI commands: "{extension}:{command}" (e.g., "search:cat")
//   - MCP tools: "mcp:{tool}" (e.g., "mcp:search")
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().UnixMilli(),
		},
	}
}

// Path sets the document or directory this operation affects.
func (b *Builder) Path(path string) *Builder {
	b.entry.Path = path
	return b
}

// Query sets the search query.
func (b *Builder) Query(q string) *Builder {
	b.entry.Query = q
	return b
}

// Results sets how many documents the operation produced.
func (b *Builder) Results(n int) *Builder {
	b.entry.Results = n
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
// Can be called multiple times to add multiple details.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry to the database, deriving success/failure from err.
//
// Example:
//
//	docs, err := svc.Search(ctx, q, 0)
//	log.Event("search:search", "search").Query(q).Results(len(docs)).Write(err)
//	if err != nil {
//		return err
//	}
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().UnixMilli()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetCorpus sets the corpus identifier for subsequent log entries.
// The dir should be the absolute path of the corpus cache directory.
func SetCorpus(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.corpus = hash(dir)
	}
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
