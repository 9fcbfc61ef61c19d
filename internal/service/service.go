// Package service defines the shared interface for book operations.
// Commands and extensions depend on this interface rather than concrete
// implementations, so they can be tested against a fixed corpus.
package service

import (
	"context"

	"github.com/jpl-au/thebook/internal/corpus"
)

// Service defines all operations on the cached book.
//
// Extensions obtain a Service through extension.Context. The concrete
// implementation lives in package document; always call Close() when done.
//
// Example:
//
//	svc, err := document.New(cfg)
//	if err != nil {
//	    return err
//	}
//	defer svc.Close()
//	docs, err := svc.Search(ctx, "borrow checker", 5)
type Service interface {
	// Close releases resources held by the service.
	Close() error

	// Dir returns the cache directory the corpus was loaded from.
	Dir() string

	// Documents returns the corpus in load order (file name order).
	// Callers must treat the result as read-only.
	Documents() []corpus.Document

	// Find returns the document whose title (case-insensitive), path,
	// or file name matches name. Returns corpus.ErrNotFound otherwise.
	Find(name string) (corpus.Document, error)

	// Search ranks the whole corpus for query and returns scored copies,
	// most relevant first, without documents that did not match. An empty
	// query returns the corpus unranked. A positive limit caps the number
	// of documents returned; zero uses the configured limit.
	Search(ctx context.Context, query string, limit int) ([]corpus.Document, error)

	// Rank ranks the given documents for query using the configured
	// worker count. It has the shape of live.RankFunc.
	Rank(ctx context.Context, docs []corpus.Document, query string) ([]corpus.Document, error)

	// Reload re-reads the corpus from disk, picking up a fresh fetch.
	Reload() error
}
