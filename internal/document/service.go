// Package document provides the book operations behind service.Service.
// It keeps the loaded corpus in memory and ranks it on demand; the corpus
// itself is never modified by a search.
package document

import (
	"path/filepath"
	"sync"

	"github.com/jpl-au/thebook/internal/config"
	"github.com/jpl-au/thebook/internal/corpus"
	"github.com/jpl-au/thebook/internal/rank"
)

// Service serves a cached book loaded from a directory.
type Service struct {
	dir  string
	opts rank.Options

	mu   sync.RWMutex
	docs []corpus.Document
}

// New loads the corpus from the configured cache directory.
// Returns corpus.ErrNoCorpus if the book has not been fetched yet.
func New(cfg *config.Config) (*Service, error) {
	return Open(cfg.CorpusDir(), rank.Options{
		Workers: cfg.Workers(),
		Limit:   cfg.Limit(),
	})
}

// Open loads the corpus from dir with explicit ranking options.
func Open(dir string, opts rank.Options) (*Service, error) {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	s := &Service{dir: dir, opts: opts}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close is a no-op; the corpus holds no open resources after loading.
func (s *Service) Close() error {
	return nil
}

// Dir returns the cache directory.
func (s *Service) Dir() string {
	return s.dir
}

// Reload re-reads every file in the cache directory. On failure the
// previously loaded corpus is kept.
func (s *Service) Reload() error {
	docs, err := corpus.Load(s.dir)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.docs = docs
	s.mu.Unlock()
	return nil
}

// Documents returns the loaded corpus.
func (s *Service) Documents() []corpus.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docs
}
