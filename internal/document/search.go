package document

import (
	"context"

	"github.com/jpl-au/thebook/internal/corpus"
	"github.com/jpl-au/thebook/internal/rank"
)

// Search ranks the full corpus for query.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]corpus.Document, error) {
	opts := s.opts
	if limit > 0 {
		opts.Limit = limit
	}
	return rank.Rank(ctx, s.Documents(), query, opts)
}

// Rank ranks docs for query without applying the result limit. The live
// reader shows every matching document.
func (s *Service) Rank(ctx context.Context, docs []corpus.Document, query string) ([]corpus.Document, error) {
	opts := s.opts
	opts.Limit = 0
	return rank.Rank(ctx, docs, query, opts)
}
