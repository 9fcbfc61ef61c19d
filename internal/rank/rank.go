// Package rank scores documents against a query and orders them by
// relevancy. Every call starts from the unscored corpus: scored values are
// returned as copies, so nothing carries over from one query to the next.
package rank

import (
	"context"
	"slices"

	"github.com/jpl-au/thebook/internal/corpus"
	"github.com/jpl-au/thebook/internal/query"
	"golang.org/x/sync/errgroup"
)

// Options configures a ranking run.
type Options struct {
	// Workers is the number of documents scored concurrently. Values below 2
	// score sequentially on the calling goroutine. Results are identical
	// either way; documents share no mutable state while being scored.
	Workers int

	// Limit caps the number of returned documents (0 = no limit).
	Limit int
}

// Document returns a copy of d scored against the candidate phrases. The
// copy's paragraphs are ordered by descending relevancy, ties keeping their
// original order, and its relevancy is the sum of the paragraph relevancies.
// d itself is not modified.
func Document(d corpus.Document, candidates []string) corpus.Document {
	scored := d
	scored.Relevancy = 0
	scored.Paragraphs = make([]corpus.Paragraph, len(d.Paragraphs))
	for i, p := range d.Paragraphs {
		p.Relevancy = Score(p, candidates)
		scored.Paragraphs[i] = p
		scored.Relevancy += p.Relevancy
	}
	slices.SortStableFunc(scored.Paragraphs, func(a, b corpus.Paragraph) int {
		return cmpDesc(a.Relevancy, b.Relevancy)
	})
	return scored
}

// Rank scores every document in docs against q and returns the documents
// with non-zero relevancy, ordered by descending relevancy with ties in
// corpus order. An empty (normalized) query returns docs unranked, in
// their original order.
//
// The only error is ctx.Err() when a concurrent run is cancelled, in which
// case no partial result is returned.
func Rank(ctx context.Context, docs []corpus.Document, q string, opts Options) ([]corpus.Document, error) {
	if query.Normalize(q) == "" {
		return limit(slices.Clone(docs), opts.Limit), nil
	}

	candidates := query.Expand(q)
	scored := make([]corpus.Document, len(docs))

	if opts.Workers < 2 {
		for i, d := range docs {
			scored[i] = Document(d, candidates)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(opts.Workers)
		for i, d := range docs {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				scored[i] = Document(d, candidates)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	results := scored[:0]
	for _, d := range scored {
		if d.Relevancy > 0 {
			results = append(results, d)
		}
	}
	slices.SortStableFunc(results, func(a, b corpus.Document) int {
		return cmpDesc(a.Relevancy, b.Relevancy)
	})
	return limit(results, opts.Limit), nil
}

func limit(docs []corpus.Document, n int) []corpus.Document {
	if n > 0 && len(docs) > n {
		return docs[:n]
	}
	return docs
}

// cmpDesc orders larger values first.
func cmpDesc(a, b uint64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	default:
		return 0
	}
}
