// Package query turns a free-text query into the candidate phrases that the
// scorer looks for. Phrases are ordered subsets of the query's words; short
// queries try every subset, long queries only the near-complete ones.
package query

import "strings"

// maxDropped is how many words a candidate phrase may leave out of a long
// query. Queries of up to maxDropped words try every non-empty subset.
const maxDropped = 3

// Normalize trims and lower-cases a query.
func Normalize(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// Words returns the normalized words of q. Runs of spaces produce no
// empty words.
func Words(q string) []string {
	parts := strings.Split(Normalize(q), " ")
	words := parts[:0]
	for _, w := range parts {
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}

// Bounds returns the inclusive range of subset sizes tried for n words.
func Bounds(n int) (lower, upper int) {
	lower = 1
	if n >= maxDropped {
		lower = n - maxDropped
	}
	if lower < 1 {
		lower = 1
	}
	return lower, n
}

// Expand returns the deduplicated candidate phrases for q, in order of first
// insertion: by subset size ascending, then in lexicographic order of word
// positions. Each phrase keeps the relative order of its words. An empty
// query yields no phrases.
func Expand(q string) []string {
	words := Words(q)
	lower, upper := Bounds(len(words))

	var phrases []string
	seen := make(map[string]struct{})
	for k := lower; k <= upper; k++ {
		combinations(len(words), k, func(idx []int) {
			parts := make([]string, len(idx))
			for i, j := range idx {
				parts[i] = words[j]
			}
			p := strings.Join(parts, " ")
			if _, dup := seen[p]; dup {
				return
			}
			seen[p] = struct{}{}
			phrases = append(phrases, p)
		})
	}
	return phrases
}

// combinations calls fn with every k-subset of [0, n) as strictly increasing
// indices, in lexicographic order. fn must not retain idx.
func combinations(n, k int, fn func(idx []int)) {
	if k <= 0 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		fn(idx)

		// Find the rightmost index that can still move right.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
