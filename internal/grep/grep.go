// Package grep provides regex line matching over the cached book.
//
// Ranking answers "which pages are about this"; grep answers "where exactly
// does this appear", with the usual Unix flags (-i, -v, -l, -c, -C).
package grep

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/jpl-au/thebook/internal/corpus"
)

// maxLineLength bounds a single scanned line.
const maxLineLength = 1024 * 1024

// Options configures a grep operation.
type Options struct {
	IgnoreCase bool // -i
	Invert     bool // -v, select non-matching lines
	NamesOnly  bool // -l, print file names only
	CountOnly  bool // -c, print match counts per page
	Context    int  // -C, lines of context around matches
}

// Match is a single matching line.
type Match struct {
	Line    int    // 1-indexed
	Content string
}

// DocMatch holds the matches within one page.
type DocMatch struct {
	Document corpus.Document
	Matches  []Match
}

// Result contains the pages with at least one match, in book order.
type Result struct {
	Hits []DocMatch
}

// Search matches pattern against every line of docs.
func Search(ctx context.Context, docs []corpus.Document, pattern string, opts Options) (Result, error) {
	var result Result

	if opts.IgnoreCase {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return result, fmt.Errorf("invalid regex: %w", err)
	}

	for _, d := range docs {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		matches, err := matchLines(re, d.Text, opts.Invert)
		if err != nil {
			return result, fmt.Errorf("scanning %s: %w", d.Name(), err)
		}
		if len(matches) > 0 {
			result.Hits = append(result.Hits, DocMatch{Document: d, Matches: matches})
		}
	}
	return result, nil
}

// Write prints result in grep's output format.
func Write(w io.Writer, result Result, opts Options) {
	switch {
	case opts.NamesOnly:
		for _, hit := range result.Hits {
			fmt.Fprintln(w, hit.Document.Name())
		}
	case opts.CountOnly:
		for _, hit := range result.Hits {
			fmt.Fprintf(w, "%s:%d\n", hit.Document.Name(), len(hit.Matches))
		}
	case opts.Context > 0:
		for _, hit := range result.Hits {
			writeContext(w, hit, opts.Context)
		}
	default:
		for _, hit := range result.Hits {
			for _, m := range hit.Matches {
				fmt.Fprintf(w, "%s:%d:%s\n", hit.Document.Name(), m.Line, m.Content)
			}
		}
	}
}

// writeContext prints matches with n surrounding lines. Matching lines use
// ":" as separator, context lines "-", and "--" separates groups that are
// not contiguous.
func writeContext(w io.Writer, hit DocMatch, n int) {
	name := hit.Document.Name()
	lines := strings.Split(strings.TrimSuffix(hit.Document.Text, "\n"), "\n")
	matched := make(map[int]bool, len(hit.Matches))
	for _, m := range hit.Matches {
		matched[m.Line] = true
	}
	printed := make(map[int]bool)
	last := -1

	for _, m := range hit.Matches {
		start := max(m.Line-n-1, 0)
		end := min(m.Line+n, len(lines))

		if last >= 0 && start > last+1 {
			fmt.Fprintln(w, "--")
		}
		for i := start; i < end; i++ {
			if printed[i] {
				continue
			}
			printed[i] = true
			sep := "-"
			if matched[i+1] {
				sep = ":"
			}
			fmt.Fprintf(w, "%s%s%d%s%s\n", name, sep, i+1, sep, strings.TrimSuffix(lines[i], "\r"))
			last = i
		}
	}
}

// matchLines returns the lines of text that match re, or that do not match
// when invert is set.
func matchLines(re *regexp.Regexp, text string, invert bool) ([]Match, error) {
	var matches []Match
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 64*1024), maxLineLength)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if re.MatchString(line) != invert {
			matches = append(matches, Match{Line: n, Content: line})
		}
	}
	return matches, scanner.Err()
}
