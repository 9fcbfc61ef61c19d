// Package format provides output formatting utilities for CLI display.
//
// Command implementations hand documents to this package and leave column
// alignment and snippet trimming to it.
package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/jpl-au/thebook/internal/corpus"
)

// snippetWidth is the longest paragraph line shown in search results.
const snippetWidth = 80

// humanSize formats a byte count as human-readable (e.g., "1.2K", "3.4M").
func humanSize(bytes int64) string {
	const (
		_        = iota
		KB int64 = 1 << (10 * iota)
		MB
		GB
	)
	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.1fG", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.1fM", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1fK", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}

// List prints document titles, one per line.
func List(w io.Writer, docs []corpus.Document) error {
	for _, d := range docs {
		if _, err := fmt.Fprintln(w, d.Title); err != nil {
			return err
		}
	}
	return nil
}

// Long prints documents with size, paragraph count, and file name.
//
// Fixed-width columns come first; the title goes last so long titles do not
// push the other columns out of alignment.
func Long(w io.Writer, docs []corpus.Document) error {
	if len(docs) == 0 {
		return nil
	}

	maxName := 4 // "FILE"
	for _, d := range docs {
		maxName = max(maxName, len(d.Name()))
	}

	fmt.Fprintf(w, "%6s  %5s  %-*s  %s\n", "SIZE", "PARAS", maxName, "FILE", "TITLE")
	for _, d := range docs {
		fmt.Fprintf(w, "%6s  %5d  %-*s  %s\n",
			humanSize(int64(len(d.Text))), len(d.Paragraphs), maxName, d.Name(), d.Title)
	}
	return nil
}

// Results prints ranked documents with their relevancy. When paragraphs is
// positive, the best scoring paragraphs of each document follow it.
func Results(w io.Writer, docs []corpus.Document, paragraphs int) error {
	for i, d := range docs {
		if i > 0 && paragraphs > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%10d  %s\n", d.Relevancy, d.Title)
		if paragraphs <= 0 {
			continue
		}
		for j, p := range d.Paragraphs {
			if j == paragraphs || p.Relevancy == 0 {
				break
			}
			fmt.Fprintf(w, "%10d    %s\n", p.Relevancy, Snippet(p.Text))
		}
	}
	return nil
}

// Snippet returns the first non-empty line of text, trimmed to fit one
// terminal row.
func Snippet(text string) string {
	line := ""
	for l := range strings.SplitSeq(text, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			line = l
			break
		}
	}
	r := []rune(line)
	if len(r) > snippetWidth {
		return string(r[:snippetWidth-3]) + "..."
	}
	return line
}
