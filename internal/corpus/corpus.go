// Package corpus holds the in-memory document model for a cached book.
// Documents are created once at load time and never mutated afterwards;
// ranking produces scored copies (see package rank) so the loaded corpus
// can be re-ranked from scratch for every query.
package corpus

import (
	"errors"
	"path/filepath"
	"strings"
)

var (
	// ErrNotFound is returned when no document matches a title or path.
	ErrNotFound = errors.New("document not found")
	// ErrNoCorpus is returned when the cache directory does not exist yet.
	ErrNoCorpus = errors.New("corpus not downloaded")
)

// Paragraph is a heading-delimited slice of a document's text.
type Paragraph struct {
	Index     int    // position in the document, in order of appearance
	Text      string // raw paragraph text, lines joined with "\n"
	Relevancy uint64 // query-dependent, zero until scored
}

// TitleLine returns the first line of the paragraph, or "" when empty.
// This is the literal first line regardless of whether it is a heading.
func (p Paragraph) TitleLine() string {
	line, _, _ := strings.Cut(p.Text, "\n")
	return strings.TrimSuffix(line, "\r")
}

// Document is one cached file of the corpus.
type Document struct {
	Path       string      // filesystem path of the cached file
	Title      string      // derived from the path via TitleFromPath
	Text       string      // full raw text, independent of Paragraphs
	Paragraphs []Paragraph // segmented at load time, see Segment
	Relevancy  uint64      // sum of paragraph relevancies, zero until scored
}

// New builds a document from a (path, title, raw text) triple,
// segmenting the text into paragraphs.
func New(path, title, text string) Document {
	return Document{
		Path:       path,
		Title:      title,
		Text:       text,
		Paragraphs: Segment(text),
	}
}

// Name returns the file name of the document (e.g. "ch04-01-what-is-ownership.md").
func (d Document) Name() string {
	return filepath.Base(d.Path)
}

// Find returns the first document whose title matches (case-insensitive),
// or whose path or file name equals s.
func Find(docs []Document, s string) (Document, error) {
	for _, d := range docs {
		if strings.EqualFold(d.Title, s) || d.Path == s || d.Name() == s {
			return d, nil
		}
	}
	return Document{}, ErrNotFound
}
