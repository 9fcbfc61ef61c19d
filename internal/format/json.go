package format

import (
	"github.com/jpl-au/thebook/internal/corpus"
	"github.com/jpl-au/thebook/internal/grep"
)

// DocJSON is the JSON representation of a document for CLI and MCP output.
type DocJSON struct {
	Title      string          `json:"title"`
	Name       string          `json:"name"`
	Path       string          `json:"path"`
	Relevancy  uint64          `json:"relevancy"`
	Size       int             `json:"size"`
	Paragraphs []ParagraphJSON `json:"paragraphs,omitempty"`
	Content    string          `json:"content,omitempty"`
}

// ParagraphJSON is the JSON representation of a scored paragraph.
type ParagraphJSON struct {
	Index     int    `json:"index"`
	Relevancy uint64 `json:"relevancy"`
	Text      string `json:"text"`
}

// ToJSON converts d for output. Up to paragraphs matching paragraphs are
// included, in their ranked order; content adds the full page text.
func ToJSON(d corpus.Document, paragraphs int, content bool) DocJSON {
	j := DocJSON{
		Title:     d.Title,
		Name:      d.Name(),
		Path:      d.Path,
		Relevancy: d.Relevancy,
		Size:      len(d.Text),
	}
	for _, p := range d.Paragraphs {
		if len(j.Paragraphs) == paragraphs || p.Relevancy == 0 {
			break
		}
		j.Paragraphs = append(j.Paragraphs, ParagraphJSON{
			Index:     p.Index,
			Relevancy: p.Relevancy,
			Text:      p.Text,
		})
	}
	if content {
		j.Content = d.Text
	}
	return j
}

// ListJSON converts a slice of documents with ToJSON.
func ListJSON(docs []corpus.Document, paragraphs int, content bool) []DocJSON {
	out := make([]DocJSON, len(docs))
	for i, d := range docs {
		out[i] = ToJSON(d, paragraphs, content)
	}
	return out
}

// GrepJSON is the JSON representation of the grep matches in one page.
type GrepJSON struct {
	Title   string      `json:"title"`
	Name    string      `json:"name"`
	Count   int         `json:"count"`
	Matches []MatchJSON `json:"matches,omitempty"`
}

// MatchJSON is a single matching line.
type MatchJSON struct {
	Line    int    `json:"line"`
	Content string `json:"content"`
}

// HitsJSON converts grep hits for output. Lines are left out when
// withLines is false.
func HitsJSON(hits []grep.DocMatch, withLines bool) []GrepJSON {
	out := make([]GrepJSON, len(hits))
	for i, h := range hits {
		out[i] = GrepJSON{
			Title: h.Document.Title,
			Name:  h.Document.Name(),
			Count: len(h.Matches),
		}
		if !withLines {
			continue
		}
		for _, m := range h.Matches {
			out[i].Matches = append(out[i].Matches, MatchJSON{Line: m.Line, Content: m.Content})
		}
	}
	return out
}
