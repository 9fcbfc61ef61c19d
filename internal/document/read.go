package document

import (
	"github.com/jpl-au/thebook/internal/corpus"
)

// Find returns a document by title, path, or file name.
func (s *Service) Find(name string) (corpus.Document, error) {
	return corpus.Find(s.Documents(), name)
}
