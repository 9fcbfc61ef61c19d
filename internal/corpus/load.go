package corpus

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TitleFromPath turns a file slug into a display title: the stem is split
// on "-" and the first character of every piece is upper-cased.
//
//	ch04-01-what-is-ownership.md -> "Ch04 01 What Is Ownership"
func TitleFromPath(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	pieces := strings.Split(stem, "-")
	for i, p := range pieces {
		r, size := utf8.DecodeRuneInString(p)
		if size == 0 {
			continue
		}
		pieces[i] = string(unicode.ToUpper(r)) + p[size:]
	}
	return strings.Join(pieces, " ")
}

// Load reads every regular file directly inside dir, in name order, and
// returns one Document per file. A read failure for any file aborts the
// load. Returns ErrNoCorpus if dir does not exist.
func Load(dir string) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNoCorpus, dir)
	}
	if err != nil {
		return nil, fmt.Errorf("reading corpus directory: %w", err)
	}

	// os.ReadDir already sorts by name; keep it explicit since corpus
	// order is the tie-break order for ranking.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	docs := make([]Document, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		p := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("could not read %s: %w", TitleFromPath(p), err)
		}
		docs = append(docs, New(p, TitleFromPath(p), string(data)))
	}
	return docs, nil
}

// Exists reports whether a corpus cache directory is present.
func Exists(dir string) bool {
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}
