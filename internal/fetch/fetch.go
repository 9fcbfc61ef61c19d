// Package fetch downloads the book into the local cache directory. The
// remote side is a GitHub git tree listing plus raw file URLs. Files are
// fetched one at a time with no retries; the first failure aborts the run.
package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/jpl-au/thebook/internal/diff"
	"github.com/jpl-au/thebook/internal/progress"
)

var (
	// ErrStatus is returned when the server answers with a non-2xx status.
	ErrStatus = errors.New("unexpected HTTP status")
	// ErrUnsafePath is returned for tree entries that would escape the cache.
	ErrUnsafePath = errors.New("unsafe file path")
)

// defaultTimeout bounds each HTTP request.
const defaultTimeout = 30 * time.Second

// Options configures a fetch.
type Options struct {
	TreeURL   string // git tree listing (JSON)
	RawURL    string // base URL raw files are served from; tree paths are appended
	Prefix    string // only tree paths starting with this are fetched
	Suffix    string // only tree paths ending with this are fetched
	UserAgent string // sent with every request
	Dir       string // cache directory files are written to

	DryRun bool // list files without downloading
	Diff   bool // compare each download with the cached copy

	// Client is used for requests; nil uses a client with a 30s timeout.
	Client *http.Client
	// Progress receives the progress bar; nil uses stderr.
	Progress io.Writer
}

// File is one page of the book.
type File struct {
	TreePath string // path in the remote tree (e.g., "src/ch01-00-getting-started.md")
	Name     string // path relative to the cache directory
	URL      string // raw download URL
}

// Result contains the outcome of a fetch.
type Result struct {
	Files   []File        // files selected from the tree, in tree order
	Written int           // files written to the cache
	Changes []diff.Result // files whose content differs from the cache (Diff only)
}

type treeResponse struct {
	Tree []struct {
		Path string `json:"path"`
		Type string `json:"type"`
	} `json:"tree"`
}

// List fetches the tree listing and returns the book pages it contains.
func List(ctx context.Context, opts Options) ([]File, error) {
	body, err := get(ctx, opts, opts.TreeURL)
	if err != nil {
		return nil, fmt.Errorf("listing book: %w", err)
	}

	var tree treeResponse
	if err := json.Unmarshal(body, &tree); err != nil {
		return nil, fmt.Errorf("decoding tree listing: %w", err)
	}

	var files []File
	for _, e := range tree.Tree {
		if e.Type == "tree" || !strings.HasPrefix(e.Path, opts.Prefix) || !strings.HasSuffix(e.Path, opts.Suffix) {
			continue
		}
		name, err := cacheName(e.Path)
		if err != nil {
			return nil, err
		}
		files = append(files, File{
			TreePath: e.Path,
			Name:     name,
			URL:      joinURL(opts.RawURL, e.Path),
		})
	}
	return files, nil
}

// Run lists the book and downloads every page into opts.Dir.
func Run(ctx context.Context, opts Options) (Result, error) {
	var result Result

	spin := progress.NewSpinner("Listing book")
	spin.Start()
	files, err := List(ctx, opts)
	spin.Stop()
	if err != nil {
		return result, err
	}
	result.Files = files

	if opts.DryRun {
		return result, nil
	}

	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return result, fmt.Errorf("creating cache directory: %w", err)
	}

	w := opts.Progress
	if w == nil {
		w = os.Stderr
	}
	bar := progress.NewWriter(w, "Downloading", len(files))
	defer bar.Done()

	for _, f := range files {
		body, err := get(ctx, opts, f.URL)
		if err != nil {
			return result, fmt.Errorf("downloading %s: %w", f.TreePath, err)
		}

		dest := filepath.Join(opts.Dir, f.Name)
		if opts.Diff {
			// A missing cached copy diffs against empty content.
			old, err := os.ReadFile(dest)
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				return result, fmt.Errorf("reading cached %s: %w", f.Name, err)
			}
			if r := diff.Compute(string(old), string(body), dest, f.URL); r.Changed() {
				result.Changes = append(result.Changes, r)
			}
		}

		if err := os.WriteFile(dest, body, 0644); err != nil {
			return result, fmt.Errorf("writing %s: %w", f.Name, err)
		}
		result.Written++
		bar.Increment()
	}

	return result, nil
}

// get performs a GET request and returns the whole body.
func get(ctx context.Context, opts Options, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if opts.UserAgent != "" {
		req.Header.Set("User-Agent", opts.UserAgent)
	}

	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned %d", ErrStatus, url, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// cacheName drops the first path segment of a tree path ("src/a.md" -> "a.md")
// and rejects names that would land outside the cache directory. The cache
// is flat, so nested pages are joined with "-" ("src/x/a.md" -> "x-a.md").
func cacheName(treePath string) (string, error) {
	_, rest, ok := strings.Cut(treePath, "/")
	if !ok {
		rest = treePath
	}
	if rest == "" || !filepath.IsLocal(filepath.FromSlash(rest)) {
		return "", fmt.Errorf("%w: %q", ErrUnsafePath, treePath)
	}
	return strings.ReplaceAll(path.Clean(rest), "/", "-"), nil
}

func joinURL(base, p string) string {
	if base == "" || strings.HasSuffix(base, "/") {
		return base + p
	}
	return base + "/" + p
}
