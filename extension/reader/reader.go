// Package reader provides the read command: the interactive live-search
// reader over the cached book.
package reader

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jpl-au/thebook/cmd"
	"github.com/jpl-au/thebook/extension"
	"github.com/jpl-au/thebook/internal/config"
	"github.com/jpl-au/thebook/internal/corpus"
	"github.com/jpl-au/thebook/internal/document"
	"github.com/jpl-au/thebook/internal/fetch"
	"github.com/jpl-au/thebook/internal/log"
	"github.com/jpl-au/thebook/internal/reader"
	"github.com/jpl-au/thebook/internal/service"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the reader extension.
type Extension struct {
	svc service.Service
	cfg *config.Config
}

var (
	_ extension.Extension      = (*Extension)(nil)
	_ extension.Initializable  = (*Extension)(nil)
	_ extension.CorpusOptional = (*Extension)(nil)
)

// Name returns "reader".
func (e *Extension) Name() string { return "reader" }

// Init connects to the shared service.
func (e *Extension) Init(ctx extension.Context) error {
	e.svc = ctx.Service()
	e.cfg = ctx.Config()
	return nil
}

// NoCorpusCommands returns read, which downloads the book itself when the
// cache is empty.
func (e *Extension) NoCorpusCommands() []string {
	return []string{"read"}
}

// Commands returns read.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newReadCmd(),
	}
}

// MCPTools returns nil; the reader is interactive only.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}

func (e *Extension) newReadCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "read [query...]",
		Short: "Open the interactive reader",
		Long: `Open the book in a full-screen reader with live, ranked search.

Type to search; results update once you pause typing. Ctrl-J / Ctrl-K move
through the directory, Ctrl-D / Ctrl-U scroll the page, Ctrl-P shows the
ranked paragraphs of the page, Ctrl-E exits. See "thebook guide reader".

  thebook read
  thebook read ownership    # start with a query

The book is downloaded first if it has not been fetched yet.`,
		RunE: e.runRead,
	}
	c.Flags().String(extension.FlagStyle, "", "Glamour style (default render.style)")
	return c
}

func (e *Extension) runRead(c *cobra.Command, args []string) error {
	// read skips the eager corpus load, so initialise extensions here.
	if _, err := cmd.Extensions(); err != nil {
		return cmd.PrintJSONError(err)
	}
	svc, err := e.service(c)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("read: %w", err))
	}

	style, _ := c.Flags().GetString(extension.FlagStyle)
	if style == "" {
		style = e.cfg.Style()
	}

	opts := reader.Options{
		Style:        style,
		PollInterval: e.cfg.PollInterval(),
		Query:        strings.Join(args, " "),
	}

	result, err := reader.Run(c.Context(), os.Stdin, os.Stdout, svc.Documents(), svc.Rank, opts)

	log.Event("reader:read", "read").
		Query(result.Query).
		Detail("searches", result.Searches).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("read: %w", err))
	}
	return nil
}

// service returns the loaded book, fetching it into the cache directory
// first when nothing has been downloaded.
func (e *Extension) service(c *cobra.Command) (service.Service, error) {
	dir := e.cfg.CorpusDir()
	if e.svc != nil && corpus.Exists(dir) {
		return e.svc, nil
	}

	fmt.Fprintf(os.Stderr, "No cached book in %s, downloading...\n", dir)
	result, err := fetch.Run(c.Context(), fetch.Options{
		TreeURL:   e.cfg.TreeURL(),
		RawURL:    e.cfg.RawURL(),
		Prefix:    e.cfg.Prefix(),
		Suffix:    e.cfg.Suffix(),
		UserAgent: e.cfg.UserAgent(),
		Dir:       dir,
	})

	log.Event("corpus:fetch", "fetch").
		Path(dir).
		Results(result.Written).
		Detail("files", len(result.Files)).
		Detail("auto", true).
		Write(err)

	if err != nil {
		return nil, fmt.Errorf("fetching book: %w", err)
	}

	s, err := document.New(e.cfg)
	if err != nil {
		return nil, err
	}
	log.SetCorpus(s.Dir())
	e.svc = s
	return s, nil
}
