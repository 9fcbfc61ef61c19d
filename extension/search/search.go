// Package search provides ranked search and page access for the cached book.
// Registers commands: search, grep, cat, ls. Registers MCP tools:
// thebook_search, thebook_grep, thebook_read, thebook_list.
package search

import (
	"github.com/spf13/cobra"

	"github.com/jpl-au/thebook/extension"
	"github.com/jpl-au/thebook/internal/config"
	"github.com/jpl-au/thebook/internal/service"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the search extension.
type Extension struct {
	svc service.Service
	cfg *config.Config
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "search".
func (e *Extension) Name() string { return "search" }

// Init connects to the shared service.
func (e *Extension) Init(ctx extension.Context) error {
	e.svc = ctx.Service()
	e.cfg = ctx.Config()
	return nil
}

// Commands returns search, grep, cat, and ls.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newSearchCmd(),
		e.newGrepCmd(),
		e.newCatCmd(),
		e.newLsCmd(),
	}
}

// MCPTools returns the search, grep, read, and list tools.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{
		searchTool(),
		grepTool(),
		readTool(),
		listTool(),
	}
}
