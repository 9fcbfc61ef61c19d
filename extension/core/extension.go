// Package core provides the core extension for thebook.
// It registers commands: config, serve, guide, version.
package core

import (
	"github.com/spf13/cobra"

	"github.com/jpl-au/thebook/extension"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct{}

var (
	_ extension.Extension      = (*Extension)(nil)
	_ extension.CorpusOptional = (*Extension)(nil)
)

// Name returns "core".
func (e *Extension) Name() string { return "core" }

// Commands returns the core CLI commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newConfigCmd(),
		newServeCmd(),
		newGuideCmd(),
		newVersionCmd(),
	}
}

// MCPTools returns nil; the guide tool is built into the MCP server.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}

// NoCorpusCommands returns commands that work without a downloaded book.
// serve starts without a corpus and reports it through its tools.
// version only displays build info.
func (e *Extension) NoCorpusCommands() []string {
	return []string{"serve", "version"}
}
