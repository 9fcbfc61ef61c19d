// Package extension provides the plugin architecture for thebook. Extensions
// group related functionality (commands, MCP tools) and register at init
// time, so new features do not need changes to the root command.
package extension

import (
	"github.com/spf13/cobra"
)

// Extension defines the contract for thebook extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command

	// MCPTools returns MCP tools to register with the server.
	MCPTools() []MCPTool
}

// Initializable extensions can perform setup once the corpus is loaded.
type Initializable interface {
	Extension
	Init(ctx Context) error
}

// CorpusOptional is an optional interface for extensions with commands that
// don't need the book to be downloaded. Commands returned by
// NoCorpusCommands() will not trigger corpus loading in PersistentPreRunE.
//
// Use cases:
// 1. Bootstrap commands (like fetch) that run before a corpus exists
// 2. Commands that manage their own service lifecycle (serve)
// 3. Utility commands that never read the book (version)
type CorpusOptional interface {
	NoCorpusCommands() []string
}
