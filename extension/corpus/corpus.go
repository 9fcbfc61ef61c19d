// Package corpus provides the fetch command that downloads the book.
package corpus

import (
	"github.com/spf13/cobra"

	"github.com/jpl-au/thebook/extension"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the corpus extension.
type Extension struct{}

var (
	_ extension.Extension      = (*Extension)(nil)
	_ extension.CorpusOptional = (*Extension)(nil)
)

// Name returns "corpus".
func (e *Extension) Name() string { return "corpus" }

// Commands returns fetch.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newFetchCmd(),
	}
}

// MCPTools returns nil; downloading is a CLI-only operation.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}

// NoCorpusCommands returns fetch, which creates the corpus.
func (e *Extension) NoCorpusCommands() []string {
	return []string{"fetch"}
}
