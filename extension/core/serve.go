// serve.go implements the "thebook serve" command for MCP server operation.
//
// Unlike other commands that run and exit, serve blocks handling MCP
// requests over stdio. It is corpus-optional: the server starts without a
// downloaded book and its tools report that one is needed.

package core

import (
	"github.com/spf13/cobra"

	"github.com/jpl-au/thebook/cmd"
	"github.com/jpl-au/thebook/internal/log"
	"github.com/jpl-au/thebook/internal/mcp"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM integration.

Tools: thebook_search, thebook_read, thebook_list, thebook_guide.
Resources: thebook://documents/{name}`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	ext, err := cmd.Extensions()
	if err != nil {
		return err
	}
	err = mcp.Serve(ext)
	log.Event("core:serve", "stop").Write(err)
	return err
}
