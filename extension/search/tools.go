// tools.go implements the MCP tools of the search extension.
//
// Results are returned as JSON for easy LLM parsing. Search results carry
// the best paragraphs so a client can answer without a follow-up read.

package search

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jpl-au/thebook/extension"
	"github.com/jpl-au/thebook/internal/format"
	"github.com/jpl-au/thebook/internal/grep"
	"github.com/jpl-au/thebook/internal/log"
	mcpserver "github.com/jpl-au/thebook/internal/mcp"
)

// Defaults for MCP search results, kept small to save client context.
const (
	defaultToolLimit      = 10
	defaultToolParagraphs = 3
)

func searchTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool("thebook_search",
			mcp.WithDescription("Search The Rust Programming Language book. Returns pages ranked by relevancy with their best matching paragraphs. Matching is case-sensitive against the page text; queries are lower-cased."),
			mcp.WithString("query", mcp.Required(), mcp.Description("Search words, e.g. 'borrow checker'")),
			mcp.WithNumber("limit", mcp.Description("Maximum pages to return (default 10)")),
			mcp.WithNumber("paragraphs", mcp.Description("Paragraphs per page (default 3)")),
		),
		Handler: handleSearch,
	}
}

func grepTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool("thebook_grep",
			mcp.WithDescription("Find exact lines in the book with a regular expression (Go RE2 syntax). Returns matching lines with page names and line numbers, in reading order."),
			mcp.WithString("pattern", mcp.Required(), mcp.Description("Regular expression, e.g. 'impl.*Iterator'")),
			mcp.WithBoolean("ignore_case", mcp.Description("Case-insensitive matching")),
		),
		Handler: handleGrep,
	}
}

func readTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool("thebook_read",
			mcp.WithDescription("Read a page of the book as markdown"),
			mcp.WithString("name", mcp.Required(), mcp.Description("Page title (case-insensitive) or file name, as returned by thebook_list")),
		),
		Handler: handleRead,
	}
}

func listTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool("thebook_list",
			mcp.WithDescription("List every page of the book in reading order"),
		),
		Handler: handleList,
	}
}

func handleSearch(ctx context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query is required"), nil //nolint:nilerr
	}
	limit := mcpserver.GetInt(req, "limit", defaultToolLimit)
	paragraphs := mcpserver.GetInt(req, "paragraphs", defaultToolParagraphs)

	docs, err := extCtx.Service().Search(ctx, query, max(limit, 0))

	log.Event("mcp:search", "search").Query(query).Results(len(docs)).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcpserver.JSONResult(format.ListJSON(docs, max(paragraphs, 0), false))
}

func handleGrep(ctx context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pattern, err := req.RequireString("pattern")
	if err != nil {
		return mcp.NewToolResultError("pattern is required"), nil //nolint:nilerr
	}
	opts := grep.Options{IgnoreCase: mcpserver.GetBool(req, "ignore_case", false)}

	result, err := grep.Search(ctx, extCtx.Service().Documents(), pattern, opts)

	log.Event("mcp:grep", "search").Query(pattern).Results(len(result.Hits)).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcpserver.JSONResult(format.HitsJSON(result.Hits, true))
}

func handleRead(_ context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name is required"), nil //nolint:nilerr
	}

	doc, err := extCtx.Service().Find(name)

	log.Event("mcp:read", "read").Path(name).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(doc.Text), nil
}

func handleList(_ context.Context, extCtx extension.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	docs := extCtx.Service().Documents()

	log.Event("mcp:list", "list").Results(len(docs)).Write(nil)

	return mcpserver.JSONResult(format.ListJSON(docs, 0, false))
}
