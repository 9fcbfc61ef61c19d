// mcp.go defines types for MCP tool registration by extensions.
//
// Not all extensions need MCP tools; some only provide CLI commands.
// MCPTool pairs the tool definition with its handler. The handler receives
// the Go context for cancellation and the extension Context for service access.

package extension

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// MCPTool pairs an MCP tool definition with its handler.
type MCPTool struct {
	Tool    mcp.Tool
	Handler MCPHandler
}

// MCPHandler processes MCP tool requests.
// The server only calls handlers once a corpus is loaded, so
// extCtx.Service() is never nil inside a handler.
type MCPHandler func(ctx context.Context, extCtx Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
