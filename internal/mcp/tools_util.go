// tools_util.go provides helpers for MCP tool parameter extraction.
//
// Extraction is permissive: a missing or mistyped optional parameter yields
// the caller's default rather than an error, since LLM clients often omit
// optional arguments or send them with the wrong JSON type.

package mcp

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetString returns a string parameter, or def if it is missing or not a string.
func GetString(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil {
		return v
	}
	return def
}

// GetBool returns a boolean parameter, or def if it is missing or not a boolean.
func GetBool(req mcp.CallToolRequest, name string, def bool) bool {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(bool); ok {
		return v
	}
	return def
}

// GetInt returns an integer parameter, or def if it is missing or not a number.
// JSON numbers decode as float64.
func GetInt(req mcp.CallToolRequest, name string, def int) int {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(float64); ok {
		return int(v)
	}
	return def
}

// JSONResult serialises v as indented JSON and wraps it in a text result.
// Marshal failures are reported as tool errors, not Go errors.
func JSONResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
