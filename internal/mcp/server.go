// Package mcp implements the Model Context Protocol server, exposing the
// book to LLMs. Assistants can search, list, and read pages through a
// standardised protocol instead of scraping terminal output.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jpl-au/thebook/extension"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// ErrNoCorpus is returned by tools when the book has not been downloaded.
const ErrNoCorpus = "book not downloaded - run 'thebook fetch' first"

// Serve starts the MCP server over stdio.
//
// The server starts even when no corpus is cached. Tools that need the book
// return ErrNoCorpus until it has been fetched and the server restarted.
func Serve(extCtx extension.Context) error {
	// stdout is reserved for JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if extCtx.Service() == nil {
		slog.Info("no corpus cached, starting without book - run thebook fetch")
	}

	s := NewServer(extCtx)
	slog.Info("thebook MCP server ready", "version", Version, "transport", "stdio")

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// NewServer builds the MCP server with the built-in resources and tools
// plus every tool contributed by a registered extension.
func NewServer(extCtx extension.Context) *server.MCPServer {
	h := &handlers{ext: extCtx}

	s := server.NewMCPServer(
		"thebook",
		Version,
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)

	registerResources(s, h)
	registerTools(s, h)
	return s
}

// handlers provides MCP request handlers with access to the extension context.
type handlers struct {
	ext extension.Context
}

// requireCorpus returns an error result if no corpus is loaded.
func (h *handlers) requireCorpus() *mcp.CallToolResult {
	if h.ext == nil || h.ext.Service() == nil {
		return mcp.NewToolResultError(ErrNoCorpus)
	}
	return nil
}

// registerResources adds URI-based access to individual pages.
func registerResources(s *server.MCPServer, h *handlers) {
	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			documentScheme+"{name}",
			"Page",
			mcp.WithTemplateDescription("Read a page of the book by title or file name"),
			mcp.WithTemplateMIMEType("text/markdown"),
		),
		h.readDocument,
	)
}

// registerTools adds the guide tool and every extension tool.
func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcp.NewTool("thebook_guide",
			mcp.WithDescription("Read thebook usage guides (topics: reader, scoring, fetch, config)"),
			mcp.WithString("topic", mcp.Description("Guide topic (empty for the main guide)")),
		),
		h.getGuide,
	)

	for _, ext := range extension.All() {
		for _, t := range ext.MCPTools() {
			s.AddTool(t.Tool, h.wrap(t.Handler))
		}
	}
}

// wrap adapts an extension handler to the server handler signature. The
// corpus check happens here so extension tools can assume a service.
func (h *handlers) wrap(fn extension.MCPHandler) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if res := h.requireCorpus(); res != nil {
			return res, nil
		}
		return fn(ctx, h.ext, req)
	}
}

// readDocument handles thebook://documents/{name} resource requests.
func (h *handlers) readDocument(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return h.readDocumentResource(ctx, req.Params.URI)
}
