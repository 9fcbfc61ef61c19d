// resources.go implements MCP resource handlers for page access.
//
// Resources give clients read-only access to a page by URI without a tool
// call, which suits loading a page as context.

package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jpl-au/thebook/internal/log"
)

// documentScheme prefixes every page URI.
const documentScheme = "thebook://documents/"

var (
	// ErrInvalidURI indicates a malformed resource URI.
	ErrInvalidURI = errors.New("invalid URI")
	// ErrEmptyName indicates a resource URI without a page name.
	ErrEmptyName = errors.New("empty page name")
)

// readDocumentResource reads a page and returns it as resource contents.
func (h *handlers) readDocumentResource(_ context.Context, uri string) ([]mcp.ResourceContents, error) {
	if h.requireCorpus() != nil {
		return nil, errors.New(ErrNoCorpus)
	}

	name, err := parseDocumentURI(uri)
	if err != nil {
		return nil, err
	}

	doc, err := h.ext.Service().Find(name)
	log.Event("mcp:resource", "read").Path(name).Write(err)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/markdown",
			Text:     doc.Text,
		},
	}, nil
}

// parseDocumentURI extracts the page name from thebook://documents/{name}.
// The name may be URL-escaped (titles contain spaces).
func parseDocumentURI(uri string) (string, error) {
	rest, ok := strings.CutPrefix(uri, documentScheme)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}
	if rest == "" {
		return "", ErrEmptyName
	}
	name, err := url.PathUnescape(rest)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}
	return name, nil
}
