package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpl-au/thebook/extension"
	"github.com/jpl-au/thebook/internal/config"
	"github.com/jpl-au/thebook/internal/corpus"
	"github.com/jpl-au/thebook/internal/document"
	"github.com/jpl-au/thebook/internal/rank"
)

func testHandlers(t *testing.T) *handlers {
	t.Helper()
	dir := t.TempDir()
	pages := map[string]string{
		"ch04-01-what-is-ownership.md": "ownership\n# Rules\n",
		"ch08-01-vectors.md":           "vectors\nlet v = Vec::new();\n# Next\n",
	}
	for name, text := range pages {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(text), 0644))
	}
	svc, err := document.Open(dir, rank.Options{})
	require.NoError(t, err)
	return &handlers{ext: extension.NewContext(svc, &config.Config{})}
}

func noCorpusHandlers() *handlers {
	return &handlers{ext: extension.NewContext(nil, &config.Config{})}
}

func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "content is %T", res.Content[0])
	return tc.Text
}

func TestParseDocumentURI(t *testing.T) {
	tests := []struct {
		uri     string
		want    string
		wantErr error
	}{
		{"thebook://documents/ch08-01-vectors.md", "ch08-01-vectors.md", nil},
		{"thebook://documents/Ch08%2001%20Vectors", "Ch08 01 Vectors", nil},
		{"thebook://documents/", "", ErrEmptyName},
		{"llm://documents/x", "", ErrInvalidURI},
		{"thebook://documents/%zz", "", ErrInvalidURI},
	}
	for _, tc := range tests {
		t.Run(tc.uri, func(t *testing.T) {
			got, err := parseDocumentURI(tc.uri)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRequireCorpus(t *testing.T) {
	res := noCorpusHandlers().requireCorpus()
	require.NotNil(t, res)
	assert.True(t, res.IsError)
	assert.Equal(t, ErrNoCorpus, textOf(t, res))

	assert.NotNil(t, (&handlers{}).requireCorpus())
	assert.Nil(t, testHandlers(t).requireCorpus())
}

func TestWrap(t *testing.T) {
	called := false
	fn := func(_ context.Context, ext extension.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		called = true
		return mcp.NewToolResultText(ext.Service().Dir()), nil
	}

	res, err := noCorpusHandlers().wrap(fn)(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.False(t, called, "handler must not run without a corpus")

	h := testHandlers(t)
	res, err = h.wrap(fn)(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, h.ext.Service().Dir(), textOf(t, res))
}

func TestGetGuide(t *testing.T) {
	h := noCorpusHandlers()

	res, err := h.getGuide(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	assert.Contains(t, textOf(t, res), "thebook Guide")

	var req mcp.CallToolRequest
	req.Params.Arguments = map[string]any{"topic": "nonexistent"}
	res, err = h.getGuide(context.Background(), req)
	require.NoError(t, err)

	var got struct {
		Error  string   `json:"error"`
		Topics []string `json:"available_topics"`
	}
	require.NoError(t, json.Unmarshal([]byte(textOf(t, res)), &got))
	assert.NotEmpty(t, got.Error)
	assert.Contains(t, got.Topics, "scoring")
}

func TestReadDocumentResource(t *testing.T) {
	h := testHandlers(t)
	ctx := context.Background()

	uri := documentScheme + "Ch08%2001%20Vectors"
	contents, err := h.readDocumentResource(ctx, uri)
	require.NoError(t, err)
	require.Len(t, contents, 1)
	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, uri, text.URI)
	assert.Equal(t, "text/markdown", text.MIMEType)
	assert.Contains(t, text.Text, "Vec::new()")

	_, err = h.readDocumentResource(ctx, documentScheme+"ch99.md")
	require.ErrorIs(t, err, corpus.ErrNotFound)

	_, err = noCorpusHandlers().readDocumentResource(ctx, uri)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "thebook fetch")
}

func TestNewServer(t *testing.T) {
	assert.NotNil(t, NewServer(testHandlers(t).ext))
	assert.NotNil(t, NewServer(noCorpusHandlers().ext))
}
