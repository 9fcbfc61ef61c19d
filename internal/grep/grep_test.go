package grep

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpl-au/thebook/internal/corpus"
)

func doc(path, text string) corpus.Document {
	return corpus.New(path, corpus.TitleFromPath(path), text)
}

func testDocs() []corpus.Document {
	return []corpus.Document{
		doc("/book/ch03-01-variables.md", "let x = 5;\nlet mut y = 6;\ny += 1;\n"),
		doc("/book/ch08-01-vectors.md", "let v = Vec::new();\nv.push(5);\n"),
	}
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		opts    Options
		want    map[string][]int // file name -> matching lines
	}{
		{"literal", "let", Options{}, map[string][]int{
			"ch03-01-variables.md": {1, 2},
			"ch08-01-vectors.md":   {1},
		}},
		{"regex", `\d;$`, Options{}, map[string][]int{
			"ch03-01-variables.md": {1, 2, 3},
		}},
		{"case sensitive", "vec", Options{}, map[string][]int{}},
		{"ignore case", "vec", Options{IgnoreCase: true}, map[string][]int{
			"ch08-01-vectors.md": {1},
		}},
		{"invert", "let", Options{Invert: true}, map[string][]int{
			"ch03-01-variables.md": {3},
			"ch08-01-vectors.md":   {2},
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Search(context.Background(), testDocs(), tc.pattern, tc.opts)
			require.NoError(t, err)

			got := make(map[string][]int)
			for _, hit := range result.Hits {
				for _, m := range hit.Matches {
					got[hit.Document.Name()] = append(got[hit.Document.Name()], m.Line)
				}
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSearch_InvalidPattern(t *testing.T) {
	_, err := Search(context.Background(), testDocs(), "(", Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid regex")
}

func TestSearch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Search(ctx, testDocs(), "let", Options{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestWrite(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"lines", Options{}, "ch03-01-variables.md:2:let mut y = 6;\nch03-01-variables.md:3:y += 1;\n"},
		{"names only", Options{NamesOnly: true}, "ch03-01-variables.md\n"},
		{"count", Options{CountOnly: true}, "ch03-01-variables.md:2\n"},
		{"context", Options{Context: 1}, "ch03-01-variables.md-1-let x = 5;\n" +
			"ch03-01-variables.md:2:let mut y = 6;\n" +
			"ch03-01-variables.md:3:y += 1;\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Search(context.Background(), testDocs(), "y", tc.opts)
			require.NoError(t, err)

			var buf bytes.Buffer
			Write(&buf, result, tc.opts)
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestWrite_ContextSeparator(t *testing.T) {
	docs := []corpus.Document{
		doc("/book/a.md", "match\none\ntwo\nthree\nmatch\n"),
	}
	result, err := Search(context.Background(), docs, "match", Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	Write(&buf, result, Options{Context: 1})
	assert.Equal(t, "a.md:1:match\na.md-2-one\n--\na.md-4-three\na.md:5:match\n", buf.String())
}
