package format

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpl-au/thebook/internal/corpus"
)

func TestHumanSize(t *testing.T) {
	assert.Equal(t, "512B", humanSize(512))
	assert.Equal(t, "1.5K", humanSize(1536))
	assert.Equal(t, "2.0M", humanSize(2<<20))
	assert.Equal(t, "1.0G", humanSize(1<<30))
}

func TestList(t *testing.T) {
	docs := []corpus.Document{
		corpus.New("/b/ch01-00-intro.md", "Ch01 00 Intro", "hello"),
		corpus.New("/b/ch02-00-guess.md", "Ch02 00 Guess", "world"),
	}
	var buf bytes.Buffer
	require.NoError(t, List(&buf, docs))
	assert.Equal(t, "Ch01 00 Intro\nCh02 00 Guess\n", buf.String())
}

func TestLong(t *testing.T) {
	docs := []corpus.Document{
		corpus.New("/b/a.md", "A", "x\n# H\nbody\n"),
	}
	var buf bytes.Buffer
	require.NoError(t, Long(&buf, docs))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "PARAS")
	assert.Contains(t, lines[1], "a.md")
	assert.Contains(t, lines[1], "11B")
	assert.True(t, strings.HasSuffix(lines[1], "  A"))
}

func TestLong_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Long(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestResults(t *testing.T) {
	d := corpus.Document{
		Title:     "Borrowing",
		Relevancy: 30,
		Paragraphs: []corpus.Paragraph{
			{Index: 1, Text: "\nfirst match\nmore", Relevancy: 20},
			{Index: 0, Text: "second", Relevancy: 10},
			{Index: 2, Text: "never", Relevancy: 0},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Results(&buf, []corpus.Document{d}, 0))
	assert.Equal(t, "        30  Borrowing\n", buf.String())

	buf.Reset()
	require.NoError(t, Results(&buf, []corpus.Document{d}, 5))
	out := buf.String()
	assert.Contains(t, out, "20    first match")
	assert.Contains(t, out, "10    second")
	assert.NotContains(t, out, "never")
}

func TestSnippet(t *testing.T) {
	assert.Equal(t, "hello", Snippet("\n\n  hello  \nworld"))
	assert.Equal(t, "", Snippet(""))

	long := strings.Repeat("a", 100)
	got := Snippet(long)
	assert.Len(t, got, snippetWidth)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestToJSON(t *testing.T) {
	d := corpus.Document{
		Path:      "/b/ch04-02-references-and-borrowing.md",
		Title:     "Ch04 02 References And Borrowing",
		Text:      "full text",
		Relevancy: 30,
		Paragraphs: []corpus.Paragraph{
			{Index: 1, Text: "a", Relevancy: 20},
			{Index: 0, Text: "b", Relevancy: 10},
			{Index: 2, Text: "c", Relevancy: 0},
		},
	}

	j := ToJSON(d, 1, false)
	assert.Equal(t, "ch04-02-references-and-borrowing.md", j.Name)
	assert.Equal(t, 9, j.Size)
	assert.Empty(t, j.Content)
	require.Len(t, j.Paragraphs, 1)
	assert.Equal(t, 1, j.Paragraphs[0].Index)

	j = ToJSON(d, 10, true)
	assert.Len(t, j.Paragraphs, 2, "unmatched paragraphs are left out")
	assert.Equal(t, "full text", j.Content)

	assert.Empty(t, ToJSON(d, 0, false).Paragraphs)
	assert.Len(t, ListJSON([]corpus.Document{d, d}, 0, false), 2)
}
