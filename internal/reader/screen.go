package reader

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Pane titles.
const (
	titleSearch      = "Search"
	titleDirectory   = "Directory"
	titleRanked      = "Directory (sorted by search relevancy)"
	titleReader      = "Reader"
	titleParagraphs  = "Reader (paragraphs by relevancy)"
	tooSmallMessage  = "terminal too small"
	directoryPercent = 30
	searchHeight     = 2 // title and query lines
	minWidth         = 20
	minHeight        = 8
)

// View is the state shown by one frame.
type View struct {
	Query      string
	Titles     []string // directory rows, in result order
	Cursor     int      // selected row, -1 for none
	Reader     []string // rendered reader pane lines
	Scroll     int      // first reader line shown
	Paragraphs bool     // reader shows ranked paragraphs
}

var (
	box      = lipgloss.NewStyle().Border(lipgloss.NormalBorder())
	heading  = lipgloss.NewStyle().Bold(true)
	selected = lipgloss.NewStyle().Reverse(true)
)

// readerWidth returns the content width of the reader pane for a terminal
// width, which is what pages are wrapped to.
func readerWidth(width int) int {
	return max(width-width*directoryPercent/100-2, 1)
}

// Frame lays out a full screen of width x height cells: the search box above
// the directory on the left, the reader pane on the right.
func Frame(v View, width, height int) string {
	if width < minWidth || height < minHeight {
		return tooSmallMessage
	}

	leftW := width * directoryPercent / 100
	rightW := width - leftW
	leftInner, rightInner := leftW-2, rightW-2

	search := pane(titleSearch, []string{v.Query + "_"}, leftInner, searchHeight)

	dirHeight := height - (searchHeight + 2) - 2
	dirTitle := titleDirectory
	if v.Query != "" {
		dirTitle = titleRanked
	}
	directory := pane(dirTitle, directoryRows(v.Titles, v.Cursor, leftInner, dirHeight-1), leftInner, dirHeight)

	readerTitle := titleReader
	if v.Paragraphs {
		readerTitle = titleParagraphs
	}
	reader := pane(readerTitle, window(v.Reader, v.Scroll, height-3), rightInner, height-2)

	left := lipgloss.JoinVertical(lipgloss.Left, search, directory)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, reader)
}

// pane renders a bordered box whose first content line is the title. Lines
// are truncated to width and the box is padded to height content lines.
func pane(title string, lines []string, width, height int) string {
	content := make([]string, 0, height)
	content = append(content, heading.Render(ansi.Truncate(title, width, "…")))
	for _, l := range lines {
		if len(content) == height {
			break
		}
		content = append(content, ansi.Truncate(l, width, "…"))
	}
	for len(content) < height {
		content = append(content, "")
	}
	return box.Width(width).Height(height).Render(strings.Join(content, "\n"))
}

// directoryRows returns the visible directory rows, scrolled so the cursor
// stays on screen, with the selected row highlighted.
func directoryRows(titles []string, cursor, width, rows int) []string {
	if rows <= 0 {
		return nil
	}
	offset := 0
	if cursor >= rows {
		offset = cursor - rows + 1
	}
	end := min(offset+rows, len(titles))

	out := make([]string, 0, rows)
	for i := offset; i < end; i++ {
		row := ansi.Truncate(titles[i], width, "…")
		if i == cursor {
			row = selected.Render(row + strings.Repeat(" ", max(width-ansi.StringWidth(row), 0)))
		}
		out = append(out, row)
	}
	return out
}

// window returns up to n lines of lines starting at offset. An offset past
// the end shows the last line.
func window(lines []string, offset, n int) []string {
	if len(lines) == 0 || n <= 0 {
		return nil
	}
	offset = min(max(offset, 0), len(lines)-1)
	return lines[offset:min(offset+n, len(lines))]
}
