// Package diff computes line diffs between the cached copy of a book page
// and a freshly downloaded one, so a refresh can show what changed upstream.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// contextLines is the number of unchanged lines shown before/after changes.
// When equal sections exceed 2*contextLines, they're collapsed with "...".
const contextLines = 3

// Result holds a computed diff.
type Result struct {
	Old     string // old label (usually the cached path)
	New     string // new label (usually the remote URL)
	Diff    string // plain diff text, empty when the contents are equal
	Added   int    // lines inserted
	Removed int    // lines deleted
}

// Changed reports whether the two contents differ.
func (r Result) Changed() bool {
	return r.Added > 0 || r.Removed > 0
}

// Compute returns a line diff between old and new content.
func Compute(oldContent, newContent, oldLabel, newLabel string) Result {
	r := Result{Old: oldLabel, New: newLabel}
	if oldContent == newContent {
		return r
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(oldContent, newContent)
	d := dmp.DiffMain(a, b, false)
	d = dmp.DiffCharsToLines(d, lines)

	r.Diff, r.Added, r.Removed = format(d)
	return r
}

// format converts diffs to unified-style text and counts changed lines.
func format(diffs []diffmatchpatch.Diff) (string, int, int) {
	var b strings.Builder
	added, removed := 0, 0
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		lines := strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n")
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			for _, l := range lines {
				b.WriteString("- " + l + "\n")
			}
			removed += len(lines)
		case diffmatchpatch.DiffInsert:
			for _, l := range lines {
				b.WriteString("+ " + l + "\n")
			}
			added += len(lines)
		case diffmatchpatch.DiffEqual:
			if len(lines) > 2*contextLines {
				for _, l := range lines[:contextLines] {
					b.WriteString("  " + l + "\n")
				}
				b.WriteString("  ...\n")
				for _, l := range lines[len(lines)-contextLines:] {
					b.WriteString("  " + l + "\n")
				}
			} else {
				for _, l := range lines {
					b.WriteString("  " + l + "\n")
				}
			}
		}
	}
	return b.String(), added, removed
}

// Colourise adds ANSI colours to diff output.
func Colourise(d string) string {
	const (
		red   = "\033[31m"
		green = "\033[32m"
		reset = "\033[0m"
	)

	var b strings.Builder
	for _, line := range strings.Split(d, "\n") {
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "- "):
			b.WriteString(red + line + reset + "\n")
		case strings.HasPrefix(line, "+ "):
			b.WriteString(green + line + reset + "\n")
		default:
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

// Format returns the full diff with header, or "" when nothing changed.
func (r Result) Format(colour bool) string {
	if !r.Changed() {
		return ""
	}
	header := fmt.Sprintf("--- %s\n+++ %s\n", r.Old, r.New)
	if colour {
		return header + Colourise(r.Diff)
	}
	return header + r.Diff
}
