package corpus

import "strings"

// headingMarker starts a heading line.
const headingMarker = "#"

// isHeading reports whether line opens a new paragraph. Lines such as
// "#[derive(Debug)]" in code samples start with the marker but are
// attribute annotations, not headings.
func isHeading(line string) bool {
	return strings.HasPrefix(line, headingMarker) && !strings.HasPrefix(line, headingMarker+"[")
}

// Segment splits raw text into paragraphs at heading lines.
//
// When a heading line is reached, the text accumulated so far is pushed as a
// paragraph and a fresh accumulator starts; the heading line itself is not
// kept. Other lines are appended with a trailing "\n". The accumulator is not
// flushed at the end, so text after the last heading is not part of any
// paragraph. Content before the first heading becomes the first paragraph,
// which is often empty.
func Segment(text string) []Paragraph {
	var paragraphs []Paragraph
	var b strings.Builder

	for _, line := range lines(text) {
		if isHeading(line) {
			paragraphs = append(paragraphs, Paragraph{
				Index: len(paragraphs),
				Text:  b.String(),
			})
			b.Reset()
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	return paragraphs
}

// lines splits text on "\n", dropping a trailing "\r" from each line and
// the empty element after a final newline.
func lines(text string) []string {
	if text == "" {
		return nil
	}
	out := strings.Split(text, "\n")
	if out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	for i, l := range out {
		out[i] = strings.TrimSuffix(l, "\r")
	}
	return out
}
