package rank

import (
	"strings"

	"github.com/jpl-au/thebook/internal/corpus"
)

// Scoring weights.
const (
	keywordMultiplier = 10 // phrase is a reserved keyword
	titleWeight       = 25 // per occurrence in the paragraph's first line
	sizeExponent      = 5  // phrase word count is raised to this power
)

// Score returns the relevancy of paragraph p for the given candidate
// phrases. Matching is a case-sensitive substring test against the
// paragraph's original text; candidates are expected to be lower-case
// already (see query.Expand). The result depends only on the arguments.
func Score(p corpus.Paragraph, candidates []string) uint64 {
	var relevancy uint64
	title := p.TitleLine()
	for _, c := range candidates {
		relevancy += contribution(p.Text, title, c)
	}
	return relevancy
}

// contribution is the relevancy one candidate phrase adds to a paragraph.
func contribution(text, title, phrase string) uint64 {
	if phrase == "" || !strings.Contains(text, phrase) {
		return 0
	}

	size := pow(uint64(strings.Count(phrase, " ")+1), sizeExponent)

	var boost uint64 = 1
	if IsKeyword(phrase) {
		boost = keywordMultiplier
	}

	count := uint64(strings.Count(text, phrase))
	inTitle := titleWeight * uint64(strings.Count(title, phrase))

	return boost * size * (count + inTitle)
}

func pow(base uint64, exp int) uint64 {
	r := uint64(1)
	for range exp {
		r *= base
	}
	return r
}
