// Package render turns page markdown into styled terminal text with glamour.
// Renderers are cached per wrap width, and the last rendered page is kept so
// redrawing the reader does not re-render an unchanged page.
package render

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/jpl-au/thebook/internal/config"
)

// Renderer renders markdown with a fixed glamour style.
type Renderer struct {
	style string
	terms map[int]*glamour.TermRenderer

	lastKey string
	lastOut string
}

// New creates a renderer for one of config.Styles.
func New(style string) (*Renderer, error) {
	if !slices.Contains(config.Styles, style) {
		return nil, fmt.Errorf("%w: unknown style %q (valid: %s)",
			config.ErrInvalidValue, style, strings.Join(config.Styles, ", "))
	}
	return &Renderer{style: style, terms: make(map[int]*glamour.TermRenderer)}, nil
}

// Style returns the glamour style name.
func (r *Renderer) Style() string {
	return r.style
}

// Render renders text wrapped at width columns. A width below one disables
// wrapping.
func (r *Renderer) Render(text string, width int) (string, error) {
	width = max(width, 0)
	key := fmt.Sprintf("%d\x00%s", width, text)
	if key == r.lastKey {
		return r.lastOut, nil
	}

	tr, ok := r.terms[width]
	if !ok {
		var err error
		tr, err = glamour.NewTermRenderer(
			glamour.WithStandardStyle(r.style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", fmt.Errorf("creating renderer: %w", err)
		}
		r.terms[width] = tr
	}

	out, err := tr.Render(text)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	r.lastKey, r.lastOut = key, out
	return out, nil
}

// Lines renders text and splits the result into display lines, dropping
// trailing blank lines.
func (r *Renderer) Lines(text string, width int) ([]string, error) {
	out, err := r.Render(text, width)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(out, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}
