// Package live holds the state behind the interactive reader: the query
// buffer typed so far, the ranked results for the last evaluated query, the
// selection cursor and the reader scroll offset.
//
// The controller is owned by a single loop. Keystrokes mutate the buffer
// immediately, but ranking only happens on Tick, which the loop calls when
// no input arrived during a poll interval. Typing quickly therefore never
// ranks intermediate queries.
package live

import (
	"context"
	"slices"
	"time"

	"github.com/jpl-au/thebook/internal/corpus"
)

// DefaultPollInterval is how long the loop waits for input before ticking.
const DefaultPollInterval = 200 * time.Millisecond

// RankFunc ranks docs for q. It is always given the full, unfiltered corpus.
type RankFunc func(ctx context.Context, docs []corpus.Document, q string) ([]corpus.Document, error)

// Controller tracks the query buffer and the results it produced.
type Controller struct {
	docs    []corpus.Document // full corpus in load order
	rank    RankFunc
	buffer  []rune
	last    []rune // buffer value of the last completed recompute
	results []corpus.Document
	cursor  int // -1 when nothing is selected
	scroll  int
}

// New creates a controller over docs. Until the first query is evaluated
// the results are the full corpus with nothing selected.
func New(docs []corpus.Document, rank RankFunc) *Controller {
	return &Controller{
		docs:    docs,
		rank:    rank,
		results: docs,
		cursor:  -1,
	}
}

// Push appends r to the query buffer.
func (c *Controller) Push(r rune) {
	c.buffer = append(c.buffer, r)
}

// Pop removes the last rune of the query buffer, if any.
func (c *Controller) Pop() {
	if len(c.buffer) > 0 {
		c.buffer = c.buffer[:len(c.buffer)-1]
	}
}

// Query returns the current buffer contents.
func (c *Controller) Query() string {
	return string(c.buffer)
}

// Pending reports whether the buffer differs from the last evaluated query.
func (c *Controller) Pending() bool {
	return !slices.Equal(c.buffer, c.last)
}

// Tick re-ranks the corpus if the buffer changed since the last recompute.
// It reports whether a recompute happened. After a recompute the cursor is
// on the first result, or nothing is selected when there are no results.
// On error the previous results are kept and the buffer stays pending.
func (c *Controller) Tick(ctx context.Context) (bool, error) {
	if !c.Pending() {
		return false, nil
	}
	results, err := c.rank(ctx, c.docs, string(c.buffer))
	if err != nil {
		return false, err
	}
	c.last = slices.Clone(c.buffer)
	c.results = results
	c.scroll = 0
	c.cursor = -1
	if len(results) > 0 {
		c.cursor = 0
	}
	return true, nil
}

// Results returns the documents for the last evaluated query.
func (c *Controller) Results() []corpus.Document {
	return c.results
}

// Cursor returns the selected result index, or -1.
func (c *Controller) Cursor() int {
	return c.cursor
}

// Selected returns the selected document.
func (c *Controller) Selected() (corpus.Document, bool) {
	if c.cursor < 0 || c.cursor >= len(c.results) {
		return corpus.Document{}, false
	}
	return c.results[c.cursor], true
}

// Next moves the cursor down one result, stopping at the last. With nothing
// selected it selects the first result.
func (c *Controller) Next() {
	if len(c.results) == 0 {
		return
	}
	switch {
	case c.cursor < 0:
		c.cursor = 0
	case c.cursor < len(c.results)-1:
		c.cursor++
	}
	c.scroll = 0
}

// Previous moves the cursor up one result, stopping at the first.
func (c *Controller) Previous() {
	if len(c.results) == 0 {
		return
	}
	if c.cursor > 0 {
		c.cursor--
	} else {
		c.cursor = 0
	}
	c.scroll = 0
}

// Scroll returns the reader pane's line offset.
func (c *Controller) Scroll() int {
	return c.scroll
}

// ScrollDown moves the reader pane down one line.
func (c *Controller) ScrollDown() {
	c.scroll++
}

// ScrollUp moves the reader pane up one line, stopping at the top.
func (c *Controller) ScrollUp() {
	if c.scroll > 0 {
		c.scroll--
	}
}
