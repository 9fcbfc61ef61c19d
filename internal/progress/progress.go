// Package progress reports download progress on the terminal. Output goes
// to stderr so stdout stays clean for piping, and nothing is drawn when the
// writer is not a terminal.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// barWidth is the number of cells in the progress bar.
const barWidth = 30

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Progress tracks and displays the progress of a fixed number of steps.
type Progress struct {
	w       io.Writer
	label   string
	total   int
	current int
	isTTY   bool
}

// New creates a progress bar that writes to stderr.
func New(label string, total int) *Progress {
	return NewWriter(os.Stderr, label, total)
}

// NewWriter creates a progress bar writing to w. Drawing only happens when
// w is a terminal.
func NewWriter(w io.Writer, label string, total int) *Progress {
	return &Progress{
		w:     w,
		label: label,
		total: total,
		isTTY: isTerminal(w),
	}
}

// Increment advances the progress counter by one and redraws.
func (p *Progress) Increment() {
	if p.current < p.total {
		p.current++
	}
	p.Print()
}

// Current returns the number of completed steps.
func (p *Progress) Current() int {
	return p.current
}

// Bar renders the bar for the current state, e.g. "[#####.....] 5/10".
func (p *Progress) Bar() string {
	filled := 0
	if p.total > 0 {
		filled = p.current * barWidth / p.total
	}
	return fmt.Sprintf("[%s%s] %d/%d",
		strings.Repeat("#", filled), strings.Repeat(".", barWidth-filled),
		p.current, p.total)
}

// Print redraws the bar in place. No-op when not on a terminal.
func (p *Progress) Print() {
	if !p.isTTY {
		return
	}
	fmt.Fprintf(p.w, "\r%s %s", p.label, p.Bar())
}

// Done clears the progress line to make way for final output.
func (p *Progress) Done() {
	if !p.isTTY {
		return
	}
	fmt.Fprintf(p.w, "\r%s\r", strings.Repeat(" ", len(p.label)+barWidth+24))
}

// Spinner provides visual feedback for indeterminate operations, such as
// waiting for the remote file listing.
type Spinner struct {
	w       io.Writer
	label   string
	frame   int
	isTTY   bool
	frames  []string
	running bool
}

// NewSpinner creates a spinner that writes to stderr.
func NewSpinner(label string) *Spinner {
	return &Spinner{
		w:      os.Stderr,
		label:  label,
		isTTY:  isTerminal(os.Stderr),
		frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
	}
}

// Start displays the spinner.
func (s *Spinner) Start() {
	if !s.isTTY {
		return
	}
	s.running = true
	fmt.Fprintf(s.w, "%s %s...", s.frames[0], s.label)
}

// Tick advances the spinner animation by one frame.
func (s *Spinner) Tick() {
	if !s.isTTY || !s.running {
		return
	}
	s.frame = (s.frame + 1) % len(s.frames)
	fmt.Fprintf(s.w, "\r%s %s...", s.frames[s.frame], s.label)
}

// Stop clears the spinner line.
func (s *Spinner) Stop() {
	if !s.isTTY || !s.running {
		return
	}
	s.running = false
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", len(s.label)+8))
}
