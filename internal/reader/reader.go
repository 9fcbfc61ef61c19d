// Package reader implements the interactive live-search reader: a
// full-screen terminal view with a search box, a ranked directory of pages,
// and a glamour-rendered reader pane. Ranking state lives in package live;
// this package owns the terminal, key decoding, and layout.
package reader

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"

	"github.com/jpl-au/thebook/internal/corpus"
	"github.com/jpl-au/thebook/internal/live"
	"github.com/jpl-au/thebook/internal/render"
)

// ErrNotTerminal is returned when stdin or stdout is not a terminal.
var ErrNotTerminal = errors.New("reader needs an interactive terminal")

// Terminal control sequences.
const (
	enterScreen = "\x1b[?1049h\x1b[?25l" // alternate screen, hide cursor
	leaveScreen = "\x1b[H\x1b[2J\x1b[?25h\x1b[?1049l"
	cursorHome  = "\x1b[H"
	clearLine   = "\x1b[K"
	clearBelow  = "\x1b[J"
)

// Options configures a reader session.
type Options struct {
	Style        string        // glamour style, one of config.Styles
	PollInterval time.Duration // idle time before a query is applied
	Query        string        // initial query, applied on the first idle poll
}

// Result summarises a finished session.
type Result struct {
	Query    string // query buffer at exit
	Searches int    // queries applied
}

// Run opens the reader on in/out until the user exits. The terminal is put
// in raw mode on the alternate screen and restored on return or panic.
func Run(ctx context.Context, in, out *os.File, docs []corpus.Document, rank live.RankFunc, opts Options) (Result, error) {
	inFd, outFd := int(in.Fd()), int(out.Fd())
	if !term.IsTerminal(inFd) || !term.IsTerminal(outFd) {
		return Result{}, ErrNotTerminal
	}

	r, err := render.New(opts.Style)
	if err != nil {
		return Result{}, err
	}
	poll := opts.PollInterval
	if poll <= 0 {
		poll = live.DefaultPollInterval
	}

	s := newSession(docs, rank, r)
	for _, c := range opts.Query {
		s.ctrl.Push(c)
	}

	state, err := term.MakeRaw(inFd)
	if err != nil {
		return Result{}, fmt.Errorf("entering raw mode: %w", err)
	}
	var once sync.Once
	restore := func() {
		once.Do(func() {
			fmt.Fprint(out, leaveScreen)
			_ = term.Restore(inFd, state)
		})
	}
	defer restore()
	defer func() {
		if p := recover(); p != nil {
			restore()
			panic(p)
		}
	}()
	fmt.Fprint(out, enterScreen)

	input := make(chan []byte, 1)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)
	go readInput(in, input, readErr, done)

	var dec Decoder
	for {
		if w, h, err := term.GetSize(outFd); err == nil {
			s.width, s.height = w, h
		}
		if err := draw(out, s.frame()); err != nil {
			return s.result(), err
		}

		select {
		case <-ctx.Done():
			return s.result(), ctx.Err()
		case err := <-readErr:
			if errors.Is(err, io.EOF) {
				return s.result(), nil
			}
			return s.result(), fmt.Errorf("reading input: %w", err)
		case b := <-input:
			for _, ev := range dec.Feed(b) {
				if s.handle(ev) {
					return s.result(), nil
				}
			}
		case <-time.After(poll):
			dec.Flush()
			if _, err := s.tick(ctx); err != nil {
				return s.result(), err
			}
		}
	}
}

// readInput forwards raw reads from in until a read fails or done is closed.
// A Read already blocked on the terminal returns with the next key press,
// and the goroutine exits then instead of blocking on the send.
func readInput(in io.Reader, input chan<- []byte, readErr chan<- error, done <-chan struct{}) {
	buf := make([]byte, 256)
	for {
		n, err := in.Read(buf)
		if n > 0 {
			select {
			case input <- append([]byte(nil), buf[:n]...):
			case <-done:
				return
			}
		}
		if err != nil {
			select {
			case readErr <- err:
			case <-done:
			}
			return
		}
	}
}

// draw writes a frame from the top-left corner, clearing leftovers of the
// previous frame. Raw mode needs explicit carriage returns.
func draw(w io.Writer, frame string) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(cursorHome)
	for i, line := range strings.Split(frame, "\n") {
		if i > 0 {
			bw.WriteString("\r\n")
		}
		bw.WriteString(line)
		bw.WriteString(clearLine)
	}
	bw.WriteString(clearBelow)
	return bw.Flush()
}

// session is the reader state between frames.
type session struct {
	ctrl       *live.Controller
	render     *render.Renderer
	paragraphs bool
	searches   int
	width      int
	height     int
}

func newSession(docs []corpus.Document, rank live.RankFunc, r *render.Renderer) *session {
	return &session{
		ctrl:   live.New(docs, rank),
		render: r,
		width:  80,
		height: 24,
	}
}

// handle applies one key event and reports whether the reader should exit.
func (s *session) handle(ev Event) bool {
	switch ev.Key {
	case KeyExit:
		return true
	case KeyRune:
		s.ctrl.Push(ev.Rune)
	case KeyBackspace:
		s.ctrl.Pop()
	case KeyScrollDown:
		s.ctrl.ScrollDown()
	case KeyScrollUp:
		s.ctrl.ScrollUp()
	case KeyNext:
		s.ctrl.Next()
	case KeyPrevious:
		s.ctrl.Previous()
	case KeyToggle:
		s.paragraphs = !s.paragraphs
	}
	return false
}

// tick applies a pending query after an idle poll interval.
func (s *session) tick(ctx context.Context) (bool, error) {
	ran, err := s.ctrl.Tick(ctx)
	if ran {
		s.searches++
	}
	return ran, err
}

func (s *session) result() Result {
	return Result{Query: s.ctrl.Query(), Searches: s.searches}
}

// view collects the state shown in the next frame.
func (s *session) view() View {
	results := s.ctrl.Results()
	titles := make([]string, len(results))
	for i, d := range results {
		titles[i] = d.Title
	}
	return View{
		Query:      s.ctrl.Query(),
		Titles:     titles,
		Cursor:     s.ctrl.Cursor(),
		Reader:     s.readerLines(),
		Scroll:     s.ctrl.Scroll(),
		Paragraphs: s.paragraphs,
	}
}

func (s *session) frame() string {
	return Frame(s.view(), s.width, s.height)
}

// readerLines renders the selected page, or its ranked paragraphs, to the
// reader pane width. Rendering failures fall back to the raw text.
func (s *session) readerLines() []string {
	doc, ok := s.ctrl.Selected()
	if !ok {
		return nil
	}
	text := doc.Text
	if s.paragraphs {
		text = paragraphsMarkdown(doc)
	}
	lines, err := s.render.Lines(text, readerWidth(s.width))
	if err != nil {
		return strings.Split(text, "\n")
	}
	return lines
}

// paragraphsMarkdown lists a document's paragraphs in their current order
// (relevancy order once ranked) with their scores.
func paragraphsMarkdown(d corpus.Document) string {
	var b strings.Builder
	for _, p := range d.Paragraphs {
		fmt.Fprintf(&b, "#### Paragraph %d, relevancy %d\n\n", p.Index+1, p.Relevancy)
		b.WriteString(p.Text)
		b.WriteString("\n\n")
	}
	return b.String()
}
