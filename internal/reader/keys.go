package reader

import "unicode/utf8"

// Key identifies a decoded key press.
type Key int

const (
	KeyRune       Key = iota + 1 // printable character, see Event.Rune
	KeyBackspace                 // remove the last query character
	KeyExit                      // Ctrl-E (or Ctrl-C)
	KeyScrollDown                // Ctrl-D, Page Down
	KeyScrollUp                  // Ctrl-U, Page Up
	KeyNext                      // Ctrl-J, Down
	KeyPrevious                  // Ctrl-K, Up
	KeyToggle                    // Ctrl-P: whole page / ranked paragraphs
)

// Event is one key press.
type Event struct {
	Key  Key
	Rune rune
}

// Raw-mode control bytes.
const (
	ctrlC     = 0x03
	ctrlD     = 0x04
	ctrlE     = 0x05
	ctrlH     = 0x08
	ctrlJ     = 0x0a
	ctrlK     = 0x0b
	ctrlP     = 0x10
	ctrlU     = 0x15
	escape    = 0x1b
	backspace = 0x7f
)

var controlKeys = map[byte]Key{
	ctrlC:     KeyExit,
	ctrlE:     KeyExit,
	ctrlD:     KeyScrollDown,
	ctrlU:     KeyScrollUp,
	ctrlJ:     KeyNext,
	ctrlK:     KeyPrevious,
	ctrlP:     KeyToggle,
	ctrlH:     KeyBackspace,
	backspace: KeyBackspace,
}

// csiKeys maps CSI sequence bodies (after "ESC [") to keys.
var csiKeys = map[string]Key{
	"A":  KeyPrevious,
	"B":  KeyNext,
	"5~": KeyScrollUp,
	"6~": KeyScrollDown,
}

// Decoder turns raw terminal input into key events. Input may arrive split
// at any byte; incomplete UTF-8 runes and escape sequences are held until
// the rest arrives.
type Decoder struct {
	pending []byte
}

// Flush drops input still held back by Feed. The reader calls it once input
// has been idle for a poll interval, so a lone Escape press does not swallow
// the next key.
func (d *Decoder) Flush() {
	d.pending = nil
}

// Feed decodes b and returns the complete events it contains.
func (d *Decoder) Feed(b []byte) []Event {
	data := append(d.pending, b...)
	d.pending = nil

	var events []Event
	for i := 0; i < len(data); {
		c := data[i]
		switch {
		case c == escape:
			n, ev, ok := decodeEscape(data[i:])
			if !ok {
				d.pending = append([]byte(nil), data[i:]...)
				return events
			}
			if ev.Key != 0 {
				events = append(events, ev)
			}
			i += n

		case c < 0x20 || c == backspace:
			if k, ok := controlKeys[c]; ok {
				events = append(events, Event{Key: k})
			}
			i++

		default:
			if !utf8.FullRune(data[i:]) {
				d.pending = append([]byte(nil), data[i:]...)
				return events
			}
			r, size := utf8.DecodeRune(data[i:])
			if r != utf8.RuneError || size > 1 {
				events = append(events, Event{Key: KeyRune, Rune: r})
			}
			i += size
		}
	}
	return events
}

// decodeEscape decodes an escape sequence at the start of b. It returns the
// bytes consumed and the key, which is zero for sequences without a binding.
// ok is false when the sequence is incomplete.
func decodeEscape(b []byte) (n int, ev Event, ok bool) {
	if len(b) == 1 {
		// Either a lone Escape or the first byte of a split sequence.
		return 0, Event{}, false
	}
	if b[1] == escape {
		// Escape pressed twice: the first one stands alone.
		return 1, Event{}, true
	}
	if b[1] != '[' && b[1] != 'O' {
		// Alt+key: ignored.
		return 2, Event{}, true
	}
	for j := 2; j < len(b); j++ {
		if b[j] >= 0x40 && b[j] <= 0x7e {
			return j + 1, Event{Key: csiKeys[string(b[2:j+1])]}, true
		}
	}
	return 0, Event{}, false
}
