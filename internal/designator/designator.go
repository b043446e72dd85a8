// Package designator implements the incremental digit buffer behind the
// catalog search field. The buffer behaves like a shift register: digits
// enter on the right, the oldest slot falls off the left, and a run of
// leading zeros collapses back into placeholders so the display always shows
// a right-aligned number being typed.
package designator

import (
	"strconv"
	"strings"
)

// Placeholder fills slots that hold no digit yet.
const Placeholder = '-'

// Entry is a fixed-width slot buffer of digits and placeholders. Width is a
// per-catalog property; Reset is called whenever the active catalog changes.
type Entry struct {
	slots []byte
}

// New returns an all-placeholder entry of the given width.
func New(width int) *Entry {
	e := &Entry{}
	e.Reset(width)
	return e
}

// Reset clears the buffer to all placeholders with the given width.
func (e *Entry) Reset(width int) {
	e.slots = make([]byte, width)
	for i := range e.slots {
		e.slots[i] = Placeholder
	}
}

// PushDigit shifts the buffer left, appends d at the rightmost slot, then
// collapses the leading run of zeros and placeholders. All digits 0-9 are
// accepted unconditionally; anything else is ignored. Returns the resulting
// normalized key.
func (e *Entry) PushDigit(d int) string {
	if d < 0 || d > 9 {
		return e.Key()
	}
	copy(e.slots, e.slots[1:])
	e.slots[len(e.slots)-1] = byte('0' + d)

	if e.slots[0] == '0' || e.slots[0] == Placeholder {
		for i := 0; i < len(e.slots); i++ {
			e.slots[i] = Placeholder
			if i+1 >= len(e.slots) || !blankable(e.slots[i+1]) {
				break
			}
		}
	}
	return e.Key()
}

func blankable(b byte) bool {
	return b == '0' || b == Placeholder
}

// SetKey replaces the buffer with a committed designation, right-aligned and
// placeholder-padded. Used when a neighbor scroll adopts a real object.
func (e *Entry) SetKey(designation int) {
	digits := []byte(strconv.Itoa(designation))
	width := len(e.slots)
	if len(digits) >= width {
		e.slots = digits
		return
	}
	e.Reset(width)
	copy(e.slots[width-len(digits):], digits)
}

// Key returns the buffer with placeholders stripped. An empty key is valid
// and matches nothing.
func (e *Entry) Key() string {
	return strings.ReplaceAll(string(e.slots), string(Placeholder), "")
}

// String renders the raw slot buffer for display, e.g. "--7-".
func (e *Entry) String() string {
	return string(e.slots)
}

// Width reports the current slot count.
func (e *Entry) Width() int {
	return len(e.slots)
}
