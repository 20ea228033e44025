package language

import (
	"fmt"
	"strings"
)

// Mode controls when a window slides forward.
type Mode int

const (
	// Sticky slides only when the emitted key is new to the table.
	// A repeated key keeps the pending words, so the next word is joined
	// to the same left context again.
	Sticky Mode = iota
	// Sliding advances by one word for every emitted key.
	Sliding
)

func (m Mode) String() string {
	switch m {
	case Sticky:
		return "sticky"
	case Sliding:
		return "sliding"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses "sticky" or "sliding".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sticky", "":
		return Sticky, nil
	case "sliding":
		return Sliding, nil
	}
	return Sticky, fmt.Errorf("unknown window mode %q (want sticky or sliding)", s)
}

// Window assembles consecutive words into keys of a fixed order and
// counts them in a table. It holds at most order-1 pending words.
type Window struct {
	order   int
	mode    Mode
	pending []string
	buf     []string
}

// NewWindow creates an empty window. order is clamped to at least 1.
func NewWindow(order int, mode Mode) *Window {
	if order < 1 {
		order = 1
	}
	return &Window{
		order:   order,
		mode:    mode,
		pending: make([]string, 0, order-1),
		buf:     make([]string, 0, order),
	}
}

// Pending returns a copy of the words waiting to be joined.
func (w *Window) Pending() []string {
	return append([]string(nil), w.pending...)
}

// Push feeds one word. Until order-1 words are pending nothing is counted.
// Afterwards the pending words and word form a key which is counted in t.
func (w *Window) Push(word string, t *Table) {
	if len(w.pending) < w.order-1 {
		w.pending = append(w.pending, word)
		return
	}

	w.buf = append(append(w.buf[:0], w.pending...), word)
	existed := t.Inc(strings.Join(w.buf, " "))
	if existed && w.mode == Sticky {
		return
	}
	w.slide(word)
}

func (w *Window) slide(word string) {
	if len(w.pending) == 0 {
		return
	}
	copy(w.pending, w.pending[1:])
	w.pending[len(w.pending)-1] = word
}
