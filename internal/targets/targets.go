// Package targets owns the two rolling target lists (history and observing),
// the active-list selection, and the shared target cell. All mutation happens
// on the single UI control goroutine; no internal locking is needed.
package targets

import (
	"errors"
	"fmt"

	"github.com/sightline/sightline/internal/catalog"
	"github.com/sightline/sightline/internal/obslist"
)

// ListTag names one of the two lists.
type ListTag int

const (
	History ListTag = iota
	Observing
)

func (t ListTag) String() string {
	if t == Observing {
		return "Obsv"
	}
	return "Hist"
}

var (
	// ErrEmptyList reports an operation refused because the operand list
	// holds nothing: switching to an empty list, saving an empty list.
	// State is left unchanged.
	ErrEmptyList = errors.New("list is empty")
	// ErrNoMatches reports a load that parsed cleanly but resolved no
	// objects. Reported to the user, not fatal.
	ErrNoMatches = errors.New("no matches")
)

const cursorUnset = -1

// Manager holds both lists plus the active-list cursor and shared target.
// Invariant: whenever the cursor is set, the target is the object at the
// cursor position of the active list.
type Manager struct {
	history   []catalog.Object
	observing []catalog.Object

	active ListTag
	cursor int
	target *catalog.Object

	lists *obslist.Store
	cat   catalog.Store
}

// NewManager starts with empty lists, history active, and no target.
func NewManager(lists *obslist.Store, cat catalog.Store) *Manager {
	return &Manager{active: History, cursor: cursorUnset, lists: lists, cat: cat}
}

// Target returns the shared target, if set.
func (m *Manager) Target() (catalog.Object, bool) {
	if m.target == nil {
		return catalog.Object{}, false
	}
	return *m.target, true
}

// ActiveTag reports which list is being browsed.
func (m *Manager) ActiveTag() ListTag {
	return m.active
}

// ActiveObjects returns the contents of the active list.
func (m *Manager) ActiveObjects() []catalog.Object {
	if m.active == Observing {
		return m.observing
	}
	return m.history
}

// Cursor returns the position within the active list, if set.
func (m *Manager) Cursor() (int, bool) {
	if m.cursor == cursorUnset {
		return 0, false
	}
	return m.cursor, true
}

// SetTarget commits an object as the shared target and appends it to
// history, duplicates allowed. The cursor is re-synced afterwards.
func (m *Manager) SetTarget(obj catalog.Object) {
	m.target = &obj
	m.AppendHistory(obj)
	m.Resync()
}

// AppendHistory pushes to the end of the history list. No de-duplication.
func (m *Manager) AppendHistory(obj catalog.Object) {
	m.history = append(m.history, obj)
}

// ReplaceObserving swaps the whole observing list. If observing is active,
// the cursor resets to the first element, or clears when the new list is
// empty.
func (m *Manager) ReplaceObserving(objects []catalog.Object) {
	m.observing = objects
	if m.active != Observing {
		return
	}
	if len(m.observing) == 0 {
		m.cursor = cursorUnset
		return
	}
	m.cursor = 0
	m.target = &m.observing[0]
}

// SwitchActive toggles between history and observing. Switching to history
// lands on the most recently viewed object; switching to observing lands on
// the first. An empty destination refuses the switch with ErrEmptyList and
// leaves everything unchanged.
func (m *Manager) SwitchActive() error {
	if m.active == History {
		if len(m.observing) == 0 {
			return fmt.Errorf("observing: %w", ErrEmptyList)
		}
		m.active = Observing
		m.cursor = 0
	} else {
		if len(m.history) == 0 {
			return fmt.Errorf("history: %w", ErrEmptyList)
		}
		m.active = History
		m.cursor = len(m.history) - 1
	}
	m.target = &m.ActiveObjects()[m.cursor]
	return nil
}

// Scroll moves the cursor by direction (+1 or -1), clamped to the list
// bounds. At either end repeated scrolling is a no-op. Without a cursor
// there is nothing to scroll.
func (m *Manager) Scroll(direction int) {
	if m.cursor == cursorUnset {
		return
	}
	active := m.ActiveObjects()
	m.cursor += direction
	if m.cursor >= len(active) {
		m.cursor = len(active) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.target = &active[m.cursor]
}

// Resync recomputes the cursor by scanning the active list for the shared
// target. A miss clears the cursor; that is expected after list swaps, not
// an error. Invoked whenever the locate screen becomes active.
func (m *Manager) Resync() {
	m.cursor = cursorUnset
	if m.target == nil {
		return
	}
	for i, obj := range m.ActiveObjects() {
		if obj.ID() == m.target.ID() {
			m.cursor = i
			return
		}
	}
}

// Save serializes the chosen list under a caller-chosen name. Saving an
// empty list is refused with ErrEmptyList. Returns the object count written.
func (m *Manager) Save(scope ListTag, name string) (int, error) {
	objects := m.history
	if scope == Observing {
		objects = m.observing
	}
	if len(objects) == 0 {
		return 0, fmt.Errorf("%s: %w", scope, ErrEmptyList)
	}
	if err := m.lists.WriteList(objects, name); err != nil {
		return 0, err
	}
	return len(objects), nil
}

// Load replaces the observing list from a saved list, makes it active, and
// targets its first object. Returns how many objects resolved against how
// many entries were present; zero resolved objects reports ErrNoMatches and
// leaves prior state intact.
func (m *Manager) Load(name string) (loaded, parsed int, err error) {
	result, err := m.lists.ReadList(m.cat, name)
	if err != nil {
		return 0, 0, err
	}
	if len(result.Objects) == 0 {
		return 0, result.Parsed, ErrNoMatches
	}

	m.observing = result.Objects
	m.active = Observing
	m.cursor = 0
	m.target = &m.observing[0]
	return len(result.Objects), result.Parsed, nil
}

// ListNames enumerates saved lists for the load menu.
func (m *Manager) ListNames() ([]string, error) {
	return m.lists.ListNames()
}
