package widget

import "fmt"

// DefaultIncrement is added to an entry's value each time it is selected.
const DefaultIncrement = 100

// EntryID identifies a list entry for its whole lifetime, independent of its
// value or position.
type EntryID int

// String implements fmt.Stringer.
func (id EntryID) String() string {
	return fmt.Sprintf("#%d", int(id))
}

// Entry is one element of a NumberList.
type Entry struct {
	ID    EntryID `json:"id"`
	Value int     `json:"value"`
}

// ListOption configures a NumberList.
type ListOption func(*NumberList)

// WithIncrement overrides the amount added on selection.
func WithIncrement(n int) ListOption {
	return func(l *NumberList) {
		l.increment = n
	}
}

// NumberList is an ordered sequence of generated numbers. Entries are only
// ever appended or changed in place.
type NumberList struct {
	source    NumberSource
	increment int
	entries   []Entry
	nextID    EntryID
}

// NewNumberList creates an empty list drawing new values from source.
func NewNumberList(source NumberSource, opts ...ListOption) *NumberList {
	l := &NumberList{
		source:    source,
		increment: DefaultIncrement,
		nextID:    1,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Add appends a freshly generated value. The list is left untouched when the
// source fails.
func (l *NumberList) Add() (Entry, error) {
	if l.source == nil {
		return Entry{}, newValidationError("number list has no source", nil)
	}
	v, err := l.source.Next()
	if err != nil {
		return Entry{}, err
	}
	entry := Entry{ID: l.nextID, Value: v}
	l.nextID++
	l.entries = append(l.entries, entry)
	return entry, nil
}

// Select adds the increment to the entry identified by id and returns the
// updated entry.
func (l *NumberList) Select(id EntryID) (Entry, error) {
	for i := range l.entries {
		if l.entries[i].ID == id {
			l.entries[i].Value += l.increment
			return l.entries[i], nil
		}
	}
	return Entry{}, newEntryNotFoundError(map[string]interface{}{"id": int(id)})
}

// SelectValue adds the increment to the first entry whose value equals v.
// When several entries share a value only the earliest one changes; prefer
// Select.
func (l *NumberList) SelectValue(v int) (Entry, error) {
	for i := range l.entries {
		if l.entries[i].Value == v {
			l.entries[i].Value += l.increment
			return l.entries[i], nil
		}
	}
	return Entry{}, newEntryNotFoundError(map[string]interface{}{"value": v})
}

// Entry looks up an entry by id.
func (l *NumberList) Entry(id EntryID) (Entry, bool) {
	for _, e := range l.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Entries returns a copy of the entries in insertion order.
func (l *NumberList) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Values returns the current values in insertion order.
func (l *NumberList) Values() []int {
	out := make([]int, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.Value
	}
	return out
}

// Len returns the number of entries.
func (l *NumberList) Len() int {
	return len(l.entries)
}

// Increment returns the amount added on selection.
func (l *NumberList) Increment() int {
	return l.increment
}
