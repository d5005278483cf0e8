package storage

import "bytes"

type EntryState int

const (
	StateModified EntryState = iota
	StateDeleted
)

func (s EntryState) String() string {
	switch s {
	case StateDeleted:
		return "deleted"
	default:
		return "modified"
	}
}

// Entry is one staged change. Key and Value are owned by the tracker.
type Entry struct {
	Key   []byte
	Value []byte
	State EntryState
}

// changeTracker keeps one entry per key, in first-staged order.
// Staging a key again replaces its entry in place.
// Every track is journaled so that the changes staged after a mark can be undone.
type changeTracker struct {
	entries []Entry
	index   map[string]int
	journal []undo
}

// undo restores the slot of one tracked change: the previous entry when the key
// was already staged, removal of the appended entry otherwise.
type undo struct {
	position int
	previous Entry
	replaced bool
}

func newChangeTracker() *changeTracker {
	return &changeTracker{index: make(map[string]int)}
}

func (t *changeTracker) track(key, value []byte, state EntryState) {
	entry := Entry{
		Key:   bytes.Clone(key),
		Value: bytes.Clone(value),
		State: state,
	}
	if i, ok := t.index[string(key)]; ok {
		t.journal = append(t.journal, undo{position: i, previous: t.entries[i], replaced: true})
		t.entries[i] = entry
		return
	}
	t.journal = append(t.journal, undo{position: len(t.entries)})
	t.index[string(key)] = len(t.entries)
	t.entries = append(t.entries, entry)
}

func (t *changeTracker) mark() int {
	return len(t.journal)
}

// rewind undoes, newest first, every track journaled after mark.
// A mark taken before the last clear is ignored.
func (t *changeTracker) rewind(mark int) {
	if mark < 0 || mark > len(t.journal) {
		return
	}
	for i := len(t.journal) - 1; i >= mark; i-- {
		u := t.journal[i]
		if u.replaced {
			t.entries[u.position] = u.previous
			continue
		}
		delete(t.index, string(t.entries[u.position].Key))
		t.entries = t.entries[:u.position]
	}
	t.journal = t.journal[:mark]
}

func (t *changeTracker) lookup(key []byte) (Entry, bool) {
	i, ok := t.index[string(key)]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

func (t *changeTracker) len() int {
	return len(t.entries)
}

// snapshot returns the entries in staging order. The slice is a copy,
// the byte slices are shared and never mutated after tracking.
func (t *changeTracker) snapshot() []Entry {
	entries := make([]Entry, len(t.entries))
	copy(entries, t.entries)
	return entries
}

func (t *changeTracker) clear() {
	t.entries = nil
	t.index = make(map[string]int)
	t.journal = nil
}
