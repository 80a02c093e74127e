// Package history keeps the undo/redo timeline of a map as a list of
// serialized snapshots and a cursor pointing at the current one.
package history

import (
	"slices"
	"time"
)

// Entry is the state of a map after one change.
type Entry struct {
	Snapshot    []byte
	Description string
	At          time.Time
}

// Stack is a linear undo/redo history. The zero value is an empty, unbounded
// stack. A Stack is not safe for concurrent use.
type Stack struct {
	entries []Entry
	cursor  int
	limit   int
}

// New returns an empty stack that keeps at most limit entries. A limit of
// zero or less means no limit.
func New(limit int) *Stack {
	return &Stack{cursor: -1, limit: limit}
}

// Restore rebuilds a stack from stored entries. The cursor is clamped to the
// entry range.
func Restore(entries []Entry, cursor, limit int) *Stack {
	s := &Stack{entries: slices.Clone(entries), limit: limit}
	s.cursor = max(-1, min(cursor, len(entries)-1))
	if len(entries) > 0 && s.cursor < 0 {
		s.cursor = 0
	}
	return s
}

// Push records e as the new current state. Entries after the cursor are
// discarded. It returns how many of the oldest entries were dropped to stay
// within the limit.
func (s *Stack) Push(e Entry) int {
	if s.entries == nil && s.cursor == 0 {
		s.cursor = -1
	}
	s.entries = append(s.entries[:s.cursor+1], e)
	s.cursor = len(s.entries) - 1

	dropped := 0
	if s.limit > 0 && len(s.entries) > s.limit {
		dropped = len(s.entries) - s.limit
		s.entries = append([]Entry(nil), s.entries[dropped:]...)
		s.cursor -= dropped
	}
	return dropped
}

// Undo steps back one entry and returns it. It reports false when already at
// the oldest entry.
func (s *Stack) Undo() (Entry, bool) {
	if !s.CanUndo() {
		return Entry{}, false
	}
	s.cursor--
	return s.entries[s.cursor], true
}

// Redo steps forward one entry and returns it. It reports false when already
// at the newest entry.
func (s *Stack) Redo() (Entry, bool) {
	if !s.CanRedo() {
		return Entry{}, false
	}
	s.cursor++
	return s.entries[s.cursor], true
}

func (s *Stack) CanUndo() bool { return s.cursor > 0 }

func (s *Stack) CanRedo() bool { return s.cursor >= 0 && s.cursor < len(s.entries)-1 }

// Current returns the entry at the cursor.
func (s *Stack) Current() (Entry, bool) {
	if s.cursor < 0 || s.cursor >= len(s.entries) {
		return Entry{}, false
	}
	return s.entries[s.cursor], true
}

// Cursor is the index of the current entry, or -1 when empty.
func (s *Stack) Cursor() int {
	if len(s.entries) == 0 {
		return -1
	}
	return s.cursor
}

func (s *Stack) Len() int { return len(s.entries) }

// Entries returns a copy of the stored entries, oldest first. Later pushes do
// not change it.
func (s *Stack) Entries() []Entry { return slices.Clone(s.entries) }
