// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session owns the in-memory state for the active upload: the
// dataset, its derived links, and the per-row selection flags. At most one
// dataset and one selection are live at a time.
package session

import "fmt"

// defaultRangeSpan is the initial size of the range cursor after a reset.
const defaultRangeSpan = 10

// IndexError reports a selection toggle outside [0, size). It is a
// programming-level guard and should never surface to a user.
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("selection index %d out of range [0, %d)", e.Index, e.Size)
}

// Selection tracks a boolean "open" flag for every dataset row plus a
// contiguous range cursor. Flags and cursors are independent; both may
// drive subsets in the same session.
type Selection struct {
	flags       []bool
	rangeStart  int
	rangeEnd    int
	initialized bool
}

// Sync sizes the selection to the current dataset. On the first call, or
// whenever size differs from the previous call, flags reset to all-false
// and the range cursor to (1, min(10, size)). When the size is unchanged
// the call is a no-op, so user toggles persist across re-renders.
func (s *Selection) Sync(size int) {
	if s.initialized && len(s.flags) == size {
		return
	}
	s.flags = make([]bool, size)
	s.rangeStart = 1
	s.rangeEnd = min(defaultRangeSpan, size)
	s.initialized = true
}

// Size returns the number of flags.
func (s *Selection) Size() int { return len(s.flags) }

// SetAll sets every flag to v in one update.
func (s *Selection) SetAll(v bool) {
	for i := range s.flags {
		s.flags[i] = v
	}
}

// Toggle sets the flag at i. i must be in [0, Size()).
func (s *Selection) Toggle(i int, v bool) error {
	if i < 0 || i >= len(s.flags) {
		return &IndexError{Index: i, Size: len(s.flags)}
	}
	s.flags[i] = v
	return nil
}

// Flag returns the flag at i, or false when i is out of bounds.
func (s *Selection) Flag(i int) bool {
	if i < 0 || i >= len(s.flags) {
		return false
	}
	return s.flags[i]
}

// Flags returns a copy of the current flag values in row order.
func (s *Selection) Flags() []bool {
	out := make([]bool, len(s.flags))
	copy(out, s.flags)
	return out
}

// SetRange stores the 1-based inclusive range cursor. Values must already
// be clamped to [1, Size()] by the caller; the selection only records the
// last accepted values.
func (s *Selection) SetRange(start, end int) {
	s.rangeStart = start
	s.rangeEnd = end
}

// Range returns the stored range cursor.
func (s *Selection) Range() (start, end int) {
	return s.rangeStart, s.rangeEnd
}
