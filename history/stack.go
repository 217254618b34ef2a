package history

// DefaultHistoryCapacity bounds the number of undo groups retained, per
// original_source/src/container/circular_buffer.h — pathologically long
// edit sessions drop the oldest group instead of growing the undo stack
// without bound.
const DefaultHistoryCapacity = 1000

// Stack is the undo/redo journal. Entries are collected into groups (one
// group per user-facing edit); undo/redo pop and replay a whole group's
// entries at once. It is backed by a capacity-bounded ring buffer of
// groups — pushing past capacity silently drops the oldest undo group.
type Stack struct {
	enabled bool

	groups []group
	redo   []group

	capacity int
}

type group struct {
	entries []Entry
}

// NewStack returns a Stack with DefaultHistoryCapacity.
func NewStack() *Stack {
	return &Stack{capacity: DefaultHistoryCapacity}
}

// Enable turns history recording on and opens a fresh group boundary.
// Matches spec.md §4.7.4: "Enabling history begins group boundaries."
func (s *Stack) Enable() {
	s.enabled = true
	s.BeginGroup()
}

// Disable turns history recording off and clears every recorded group,
// per spec.md §4.7.4: "disabling clears."
func (s *Stack) Disable() {
	s.enabled = false
	s.groups = nil
	s.redo = nil
}

// Enabled reports whether history is currently recording.
func (s *Stack) Enabled() bool { return s.enabled }

// Pause stops recording without discarding any previously recorded group,
// unlike Disable. Modifier uses this while replaying an undo or redo
// group's forward primitives, so that the replay itself is not journaled.
func (s *Stack) Pause() { s.enabled = false }

// Resume re-enables recording after Pause, leaving existing groups intact.
func (s *Stack) Resume() { s.enabled = true }

// BeginGroup opens a new, empty undo group. A subsequent Push appends to
// it. Calling BeginGroup with an already-empty current group is a no-op.
func (s *Stack) BeginGroup() {
	if !s.enabled {
		return
	}
	if len(s.groups) > 0 && len(s.groups[len(s.groups)-1].entries) == 0 {
		return
	}
	s.groups = append(s.groups, group{})
	s.redo = nil // a fresh edit invalidates the redo stack
	s.evictIfOverCapacity()
}

func (s *Stack) evictIfOverCapacity() {
	if len(s.groups) > s.capacity {
		s.groups = s.groups[len(s.groups)-s.capacity:]
	}
}

// Push appends entry to the current group in chronological order;
// PopUndoGroup hands the group back last-pushed-first. A no-op while
// history is disabled.
func (s *Stack) Push(entry Entry) {
	if !s.enabled {
		return
	}
	if len(s.groups) == 0 {
		s.groups = append(s.groups, group{})
	}
	last := len(s.groups) - 1
	s.groups[last].entries = append(s.groups[last].entries, entry)
}

// CanUndo reports whether there is a non-empty group to undo.
func (s *Stack) CanUndo() bool {
	for i := len(s.groups) - 1; i >= 0; i-- {
		if len(s.groups[i].entries) > 0 {
			return true
		}
	}
	return false
}

// CanRedo reports whether there is a group to redo.
func (s *Stack) CanRedo() bool { return len(s.redo) > 0 }

// PopUndoGroup removes and returns the most recent non-empty group's
// entries in the order they must be replayed (last pushed, first undone),
// pushing it onto the redo stack. Returns nil if there is nothing to undo.
func (s *Stack) PopUndoGroup() []Entry {
	for len(s.groups) > 0 {
		last := len(s.groups) - 1
		g := s.groups[last]
		s.groups = s.groups[:last]
		if len(g.entries) == 0 {
			continue
		}
		s.redo = append(s.redo, g)

		reversed := make([]Entry, len(g.entries))
		for i, e := range g.entries {
			reversed[len(g.entries)-1-i] = e
		}
		return reversed
	}
	return nil
}

// PopRedoGroup removes and returns the most recently undone group's
// entries, in forward (original) order, pushing it back onto the undo
// stack. Returns nil if there is nothing to redo.
func (s *Stack) PopRedoGroup() []Entry {
	if len(s.redo) == 0 {
		return nil
	}
	last := len(s.redo) - 1
	g := s.redo[last]
	s.redo = s.redo[:last]
	s.groups = append(s.groups, g)
	s.evictIfOverCapacity()
	return append([]Entry{}, g.entries...)
}

// Len returns the number of recorded (non-empty) undo groups.
func (s *Stack) Len() int {
	n := 0
	for _, g := range s.groups {
		if len(g.entries) > 0 {
			n++
		}
	}
	return n
}
