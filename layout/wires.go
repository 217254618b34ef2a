package layout

import "github.com/sarchlab/logikedit/vocabulary"

// Wires is the table of SegmentTrees, one per wire id. Ids 0 and 1 are the
// reserved TemporaryWireId and CollidingWireId and always exist; every
// other id (>= FirstInsertedWireId) is an inserted wire.
type Wires struct {
	trees        []SegmentTree
	displayState []vocabulary.DisplayState
}

func newWires() *Wires {
	w := &Wires{}
	// Reserve ids 0 (temporary) and 1 (colliding).
	w.trees = append(w.trees, SegmentTree{}, SegmentTree{})
	w.displayState = append(w.displayState, vocabulary.DisplayStateTemporary, vocabulary.DisplayStateColliding)
	return w
}

// Len returns the number of wires currently stored, including the two
// reserved ones.
func (w *Wires) Len() int { return len(w.trees) }

// Tree returns a pointer to the SegmentTree owned by id.
func (w *Wires) Tree(id vocabulary.WireId) *SegmentTree {
	return &w.trees[id]
}

// DisplayState returns the display state of id.
func (w *Wires) DisplayState(id vocabulary.WireId) vocabulary.DisplayState {
	return w.displayState[id]
}

// SetDisplayState updates the display state of id. Reserved ids keep their
// fixed display state (temporary, colliding) and this is a no-op for them.
func (w *Wires) SetDisplayState(id vocabulary.WireId, state vocabulary.DisplayState) {
	if id.IsReserved() {
		return
	}
	w.displayState[id] = state
}

// AddInsertedWire allocates a new wire id (>= FirstInsertedWireId) with an
// empty SegmentTree and returns it.
func (w *Wires) AddInsertedWire(state vocabulary.DisplayState) vocabulary.WireId {
	id := vocabulary.WireId(len(w.trees))
	w.trees = append(w.trees, SegmentTree{})
	w.displayState = append(w.displayState, state)
	return id
}

// SwapAndDelete removes an inserted wire (id must be >= FirstInsertedWireId)
// by moving the last row into its slot. Returns the id relocated into id's
// slot, if any.
func (w *Wires) SwapAndDelete(id vocabulary.WireId) (relocated *vocabulary.WireId) {
	last := vocabulary.WireId(len(w.trees) - 1)
	if id != last {
		w.trees[id] = w.trees[last]
		w.displayState[id] = w.displayState[last]
		relocated = &last
	}
	w.trees = w.trees[:last]
	w.displayState = w.displayState[:last]
	return relocated
}

// AllocatedSize reports an estimated memory footprint of the table: the
// segment trees are counted by len(), the display-state column by cap().
func (w *Wires) AllocatedSize() int {
	size := 0
	for i := range w.trees {
		size += len(w.trees[i].Indices()) * 40
	}
	return size + cap(w.displayState)*8
}
