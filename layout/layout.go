package layout

// Layout is the dense column-store holding every logic item, decoration,
// and wire of one circuit. It has no knowledge of indices, selections, or
// history — those are derived/maintained by higher layers (see packages
// index, selection, modifier) that observe every mutation made here.
type Layout struct {
	LogicItems  *LogicItems
	Decorations *Decorations
	Wires       *Wires
}

// New returns an empty Layout with its two reserved wire ids
// (TemporaryWireId, CollidingWireId) already present.
func New() *Layout {
	return &Layout{
		LogicItems:  newLogicItems(),
		Decorations: newDecorations(),
		Wires:       newWires(),
	}
}

// Normalize normalizes every wire's SegmentTree (spec.md §4.2). The logic
// item and decoration tables are left in their current row order, so
// layouts whose items were added in different orders still differ.
func (l *Layout) Normalize() {
	for id := 0; id < l.Wires.Len(); id++ {
		l.Wires.trees[id].Normalize()
	}
}

// AllocatedSize reports the combined cap()-based memory footprint of every
// owned table, per spec.md §4.4.
func (l *Layout) AllocatedSize() int {
	return l.LogicItems.AllocatedSize() + l.Decorations.AllocatedSize() + l.Wires.AllocatedSize()
}
