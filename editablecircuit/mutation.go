package editablecircuit

import (
	"github.com/sarchlab/logikedit/geometry"
	"github.com/sarchlab/logikedit/layout"
	"github.com/sarchlab/logikedit/vocabulary"
)

// The methods in this file are direct pass-throughs to Modifier, forming
// spec.md §6.2's mutation surface. CircuitData adds nothing to their
// semantics; it exists so callers drive one type for the whole session
// instead of reaching past it into Modifier.

// AddLogicItem mirrors Modifier.AddLogicItem.
func (c *CircuitData) AddLogicItem(def layout.LogicItem, pos geometry.Point, mode vocabulary.InsertionMode) (vocabulary.LogicItemId, error) {
	return c.Modifier.AddLogicItem(def, pos, mode)
}

// ChangeLogicItemInsertionMode mirrors Modifier.ChangeLogicItemInsertionMode.
func (c *CircuitData) ChangeLogicItemInsertionMode(id vocabulary.LogicItemId, mode vocabulary.InsertionMode) error {
	return c.Modifier.ChangeLogicItemInsertionMode(id, mode)
}

// DeleteLogicItem mirrors Modifier.DeleteTemporaryLogicItem.
func (c *CircuitData) DeleteLogicItem(id vocabulary.LogicItemId) error {
	return c.Modifier.DeleteTemporaryLogicItem(id)
}

// MoveOrDeleteLogicItem mirrors Modifier.MoveOrDeleteTemporaryLogicItem.
func (c *CircuitData) MoveOrDeleteLogicItem(id vocabulary.LogicItemId, dx, dy geometry.Grid) error {
	return c.Modifier.MoveOrDeleteTemporaryLogicItem(id, dx, dy)
}

// SetLogicItemClockGeneratorAttrs implements spec.md §6.2's
// set_attributes for the one element type (ClockGenerator) that carries
// type-specific attributes in this module; every other ElementType has no
// mutable attribute beyond position/orientation/insertion mode, which the
// other primitives already cover.
func (c *CircuitData) SetLogicItemClockGeneratorAttrs(id vocabulary.LogicItemId, attrs *layout.AttrsClockGenerator) {
	c.Modifier.Layout.LogicItems.SetClockGeneratorAttrs(id, attrs)
}

// AddDecoration mirrors Modifier.AddDecoration.
func (c *CircuitData) AddDecoration(def layout.Decoration, pos geometry.Point, mode vocabulary.InsertionMode) (vocabulary.DecorationId, error) {
	return c.Modifier.AddDecoration(def, pos, mode)
}

// ChangeDecorationInsertionMode mirrors Modifier.ChangeDecorationInsertionMode.
func (c *CircuitData) ChangeDecorationInsertionMode(id vocabulary.DecorationId, mode vocabulary.InsertionMode) error {
	return c.Modifier.ChangeDecorationInsertionMode(id, mode)
}

// DeleteDecoration mirrors Modifier.DeleteTemporaryDecoration.
func (c *CircuitData) DeleteDecoration(id vocabulary.DecorationId) error {
	return c.Modifier.DeleteTemporaryDecoration(id)
}

// MoveOrDeleteDecoration mirrors Modifier.MoveOrDeleteTemporaryDecoration.
func (c *CircuitData) MoveOrDeleteDecoration(id vocabulary.DecorationId, dx, dy geometry.Grid) error {
	return c.Modifier.MoveOrDeleteTemporaryDecoration(id, dx, dy)
}

// AddWireSegment mirrors Modifier.AddSegment — add_wire_segment(line,
// mode) in spec.md §6.2's naming, built as add-then-retarget since
// Modifier's own primitive always starts a segment temporary.
func (c *CircuitData) AddWireSegment(line geometry.OrderedLine, mode vocabulary.InsertionMode) (vocabulary.Segment, error) {
	seg, err := c.Modifier.AddSegment(line, vocabulary.SegmentPointShadow, vocabulary.SegmentPointShadow)
	if err != nil {
		return vocabulary.Segment{}, err
	}
	if mode == vocabulary.InsertionModeTemporary {
		return seg, nil
	}
	return c.Modifier.ChangeWireInsertionMode(seg, mode)
}

// ChangeWireInsertionMode mirrors Modifier.ChangeWireInsertionMode — the
// change_wire_insertion_mode(part, mode) primitive of spec.md §6.2.
// Partial-segment retargeting (a part crossing a non-temporary boundary)
// is rejected up front by Modifier's own checks; this module always
// operates on whole segments, splitting first via SplitTemporarySegments
// when a caller needs to retarget only part of one.
func (c *CircuitData) ChangeWireInsertionMode(seg vocabulary.Segment, mode vocabulary.InsertionMode) (vocabulary.Segment, error) {
	return c.Modifier.ChangeWireInsertionMode(seg, mode)
}

// MoveTemporary shifts an uninserted segment by (dx, dy) — the
// move_temporary(...) primitive of spec.md §6.2. Full relocation by delta
// on uninserted geometry is done by deleting and re-adding the segment at
// its shifted line, since SegmentTree has no in-place line-move (only
// ShrinkSegment/UpdateSegment, which require the same full part or
// length); see Modifier.SplitTemporarySegments/ShrinkSegment for why a
// length-preserving update already exists for the split path but not for
// an arbitrary translate.
func (c *CircuitData) MoveTemporary(seg vocabulary.Segment, dx, dy geometry.Grid) (vocabulary.Segment, error) {
	tree := c.Modifier.Layout.Wires.Tree(seg.Wire)
	info := tree.Info(seg.Index)
	moved := geometry.MustNewOrderedLine(info.Line.P0().Add(dx, dy), info.Line.P1().Add(dx, dy))

	if err := c.Modifier.DeleteTemporarySegment(seg); err != nil {
		return vocabulary.Segment{}, err
	}
	return c.Modifier.AddSegment(moved, info.P0Type, info.P1Type)
}

// RegularizeTemporarySelection mirrors Modifier.RegularizeTemporarySelection.
func (c *CircuitData) RegularizeTemporarySelection(selection []vocabulary.Segment, trueCrosspoints []geometry.Point) error {
	return c.Modifier.RegularizeTemporarySelection(selection, trueCrosspoints)
}

// SplitTemporarySegments mirrors Modifier.SplitTemporarySegments.
func (c *CircuitData) SplitTemporarySegments(seg vocabulary.Segment, offset geometry.Offset) (vocabulary.Segment, error) {
	return c.Modifier.SplitTemporarySegments(seg, offset)
}

// BeginGroup mirrors Modifier.History.BeginGroup.
func (c *CircuitData) BeginGroup() { c.Modifier.History.BeginGroup() }

// UndoGroup mirrors Modifier.UndoGroup.
func (c *CircuitData) UndoGroup() bool { return c.Modifier.UndoGroup() }

// RedoGroup mirrors Modifier.RedoGroup.
func (c *CircuitData) RedoGroup() bool { return c.Modifier.RedoGroup() }

// EnableHistory mirrors Modifier.History.Enable.
func (c *CircuitData) EnableHistory() { c.Modifier.History.Enable() }

// DisableHistory mirrors Modifier.History.Disable.
func (c *CircuitData) DisableHistory() { c.Modifier.History.Disable() }
