package modifier

import (
	"github.com/sarchlab/logikedit/geometry"
	"github.com/sarchlab/logikedit/history"
	"github.com/sarchlab/logikedit/layout"
	"github.com/sarchlab/logikedit/message"
	"github.com/sarchlab/logikedit/vocabulary"
)

// UndoGroup pops the most recent undo group and replays its entries in
// reverse (last pushed, first undone), restoring the Layout to the state
// it held before that group's edits, per spec.md §4.7.4. It reports false
// if there was nothing to undo.
//
// Replaying happens with History paused, so the replay itself is not
// journaled, but every Layout mutation still runs through Broadcaster so
// every index, selection, and validator stays in sync exactly as it would
// for an ordinary edit.
//
// An Entry names rows of the column store by the id or Segment they held
// at push time. That is a stable reference only as long as nothing else
// has since shuffled the table via SwapAndDelete — the same caveat that
// applies to every other raw id in this module (see KeyIndex). Where a
// lookup can instead be anchored on an entity's preserved geometry (a
// segment's Line survives every move this package performs on it) this
// code does so, which makes undo/redo robust to a Line's row having been
// relocated since; logic item and decoration ids are not line-anchored
// and are looked up directly, which is reliable for the common
// edit-then-undo-then-redo sequence this module is built to support.
func (m *Modifier) UndoGroup() bool {
	entries := m.History.PopUndoGroup()
	if entries == nil {
		return false
	}
	m.History.Pause()
	defer m.History.Resume()
	for _, e := range entries {
		m.undoEntry(e)
	}
	return true
}

// RedoGroup pops the most recently undone group and replays its entries
// forward, reapplying the edits UndoGroup reversed. It reports false if
// there was nothing to redo.
func (m *Modifier) RedoGroup() bool {
	entries := m.History.PopRedoGroup()
	if entries == nil {
		return false
	}
	m.History.Pause()
	defer m.History.Resume()
	for _, e := range entries {
		m.redoEntry(e)
	}
	return true
}

func (m *Modifier) undoEntry(e history.Entry) {
	switch e.Kind {
	case history.EntryCreateTemporaryElement:
		m.deleteByTarget(e)
	case history.EntryDeleteTemporaryElement:
		m.recreateByTarget(e)
	case history.EntryRestoreEndpoints:
		m.restoreEndpointsAt(e.Segment, e.PrevP0Type, e.PrevP1Type)
	case history.EntryMergeCollinearSegments:
		m.unmergeSegments(e)
	case history.EntrySplitSegmentAtOffset:
		m.unsplitSegment(e)
	case history.EntrySetInsertionMode:
		m.undoSetInsertionMode(e)
	case history.EntryMoveByDelta:
		m.moveByTarget(e, -e.Dx, -e.Dy)
	}
}

func (m *Modifier) redoEntry(e history.Entry) {
	switch e.Kind {
	case history.EntryCreateTemporaryElement:
		m.recreateByTarget(e)
	case history.EntryDeleteTemporaryElement:
		m.deleteByTarget(e)
	case history.EntryRestoreEndpoints:
		m.restoreEndpointsAt(e.Segment, e.P0Type, e.P1Type)
	case history.EntryMergeCollinearSegments:
		mergeTo, ok1 := m.findSegmentByLine(e.Segment.Wire, e.SegmentInfo.Line)
		deleted, ok2 := m.findSegmentByLine(e.Segment.Wire, e.OtherSegmentInfo.Line)
		if ok1 && ok2 {
			_ = m.mergeSegments(mergeTo, deleted)
		}
	case history.EntrySplitSegmentAtOffset:
		if seg, ok := m.findSegmentByLine(e.Segment.Wire, e.SegmentInfo.Line); ok {
			_, _ = m.SplitTemporarySegments(seg, e.Offset)
		}
	case history.EntrySetInsertionMode:
		m.redoSetInsertionMode(e)
	case history.EntryMoveByDelta:
		m.moveByTarget(e, e.Dx, e.Dy)
	}
}

// findSegmentByLine locates the current row of wire's tree whose geometry
// is line. None of the primitives in this package rewrite a segment's Line
// across a wire move (only which tree holds it, or a merge/split that
// produces a recorded, recomputable new Line), so this is a reliable way
// to recover a segment's current index from a stale one recorded earlier.
func (m *Modifier) findSegmentByLine(wire vocabulary.WireId, line geometry.OrderedLine) (vocabulary.Segment, bool) {
	tree := m.Layout.Wires.Tree(wire)
	for _, idx := range tree.Indices() {
		if tree.Line(idx) == line {
			return vocabulary.Segment{Wire: wire, Index: idx}, true
		}
	}
	return vocabulary.Segment{}, false
}

func (m *Modifier) deleteByTarget(e history.Entry) {
	switch e.Target {
	case history.TargetLogicItem:
		if int(e.LogicItemId) >= m.Layout.LogicItems.Len() {
			return
		}
		_, _ = m.deleteLogicItemRow(e.LogicItemId)
	case history.TargetDecoration:
		if int(e.DecorationId) >= m.Layout.Decorations.Len() {
			return
		}
		_, _ = m.deleteDecorationRow(e.DecorationId)
	case history.TargetSegment:
		if seg, ok := m.findSegmentByLine(e.Segment.Wire, e.SegmentInfo.Line); ok {
			_ = m.removeSegmentRow(seg)
		}
	}
}

func (m *Modifier) recreateByTarget(e history.Entry) {
	switch e.Target {
	case history.TargetLogicItem:
		id := m.Layout.LogicItems.Add(e.LogicItem)
		m.emit(message.Info{Kind: message.KindLogicItemCreated, LogicItemId: id, LogicItemData: e.LogicItem})
		if e.LogicItem.DisplayState.IsInserted() {
			m.emit(message.Info{Kind: message.KindLogicItemInserted, LogicItemId: id, LogicItemData: e.LogicItem})
		}
	case history.TargetDecoration:
		id := m.Layout.Decorations.Add(e.Decoration)
		m.emit(message.Info{Kind: message.KindDecorationCreated, DecorationId: id, DecorationData: e.Decoration})
		if e.Decoration.DisplayState.IsInserted() {
			m.emit(message.Info{Kind: message.KindDecorationInserted, DecorationId: id, DecorationData: e.Decoration})
		}
	case history.TargetSegment:
		tree := m.Layout.Wires.Tree(e.Segment.Wire)
		idx, err := tree.AddSegment(e.SegmentInfo)
		if err != nil {
			return
		}
		seg := vocabulary.Segment{Wire: e.Segment.Wire, Index: idx}
		m.emit(message.Info{Kind: message.KindSegmentCreated, Segment: seg, SegmentInfo: e.SegmentInfo})
		if !e.Segment.Wire.IsReserved() {
			m.emit(message.Info{Kind: message.KindSegmentInserted, Segment: seg, SegmentInfo: e.SegmentInfo})
		}
	}
}

func (m *Modifier) moveByTarget(e history.Entry, dx, dy geometry.Grid) {
	switch e.Target {
	case history.TargetLogicItem:
		if int(e.LogicItemId) >= m.Layout.LogicItems.Len() {
			return
		}
		item := m.Layout.LogicItems.Get(e.LogicItemId)
		m.Layout.LogicItems.SetPosition(e.LogicItemId, item.Position.Add(dx, dy))
	case history.TargetDecoration:
		if int(e.DecorationId) >= m.Layout.Decorations.Len() {
			return
		}
		dec := m.Layout.Decorations.Get(e.DecorationId)
		m.Layout.Decorations.SetPosition(e.DecorationId, dec.Position.Add(dx, dy))
	}
}

func (m *Modifier) restoreEndpointsAt(seg vocabulary.Segment, p0Type, p1Type vocabulary.SegmentPointType) {
	tree := m.Layout.Wires.Tree(seg.Wire)
	if int(seg.Index) >= tree.Len() {
		return
	}
	cur := tree.Info(seg.Index)
	next := layout.SegmentInfo{Line: cur.Line, P0Type: p0Type, P1Type: p1Type}
	if err := tree.UpdateSegment(seg.Index, next); err != nil {
		return
	}
	if !seg.Wire.IsReserved() {
		m.emit(message.Info{Kind: message.KindInsertedEndPointsUpdated, Segment: seg, SegmentInfo: next})
	}
}

func (m *Modifier) undoSetInsertionMode(e history.Entry) {
	switch e.Target {
	case history.TargetLogicItem:
		m.restoreLogicItemDisplayState(e.LogicItemId, e.PrevDisplayState)
	case history.TargetDecoration:
		m.restoreDecorationDisplayState(e.DecorationId, e.PrevDisplayState)
	case history.TargetSegment:
		cur, ok := m.findSegmentByLine(e.Segment.Wire, e.SegmentInfo.Line)
		if !ok {
			return
		}
		m.relocateSegment(cur, e.PrevSegment.Wire, e.SegmentInfo)
	}
}

func (m *Modifier) redoSetInsertionMode(e history.Entry) {
	switch e.Target {
	case history.TargetLogicItem:
		_ = m.ChangeLogicItemInsertionMode(e.LogicItemId, e.Mode)
	case history.TargetDecoration:
		_ = m.ChangeDecorationInsertionMode(e.DecorationId, e.Mode)
	case history.TargetSegment:
		cur, ok := m.findSegmentByLine(e.PrevSegment.Wire, e.SegmentInfo.Line)
		if !ok {
			return
		}
		_, _ = m.ChangeWireInsertionMode(cur, e.Mode)
	}
}

func (m *Modifier) restoreLogicItemDisplayState(id vocabulary.LogicItemId, state vocabulary.DisplayState) {
	if int(id) >= m.Layout.LogicItems.Len() {
		return
	}
	item := m.Layout.LogicItems.Get(id)
	if item.DisplayState.IsInserted() {
		m.emit(message.Info{Kind: message.KindLogicItemUninserted, LogicItemId: id, LogicItemData: item})
	}
	m.Layout.LogicItems.SetDisplayState(id, state)
	item.DisplayState = state
	if state.IsInserted() {
		m.emit(message.Info{Kind: message.KindLogicItemInserted, LogicItemId: id, LogicItemData: item})
	}
}

func (m *Modifier) restoreDecorationDisplayState(id vocabulary.DecorationId, state vocabulary.DisplayState) {
	if int(id) >= m.Layout.Decorations.Len() {
		return
	}
	dec := m.Layout.Decorations.Get(id)
	if dec.DisplayState.IsInserted() {
		m.emit(message.Info{Kind: message.KindDecorationUninserted, DecorationId: id, DecorationData: dec})
	}
	m.Layout.Decorations.SetDisplayState(id, state)
	dec.DisplayState = state
	if state.IsInserted() {
		m.emit(message.Info{Kind: message.KindDecorationInserted, DecorationId: id, DecorationData: dec})
	}
}

// relocateSegment moves the row at from into toWire's tree with info,
// emitting the Uninserted/Created/Inserted messages appropriate to the
// crossing, and returns the new Segment. Used by undo of a
// SetInsertionMode entry to restore a segment's original tree without
// running the collision/junction logic ChangeWireInsertionMode applies on
// a fresh transition.
func (m *Modifier) relocateSegment(from vocabulary.Segment, toWire vocabulary.WireId, info layout.SegmentInfo) vocabulary.Segment {
	if !from.Wire.IsReserved() {
		m.emit(message.Info{Kind: message.KindSegmentUninserted, Segment: from, SegmentInfo: info})
	}
	_ = m.removeSegmentRow(from)

	destTree := m.Layout.Wires.Tree(toWire)
	idx, err := destTree.AddSegment(info)
	if err != nil {
		return vocabulary.Segment{}
	}
	newSeg := vocabulary.Segment{Wire: toWire, Index: idx}
	m.emit(message.Info{Kind: message.KindSegmentCreated, Segment: newSeg, SegmentInfo: info})
	if !toWire.IsReserved() {
		m.emit(message.Info{Kind: message.KindSegmentInserted, Segment: newSeg, SegmentInfo: info})
	}
	return newSeg
}

// unmergeSegments reverses an EntryMergeCollinearSegments: it shrinks the
// merged row back to mergeTo's pre-merge span and re-adds the consumed
// segment as its own row.
func (m *Modifier) unmergeSegments(e history.Entry) {
	tree := m.Layout.Wires.Tree(e.Segment.Wire)
	cur, ok := m.findSegmentByLine(e.Segment.Wire, unionLine(e.SegmentInfo.Line, e.OtherSegmentInfo.Line))
	if !ok {
		return
	}

	part, ok := partWithin(tree.Line(cur.Index), e.SegmentInfo.Line)
	if !ok {
		return
	}
	if err := tree.ShrinkSegment(cur.Index, part); err != nil {
		return
	}
	if err := tree.UpdateSegment(cur.Index, e.SegmentInfo); err != nil {
		return
	}

	newIdx, err := tree.AddSegment(e.OtherSegmentInfo)
	if err != nil {
		return
	}
	newSeg := vocabulary.Segment{Wire: e.Segment.Wire, Index: newIdx}
	m.emit(message.Info{Kind: message.KindSegmentCreated, Segment: newSeg, SegmentInfo: e.OtherSegmentInfo})
	if !e.Segment.Wire.IsReserved() {
		m.emit(message.Info{Kind: message.KindInsertedEndPointsUpdated, Segment: cur, SegmentInfo: e.SegmentInfo})
		m.emit(message.Info{Kind: message.KindSegmentInserted, Segment: newSeg, SegmentInfo: e.OtherSegmentInfo})
	}
}

// unsplitSegment reverses an EntrySplitSegmentAtOffset: it deletes the
// second half split produced and re-grows the first half back to the
// recorded pre-split full span.
func (m *Modifier) unsplitSegment(e history.Entry) {
	tree := m.Layout.Wires.Tree(e.Segment.Wire)
	if int(e.Segment.Index) >= tree.Len() || int(e.NewSegment.Index) >= tree.Len() {
		return
	}

	_ = m.removeSegmentRow(e.NewSegment)

	firstLine := tree.Line(e.Segment.Index)
	part, ok := partWithin(e.SegmentInfo.Line, firstLine)
	if !ok {
		return
	}

	fullLen := geometry.Offset(e.SegmentInfo.Line.Length())
	var missing geometry.Part
	if part.Begin() == 0 {
		missing = geometry.MustNewPart(part.End(), fullLen)
	} else {
		missing = geometry.MustNewPart(0, part.Begin())
	}
	missingLine := missing.ToLine(e.SegmentInfo.Line)
	tempInfo := layout.SegmentInfo{Line: missingLine, P0Type: vocabulary.SegmentPointShadow, P1Type: vocabulary.SegmentPointShadow}

	tempIdx, err := tree.AddSegment(tempInfo)
	if err != nil {
		return
	}
	if err := tree.SwapAndMergeSegment(e.Segment.Index, tempIdx); err != nil {
		return
	}
	if err := tree.UpdateSegment(e.Segment.Index, e.SegmentInfo); err != nil {
		return
	}
	if !e.Segment.Wire.IsReserved() {
		m.emit(message.Info{Kind: message.KindInsertedEndPointsUpdated, Segment: e.Segment, SegmentInfo: e.SegmentInfo})
	}
}

func unionLine(a, b geometry.OrderedLine) geometry.OrderedLine {
	points := []geometry.Point{a.P0(), a.P1(), b.P0(), b.P1()}
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		if p.Less(min) {
			min = p
		}
		if max.Less(p) {
			max = p
		}
	}
	return geometry.MustNewOrderedLine(min, max)
}

func partWithin(cur, sub geometry.OrderedLine) (geometry.Part, bool) {
	subLen := geometry.Offset(sub.Length())
	switch {
	case sub.P0() == cur.P0():
		return geometry.MustNewPart(0, subLen), true
	case sub.P1() == cur.P1():
		curLen := geometry.Offset(cur.Length())
		return geometry.MustNewPart(curLen-subLen, curLen), true
	default:
		return geometry.Part{}, false
	}
}
