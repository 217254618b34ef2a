package modifier

import (
	"fmt"

	"github.com/sarchlab/logikedit/geometry"
	"github.com/sarchlab/logikedit/history"
	"github.com/sarchlab/logikedit/layout"
	"github.com/sarchlab/logikedit/message"
	"github.com/sarchlab/logikedit/vocabulary"
)

// AddSegment appends a new segment to the temporary wire tree, with both
// endpoints starting out shadow unless overridden by p0Type/p1Type, per
// spec.md §4.7.1's add_segment primitive.
func (m *Modifier) AddSegment(line geometry.OrderedLine, p0Type, p1Type vocabulary.SegmentPointType) (vocabulary.Segment, error) {
	m.beginGroup()

	tree := m.Layout.Wires.Tree(vocabulary.TemporaryWireId)
	idx, err := tree.AddSegment(layout.SegmentInfo{Line: line, P0Type: p0Type, P1Type: p1Type})
	if err != nil {
		return vocabulary.Segment{}, err
	}

	seg := vocabulary.Segment{Wire: vocabulary.TemporaryWireId, Index: idx}
	m.emit(message.Info{Kind: message.KindSegmentCreated, Segment: seg, SegmentInfo: tree.Info(idx)})
	m.History.Push(history.Entry{Kind: history.EntryCreateTemporaryElement, Target: history.TargetSegment, Segment: seg, SegmentInfo: tree.Info(idx)})
	return seg, nil
}

// SetTemporaryEndpoints rewrites the endpoint classification of seg (which
// must live in the temporary or colliding tree) without moving its line.
func (m *Modifier) SetTemporaryEndpoints(seg vocabulary.Segment, p0Type, p1Type vocabulary.SegmentPointType) error {
	if !seg.Wire.IsReserved() {
		return fmt.Errorf("%w: set_temporary_endpoints requires an uninserted segment, got wire %d", vocabulary.ErrStateViolation, seg.Wire)
	}

	m.beginGroup()
	tree := m.Layout.Wires.Tree(seg.Wire)
	old := tree.Info(seg.Index)

	m.History.Push(history.Entry{
		Kind: history.EntryRestoreEndpoints, Target: history.TargetSegment, Segment: seg,
		P0Type: p0Type, P1Type: p1Type,
		PrevP0Type: old.P0Type, PrevP1Type: old.P1Type,
	})

	next := layout.SegmentInfo{Line: old.Line, P0Type: p0Type, P1Type: p1Type}
	return tree.UpdateSegment(seg.Index, next)
}

// DeleteTemporarySegment removes seg, which must currently live in the
// temporary or colliding tree, mirroring DeleteTemporaryLogicItem for
// segments.
func (m *Modifier) DeleteTemporarySegment(seg vocabulary.Segment) error {
	if !seg.Wire.IsReserved() {
		return fmt.Errorf("%w: delete_temporary_segment requires an uninserted segment", vocabulary.ErrStateViolation)
	}

	m.beginGroup()
	tree := m.Layout.Wires.Tree(seg.Wire)
	info := tree.Info(seg.Index)
	m.History.Push(history.Entry{Kind: history.EntryDeleteTemporaryElement, Target: history.TargetSegment, Segment: seg, SegmentInfo: info})
	return m.removeSegmentRow(seg)
}

// MergeUninsertedSegment merges two collinear, endpoint-sharing segments of
// the same uninserted wire (temporary or colliding) into one, per
// spec.md §4.3's merge_collinear_segments step. mergeTo survives; deleted
// is removed and, if a segment was relocated into its old slot, a
// SegmentIdUpdated message is emitted so observers follow the index. This
// is the public primitive for the temporary/colliding trees; the same
// merge step also runs internally on inserted wires while fixing up
// junctions (see wire_insertion.go's fixEndpointAt), via mergeSegments.
func (m *Modifier) MergeUninsertedSegment(mergeTo, deleted vocabulary.Segment) error {
	if mergeTo.Wire != deleted.Wire || !mergeTo.Wire.IsReserved() {
		return fmt.Errorf("%w: merge_uninserted_segment requires two segments of the same uninserted wire", vocabulary.ErrStateViolation)
	}

	m.beginGroup()
	return m.mergeSegments(mergeTo, deleted)
}

// mergeSegments performs the SwapAndMergeSegment step shared by the public
// MergeUninsertedSegment primitive and the internal endpoint-fixup pass
// that runs on inserted wires too; it records full before-state for both
// segments so the merge can be undone even though the deleted segment's
// own id does not survive.
func (m *Modifier) mergeSegments(mergeTo, deleted vocabulary.Segment) error {
	tree := m.Layout.Wires.Tree(mergeTo.Wire)

	deletedInfo := tree.Info(deleted.Index)
	deletedFull := tree.Part(deleted.Index)

	m.History.Push(history.Entry{
		Kind: history.EntryMergeCollinearSegments, Target: history.TargetSegment,
		Segment: mergeTo, OtherSegment: deleted,
		SegmentInfo: tree.Info(mergeTo.Index), OtherSegmentInfo: deletedInfo,
	})

	if err := tree.SwapAndMergeSegment(mergeTo.Index, deleted.Index); err != nil {
		return err
	}

	// deleted's own [0, len) frame now lives somewhere inside mergeTo's new
	// (longer) line; recover that sub-range so any selection held on
	// deleted's old identity can be remapped onto mergeTo's rather than
	// simply dropped.
	mergedLine := tree.Line(mergeTo.Index)
	destBegin := mergedLine.OffsetAlong(deletedInfo.Line.P0())
	destEnd := mergedLine.OffsetAlong(deletedInfo.Line.P1())
	if destBegin > destEnd {
		destBegin, destEnd = destEnd, destBegin
	}

	m.emit(message.Info{
		Kind:           message.KindSegmentPartMoved,
		SegmentPartSrc: message.SegmentPart{Segment: deleted, Part: deletedFull},
		SegmentPartDst: message.SegmentPart{Segment: mergeTo, Part: geometry.MustNewPart(destBegin, destEnd)},
	})
	m.emit(message.Info{
		Kind:           message.KindSegmentPartDeleted,
		SegmentPartSrc: message.SegmentPart{Segment: deleted, Part: deletedFull},
	})

	relocatedIdx := deleted.Index
	if int(relocatedIdx) < tree.Len() {
		kind := message.KindSegmentIdUpdated
		if !mergeTo.Wire.IsReserved() {
			kind = message.KindInsertedSegmentIdUpdated
		}
		m.emit(message.Info{
			Kind:       kind,
			OldSegment: vocabulary.Segment{Wire: mergeTo.Wire, Index: vocabulary.SegmentIndex(tree.Len())},
			Segment:    vocabulary.Segment{Wire: mergeTo.Wire, Index: relocatedIdx},
			SegmentInfo: tree.Info(relocatedIdx),
		})
	}
	return nil
}

// SplitTemporarySegments splits seg at offset into two segments, the
// second becoming a newly-appended segment of the same tree, both
// endpoints at the split point becoming shadow points. Per
// spec.md §4.3's split_segment_at_offset.
func (m *Modifier) SplitTemporarySegments(seg vocabulary.Segment, offset geometry.Offset) (vocabulary.Segment, error) {
	if !seg.Wire.IsReserved() {
		return vocabulary.Segment{}, fmt.Errorf("%w: split_temporary_segments requires an uninserted segment", vocabulary.ErrStateViolation)
	}

	m.beginGroup()
	tree := m.Layout.Wires.Tree(seg.Wire)
	full := tree.Part(seg.Index)
	if offset <= full.Begin() || offset >= full.End() {
		return vocabulary.Segment{}, fmt.Errorf("%w: split offset %d is not strictly inside %v", vocabulary.ErrInvalidArgument, offset, full)
	}

	beforeInfo := tree.Info(seg.Index)

	secondPart := geometry.MustNewPart(offset, full.End())
	newIdx, err := tree.CopySegment(tree, seg.Index, &secondPart)
	if err != nil {
		return vocabulary.Segment{}, err
	}
	newSeg := vocabulary.Segment{Wire: seg.Wire, Index: newIdx}
	m.emit(message.Info{Kind: message.KindSegmentCreated, Segment: newSeg, SegmentInfo: tree.Info(newIdx)})
	m.emit(message.Info{
		Kind:           message.KindSegmentPartMoved,
		SegmentPartSrc: message.SegmentPart{Segment: seg, Part: secondPart},
		SegmentPartDst: message.SegmentPart{Segment: newSeg, Part: geometry.MustNewPart(0, secondPart.Length())},
	})

	firstPart := geometry.MustNewPart(full.Begin(), offset)
	if err := tree.ShrinkSegment(seg.Index, firstPart); err != nil {
		return vocabulary.Segment{}, err
	}

	m.History.Push(history.Entry{
		Kind: history.EntrySplitSegmentAtOffset, Target: history.TargetSegment,
		Segment: seg, NewSegment: newSeg, Offset: offset,
		SegmentInfo: beforeInfo,
	})

	return newSeg, nil
}

// RegularizeTemporarySelection re-derives endpoint classifications across
// the temporary and colliding trees, per spec.md §4.7.1's
// regularize_temporary_selection(selection, true_crosspoints): selection
// scopes which wires are touched (both reserved trees in full when empty);
// true_crosspoints names points that must stay split into distinct
// through/stub segments rather than being merged away, even though their
// halves are collinear and touching. This is the pass spec.md §4.3 calls
// for after a batch of moves/merges/splits, before a wire insertion-mode
// transition is attempted.
func (m *Modifier) RegularizeTemporarySelection(selection []vocabulary.Segment, trueCrosspoints []geometry.Point) error {
	crossSet := make(map[geometry.Point]bool, len(trueCrosspoints))
	for _, p := range trueCrosspoints {
		crossSet[p] = true
	}

	wireIDs := []vocabulary.WireId{vocabulary.TemporaryWireId, vocabulary.CollidingWireId}
	if len(selection) > 0 {
		seen := make(map[vocabulary.WireId]bool)
		wireIDs = wireIDs[:0]
		for _, seg := range selection {
			if !seen[seg.Wire] {
				seen[seg.Wire] = true
				wireIDs = append(wireIDs, seg.Wire)
			}
		}
	}

	for _, wireID := range wireIDs {
		if err := m.regularizeWire(wireID, crossSet); err != nil {
			return err
		}
	}
	return nil
}

// regularizeWire merges every pair of collinear, touching segments of
// wireID's tree whose shared point is not in crossSet, resets any leftover
// new_unknown endpoint to shadow, then reclassifies every remaining
// touched junction via classifyJunction, honoring crossSet for points that
// must stay split.
func (m *Modifier) regularizeWire(wireID vocabulary.WireId, crossSet map[geometry.Point]bool) error {
	tree := m.Layout.Wires.Tree(wireID)

	for {
		merged := false
		for _, idx := range tree.Indices() {
			line := tree.Line(idx)
			for _, p := range []geometry.Point{line.P0(), line.P1()} {
				if crossSet[p] {
					continue
				}
				touching := m.touchingAt(wireID, p)
				if len(touching) != 2 {
					continue
				}
				other := touching[0]
				if other == idx {
					other = touching[1]
				}
				if tree.Line(other).Orientation() != line.Orientation() {
					continue
				}
				if err := m.mergeSegments(
					vocabulary.Segment{Wire: wireID, Index: idx},
					vocabulary.Segment{Wire: wireID, Index: other},
				); err != nil {
					return err
				}
				merged = true
				break
			}
			if merged {
				break
			}
		}
		if !merged {
			break
		}
		tree = m.Layout.Wires.Tree(wireID)
	}

	points := make(map[geometry.Point]bool)
	for _, idx := range tree.Indices() {
		info := tree.Info(idx)
		updated := info
		if info.P0Type == vocabulary.SegmentPointNewUnknown {
			updated.P0Type = vocabulary.SegmentPointShadow
		}
		if info.P1Type == vocabulary.SegmentPointNewUnknown {
			updated.P1Type = vocabulary.SegmentPointShadow
		}
		if updated != info {
			if err := tree.UpdateSegment(idx, updated); err != nil {
				return err
			}
		}
		points[info.Line.P0()] = true
		points[info.Line.P1()] = true
	}

	for p := range points {
		m.classifyJunction(wireID, p, crossSet[p])
	}
	return nil
}
