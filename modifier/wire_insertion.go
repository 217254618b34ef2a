package modifier

import (
	"fmt"

	"github.com/sarchlab/logikedit/geometry"
	"github.com/sarchlab/logikedit/history"
	"github.com/sarchlab/logikedit/index"
	"github.com/sarchlab/logikedit/layout"
	"github.com/sarchlab/logikedit/message"
	"github.com/sarchlab/logikedit/vocabulary"
)

// ChangeWireInsertionMode is the central operation of spec.md §4.7.2: it
// moves seg between the temporary/colliding trees and an inserted wire
// tree, per mode, running a collision query across every grid point seg
// covers and re-deriving endpoint classification at both ends afterward.
// Returns the Segment identifying seg's new location.
func (m *Modifier) ChangeWireInsertionMode(seg vocabulary.Segment, mode vocabulary.InsertionMode) (vocabulary.Segment, error) {
	m.beginGroup()

	if seg.Wire.IsReserved() {
		return m.insertUninsertedSegment(seg, mode)
	}
	return m.retargetInsertedSegment(seg, mode)
}

// insertUninsertedSegment handles the temporary/colliding -> {temporary,
// colliding, inserted} transition.
func (m *Modifier) insertUninsertedSegment(seg vocabulary.Segment, mode vocabulary.InsertionMode) (vocabulary.Segment, error) {
	srcTree := m.Layout.Wires.Tree(seg.Wire)
	info := srcTree.Info(seg.Index)

	collisionFree := m.segmentCollisionFree(info)

	if mode == vocabulary.InsertionModeInsertOrDiscard && !collisionFree {
		m.History.Push(history.Entry{Kind: history.EntryDeleteTemporaryElement, Target: history.TargetSegment, Segment: seg, SegmentInfo: info})
		return vocabulary.Segment{}, m.removeSegmentRow(seg)
	}

	destState := vocabulary.ToDisplayState(mode, collisionFree)
	if !destState.IsInserted() {
		return m.moveSegmentBetweenReservedTrees(seg, destWireForState(destState))
	}

	destWire := m.findDestinationWireId(info, destState)
	newSeg, err := m.moveSegmentToWire(seg, destWire)
	if err != nil {
		return vocabulary.Segment{}, err
	}

	m.fixEndpointsAround(newSeg)
	m.emit(message.Info{Kind: message.KindSegmentInserted, Segment: newSeg, SegmentInfo: m.Layout.Wires.Tree(newSeg.Wire).Info(newSeg.Index)})
	m.History.Push(history.Entry{
		Kind: history.EntrySetInsertionMode, Target: history.TargetSegment,
		Segment: newSeg, PrevSegment: seg, Mode: mode, SegmentInfo: info,
	})
	return newSeg, nil
}

// retargetInsertedSegment handles moving an already-inserted segment back
// to temporary/colliding (uninserting it), splitting its wire across
// connected components if removing it disconnects the rest.
func (m *Modifier) retargetInsertedSegment(seg vocabulary.Segment, mode vocabulary.InsertionMode) (vocabulary.Segment, error) {
	if mode.String() == vocabulary.InsertionModeInsertOrDiscard.String() && mode == vocabulary.InsertionModeInsertOrDiscard {
		return vocabulary.Segment{}, fmt.Errorf("%w: cannot re-insert an already-inserted segment with insert_or_discard", vocabulary.ErrInvalidArgument)
	}

	tree := m.Layout.Wires.Tree(seg.Wire)
	info := tree.Info(seg.Index)

	m.emit(message.Info{Kind: message.KindSegmentUninserted, Segment: seg, SegmentInfo: info})

	destWire := destWireForState(vocabulary.ToDisplayState(mode, true))
	destTree := m.Layout.Wires.Tree(destWire)
	newIdx, err := destTree.CopySegment(tree, seg.Index, nil)
	if err != nil {
		return vocabulary.Segment{}, err
	}
	newSeg := vocabulary.Segment{Wire: destWire, Index: newIdx}
	m.emit(message.Info{Kind: message.KindSegmentCreated, Segment: newSeg, SegmentInfo: destTree.Info(newIdx)})

	if err := m.removeSegmentRow(seg); err != nil {
		return vocabulary.Segment{}, err
	}

	m.History.Push(history.Entry{
		Kind: history.EntrySetInsertionMode, Target: history.TargetSegment,
		Segment: newSeg, PrevSegment: seg, Mode: mode, SegmentInfo: info,
	})

	m.splitWireIfDisconnected(seg.Wire)
	return newSeg, nil
}

// splitWireIfDisconnected checks wireID's tree for contiguity and, if it
// has broken into more than one connected component, relocates every
// component but the last one found into freshly allocated inserted wire
// ids, preserving the display state.
func (m *Modifier) splitWireIfDisconnected(wireID vocabulary.WireId) {
	if wireID.IsReserved() {
		return
	}
	tree := m.Layout.Wires.Tree(wireID)
	if tree.Len() == 0 || tree.IsContiguousTree() {
		return
	}

	state := m.Layout.Wires.DisplayState(wireID)
	remaining := tree.Indices()

	for len(remaining) > 0 {
		mask, err := tree.CalculateConnectedSegmentsMask(tree.Info(remaining[0]).Line.P0())
		if err != nil {
			return
		}

		var component, rest []vocabulary.SegmentIndex
		for _, idx := range remaining {
			if mask[idx] {
				component = append(component, idx)
			} else {
				rest = append(rest, idx)
			}
		}
		remaining = rest
		if len(rest) == 0 {
			return // last component stays under wireID
		}

		newWire := m.Layout.Wires.AddInsertedWire(state)
		tree = m.Layout.Wires.Tree(wireID)
		newTree := m.Layout.Wires.Tree(newWire)
		for _, idx := range component {
			info := tree.Info(idx)
			newIdx, err := newTree.CopySegment(tree, idx, nil)
			if err != nil {
				continue
			}
			newSeg := vocabulary.Segment{Wire: newWire, Index: newIdx}
			m.emit(message.Info{Kind: message.KindSegmentUninserted, Segment: vocabulary.Segment{Wire: wireID, Index: idx}, SegmentInfo: info})
			m.emit(message.Info{Kind: message.KindSegmentInserted, Segment: newSeg, SegmentInfo: newTree.Info(newIdx)})
		}
		// Remove the migrated component from the original tree,
		// highest index first so earlier indices stay valid.
		sorted := append([]vocabulary.SegmentIndex{}, component...)
		for i := 0; i < len(sorted); i++ {
			for j := i + 1; j < len(sorted); j++ {
				if sorted[j] > sorted[i] {
					sorted[i], sorted[j] = sorted[j], sorted[i]
				}
			}
		}
		for _, idx := range sorted {
			tree.SwapAndDeleteSegment(idx)
		}
		// Swap-and-delete moved rows, so rest's indices are stale.
		remaining = tree.Indices()
	}
}

func destWireForState(state vocabulary.DisplayState) vocabulary.WireId {
	if state == vocabulary.DisplayStateColliding {
		return vocabulary.CollidingWireId
	}
	return vocabulary.TemporaryWireId
}

// moveSegmentBetweenReservedTrees relocates seg (currently in a reserved
// tree) to destWire (also reserved), used for temporary<->colliding
// transitions that never touch an inserted wire.
func (m *Modifier) moveSegmentBetweenReservedTrees(seg vocabulary.Segment, destWire vocabulary.WireId) (vocabulary.Segment, error) {
	if seg.Wire == destWire {
		return seg, nil
	}
	newSeg, err := m.moveSegmentToWire(seg, destWire)
	if err != nil {
		return vocabulary.Segment{}, err
	}
	return newSeg, nil
}

// moveSegmentToWire copies seg's info into destWire's tree and removes the
// original row, emitting no Inserted/Uninserted messages itself (the
// caller decides which, if any, apply).
func (m *Modifier) moveSegmentToWire(seg vocabulary.Segment, destWire vocabulary.WireId) (vocabulary.Segment, error) {
	srcTree := m.Layout.Wires.Tree(seg.Wire)
	destTree := m.Layout.Wires.Tree(destWire)

	newIdx, err := destTree.CopySegment(srcTree, seg.Index, nil)
	if err != nil {
		return vocabulary.Segment{}, err
	}
	newSeg := vocabulary.Segment{Wire: destWire, Index: newIdx}

	if err := m.removeSegmentRow(seg); err != nil {
		return vocabulary.Segment{}, err
	}
	return newSeg, nil
}

func (m *Modifier) removeSegmentRow(seg vocabulary.Segment) error {
	tree := m.Layout.Wires.Tree(seg.Wire)
	relocated := tree.SwapAndDeleteSegment(seg.Index)
	if relocated != nil && *relocated != seg.Index {
		m.emit(message.Info{
			Kind:       message.KindSegmentIdUpdated,
			OldSegment: vocabulary.Segment{Wire: seg.Wire, Index: *relocated},
			Segment:    vocabulary.Segment{Wire: seg.Wire, Index: seg.Index},
		})
	}
	return nil
}

// findDestinationWireId implements spec.md §4.7.3: the unique inserted
// wire id touching either endpoint via a spatial query, or else a freshly
// allocated one.
func (m *Modifier) findDestinationWireId(info layout.SegmentInfo, state vocabulary.DisplayState) vocabulary.WireId {
	found := vocabulary.WireId(0)
	ok := false
	for _, p := range []geometry.Point{info.Line.P0(), info.Line.P1()} {
		for _, ref := range m.Spatial.QueryPoint(p) {
			if ref.Kind != index.PayloadSegment || ref.Segment.Wire.IsReserved() {
				continue
			}
			if !ok {
				found, ok = ref.Segment.Wire, true
				continue
			}
			if found != ref.Segment.Wire {
				// touches two distinct inserted wires; keep the first
				// found rather than erroring, consistent with
				// insert_or_discard never failing on a collision.
			}
		}
	}
	if ok {
		return found
	}
	return m.Layout.Wires.AddInsertedWire(state)
}

// segmentCollisionFree reports whether every grid point info's line covers
// — not just its two endpoints — may legally take on this segment's
// wire-orientation state, per CollisionIndex. An obstacle strictly inside
// the segment's run (e.g. a logic item's body) blocks the placement just
// as one sitting at an endpoint would.
func (m *Modifier) segmentCollisionFree(info layout.SegmentInfo) bool {
	state := index.CacheStateWireHorizontal
	if info.Line.Orientation() == geometry.LineVertical {
		state = index.CacheStateWireVertical
	}
	for _, p := range info.Line.GridPoints() {
		cur := m.Collision.StateAt(p)
		if _, ok := index.CanPlace(cur, state, true); !ok {
			return false
		}
	}
	return true
}

// fixEndpointsAround recomputes the SegmentPointType of seg's own two
// endpoints from how many segments of its (now inserted) tree meet there,
// per the rule table in spec.md §4.7.2.
func (m *Modifier) fixEndpointsAround(seg vocabulary.Segment) {
	tree := m.Layout.Wires.Tree(seg.Wire)
	info := tree.Info(seg.Index)

	for _, p := range []geometry.Point{info.Line.P0(), info.Line.P1()} {
		m.fixEndpointAt(seg.Wire, p)
	}
}

func (m *Modifier) fixEndpointAt(wireID vocabulary.WireId, p geometry.Point) {
	m.classifyJunction(wireID, p, false)
}

// touchingAt returns every segment index of wireID's tree with an endpoint
// at p.
func (m *Modifier) touchingAt(wireID vocabulary.WireId, p geometry.Point) []vocabulary.SegmentIndex {
	tree := m.Layout.Wires.Tree(wireID)
	var touching []vocabulary.SegmentIndex
	for _, idx := range tree.Indices() {
		line := tree.Line(idx)
		if line.P0() == p || line.P1() == p {
			touching = append(touching, idx)
		}
	}
	return touching
}

// classifyJunction recomputes the SegmentPointType of every segment of
// wireID's tree touching p, per the endpoint rule table in spec.md
// §4.7.2: 1 segment -> input/output/shadow_point; 2 collinear -> merged
// into one (unless forceCross, see below); 2 orthogonal -> shadow_point;
// 3 -> cross_point on the through-line, shadow_point on the stub; 4 ->
// cross_point on both lines.
//
// forceCross is set by RegularizeTemporarySelection for points named in
// its true_crosspoints list: such a point must stay split rather than
// merged away even though its two collinear halves are touching, so the
// ordinary 2-collinear-segments merge is skipped and both halves are
// classified as cross_point instead, per spec.md §4.7.1.
func (m *Modifier) classifyJunction(wireID vocabulary.WireId, p geometry.Point, forceCross bool) {
	tree := m.Layout.Wires.Tree(wireID)
	touching := m.touchingAt(wireID, p)

	switch len(touching) {
	case 0:
		return
	case 1:
		idx := touching[0]
		t := vocabulary.SegmentPointShadow
		if _, ok := m.LogicInputs.Lookup(p); ok {
			t = vocabulary.SegmentPointOutput
		} else if _, ok := m.LogicOutputs.Lookup(p); ok {
			t = vocabulary.SegmentPointInput
		}
		m.setEndpointType(wireID, idx, p, t)
	case 2:
		a, b := tree.Line(touching[0]), tree.Line(touching[1])
		if a.Orientation() == b.Orientation() && !forceCross {
			// mergeSegments (not the reserved-only MergeUninsertedSegment
			// primitive) since this junction fixup also runs right after a
			// segment lands on an inserted wire.
			_ = m.mergeSegments(
				vocabulary.Segment{Wire: wireID, Index: touching[0]},
				vocabulary.Segment{Wire: wireID, Index: touching[1]},
			)
			return
		}
		if a.Orientation() == b.Orientation() {
			// forceCross: a true crosspoint deliberately left unmerged by
			// the caller, so both halves cross through p instead.
			for _, idx := range touching {
				m.setEndpointType(wireID, idx, p, vocabulary.SegmentPointCross)
			}
			return
		}
		for _, idx := range touching {
			m.setEndpointType(wireID, idx, p, vocabulary.SegmentPointShadow)
		}
	case 3:
		// Two of the three are collinear (the through-line) and get
		// cross_point; the third is a perpendicular stub and gets
		// shadow_point, per spec.md §4.7.2's 3-segment rule.
		var horiz, vert []vocabulary.SegmentIndex
		for _, idx := range touching {
			if tree.Line(idx).Orientation() == geometry.LineHorizontal {
				horiz = append(horiz, idx)
			} else {
				vert = append(vert, idx)
			}
		}
		through, stub := horiz, vert
		if len(vert) == 2 {
			through, stub = vert, horiz
		}
		for _, idx := range through {
			m.setEndpointType(wireID, idx, p, vocabulary.SegmentPointCross)
		}
		for _, idx := range stub {
			m.setEndpointType(wireID, idx, p, vocabulary.SegmentPointShadow)
		}
	default:
		// 4-way junction: cross_point on both through-lines.
		for _, idx := range touching {
			m.setEndpointType(wireID, idx, p, vocabulary.SegmentPointCross)
		}
	}
}

func (m *Modifier) setEndpointType(wireID vocabulary.WireId, idx vocabulary.SegmentIndex, p geometry.Point, t vocabulary.SegmentPointType) {
	tree := m.Layout.Wires.Tree(wireID)
	info := tree.Info(idx)
	if cur, ok := info.TypeAt(p); !ok || cur == t {
		return
	}
	next := info.WithTypeAt(p, t)
	if err := tree.UpdateSegment(idx, next); err != nil {
		return
	}
	seg := vocabulary.Segment{Wire: wireID, Index: idx}
	if wireID.IsReserved() {
		return
	}
	m.emit(message.Info{Kind: message.KindInsertedEndPointsUpdated, Segment: seg, SegmentInfo: next})
}
