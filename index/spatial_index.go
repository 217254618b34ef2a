package index

import (
	"github.com/sarchlab/logikedit/geometry"
	"github.com/sarchlab/logikedit/layout"
	"github.com/sarchlab/logikedit/message"
	"github.com/sarchlab/logikedit/vocabulary"
)

// PayloadKind discriminates which entity a spatial payload names.
type PayloadKind int

const (
	PayloadLogicItem PayloadKind = iota
	PayloadDecoration
	PayloadSegment
)

// PayloadRef names one piece of geometry the spatial index tracks. Only the
// field matching Kind is meaningful.
type PayloadRef struct {
	Kind         PayloadKind
	LogicItemId  vocabulary.LogicItemId
	DecorationId vocabulary.DecorationId
	Segment      vocabulary.Segment
}

// rtreeEntry is one leaf of the backing tree: a payload and its fine
// bounding box.
type rtreeEntry struct {
	box     geometry.FineRect
	payload PayloadRef
}

// rtree is the unexported backing structure Spatial's PIMPL hides, matching
// spec.md §9's "PIMPL for R-tree" redesign note
// (original_source/src/container/value_pointer.h). It keeps a flat slice of
// entries plus an owner -> slot map for removal; a query is a linear scan
// comparing every entry's fine bounding box with the query box, with no
// bucketing or tree structure.
type rtree struct {
	entries []rtreeEntry
	byOwner map[payloadKey]int
}

type payloadKey struct {
	kind PayloadKind
	a    uint64
	b    uint32
}

func keyOf(p PayloadRef) payloadKey {
	switch p.Kind {
	case PayloadLogicItem:
		return payloadKey{kind: PayloadLogicItem, a: uint64(p.LogicItemId)}
	case PayloadDecoration:
		return payloadKey{kind: PayloadDecoration, a: uint64(p.DecorationId)}
	default:
		return payloadKey{kind: PayloadSegment, a: uint64(p.Segment.Wire), b: uint32(p.Segment.Index)}
	}
}

func newRtree() *rtree {
	return &rtree{byOwner: make(map[payloadKey]int)}
}

func (t *rtree) insert(box geometry.FineRect, payload PayloadRef) {
	t.byOwner[keyOf(payload)] = len(t.entries)
	t.entries = append(t.entries, rtreeEntry{box: box, payload: payload})
}

func (t *rtree) remove(payload PayloadRef) {
	key := keyOf(payload)
	i, ok := t.byOwner[key]
	if !ok {
		return
	}
	last := len(t.entries) - 1
	t.entries[i] = t.entries[last]
	t.byOwner[keyOf(t.entries[i].payload)] = i
	t.entries = t.entries[:last]
	delete(t.byOwner, key)
}

func (t *rtree) query(box geometry.FineRect) []PayloadRef {
	var out []PayloadRef
	for _, e := range t.entries {
		if fineOverlap(e.box, box) {
			out = append(out, e.payload)
		}
	}
	return out
}

func fineOverlap(a, b geometry.FineRect) bool {
	if a.MaxX < b.MinX || b.MaxX < a.MinX {
		return false
	}
	if a.MaxY < b.MinY || b.MaxY < a.MinY {
		return false
	}
	return true
}

// Spatial is the R-tree over logic item / decoration / wire-segment
// bounding boxes, spec.md §4.4. It is a plain value type wrapping an
// unexported pointer — callers query and mutate through its methods only,
// never through the backing structure.
type Spatial struct {
	tree *rtree
}

// NewSpatial returns an empty Spatial index.
func NewSpatial() Spatial {
	return Spatial{tree: newRtree()}
}

// QuerySelection returns every payload whose bounding box overlaps rect.
func (s Spatial) QuerySelection(rect geometry.FineRect) []PayloadRef {
	return s.tree.query(rect)
}

// QueryPoint returns every payload whose bounding box covers p.
func (s Spatial) QueryPoint(p geometry.Point) []PayloadRef {
	fp := geometry.ToFinePoint(p)
	return s.tree.query(geometry.FineRect{MinX: fp.X, MinY: fp.Y, MaxX: fp.X, MaxY: fp.Y})
}

// Len returns the number of entries currently indexed.
func (s Spatial) Len() int { return len(s.tree.entries) }

// AllocatedSize reports the index's memory footprint.
func (s Spatial) AllocatedSize() int {
	return cap(s.tree.entries)*56 + len(s.tree.byOwner)*32
}

// Submit implements message.Consumer.
func (s Spatial) Submit(msg message.Info) {
	switch msg.Kind {
	case message.KindLogicItemInserted:
		ref := PayloadRef{Kind: PayloadLogicItem, LogicItemId: msg.LogicItemId}
		s.tree.insert(geometry.ToFineRect(msg.LogicItemData.BoundingRect), ref)
	case message.KindLogicItemUninserted:
		s.tree.remove(PayloadRef{Kind: PayloadLogicItem, LogicItemId: msg.LogicItemId})
	case message.KindInsertedLogicItemIdUpdated:
		s.rekeyLogicItem(msg.OldLogicItemId, msg.LogicItemId)

	case message.KindDecorationInserted:
		ref := PayloadRef{Kind: PayloadDecoration, DecorationId: msg.DecorationId}
		s.tree.insert(geometry.ToFineRect(boundingRectOfDecoration(msg.DecorationData)), ref)
	case message.KindDecorationUninserted:
		s.tree.remove(PayloadRef{Kind: PayloadDecoration, DecorationId: msg.DecorationId})
	case message.KindInsertedDecorationIdUpdated:
		s.rekeyDecoration(msg.OldDecorationId, msg.DecorationId)

	case message.KindSegmentInserted:
		ref := PayloadRef{Kind: PayloadSegment, Segment: msg.Segment}
		s.tree.insert(geometry.ToFineRect(geometry.BoundingRectOfLine(msg.SegmentInfo.Line)), ref)
	case message.KindSegmentUninserted:
		s.tree.remove(PayloadRef{Kind: PayloadSegment, Segment: msg.Segment})
	case message.KindInsertedSegmentIdUpdated:
		s.rekeySegment(msg.OldSegment, msg.Segment)
	case message.KindInsertedEndPointsUpdated:
		s.tree.remove(PayloadRef{Kind: PayloadSegment, Segment: msg.Segment})
		ref := PayloadRef{Kind: PayloadSegment, Segment: msg.Segment}
		s.tree.insert(geometry.ToFineRect(geometry.BoundingRectOfLine(msg.SegmentInfo.Line)), ref)
	}
}

func (s Spatial) rekeyLogicItem(oldID, newID vocabulary.LogicItemId) {
	old := PayloadRef{Kind: PayloadLogicItem, LogicItemId: oldID}
	if i, ok := s.tree.byOwner[keyOf(old)]; ok {
		s.tree.entries[i].payload.LogicItemId = newID
		s.tree.byOwner[keyOf(s.tree.entries[i].payload)] = i
		delete(s.tree.byOwner, keyOf(old))
	}
}

func (s Spatial) rekeyDecoration(oldID, newID vocabulary.DecorationId) {
	old := PayloadRef{Kind: PayloadDecoration, DecorationId: oldID}
	if i, ok := s.tree.byOwner[keyOf(old)]; ok {
		s.tree.entries[i].payload.DecorationId = newID
		s.tree.byOwner[keyOf(s.tree.entries[i].payload)] = i
		delete(s.tree.byOwner, keyOf(old))
	}
}

func (s Spatial) rekeySegment(oldSeg, newSeg vocabulary.Segment) {
	old := PayloadRef{Kind: PayloadSegment, Segment: oldSeg}
	if i, ok := s.tree.byOwner[keyOf(old)]; ok {
		s.tree.entries[i].payload.Segment = newSeg
		s.tree.byOwner[keyOf(s.tree.entries[i].payload)] = i
		delete(s.tree.byOwner, keyOf(old))
	}
}

func boundingRectOfDecoration(d layout.Decoration) geometry.Rect {
	return d.BoundingRect
}
