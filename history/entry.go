// Package history implements the undo/redo journal of spec.md §4.7.4: every
// primitive a Modifier executes pushes an inverse descriptor onto the
// active stack, grouped so one user-facing edit undoes/redoes atomically.
package history

import (
	"github.com/sarchlab/logikedit/geometry"
	"github.com/sarchlab/logikedit/layout"
	"github.com/sarchlab/logikedit/vocabulary"
)

// EntryKind discriminates which fields of an Entry are meaningful, mirroring
// message.Info's closed-sum-type shape.
type EntryKind int

const (
	EntryCreateTemporaryElement EntryKind = iota
	EntryDeleteTemporaryElement
	EntryRestoreEndpoints
	EntryMergeCollinearSegments
	EntrySplitSegmentAtOffset
	EntrySetInsertionMode
	EntryMoveByDelta
	EntrySetValidParts
	EntrySwapSegmentIndices
)

func (k EntryKind) String() string {
	names := [...]string{
		"CreateTemporaryElement", "DeleteTemporaryElement", "RestoreEndpoints",
		"MergeCollinearSegments", "SplitSegmentAtOffset", "SetInsertionMode",
		"MoveByDelta", "SetValidParts", "SwapSegmentIndices",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "EntryKind(?)"
}

// Target discriminates which table of the Layout an Entry's Kind applies
// to, since several kinds (CreateTemporaryElement, DeleteTemporaryElement,
// SetInsertionMode, MoveByDelta) are shared across logic items, decorations,
// and segments.
type Target int

const (
	TargetLogicItem Target = iota
	TargetDecoration
	TargetSegment
)

func (t Target) String() string {
	switch t {
	case TargetLogicItem:
		return "LogicItem"
	case TargetDecoration:
		return "Decoration"
	default:
		return "Segment"
	}
}

// Entry is one reversible inverse descriptor. Only the fields relevant to
// Kind (and Target, where Kind is shared across tables) are populated. It
// names data, not behavior — applying an Entry is the Modifier's job
// (history has no dependency on modifier, avoiding an import cycle), via
// Modifier's UndoGroup/RedoGroup dispatch.
type Entry struct {
	Kind   EntryKind
	Target Target

	LogicItemId      vocabulary.LogicItemId
	LogicItem        layout.LogicItem
	PrevDisplayState vocabulary.DisplayState

	DecorationId vocabulary.DecorationId
	Decoration   layout.Decoration

	// Segment is the segment's location at the time this entry was pushed
	// (i.e. after the primitive ran, for SetInsertionMode/split/merge);
	// PrevSegment (where applicable) is where it lived beforehand, and
	// NewSegment names a second segment a primitive produced (the new half
	// of a split, the surviving id of a merge).
	Segment      vocabulary.Segment
	PrevSegment  vocabulary.Segment
	NewSegment   vocabulary.Segment
	OtherSegment vocabulary.Segment

	// SegmentInfo is the segment's geometry/endpoints before the primitive
	// ran; OtherSegmentInfo is OtherSegment's, for primitives (merge) that
	// consume two segments.
	SegmentInfo      layout.SegmentInfo
	OtherSegmentInfo layout.SegmentInfo

	// P0Type/P1Type are the endpoint types SetTemporaryEndpoints was asked
	// to set (the forward direction, used to redo); PrevP0Type/PrevP1Type
	// are what they replaced (used to undo).
	P0Type     vocabulary.SegmentPointType
	P1Type     vocabulary.SegmentPointType
	PrevP0Type vocabulary.SegmentPointType
	PrevP1Type vocabulary.SegmentPointType

	Offset geometry.Offset
	Part   geometry.Part

	Mode     vocabulary.InsertionMode
	PrevMode vocabulary.InsertionMode

	Dx, Dy geometry.Grid

	ValidParts layout.PartSelection
}
