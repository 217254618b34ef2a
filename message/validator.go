package message

import (
	"fmt"

	"github.com/sarchlab/logikedit/vocabulary"
)

// Validator is a Consumer that enforces spec.md §4.6's ordering contract:
// every Inserted is eventually followed by a matching Uninserted or
// IdUpdated, and per-id counters only ever move in a way consistent with a
// single logical lifetime. It never mutates application state; it exists
// purely to catch a Modifier that emits an inconsistent message sequence,
// and is meant to be wired into tests (see the teacher's
// api/driver_internal_test.go style of collaborator doubles).
type Validator struct {
	insertedLogicItems  map[vocabulary.LogicItemId]bool
	insertedDecorations map[vocabulary.DecorationId]bool
	insertedSegments    map[vocabulary.Segment]bool

	errs []error
}

// NewValidator returns a ready-to-use Validator.
func NewValidator() *Validator {
	return &Validator{
		insertedLogicItems:  make(map[vocabulary.LogicItemId]bool),
		insertedDecorations: make(map[vocabulary.DecorationId]bool),
		insertedSegments:    make(map[vocabulary.Segment]bool),
	}
}

// Errors returns every violation observed so far.
func (v *Validator) Errors() []error { return v.errs }

func (v *Validator) fail(format string, args ...any) {
	v.errs = append(v.errs, fmt.Errorf(format, args...))
}

// Submit implements Consumer.
func (v *Validator) Submit(msg Info) {
	switch msg.Kind {
	case KindLogicItemInserted:
		if v.insertedLogicItems[msg.LogicItemId] {
			v.fail("logic item %v inserted twice without an intervening uninsert", msg.LogicItemId)
		}
		v.insertedLogicItems[msg.LogicItemId] = true

	case KindLogicItemUninserted:
		if !v.insertedLogicItems[msg.LogicItemId] {
			v.fail("logic item %v uninserted without having been inserted", msg.LogicItemId)
		}
		delete(v.insertedLogicItems, msg.LogicItemId)

	case KindInsertedLogicItemIdUpdated:
		if !v.insertedLogicItems[msg.OldLogicItemId] {
			v.fail("inserted logic item id update references unknown old id %v", msg.OldLogicItemId)
		}
		delete(v.insertedLogicItems, msg.OldLogicItemId)
		v.insertedLogicItems[msg.LogicItemId] = true

	case KindDecorationInserted:
		if v.insertedDecorations[msg.DecorationId] {
			v.fail("decoration %v inserted twice without an intervening uninsert", msg.DecorationId)
		}
		v.insertedDecorations[msg.DecorationId] = true

	case KindDecorationUninserted:
		if !v.insertedDecorations[msg.DecorationId] {
			v.fail("decoration %v uninserted without having been inserted", msg.DecorationId)
		}
		delete(v.insertedDecorations, msg.DecorationId)

	case KindInsertedDecorationIdUpdated:
		if !v.insertedDecorations[msg.OldDecorationId] {
			v.fail("inserted decoration id update references unknown old id %v", msg.OldDecorationId)
		}
		delete(v.insertedDecorations, msg.OldDecorationId)
		v.insertedDecorations[msg.DecorationId] = true

	case KindSegmentInserted:
		if v.insertedSegments[msg.Segment] {
			v.fail("segment %v inserted twice without an intervening uninsert", msg.Segment)
		}
		v.insertedSegments[msg.Segment] = true

	case KindSegmentUninserted:
		if !v.insertedSegments[msg.Segment] {
			v.fail("segment %v uninserted without having been inserted", msg.Segment)
		}
		delete(v.insertedSegments, msg.Segment)

	case KindInsertedSegmentIdUpdated:
		if !v.insertedSegments[msg.OldSegment] {
			v.fail("inserted segment id update references unknown old segment %v", msg.OldSegment)
		}
		delete(v.insertedSegments, msg.OldSegment)
		v.insertedSegments[msg.Segment] = true

	case KindInsertedEndPointsUpdated:
		if !v.insertedSegments[msg.Segment] {
			v.fail("endpoint update for segment %v that was never inserted", msg.Segment)
		}
	}
}

// AllBalanced reports whether every inserted id seen so far has since been
// uninserted — the end-of-scenario check for "no leftover live entries".
func (v *Validator) AllBalanced() bool {
	return len(v.insertedLogicItems) == 0 && len(v.insertedDecorations) == 0 && len(v.insertedSegments) == 0
}
