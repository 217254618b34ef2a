// Package selection implements spec.md §4.5: sets of selected logic items,
// decorations, and partial wire segments, kept consistent as the layout
// changes by consuming the same InfoMessage stream the index package does.
package selection

import (
	"github.com/sarchlab/logikedit/layout"
	"github.com/sarchlab/logikedit/message"
	"github.com/sarchlab/logikedit/vocabulary"
)

// Selection holds a set of selected logic items, decorations, and
// per-segment PartSelections, remapped in place as ids change, segments
// merge/split, or selected entities are deleted.
type Selection struct {
	logicItems  map[vocabulary.LogicItemId]struct{}
	decorations map[vocabulary.DecorationId]struct{}
	segments    map[vocabulary.Segment]layout.PartSelection
}

// New returns an empty Selection.
func New() *Selection {
	return &Selection{
		logicItems:  make(map[vocabulary.LogicItemId]struct{}),
		decorations: make(map[vocabulary.DecorationId]struct{}),
		segments:    make(map[vocabulary.Segment]layout.PartSelection),
	}
}

// AddLogicItem adds id to the selection.
func (s *Selection) AddLogicItem(id vocabulary.LogicItemId) { s.logicItems[id] = struct{}{} }

// RemoveLogicItem removes id from the selection, if present.
func (s *Selection) RemoveLogicItem(id vocabulary.LogicItemId) { delete(s.logicItems, id) }

// HasLogicItem reports whether id is selected.
func (s *Selection) HasLogicItem(id vocabulary.LogicItemId) bool {
	_, ok := s.logicItems[id]
	return ok
}

// LogicItems returns every selected logic item id.
func (s *Selection) LogicItems() []vocabulary.LogicItemId {
	out := make([]vocabulary.LogicItemId, 0, len(s.logicItems))
	for id := range s.logicItems {
		out = append(out, id)
	}
	return out
}

// AddDecoration adds id to the selection.
func (s *Selection) AddDecoration(id vocabulary.DecorationId) { s.decorations[id] = struct{}{} }

// RemoveDecoration removes id from the selection, if present.
func (s *Selection) RemoveDecoration(id vocabulary.DecorationId) { delete(s.decorations, id) }

// HasDecoration reports whether id is selected.
func (s *Selection) HasDecoration(id vocabulary.DecorationId) bool {
	_, ok := s.decorations[id]
	return ok
}

// Decorations returns every selected decoration id.
func (s *Selection) Decorations() []vocabulary.DecorationId {
	out := make([]vocabulary.DecorationId, 0, len(s.decorations))
	for id := range s.decorations {
		out = append(out, id)
	}
	return out
}

// AddSegmentPart adds part of seg to the selection.
func (s *Selection) AddSegmentPart(seg vocabulary.Segment, part layout.PartSelection) {
	existing := s.segments[seg]
	for _, p := range part.Parts() {
		_ = existing.AddPart(p)
	}
	s.segments[seg] = existing
}

// SegmentPart returns the PartSelection currently held for seg, and whether
// seg is present at all.
func (s *Selection) SegmentPart(seg vocabulary.Segment) (layout.PartSelection, bool) {
	p, ok := s.segments[seg]
	return p, ok
}

// Segments returns every segment this selection holds a part of.
func (s *Selection) Segments() []vocabulary.Segment {
	out := make([]vocabulary.Segment, 0, len(s.segments))
	for seg := range s.segments {
		out = append(out, seg)
	}
	return out
}

// Empty reports whether the selection has no members at all.
func (s *Selection) Empty() bool {
	return len(s.logicItems) == 0 && len(s.decorations) == 0 && len(s.segments) == 0
}

// Submit implements message.Consumer, applying spec.md §4.5's rule table.
func (s *Selection) Submit(msg message.Info) {
	switch msg.Kind {
	case message.KindLogicItemDeleted:
		delete(s.logicItems, msg.LogicItemId)
	case message.KindLogicItemIdUpdated, message.KindInsertedLogicItemIdUpdated:
		s.rekeyLogicItem(msg.OldLogicItemId, msg.LogicItemId)

	case message.KindDecorationDeleted:
		delete(s.decorations, msg.DecorationId)
	case message.KindDecorationIdUpdated, message.KindInsertedDecorationIdUpdated:
		s.rekeyDecoration(msg.OldDecorationId, msg.DecorationId)

	case message.KindSegmentIdUpdated, message.KindInsertedSegmentIdUpdated:
		s.rekeySegment(msg.OldSegment, msg.Segment)

	case message.KindSegmentPartMoved:
		s.movePart(msg.SegmentPartSrc, msg.SegmentPartDst)

	case message.KindSegmentPartDeleted:
		s.deletePart(msg.SegmentPartSrc)
	}
}

func (s *Selection) rekeyLogicItem(oldID, newID vocabulary.LogicItemId) {
	if _, ok := s.logicItems[oldID]; !ok {
		return
	}
	delete(s.logicItems, oldID)
	s.logicItems[newID] = struct{}{}
}

func (s *Selection) rekeyDecoration(oldID, newID vocabulary.DecorationId) {
	if _, ok := s.decorations[oldID]; !ok {
		return
	}
	delete(s.decorations, oldID)
	s.decorations[newID] = struct{}{}
}

func (s *Selection) rekeySegment(oldSeg, newSeg vocabulary.Segment) {
	parts, ok := s.segments[oldSeg]
	if !ok {
		return
	}
	delete(s.segments, oldSeg)
	s.segments[newSeg] = parts
}

// movePart implements SegmentPartMoved(src -> dst): move_parts(src_entry,
// dst_entry, copy_def), dropping src if it becomes empty and replacing dst
// if the moved-in parts are non-empty, per spec.md §4.5.
func (s *Selection) movePart(src, dst message.SegmentPart) {
	srcEntry, ok := s.segments[src.Segment]
	if !ok {
		return
	}

	dstEntry := s.segments[dst.Segment]
	def := layout.CopyDef{Source: src.Part, Destination: dst.Part}
	if err := layout.MoveParts(&dstEntry, &srcEntry, def); err != nil {
		return
	}

	if srcEntry.Empty() {
		delete(s.segments, src.Segment)
	} else {
		s.segments[src.Segment] = srcEntry
	}

	if !dstEntry.Empty() {
		s.segments[dst.Segment] = dstEntry
	}
}

func (s *Selection) deletePart(target message.SegmentPart) {
	entry, ok := s.segments[target.Segment]
	if !ok {
		return
	}
	if err := entry.RemovePart(target.Part); err != nil {
		return
	}
	if entry.Empty() {
		delete(s.segments, target.Segment)
	} else {
		s.segments[target.Segment] = entry
	}
}
