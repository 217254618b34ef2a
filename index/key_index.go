package index

import (
	"github.com/sarchlab/logikedit/message"
	"github.com/sarchlab/logikedit/vocabulary"
)

// KeyIndex is a bidirectional map between stable vocabulary.Keys and the
// current dense id of a logic item or segment. Every newly created entity
// is allocated a fresh Key from a monotonic counter that never repeats
// within the process, so a Key always names the same logical entity even
// as its dense id changes or is recycled.
type KeyIndex struct {
	nextKey vocabulary.Key

	logicItemKeyToId map[vocabulary.Key]vocabulary.LogicItemId
	logicItemIdToKey map[vocabulary.LogicItemId]vocabulary.Key

	segmentKeyToId map[vocabulary.Key]vocabulary.Segment
	segmentIdToKey map[vocabulary.Segment]vocabulary.Key
}

// NewKeyIndex returns an empty KeyIndex.
func NewKeyIndex() *KeyIndex {
	return &KeyIndex{
		logicItemKeyToId: make(map[vocabulary.Key]vocabulary.LogicItemId),
		logicItemIdToKey: make(map[vocabulary.LogicItemId]vocabulary.Key),
		segmentKeyToId:   make(map[vocabulary.Key]vocabulary.Segment),
		segmentIdToKey:   make(map[vocabulary.Segment]vocabulary.Key),
	}
}

func (idx *KeyIndex) allocKey() vocabulary.Key {
	idx.nextKey++
	return idx.nextKey
}

// LogicItemKeyOf returns the stable key currently bound to id.
func (idx *KeyIndex) LogicItemKeyOf(id vocabulary.LogicItemId) (vocabulary.Key, bool) {
	k, ok := idx.logicItemIdToKey[id]
	return k, ok
}

// LogicItemIdOf resolves a stable key to its current dense id.
func (idx *KeyIndex) LogicItemIdOf(k vocabulary.Key) (vocabulary.LogicItemId, bool) {
	id, ok := idx.logicItemKeyToId[k]
	return id, ok
}

// SegmentKeyOf returns the stable key currently bound to seg.
func (idx *KeyIndex) SegmentKeyOf(seg vocabulary.Segment) (vocabulary.Key, bool) {
	k, ok := idx.segmentIdToKey[seg]
	return k, ok
}

// SegmentIdOf resolves a stable key to its current Segment.
func (idx *KeyIndex) SegmentIdOf(k vocabulary.Key) (vocabulary.Segment, bool) {
	seg, ok := idx.segmentKeyToId[k]
	return seg, ok
}

// Len returns the total number of tracked keys (logic items + segments).
func (idx *KeyIndex) Len() int {
	return len(idx.logicItemKeyToId) + len(idx.segmentKeyToId)
}

// AllocatedSize reports the index's memory footprint.
func (idx *KeyIndex) AllocatedSize() int {
	return len(idx.logicItemKeyToId)*24 + len(idx.logicItemIdToKey)*24 +
		len(idx.segmentKeyToId)*32 + len(idx.segmentIdToKey)*32
}

// Submit implements message.Consumer. A Key is allocated the moment a
// logic item or segment is *created* (not only when it is inserted) since
// keys must also resolve temporary/colliding geometry. A logic item's key
// is released on LogicItemDeleted; segment keys are never released, as no
// segment-deletion message is handled here.
func (idx *KeyIndex) Submit(msg message.Info) {
	switch msg.Kind {
	case message.KindLogicItemCreated:
		k := idx.allocKey()
		idx.logicItemKeyToId[k] = msg.LogicItemId
		idx.logicItemIdToKey[msg.LogicItemId] = k

	case message.KindLogicItemIdUpdated:
		idx.rekeyLogicItem(msg.OldLogicItemId, msg.LogicItemId)
	case message.KindInsertedLogicItemIdUpdated:
		idx.rekeyLogicItem(msg.OldLogicItemId, msg.LogicItemId)

	case message.KindLogicItemDeleted:
		if k, ok := idx.logicItemIdToKey[msg.LogicItemId]; ok {
			delete(idx.logicItemKeyToId, k)
			delete(idx.logicItemIdToKey, msg.LogicItemId)
		}

	case message.KindSegmentCreated:
		k := idx.allocKey()
		idx.segmentKeyToId[k] = msg.Segment
		idx.segmentIdToKey[msg.Segment] = k

	case message.KindSegmentIdUpdated:
		idx.rekeySegment(msg.OldSegment, msg.Segment)
	case message.KindInsertedSegmentIdUpdated:
		idx.rekeySegment(msg.OldSegment, msg.Segment)
	}
}

func (idx *KeyIndex) rekeyLogicItem(oldID, newID vocabulary.LogicItemId) {
	k, ok := idx.logicItemIdToKey[oldID]
	if !ok {
		return
	}
	delete(idx.logicItemIdToKey, oldID)
	idx.logicItemIdToKey[newID] = k
	idx.logicItemKeyToId[k] = newID
}

func (idx *KeyIndex) rekeySegment(oldSeg, newSeg vocabulary.Segment) {
	k, ok := idx.segmentIdToKey[oldSeg]
	if !ok {
		return
	}
	delete(idx.segmentIdToKey, oldSeg)
	idx.segmentIdToKey[newSeg] = k
	idx.segmentKeyToId[k] = newSeg
}
