package index_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/logikedit/index"
	"github.com/sarchlab/logikedit/message"
	"github.com/sarchlab/logikedit/vocabulary"
)

var _ = Describe("KeyIndex", func() {
	var idx *index.KeyIndex

	BeforeEach(func() {
		idx = index.NewKeyIndex()
	})

	It("should allocate a stable key on creation and resolve both directions", func() {
		idx.Submit(message.Info{Kind: message.KindLogicItemCreated, LogicItemId: 5})

		k, ok := idx.LogicItemKeyOf(5)
		Expect(ok).To(BeTrue())

		id, ok := idx.LogicItemIdOf(k)
		Expect(ok).To(BeTrue())
		Expect(id).To(Equal(vocabulary.LogicItemId(5)))
	})

	It("should follow a logic item id compaction to the same key", func() {
		idx.Submit(message.Info{Kind: message.KindLogicItemCreated, LogicItemId: 5})
		k, _ := idx.LogicItemKeyOf(5)

		idx.Submit(message.Info{Kind: message.KindLogicItemIdUpdated, OldLogicItemId: 5, LogicItemId: 2})

		id, ok := idx.LogicItemIdOf(k)
		Expect(ok).To(BeTrue())
		Expect(id).To(Equal(vocabulary.LogicItemId(2)))

		_, stillOld := idx.LogicItemKeyOf(5)
		Expect(stillOld).To(BeFalse())
	})

	It("should release a key on deletion", func() {
		idx.Submit(message.Info{Kind: message.KindLogicItemCreated, LogicItemId: 5})
		idx.Submit(message.Info{Kind: message.KindLogicItemDeleted, LogicItemId: 5})

		_, ok := idx.LogicItemKeyOf(5)
		Expect(ok).To(BeFalse())
		Expect(idx.Len()).To(Equal(0))
	})

	It("should never reuse a key across two distinct entities", func() {
		idx.Submit(message.Info{Kind: message.KindLogicItemCreated, LogicItemId: 1})
		k1, _ := idx.LogicItemKeyOf(1)
		idx.Submit(message.Info{Kind: message.KindLogicItemDeleted, LogicItemId: 1})

		idx.Submit(message.Info{Kind: message.KindLogicItemCreated, LogicItemId: 1})
		k2, _ := idx.LogicItemKeyOf(1)

		Expect(k2).NotTo(Equal(k1))
	})

	It("should track segments the same way as logic items", func() {
		seg := vocabulary.Segment{Wire: 3, Index: 0}
		idx.Submit(message.Info{Kind: message.KindSegmentCreated, Segment: seg})

		k, ok := idx.SegmentKeyOf(seg)
		Expect(ok).To(BeTrue())

		newSeg := vocabulary.Segment{Wire: 3, Index: 1}
		idx.Submit(message.Info{Kind: message.KindSegmentIdUpdated, OldSegment: seg, Segment: newSeg})

		resolved, ok := idx.SegmentIdOf(k)
		Expect(ok).To(BeTrue())
		Expect(resolved).To(Equal(newSeg))
	})
})
