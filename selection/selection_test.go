package selection_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/logikedit/geometry"
	"github.com/sarchlab/logikedit/layout"
	"github.com/sarchlab/logikedit/message"
	"github.com/sarchlab/logikedit/selection"
	"github.com/sarchlab/logikedit/vocabulary"
)

var _ = Describe("Selection", func() {
	var s *selection.Selection

	BeforeEach(func() {
		s = selection.New()
	})

	It("should drop a logic item on LogicItemDeleted", func() {
		s.AddLogicItem(5)
		s.Submit(message.Info{Kind: message.KindLogicItemDeleted, LogicItemId: 5})
		Expect(s.HasLogicItem(5)).To(BeFalse())
	})

	It("should rekey a logic item on IdUpdated", func() {
		s.AddLogicItem(5)
		s.Submit(message.Info{Kind: message.KindLogicItemIdUpdated, OldLogicItemId: 5, LogicItemId: 2})
		Expect(s.HasLogicItem(5)).To(BeFalse())
		Expect(s.HasLogicItem(2)).To(BeTrue())
	})

	It("should drop a decoration on DecorationDeleted", func() {
		s.AddDecoration(9)
		s.Submit(message.Info{Kind: message.KindDecorationDeleted, DecorationId: 9})
		Expect(s.HasDecoration(9)).To(BeFalse())
	})

	It("should rekey a segment entry on SegmentIdUpdated", func() {
		oldSeg := vocabulary.Segment{Wire: 2, Index: 0}
		newSeg := vocabulary.Segment{Wire: 2, Index: 1}

		part, _ := layout.NewPartSelection(geometry.MustNewPart(0, 5))
		s.AddSegmentPart(oldSeg, part)

		s.Submit(message.Info{Kind: message.KindSegmentIdUpdated, OldSegment: oldSeg, Segment: newSeg})

		_, ok := s.SegmentPart(oldSeg)
		Expect(ok).To(BeFalse())
		got, ok := s.SegmentPart(newSeg)
		Expect(ok).To(BeTrue())
		Expect(got.Parts()).To(HaveLen(1))
	})

	It("should move a selected part across segments and drop the empty source", func() {
		srcSeg := vocabulary.Segment{Wire: 3, Index: 0}
		dstSeg := vocabulary.Segment{Wire: 4, Index: 0}

		part, _ := layout.NewPartSelection(geometry.MustNewPart(0, 5))
		s.AddSegmentPart(srcSeg, part)

		s.Submit(message.Info{
			Kind: message.KindSegmentPartMoved,
			SegmentPartSrc: message.SegmentPart{
				Segment: srcSeg, Part: geometry.MustNewPart(0, 5),
			},
			SegmentPartDst: message.SegmentPart{
				Segment: dstSeg, Part: geometry.MustNewPart(10, 15),
			},
		})

		_, ok := s.SegmentPart(srcSeg)
		Expect(ok).To(BeFalse())

		got, ok := s.SegmentPart(dstSeg)
		Expect(ok).To(BeTrue())
		Expect(got.Parts()).To(Equal([]geometry.Part{geometry.MustNewPart(10, 15)}))
	})

	It("should remove a part on SegmentPartDeleted and drop the entry once empty", func() {
		seg := vocabulary.Segment{Wire: 1, Index: 0}
		part, _ := layout.NewPartSelection(geometry.MustNewPart(0, 5))
		s.AddSegmentPart(seg, part)

		s.Submit(message.Info{
			Kind:           message.KindSegmentPartDeleted,
			SegmentPartSrc: message.SegmentPart{Segment: seg, Part: geometry.MustNewPart(0, 5)},
		})

		_, ok := s.SegmentPart(seg)
		Expect(ok).To(BeFalse())
		Expect(s.Empty()).To(BeTrue())
	})
})

var _ = Describe("Store", func() {
	It("should broadcast a message to every contained selection", func() {
		st := selection.NewStore()
		id1 := st.Create()
		id2 := st.Create()

		s1, _ := st.Get(id1)
		s2, _ := st.Get(id2)
		s1.AddLogicItem(5)
		s2.AddLogicItem(5)

		st.Submit(message.Info{Kind: message.KindLogicItemDeleted, LogicItemId: 5})

		Expect(s1.HasLogicItem(5)).To(BeFalse())
		Expect(s2.HasLogicItem(5)).To(BeFalse())
	})

	It("should mint distinct ids for distinct selections", func() {
		st := selection.NewStore()
		id1 := st.Create()
		id2 := st.Create()
		Expect(id1).NotTo(Equal(id2))
	})
})

var _ = Describe("Guard", func() {
	It("should create on construction and destroy on Close", func() {
		st := selection.NewStore()
		g := selection.NewGuard(st)
		Expect(st.Len()).To(Equal(1))

		g.Selection().AddLogicItem(1)
		Expect(g.Selection().HasLogicItem(1)).To(BeTrue())

		g.Close()
		Expect(st.Len()).To(Equal(0))
	})

	It("should be idempotent on repeated Close", func() {
		st := selection.NewStore()
		g := selection.NewGuard(st)
		g.Close()
		g.Close()
		Expect(st.Len()).To(Equal(0))
	})
})
