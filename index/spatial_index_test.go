package index_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/logikedit/geometry"
	"github.com/sarchlab/logikedit/index"
	"github.com/sarchlab/logikedit/layout"
	"github.com/sarchlab/logikedit/message"
	"github.com/sarchlab/logikedit/vocabulary"
)

var _ = Describe("Spatial", func() {
	var s index.Spatial

	BeforeEach(func() {
		s = index.NewSpatial()
	})

	It("should find a logic item by point query after insertion", func() {
		item := layout.LogicItem{
			BoundingRect: geometry.NewRect(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 2, Y: 2}),
		}
		s.Submit(message.Info{Kind: message.KindLogicItemInserted, LogicItemId: 7, LogicItemData: item})

		refs := s.QueryPoint(geometry.Point{X: 1, Y: 1})
		Expect(refs).To(HaveLen(1))
		Expect(refs[0].Kind).To(Equal(index.PayloadLogicItem))
		Expect(refs[0].LogicItemId).To(Equal(vocabulary.LogicItemId(7)))
	})

	It("should stop finding it once uninserted", func() {
		item := layout.LogicItem{
			BoundingRect: geometry.NewRect(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 2, Y: 2}),
		}
		s.Submit(message.Info{Kind: message.KindLogicItemInserted, LogicItemId: 7, LogicItemData: item})
		s.Submit(message.Info{Kind: message.KindLogicItemUninserted, LogicItemId: 7, LogicItemData: item})

		Expect(s.QueryPoint(geometry.Point{X: 1, Y: 1})).To(BeEmpty())
		Expect(s.Len()).To(Equal(0))
	})

	It("should follow a rekey to the new id", func() {
		item := layout.LogicItem{
			BoundingRect: geometry.NewRect(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 1, Y: 1}),
		}
		s.Submit(message.Info{Kind: message.KindLogicItemInserted, LogicItemId: 3, LogicItemData: item})
		s.Submit(message.Info{Kind: message.KindInsertedLogicItemIdUpdated, OldLogicItemId: 3, LogicItemId: 9})

		refs := s.QueryPoint(geometry.Point{X: 0, Y: 0})
		Expect(refs).To(HaveLen(1))
		Expect(refs[0].LogicItemId).To(Equal(vocabulary.LogicItemId(9)))
	})

	It("should find an inserted segment by its bounding rect", func() {
		seg := vocabulary.Segment{Wire: 1, Index: 0}
		info := layout.SegmentInfo{Line: geometry.MustNewOrderedLine(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 4, Y: 0})}
		s.Submit(message.Info{Kind: message.KindSegmentInserted, Segment: seg, SegmentInfo: info})

		refs := s.QuerySelection(geometry.FineRect{MinX: 1, MinY: -0.5, MaxX: 3, MaxY: 0.5})
		Expect(refs).To(HaveLen(1))
		Expect(refs[0].Segment).To(Equal(seg))
	})
})
