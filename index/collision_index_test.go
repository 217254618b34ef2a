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

var _ = Describe("Collision", func() {
	var c *index.Collision

	BeforeEach(func() {
		c = index.NewCollision()
	})

	It("should report empty for an untouched point", func() {
		Expect(c.StateAt(geometry.Point{X: 1, Y: 1})).To(Equal(index.CacheStateEmpty))
	})

	It("should record an inserted logic item's body", func() {
		item := layout.LogicItem{
			BoundingRect: geometry.NewRect(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 1, Y: 1}),
		}
		c.Submit(message.Info{Kind: message.KindLogicItemInserted, LogicItemData: item})

		Expect(c.StateAt(geometry.Point{X: 0, Y: 0})).To(Equal(index.CacheStateElementBody))
		Expect(c.StateAt(geometry.Point{X: 1, Y: 1})).To(Equal(index.CacheStateElementBody))
		Expect(c.Len()).To(Equal(4))
	})

	It("should clear a logic item's body on uninsert", func() {
		item := layout.LogicItem{
			BoundingRect: geometry.NewRect(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 1, Y: 1}),
		}
		c.Submit(message.Info{Kind: message.KindLogicItemInserted, LogicItemData: item})
		c.Submit(message.Info{Kind: message.KindLogicItemUninserted, LogicItemData: item})

		Expect(c.Len()).To(Equal(0))
	})

	It("should treat two crossing wires as CacheStateWireCrossing", func() {
		h := layout.SegmentInfo{Line: geometry.MustNewOrderedLine(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 2, Y: 0})}
		v := layout.SegmentInfo{Line: geometry.MustNewOrderedLine(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 0, Y: 2})}

		c.Submit(message.Info{Kind: message.KindSegmentInserted, SegmentInfo: h})
		_, ok := c.Apply(geometry.Point{X: 0, Y: 0}, index.CacheStateWireVertical, false)
		Expect(ok).To(BeTrue())
		Expect(c.StateAt(geometry.Point{X: 0, Y: 0})).To(Equal(index.CacheStateWireCrossing))

		_ = v
	})

	It("should reject placing an element body atop another element body", func() {
		next, ok := index.CanPlace(index.CacheStateElementBody, index.CacheStateElementBody, false)
		Expect(ok).To(BeFalse())
		Expect(next).To(Equal(index.CacheStateElementBody))
	})

	It("should merge a compatible element and wire connection", func() {
		next, ok := index.CanPlace(index.CacheStateElementConnection, index.CacheStateWireConnection, true)
		Expect(ok).To(BeTrue())
		Expect(next).To(Equal(index.CacheStateElementWireConnection))
	})

	It("should ignore orientation-incompatible connector merges", func() {
		_, ok := index.CanPlace(index.CacheStateElementConnection, index.CacheStateWireConnection, false)
		Expect(ok).To(BeFalse())
	})

	It("should leave wire-only junctions untouched by endpoint reclassification", func() {
		info := layout.SegmentInfo{
			Line:   geometry.MustNewOrderedLine(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 2, Y: 0}),
			P0Type: vocabulary.SegmentPointCorner,
		}
		c.Submit(message.Info{Kind: message.KindSegmentInserted, SegmentInfo: info})
		before := c.Len()
		c.Submit(message.Info{Kind: message.KindInsertedEndPointsUpdated, SegmentInfo: info})
		Expect(c.Len()).To(Equal(before))
	})
})
