package layout_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/logikedit/geometry"
	"github.com/sarchlab/logikedit/layout"
	"github.com/sarchlab/logikedit/vocabulary"
)

var _ = Describe("Layout", func() {
	It("should start with the two reserved wire ids present", func() {
		l := layout.New()
		Expect(l.Wires.Len()).To(Equal(2))
		Expect(l.Wires.DisplayState(vocabulary.TemporaryWireId)).To(Equal(vocabulary.DisplayStateTemporary))
		Expect(l.Wires.DisplayState(vocabulary.CollidingWireId)).To(Equal(vocabulary.DisplayStateColliding))
	})

	It("should allocate logic items with incrementing ids", func() {
		l := layout.New()
		id0 := l.LogicItems.Add(layout.LogicItem{Type: vocabulary.ElementAndGate})
		id1 := l.LogicItems.Add(layout.LogicItem{Type: vocabulary.ElementOrGate})
		Expect(id0).To(Equal(vocabulary.LogicItemId(0)))
		Expect(id1).To(Equal(vocabulary.LogicItemId(1)))
		Expect(l.LogicItems.Get(id1).Type).To(Equal(vocabulary.ElementOrGate))
	})

	It("should relocate the last logic item on swap-and-delete", func() {
		l := layout.New()
		id0 := l.LogicItems.Add(layout.LogicItem{Type: vocabulary.ElementAndGate})
		id1 := l.LogicItems.Add(layout.LogicItem{Type: vocabulary.ElementOrGate})

		relocated := l.LogicItems.SwapAndDelete(id0)
		Expect(relocated).NotTo(BeNil())
		Expect(*relocated).To(Equal(id1))
		Expect(l.LogicItems.Len()).To(Equal(1))
		Expect(l.LogicItems.Get(id0).Type).To(Equal(vocabulary.ElementOrGate))
	})

	It("should preserve clock generator attrs across swap-and-delete", func() {
		l := layout.New()
		_ = l.LogicItems.Add(layout.LogicItem{Type: vocabulary.ElementAndGate})
		id1 := l.LogicItems.Add(layout.LogicItem{
			Type:           vocabulary.ElementClockGenerator,
			ClockGenerator: &layout.AttrsClockGenerator{Period: 5},
		})

		l.LogicItems.SwapAndDelete(0)
		Expect(l.LogicItems.Get(0).ClockGenerator).NotTo(BeNil())
		Expect(l.LogicItems.Get(0).ClockGenerator.Period).To(Equal(vocabulary.Delay(5)))
		_ = id1
	})

	It("should add inserted wires starting at FirstInsertedWireId", func() {
		l := layout.New()
		id := l.Wires.AddInsertedWire(vocabulary.DisplayStateNormal)
		Expect(id).To(Equal(vocabulary.FirstInsertedWireId))
	})

	It("Normalize should be idempotent", func() {
		l := layout.New()
		wire := l.Wires.AddInsertedWire(vocabulary.DisplayStateNormal)
		tree := l.Wires.Tree(wire)
		_, _ = tree.AddSegment(layout.SegmentInfo{
			Line: geometry.MustNewOrderedLine(geometry.Point{X: 5}, geometry.Point{X: 10}),
		})
		_, _ = tree.AddSegment(layout.SegmentInfo{
			Line: geometry.MustNewOrderedLine(geometry.Point{X: 0}, geometry.Point{X: 5}),
		})

		l.Normalize()
		firstAfterOnce := tree.Line(0)
		l.Normalize()
		Expect(tree.Line(0)).To(Equal(firstAfterOnce))
	})
})
