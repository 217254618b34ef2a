package modifier_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/logikedit/geometry"
	"github.com/sarchlab/logikedit/modifier"
	"github.com/sarchlab/logikedit/vocabulary"
)

var _ = Describe("Modifier undo/redo", func() {
	var m *modifier.Modifier

	BeforeEach(func() {
		m = modifier.New()
		m.History.Enable()
	})

	It("should undo the creation of a logic item", func() {
		id, _ := m.AddLogicItem(andGate(), geometry.Point{X: 0, Y: 0}, vocabulary.InsertionModeTemporary)
		Expect(m.Layout.LogicItems.Len()).To(Equal(1))

		Expect(m.UndoGroup()).To(BeTrue())
		Expect(m.Layout.LogicItems.Len()).To(Equal(0))

		Expect(m.RedoGroup()).To(BeTrue())
		Expect(m.Layout.LogicItems.Len()).To(Equal(1))
		Expect(m.Layout.LogicItems.Get(id).Position).To(Equal(geometry.Point{X: 0, Y: 0}))
	})

	It("should report false when there is nothing left to undo", func() {
		Expect(m.UndoGroup()).To(BeFalse())
	})

	It("should undo a move back to the logic item's previous position", func() {
		id, _ := m.AddLogicItem(andGate(), geometry.Point{X: 0, Y: 0}, vocabulary.InsertionModeTemporary)
		m.History.BeginGroup()
		Expect(m.MoveOrDeleteTemporaryLogicItem(id, 3, 4)).To(Succeed())
		Expect(m.Layout.LogicItems.Get(id).Position).To(Equal(geometry.Point{X: 3, Y: 4}))

		Expect(m.UndoGroup()).To(BeTrue())
		Expect(m.Layout.LogicItems.Get(id).Position).To(Equal(geometry.Point{X: 0, Y: 0}))
	})

	It("should undo a split back into one segment and redo it back into two", func() {
		line := geometry.MustNewOrderedLine(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 4, Y: 0})
		seg, _ := m.AddSegment(line, vocabulary.SegmentPointShadow, vocabulary.SegmentPointShadow)

		m.History.BeginGroup()
		_, err := m.SplitTemporarySegments(seg, 2)
		Expect(err).NotTo(HaveOccurred())
		Expect(m.Layout.Wires.Tree(vocabulary.TemporaryWireId).Len()).To(Equal(2))

		Expect(m.UndoGroup()).To(BeTrue())
		Expect(m.Layout.Wires.Tree(vocabulary.TemporaryWireId).Len()).To(Equal(1))

		Expect(m.RedoGroup()).To(BeTrue())
		Expect(m.Layout.Wires.Tree(vocabulary.TemporaryWireId).Len()).To(Equal(2))
	})

	It("should undo an insertion mode change back to its previous display state", func() {
		id, _ := m.AddLogicItem(andGate(), geometry.Point{X: 0, Y: 0}, vocabulary.InsertionModeTemporary)
		m.History.BeginGroup()
		Expect(m.ChangeLogicItemInsertionMode(id, vocabulary.InsertionModeInsertOrDiscard)).To(Succeed())
		Expect(m.Layout.LogicItems.Get(id).DisplayState).To(Equal(vocabulary.DisplayStateNormal))

		Expect(m.UndoGroup()).To(BeTrue())
		Expect(m.Layout.LogicItems.Get(id).DisplayState).To(Equal(vocabulary.DisplayStateTemporary))
	})
})
