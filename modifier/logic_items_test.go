package modifier_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/logikedit/geometry"
	"github.com/sarchlab/logikedit/layout"
	"github.com/sarchlab/logikedit/modifier"
	"github.com/sarchlab/logikedit/vocabulary"
)

func andGate() layout.LogicItem {
	return layout.LogicItem{Type: vocabulary.ElementAndGate}
}

var _ = Describe("Modifier logic items", func() {
	var m *modifier.Modifier

	BeforeEach(func() {
		m = modifier.New()
	})

	It("should add a logic item as temporary by default", func() {
		id, err := m.AddLogicItem(andGate(), geometry.Point{X: 0, Y: 0}, vocabulary.InsertionModeTemporary)
		Expect(err).NotTo(HaveOccurred())
		Expect(m.Layout.LogicItems.Get(id).DisplayState).To(Equal(vocabulary.DisplayStateTemporary))
	})

	It("should insert a collision-free item as normal under insert_or_discard", func() {
		id, err := m.AddLogicItem(andGate(), geometry.Point{X: 0, Y: 0}, vocabulary.InsertionModeInsertOrDiscard)
		Expect(err).NotTo(HaveOccurred())
		Expect(m.Layout.LogicItems.Get(id).DisplayState).To(Equal(vocabulary.DisplayStateNormal))
	})

	It("should discard a colliding item under insert_or_discard, leaving the first in place", func() {
		first, err := m.AddLogicItem(andGate(), geometry.Point{X: 0, Y: 0}, vocabulary.InsertionModeInsertOrDiscard)
		Expect(err).NotTo(HaveOccurred())

		_, err = m.AddLogicItem(andGate(), geometry.Point{X: 0, Y: 0}, vocabulary.InsertionModeInsertOrDiscard)
		Expect(err).NotTo(HaveOccurred())

		Expect(m.Layout.LogicItems.Len()).To(Equal(1))
		Expect(m.Layout.LogicItems.Get(first).DisplayState).To(Equal(vocabulary.DisplayStateNormal))
	})

	It("should mark an overlapping item colliding under collisions mode rather than discarding it", func() {
		_, err := m.AddLogicItem(andGate(), geometry.Point{X: 0, Y: 0}, vocabulary.InsertionModeInsertOrDiscard)
		Expect(err).NotTo(HaveOccurred())

		second, err := m.AddLogicItem(andGate(), geometry.Point{X: 0, Y: 0}, vocabulary.InsertionModeCollisions)
		Expect(err).NotTo(HaveOccurred())

		Expect(m.Layout.LogicItems.Len()).To(Equal(2))
		Expect(m.Layout.LogicItems.Get(second).DisplayState).To(Equal(vocabulary.DisplayStateColliding))
	})

	It("should transition a temporary item through collisions to insert_or_discard", func() {
		id, _ := m.AddLogicItem(andGate(), geometry.Point{X: 0, Y: 0}, vocabulary.InsertionModeTemporary)

		Expect(m.ChangeLogicItemInsertionMode(id, vocabulary.InsertionModeCollisions)).To(Succeed())
		Expect(m.Layout.LogicItems.Get(id).DisplayState).To(Equal(vocabulary.DisplayStateValid))

		Expect(m.ChangeLogicItemInsertionMode(id, vocabulary.InsertionModeInsertOrDiscard)).To(Succeed())
		Expect(m.Layout.LogicItems.Get(id).DisplayState).To(Equal(vocabulary.DisplayStateNormal))
	})

	It("should reject deleting a non-temporary logic item", func() {
		id, _ := m.AddLogicItem(andGate(), geometry.Point{X: 0, Y: 0}, vocabulary.InsertionModeInsertOrDiscard)
		err := m.DeleteTemporaryLogicItem(id)
		Expect(err).To(MatchError(vocabulary.ErrStateViolation))
	})

	It("should delete a temporary logic item", func() {
		id, _ := m.AddLogicItem(andGate(), geometry.Point{X: 0, Y: 0}, vocabulary.InsertionModeTemporary)
		Expect(m.DeleteTemporaryLogicItem(id)).To(Succeed())
		Expect(m.Layout.LogicItems.Len()).To(Equal(0))
	})

	It("should move a temporary logic item within range", func() {
		id, _ := m.AddLogicItem(andGate(), geometry.Point{X: 0, Y: 0}, vocabulary.InsertionModeTemporary)
		Expect(m.MoveOrDeleteTemporaryLogicItem(id, 5, 5)).To(Succeed())
		Expect(m.Layout.LogicItems.Get(id).Position).To(Equal(geometry.Point{X: 5, Y: 5}))
	})

	It("should delete a temporary logic item moved out of the representable grid", func() {
		id, _ := m.AddLogicItem(andGate(), geometry.Point{X: 100, Y: 0}, vocabulary.InsertionModeTemporary)
		Expect(m.MoveOrDeleteTemporaryLogicItem(id, geometry.GridMax, 0)).To(Succeed())
		Expect(m.Layout.LogicItems.Len()).To(Equal(0))
	})
})
