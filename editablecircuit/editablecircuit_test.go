package editablecircuit_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/logikedit/editablecircuit"
	"github.com/sarchlab/logikedit/geometry"
	"github.com/sarchlab/logikedit/layout"
	"github.com/sarchlab/logikedit/vocabulary"
)

func andGate() layout.LogicItem {
	return layout.LogicItem{Type: vocabulary.ElementAndGate}
}

var _ = Describe("CircuitData construction", func() {
	It("should keep the validator balanced across an insert-then-delete round trip", func() {
		c := editablecircuit.New()
		id, err := c.AddLogicItem(andGate(), geometry.Point{X: 0, Y: 0}, vocabulary.InsertionModeInsertOrDiscard)
		Expect(err).NotTo(HaveOccurred())

		Expect(c.DeleteLogicItem(id)).To(Succeed())
		Expect(c.Validator.AllBalanced()).To(BeTrue())
		Expect(c.Validator.Errors()).To(BeEmpty())
	})

	It("should build a usable CircuitData without a validator via NewWithoutValidation", func() {
		c := editablecircuit.NewWithoutValidation()
		Expect(c.Validator).To(BeNil())
		_, err := c.AddLogicItem(andGate(), geometry.Point{X: 0, Y: 0}, vocabulary.InsertionModeTemporary)
		Expect(err).NotTo(HaveOccurred())
	})
})

var _ = Describe("Selection guards", func() {
	It("should add a logic item to a guarded selection and release it on Close", func() {
		c := editablecircuit.New()
		id, _ := c.AddLogicItem(andGate(), geometry.Point{X: 0, Y: 0}, vocabulary.InsertionModeTemporary)

		guard := c.NewSelectionGuard()
		Expect(c.AddToSelection(guard.ID(), &id, nil, nil, layout.PartSelection{})).To(Succeed())
		Expect(guard.Selection().HasLogicItem(id)).To(BeTrue())

		guard.Close()
		_, ok := c.Selection(guard.ID())
		Expect(ok).To(BeFalse())
	})

	It("should reject adding to an unknown selection id", func() {
		c := editablecircuit.New()
		err := c.AddToSelection(vocabulary.SelectionId(999999), nil, nil, nil, layout.PartSelection{})
		Expect(err).To(MatchError(vocabulary.ErrNotFound))
	})
})

var _ = Describe("Key resolution", func() {
	It("should resolve a logic item's key back to its current id across a delete-driven relocation", func() {
		c := editablecircuit.New()
		first, _ := c.AddLogicItem(andGate(), geometry.Point{X: 0, Y: 0}, vocabulary.InsertionModeTemporary)
		second, _ := c.AddLogicItem(andGate(), geometry.Point{X: 10, Y: 10}, vocabulary.InsertionModeTemporary)

		keyOfSecond, ok := c.KeyOfLogicItem(second)
		Expect(ok).To(BeTrue())

		Expect(c.DeleteLogicItem(first)).To(Succeed())

		resolved, ok := c.LogicItemOfKey(keyOfSecond)
		Expect(ok).To(BeTrue())
		Expect(c.Layout().LogicItems.Get(resolved).Position).To(Equal(geometry.Point{X: 10, Y: 10}))
	})
})

var _ = Describe("LineTreeOf", func() {
	It("should return an empty tree for a wire with no input endpoint", func() {
		c := editablecircuit.New()
		line := geometry.MustNewOrderedLine(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 4, Y: 0})
		seg, err := c.AddWireSegment(line, vocabulary.InsertionModeInsertOrDiscard)
		Expect(err).NotTo(HaveOccurred())

		tree := c.LineTreeOf(seg.Wire)
		Expect(tree.Children).To(BeEmpty())
	})

	It("should walk outward from a wire's input endpoint", func() {
		c := editablecircuit.New()

		wireID := c.Modifier.Layout.Wires.AddInsertedWire(vocabulary.DisplayStateNormal)
		tree := c.Modifier.Layout.Wires.Tree(wireID)
		line := geometry.MustNewOrderedLine(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 4, Y: 0})
		_, err := tree.AddSegment(layout.SegmentInfo{Line: line, P0Type: vocabulary.SegmentPointInput, P1Type: vocabulary.SegmentPointShadow})
		Expect(err).NotTo(HaveOccurred())

		lt := c.LineTreeOf(wireID)
		Expect(lt.Root).To(Equal(geometry.Point{X: 0, Y: 0}))
		Expect(lt.Children).To(HaveLen(1))
		Expect(lt.Children[0].Line).To(Equal(line))
	})
})

var _ = Describe("Visible selection", func() {
	It("should compose a base selection with a staged additive rectangle op", func() {
		c := editablecircuit.New()
		id, _ := c.AddLogicItem(andGate(), geometry.Point{X: 0, Y: 0}, vocabulary.InsertionModeInsertOrDiscard)

		base := c.CreateSelection()
		Expect(c.SetVisibleSelection(base)).To(Succeed())

		rect := geometry.NewRect(geometry.Point{X: -1, Y: -1}, geometry.Point{X: 3, Y: 3})
		c.ApplyVisibleOperations(editablecircuit.RectOp{Rect: rect})

		visible := c.VisibleSelection()
		Expect(visible.HasLogicItem(id)).To(BeTrue())
	})

	It("should reject setting a visible selection to an unknown base id", func() {
		c := editablecircuit.New()
		err := c.SetVisibleSelection(vocabulary.SelectionId(999999))
		Expect(err).To(MatchError(vocabulary.ErrNotFound))
	})

	It("should move every temporary member of a selection by the given delta", func() {
		c := editablecircuit.New()
		id, _ := c.AddLogicItem(andGate(), geometry.Point{X: 0, Y: 0}, vocabulary.InsertionModeTemporary)

		guard := c.NewSelectionGuard()
		defer guard.Close()
		Expect(c.AddToSelection(guard.ID(), &id, nil, nil, layout.PartSelection{})).To(Succeed())

		Expect(c.MoveSelection(guard.ID(), 2, 3)).To(Succeed())
		Expect(c.Layout().LogicItems.Get(id).Position).To(Equal(geometry.Point{X: 2, Y: 3}))
	})
})

var _ = Describe("Undo/redo through the façade", func() {
	It("should undo and redo a grouped logic item creation", func() {
		c := editablecircuit.New()
		id, _ := c.AddLogicItem(andGate(), geometry.Point{X: 0, Y: 0}, vocabulary.InsertionModeTemporary)
		Expect(c.Layout().LogicItems.Len()).To(Equal(1))

		Expect(c.UndoGroup()).To(BeTrue())
		Expect(c.Layout().LogicItems.Len()).To(Equal(0))

		Expect(c.RedoGroup()).To(BeTrue())
		Expect(c.Layout().LogicItems.Len()).To(Equal(1))
		_ = id
	})
})
