package history_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/logikedit/geometry"
	"github.com/sarchlab/logikedit/history"
	"github.com/sarchlab/logikedit/vocabulary"
)

var _ = Describe("Stack", func() {
	var s *history.Stack

	BeforeEach(func() {
		s = history.NewStack()
		s.Enable()
	})

	It("should do nothing while disabled", func() {
		d := history.NewStack()
		d.Push(history.Entry{Kind: history.EntryDeleteTemporaryElement})
		Expect(d.CanUndo()).To(BeFalse())
	})

	It("should replay a group's entries in reverse on undo", func() {
		s.Push(history.Entry{Kind: history.EntryCreateTemporaryElement, LogicItemId: 1})
		s.Push(history.Entry{Kind: history.EntrySetInsertionMode, LogicItemId: 1, Mode: vocabulary.InsertionModeCollisions})

		entries := s.PopUndoGroup()
		Expect(entries).To(HaveLen(2))
		Expect(entries[0].Kind).To(Equal(history.EntrySetInsertionMode))
		Expect(entries[1].Kind).To(Equal(history.EntryCreateTemporaryElement))
	})

	It("should move an undone group to the redo stack", func() {
		s.Push(history.Entry{Kind: history.EntryMoveByDelta, Dx: 1, Dy: 2})
		s.PopUndoGroup()

		Expect(s.CanRedo()).To(BeTrue())
		redone := s.PopRedoGroup()
		Expect(redone).To(HaveLen(1))
		Expect(redone[0].Kind).To(Equal(history.EntryMoveByDelta))
	})

	It("should clear the redo stack once a new edit is recorded", func() {
		s.Push(history.Entry{Kind: history.EntryMoveByDelta, Dx: 1})
		s.PopUndoGroup()
		Expect(s.CanRedo()).To(BeTrue())

		s.BeginGroup()
		s.Push(history.Entry{Kind: history.EntryMoveByDelta, Dx: 2})
		Expect(s.CanRedo()).To(BeFalse())
	})

	It("should clear everything on Disable", func() {
		s.Push(history.Entry{Kind: history.EntryMoveByDelta, Dx: 1})
		s.Disable()
		Expect(s.CanUndo()).To(BeFalse())
		Expect(s.Enabled()).To(BeFalse())
	})

	It("should bound the number of retained groups at DefaultHistoryCapacity", func() {
		for i := 0; i < history.DefaultHistoryCapacity+10; i++ {
			s.BeginGroup()
			s.Push(history.Entry{Kind: history.EntryMoveByDelta, Dx: geometry.Grid(i)})
		}
		Expect(s.Len()).To(BeNumerically("<=", history.DefaultHistoryCapacity))
	})
})
