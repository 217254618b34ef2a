package message_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	gomock "github.com/golang/mock/gomock"

	"github.com/sarchlab/logikedit/message"
	"github.com/sarchlab/logikedit/vocabulary"
)

var _ = Describe("Broadcaster", func() {
	It("should fan a message out to every registered consumer in order", func() {
		ctrl := gomock.NewController(GinkgoT())
		c1 := NewMockConsumer(ctrl)
		c2 := NewMockConsumer(ctrl)

		var b message.Broadcaster
		b.Register(c1)
		b.Register(c2)

		msg := message.Info{Kind: message.KindLogicItemCreated, LogicItemId: 3}

		gomock.InOrder(
			c1.EXPECT().Submit(msg),
			c2.EXPECT().Submit(msg),
		)

		b.Submit(msg)
	})
})

var _ = Describe("Validator", func() {
	It("should accept a balanced insert/uninsert pair", func() {
		v := message.NewValidator()
		v.Submit(message.Info{Kind: message.KindLogicItemInserted, LogicItemId: 1})
		v.Submit(message.Info{Kind: message.KindLogicItemUninserted, LogicItemId: 1})
		Expect(v.Errors()).To(BeEmpty())
		Expect(v.AllBalanced()).To(BeTrue())
	})

	It("should flag a double insert", func() {
		v := message.NewValidator()
		v.Submit(message.Info{Kind: message.KindLogicItemInserted, LogicItemId: 1})
		v.Submit(message.Info{Kind: message.KindLogicItemInserted, LogicItemId: 1})
		Expect(v.Errors()).NotTo(BeEmpty())
	})

	It("should flag an uninsert without insert", func() {
		v := message.NewValidator()
		v.Submit(message.Info{Kind: message.KindSegmentUninserted, Segment: vocabulary.Segment{Wire: 2, Index: 0}})
		Expect(v.Errors()).NotTo(BeEmpty())
	})

	It("should follow an id update across to the new id", func() {
		v := message.NewValidator()
		v.Submit(message.Info{Kind: message.KindSegmentInserted, Segment: vocabulary.Segment{Wire: 2, Index: 0}})
		v.Submit(message.Info{
			Kind:       message.KindInsertedSegmentIdUpdated,
			OldSegment: vocabulary.Segment{Wire: 2, Index: 0},
			Segment:    vocabulary.Segment{Wire: 2, Index: 1},
		})
		v.Submit(message.Info{Kind: message.KindSegmentUninserted, Segment: vocabulary.Segment{Wire: 2, Index: 1}})
		Expect(v.Errors()).To(BeEmpty())
		Expect(v.AllBalanced()).To(BeTrue())
	})
})
