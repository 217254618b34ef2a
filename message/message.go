// Package message defines InfoMessage, the broadcast unit of change
// between Modifier and every consumer (indices, selections, the
// validator). It is a closed sum type — Go has no sealed interfaces, so it is
// represented as a struct with a Kind tag and the payload fields relevant
// to that kind, the same "payload variant with a discriminator" shape
// spec.md §9 calls for.
package message

import (
	"github.com/sarchlab/logikedit/geometry"
	"github.com/sarchlab/logikedit/layout"
	"github.com/sarchlab/logikedit/vocabulary"
)

// Kind discriminates which fields of an Info are meaningful.
type Kind int

const (
	KindLogicItemCreated Kind = iota
	KindLogicItemIdUpdated
	KindLogicItemDeleted
	KindLogicItemInserted
	KindInsertedLogicItemIdUpdated
	KindLogicItemUninserted

	KindDecorationCreated
	KindDecorationIdUpdated
	KindDecorationDeleted
	KindDecorationInserted
	KindInsertedDecorationIdUpdated
	KindDecorationUninserted

	KindSegmentCreated
	KindSegmentIdUpdated
	KindSegmentPartMoved
	KindSegmentPartDeleted

	KindSegmentInserted
	KindInsertedSegmentIdUpdated
	KindInsertedEndPointsUpdated
	KindSegmentUninserted
)

func (k Kind) String() string {
	names := [...]string{
		"LogicItemCreated", "LogicItemIdUpdated", "LogicItemDeleted",
		"LogicItemInserted", "InsertedLogicItemIdUpdated", "LogicItemUninserted",
		"DecorationCreated", "DecorationIdUpdated", "DecorationDeleted",
		"DecorationInserted", "InsertedDecorationIdUpdated", "DecorationUninserted",
		"SegmentCreated", "SegmentIdUpdated", "SegmentPartMoved", "SegmentPartDeleted",
		"SegmentInserted", "InsertedSegmentIdUpdated", "InsertedEndPointsUpdated", "SegmentUninserted",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "Kind(?)"
}

// SegmentPart names a Segment together with the Part of it a message
// refers to.
type SegmentPart struct {
	Segment vocabulary.Segment
	Part    geometry.Part
}

// Info is one InfoMessage. Only the fields relevant to Kind are populated;
// the rest are zero.
type Info struct {
	Kind Kind

	// Logic item / decoration fields.
	LogicItemId    vocabulary.LogicItemId
	OldLogicItemId vocabulary.LogicItemId
	LogicItemData  layout.LogicItem

	DecorationId    vocabulary.DecorationId
	OldDecorationId vocabulary.DecorationId
	DecorationData  layout.Decoration

	// Segment fields.
	Segment    vocabulary.Segment
	OldSegment vocabulary.Segment
	Size       int

	SegmentPartSrc SegmentPart
	SegmentPartDst SegmentPart

	SegmentInfo layout.SegmentInfo
}

// Consumer receives a broadcast stream of Info messages. Every index,
// selection, and validator in this module implements it.
type Consumer interface {
	Submit(msg Info)
}

// ConsumerFunc adapts a plain function to Consumer.
type ConsumerFunc func(msg Info)

func (f ConsumerFunc) Submit(msg Info) { f(msg) }

// Broadcaster fans a single Info out to every registered Consumer, in
// registration order — the ordering contract spec.md §4.6 requires.
type Broadcaster struct {
	consumers []Consumer
}

// Register adds c to the fan-out list.
func (b *Broadcaster) Register(c Consumer) {
	b.consumers = append(b.consumers, c)
}

// Submit fans msg out to every registered consumer in order.
func (b *Broadcaster) Submit(msg Info) {
	for _, c := range b.consumers {
		c.Submit(msg)
	}
}
