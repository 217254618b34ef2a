package index

import (
	"github.com/sarchlab/logikedit/geometry"
	"github.com/sarchlab/logikedit/layout"
	"github.com/sarchlab/logikedit/message"
	"github.com/sarchlab/logikedit/vocabulary"
)

// WireInputIndex resolves which wire segment's input endpoint, if any,
// lives at a grid point. It only tracks *inserted* wires.
type WireInputIndex struct {
	inner *ConnectorIndex[vocabulary.Segment]
}

// NewWireInputIndex returns an empty WireInputIndex.
func NewWireInputIndex() *WireInputIndex {
	return &WireInputIndex{inner: NewConnectorIndex[vocabulary.Segment]()}
}

func (idx *WireInputIndex) Lookup(p geometry.Point) (Connector[vocabulary.Segment], bool) {
	return idx.inner.Lookup(p)
}

func (idx *WireInputIndex) Len() int { return idx.inner.Len() }

func (idx *WireInputIndex) AllocatedSize() int { return idx.inner.AllocatedSize() }

func (idx *WireInputIndex) Validate() bool { return idx.inner.Validate() }

func (idx *WireInputIndex) Submit(msg message.Info) {
	submitWireEndpoint(idx.inner, msg, vocabulary.SegmentPointInput)
}

// WireOutputIndex mirrors WireInputIndex for output endpoints.
type WireOutputIndex struct {
	inner *ConnectorIndex[vocabulary.Segment]
}

// NewWireOutputIndex returns an empty WireOutputIndex.
func NewWireOutputIndex() *WireOutputIndex {
	return &WireOutputIndex{inner: NewConnectorIndex[vocabulary.Segment]()}
}

func (idx *WireOutputIndex) Lookup(p geometry.Point) (Connector[vocabulary.Segment], bool) {
	return idx.inner.Lookup(p)
}

func (idx *WireOutputIndex) Len() int { return idx.inner.Len() }

func (idx *WireOutputIndex) AllocatedSize() int { return idx.inner.AllocatedSize() }

func (idx *WireOutputIndex) Validate() bool { return idx.inner.Validate() }

func (idx *WireOutputIndex) Submit(msg message.Info) {
	submitWireEndpoint(idx.inner, msg, vocabulary.SegmentPointOutput)
}

// submitWireEndpoint contains the shared Submit logic for WireInputIndex
// and WireOutputIndex, which differ only in which SegmentPointType they
// track.
func submitWireEndpoint(inner *ConnectorIndex[vocabulary.Segment], msg message.Info, want vocabulary.SegmentPointType) {
	switch msg.Kind {
	case message.KindSegmentInserted:
		points, cs := segmentEndpointsOfType(msg.Segment, msg.SegmentInfo, want)
		inner.Insert(msg.Segment, points, cs)

	case message.KindSegmentUninserted:
		inner.Remove(msg.Segment)

	case message.KindInsertedSegmentIdUpdated:
		inner.Rekey(msg.OldSegment, msg.Segment)

	case message.KindInsertedEndPointsUpdated:
		inner.Remove(msg.Segment)
		points, cs := segmentEndpointsOfType(msg.Segment, msg.SegmentInfo, want)
		inner.Insert(msg.Segment, points, cs)
	}
}

func segmentEndpointsOfType(owner vocabulary.Segment, info layout.SegmentInfo, want vocabulary.SegmentPointType) ([]geometry.Point, []Connector[vocabulary.Segment]) {
	var points []geometry.Point
	var cs []Connector[vocabulary.Segment]

	if info.P0Type == want {
		points = append(points, info.Line.P0())
		cs = append(cs, Connector[vocabulary.Segment]{Owner: owner, Index: 0, Orientation: endpointOrientation(info, true)})
	}
	if info.P1Type == want {
		points = append(points, info.Line.P1())
		cs = append(cs, Connector[vocabulary.Segment]{Owner: owner, Index: 1, Orientation: endpointOrientation(info, false)})
	}
	return points, cs
}

// endpointOrientation reports which way a wire endpoint faces: the
// direction pointing away from the segment's interior, out through that
// endpoint (Left/Up at P0, Right/Down at P1).
func endpointOrientation(info layout.SegmentInfo, isP0 bool) vocabulary.Orientation {
	switch info.Line.Orientation() {
	case geometry.LineHorizontal:
		if isP0 {
			return vocabulary.OrientationLeft
		}
		return vocabulary.OrientationRight
	default:
		if isP0 {
			return vocabulary.OrientationUp
		}
		return vocabulary.OrientationDown
	}
}
