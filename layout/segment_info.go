package layout

import (
	"fmt"

	"github.com/sarchlab/logikedit/geometry"
	"github.com/sarchlab/logikedit/vocabulary"
)

// SegmentInfo is the geometry and endpoint classification of one segment
// within a SegmentTree.
type SegmentInfo struct {
	Line   geometry.OrderedLine
	P0Type vocabulary.SegmentPointType
	P1Type vocabulary.SegmentPointType
}

// SegmentInfoBuilder builds a SegmentInfo with chainable With… setters,
// following the teacher's value-receiver builder convention (see
// cgra.MoveMsgBuilder).
type SegmentInfoBuilder struct {
	line   geometry.OrderedLine
	p0Type vocabulary.SegmentPointType
	p1Type vocabulary.SegmentPointType
}

// NewSegmentInfoBuilder starts a builder for a segment along line, with
// both endpoints defaulting to new_unknown.
func NewSegmentInfoBuilder(line geometry.OrderedLine) SegmentInfoBuilder {
	return SegmentInfoBuilder{
		line:   line,
		p0Type: vocabulary.SegmentPointNewUnknown,
		p1Type: vocabulary.SegmentPointNewUnknown,
	}
}

func (b SegmentInfoBuilder) WithP0Type(t vocabulary.SegmentPointType) SegmentInfoBuilder {
	b.p0Type = t
	return b
}

func (b SegmentInfoBuilder) WithP1Type(t vocabulary.SegmentPointType) SegmentInfoBuilder {
	b.p1Type = t
	return b
}

func (b SegmentInfoBuilder) Build() SegmentInfo {
	return SegmentInfo{Line: b.line, P0Type: b.p0Type, P1Type: b.p1Type}
}

// TypeAt returns the endpoint type at p, if p is one of the line's two
// endpoints.
func (info SegmentInfo) TypeAt(p geometry.Point) (vocabulary.SegmentPointType, bool) {
	switch p {
	case info.Line.P0():
		return info.P0Type, true
	case info.Line.P1():
		return info.P1Type, true
	default:
		return vocabulary.SegmentPointNewUnknown, false
	}
}

// WithTypeAt returns a copy of info with the endpoint type at p replaced.
// Panics if p is not one of the line's endpoints — callers must validate
// first via TypeAt.
func (info SegmentInfo) WithTypeAt(p geometry.Point, t vocabulary.SegmentPointType) SegmentInfo {
	switch p {
	case info.Line.P0():
		info.P0Type = t
	case info.Line.P1():
		info.P1Type = t
	default:
		panic(fmt.Sprintf("point %v is not an endpoint of %v", p, info.Line))
	}
	return info
}

func (info SegmentInfo) String() string {
	return fmt.Sprintf("SegmentInfo{%v, p0=%v, p1=%v}", info.Line, info.P0Type, info.P1Type)
}
